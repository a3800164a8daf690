package routes

import (
	"log"
	"strconv"

	_ "github.com/KelwinHenrique/garfai-be/docs" // This will be auto-generated
	"github.com/KelwinHenrique/garfai-be/internal/adapter/http/handlers"
	repository2 "github.com/KelwinHenrique/garfai-be/internal/adapter/persistence/repository"
	"github.com/KelwinHenrique/garfai-be/internal/infrastructure/catalog"
	"github.com/KelwinHenrique/garfai-be/internal/infrastructure/database"
	"github.com/KelwinHenrique/garfai-be/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db := database.ConnectMySQL()
	database.SyncDatabase(db)

	clientRepo := repository2.NewClientGormRepository(db)
	environmentRepo := repository2.NewEnvironmentGormRepository(db)
	catalogRepo := repository2.NewCatalogGormRepository(db)
	orderRepo := repository2.NewOrderGormRepository(db)
	orderUow := repository2.NewOrderGormUnitOfWork(db)
	menuRepo := repository2.NewMenuGormRepository(db)
	imageJobRepo := repository2.NewImageJobGormRepository(db)

	marketplaceClient := catalog.NewMarketplaceClient()

	orderUseCase := usecase.NewOrderUseCase(orderRepo, orderUow, catalogRepo, clientRepo, environmentRepo)
	menuUseCase := usecase.NewMenuUseCase(menuRepo, catalogRepo, environmentRepo, imageJobRepo, marketplaceClient)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	menuHandler := handlers.NewMenuHandler(menuUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addMenuRoutes(v1, menuHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
