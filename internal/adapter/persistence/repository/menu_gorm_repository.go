package repository

import (
	"context"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"

	"gorm.io/gorm"
)

// MenuGormRepository implements IMenuRepository over MySQL.

type MenuGormRepository struct {
	db *gorm.DB
}

func NewMenuGormRepository(db *gorm.DB) *MenuGormRepository {
	return &MenuGormRepository{db: db}
}

func (r *MenuGormRepository) Create(ctx context.Context, menu entities.Menu) (entities.Menu, error) {
	if err := r.db.WithContext(ctx).Create(&menu).Error; err != nil {
		return entities.Menu{}, err
	}
	return menu, nil
}

func (r *MenuGormRepository) GetByID(ctx context.Context, id string) (entities.Menu, error) {
	var menu entities.Menu
	err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&menu).Error
	return menu, err
}

// GetActiveByEnvironmentID returns the single active menu with the full
// category/item/choice/garnish tree preloaded.
func (r *MenuGormRepository) GetActiveByEnvironmentID(ctx context.Context, environmentID string) (entities.Menu, error) {
	var menu entities.Menu
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Categories.Items", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Categories.Items.ProductInfo").
		Preload("Categories.Items.SellingOption").
		Preload("Categories.Items.Choices", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Categories.Items.Choices.GarnishItems", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Where("environment_id = ? AND is_active = ?", environmentID, true).
		Limit(1).
		Find(&menu).Error
	return menu, err
}

func (r *MenuGormRepository) ListByEnvironmentID(ctx context.Context, environmentID string) ([]entities.Menu, error) {
	var menus []entities.Menu
	err := r.db.WithContext(ctx).
		Where("environment_id = ?", environmentID).
		Order("created_at desc").
		Find(&menus).Error
	return menus, err
}

func (r *MenuGormRepository) UpdateStatus(ctx context.Context, id string, status entities.MenuImportStatus) error {
	return r.db.WithContext(ctx).
		Model(&entities.Menu{}).
		Where("id = ?", id).
		Update("menu_status", status).Error
}

func (r *MenuGormRepository) SetRawCatalogData(ctx context.Context, id string, raw []byte) error {
	return r.db.WithContext(ctx).
		Model(&entities.Menu{}).
		Where("id = ?", id).
		Update("raw_catalog_data", raw).Error
}

func (r *MenuGormRepository) Activate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Menu{}).
		Where("id = ?", id).
		Update("is_active", true).Error
}

func (r *MenuGormRepository) DeactivateAllByEnvironmentID(ctx context.Context, environmentID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Menu{}).
		Where("environment_id = ?", environmentID).
		Update("is_active", false).Error
}

func (r *MenuGormRepository) CreateCategory(ctx context.Context, category entities.MenuCategory) (entities.MenuCategory, error) {
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return entities.MenuCategory{}, err
	}
	return category, nil
}

func (r *MenuGormRepository) CreateItem(ctx context.Context, item entities.Item) (entities.Item, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return entities.Item{}, err
	}
	return item, nil
}

func (r *MenuGormRepository) SetItemLogoBase64(ctx context.Context, itemID, logoBase64 string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Item{}).
		Where("id = ?", itemID).
		Update("logo_base64", logoBase64).Error
}

func (r *MenuGormRepository) CreateProductInfo(ctx context.Context, info entities.ProductInfo) (entities.ProductInfo, error) {
	if err := r.db.WithContext(ctx).Create(&info).Error; err != nil {
		return entities.ProductInfo{}, err
	}
	return info, nil
}

func (r *MenuGormRepository) CreateSellingOption(ctx context.Context, option entities.SellingOption) (entities.SellingOption, error) {
	if err := r.db.WithContext(ctx).Create(&option).Error; err != nil {
		return entities.SellingOption{}, err
	}
	return option, nil
}

func (r *MenuGormRepository) CreateChoice(ctx context.Context, choice entities.Choice) (entities.Choice, error) {
	if err := r.db.WithContext(ctx).Create(&choice).Error; err != nil {
		return entities.Choice{}, err
	}
	return choice, nil
}

func (r *MenuGormRepository) CreateGarnishItem(ctx context.Context, garnish entities.GarnishItem) (entities.GarnishItem, error) {
	if err := r.db.WithContext(ctx).Create(&garnish).Error; err != nil {
		return entities.GarnishItem{}, err
	}
	return garnish, nil
}
