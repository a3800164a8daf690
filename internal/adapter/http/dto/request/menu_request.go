package request

// ImportMenuRequest schedules a catalog import for an environment.
type ImportMenuRequest struct {
	EnvironmentID string `json:"environmentId" binding:"required,uuid"`
	MerchantID    string `json:"merchantId" binding:"required"`
}
