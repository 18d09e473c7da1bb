package dto

type MedicationStockRequest struct {
	Name     string `json:"name"     validate:"required,min=1"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

type MedicationStockResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
