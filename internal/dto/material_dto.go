package dto

// MaterialRequest accepts the union of the two condition enums the
// master-data forms historically offered.
type MaterialRequest struct {
	Name         string  `json:"name"          validate:"required,min=1"`
	Description  *string `json:"description"`
	Quantity     int     `json:"quantity"      validate:"min=0"`
	SerialNumber *string `json:"serial_number"`
	Condition    string  `json:"condition"     validate:"required,oneof=new used damaged good needs-repair out-of-service"`
	ExpiryDate   *string `json:"expiry_date"   validate:"omitempty,datetime=2006-01-02"`
}

type MaterialResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Quantity     int     `json:"quantity"`
	SerialNumber *string `json:"serial_number"`
	Condition    string  `json:"condition"`
	ExpiryDate   *string `json:"expiry_date"`
	AddedAt      string  `json:"added_at"`
}
