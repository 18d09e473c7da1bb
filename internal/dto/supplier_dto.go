package dto

// SupplierRequest is shared by create and update; the form submits every
// field each time.
type SupplierRequest struct {
	Name    string `json:"name"    validate:"required,min=1"`
	Address string `json:"address" validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Website string `json:"website" validate:"required,url"`
}

type SupplierResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}
