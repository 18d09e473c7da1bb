package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type PlaceOrderRequest struct {
	ItemID     int64  `json:"item_id"     validate:"required,gt=0"`
	Quantity   int    `json:"quantity"    validate:"required,gt=0"`
	SupplierID *int64 `json:"supplier_id" validate:"omitempty,gt=0"`
}

type UpdateOrderStateRequest struct {
	State string `json:"state" validate:"required,oneof=accepted rejected"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderResponse struct {
	ID          int64  `json:"id"`
	Domain      string `json:"domain"`
	RequesterID string `json:"requester_id"`
	ItemID      int64  `json:"item_id"`
	SupplierID  *int64 `json:"supplier_id,omitempty"`
	Quantity    int    `json:"quantity"`
	State       string `json:"state"`
	OrderedAt   string `json:"ordered_at"`
}

type OrderListResponse struct {
	Data []OrderResponse `json:"data"`
}
