package inbound

import "time"

type CartAddRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type CartAddResponse struct{}

func (CartAddResponse) Message() string {
	return "Item added to cart."
}

type CartItemResponse struct {
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Quantity   int32     `json:"quantity"`
	AddedAt    time.Time `json:"added_at"`
}

type CartListResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalCents int64              `json:"total_cents"`
}

type CartRemoveResponse struct{}

func (CartRemoveResponse) Message() string {
	return "Item removed from cart."
}

type CheckoutResponse struct {
	OrderID    string `json:"order_id"`
	TotalCents int64  `json:"total_cents"`
}

func (CheckoutResponse) Message() string {
	return "Order placed. A receipt is on its way to your inbox."
}
