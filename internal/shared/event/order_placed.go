package event

const OrderPlacedDestination string = "order_placed"
const OrderPlacedDestinationConsumerNotification string = "order_placed_notification"

type OrderPlacedMessage struct {
	OrderID    int64             `json:"order_id"`
	UserID     int64             `json:"user_id"`
	Email      string            `json:"email"`
	TotalCents int64             `json:"total_cents"`
	Items      []OrderPlacedItem `json:"items"`
}

type OrderPlacedItem struct {
	ProductID  int64  `json:"product_id"`
	Name       string `json:"name"`
	Quantity   int32  `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}
