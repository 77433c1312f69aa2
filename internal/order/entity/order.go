package entity

import "time"

type CartItem struct {
	ID         int64
	UserID     int64
	ProductID  int64
	Name       string
	PriceCents int64
	Quantity   int32
	AddedAt    time.Time
}

type Order struct {
	ID         int64
	UserID     int64
	TotalCents int64
	Status     OrderStatus
	CreatedAt  time.Time
}

type OrderItem struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	Name       string
	PriceCents int64
	Quantity   int32
}

type NewOrder struct {
	ID         int64
	UserID     int64
	TotalCents int64
	Items      []OrderItem
}

type OrderStatus int16

const (
	OrderStatusUnknown OrderStatus = 0
	OrderStatusPlaced  OrderStatus = 1
	OrderStatusShipped OrderStatus = 2
	OrderStatusDone    OrderStatus = 3
)

func (os OrderStatus) String() string {
	switch os {
	case OrderStatusPlaced:
		return "Placed"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusDone:
		return "Done"
	default:
		return "Unknown"
	}
}
