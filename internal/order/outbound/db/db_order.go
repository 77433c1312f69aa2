package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/gocommerce/internal/order/entity"
)

// CreateOrderFromCart writes the order with its items and clears the cart in
// one transaction.
func (s *DB) CreateOrderFromCart(ctx context.Context, order entity.NewOrder) (err error) {
	ctx, span := s.startSpan(ctx, "CreateOrderFromCart")
	defer func() { s.endSpan(span, err) }()

	err = pgx.BeginFunc(ctx, s.conn, func(tx pgx.Tx) error {
		const insertOrder = `
			INSERT INTO orders (id, user_id, total_cents, status)
			VALUES ($1, $2, $3, $4)`

		if _, err := tx.Exec(ctx, insertOrder,
			order.ID, order.UserID, order.TotalCents, entity.OrderStatusPlaced,
		); err != nil {
			return err
		}

		const insertItem = `
			INSERT INTO order_items (id, order_id, product_id, name, price_cents, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`

		for _, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem,
				item.ID, item.OrderID, item.ProductID, item.Name, item.PriceCents, item.Quantity,
			); err != nil {
				return err
			}
		}

		const clearCart = `DELETE FROM cart_items WHERE user_id = $1`

		_, err := tx.Exec(ctx, clearCart, order.UserID)
		return err
	})

	err = s.mapError(err)
	return err
}
