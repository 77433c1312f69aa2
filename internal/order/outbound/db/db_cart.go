package db

import (
	"context"

	"github.com/shandysiswandi/gocommerce/internal/order/entity"
)

func (s *DB) GetCartItems(ctx context.Context, userID int64) (items []entity.CartItem, err error) {
	ctx, span := s.startSpan(ctx, "GetCartItems")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, user_id, product_id, name, price_cents, quantity, added_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY added_at`

	rows, err := s.conn.Query(ctx, query, userID)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.CartItem
		if err = rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Name,
			&item.PriceCents, &item.Quantity, &item.AddedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// UpsertCartItem inserts the cart line or, when the product is already in
// the cart, replaces its quantity and captured price.
func (s *DB) UpsertCartItem(ctx context.Context, item entity.CartItem) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertCartItem")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO cart_items (id, user_id, product_id, name, price_cents, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET name = $4, price_cents = $5, quantity = $6, added_at = now()`

	_, err = s.conn.Exec(ctx, query,
		item.ID, item.UserID, item.ProductID, item.Name, item.PriceCents, item.Quantity,
	)
	err = s.mapError(err)
	return err
}

func (s *DB) DeleteCartItem(ctx context.Context, userID, productID int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteCartItem")
	defer func() { s.endSpan(span, err) }()

	const query = `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

	_, err = s.conn.Exec(ctx, query, userID, productID)
	err = s.mapError(err)
	return err
}

func (s *DB) GetProductPricing(ctx context.Context, productID int64) (name string, priceCents int64, err error) {
	ctx, span := s.startSpan(ctx, "GetProductPricing")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT name, price_cents
		FROM products
		WHERE id = $1 AND deleted_at IS NULL`

	err = s.conn.QueryRow(ctx, query, productID).Scan(&name, &priceCents)
	if err = s.mapError(err); err != nil {
		return "", 0, err
	}

	return name, priceCents, nil
}
