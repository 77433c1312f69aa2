package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/shandysiswandi/gocommerce/internal/catalog/entity"
)

func (s *DB) GetProductByID(ctx context.Context, id int64) (p *entity.Product, err error) {
	ctx, span := s.startSpan(ctx, "GetProductByID")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, category_id, name, description, price_cents, stock, image_url, attributes, updated_at
		FROM products
		WHERE id = $1 AND deleted_at IS NULL`

	var product entity.Product
	err = s.conn.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.CategoryID, &product.Name, &product.Description,
		&product.PriceCents, &product.Stock, &product.ImageURL, &product.Attributes, &product.UpdatedAt,
	)
	if err = s.mapError(err); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *DB) GetProductList(ctx context.Context, filter entity.ProductFilter) (products []entity.Product, total int64, err error) {
	ctx, span := s.startSpan(ctx, "GetProductList")
	defer func() { s.endSpan(span, err) }()

	where := []string{"deleted_at IS NULL"}
	args := []any{}

	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	countQuery := "SELECT count(*) FROM products WHERE " + whereClause
	if err = s.conn.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}

	args = append(args, filter.Size, (filter.Page-1)*filter.Size)
	listQuery := fmt.Sprintf(`
		SELECT id, category_id, name, description, price_cents, stock, image_url, attributes, updated_at
		FROM products
		WHERE %s
		ORDER BY updated_at DESC
		LIMIT $%d OFFSET $%d`, whereClause, len(args)-1, len(args))

	rows, err := s.conn.Query(ctx, listQuery, args...)
	if err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var p entity.Product
		if err = rows.Scan(
			&p.ID, &p.CategoryID, &p.Name, &p.Description,
			&p.PriceCents, &p.Stock, &p.ImageURL, &p.Attributes, &p.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (s *DB) CreateProduct(ctx context.Context, product entity.NewProduct) (err error) {
	ctx, span := s.startSpan(ctx, "CreateProduct")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO products (id, category_id, name, description, price_cents, stock, attributes, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = s.conn.Exec(ctx, query,
		product.ID, product.CategoryID, product.Name, product.Description,
		product.PriceCents, product.Stock, product.Attributes, product.CreatedBy, product.UpdatedBy,
	)
	err = s.mapError(err)
	return err
}

func (s *DB) UpdateProductImage(ctx context.Context, id int64, imageURL string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateProductImage")
	defer func() { s.endSpan(span, err) }()

	const query = `
		UPDATE products
		SET image_url = $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	_, err = s.conn.Exec(ctx, query, id, imageURL)
	err = s.mapError(err)
	return err
}
