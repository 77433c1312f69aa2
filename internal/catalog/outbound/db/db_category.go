package db

import (
	"context"

	"github.com/shandysiswandi/gocommerce/internal/catalog/entity"
)

func (s *DB) GetCategoryList(ctx context.Context) (categories []entity.Category, err error) {
	ctx, span := s.startSpan(ctx, "GetCategoryList")
	defer func() { s.endSpan(span, err) }()

	const query = `SELECT id, name FROM categories ORDER BY name`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c entity.Category
		if err = rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *DB) CreateCategory(ctx context.Context, category entity.Category) (err error) {
	ctx, span := s.startSpan(ctx, "CreateCategory")
	defer func() { s.endSpan(span, err) }()

	const query = `INSERT INTO categories (id, name) VALUES ($1, $2)`

	_, err = s.conn.Exec(ctx, query, category.ID, category.Name)
	err = s.mapError(err)
	return err
}
