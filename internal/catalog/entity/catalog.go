package entity

import (
	"time"

	"github.com/shandysiswandi/gocommerce/internal/pkg/valueobject"
)

type Category struct {
	ID   int64
	Name string
}

type Product struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description string
	PriceCents  int64
	Stock       int32
	ImageURL    string
	Attributes  valueobject.JSONMap
	UpdatedAt   time.Time
}

type NewProduct struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description string
	PriceCents  int64
	Stock       int32
	Attributes  valueobject.JSONMap
	CreatedBy   int64
	UpdatedBy   int64
}

type ProductFilter struct {
	CategoryID int64
	Search     string
	Page       int32
	Size       int32
}
