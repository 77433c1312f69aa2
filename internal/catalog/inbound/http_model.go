package inbound

import (
	"time"

	"github.com/shandysiswandi/gocommerce/internal/pkg/valueobject"
)

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CategoryCreateRequest struct {
	Name string `json:"name"`
}

type CategoryCreateResponse struct {
	CategoryID string `json:"category_id"`
}

func (CategoryCreateResponse) Message() string {
	return "Category created."
}

type ProductResponse struct {
	ID          string              `json:"id"`
	CategoryID  string              `json:"category_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	PriceCents  int64               `json:"price_cents"`
	Stock       int32               `json:"stock"`
	ImageURL    string              `json:"image_url"`
	Attributes  valueobject.JSONMap `json:"attributes"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
}

type ProductCreateRequest struct {
	CategoryID  string         `json:"category_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	PriceCents  int64          `json:"price_cents"`
	Stock       int32          `json:"stock"`
	Attributes  map[string]any `json:"attributes"`
}

type ProductCreateResponse struct {
	ProductID string `json:"product_id"`
}

func (ProductCreateResponse) Message() string {
	return "Product created."
}

type ProductUploadImageResponse struct {
	ImageURL string `json:"image_url"`
}

func (ProductUploadImageResponse) Message() string {
	return "Product image uploaded."
}
