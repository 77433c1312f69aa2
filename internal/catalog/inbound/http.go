package inbound

import (
	"context"

	"github.com/shandysiswandi/gocommerce/internal/catalog/usecase"
	"github.com/shandysiswandi/gocommerce/internal/pkg/router"
)

type uc interface {
	CategoryList(ctx context.Context) (*usecase.CategoryListOutput, error)
	CategoryCreate(ctx context.Context, in usecase.CategoryCreateInput) (*usecase.CategoryCreateOutput, error)

	ProductList(ctx context.Context, in usecase.ProductListInput) (*usecase.ProductListOutput, error)
	ProductDetail(ctx context.Context, in usecase.ProductDetailInput) (*usecase.ProductDetailOutput, error)
	ProductCreate(ctx context.Context, in usecase.ProductCreateInput) (*usecase.ProductCreateOutput, error)
	ProductUploadImage(ctx context.Context, in usecase.ProductUploadImageInput) (*usecase.ProductUploadImageOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Categories
	r.GET("/api/v1/catalog/categories", end.CategoryList)
	r.POST("/api/v1/catalog/categories", end.CategoryCreate) // need authenticated & authorization

	// Products
	r.GET("/api/v1/catalog/products", end.ProductList)
	r.GET("/api/v1/catalog/products/:id", end.ProductDetail)
	r.POST("/api/v1/catalog/products", end.ProductCreate)               // need authenticated & authorization
	r.PUT("/api/v1/catalog/products/:id/image", end.ProductUploadImage) // need authenticated & authorization
}
