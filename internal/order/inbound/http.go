package inbound

import (
	"context"

	"github.com/shandysiswandi/gocommerce/internal/order/usecase"
	"github.com/shandysiswandi/gocommerce/internal/pkg/router"
)

type uc interface {
	CartAdd(ctx context.Context, in usecase.CartAddInput) error
	CartList(ctx context.Context) (*usecase.CartListOutput, error)
	CartRemove(ctx context.Context, in usecase.CartRemoveInput) error
	Checkout(ctx context.Context, in usecase.CheckoutInput) (*usecase.CheckoutOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Cart (need authenticated)
	r.GET("/api/v1/order/cart", end.CartList)
	r.POST("/api/v1/order/cart", end.CartAdd)
	r.DELETE("/api/v1/order/cart/:product_id", end.CartRemove)

	// Checkout (need authenticated, idempotent)
	r.POST("/api/v1/order/checkout", end.Checkout)
}
