package inbound

import (
	"strconv"

	"github.com/shandysiswandi/gocommerce/internal/order/usecase"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for cart and checkout.
type HTTPEndpoint struct {
	uc uc
}

// CartList returns the caller's cart.
// @Summary List cart items
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=CartListResponse} "Cart"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/v1/order/cart [get]
func (h *HTTPEndpoint) CartList(r *router.Request) (any, error) {
	resp, err := h.uc.CartList(r.Context())
	if err != nil {
		return nil, err
	}

	items := make([]CartItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, CartItemResponse{
			ProductID:  strconv.FormatInt(item.ProductID, 10),
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Quantity:   item.Quantity,
			AddedAt:    item.AddedAt,
		})
	}

	return CartListResponse{Items: items, TotalCents: resp.TotalCents}, nil
}

// CartAdd puts a product into the caller's cart.
// @Summary Add cart item
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CartAddRequest true "Cart item payload"
// @Success 200 {object} router.successResponse{data=CartAddResponse} "Item added"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "Product not found"
// @Router /api/v1/order/cart [post]
func (h *HTTPEndpoint) CartAdd(r *router.Request) (any, error) {
	var req CartAddRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	productID, err := strconv.ParseInt(req.ProductID, 10, 64)
	if err != nil {
		return nil, goerror.NewInvalidFormat("product_id must be an integer string")
	}

	if err := h.uc.CartAdd(r.Context(), usecase.CartAddInput{
		ProductID: productID,
		Quantity:  req.Quantity,
	}); err != nil {
		return nil, err
	}

	return CartAddResponse{}, nil
}

// CartRemove deletes a product from the caller's cart.
// @Summary Remove cart item
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param product_id path string true "Product id"
// @Success 200 {object} router.successResponse{data=CartRemoveResponse} "Item removed"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/v1/order/cart/{product_id} [delete]
func (h *HTTPEndpoint) CartRemove(r *router.Request) (any, error) {
	productID, err := r.GetParamInt64("product_id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.CartRemove(r.Context(), usecase.CartRemoveInput{ProductID: productID}); err != nil {
		return nil, err
	}

	return CartRemoveResponse{}, nil
}

// Checkout places an order from the caller's cart.
// @Summary Checkout
// @Description Turns the cart into an order exactly once per Idempotency-Key header.
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client-supplied idempotency key"
// @Success 200 {object} router.successResponse{data=CheckoutResponse} "Order placed"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 409 {object} router.errorResponse "Checkout already processed for this key"
// @Failure 422 {object} router.errorResponse "Cart empty or key missing"
// @Router /api/v1/order/checkout [post]
func (h *HTTPEndpoint) Checkout(r *router.Request) (any, error) {
	resp, err := h.uc.Checkout(r.Context(), usecase.CheckoutInput{
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return nil, err
	}

	return CheckoutResponse{
		OrderID:    strconv.FormatInt(resp.OrderID, 10),
		TotalCents: resp.TotalCents,
	}, nil
}
