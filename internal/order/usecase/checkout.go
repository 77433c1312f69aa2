package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shandysiswandi/gocommerce/internal/order/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/idempotency"
)

type CheckoutInput struct {
	IdempotencyKey string `validate:"required,min=8,max=128"`
}

type CheckoutOutput struct {
	OrderID    int64
	TotalCents int64
}

// Checkout turns the caller's cart into an order exactly once per
// idempotency key. Replays of a completed checkout are rejected as conflicts
// rather than producing a second order.
func (s *Usecase) Checkout(ctx context.Context, in CheckoutInput) (*CheckoutOutput, error) {
	ctx, span := s.startSpan(ctx, "Checkout")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "order:checkout", "write")
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	var out *CheckoutOutput
	key := fmt.Sprintf("checkout:%d:%s", clm.UserID, in.IdempotencyKey)

	err = s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		items, err := s.repoDB.GetCartItems(ctx, clm.UserID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo get cart items", "user_id", clm.UserID, "error", err)
			return goerror.NewServer(err)
		}
		if len(items) == 0 {
			return goerror.NewBusiness("cart is empty", goerror.CodeInvalidInput)
		}

		orderID := s.uid.Generate()
		orderItems := make([]entity.OrderItem, 0, len(items))

		var total int64
		for _, item := range items {
			total += item.PriceCents * int64(item.Quantity)
			orderItems = append(orderItems, entity.OrderItem{
				ID:         s.uid.Generate(),
				OrderID:    orderID,
				ProductID:  item.ProductID,
				Name:       item.Name,
				PriceCents: item.PriceCents,
				Quantity:   item.Quantity,
			})
		}

		if err := s.repoDB.CreateOrderFromCart(ctx, entity.NewOrder{
			ID:         orderID,
			UserID:     clm.UserID,
			TotalCents: total,
			Items:      orderItems,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to repo create order", "user_id", clm.UserID, "error", err)
			return goerror.NewServer(err)
		}

		if err := s.repoMessaging.PublishOrderPlaced(ctx, OrderPlacedEvent{
			OrderID:    orderID,
			UserID:     clm.UserID,
			Email:      clm.UserEmail,
			TotalCents: total,
			Items:      orderItems,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish order placed", "order_id", orderID, "error", err)
		}

		out = &CheckoutOutput{OrderID: orderID, TotalCents: total}
		return nil
	}, idempotency.WithStateTTL(s.cfg.GetHour("modules.order.checkout_state_ttl_hours")))

	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, idempotency.ErrAlreadyInProgress):
		return nil, goerror.NewBusiness("checkout is already in progress", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyCompleted):
		return nil, goerror.NewBusiness("checkout already completed for this key", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyFailed):
		return nil, goerror.NewBusiness("previous checkout with this key failed, use a new key", goerror.CodeConflict)
	default:
		var gerr *goerror.Error
		if errors.As(err, &gerr) {
			return nil, err
		}
		slog.ErrorContext(ctx, "failed to run idempotent checkout", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}
}
