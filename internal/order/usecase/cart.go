package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gocommerce/internal/order/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
)

type CartAddInput struct {
	ProductID int64 `validate:"required,gt=0"`
	Quantity  int32 `validate:"required,gt=0,lte=99"`
}

func (s *Usecase) CartAdd(ctx context.Context, in CartAddInput) error {
	ctx, span := s.startSpan(ctx, "CartAdd")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "order:cart", "write")
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	name, priceCents, err := s.repoDB.GetProductPricing(ctx, in.ProductID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("product not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get product pricing", "product_id", in.ProductID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpsertCartItem(ctx, entity.CartItem{
		ID:         s.uid.Generate(),
		UserID:     clm.UserID,
		ProductID:  in.ProductID,
		Name:       name,
		PriceCents: priceCents,
		Quantity:   in.Quantity,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert cart item", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type CartListOutput struct {
	Items      []entity.CartItem
	TotalCents int64
}

func (s *Usecase) CartList(ctx context.Context) (*CartListOutput, error) {
	ctx, span := s.startSpan(ctx, "CartList")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "order:cart", "read")
	if err != nil {
		return nil, err
	}

	items, err := s.repoDB.GetCartItems(ctx, clm.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get cart items", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	var total int64
	for _, item := range items {
		total += item.PriceCents * int64(item.Quantity)
	}

	return &CartListOutput{Items: items, TotalCents: total}, nil
}

type CartRemoveInput struct {
	ProductID int64 `validate:"required,gt=0"`
}

func (s *Usecase) CartRemove(ctx context.Context, in CartRemoveInput) error {
	ctx, span := s.startSpan(ctx, "CartRemove")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "order:cart", "write")
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.DeleteCartItem(ctx, clm.UserID, in.ProductID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete cart item", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
