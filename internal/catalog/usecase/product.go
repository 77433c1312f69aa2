package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gocommerce/internal/catalog/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/valueobject"
)

type ProductListInput struct {
	CategoryID int64
	Search     string
	Page       int32 `validate:"gte=0"`
	Size       int32 `validate:"gte=0,lte=100"`
}

type ProductListOutput struct {
	Products []entity.Product
	Total    int64
}

func (s *Usecase) ProductList(ctx context.Context, in ProductListInput) (*ProductListOutput, error) {
	ctx, span := s.startSpan(ctx, "ProductList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Page < 1 {
		in.Page = 1
	}
	if in.Size < 1 {
		in.Size = 20
	}

	products, total, err := s.repoDB.GetProductList(ctx, entity.ProductFilter{
		CategoryID: in.CategoryID,
		Search:     strings.TrimSpace(in.Search),
		Page:       in.Page,
		Size:       in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get product list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProductListOutput{Products: products, Total: total}, nil
}

type ProductDetailInput struct {
	ProductID int64 `validate:"required,gt=0"`
}

type ProductDetailOutput struct {
	Product entity.Product
}

func (s *Usecase) ProductDetail(ctx context.Context, in ProductDetailInput) (*ProductDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "ProductDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	product, err := s.repoDB.GetProductByID(ctx, in.ProductID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("product not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get product by id", "product_id", in.ProductID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProductDetailOutput{Product: *product}, nil
}

type ProductCreateInput struct {
	CategoryID  int64  `validate:"required,gt=0"`
	Name        string `validate:"required,min=2,max=100"`
	Description string `validate:"max=2000"`
	PriceCents  int64  `validate:"required,gt=0"`
	Stock       int32  `validate:"gte=0"`
	Attributes  map[string]any
}

type ProductCreateOutput struct {
	ProductID int64
}

func (s *Usecase) ProductCreate(ctx context.Context, in ProductCreateInput) (*ProductCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "ProductCreate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "catalog:products", "write")
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Attributes == nil {
		in.Attributes = map[string]any{}
	}

	actorID := clm.UserID
	product := entity.NewProduct{
		ID:          s.uid.Generate(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Attributes:  valueobject.JSONMap(in.Attributes),
		CreatedBy:   actorID,
		UpdatedBy:   actorID,
	}

	if err := s.repoDB.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("product already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create product", "name", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProductCreateOutput{ProductID: product.ID}, nil
}
