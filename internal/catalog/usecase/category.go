package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gocommerce/internal/catalog/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
)

type CategoryListOutput struct {
	Categories []entity.Category
}

func (s *Usecase) CategoryList(ctx context.Context) (*CategoryListOutput, error) {
	ctx, span := s.startSpan(ctx, "CategoryList")
	defer span.End()

	categories, err := s.repoDB.GetCategoryList(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get category list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CategoryListOutput{Categories: categories}, nil
}

type CategoryCreateInput struct {
	Name string `validate:"required,min=2,max=50"`
}

type CategoryCreateOutput struct {
	CategoryID int64
}

func (s *Usecase) CategoryCreate(ctx context.Context, in CategoryCreateInput) (*CategoryCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "CategoryCreate")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "catalog:categories", "write"); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	category := entity.Category{ID: s.uid.Generate(), Name: in.Name}
	if err := s.repoDB.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("category already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create category", "name", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CategoryCreateOutput{CategoryID: category.ID}, nil
}
