package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/storage"
)

type ProductUploadImageInput struct {
	ProductID   int64 `validate:"required,gt=0"`
	ContentType string
	File        io.Reader
}

type ProductUploadImageOutput struct {
	ImageURL string
}

// ProductUploadImage streams the image to object storage under a
// product-scoped key and records the resulting URL on the product.
func (s *Usecase) ProductUploadImage(ctx context.Context, in ProductUploadImageInput) (*ProductUploadImageOutput, error) {
	ctx, span := s.startSpan(ctx, "ProductUploadImage")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "catalog:products", "write"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}
	if in.File == nil {
		return nil, goerror.NewInvalidFormat("image file is required")
	}

	if _, err := s.repoDB.GetProductByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("product not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get product by id", "product_id", in.ProductID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// A fresh key per upload, so cached URLs of the previous image never
	// serve the new bytes.
	bucket := s.cfg.GetString("modules.catalog.image_bucket")
	key := fmt.Sprintf("products/%d/%s", in.ProductID, s.oid.Generate())

	info, err := s.storage.PutObject(ctx, bucket, key, in.File, storage.PutOptions{
		ContentType: in.ContentType,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to upload product image", "product_id", in.ProductID, "error", err)
		return nil, goerror.NewServer(err)
	}

	imageURL, err := s.storage.PresignGet(ctx, info.Bucket, info.Key, s.cfg.GetHour("modules.catalog.image_url_ttl_hours"))
	if err != nil {
		if !errors.Is(err, storage.ErrMissingSigner) {
			slog.ErrorContext(ctx, "failed to presign product image", "product_id", in.ProductID, "error", err)
			return nil, goerror.NewServer(err)
		}
		imageURL = fmt.Sprintf("%s/%s/%s", s.cfg.GetString("modules.catalog.image_base_url"), info.Bucket, info.Key)
	}

	if err := s.repoDB.UpdateProductImage(ctx, in.ProductID, imageURL); err != nil {
		slog.ErrorContext(ctx, "failed to repo update product image", "product_id", in.ProductID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProductUploadImageOutput{ImageURL: imageURL}, nil
}
