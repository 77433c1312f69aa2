package inbound

import (
	"strconv"

	"github.com/shandysiswandi/gocommerce/internal/catalog/entity"
	"github.com/shandysiswandi/gocommerce/internal/catalog/usecase"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the product catalog.
type HTTPEndpoint struct {
	uc uc
}

// CategoryList returns all categories.
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} router.successResponse{data=CategoryListResponse} "Categories"
// @Router /api/v1/catalog/categories [get]
func (h *HTTPEndpoint) CategoryList(r *router.Request) (any, error) {
	resp, err := h.uc.CategoryList(r.Context())
	if err != nil {
		return nil, err
	}

	categories := make([]CategoryResponse, 0, len(resp.Categories))
	for _, c := range resp.Categories {
		categories = append(categories, CategoryResponse{
			ID:   strconv.FormatInt(c.ID, 10),
			Name: c.Name,
		})
	}

	return CategoryListResponse{Categories: categories}, nil
}

// CategoryCreate creates a category.
// @Summary Create category
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryCreateRequest true "Category payload"
// @Success 200 {object} router.successResponse{data=CategoryCreateResponse} "Category created"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Failure 409 {object} router.errorResponse "Category already exists"
// @Router /api/v1/catalog/categories [post]
func (h *HTTPEndpoint) CategoryCreate(r *router.Request) (any, error) {
	var req CategoryCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CategoryCreate(r.Context(), usecase.CategoryCreateInput{Name: req.Name})
	if err != nil {
		return nil, err
	}

	return CategoryCreateResponse{CategoryID: strconv.FormatInt(resp.CategoryID, 10)}, nil
}

// ProductList returns products matching the filter.
// @Summary List products
// @Tags Catalog
// @Produce json
// @Param category_id query string false "Filter by category"
// @Param search query string false "Filter by name"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} router.successResponse{data=ProductListResponse} "Products"
// @Router /api/v1/catalog/products [get]
func (h *HTTPEndpoint) ProductList(r *router.Request) (any, error) {
	var categoryID int64
	if raw := r.GetQuery("category_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, goerror.NewInvalidFormat("Invalid query category_id")
		}
		categoryID = parsed
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ProductList(r.Context(), usecase.ProductListInput{
		CategoryID: categoryID,
		Search:     r.GetQuery("search"),
		Page:       page,
		Size:       size,
	})
	if err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0, len(resp.Products))
	for _, p := range resp.Products {
		products = append(products, toProductResponse(p))
	}

	return ProductListResponse{Products: products, Total: resp.Total}, nil
}

// ProductDetail returns a single product.
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} router.successResponse{data=ProductResponse} "Product"
// @Failure 404 {object} router.errorResponse "Product not found"
// @Router /api/v1/catalog/products/{id} [get]
func (h *HTTPEndpoint) ProductDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ProductDetail(r.Context(), usecase.ProductDetailInput{ProductID: id})
	if err != nil {
		return nil, err
	}

	return toProductResponse(resp.Product), nil
}

// ProductCreate creates a product.
// @Summary Create product
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductCreateRequest true "Product payload"
// @Success 200 {object} router.successResponse{data=ProductCreateResponse} "Product created"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Router /api/v1/catalog/products [post]
func (h *HTTPEndpoint) ProductCreate(r *router.Request) (any, error) {
	var req ProductCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	categoryID, err := strconv.ParseInt(req.CategoryID, 10, 64)
	if err != nil {
		return nil, goerror.NewInvalidFormat("category_id must be an integer string")
	}

	resp, err := h.uc.ProductCreate(r.Context(), usecase.ProductCreateInput{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
		Attributes:  req.Attributes,
	})
	if err != nil {
		return nil, err
	}

	return ProductCreateResponse{ProductID: strconv.FormatInt(resp.ProductID, 10)}, nil
}

// ProductUploadImage uploads the product image.
// @Summary Upload product image
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Param image formData file true "Image file"
// @Success 200 {object} router.successResponse{data=ProductUploadImageResponse} "Image uploaded"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Not allowed"
// @Failure 404 {object} router.errorResponse "Product not found"
// @Router /api/v1/catalog/products/{id}/image [put]
func (h *HTTPEndpoint) ProductUploadImage(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, err := r.StreamSingleFile("image")
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // body already consumed

	resp, err := h.uc.ProductUploadImage(r.Context(), usecase.ProductUploadImageInput{
		ProductID:   id,
		ContentType: r.Header.Get("Content-Type"),
		File:        file,
	})
	if err != nil {
		return nil, err
	}

	return ProductUploadImageResponse{ImageURL: resp.ImageURL}, nil
}

func toProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          strconv.FormatInt(p.ID, 10),
		CategoryID:  strconv.FormatInt(p.CategoryID, 10),
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Attributes:  p.Attributes,
		UpdatedAt:   p.UpdatedAt,
	}
}
