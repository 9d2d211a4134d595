package handler

import (
	"log/slog"
	"net/http"

	"organic/internal/delivery/http/response"
	"organic/internal/domain/service"
	"organic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles the storefront product listing. Only published
// products are returned; a category slug narrows the listing.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, perPage := pageParams(c)

	result, err := h.uc.ListProducts(c.Request().Context(), usecase.ProductListOptions{
		Page:         page,
		PerPage:      perPage,
		CategorySlug: c.QueryParam("category"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// GetProduct handles a product detail page lookup by slug.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// GetTrendingProducts handles the home page trending section.
func (h *ProductHandler) GetTrendingProducts(c echo.Context) error {
	products, err := h.uc.GetTrendingProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// SearchProducts handles a full-text product search.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	page, perPage := pageParams(c)

	result, err := h.uc.SearchProducts(c.Request().Context(), c.QueryParam("q"), page, perPage)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// AdminListProducts handles the admin console product listing, which
// includes unpublished products.
func (h *ProductHandler) AdminListProducts(c echo.Context) error {
	page, perPage := pageParams(c)

	result, err := h.uc.ListProducts(c.Request().Context(), usecase.ProductListOptions{
		Page:               page,
		PerPage:            perPage,
		CategorySlug:       c.QueryParam("category"),
		IncludeUnpublished: true,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// CreateProduct handles the admin product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles the admin product update request.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles the admin product deletion request.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// UploadImage handles a multipart product image upload and returns the
// stored object's public URL.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	url, err := h.uc.UploadProductImage(c.Request().Context(), service.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded successfully")
}

// DeleteImageRequest represents the request body for deleting a stored image.
type DeleteImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// DeleteImage handles the admin request to remove a stored image by URL.
func (h *ProductHandler) DeleteImage(c echo.Context) error {
	var req DeleteImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteProductImage(c.Request().Context(), req.URL); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted successfully")
}
