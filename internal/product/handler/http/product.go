package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/product/domain"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/product/service"
	apperrors "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/errors"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httputil"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/pagination"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/validator"
)

// ProductHandler exposes catalog operations over HTTP.
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{service: svc, logger: logger}
}

type createProductRequest struct {
	User         string  `json:"user"`
	Name         string  `json:"name" validate:"required"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Price        float64 `json:"price" validate:"gte=0"`
	CountInStock int     `json:"countInStock" validate:"gte=0"`
}

type updateProductRequest struct {
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Price        float64 `json:"price" validate:"gte=0"`
	CountInStock int     `json:"countInStock" validate:"gte=0"`
}

type createReviewRequest struct {
	User    string  `json:"user" validate:"required"`
	Name    string  `json:"name" validate:"required"`
	Rating  float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string  `json:"comment"`
}

type listResponse struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
}

type unavailableResponse struct {
	Message  string           `json:"message"`
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
}

// List handles GET /api/v1/products. An unreachable store degrades to a 503
// with an empty page instead of a plain error so the storefront can render.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	products, total, err := h.service.List(r.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, unavailableResponse{
				Message:  "Database not connected. Please check the document store connection.",
				Products: []domain.Product{},
				Total:    0,
			})
			return
		}
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, listResponse{Products: products, Total: total})
}

// ListTop handles GET /api/v1/products/top.
func (h *ProductHandler) ListTop(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListTop(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/v1/products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, product)
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.service.Create(r.Context(), service.CreateInput{
		User:         req.User,
		Name:         req.Name,
		Image:        req.Image,
		Description:  req.Description,
		Brand:        req.Brand,
		Category:     req.Category,
		Price:        req.Price,
		CountInStock: req.CountInStock,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":        "Product created",
		"createdProduct": product,
	})
}

// Update handles PUT /api/v1/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateProductRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.service.Update(r.Context(), id, service.UpdateInput{
		Name:         req.Name,
		Image:        req.Image,
		Description:  req.Description,
		Brand:        req.Brand,
		Category:     req.Category,
		Price:        req.Price,
		CountInStock: req.CountInStock,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"message":        "Product updated",
		"updatedProduct": product,
	})
}

// Delete handles DELETE /api/v1/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Product deleted",
	})
}

// CreateReview handles POST /api/v1/products/reviews/{id}.
func (h *ProductHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req createReviewRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if _, err := h.service.AddReview(r.Context(), id, service.ReviewInput{
		User:    req.User,
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	}); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Review added",
	})
}
