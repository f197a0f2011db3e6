package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aislefinder/backend/internal/domain"
	"github.com/aislefinder/backend/internal/usecase"
)

// ListResolver resolves raw grocery list lines into products
type ListResolver interface {
	ResolveAt(ctx context.Context, items []string, locationID string) ([]domain.ResolvedProduct, error)
}

// StoreFinder looks up nearby stores by postal code
type StoreFinder interface {
	FindStores(ctx context.Context, zipCode string) ([]domain.Store, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	resolver      ListResolver
	stores        StoreFinder
	defaultFormat usecase.RouteMode
}

// NewHandler creates a new HTTP handler
func NewHandler(resolver ListResolver, stores StoreFinder, defaultFormat usecase.RouteMode) *Handler {
	return &Handler{
		resolver:      resolver,
		stores:        stores,
		defaultFormat: defaultFormat,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "aislefinder-backend",
		"version": "1.0.0",
	})
}

// ProcessList accepts an uploaded grocery list file, resolves every line
// against the catalog, and returns the formatted route as plain text.
//
// Form fields: "file" (required, text file), "output_format" (optional,
// "aisle" or "category"), "location_id" (optional store override).
func (h *Handler) ProcessList(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	mode := h.defaultFormat
	if requested := c.PostForm("output_format"); requested != "" {
		mode, err = usecase.ParseRouteMode(requested)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not open uploaded file"})
		return
	}
	defer file.Close()

	items, err := usecase.ParseList(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grocery list is empty"})
		return
	}

	resolved, err := h.resolver.ResolveAt(c.Request.Context(), items, c.PostForm("location_id"))
	if err != nil {
		status, message := classifyEngineError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.String(http.StatusOK, usecase.FormatRoute(resolved, mode))
}

// FindStores returns nearby stores for a postal code as JSON
func (h *Handler) FindStores(c *gin.Context) {
	zip := c.Query("zip")
	if zip == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zip query parameter is required"})
		return
	}

	stores, err := h.stores.FindStores(c.Request.Context(), zip)
	if err != nil {
		status, message := classifyEngineError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stores})
}

// classifyEngineError maps engine failures to HTTP responses. Auth and
// catalog failures belong to the upstream service, not the caller.
func classifyEngineError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingCredentials), errors.Is(err, domain.ErrAuthFailed):
		return http.StatusBadGateway, "catalog authorization failed"
	case errors.Is(err, domain.ErrCatalogAPIFailure):
		return http.StatusBadGateway, "catalog service unavailable"
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
