package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aromax/storefront/internal/domain"
	"github.com/aromax/storefront/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	serviceName    = "aromax-storefront"
	serviceVersion = "1.0.0"
)

// CatalogReloader refreshes the live catalog from its configured source
type CatalogReloader interface {
	Reload(ctx context.Context) (*domain.Catalog, error)
	Source() string
}

// Handler holds dependencies for HTTP handlers.
// Any dependency may be nil; its endpoints then answer 501.
type Handler struct {
	search    *usecase.SearchService
	assistant *usecase.Assistant
	tracker   *usecase.DeliveryTracker
	catalog   CatalogReloader
	logger    zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	search *usecase.SearchService,
	assistant *usecase.Assistant,
	tracker *usecase.DeliveryTracker,
	catalog CatalogReloader,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		search:    search,
		assistant: assistant,
		tracker:   tracker,
		catalog:   catalog,
		logger:    logger,
	}
}

// AssistantRequest is the body of POST /assistant/messages
type AssistantRequest struct {
	Message string `json:"message"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	resp := gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	}
	if h.catalog != nil {
		resp["catalog"] = h.catalog.Source()
	}
	c.JSON(http.StatusOK, resp)
}

// ListProducts handles GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	if !h.requireSearch(c) {
		return
	}

	products, err := h.search.Products(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GetProduct handles GET /products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	if !h.requireSearch(c) {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id must be an integer"})
		return
	}

	product, err := h.search.Product(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Search handles GET /search?q=
func (h *Handler) Search(c *gin.Context) {
	if !h.requireSearch(c) {
		return
	}

	result, err := h.search.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ParseQuery handles GET /search/parse?q=
func (h *Handler) ParseQuery(c *gin.Context) {
	if !h.requireSearch(c) {
		return
	}

	filter, err := h.search.ParseQuery(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, filter)
}

// Suggestions handles GET /search/suggestions
func (h *Handler) Suggestions(c *gin.Context) {
	if !h.requireSearch(c) {
		return
	}

	suggestions, err := h.search.Suggestions(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// Recommendations handles GET /search/recommendations?q=
func (h *Handler) Recommendations(c *gin.Context) {
	if !h.requireSearch(c) {
		return
	}

	recs, err := h.search.Recommendations(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// AssistantMessage handles POST /assistant/messages
func (h *Handler) AssistantMessage(c *gin.Context) {
	if h.assistant == nil {
		notConfigured(c, "assistant")
		return
	}

	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": h.assistant.Reply(req.Message)})
}

// AssistantGreeting handles GET /assistant/greeting
func (h *Handler) AssistantGreeting(c *gin.Context) {
	if h.assistant == nil {
		notConfigured(c, "assistant")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": h.assistant.Greeting()})
}

// ListDeliveries handles GET /deliveries
func (h *Handler) ListDeliveries(c *gin.Context) {
	if h.tracker == nil {
		notConfigured(c, "delivery tracking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": h.tracker.Orders()})
}

// TrackDelivery handles GET /deliveries/:orderNumber
func (h *Handler) TrackDelivery(c *gin.Context) {
	if h.tracker == nil {
		notConfigured(c, "delivery tracking")
		return
	}

	order, err := h.tracker.Track(c.Param("orderNumber"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ReloadCatalog handles POST /catalog/reload
func (h *Handler) ReloadCatalog(c *gin.Context) {
	if h.catalog == nil {
		notConfigured(c, "catalog reload")
		return
	}

	snapshot, err := h.catalog.Reload(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).
			Str("request_id", c.GetString(requestIDKey)).
			Str("source", h.catalog.Source()).
			Msg("catalog reload request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog source unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source":   h.catalog.Source(),
		"revision": snapshot.Revision(),
		"products": snapshot.Len(),
	})
}

func (h *Handler) requireSearch(c *gin.Context) bool {
	if h.search == nil {
		notConfigured(c, "search")
		return false
	}
	return true
}

func notConfigured(c *gin.Context, what string) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": what + " service not configured"})
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	status, message := statusForError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).
			Str("request_id", c.GetString(requestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}
	c.JSON(status, gin.H{"error": message})
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "rate limit exceeded"
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusBadGateway, "catalog source unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "request cancelled"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
