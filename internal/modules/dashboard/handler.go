package dashboard

import (
	"errors"
	"log"
	"net/http"

	"saasquatch/internal/modules/leads"
	"saasquatch/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler exposes the dashboard workflow over HTTP. All routes require an
// authenticated user; state is per user.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	d := protected.Group("/dashboard")
	{
		d.GET("/health", h.Health)
		d.POST("/search", h.Search)
		d.GET("/leads", h.Leads)
		d.PUT("/filters", h.SetFilters)
		d.POST("/leads/select-all", h.ToggleSelectAll)
		d.POST("/leads/:id/select", h.ToggleSelect)
		d.GET("/leads/:id/fit-breakdown", h.FitScoreBreakdown)
		d.POST("/enrich", h.Enrich)
	}
}

func (h *Handler) Health(c *gin.Context) {
	res := h.service.CheckBackend(c.Request.Context(), c.GetInt64("user_id"))
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.service.Search(c.Request.Context(), c.GetInt64("user_id"), req.Query)
	if err != nil {
		h.writeError(c, "search", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) Leads(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetView(c.GetInt64("user_id")))
}

func (h *Handler) SetFilters(c *gin.Context) {
	var f Filters
	if err := c.ShouldBindJSON(&f); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.service.SetFilters(c.GetInt64("user_id"), f)
	if err != nil {
		h.writeError(c, "filters", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) ToggleSelect(c *gin.Context) {
	view, err := h.service.ToggleSelect(c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		h.writeError(c, "select", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) ToggleSelectAll(c *gin.Context) {
	view, err := h.service.ToggleSelectAll(c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, "select-all", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) Enrich(c *gin.Context) {
	result, err := h.service.Enrich(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, "enrich", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) FitScoreBreakdown(c *gin.Context) {
	breakdown, err := h.service.FitScoreBreakdown(c.GetInt64("user_id"), c.Param("id"))
	if err != nil {
		h.writeError(c, "fit-breakdown", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}

// writeError maps workflow errors onto the API contract. Upstream detail is
// logged, not echoed.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	var upstream *leads.UpstreamError

	switch {
	case errors.Is(err, ErrEmptyQuery):
		response.Error(c, http.StatusBadRequest, "Please enter a search query")
	case errors.Is(err, ErrBackendUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "Lead service is not available")
	case errors.Is(err, ErrNoSelection):
		response.Error(c, http.StatusBadRequest, "No leads selected")
	case errors.Is(err, ErrLeadNotFound):
		response.Error(c, http.StatusNotFound, "Lead not found")
	case errors.Is(err, ErrNoFitScore):
		response.Error(c, http.StatusNotFound, "Lead has no fit score yet")
	case errors.Is(err, ErrInvalidFilters):
		response.Error(c, http.StatusBadRequest, "Invalid filter configuration")
	case errors.Is(err, ErrStaleRequest):
		response.Error(c, http.StatusConflict, "Superseded by a newer search")
	case errors.As(err, &upstream):
		log.Printf("dashboard %s upstream error: %v", op, err)
		response.Error(c, http.StatusBadGateway, "Lead service request failed")
	default:
		log.Printf("dashboard %s error: %v", op, err)
		response.Error(c, http.StatusInternalServerError, "Internal error")
	}
}
