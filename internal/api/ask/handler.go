package ask

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/claritycore/internal/domain"
	"github.com/campuskit/claritycore/internal/service"
)

// Handler handles the public student query API
type Handler struct {
	askService *service.AskService
}

// NewHandler creates a new ask handler
func NewHandler(askService *service.AskService) *Handler {
	return &Handler{askService: askService}
}

// RegisterRoutes registers ask routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("", h.Ask)
}

// Ask answers a student query
func (h *Handler) Ask(c *gin.Context) {
	var req domain.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.askService.Ask(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
