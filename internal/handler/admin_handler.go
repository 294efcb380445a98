package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/smart-commute/service-commute/internal/application"
	"github.com/smart-commute/service-commute/internal/platform/response"
)

// AdminHandler exposes operational figures about the running service.
type AdminHandler struct {
	planner *application.PlannerService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(planner *application.PlannerService) *AdminHandler {
	return &AdminHandler{planner: planner}
}

// RegisterRoutes registers admin routes.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/api/v1/admin")
	{
		admin.GET("/stats", h.Stats)
	}
}

// Stats handles GET /api/v1/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	response.Success(c, h.planner.Stats())
}
