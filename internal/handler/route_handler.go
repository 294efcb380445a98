package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smart-commute/service-commute/internal/application"
	"github.com/smart-commute/service-commute/internal/platform/middleware"
	"github.com/smart-commute/service-commute/internal/platform/response"
)

// RouteHandler handles HTTP requests for planning, selecting and saving routes.
type RouteHandler struct {
	planner     *application.PlannerService
	savedRoutes *application.SavedRouteService
	analytics   *application.AnalyticsService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(
	planner *application.PlannerService,
	savedRoutes *application.SavedRouteService,
	analytics *application.AnalyticsService,
) *RouteHandler {
	return &RouteHandler{planner: planner, savedRoutes: savedRoutes, analytics: analytics}
}

// RegisterRoutes registers all route planning routes on the given router group.
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	api.Use(middleware.CommuterMiddleware())
	{
		api.POST("/plans", h.PlanRoute)
		api.GET("/routes", h.CurrentRoutes)
		api.POST("/routes/:id/select", h.SelectRoute)
		api.POST("/routes/:id/save", h.SaveRoute)
		api.GET("/saved-routes", h.ListSavedRoutes)
		api.DELETE("/saved-routes/:index", h.DeleteSavedRoute)
		api.GET("/analytics", h.GetAnalytics)
	}
}

// PlanRoute handles POST /api/v1/plans.
func (h *RouteHandler) PlanRoute(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	var req application.PlanRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.planner.PlanRoute(c.Request.Context(), commuterID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result, application.MsgRoutePlanned)
}

// CurrentRoutes handles GET /api/v1/routes.
func (h *RouteHandler) CurrentRoutes(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	result, err := h.planner.CurrentRoutes(c.Request.Context(), commuterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// SelectRoute handles POST /api/v1/routes/:id/select.
func (h *RouteHandler) SelectRoute(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	routeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid route ID")
		return
	}

	result, err := h.planner.SelectRoute(c.Request.Context(), commuterID, routeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, result, result.Message)
}

// SaveRoute handles POST /api/v1/routes/:id/save.
func (h *RouteHandler) SaveRoute(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	routeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid route ID")
		return
	}

	result, err := h.savedRoutes.SaveRoute(c.Request.Context(), commuterID, routeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result, application.MsgRouteSaved)
}

// ListSavedRoutes handles GET /api/v1/saved-routes.
func (h *RouteHandler) ListSavedRoutes(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	result, err := h.savedRoutes.ListSavedRoutes(c.Request.Context(), commuterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteSavedRoute handles DELETE /api/v1/saved-routes/:index.
func (h *RouteHandler) DeleteSavedRoute(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "invalid saved route index")
		return
	}

	result, err := h.savedRoutes.DeleteSavedRoute(c.Request.Context(), commuterID, index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, result, application.MsgRouteDeleted)
}

// GetAnalytics handles GET /api/v1/analytics.
func (h *RouteHandler) GetAnalytics(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	result, err := h.analytics.GetAnalytics(c.Request.Context(), commuterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
