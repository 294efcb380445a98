package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/smart-commute/service-commute/internal/application"
	"github.com/smart-commute/service-commute/internal/domain/device"
	"github.com/smart-commute/service-commute/internal/domain/geo"
	"github.com/smart-commute/service-commute/internal/platform/middleware"
	"github.com/smart-commute/service-commute/internal/platform/response"
)

// DeviceHandler handles the page session, capability reports and the map overlay.
type DeviceHandler struct {
	service *application.DeviceService
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(service *application.DeviceService) *DeviceHandler {
	return &DeviceHandler{service: service}
}

// RegisterRoutes registers session, device and map routes.
func (h *DeviceHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	api.Use(middleware.CommuterMiddleware())
	{
		api.GET("/session", h.Bootstrap)

		api.POST("/device/capabilities", h.AnnounceCapabilities)
		api.POST("/device/position", h.ReportPosition)
		api.POST("/device/position/denied", h.DenyLocation)
		api.POST("/device/network", h.ReportNetwork)
		api.GET("/device/status", h.Status)

		api.POST("/map/visible", h.MapVisible)
		api.POST("/map/clicks", h.AddMapClick)
		api.GET("/map", h.Overlay)
	}
}

// Bootstrap handles GET /api/v1/session.
func (h *DeviceHandler) Bootstrap(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	result, err := h.service.Bootstrap(c.Request.Context(), commuterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AnnounceCapabilities handles POST /api/v1/device/capabilities.
func (h *DeviceHandler) AnnounceCapabilities(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	var req device.Capabilities
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AnnounceCapabilities(c.Request.Context(), commuterID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ReportPosition handles POST /api/v1/device/position.
func (h *DeviceHandler) ReportPosition(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	var req application.PositionReport
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ReportPosition(c.Request.Context(), commuterID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Watch {
		response.Success(c, result)
		return
	}
	response.SuccessWithMessage(c, result, "Location access granted")
}

// DenyLocation handles POST /api/v1/device/position/denied.
func (h *DeviceHandler) DenyLocation(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	result, err := h.service.DenyLocation(c.Request.Context(), commuterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, result, "Location access denied")
}

// ReportNetwork handles POST /api/v1/device/network.
func (h *DeviceHandler) ReportNetwork(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	var req device.Network
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ReportNetwork(c.Request.Context(), commuterID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Status handles GET /api/v1/device/status.
func (h *DeviceHandler) Status(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	result, err := h.service.Status(c.Request.Context(), commuterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// MapVisible handles POST /api/v1/map/visible.
func (h *DeviceHandler) MapVisible(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	result, err := h.service.MapVisible(c.Request.Context(), commuterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.MapLoaded && result.Scheduled {
		response.SuccessWithMessage(c, result, "Interactive map loaded successfully!")
		return
	}
	response.Success(c, result)
}

// AddMapClick handles POST /api/v1/map/clicks.
func (h *DeviceHandler) AddMapClick(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	var req geo.Coordinate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddMapClick(c.Request.Context(), commuterID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result, "")
}

// Overlay handles GET /api/v1/map.
func (h *DeviceHandler) Overlay(c *gin.Context) {
	commuterID, _ := middleware.GetCommuterID(c)

	result, err := h.service.Overlay(c.Request.Context(), commuterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
