package handler

import (
	"log/slog"
	"net/http"

	"pindrop/internal/delivery/http/middleware"
	"pindrop/internal/delivery/http/response"
	"pindrop/internal/domain/repository"
	"pindrop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// MapHandler holds dependencies for map query handlers
type MapHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// ViewportRequest represents the query parameters for map pin queries.
// Detailed bounds validation happens in the usecase; these tags only catch
// values no viewport could ever contain.
type ViewportRequest struct {
	North float64 `query:"north" validate:"min=-90,max=90"`
	South float64 `query:"south" validate:"min=-90,max=90"`
	East  float64 `query:"east" validate:"min=-180,max=180"`
	West  float64 `query:"west" validate:"min=-180,max=180"`
	Zoom  int     `query:"zoom" validate:"min=0,max=22"`
	// Cluster merges nearby pins into markers when the zoom allows it
	Cluster bool `query:"cluster"`
	// Mode filters pins to owners currently in the given mode
	Mode string `query:"mode" validate:"omitempty,max=30"`
}

// QueryViewport handles retrieving pins visible inside a viewport
func (h *MapHandler) QueryViewport(c echo.Context) error {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ViewportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid viewport input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.mapUC.QueryViewport(c.Request().Context(), viewerID, &usecase.ViewportQueryInput{
		Viewport: repository.Viewport{
			North: req.North,
			South: req.South,
			East:  req.East,
			West:  req.West,
		},
		Zoom:    req.Zoom,
		Cluster: req.Cluster,
		Mode:    req.Mode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Map pins retrieved successfully")
}

// IncomingRequest represents the query parameters for the incoming-visitors query
type IncomingRequest struct {
	North       float64 `query:"north" validate:"min=-90,max=90"`
	South       float64 `query:"south" validate:"min=-90,max=90"`
	East        float64 `query:"east" validate:"min=-180,max=180"`
	West        float64 `query:"west" validate:"min=-180,max=180"`
	HorizonDays int     `query:"horizon_days" validate:"min=0,max=365"`
}

// IncomingVisitors handles aggregating scheduled visits to an area
func (h *MapHandler) IncomingVisitors(c echo.Context) error {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req IncomingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid incoming query input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.mapUC.IncomingVisitors(c.Request().Context(), viewerID, &usecase.IncomingInput{
		Viewport: repository.Viewport{
			North: req.North,
			South: req.South,
			East:  req.East,
			West:  req.West,
		},
		HorizonDays: req.HorizonDays,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Incoming visitors retrieved successfully")
}
