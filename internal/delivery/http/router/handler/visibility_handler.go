package handler

import (
	"log/slog"
	"net/http"

	"pindrop/internal/delivery/http/middleware"
	"pindrop/internal/delivery/http/response"
	"pindrop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VisibilityHandlerParams holds dependencies for VisibilityHandler, injected by Fx.
type VisibilityHandlerParams struct {
	fx.In

	VisibilityUC usecase.VisibilityUsecase
	Logger       *slog.Logger
}

// VisibilityHandler holds dependencies for visibility setting handlers
type VisibilityHandler struct {
	visibilityUC usecase.VisibilityUsecase
	logger       *slog.Logger
}

// NewVisibilityHandler is the constructor for VisibilityHandler
func NewVisibilityHandler(params VisibilityHandlerParams) *VisibilityHandler {
	return &VisibilityHandler{
		visibilityUC: params.VisibilityUC,
		logger:       params.Logger,
	}
}

// SetVisibilityRequest represents the request body for updating the visibility level
type SetVisibilityRequest struct {
	Level string `json:"level" validate:"required,oneof=ghost circles fuzzy social discoverable beacon"`
}

// VisibilityResponse represents the visibility setting payload
type VisibilityResponse struct {
	Level string `json:"level"`
}

// GetVisibility handles retrieving the caller's visibility level
func (h *VisibilityHandler) GetVisibility(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	level, err := h.visibilityUC.GetLevel(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, VisibilityResponse{Level: string(level)}, "Visibility level retrieved successfully")
}

// SetVisibility handles updating the caller's visibility level
func (h *VisibilityHandler) SetVisibility(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SetVisibilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visibility input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	level, err := h.visibilityUC.SetLevel(c.Request().Context(), userID, req.Level)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, VisibilityResponse{Level: string(level)}, "Visibility level updated successfully")
}
