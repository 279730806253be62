// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pindrop/internal/delivery/http/middleware"
	"pindrop/internal/delivery/http/response"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PinHandlerParams holds dependencies for PinHandler, injected by Fx.
type PinHandlerParams struct {
	fx.In

	PinUC  usecase.PinUsecase
	Logger *slog.Logger
}

// PinHandler holds dependencies for pin-related handlers
type PinHandler struct {
	pinUC  usecase.PinUsecase
	logger *slog.Logger
}

// NewPinHandler is the constructor for PinHandler
func NewPinHandler(params PinHandlerParams) *PinHandler {
	return &PinHandler{
		pinUC:  params.PinUC,
		logger: params.Logger,
	}
}

// DropPinRequest represents the request body for dropping a pin
type DropPinRequest struct {
	PinType     string     `json:"pin_type" validate:"required,oneof=current future"`
	Latitude    float64    `json:"latitude" validate:"latitude"`
	Longitude   float64    `json:"longitude" validate:"longitude"`
	ArrivalTime *time.Time `json:"arrival_time,omitempty"`
	Description string     `json:"description,omitempty" validate:"max=280"`
}

// DropPin handles creating a current pin or scheduling a future pin
func (h *PinHandler) DropPin(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req DropPinRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pin input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.pinUC.DropPin(c.Request().Context(), ownerID, &usecase.DropPinInput{
		PinType:     req.PinType,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ArrivalTime: req.ArrivalTime,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	statusCode := http.StatusCreated
	if result.AlreadyExists || result.Moved {
		statusCode = http.StatusOK
	}

	return response.Success(c, statusCode, result, "Pin dropped successfully")
}

// DeletePin handles removing a pin owned by the caller
func (h *PinHandler) DeletePin(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pin ID")
	}

	if err := h.pinUC.DeletePin(c.Request().Context(), ownerID, pinID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Pin deleted"}, "Pin deleted successfully")
}

// ListOwnPins handles retrieving the caller's pins
func (h *PinHandler) ListOwnPins(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pins, err := h.pinUC.ListOwnPins(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pins, "Pins retrieved successfully")
}

// GeneratePinShareQR handles generating a share QR code for a pin
func (h *PinHandler) GeneratePinShareQR(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pinID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pin ID")
	}

	qrCode, err := h.pinUC.GeneratePinShareQR(c.Request().Context(), ownerID, pinID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	return c.Blob(http.StatusOK, "image/png", qrCode)
}
