package handler

import (
	"net/http"
	"time"

	"pindrop/internal/delivery/http/response"
	"pindrop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation. Registered
// only when test routes are enabled in config.
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(tokenSvc service.TokenService) *TestHandler {
	return &TestHandler{tokenSvc: tokenSvc}
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid JWT token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	// Get user information from context (set by auth middleware)
	userID := c.Get("userID")

	return response.Success(c, http.StatusOK, map[string]interface{}{
		"message": "Authentication middleware test successful",
		"userID":  userID,
		"status":  "authenticated",
	}, "Authentication middleware test successful")
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]interface{}{
		"message": "Public endpoint test successful",
		"status":  "public",
	}, "Public endpoint test successful")
}

// MintTestToken issues a short-lived access token for a fresh user ID so the
// authenticated routes can be exercised without the external auth service.
func (h *TestHandler) MintTestToken(c echo.Context) error {
	userID := uuid.New()
	token, err := h.tokenSvc.GenerateAccessToken(userID, time.Hour)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"user_id": userID.String(),
		"token":   token,
	}, "Test token minted successfully")
}
