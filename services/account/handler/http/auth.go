package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeforher/backend/internal/pkg/logger"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/internal/utils"
	"github.com/codeforher/backend/services/account"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	accountUC account.AccountUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUC account.AccountUC) *AuthHandler {
	return &AuthHandler{accountUC: accountUC}
}

// Signup handles account registration requests
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	userID, err := h.accountUC.Signup(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("signup failed", logger.Err(err))
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully",
		map[string]string{"user_id": userID})
}

// Login handles credential authentication requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accountUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Refresh exchanges a refresh token for a new access token
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RefreshToken == "" {
		return utils.BadRequestResponse(c, "refresh_token is required")
	}

	resp, err := h.accountUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed", resp)
}
