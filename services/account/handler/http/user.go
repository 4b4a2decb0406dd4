package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/internal/utils"
	"github.com/codeforher/backend/services/account"
)

// UserHandler handles HTTP requests for user records
type UserHandler struct {
	accountUC account.AccountUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(accountUC account.AccountUC) *UserHandler {
	return &UserHandler{accountUC: accountUC}
}

// GetUsers returns all users, or a single user when user_id is supplied
func (h *UserHandler) GetUsers(c echo.Context) error {
	if userID := c.QueryParam("user_id"); userID != "" {
		user, err := h.accountUC.GetUserByID(c.Request().Context(), userID)
		if err != nil {
			return utils.RespondError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
	}

	users, err := h.accountUC.ListUsers(c.Request().Context())
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", users)
}

// GetUser returns a single user by path id
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.accountUC.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdateUser applies a patch to a user record
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var patch models.UserPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.accountUC.UpdateUser(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser removes a user record
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.accountUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return utils.RespondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}
