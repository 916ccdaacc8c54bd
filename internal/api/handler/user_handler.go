package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mhd-interiors/crm-console/internal/api/metrics"
	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/service"
)

// UserHandler handles HTTP requests for operator account management.
type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	FirstName           string   `json:"firstName" validate:"required"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"     validate:"required,email"`
	Phone               string   `json:"phone"`
	Password            string   `json:"password"  validate:"required,min=8"`
	Role                string   `json:"role"      validate:"required"`
	BranchID            string   `json:"branchId"`
	NotificationEnabled bool     `json:"isNotificationEnabled"`
	Permissions         []string `json:"permissions"`
}

type resetPasswordRequest struct {
	UserID      string `json:"userId"      validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// List handles GET /user/all-users.
//
// @Summary      List all operators
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /user/all-users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.CollectionsServedTotal.WithLabelValues("users").Inc()
	return c.JSON(http.StatusOK, users)
}

// ByBranch handles GET /user/by-branch — operators sharing the caller's
// branch, used to populate assignment dropdowns.
func (h *UserHandler) ByBranch(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	branchID := c.QueryParam("branchId")
	if branchID == "" {
		branchID = sess.BranchID
	}

	users, err := h.service.ListByBranch(c.Request().Context(), branchID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ByRole handles GET /user/by-role/:role.
func (h *UserHandler) ByRole(c echo.Context) error {
	role := c.Param("role")
	if role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "role is required")
	}

	users, err := h.service.ListByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /user/create.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), service.CreateUserInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		Password:            req.Password,
		Role:                req.Role,
		BranchID:            req.BranchID,
		NotificationEnabled: req.NotificationEnabled,
		Permissions:         req.Permissions,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /user/update. Password and creation timestamps are
// preserved server-side.
func (h *UserHandler) Update(c echo.Context) error {
	var user domain.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if user.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.service.Update(c.Request().Context(), &user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ResetPassword handles POST /user/reset-password.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.ResetPassword(c.Request().Context(), req.UserID, req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
