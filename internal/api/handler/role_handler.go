package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

// RoleHandler handles HTTP requests for roles and per-user permissions.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

type createRoleRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type userClaimRequest struct {
	UserID     string `json:"userId"     validate:"required"`
	Permission string `json:"permission" validate:"required"`
}

// List handles GET /role/all.
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Create handles POST /role/create.
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), &domain.Role{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Permissions handles GET /permission/all — the full capability catalogue.
func (h *RoleHandler) Permissions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Permissions(c.Request().Context()))
}

// Grant handles POST /userclaim/grant.
func (h *RoleHandler) Grant(c echo.Context) error {
	var req userClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.GrantPermission(c.Request().Context(), req.UserID, req.Permission); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Revoke handles POST /userclaim/revoke.
func (h *RoleHandler) Revoke(c echo.Context) error {
	var req userClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.RevokePermission(c.Request().Context(), req.UserID, req.Permission); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UserPermissions handles GET /userclaim/by-user?id=.
func (h *RoleHandler) UserPermissions(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	perms, err := h.service.UserPermissions(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, perms)
}
