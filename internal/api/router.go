// Package api assembles the HTTP surface: routing, middleware, metrics, and
// error rendering.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/api/handler"
	"github.com/mhd-interiors/crm-console/internal/api/middleware"
	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Customer     *handler.CustomerHandler
	Inquiry      *handler.InquiryHandler
	User         *handler.UserHandler
	Role         *handler.RoleHandler
	Measurement  *handler.MeasurementHandler
	Notification *handler.NotificationHandler
	Health       *handler.HealthHandler
	WS           *handler.WSHandler
}

// NewRouter builds the echo instance with the full route table mounted.
func NewRouter(h Handlers, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echoprometheus.NewMiddleware("crm_console"))

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", h.Health.Live)
	e.GET("/health/ready", h.Health.Ready)

	api := e.Group("/api")
	api.POST("/authentication/login", h.Auth.Login)

	auth := middleware.Auth(jwtSecret)

	customer := api.Group("/customer", auth)
	customer.GET("/all", h.Customer.List)
	customer.GET("/stats", h.Customer.Stats)
	customer.GET("/by-phone", h.Customer.ByPhone)
	customer.GET("/comments", h.Customer.Comments)
	customer.POST("/create", h.Customer.Create, middleware.RequirePermission(domain.PermCustomersCreate))
	customer.PUT("/update", h.Customer.Update, middleware.RequirePermission(domain.PermCustomersEdit))
	customer.DELETE("/delete", h.Customer.Delete, middleware.RequirePermission(domain.PermCustomersDelete))
	customer.POST("/add-comment", h.Customer.AddComment, middleware.RequirePermission(domain.PermCustomerCommentsAdd))

	inquiry := api.Group("/inquiry", auth)
	inquiry.GET("/all", h.Inquiry.List)
	inquiry.POST("/create", h.Inquiry.Create, middleware.RequirePermission(domain.PermInquiriesCreate))
	api.GET("/workscope/all", h.Inquiry.Workscopes, auth)

	user := api.Group("/user", auth)
	user.GET("/by-branch", h.User.ByBranch)
	user.GET("/by-role/:role", h.User.ByRole)
	user.GET("/all-users", h.User.List, middleware.RequirePermission(domain.PermUsersManage))
	user.POST("/create", h.User.Create, middleware.RequirePermission(domain.PermUsersManage))
	user.PUT("/update", h.User.Update, middleware.RequirePermission(domain.PermUsersManage))
	user.POST("/reset-password", h.User.ResetPassword, middleware.RequirePermission(domain.PermUsersManage))

	role := api.Group("", auth, middleware.RequirePermission(domain.PermRolesManage))
	role.GET("/role/all", h.Role.List)
	role.POST("/role/create", h.Role.Create)
	role.GET("/permission/all", h.Role.Permissions)
	role.POST("/userclaim/grant", h.Role.Grant)
	role.POST("/userclaim/revoke", h.Role.Revoke)
	role.GET("/userclaim/by-user", h.Role.UserPermissions)

	measurement := api.Group("/measurement", auth)
	measurement.GET("/my-measurements", h.Measurement.My)
	measurement.POST("/submit-task", h.Measurement.SubmitTask)
	measurement.GET("/approvals", h.Measurement.Approvals, middleware.RequirePermission(domain.PermMeasurementsApprove))
	measurement.GET("/assignment-requests", h.Measurement.AssignmentRequests, middleware.RequirePermission(domain.PermMeasurementsApprove))
	measurement.POST("/approve", h.Measurement.Approve, middleware.RequirePermission(domain.PermMeasurementsApprove))
	measurement.POST("/reject", h.Measurement.Reject, middleware.RequirePermission(domain.PermMeasurementsApprove))
	measurement.POST("/assignment/approve", h.Measurement.ApproveAssignment, middleware.RequirePermission(domain.PermMeasurementsApprove))
	measurement.POST("/assignment/reject", h.Measurement.RejectAssignment, middleware.RequirePermission(domain.PermMeasurementsApprove))

	notification := api.Group("/notification", auth)
	notification.GET("/my", h.Notification.My)
	notification.POST("/send", h.Notification.Send, middleware.RequirePermission(domain.PermNotificationsSend))

	// Websocket clients authenticate via the access_token query parameter.
	e.GET("/ws/notifications", h.WS.Subscribe, auth)

	return e
}
