package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mhd-interiors/crm-console/internal/api/metrics"
	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

// InquiryHandler handles HTTP requests for project inquiries.
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// List handles GET /inquiry/all.
//
// @Summary      List all inquiries
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Inquiry
// @Failure      401  {object}  errorResponse
// @Router       /inquiry/all [get]
func (h *InquiryHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	branchID := ""
	if !sess.IsAdmin() {
		branchID = sess.BranchID
	}

	inquiries, err := h.service.ListAll(c.Request().Context(), branchID)
	if err != nil {
		return err
	}

	metrics.CollectionsServedTotal.WithLabelValues("inquiries").Inc()
	return c.JSON(http.StatusOK, inquiries)
}

// Create handles POST /inquiry/create. The inquiry code is generated
// server-side; any code in the payload is ignored.
func (h *InquiryHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var inq domain.Inquiry
	if err := c.Bind(&inq); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if inq.CustomerName == "" || inq.CustomerContact == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "customerName and customerContact are required")
	}

	inq.CreatedBy = sess.UserID
	if inq.BranchID == "" {
		inq.BranchID = sess.BranchID
	}

	created, err := h.service.Create(c.Request().Context(), &inq)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Workscopes handles GET /workscope/all — the catalogue used to populate
// the inquiry form.
func (h *InquiryHandler) Workscopes(c echo.Context) error {
	scopes, err := h.service.Workscopes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scopes)
}
