package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mhd-interiors/crm-console/internal/api/metrics"
	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/listview"
	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /customer/all. The whole collection is returned: the
// console filters and paginates client-side.
//
// @Summary      List all customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Customer
// @Failure      401  {object}  errorResponse
// @Router       /customer/all [get]
func (h *CustomerHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	// Non-admin operators only see their own branch.
	branchID := ""
	if !sess.IsAdmin() {
		branchID = sess.BranchID
	}

	customers, err := h.service.ListAll(c.Request().Context(), branchID)
	if err != nil {
		return err
	}

	metrics.CollectionsServedTotal.WithLabelValues("customers").Inc()
	return c.JSON(http.StatusOK, customers)
}

// Stats handles GET /customer/stats — the per-bucket counts behind the
// stats cards, computed against the current clock.
func (h *CustomerHandler) Stats(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	branchID := ""
	if !sess.IsAdmin() {
		branchID = sess.BranchID
	}

	customers, err := h.service.ListAll(c.Request().Context(), branchID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listview.CountCustomerStats(customers, time.Now()))
}

// Create handles POST /customer/create.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /customer/create [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer := req.toDomain()
	customer.CreatedBy = sess.UserID
	if customer.BranchID == "" {
		customer.BranchID = sess.BranchID
	}

	created, err := h.service.Create(c.Request().Context(), customer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /customer/update. The payload is the full record; the
// console re-fetches the collection after a successful write.
func (h *CustomerHandler) Update(c echo.Context) error {
	var customer domain.Customer
	if err := c.Bind(&customer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if customer.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "customerId is required")
	}

	if err := h.service.Update(c.Request().Context(), &customer); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /customer/delete?id=.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ByPhone handles GET /customer/by-phone?phone= — duplicate lookup before
// creating a customer.
func (h *CustomerHandler) ByPhone(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "phone is required")
	}

	customer, err := h.service.FindByPhone(c.Request().Context(), phone)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// AddComment handles POST /customer/add-comment.
func (h *CustomerHandler) AddComment(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment := &domain.CustomerComment{
		CustomerID: req.CustomerID,
		Comment:    req.Comment,
		AuthorID:   sess.UserID,
	}
	if err := h.service.AddComment(c.Request().Context(), comment); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// Comments handles GET /customer/comments?id=.
func (h *CustomerHandler) Comments(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	comments, err := h.service.Comments(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}
