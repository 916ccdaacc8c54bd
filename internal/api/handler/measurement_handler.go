package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

// MeasurementHandler handles HTTP requests for the measurement-task
// lifecycle: assignment requests, uploads, and approvals.
type MeasurementHandler struct {
	service ports.MeasurementService
}

func NewMeasurementHandler(service ports.MeasurementService) *MeasurementHandler {
	return &MeasurementHandler{service: service}
}

type submitTaskRequest struct {
	TaskID  string `json:"taskId"  validate:"required"`
	FileURL string `json:"fileUrl" validate:"required,url"`
	Notes   string `json:"notes"`
}

type decisionRequest struct {
	TaskID string `json:"taskId" validate:"required"`
	Notes  string `json:"notes"`
}

// My handles GET /measurement/my-measurements — tasks assigned to the caller.
func (h *MeasurementHandler) My(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.MyMeasurements(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Approvals handles GET /measurement/approvals — submitted tasks awaiting a
// decision.
func (h *MeasurementHandler) Approvals(c echo.Context) error {
	tasks, err := h.service.Approvals(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// AssignmentRequests handles GET /measurement/assignment-requests.
func (h *MeasurementHandler) AssignmentRequests(c echo.Context) error {
	tasks, err := h.service.AssignmentRequests(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// SubmitTask handles POST /measurement/submit-task.
func (h *MeasurementHandler) SubmitTask(c echo.Context) error {
	var req submitTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SubmitTask(c.Request().Context(), ports.SubmitTaskInput{
		TaskID:  req.TaskID,
		FileURL: req.FileURL,
		Notes:   req.Notes,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Approve handles POST /measurement/approve.
func (h *MeasurementHandler) Approve(c echo.Context) error {
	return h.decide(c, h.service.Approve)
}

// Reject handles POST /measurement/reject.
func (h *MeasurementHandler) Reject(c echo.Context) error {
	return h.decide(c, h.service.Reject)
}

// ApproveAssignment handles POST /measurement/assignment/approve.
func (h *MeasurementHandler) ApproveAssignment(c echo.Context) error {
	return h.decide(c, h.service.ApproveAssignment)
}

// RejectAssignment handles POST /measurement/assignment/reject.
func (h *MeasurementHandler) RejectAssignment(c echo.Context) error {
	return h.decide(c, h.service.RejectAssignment)
}

func (h *MeasurementHandler) decide(c echo.Context, op func(ctx context.Context, in ports.DecisionInput) error) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := op(c.Request().Context(), ports.DecisionInput{
		TaskID:    req.TaskID,
		DecidedBy: sess.UserID,
		Notes:     req.Notes,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
