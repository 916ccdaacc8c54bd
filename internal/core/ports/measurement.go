package ports

import (
	"context"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// SubmitTaskInput carries a measurement upload for an assigned task.
type SubmitTaskInput struct {
	TaskID  string
	FileURL string
	Notes   string
}

// DecisionInput carries an approve/reject decision on a task or an
// assignment request.
type DecisionInput struct {
	TaskID    string
	DecidedBy string
	Notes     string
}

// MeasurementService defines the measurement-task use cases.
type MeasurementService interface {
	MyMeasurements(ctx context.Context, userID string) ([]domain.MeasurementTask, error)
	Approvals(ctx context.Context) ([]domain.MeasurementTask, error)
	AssignmentRequests(ctx context.Context) ([]domain.MeasurementTask, error)
	SubmitTask(ctx context.Context, in SubmitTaskInput) error
	Approve(ctx context.Context, in DecisionInput) error
	Reject(ctx context.Context, in DecisionInput) error
	ApproveAssignment(ctx context.Context, in DecisionInput) error
	RejectAssignment(ctx context.Context, in DecisionInput) error
}

// MeasurementRepository defines persistence operations for measurement tasks.
type MeasurementRepository interface {
	FindByID(ctx context.Context, id string) (*domain.MeasurementTask, error)
	Update(ctx context.Context, task *domain.MeasurementTask) error
	ListByAssignee(ctx context.Context, userID string) ([]domain.MeasurementTask, error)
	ListByState(ctx context.Context, state domain.TaskState) ([]domain.MeasurementTask, error)
}
