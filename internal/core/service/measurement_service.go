package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

// measurementService walks tasks through the
// requested → assigned → submitted → approved/rejected state machine.
type measurementService struct {
	repo     ports.MeasurementRepository
	notifier ports.NotificationService
	log      zerolog.Logger
}

func NewMeasurementService(repo ports.MeasurementRepository, notifier ports.NotificationService, log zerolog.Logger) ports.MeasurementService {
	return &measurementService{repo: repo, notifier: notifier, log: log}
}

func (s *measurementService) MyMeasurements(ctx context.Context, userID string) ([]domain.MeasurementTask, error) {
	return s.repo.ListByAssignee(ctx, userID)
}

func (s *measurementService) Approvals(ctx context.Context) ([]domain.MeasurementTask, error) {
	return s.repo.ListByState(ctx, domain.TaskSubmitted)
}

func (s *measurementService) AssignmentRequests(ctx context.Context) ([]domain.MeasurementTask, error) {
	return s.repo.ListByState(ctx, domain.TaskRequested)
}

func (s *measurementService) SubmitTask(ctx context.Context, in ports.SubmitTaskInput) error {
	task, err := s.transition(ctx, in.TaskID, domain.TaskSubmitted, "", in.Notes)
	if err != nil {
		return err
	}
	task.FileURL = in.FileURL
	return s.repo.Update(ctx, task)
}

func (s *measurementService) Approve(ctx context.Context, in ports.DecisionInput) error {
	task, err := s.transition(ctx, in.TaskID, domain.TaskApproved, in.DecidedBy, in.Notes)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return err
	}
	s.notifyAssignee(ctx, task, "Measurement approved")
	return nil
}

func (s *measurementService) Reject(ctx context.Context, in ports.DecisionInput) error {
	task, err := s.transition(ctx, in.TaskID, domain.TaskRejected, in.DecidedBy, in.Notes)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return err
	}
	s.notifyAssignee(ctx, task, "Measurement rejected")
	return nil
}

func (s *measurementService) ApproveAssignment(ctx context.Context, in ports.DecisionInput) error {
	task, err := s.transition(ctx, in.TaskID, domain.TaskAssigned, in.DecidedBy, in.Notes)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return err
	}
	s.notifyAssignee(ctx, task, "Measurement assignment accepted")
	return nil
}

func (s *measurementService) RejectAssignment(ctx context.Context, in ports.DecisionInput) error {
	task, err := s.transition(ctx, in.TaskID, domain.TaskRejected, in.DecidedBy, in.Notes)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return err
	}
	s.notifyAssignee(ctx, task, "Measurement assignment rejected")
	return nil
}

// transition loads the task and applies the state change after validating it
// against the state machine. The returned task is not yet persisted.
func (s *measurementService) transition(ctx context.Context, taskID string, next domain.TaskState, decidedBy, notes string) (*domain.MeasurementTask, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.State.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrTaskTransition, task.State, next)
	}

	now := time.Now().UTC()
	task.State = next
	if notes != "" {
		task.Notes = notes
	}
	if decidedBy != "" {
		task.DecidedBy = decidedBy
		task.DecidedAt = &now
	}
	return task, nil
}

// notifyAssignee pushes a notification about the decision; a failure here is
// logged but never fails the decision itself.
func (s *measurementService) notifyAssignee(ctx context.Context, task *domain.MeasurementTask, title string) {
	if s.notifier == nil || task.AssignedTo == "" {
		return
	}
	_, err := s.notifier.Send(ctx, ports.SendNotificationInput{
		UserID:  task.AssignedTo,
		Title:   title,
		Message: fmt.Sprintf("Inquiry %s (%s)", task.InquiryCode, task.CustomerName),
	})
	if err != nil {
		s.log.Warn().Err(err).Str("task_id", task.ID).Msg("failed to notify assignee")
	}
}
