package domain

import (
	"errors"
	"time"
)

// TaskState is the lifecycle state of a measurement task.
type TaskState string

const (
	TaskRequested TaskState = "requested" // assignment requested, awaiting accept/reject
	TaskAssigned  TaskState = "assigned"  // accepted by the assignee
	TaskSubmitted TaskState = "submitted" // measurement uploaded, awaiting approval
	TaskApproved  TaskState = "approved"
	TaskRejected  TaskState = "rejected"
)

// taskTransitions defines the allowed state machine transitions.
var taskTransitions = map[TaskState][]TaskState{
	TaskRequested: {TaskAssigned, TaskRejected},
	TaskAssigned:  {TaskSubmitted},
	TaskSubmitted: {TaskApproved, TaskRejected},
}

var ErrTaskTransition = errors.New("invalid task transition")

// CanTransitionTo reports whether moving from the current state to next is valid.
func (s TaskState) CanTransitionTo(next TaskState) bool {
	for _, allowed := range taskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MeasurementTask tracks a site measurement assignment from request through
// approval.
type MeasurementTask struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	InquiryID     string     `json:"inquiryId" bson:"inquiry_id"`
	InquiryCode   string     `json:"inquiryCode" bson:"inquiry_code"`
	CustomerName  string     `json:"customerName" bson:"customer_name"`
	AssignedTo    string     `json:"assignedTo" bson:"assigned_to"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty" bson:"scheduled_date,omitempty"`
	State         TaskState  `json:"state" bson:"state"`
	FileURL       string     `json:"fileUrl,omitempty" bson:"file_url,omitempty"`
	Notes         string     `json:"notes,omitempty" bson:"notes,omitempty"`
	DecidedBy     string     `json:"decidedBy,omitempty" bson:"decided_by,omitempty"`
	DecidedAt     *time.Time `json:"decidedAt,omitempty" bson:"decided_at,omitempty"`
	CreatedDate   time.Time  `json:"createdDate" bson:"created_date"`
}
