package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")

	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrRoleNotFound         = errors.New("role not found")
	ErrRoleExists           = errors.New("role already exists")
	ErrMeasurementNotFound  = errors.New("measurement task not found")
	ErrInvalidTaskState     = errors.New("invalid measurement task state")
	ErrNotificationNotFound = errors.New("notification not found")
)
