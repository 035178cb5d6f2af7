package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrInvalidHours     = errors.New("hours must be positive")
	ErrInvalidPayload   = errors.New("invalid payload")
)
