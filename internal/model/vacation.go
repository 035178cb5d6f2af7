package model

import "time"

// VacationStatus is the approval state of a vacation request.
type VacationStatus string

const (
	VacationStatusPending  VacationStatus = "pending"
	VacationStatusApproved VacationStatus = "approved"
	VacationStatusRejected VacationStatus = "rejected"
)

// VacationRange is an absence interval rendered as a background band on the
// chart. Sources hand the chart approved ranges only.
type VacationRange struct {
	ID        string
	UserEmail string
	StartDate time.Time
	EndDate   time.Time
	Status    VacationStatus
}

// Overlaps reports whether the range intersects [from, to].
func (v VacationRange) Overlaps(from, to time.Time) bool {
	return !v.EndDate.Before(from) && !v.StartDate.After(to)
}
