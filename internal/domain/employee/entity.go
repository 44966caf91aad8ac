package employee

import "time"

// Employee is the directory entry for an employee. This service only reads
// employees; onboarding, approval and profile edits live in the employee
// management service.
type Employee struct {
	ID         string
	FullName   string
	Email      string
	Department string
	Position   string
	Status     EmploymentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)
