package employee

import "context"

// EmployeeRepository is the read-only view of the employee directory used
// by the attendance core.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns the full active roster; consumed by the absence
	// reconciliation job.
	ListActive(ctx context.Context) ([]Employee, error)
}
