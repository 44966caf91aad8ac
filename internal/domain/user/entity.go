package user

type Role string

const (
	RoleAdmin    Role = "Admin"    // full access
	RoleHR       Role = "HR"       // can correct and delete attendance records
	RoleEmployee Role = "Employee" // self-service check-in/check-out only
)

// IsStaff reports whether the role may perform administrative attendance
// edits (update, delete, daily summaries).
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleHR
}
