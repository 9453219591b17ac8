package models

// RoleType represents a user's role in the portal
type RoleType string

const (
	// RoleCoordinator is the main coordinator role with full admin access
	RoleCoordinator RoleType = "main_coordinator"
	// RoleFaculty is the regular faculty member role
	RoleFaculty RoleType = "faculty"
)

// Valid reports whether the role is one of the known roles
func (r RoleType) Valid() bool {
	return r == RoleCoordinator || r == RoleFaculty
}
