package entity

import "fmt"

// Role is the closed set of user roles. Authorization checks switch over it
// exhaustively instead of comparing raw strings scattered across handlers.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleDoctor     Role = "doctor"
	RolePatient    Role = "patient"
)

// ParseRole converts a stored or inbound string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperAdmin, RoleDoctor, RolePatient:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// DashboardPath returns the role-scoped dashboard route used by the
// /dashboard redirect endpoint.
func (r Role) DashboardPath() string {
	switch r {
	case RoleSuperAdmin:
		return "/admin/dashboard"
	case RoleDoctor:
		return "/doctor/dashboard"
	case RolePatient:
		return "/patient/dashboard"
	}
	return "/"
}
