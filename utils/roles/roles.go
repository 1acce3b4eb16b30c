package roles

import "contesthub/models"

// Role is the access level carried by a profile. Only the three enumerated
// values are valid; anything else fails ParseRole and gates as unauthorized.
type Role string

const (
	Member Role = models.RoleMember
	Client Role = models.RoleClient
	Admin  Role = models.RoleAdmin
)

// Login entry routes on the frontend, returned to callers so a failed gate
// redirects to the matching login page instead of an error page
const (
	AdminLoginRoute  = "/adminlogin"
	ClientLoginRoute = "/clientlogin"
	MemberLoginRoute = "/memberlogin"
)

// ParseRole validates a stored role string. ok is false for anything outside
// the enumerated set; callers must treat that as unauthorized, not default it.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case Member, Client, Admin:
		return Role(s), true
	}
	return "", false
}

// CanAccess reports whether the current role may enter a dashboard gated on
// required. Admin and client dashboards demand an exact match; the member
// dashboard also admits admins.
func CanAccess(current, required Role) bool {
	if current == required {
		return true
	}
	return required == Member && current == Admin
}

// LoginRoute returns the login entry point for the dashboard gated on required
func LoginRoute(required Role) string {
	switch required {
	case Admin:
		return AdminLoginRoute
	case Client:
		return ClientLoginRoute
	default:
		return MemberLoginRoute
	}
}
