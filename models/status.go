package models

// Query status values shared by every public-submitted query entity
// (contact queries, feedback, support requests, technical issues).
const (
	StatusNew        = "NEW"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
	StatusCancelled  = "CANCELLED"
)

// User roles
const (
	RoleMember      = "MEMBER"
	RoleAdmin       = "ADMIN"
	RoleTenantAdmin = "TENANT_ADMIN"
)

// IsValidQueryStatus reports whether s is a known query status
func IsValidQueryStatus(s string) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved, StatusCancelled:
		return true
	}
	return false
}

// IsValidRole reports whether r is a known user role
func IsValidRole(r string) bool {
	switch r {
	case RoleMember, RoleAdmin, RoleTenantAdmin:
		return true
	}
	return false
}

// IsAdminRole reports whether r grants access to admin-only operations
func IsAdminRole(r string) bool {
	return r == RoleAdmin || r == RoleTenantAdmin
}
