package models

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleManager  UserRole = "manager"
	UserRoleEmployee UserRole = "employee"
)

var allRoles = []UserRole{
	UserRoleAdmin,
	UserRoleManager,
	UserRoleEmployee,
}

func (r UserRole) IsValid() bool {
	for _, role := range allRoles {
		if r == role {
			return true
		}
	}
	return false
}

// In checks the role against a route allow-list.
func (r UserRole) In(allowed []UserRole) bool {
	for _, role := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
