package models

import (
	"gorm.io/gorm"
)

// Role IDs are seeded at startup and stable across environments.
// Business logic must go through these constants, never raw integers.
const (
	RoleAdministrator uint = 1 // superuser, bypasses the permission matrix
	RoleAdmin         uint = 2
	RoleRegistered    uint = 3
)

// Role is the fixed set of account roles. Rows are seeded on startup and
// never deleted by the application.
type Role struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null" binding:"required"`
}

// RoleName returns the seeded name for a role id, for display/logging.
func RoleName(id uint) string {
	switch id {
	case RoleAdministrator:
		return "Administrator"
	case RoleAdmin:
		return "Admin"
	case RoleRegistered:
		return "Registered"
	default:
		return "Unknown"
	}
}
