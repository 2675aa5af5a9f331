package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Role is a disjoint capability class. There is no hierarchy between roles:
// an admin does not pass moderator gates and a moderator does not pass admin
// gates.
type Role string

const (
	RoleStudent   Role = "student"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ParseRole normalizes and validates a role value (case-insensitive)
func ParseRole(value string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleModerator:
		return RoleModerator, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("invalid role: %s", value)
}

type User struct {
	gorm.Model
	Name     string `gorm:"default:''" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	PhotoURL string `gorm:"default:''" json:"photoURL"`
	Role     Role   `gorm:"type:varchar(16);default:'student'" json:"role"`
}
