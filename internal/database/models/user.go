package models

import (
	"fmt"
	"time"
)

// Role is the access level of an identity account.
type Role string

const (
	RoleUser               Role = "USER"
	RoleAdministrator      Role = "ADMINISTRATOR"
	RoleSuperAdministrator Role = "SUPER_ADMINISTRATOR"
)

// ParseRole validates a raw role name coming from the API.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleUser, RoleAdministrator, RoleSuperAdministrator:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// IsAdmin reports whether the role grants access to the admin API.
func (r Role) IsAdmin() bool {
	return r == RoleAdministrator || r == RoleSuperAdministrator
}

// User is an identity account. Rows are created lazily on first OAuth login;
// Registered flips to true once the account completes student registration.
type User struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Fio        string    `json:"fio" gorm:"size:200"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Role       Role      `json:"role" gorm:"type:varchar(30);not null;default:'USER'"`
	Registered bool      `json:"registered" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
