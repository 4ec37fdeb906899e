package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

func ParseRole(value string) Role {
	switch Role(value) {
	case RoleAdmin:
		return RoleAdmin
	case RoleManager:
		return RoleManager
	default:
		return RoleViewer
	}
}

type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

func (p Principal) CanWrite() bool {
	return p.Role == RoleAdmin || p.Role == RoleManager
}

type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid"`
	Role   string
}

func (UserRole) TableName() string { return "user_roles" }
