package domain

import "time"

// Role роль пользователя
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents an account in the system
type User struct {
	ID           int64
	Name         string
	Email        string // Уникальный
	PasswordHash string
	Role         Role

	CreatedAt time.Time
}

// IsAdmin returns true if the user holds the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
