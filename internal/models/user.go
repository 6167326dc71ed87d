package models

import (
	"time"
)

// Roles accepted in access tokens
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User owns API clients; its role decides what the clients' tokens may do
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	Role      string `gorm:"default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
