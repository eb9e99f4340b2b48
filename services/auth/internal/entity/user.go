package entity

import "time"

type UserRole string

const (
	RoleUser    UserRole = "USER"
	RoleCreator UserRole = "CREATOR"
	RoleAdmin   UserRole = "ADMIN"
)

type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Password         string     `json:"-"`
	Role             UserRole   `json:"role"`
	IsVerified       bool       `json:"is_verified"`
	Bio              string     `json:"bio"`
	Portfolio        string     `json:"portfolio"`
	IdentityDocument string     `json:"identity_document,omitempty"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
