package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser    UserRole = "USER"
	RoleCreator UserRole = "CREATOR"
	RoleAdmin   UserRole = "ADMIN"
)

type User struct {
	ID               string    `gorm:"type:uuid;primary_key" json:"id"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	Name             string    `gorm:"not null" json:"name"`
	Password         string    `gorm:"not null" json:"-"`
	Role             UserRole  `gorm:"type:varchar(20);default:'USER'" json:"role"`
	IsVerified       bool      `gorm:"default:false" json:"is_verified"`
	Bio              string    `gorm:"type:text" json:"bio"`
	Portfolio        string    `gorm:"type:varchar(500)" json:"portfolio"`
	IdentityDocument string    `gorm:"type:varchar(500)" json:"identity_document,omitempty"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
