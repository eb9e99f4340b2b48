package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationContentReviewed  NotificationType = "content_reviewed"
	NotificationContentPurchased NotificationType = "content_purchased"
)

type Notification struct {
	ID        string           `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Message   string           `gorm:"type:text" json:"message"`
	Payload   string           `gorm:"type:text" json:"payload,omitempty"` // raw event JSON
	IsRead    bool             `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
