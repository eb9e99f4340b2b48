package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypePurchase TransactionType = "purchase"
	// Refund is carried in the enum but no route exercises it yet.
	TransactionTypeRefund TransactionType = "refund"
)

type Transaction struct {
	ID            string          `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string          `gorm:"type:uuid;not null;index" json:"user_id"`
	ContentID     string          `gorm:"type:uuid;not null;index" json:"content_id"`
	Amount        float64         `gorm:"not null" json:"amount"`
	IsPaid        bool            `gorm:"default:false" json:"is_paid"`
	PaymentMethod string          `gorm:"type:varchar(50)" json:"payment_method"`
	Type          TransactionType `gorm:"type:varchar(20);default:'purchase'" json:"type"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
