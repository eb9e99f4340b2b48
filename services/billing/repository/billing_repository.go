package repository

import (
	"cinewave/pkg/models"

	"gorm.io/gorm"
)

type BillingRepository interface {
	GetContentByID(id string) (*models.Content, error)
	GetPaidTransaction(userID, contentID string) (*models.Transaction, error)
	CreateTransaction(transaction *models.Transaction) error
	GetTransactionByID(id string) (*models.Transaction, error)
	GetTransactions(userID string, limit, offset int) ([]*models.Transaction, error)
}

type billingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) GetContentByID(id string) (*models.Content, error) {
	var content models.Content
	if err := r.db.Where("id = ?", id).First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *billingRepository) GetPaidTransaction(userID, contentID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.Where("user_id = ? AND content_id = ? AND is_paid = ? AND type = ?",
		userID, contentID, true, models.TransactionTypePurchase).
		First(&transaction).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *billingRepository) CreateTransaction(transaction *models.Transaction) error {
	return r.db.Create(transaction).Error
}

func (r *billingRepository) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *billingRepository) GetTransactions(userID string, limit, offset int) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
