package persistent

import (
	"time"

	"cinewave/services/auth/internal/entity"
	"cinewave/services/auth/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateFields(id string, fields map[string]interface{}) error
	UpdateLastLogin(id string, when time.Time) error
	ListByRole(role entity.UserRole, verified *bool, limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	userModel := ToUserModel(user)
	return r.db.Save(userModel).Error
}

func (r *userRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(fields).Error
}

func (r *userRepository) UpdateLastLogin(id string, when time.Time) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Update("last_login", when).Error
}

func (r *userRepository) ListByRole(role entity.UserRole, verified *bool, limit, offset int) ([]*entity.User, error) {
	var userModels []model.UserModel
	query := r.db.Where("role = ?", string(role)).Order("created_at DESC")
	if verified != nil {
		query = query.Where("is_verified = ?", *verified)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) Delete(id string) error {
	return r.db.Delete(&model.UserModel{}, "id = ?", id).Error
}
