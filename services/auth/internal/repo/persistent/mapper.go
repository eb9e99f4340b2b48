package persistent

import (
	"cinewave/services/auth/internal/entity"
	"cinewave/services/auth/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:               m.ID,
		Email:            m.Email,
		Name:             m.Name,
		Password:         m.Password,
		Role:             entity.UserRole(m.Role),
		IsVerified:       m.IsVerified,
		Bio:              m.Bio,
		Portfolio:        m.Portfolio,
		IdentityDocument: m.IdentityDocument,
		LastLogin:        m.LastLogin,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:               e.ID,
		Email:            e.Email,
		Name:             e.Name,
		Password:         e.Password,
		Role:             string(e.Role),
		IsVerified:       e.IsVerified,
		Bio:              e.Bio,
		Portfolio:        e.Portfolio,
		IdentityDocument: e.IdentityDocument,
		LastLogin:        e.LastLogin,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
