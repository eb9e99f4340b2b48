package usecase

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cinewave/pkg/jwt"
	"cinewave/pkg/logger"
	"cinewave/pkg/s3"
	"cinewave/services/auth/internal/entity"
	"cinewave/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

// allowedUserPatchFields is the explicit allow-list for admin user updates.
// Anything outside it is rejected up front instead of being discovered through
// persistence errors.
var allowedUserPatchFields = map[string]bool{
	"name":      true,
	"email":     true,
	"bio":       true,
	"portfolio": true,
	"role":      true,
}

type AuthUseCase interface {
	Register(email, name, password string, role entity.UserRole, bio, portfolio string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	UpdateProfile(userID string, name, bio, portfolio *string) (*entity.User, error)
	UploadIdentityDocument(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error)
	ListCreators(verified *bool, limit, offset int) ([]*entity.User, error)
	CreateCreator(email, name, password, bio, portfolio string, verified bool) (*entity.User, error)
	UpdateUser(id string, fields map[string]interface{}) (*entity.User, error)
	SetCreatorVerification(id string, verified bool) (*entity.User, error)
	DeleteUser(requesterID, id string) error
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(email, name, password string, role entity.UserRole, bio, portfolio string) (*entity.User, string, error) {
	if role != entity.RoleUser && role != entity.RoleCreator {
		return nil, "", fmt.Errorf("invalid role")
	}

	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", fmt.Errorf("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:     email,
		Name:      name,
		Password:  string(hashedPassword),
		Role:      role,
		Bio:       bio,
		Portfolio: portfolio,
		// Creators must be reviewed by an admin before they can log in.
		IsVerified: role == entity.RoleUser,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	user.Password = ""

	// No session for unverified creators; they get one once an admin verifies them.
	if role == entity.RoleCreator {
		return user, "", nil
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role), user.IsVerified)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if user.Role == entity.RoleCreator && !user.IsVerified {
		return nil, "", fmt.Errorf("creator account pending verification")
	}

	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		uc.logger.Warn("Failed to update last login for %s: %v", user.ID, err)
	}
	user.LastLogin = &now

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role), user.IsVerified)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UpdateProfile(userID string, name, bio, portfolio *string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	if name != nil {
		user.Name = *name
	}
	if bio != nil {
		user.Bio = *bio
	}
	if portfolio != nil {
		user.Portfolio = *portfolio
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update profile")
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UploadIdentityDocument(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	documentURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload identity document: %v", err)
		return nil, fmt.Errorf("failed to upload identity document")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	user.IdentityDocument = documentURL
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) ListCreators(verified *bool, limit, offset int) ([]*entity.User, error) {
	creators, err := uc.userRepo.ListByRole(entity.RoleCreator, verified, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list creators: %v", err)
		return nil, fmt.Errorf("failed to list creators")
	}
	for _, creator := range creators {
		creator.Password = ""
	}
	return creators, nil
}

func (uc *authUseCase) CreateCreator(email, name, password, bio, portfolio string, verified bool) (*entity.User, error) {
	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, fmt.Errorf("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to create creator")
	}

	creator := &entity.User{
		Email:      email,
		Name:       name,
		Password:   string(hashedPassword),
		Role:       entity.RoleCreator,
		Bio:        bio,
		Portfolio:  portfolio,
		IsVerified: verified,
	}

	if err := uc.userRepo.Create(creator); err != nil {
		uc.logger.Error("Failed to create creator: %v", err)
		return nil, fmt.Errorf("failed to create creator")
	}

	creator.Password = ""
	return creator, nil
}

func (uc *authUseCase) UpdateUser(id string, fields map[string]interface{}) (*entity.User, error) {
	if _, err := uc.userRepo.GetByID(id); err != nil {
		return nil, fmt.Errorf("user not found")
	}

	for field := range fields {
		if !allowedUserPatchFields[field] {
			return nil, fmt.Errorf("field not allowed: %s", field)
		}
	}

	if role, ok := fields["role"]; ok {
		r := entity.UserRole(fmt.Sprintf("%v", role))
		if r != entity.RoleUser && r != entity.RoleCreator && r != entity.RoleAdmin {
			return nil, fmt.Errorf("invalid role")
		}
	}

	if len(fields) > 0 {
		if err := uc.userRepo.UpdateFields(id, fields); err != nil {
			uc.logger.Error("Failed to update user %s: %v", id, err)
			return nil, fmt.Errorf("failed to update user")
		}
	}

	return uc.GetUser(id)
}

func (uc *authUseCase) SetCreatorVerification(id string, verified bool) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	if user.Role != entity.RoleCreator {
		return nil, fmt.Errorf("user is not a creator")
	}

	if err := uc.userRepo.UpdateFields(id, map[string]interface{}{"is_verified": verified}); err != nil {
		uc.logger.Error("Failed to update verification for %s: %v", id, err)
		return nil, fmt.Errorf("failed to update creator")
	}

	return uc.GetUser(id)
}

func (uc *authUseCase) DeleteUser(requesterID, id string) error {
	if requesterID == id {
		return fmt.Errorf("cannot delete your own account")
	}

	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("user not found")
	}
	if user.Role == entity.RoleAdmin {
		return fmt.Errorf("cannot delete an administrator account")
	}

	if err := uc.userRepo.Delete(id); err != nil {
		uc.logger.Error("Failed to delete user %s: %v", id, err)
		return fmt.Errorf("failed to delete user")
	}
	return nil
}

// IsFieldError reports whether err came from the patch allow-list check.
func IsFieldError(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "field not allowed")
}
