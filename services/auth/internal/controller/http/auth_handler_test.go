package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinewave/services/auth/internal/entity"
	"cinewave/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(email, name, password string, role entity.UserRole, bio, portfolio string) (*entity.User, string, error) {
	args := m.Called(email, name, password, role, bio, portfolio)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdateProfile(userID string, name, bio, portfolio *string) (*entity.User, error) {
	args := m.Called(userID, name, bio, portfolio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UploadIdentityDocument(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	args := m.Called(userID, fileReader, fileKey, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) ListCreators(verified *bool, limit, offset int) ([]*entity.User, error) {
	args := m.Called(verified, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) CreateCreator(email, name, password, bio, portfolio string, verified bool) (*entity.User, error) {
	args := m.Called(email, name, password, bio, portfolio, verified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdateUser(id string, fields map[string]interface{}) (*entity.User, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) SetCreatorVerification(id string, verified bool) (*entity.User, error) {
	args := m.Called(id, verified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) DeleteUser(requesterID, id string) error {
	args := m.Called(requesterID, id)
	return args.Error(0)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestLogin_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	user := &entity.User{ID: "user-1", Email: "viewer@test.com", Role: entity.RoleUser, IsVerified: true}
	mockUseCase.On("Login", "viewer@test.com", "password123").Return(user, "a.jwt.token", nil)

	body := `{"email":"viewer@test.com","password":"password123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "a.jwt.token", response["token"])

	mockUseCase.AssertExpectations(t)
}

func TestLogin_UnverifiedCreator(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	mockUseCase.On("Login", "creator@test.com", "password123").
		Return(nil, "", errors.New("creator account pending verification"))

	body := `{"email":"creator@test.com","password":"password123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "pending verification")

	mockUseCase.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	mockUseCase.On("Login", "viewer@test.com", "wrong").
		Return(nil, "", errors.New("invalid credentials"))

	body := `{"email":"viewer@test.com","password":"wrong"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	mockUseCase.On("Register", "dup@test.com", "Dup", "password123", entity.RoleUser, "", "").
		Return(nil, "", errors.New("user with this email already exists"))

	body := `{"email":"dup@test.com","name":"Dup","password":"password123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestRegister_CreatorGetsNoToken(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	creator := &entity.User{ID: "creator-1", Email: "new@test.com", Role: entity.RoleCreator, IsVerified: false}
	mockUseCase.On("Register", "new@test.com", "New Creator", "password123", entity.RoleCreator, "Bio", "").
		Return(creator, "", nil)

	body := `{"email":"new@test.com","name":"New Creator","password":"password123","role":"CREATOR","bio":"Bio"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	_, hasToken := response["token"]
	assert.False(t, hasToken)

	mockUseCase.AssertExpectations(t)
}

func TestRegister_MissingFields(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	body := `{"email":"not-an-email"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDeleteUser_SelfDeleteBlocked(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAdminHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/admin/users/:id", func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		handler.DeleteUser(c)
	})

	mockUseCase.On("DeleteUser", "admin-1", "admin-1").
		Return(errors.New("cannot delete your own account"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/admin/users/admin-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAdminUpdateUser_FieldNotAllowed(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAdminHandler(mockUseCase)

	router := setupTestRouter()
	router.PATCH("/admin/users/:id", handler.UpdateUser)

	mockUseCase.On("UpdateUser", "user-1", map[string]interface{}{"is_verified": true}).
		Return(nil, errors.New("field not allowed: is_verified"))

	body := `{"is_verified":true}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/admin/users/user-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAdminGetCreator_WrongRoleIs404(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAdminHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/admin/creators/:id", handler.GetCreator)

	viewer := &entity.User{ID: "user-1", Role: entity.RoleUser}
	mockUseCase.On("GetUser", "user-1").Return(viewer, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/creators/user-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}
