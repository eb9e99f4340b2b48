package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinewave/services/catalog/internal/entity"
	"cinewave/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUseCase is a mock implementation of CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) CreateContent(creatorID string, input usecase.CreateContentInput) (*entity.Content, error) {
	args := m.Called(creatorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockCatalogUseCase) GetContent(id, requesterID, requesterRole string) (*entity.Content, error) {
	args := m.Called(id, requesterID, requesterRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockCatalogUseCase) ListPublished(input usecase.ListContentsInput) ([]*entity.Content, int64, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Content), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogUseCase) ListAll(input usecase.ListContentsInput) ([]*entity.Content, int64, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Content), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogUseCase) ListMine(creatorID string, input usecase.ListContentsInput) ([]*entity.Content, int64, error) {
	args := m.Called(creatorID, input)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Content), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogUseCase) UpdateContent(contentID, requesterID, requesterRole string, input usecase.UpdateContentInput) (*entity.Content, error) {
	args := m.Called(contentID, requesterID, requesterRole, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteContent(contentID, requesterID, requesterRole string) error {
	args := m.Called(contentID, requesterID, requesterRole)
	return args.Error(0)
}

func (m *MockCatalogUseCase) ReviewContent(contentID string, approve bool, reason string) (*entity.Content, error) {
	args := m.Called(contentID, approve, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockCatalogUseCase) SetFeatured(contentID string, featured bool) (*entity.Content, error) {
	args := m.Called(contentID, featured)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockCatalogUseCase) AddSeason(contentID, requesterID, requesterRole string, input usecase.SeasonInput) (*entity.Season, error) {
	args := m.Called(contentID, requesterID, requesterRole, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Season), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateSeason(seasonID, requesterID, requesterRole string, input usecase.SeasonInput) (*entity.Season, error) {
	args := m.Called(seasonID, requesterID, requesterRole, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Season), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteSeason(seasonID, requesterID, requesterRole string) error {
	args := m.Called(seasonID, requesterID, requesterRole)
	return args.Error(0)
}

func (m *MockCatalogUseCase) AddEpisode(seasonID, requesterID, requesterRole string, input usecase.EpisodeInput) (*entity.Episode, error) {
	args := m.Called(seasonID, requesterID, requesterRole, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Episode), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateEpisode(episodeID, seasonID, requesterID, requesterRole string, input usecase.EpisodeInput) (*entity.Episode, error) {
	args := m.Called(episodeID, seasonID, requesterID, requesterRole, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Episode), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteEpisode(episodeID, requesterID, requesterRole string) error {
	args := m.Called(episodeID, requesterID, requesterRole)
	return args.Error(0)
}

var _ usecase.CatalogUseCase = (*MockCatalogUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asCreator(id string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Set("user_role", "CREATOR")
		handler(c)
	}
}

func TestCreateContent_FilmMissingVideoPath(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewContentHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/creator/contents", asCreator("creator-1", handler.CreateContent))

	mockUseCase.On("CreateContent", "creator-1", mock.AnythingOfType("usecase.CreateContentInput")).
		Return(nil, errors.New("film requires duration and video path"))

	body := `{"title":"My Film","type":"FILM"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/creator/contents", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateContent_Success(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewContentHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/creator/contents", asCreator("creator-1", handler.CreateContent))

	created := &entity.Content{ID: "c1", Title: "My Film", Type: entity.TypeFilm, CreatorID: "creator-1"}
	mockUseCase.On("CreateContent", "creator-1", mock.AnythingOfType("usecase.CreateContentInput")).
		Return(created, nil)

	body := `{"title":"My Film","type":"FILM","duration":120,"video_path":"videos/f.mp4"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/creator/contents", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response entity.Content
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "c1", response.ID)
	mockUseCase.AssertExpectations(t)
}

func TestGetContent_NotFound(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewContentHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/contents/:id", handler.GetContent)

	mockUseCase.On("GetContent", "missing", "", "").Return(nil, errors.New("content not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/contents/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListContents_Public(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewContentHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/contents", handler.ListContents)

	contents := []*entity.Content{{ID: "c1", Title: "Approved Film", IsApproved: true}}
	mockUseCase.On("ListPublished", mock.AnythingOfType("usecase.ListContentsInput")).
		Return(contents, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/contents?limit=10", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response ContentListResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(1), response.Total)
	assert.Len(t, response.Contents, 1)
}

func TestDeleteContent_NotOwner(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewContentHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/creator/contents/:id", asCreator("creator-2", handler.DeleteContent))

	mockUseCase.On("DeleteContent", "c1", "creator-2", "CREATOR").
		Return(errors.New("you can only manage your own content"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/creator/contents/c1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddSeason_DuplicateNumberIs400(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewContentHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/creator/contents/:id/seasons", asCreator("creator-1", handler.AddSeason))

	mockUseCase.On("AddSeason", "c1", "creator-1", "CREATOR", usecase.SeasonInput{Number: 1, Title: "Season One"}).
		Return(nil, errors.New("season number already exists"))

	body := `{"number":1,"title":"Season One"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/creator/contents/c1/seasons", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAddEpisode_DuplicateNumberIs400(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewContentHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/creator/seasons/:id/episodes", asCreator("creator-1", handler.AddEpisode))

	mockUseCase.On("AddEpisode", "se1", "creator-1", "CREATOR", mock.AnythingOfType("usecase.EpisodeInput")).
		Return(nil, errors.New("episode number already exists"))

	body := `{"title":"Ep","number":3,"video_path":"videos/ep.mp4"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/creator/seasons/se1/episodes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddEpisode_MissingVideoPathRejectedByBinding(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewContentHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/creator/seasons/:id/episodes", asCreator("creator-1", handler.AddEpisode))

	body := `{"title":"Ep"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/creator/seasons/se1/episodes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "AddEpisode")
}

func TestReviewContent_MissingReasonIs400(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewAdminHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/admin/contents/:id/review", handler.ReviewContent)

	mockUseCase.On("ReviewContent", "c1", false, "").
		Return(nil, errors.New("rejection reason is required"))

	body := `{"approve":false}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/contents/c1/review", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewContent_Approve(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewAdminHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/admin/contents/:id/review", handler.ReviewContent)

	approved := &entity.Content{ID: "c1", IsApproved: true}
	mockUseCase.On("ReviewContent", "c1", true, "").Return(approved, nil)

	body := `{"approve":true}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/contents/c1/review", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response entity.Content
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response.IsApproved)
}

func TestSetFeatured_UnapprovedIs400(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewAdminHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/admin/contents/:id/feature", handler.SetFeatured)

	mockUseCase.On("SetFeatured", "c1", true).
		Return(nil, errors.New("only approved content can be featured"))

	body := `{"featured":true}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/contents/c1/feature", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
