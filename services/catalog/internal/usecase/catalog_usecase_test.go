package usecase

import (
	"errors"
	"testing"

	"cinewave/pkg/config"
	"cinewave/pkg/logger"
	"cinewave/services/catalog/internal/entity"
	"cinewave/services/catalog/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockContentRepository is a mock implementation of ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(content *entity.Content) error {
	args := m.Called(content)
	return args.Error(0)
}

func (m *MockContentRepository) GetByID(id string) (*entity.Content, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockContentRepository) List(params persistent.ListParams) ([]*entity.Content, int64, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Content), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentRepository) Update(content *entity.Content) error {
	args := m.Called(content)
	return args.Error(0)
}

func (m *MockContentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentRepository) SetReview(id string, approved bool, reason *string) error {
	args := m.Called(id, approved, reason)
	return args.Error(0)
}

func (m *MockContentRepository) SetFeatured(id string, featured bool) error {
	args := m.Called(id, featured)
	return args.Error(0)
}

func (m *MockContentRepository) GetSerieByContentID(contentID string) (*entity.Serie, error) {
	args := m.Called(contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Serie), args.Error(1)
}

func (m *MockContentRepository) GetContentBySerieID(serieID string) (*entity.Content, error) {
	args := m.Called(serieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockContentRepository) GetContentBySeasonID(seasonID string) (*entity.Content, error) {
	args := m.Called(seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockContentRepository) CreateSeason(season *entity.Season) error {
	args := m.Called(season)
	return args.Error(0)
}

func (m *MockContentRepository) GetSeasonByID(id string) (*entity.Season, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Season), args.Error(1)
}

func (m *MockContentRepository) UpdateSeason(season *entity.Season) error {
	args := m.Called(season)
	return args.Error(0)
}

func (m *MockContentRepository) DeleteSeason(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentRepository) CountSeasonNumber(serieID string, number int, excludeID string) (int64, error) {
	args := m.Called(serieID, number, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentRepository) CreateEpisode(episode *entity.Episode) error {
	args := m.Called(episode)
	return args.Error(0)
}

func (m *MockContentRepository) GetEpisodeByID(id string) (*entity.Episode, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Episode), args.Error(1)
}

func (m *MockContentRepository) UpdateEpisode(episode *entity.Episode) error {
	args := m.Called(episode)
	return args.Error(0)
}

func (m *MockContentRepository) DeleteEpisode(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentRepository) CountEpisodeNumber(seasonID string, number int, excludeID string) (int64, error) {
	args := m.Called(seasonID, number, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentRepository) CountEpisodesBySerie(serieID string) (int64, error) {
	args := m.Called(serieID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.ContentRepository = (*MockContentRepository)(nil)

func newTestUseCase(repo persistent.ContentRepository, autoPublish bool) CatalogUseCase {
	cfg := &config.Config{AutoPublishOnFirstEpisode: autoPublish}
	return NewCatalogUseCase(repo, cfg, nil, nil, logger.New())
}

func TestCreateContent_FilmRequiresDurationAndVideoPath(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	_, err := uc.CreateContent("creator-1", CreateContentInput{
		Title: "My Film",
		Type:  "FILM",
	})

	assert.Error(t, err)
	assert.Equal(t, "film requires duration and video path", err.Error())
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateContent_FilmSuccess(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	mockRepo.On("Create", mock.AnythingOfType("*entity.Content")).Return(nil)

	content, err := uc.CreateContent("creator-1", CreateContentInput{
		Title:     "My Film",
		Type:      "film",
		Duration:  120,
		VideoPath: "videos/film.mp4",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.TypeFilm, content.Type)
	assert.False(t, content.IsApproved)
	assert.NotNil(t, content.Film)
	mockRepo.AssertExpectations(t)
}

func TestCreateContent_SerieStartsEmptyAndPending(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	mockRepo.On("Create", mock.AnythingOfType("*entity.Content")).Return(nil)

	content, err := uc.CreateContent("creator-1", CreateContentInput{
		Title: "My Show",
		Type:  "SERIE",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.TypeSerie, content.Type)
	assert.Equal(t, entity.StatusPending, content.Status())
	assert.NotNil(t, content.Serie)
	assert.Empty(t, content.Serie.Seasons)
	mockRepo.AssertExpectations(t)
}

func TestCreateContent_InvalidType(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	_, err := uc.CreateContent("creator-1", CreateContentInput{
		Title: "Nope",
		Type:  "PODCAST",
	})

	assert.Error(t, err)
	assert.Equal(t, "invalid content type", err.Error())
}

func TestGetContent_PendingHiddenFromStrangers(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	pending := &entity.Content{ID: "c1", CreatorID: "creator-1", IsApproved: false}
	mockRepo.On("GetByID", "c1").Return(pending, nil)

	_, err := uc.GetContent("c1", "someone-else", "USER")
	assert.Error(t, err)
	assert.Equal(t, "content not found", err.Error())

	content, err := uc.GetContent("c1", "creator-1", "CREATOR")
	assert.NoError(t, err)
	assert.Equal(t, "c1", content.ID)

	content, err = uc.GetContent("c1", "admin-1", "ADMIN")
	assert.NoError(t, err)
	assert.Equal(t, "c1", content.ID)
}

func TestUpdateContent_OnlyOwnerOrAdmin(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	content := &entity.Content{ID: "c1", CreatorID: "creator-1", Type: entity.TypeSerie}
	mockRepo.On("GetByID", "c1").Return(content, nil)

	title := "New Title"
	_, err := uc.UpdateContent("c1", "creator-2", "CREATOR", UpdateContentInput{Title: &title})
	assert.Error(t, err)
	assert.Equal(t, "you can only manage your own content", err.Error())
	mockRepo.AssertNotCalled(t, "Update")
}

func TestDeleteContent_CascadesThroughRepo(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	content := &entity.Content{ID: "c1", CreatorID: "creator-1", Type: entity.TypeSerie}
	mockRepo.On("GetByID", "c1").Return(content, nil)
	mockRepo.On("Delete", "c1").Return(nil)

	err := uc.DeleteContent("c1", "creator-1", "CREATOR")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAddSeason_DuplicateNumber(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	content := &entity.Content{ID: "c1", CreatorID: "creator-1", Type: entity.TypeSerie}
	mockRepo.On("GetByID", "c1").Return(content, nil)
	mockRepo.On("GetSerieByContentID", "c1").Return(&entity.Serie{ID: "s1", ContentID: "c1"}, nil)
	mockRepo.On("CountSeasonNumber", "s1", 1, "").Return(int64(1), nil)

	_, err := uc.AddSeason("c1", "creator-1", "CREATOR", SeasonInput{Number: 1})
	assert.Error(t, err)
	assert.Equal(t, "season number already exists", err.Error())
	mockRepo.AssertNotCalled(t, "CreateSeason")
}

func TestAddSeason_OnFilmRejected(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	content := &entity.Content{ID: "c1", CreatorID: "creator-1", Type: entity.TypeFilm}
	mockRepo.On("GetByID", "c1").Return(content, nil)

	_, err := uc.AddSeason("c1", "creator-1", "CREATOR", SeasonInput{Number: 1})
	assert.Error(t, err)
	assert.Equal(t, "seasons can only be added to a serie", err.Error())
}

func TestAddEpisode_DuplicateNumber(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	season := &entity.Season{ID: "se1", SerieID: "s1", Number: 1}
	content := &entity.Content{ID: "c1", CreatorID: "creator-1", Type: entity.TypeSerie}
	mockRepo.On("GetSeasonByID", "se1").Return(season, nil)
	mockRepo.On("GetContentBySeasonID", "se1").Return(content, nil)
	number := 3
	mockRepo.On("CountEpisodeNumber", "se1", 3, "").Return(int64(1), nil)

	_, err := uc.AddEpisode("se1", "creator-1", "CREATOR", EpisodeInput{
		Title:     "Ep",
		Number:    &number,
		VideoPath: "videos/ep.mp4",
	})
	assert.Error(t, err)
	assert.Equal(t, "episode number already exists", err.Error())
	mockRepo.AssertNotCalled(t, "CreateEpisode")
}

func TestAddEpisode_AutoPublishesFirstEpisode(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	season := &entity.Season{ID: "se1", SerieID: "s1", Number: 1}
	pending := &entity.Content{ID: "c1", CreatorID: "creator-1", Type: entity.TypeSerie}
	mockRepo.On("GetSeasonByID", "se1").Return(season, nil)
	mockRepo.On("GetContentBySeasonID", "se1").Return(pending, nil)
	mockRepo.On("CreateEpisode", mock.AnythingOfType("*entity.Episode")).Return(nil)
	mockRepo.On("CountEpisodesBySerie", "s1").Return(int64(1), nil)
	mockRepo.On("SetReview", "c1", true, (*string)(nil)).Return(nil)

	episode, err := uc.AddEpisode("se1", "creator-1", "CREATOR", EpisodeInput{
		Title:     "Pilot",
		VideoPath: "videos/pilot.mp4",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Pilot", episode.Title)
	assert.True(t, pending.IsApproved)
	mockRepo.AssertExpectations(t)
}

func TestAddEpisode_NoAutoPublishWhenDisabled(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, false)

	season := &entity.Season{ID: "se1", SerieID: "s1", Number: 1}
	pending := &entity.Content{ID: "c1", CreatorID: "creator-1", Type: entity.TypeSerie}
	mockRepo.On("GetSeasonByID", "se1").Return(season, nil)
	mockRepo.On("GetContentBySeasonID", "se1").Return(pending, nil)
	mockRepo.On("CreateEpisode", mock.AnythingOfType("*entity.Episode")).Return(nil)

	_, err := uc.AddEpisode("se1", "creator-1", "CREATOR", EpisodeInput{
		Title:     "Pilot",
		VideoPath: "videos/pilot.mp4",
	})

	assert.NoError(t, err)
	assert.False(t, pending.IsApproved)
	mockRepo.AssertNotCalled(t, "SetReview")
	mockRepo.AssertNotCalled(t, "CountEpisodesBySerie")
}

func TestAddEpisode_NoAutoPublishOnSecondEpisode(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	season := &entity.Season{ID: "se1", SerieID: "s1", Number: 1}
	pending := &entity.Content{ID: "c1", CreatorID: "creator-1", Type: entity.TypeSerie}
	mockRepo.On("GetSeasonByID", "se1").Return(season, nil)
	mockRepo.On("GetContentBySeasonID", "se1").Return(pending, nil)
	mockRepo.On("CreateEpisode", mock.AnythingOfType("*entity.Episode")).Return(nil)
	mockRepo.On("CountEpisodesBySerie", "s1").Return(int64(2), nil)

	_, err := uc.AddEpisode("se1", "creator-1", "CREATOR", EpisodeInput{
		Title:     "Episode 2",
		VideoPath: "videos/ep2.mp4",
	})

	assert.NoError(t, err)
	assert.False(t, pending.IsApproved)
	mockRepo.AssertNotCalled(t, "SetReview")
}

func TestAddEpisode_NoAutoPublishOnRejectedSerie(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	reason := "low quality"
	season := &entity.Season{ID: "se1", SerieID: "s1", Number: 1}
	rejected := &entity.Content{ID: "c1", CreatorID: "creator-1", Type: entity.TypeSerie, RejectionReason: &reason}
	mockRepo.On("GetSeasonByID", "se1").Return(season, nil)
	mockRepo.On("GetContentBySeasonID", "se1").Return(rejected, nil)
	mockRepo.On("CreateEpisode", mock.AnythingOfType("*entity.Episode")).Return(nil)

	_, err := uc.AddEpisode("se1", "creator-1", "CREATOR", EpisodeInput{
		Title:     "Pilot",
		VideoPath: "videos/pilot.mp4",
	})

	assert.NoError(t, err)
	assert.False(t, rejected.IsApproved)
	mockRepo.AssertNotCalled(t, "SetReview")
}

func TestReviewContent_RejectRequiresReason(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	content := &entity.Content{ID: "c1", CreatorID: "creator-1"}
	mockRepo.On("GetByID", "c1").Return(content, nil)

	_, err := uc.ReviewContent("c1", false, "  ")
	assert.Error(t, err)
	assert.Equal(t, "rejection reason is required", err.Error())
	mockRepo.AssertNotCalled(t, "SetReview")
}

func TestReviewContent_ApproveAndReject(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	content := &entity.Content{ID: "c1", CreatorID: "creator-1"}
	mockRepo.On("GetByID", "c1").Return(content, nil)
	mockRepo.On("SetReview", "c1", true, (*string)(nil)).Return(nil)

	reviewed, err := uc.ReviewContent("c1", true, "")
	assert.NoError(t, err)
	assert.True(t, reviewed.IsApproved)
	assert.Equal(t, entity.StatusApproved, reviewed.Status())

	mockRepo.On("SetReview", "c1", false, mock.AnythingOfType("*string")).Return(nil)
	reviewed, err = uc.ReviewContent("c1", false, "not suitable")
	assert.NoError(t, err)
	assert.False(t, reviewed.IsApproved)
	assert.Equal(t, entity.StatusRejected, reviewed.Status())
	assert.Equal(t, "not suitable", *reviewed.RejectionReason)
}

func TestSetFeatured_RequiresApproval(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	pending := &entity.Content{ID: "c1", IsApproved: false}
	mockRepo.On("GetByID", "c1").Return(pending, nil)

	_, err := uc.SetFeatured("c1", true)
	assert.Error(t, err)
	assert.Equal(t, "only approved content can be featured", err.Error())
	mockRepo.AssertNotCalled(t, "SetFeatured")
}

func TestGetContent_NotFound(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	mockRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.GetContent("missing", "", "")
	assert.Error(t, err)
	assert.Equal(t, "content not found", err.Error())
}

func TestDeleteSeason_SeasonNotFound(t *testing.T) {
	mockRepo := new(MockContentRepository)
	uc := newTestUseCase(mockRepo, true)

	mockRepo.On("GetSeasonByID", "missing").Return(nil, errors.New("record not found"))

	err := uc.DeleteSeason("missing", "creator-1", "CREATOR")
	assert.Error(t, err)
	assert.Equal(t, "season not found", err.Error())
}
