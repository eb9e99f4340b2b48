package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinewave/pkg/config"
	"cinewave/pkg/logger"
	"cinewave/pkg/queue"
	"cinewave/services/catalog/internal/entity"
	"cinewave/services/catalog/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ReviewChannel is the redis pub/sub channel review decisions are fanned out on.
const ReviewChannel = "content_reviews"

type CreateContentInput struct {
	Title       string
	Description string
	Type        string
	Price       *float64
	Thumbnail   string
	Trailer     string
	Genre       string
	Director    string
	Year        int
	Country     string
	Language    string
	CastList    string
	Duration    int    // films only
	VideoPath   string // films only
}

type UpdateContentInput struct {
	Title       *string
	Description *string
	Price       *float64
	PriceSet    bool
	Thumbnail   *string
	Trailer     *string
	Genre       *string
	Director    *string
	Year        *int
	Country     *string
	Language    *string
	CastList    *string
	Duration    *int
	VideoPath   *string
}

type SeasonInput struct {
	Number int
	Title  string
}

type EpisodeInput struct {
	Title       string
	Number      *int
	Duration    int
	VideoPath   string
	Thumbnail   string
	Description string
}

type ListContentsInput struct {
	Limit     int
	Offset    int
	Search    string
	Type      string
	Status    string
	Featured  bool
	CreatorID string
}

type CatalogUseCase interface {
	CreateContent(creatorID string, input CreateContentInput) (*entity.Content, error)
	GetContent(id, requesterID, requesterRole string) (*entity.Content, error)
	ListPublished(input ListContentsInput) ([]*entity.Content, int64, error)
	ListAll(input ListContentsInput) ([]*entity.Content, int64, error)
	ListMine(creatorID string, input ListContentsInput) ([]*entity.Content, int64, error)
	UpdateContent(contentID, requesterID, requesterRole string, input UpdateContentInput) (*entity.Content, error)
	DeleteContent(contentID, requesterID, requesterRole string) error
	ReviewContent(contentID string, approve bool, reason string) (*entity.Content, error)
	SetFeatured(contentID string, featured bool) (*entity.Content, error)

	AddSeason(contentID, requesterID, requesterRole string, input SeasonInput) (*entity.Season, error)
	UpdateSeason(seasonID, requesterID, requesterRole string, input SeasonInput) (*entity.Season, error)
	DeleteSeason(seasonID, requesterID, requesterRole string) error
	AddEpisode(seasonID, requesterID, requesterRole string, input EpisodeInput) (*entity.Episode, error)
	UpdateEpisode(episodeID, seasonID, requesterID, requesterRole string, input EpisodeInput) (*entity.Episode, error)
	DeleteEpisode(episodeID, requesterID, requesterRole string) error
}

type catalogUseCase struct {
	repo        persistent.ContentRepository
	cfg         *config.Config
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewCatalogUseCase(repo persistent.ContentRepository, cfg *config.Config, redisClient *redis.Client, queueClient *queue.Client, log *logger.Logger) CatalogUseCase {
	return &catalogUseCase{
		repo:        repo,
		cfg:         cfg,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      log,
	}
}

func (uc *catalogUseCase) CreateContent(creatorID string, input CreateContentInput) (*entity.Content, error) {
	contentType := entity.ContentType(strings.ToUpper(input.Type))

	content := &entity.Content{
		Title:       input.Title,
		Description: input.Description,
		Type:        contentType,
		Price:       input.Price,
		Thumbnail:   input.Thumbnail,
		Trailer:     input.Trailer,
		Genre:       input.Genre,
		Director:    input.Director,
		Year:        input.Year,
		Country:     input.Country,
		Language:    input.Language,
		CastList:    input.CastList,
		CreatorID:   creatorID,
	}

	switch contentType {
	case entity.TypeFilm:
		if input.Duration <= 0 || input.VideoPath == "" {
			return nil, fmt.Errorf("film requires duration and video path")
		}
		content.Film = &entity.Film{
			Duration:  input.Duration,
			VideoPath: input.VideoPath,
		}
	case entity.TypeSerie:
		// a serie starts empty; seasons and episodes are added afterwards
		content.Serie = &entity.Serie{}
	default:
		return nil, fmt.Errorf("invalid content type")
	}

	if err := uc.repo.Create(content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	uc.logger.Info("Content created: id=%s type=%s creator=%s", content.ID, content.Type, creatorID)
	return content, nil
}

func (uc *catalogUseCase) GetContent(id, requesterID, requesterRole string) (*entity.Content, error) {
	content, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("content not found")
	}

	// unapproved content is only visible to its creator and admins
	if !content.IsApproved && requesterRole != entity.RoleAdmin && content.CreatorID != requesterID {
		return nil, fmt.Errorf("content not found")
	}
	return content, nil
}

func (uc *catalogUseCase) ListPublished(input ListContentsInput) ([]*entity.Content, int64, error) {
	return uc.repo.List(persistent.ListParams{
		Limit:        input.Limit,
		Offset:       input.Offset,
		Search:       input.Search,
		Type:         strings.ToUpper(input.Type),
		ApprovedOnly: true,
		FeaturedOnly: input.Featured,
	})
}

func (uc *catalogUseCase) ListAll(input ListContentsInput) ([]*entity.Content, int64, error) {
	return uc.repo.List(persistent.ListParams{
		Limit:        input.Limit,
		Offset:       input.Offset,
		Search:       input.Search,
		Type:         strings.ToUpper(input.Type),
		Status:       input.Status,
		FeaturedOnly: input.Featured,
	})
}

func (uc *catalogUseCase) ListMine(creatorID string, input ListContentsInput) ([]*entity.Content, int64, error) {
	return uc.repo.List(persistent.ListParams{
		Limit:     input.Limit,
		Offset:    input.Offset,
		Search:    input.Search,
		Type:      strings.ToUpper(input.Type),
		Status:    input.Status,
		CreatorID: creatorID,
	})
}

func (uc *catalogUseCase) UpdateContent(contentID, requesterID, requesterRole string, input UpdateContentInput) (*entity.Content, error) {
	content, err := uc.ownedContent(contentID, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		content.Title = *input.Title
	}
	if input.Description != nil {
		content.Description = *input.Description
	}
	if input.PriceSet {
		content.Price = input.Price
	}
	if input.Thumbnail != nil {
		content.Thumbnail = *input.Thumbnail
	}
	if input.Trailer != nil {
		content.Trailer = *input.Trailer
	}
	if input.Genre != nil {
		content.Genre = *input.Genre
	}
	if input.Director != nil {
		content.Director = *input.Director
	}
	if input.Year != nil {
		content.Year = *input.Year
	}
	if input.Country != nil {
		content.Country = *input.Country
	}
	if input.Language != nil {
		content.Language = *input.Language
	}
	if input.CastList != nil {
		content.CastList = *input.CastList
	}
	if content.Type == entity.TypeFilm && content.Film != nil {
		if input.Duration != nil {
			content.Film.Duration = *input.Duration
		}
		if input.VideoPath != nil {
			content.Film.VideoPath = *input.VideoPath
		}
		if content.Film.Duration <= 0 || content.Film.VideoPath == "" {
			return nil, fmt.Errorf("film requires duration and video path")
		}
	}

	if err := uc.repo.Update(content); err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}
	return content, nil
}

func (uc *catalogUseCase) DeleteContent(contentID, requesterID, requesterRole string) error {
	if _, err := uc.ownedContent(contentID, requesterID, requesterRole); err != nil {
		return err
	}

	if err := uc.repo.Delete(contentID); err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}

	uc.logger.Info("Content deleted: id=%s by=%s", contentID, requesterID)
	return nil
}

func (uc *catalogUseCase) ReviewContent(contentID string, approve bool, reason string) (*entity.Content, error) {
	content, err := uc.repo.GetByID(contentID)
	if err != nil {
		return nil, fmt.Errorf("content not found")
	}

	var rejectionReason *string
	if !approve {
		if strings.TrimSpace(reason) == "" {
			return nil, fmt.Errorf("rejection reason is required")
		}
		rejectionReason = &reason
	}

	if err := uc.repo.SetReview(contentID, approve, rejectionReason); err != nil {
		return nil, fmt.Errorf("failed to review content: %w", err)
	}

	content.IsApproved = approve
	content.RejectionReason = rejectionReason

	uc.publishReviewed(content)
	return content, nil
}

func (uc *catalogUseCase) SetFeatured(contentID string, featured bool) (*entity.Content, error) {
	content, err := uc.repo.GetByID(contentID)
	if err != nil {
		return nil, fmt.Errorf("content not found")
	}
	if !content.IsApproved {
		return nil, fmt.Errorf("only approved content can be featured")
	}

	if err := uc.repo.SetFeatured(contentID, featured); err != nil {
		return nil, fmt.Errorf("failed to set featured: %w", err)
	}
	content.IsFeatured = featured
	return content, nil
}

func (uc *catalogUseCase) AddSeason(contentID, requesterID, requesterRole string, input SeasonInput) (*entity.Season, error) {
	content, err := uc.ownedContent(contentID, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}
	if content.Type != entity.TypeSerie {
		return nil, fmt.Errorf("seasons can only be added to a serie")
	}

	serie, err := uc.repo.GetSerieByContentID(contentID)
	if err != nil {
		return nil, fmt.Errorf("content not found")
	}

	count, err := uc.repo.CountSeasonNumber(serie.ID, input.Number, "")
	if err != nil {
		return nil, fmt.Errorf("failed to add season: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("season number already exists")
	}

	season := &entity.Season{
		SerieID: serie.ID,
		Number:  input.Number,
		Title:   input.Title,
	}
	if err := uc.repo.CreateSeason(season); err != nil {
		return nil, fmt.Errorf("failed to add season: %w", err)
	}
	return season, nil
}

func (uc *catalogUseCase) UpdateSeason(seasonID, requesterID, requesterRole string, input SeasonInput) (*entity.Season, error) {
	season, err := uc.repo.GetSeasonByID(seasonID)
	if err != nil {
		return nil, fmt.Errorf("season not found")
	}
	if _, err := uc.ownedContentBySeason(seasonID, requesterID, requesterRole); err != nil {
		return nil, err
	}

	if input.Number != season.Number {
		count, err := uc.repo.CountSeasonNumber(season.SerieID, input.Number, season.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update season: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("season number already exists")
		}
	}

	season.Number = input.Number
	season.Title = input.Title
	if err := uc.repo.UpdateSeason(season); err != nil {
		return nil, fmt.Errorf("failed to update season: %w", err)
	}
	return season, nil
}

func (uc *catalogUseCase) DeleteSeason(seasonID, requesterID, requesterRole string) error {
	if _, err := uc.repo.GetSeasonByID(seasonID); err != nil {
		return fmt.Errorf("season not found")
	}
	if _, err := uc.ownedContentBySeason(seasonID, requesterID, requesterRole); err != nil {
		return err
	}
	if err := uc.repo.DeleteSeason(seasonID); err != nil {
		return fmt.Errorf("failed to delete season: %w", err)
	}
	return nil
}

func (uc *catalogUseCase) AddEpisode(seasonID, requesterID, requesterRole string, input EpisodeInput) (*entity.Episode, error) {
	season, err := uc.repo.GetSeasonByID(seasonID)
	if err != nil {
		return nil, fmt.Errorf("season not found")
	}
	content, err := uc.ownedContentBySeason(seasonID, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	if input.Number != nil {
		count, err := uc.repo.CountEpisodeNumber(seasonID, *input.Number, "")
		if err != nil {
			return nil, fmt.Errorf("failed to add episode: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("episode number already exists")
		}
	}

	episode := &entity.Episode{
		SeasonID:    seasonID,
		Title:       input.Title,
		Number:      input.Number,
		Duration:    input.Duration,
		VideoPath:   input.VideoPath,
		Thumbnail:   input.Thumbnail,
		Description: input.Description,
	}
	if err := uc.repo.CreateEpisode(episode); err != nil {
		return nil, fmt.Errorf("failed to add episode: %w", err)
	}

	uc.maybeAutoPublish(content, season.SerieID)
	return episode, nil
}

func (uc *catalogUseCase) UpdateEpisode(episodeID, seasonID, requesterID, requesterRole string, input EpisodeInput) (*entity.Episode, error) {
	episode, err := uc.repo.GetEpisodeByID(episodeID)
	if err != nil || episode.SeasonID != seasonID {
		return nil, fmt.Errorf("episode not found")
	}
	if _, err := uc.ownedContentBySeason(episode.SeasonID, requesterID, requesterRole); err != nil {
		return nil, err
	}

	if input.Number != nil {
		count, err := uc.repo.CountEpisodeNumber(episode.SeasonID, *input.Number, episode.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update episode: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("episode number already exists")
		}
	}

	episode.Title = input.Title
	episode.Number = input.Number
	episode.Duration = input.Duration
	episode.VideoPath = input.VideoPath
	episode.Thumbnail = input.Thumbnail
	episode.Description = input.Description
	if err := uc.repo.UpdateEpisode(episode); err != nil {
		return nil, fmt.Errorf("failed to update episode: %w", err)
	}
	return episode, nil
}

func (uc *catalogUseCase) DeleteEpisode(episodeID, requesterID, requesterRole string) error {
	episode, err := uc.repo.GetEpisodeByID(episodeID)
	if err != nil {
		return fmt.Errorf("episode not found")
	}
	if _, err := uc.ownedContentBySeason(episode.SeasonID, requesterID, requesterRole); err != nil {
		return err
	}
	if err := uc.repo.DeleteEpisode(episodeID); err != nil {
		return fmt.Errorf("failed to delete episode: %w", err)
	}
	return nil
}

// ownedContent loads the content and enforces that the requester is its
// creator or an admin.
func (uc *catalogUseCase) ownedContent(contentID, requesterID, requesterRole string) (*entity.Content, error) {
	content, err := uc.repo.GetByID(contentID)
	if err != nil {
		return nil, fmt.Errorf("content not found")
	}
	if requesterRole != entity.RoleAdmin && content.CreatorID != requesterID {
		return nil, fmt.Errorf("you can only manage your own content")
	}
	return content, nil
}

func (uc *catalogUseCase) ownedContentBySeason(seasonID, requesterID, requesterRole string) (*entity.Content, error) {
	content, err := uc.repo.GetContentBySeasonID(seasonID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("season not found")
		}
		return nil, fmt.Errorf("content not found")
	}
	if requesterRole != entity.RoleAdmin && content.CreatorID != requesterID {
		return nil, fmt.Errorf("you can only manage your own content")
	}
	return content, nil
}

// maybeAutoPublish approves a pending serie when its very first episode
// lands, so creators see their show go live without waiting for a second
// review round. Controlled by CATALOG_AUTO_PUBLISH.
func (uc *catalogUseCase) maybeAutoPublish(content *entity.Content, serieID string) {
	if !uc.cfg.AutoPublishOnFirstEpisode {
		return
	}
	if content.Status() != entity.StatusPending {
		return
	}

	count, err := uc.repo.CountEpisodesBySerie(serieID)
	if err != nil {
		uc.logger.Warn("Auto-publish check failed for content=%s: %v", content.ID, err)
		return
	}
	if count != 1 {
		return
	}

	if err := uc.repo.SetReview(content.ID, true, nil); err != nil {
		uc.logger.Warn("Auto-publish failed for content=%s: %v", content.ID, err)
		return
	}

	content.IsApproved = true
	content.RejectionReason = nil
	uc.logger.Info("Auto-published serie content=%s on first episode", content.ID)
	uc.publishReviewed(content)
}

func (uc *catalogUseCase) publishReviewed(content *entity.Content) {
	status := string(content.Status())

	if uc.redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		payload := fmt.Sprintf(`{"content_id":"%s","status":"%s"}`, content.ID, status)
		if err := uc.redisClient.Publish(ctx, ReviewChannel, payload).Err(); err != nil {
			uc.logger.Warn("Failed to publish review to redis: %v", err)
		}
	}

	if uc.queueClient != nil {
		event := map[string]interface{}{
			"type":       "content_reviewed",
			"content_id": content.ID,
			"creator_id": content.CreatorID,
			"title":      content.Title,
			"status":     status,
		}
		if content.RejectionReason != nil {
			event["reason"] = *content.RejectionReason
		}
		if err := uc.queueClient.PublishEvent(event); err != nil {
			uc.logger.Warn("Failed to publish review event: %v", err)
		}
	}
}
