package persistent

import (
	"cinewave/services/catalog/internal/entity"
	"cinewave/services/catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListParams struct {
	Limit        int
	Offset       int
	Search       string
	Type         string // "" | FILM | SERIE
	Status       string // "" | pending | approved | rejected
	FeaturedOnly bool
	ApprovedOnly bool
	CreatorID    string
}

type ContentRepository interface {
	Create(content *entity.Content) error
	GetByID(id string) (*entity.Content, error)
	List(params ListParams) ([]*entity.Content, int64, error)
	Update(content *entity.Content) error
	Delete(id string) error
	SetReview(id string, approved bool, reason *string) error
	SetFeatured(id string, featured bool) error

	GetSerieByContentID(contentID string) (*entity.Serie, error)
	GetContentBySerieID(serieID string) (*entity.Content, error)
	GetContentBySeasonID(seasonID string) (*entity.Content, error)

	CreateSeason(season *entity.Season) error
	GetSeasonByID(id string) (*entity.Season, error)
	UpdateSeason(season *entity.Season) error
	DeleteSeason(id string) error
	CountSeasonNumber(serieID string, number int, excludeID string) (int64, error)

	CreateEpisode(episode *entity.Episode) error
	GetEpisodeByID(id string) (*entity.Episode, error)
	UpdateEpisode(episode *entity.Episode) error
	DeleteEpisode(id string) error
	CountEpisodeNumber(seasonID string, number int, excludeID string) (int64, error)
	CountEpisodesBySerie(serieID string) (int64, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(content *entity.Content) error {
	contentModel := ToContentModel(content)
	if contentModel.ID == "" {
		contentModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contentModel).Error; err != nil {
			return err
		}

		switch entity.ContentType(contentModel.Type) {
		case entity.TypeFilm:
			filmModel := ToFilmModel(content.Film)
			filmModel.ContentID = contentModel.ID
			if filmModel.ID == "" {
				filmModel.ID = uuid.New().String()
			}
			if err := tx.Create(filmModel).Error; err != nil {
				return err
			}
			contentModel.Film = filmModel

		case entity.TypeSerie:
			serieModel := &model.SerieModel{
				ID:        uuid.New().String(),
				ContentID: contentModel.ID,
			}
			if err := tx.Create(serieModel).Error; err != nil {
				return err
			}

			if content.Serie != nil {
				for i := range content.Serie.Seasons {
					seasonModel := ToSeasonModel(&content.Serie.Seasons[i])
					seasonModel.SerieID = serieModel.ID
					if seasonModel.ID == "" {
						seasonModel.ID = uuid.New().String()
					}
					if err := tx.Create(seasonModel).Error; err != nil {
						return err
					}
					serieModel.Seasons = append(serieModel.Seasons, *seasonModel)
				}
			}
			contentModel.Serie = serieModel
		}

		*content = *ToContentEntity(contentModel)
		return nil
	})
}

func (r *contentRepository) GetByID(id string) (*entity.Content, error) {
	var contentModel model.ContentModel
	err := r.db.
		Preload("Film").
		Preload("Serie.Seasons", func(db *gorm.DB) *gorm.DB {
			return db.Order("seasons.number ASC")
		}).
		Preload("Serie.Seasons.Episodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("episodes.number ASC")
		}).
		Where("id = ?", id).First(&contentModel).Error
	if err != nil {
		return nil, err
	}
	return ToContentEntity(&contentModel), nil
}

func (r *contentRepository) List(params ListParams) ([]*entity.Content, int64, error) {
	query := r.db.Model(&model.ContentModel{})

	if params.Search != "" {
		query = query.Where("title ILIKE ?", "%"+params.Search+"%")
	}
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.CreatorID != "" {
		query = query.Where("creator_id = ?", params.CreatorID)
	}
	if params.ApprovedOnly {
		query = query.Where("is_approved = ?", true)
	}
	if params.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	switch params.Status {
	case string(entity.StatusApproved):
		query = query.Where("is_approved = ?", true)
	case string(entity.StatusPending):
		query = query.Where("is_approved = ? AND rejection_reason IS NULL", false)
	case string(entity.StatusRejected):
		query = query.Where("is_approved = ? AND rejection_reason IS NOT NULL", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contentModels []model.ContentModel
	query = query.Preload("Film").Order("created_at DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit).Offset(params.Offset)
	}
	if err := query.Find(&contentModels).Error; err != nil {
		return nil, 0, err
	}

	contents := make([]*entity.Content, len(contentModels))
	for i := range contentModels {
		contents[i] = ToContentEntity(&contentModels[i])
	}
	return contents, total, nil
}

func (r *contentRepository) Update(content *entity.Content) error {
	contentModel := ToContentModel(content)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(contentModel).Error; err != nil {
			return err
		}
		if content.Film != nil {
			filmModel := ToFilmModel(content.Film)
			if err := tx.Save(filmModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the content and everything hanging off it: episodes, seasons,
// the serie or film sub-record and referencing transactions, all in one
// database transaction.
func (r *contentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var contentModel model.ContentModel
		if err := tx.Where("id = ?", id).First(&contentModel).Error; err != nil {
			return err
		}

		if entity.ContentType(contentModel.Type) == entity.TypeSerie {
			var serieModel model.SerieModel
			if err := tx.Where("content_id = ?", id).First(&serieModel).Error; err == nil {
				var seasonIDs []string
				if err := tx.Model(&model.SeasonModel{}).Where("serie_id = ?", serieModel.ID).Pluck("id", &seasonIDs).Error; err != nil {
					return err
				}
				if len(seasonIDs) > 0 {
					if err := tx.Where("season_id IN ?", seasonIDs).Delete(&model.EpisodeModel{}).Error; err != nil {
						return err
					}
				}
				if err := tx.Where("serie_id = ?", serieModel.ID).Delete(&model.SeasonModel{}).Error; err != nil {
					return err
				}
				if err := tx.Delete(&serieModel).Error; err != nil {
					return err
				}
			}
		} else {
			if err := tx.Where("content_id = ?", id).Delete(&model.FilmModel{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("content_id = ?", id).Delete(&model.TransactionModel{}).Error; err != nil {
			return err
		}

		return tx.Delete(&contentModel).Error
	})
}

func (r *contentRepository) SetReview(id string, approved bool, reason *string) error {
	return r.db.Model(&model.ContentModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_approved":      approved,
		"rejection_reason": reason,
	}).Error
}

func (r *contentRepository) SetFeatured(id string, featured bool) error {
	return r.db.Model(&model.ContentModel{}).Where("id = ?", id).Update("is_featured", featured).Error
}

func (r *contentRepository) GetSerieByContentID(contentID string) (*entity.Serie, error) {
	var serieModel model.SerieModel
	if err := r.db.Where("content_id = ?", contentID).First(&serieModel).Error; err != nil {
		return nil, err
	}
	return ToSerieEntity(&serieModel), nil
}

func (r *contentRepository) GetContentBySerieID(serieID string) (*entity.Content, error) {
	var serieModel model.SerieModel
	if err := r.db.Where("id = ?", serieID).First(&serieModel).Error; err != nil {
		return nil, err
	}

	var contentModel model.ContentModel
	if err := r.db.Where("id = ?", serieModel.ContentID).First(&contentModel).Error; err != nil {
		return nil, err
	}
	return ToContentEntity(&contentModel), nil
}

func (r *contentRepository) GetContentBySeasonID(seasonID string) (*entity.Content, error) {
	var seasonModel model.SeasonModel
	if err := r.db.Where("id = ?", seasonID).First(&seasonModel).Error; err != nil {
		return nil, err
	}
	return r.GetContentBySerieID(seasonModel.SerieID)
}

func (r *contentRepository) CreateSeason(season *entity.Season) error {
	seasonModel := ToSeasonModel(season)
	if seasonModel.ID == "" {
		seasonModel.ID = uuid.New().String()
	}
	if err := r.db.Create(seasonModel).Error; err != nil {
		return err
	}
	*season = *ToSeasonEntity(seasonModel)
	return nil
}

func (r *contentRepository) GetSeasonByID(id string) (*entity.Season, error) {
	var seasonModel model.SeasonModel
	err := r.db.Preload("Episodes", func(db *gorm.DB) *gorm.DB {
		return db.Order("episodes.number ASC")
	}).Where("id = ?", id).First(&seasonModel).Error
	if err != nil {
		return nil, err
	}
	return ToSeasonEntity(&seasonModel), nil
}

func (r *contentRepository) UpdateSeason(season *entity.Season) error {
	return r.db.Save(ToSeasonModel(season)).Error
}

func (r *contentRepository) DeleteSeason(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("season_id = ?", id).Delete(&model.EpisodeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SeasonModel{}, "id = ?", id).Error
	})
}

func (r *contentRepository) CountSeasonNumber(serieID string, number int, excludeID string) (int64, error) {
	var count int64
	query := r.db.Model(&model.SeasonModel{}).Where("serie_id = ? AND number = ?", serieID, number)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *contentRepository) CreateEpisode(episode *entity.Episode) error {
	episodeModel := ToEpisodeModel(episode)
	if episodeModel.ID == "" {
		episodeModel.ID = uuid.New().String()
	}
	if err := r.db.Create(episodeModel).Error; err != nil {
		return err
	}
	*episode = *ToEpisodeEntity(episodeModel)
	return nil
}

func (r *contentRepository) GetEpisodeByID(id string) (*entity.Episode, error) {
	var episodeModel model.EpisodeModel
	if err := r.db.Where("id = ?", id).First(&episodeModel).Error; err != nil {
		return nil, err
	}
	return ToEpisodeEntity(&episodeModel), nil
}

func (r *contentRepository) UpdateEpisode(episode *entity.Episode) error {
	return r.db.Save(ToEpisodeModel(episode)).Error
}

func (r *contentRepository) DeleteEpisode(id string) error {
	return r.db.Delete(&model.EpisodeModel{}, "id = ?", id).Error
}

func (r *contentRepository) CountEpisodeNumber(seasonID string, number int, excludeID string) (int64, error) {
	var count int64
	query := r.db.Model(&model.EpisodeModel{}).Where("season_id = ? AND number = ?", seasonID, number)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *contentRepository) CountEpisodesBySerie(serieID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.EpisodeModel{}).
		Joins("INNER JOIN seasons ON episodes.season_id = seasons.id").
		Where("seasons.serie_id = ?", serieID).
		Count(&count).Error
	return count, err
}
