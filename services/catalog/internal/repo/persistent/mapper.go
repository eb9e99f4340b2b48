package persistent

import (
	"cinewave/services/catalog/internal/entity"
	"cinewave/services/catalog/internal/model"
)

func ToContentEntity(m *model.ContentModel) *entity.Content {
	if m == nil {
		return nil
	}

	content := &entity.Content{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Type:            entity.ContentType(m.Type),
		Price:           m.Price,
		Thumbnail:       m.Thumbnail,
		Trailer:         m.Trailer,
		Genre:           m.Genre,
		Director:        m.Director,
		Year:            m.Year,
		Country:         m.Country,
		Language:        m.Language,
		CastList:        m.CastList,
		IsApproved:      m.IsApproved,
		RejectionReason: m.RejectionReason,
		IsFeatured:      m.IsFeatured,
		CreatorID:       m.CreatorID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	if m.Film != nil {
		content.Film = ToFilmEntity(m.Film)
	}
	if m.Serie != nil {
		content.Serie = ToSerieEntity(m.Serie)
	}

	return content
}

func ToContentModel(e *entity.Content) *model.ContentModel {
	if e == nil {
		return nil
	}

	return &model.ContentModel{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Type:            string(e.Type),
		Price:           e.Price,
		Thumbnail:       e.Thumbnail,
		Trailer:         e.Trailer,
		Genre:           e.Genre,
		Director:        e.Director,
		Year:            e.Year,
		Country:         e.Country,
		Language:        e.Language,
		CastList:        e.CastList,
		IsApproved:      e.IsApproved,
		RejectionReason: e.RejectionReason,
		IsFeatured:      e.IsFeatured,
		CreatorID:       e.CreatorID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToFilmEntity(m *model.FilmModel) *entity.Film {
	if m == nil {
		return nil
	}
	return &entity.Film{
		ID:        m.ID,
		ContentID: m.ContentID,
		Duration:  m.Duration,
		VideoPath: m.VideoPath,
	}
}

func ToFilmModel(e *entity.Film) *model.FilmModel {
	if e == nil {
		return nil
	}
	return &model.FilmModel{
		ID:        e.ID,
		ContentID: e.ContentID,
		Duration:  e.Duration,
		VideoPath: e.VideoPath,
	}
}

func ToSerieEntity(m *model.SerieModel) *entity.Serie {
	if m == nil {
		return nil
	}

	serie := &entity.Serie{
		ID:        m.ID,
		ContentID: m.ContentID,
	}
	if len(m.Seasons) > 0 {
		serie.Seasons = make([]entity.Season, len(m.Seasons))
		for i := range m.Seasons {
			serie.Seasons[i] = *ToSeasonEntity(&m.Seasons[i])
		}
	}
	return serie
}

func ToSeasonEntity(m *model.SeasonModel) *entity.Season {
	if m == nil {
		return nil
	}

	season := &entity.Season{
		ID:      m.ID,
		SerieID: m.SerieID,
		Number:  m.Number,
		Title:   m.Title,
	}
	if len(m.Episodes) > 0 {
		season.Episodes = make([]entity.Episode, len(m.Episodes))
		for i := range m.Episodes {
			season.Episodes[i] = *ToEpisodeEntity(&m.Episodes[i])
		}
	}
	return season
}

func ToSeasonModel(e *entity.Season) *model.SeasonModel {
	if e == nil {
		return nil
	}
	return &model.SeasonModel{
		ID:      e.ID,
		SerieID: e.SerieID,
		Number:  e.Number,
		Title:   e.Title,
	}
}

func ToEpisodeEntity(m *model.EpisodeModel) *entity.Episode {
	if m == nil {
		return nil
	}
	return &entity.Episode{
		ID:          m.ID,
		SeasonID:    m.SeasonID,
		Title:       m.Title,
		Number:      m.Number,
		Duration:    m.Duration,
		VideoPath:   m.VideoPath,
		Thumbnail:   m.Thumbnail,
		Description: m.Description,
	}
}

func ToEpisodeModel(e *entity.Episode) *model.EpisodeModel {
	if e == nil {
		return nil
	}
	return &model.EpisodeModel{
		ID:          e.ID,
		SeasonID:    e.SeasonID,
		Title:       e.Title,
		Number:      e.Number,
		Duration:    e.Duration,
		VideoPath:   e.VideoPath,
		Thumbnail:   e.Thumbnail,
		Description: e.Description,
	}
}
