package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentType string

const (
	ContentTypeFilm  ContentType = "FILM"
	ContentTypeSerie ContentType = "SERIE"
)

// Content is the base record for both films and series. Exactly one of the
// Film/Serie sub-records exists per content, selected by Type.
type Content struct {
	ID              string      `gorm:"type:uuid;primary_key" json:"id"`
	Title           string      `gorm:"not null" json:"title"`
	Description     string      `gorm:"type:text" json:"description"`
	Type            ContentType `gorm:"type:varchar(10);not null;index" json:"type"`
	Price           *float64    `json:"price"` // nil = free
	Thumbnail       string      `gorm:"type:varchar(500)" json:"thumbnail"`
	Trailer         string      `gorm:"type:varchar(500)" json:"trailer"`
	Genre           string      `gorm:"index" json:"genre"`
	Director        string      `json:"director"`
	Year            int         `json:"year"`
	Country         string      `json:"country"`
	Language        string      `json:"language"`
	CastList        string      `gorm:"type:text;column:cast_list" json:"cast"`
	IsApproved      bool        `gorm:"default:false;index" json:"is_approved"`
	RejectionReason *string     `json:"rejection_reason,omitempty"`
	IsFeatured      bool        `gorm:"default:false" json:"is_featured"`
	CreatorID       string      `gorm:"type:uuid;not null;index" json:"creator_id"`
	Film            *Film       `gorm:"foreignKey:ContentID" json:"film,omitempty"`
	Serie           *Serie      `gorm:"foreignKey:ContentID" json:"serie,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (Content) TableName() string {
	return "contents"
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type Film struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	ContentID string    `gorm:"type:uuid;uniqueIndex;not null" json:"content_id"`
	Duration  int       `json:"duration"` // minutes
	VideoPath string    `gorm:"type:varchar(500)" json:"video_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Film) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

type Serie struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	ContentID string    `gorm:"type:uuid;uniqueIndex;not null" json:"content_id"`
	Seasons   []Season  `gorm:"foreignKey:SerieID" json:"seasons"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Serie) TableName() string {
	return "series"
}

func (s *Serie) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type Season struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	SerieID   string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_seasons_serie_number" json:"serie_id"`
	Number    int       `gorm:"not null;uniqueIndex:idx_seasons_serie_number" json:"number"`
	Title     string    `json:"title"`
	Episodes  []Episode `gorm:"foreignKey:SeasonID" json:"episodes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Season) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type Episode struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	SeasonID    string    `gorm:"type:uuid;not null;index" json:"season_id"`
	Title       string    `gorm:"not null" json:"title"`
	Number      *int      `json:"number"` // nullable; unique per season when set
	Duration    int       `json:"duration"`
	VideoPath   string    `gorm:"type:varchar(500)" json:"video_path"`
	Thumbnail   string    `gorm:"type:varchar(500)" json:"thumbnail"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *Episode) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
