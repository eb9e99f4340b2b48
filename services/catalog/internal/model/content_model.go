package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentModel struct {
	ID              string `gorm:"type:uuid;primary_key"`
	Title           string `gorm:"not null"`
	Description     string `gorm:"type:text"`
	Type            string `gorm:"type:varchar(10);not null;index"`
	Price           *float64
	Thumbnail       string `gorm:"type:varchar(500)"`
	Trailer         string `gorm:"type:varchar(500)"`
	Genre           string `gorm:"index"`
	Director        string
	Year            int
	Country         string
	Language        string
	CastList        string `gorm:"type:text;column:cast_list"`
	IsApproved      bool   `gorm:"default:false;index"`
	RejectionReason *string
	IsFeatured      bool        `gorm:"default:false"`
	CreatorID       string      `gorm:"type:uuid;not null;index"`
	Film            *FilmModel  `gorm:"foreignKey:ContentID"`
	Serie           *SerieModel `gorm:"foreignKey:ContentID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ContentModel) TableName() string {
	return "contents"
}

func (c *ContentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type FilmModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	ContentID string `gorm:"type:uuid;uniqueIndex;not null"`
	Duration  int
	VideoPath string `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FilmModel) TableName() string {
	return "films"
}

func (f *FilmModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

type SerieModel struct {
	ID        string        `gorm:"type:uuid;primary_key"`
	ContentID string        `gorm:"type:uuid;uniqueIndex;not null"`
	Seasons   []SeasonModel `gorm:"foreignKey:SerieID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SerieModel) TableName() string {
	return "series"
}

func (s *SerieModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type SeasonModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	SerieID   string `gorm:"type:uuid;not null;index;uniqueIndex:idx_seasons_serie_number"`
	Number    int    `gorm:"not null;uniqueIndex:idx_seasons_serie_number"`
	Title     string
	Episodes  []EpisodeModel `gorm:"foreignKey:SeasonID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SeasonModel) TableName() string {
	return "seasons"
}

func (s *SeasonModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type EpisodeModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	SeasonID    string `gorm:"type:uuid;not null;index"`
	Title       string `gorm:"not null"`
	Number      *int
	Duration    int
	VideoPath   string `gorm:"type:varchar(500)"`
	Thumbnail   string `gorm:"type:varchar(500)"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EpisodeModel) TableName() string {
	return "episodes"
}

func (e *EpisodeModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TransactionModel mirrors the billing table so cascaded content deletes can
// remove referencing transactions in the same database transaction.
type TransactionModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;not null;index"`
	ContentID string `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}
