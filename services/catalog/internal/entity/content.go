package entity

import "time"

type ContentType string

const (
	TypeFilm  ContentType = "FILM"
	TypeSerie ContentType = "SERIE"
)

// RoleAdmin mirrors the auth service role string carried in JWT claims.
const RoleAdmin = "ADMIN"

type ContentStatus string

const (
	StatusPending  ContentStatus = "pending"
	StatusApproved ContentStatus = "approved"
	StatusRejected ContentStatus = "rejected"
)

// Content is the base catalog record. Exactly one of Film/Serie is set,
// selected by Type.
type Content struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Type            ContentType `json:"type"`
	Price           *float64    `json:"price"` // nil = free
	Thumbnail       string      `json:"thumbnail"`
	Trailer         string      `json:"trailer"`
	Genre           string      `json:"genre"`
	Director        string      `json:"director"`
	Year            int         `json:"year"`
	Country         string      `json:"country"`
	Language        string      `json:"language"`
	CastList        string      `json:"cast"`
	IsApproved      bool        `json:"is_approved"`
	RejectionReason *string     `json:"rejection_reason,omitempty"`
	IsFeatured      bool        `json:"is_featured"`
	CreatorID       string      `json:"creator_id"`
	Film            *Film       `json:"film,omitempty"`
	Serie           *Serie      `json:"serie,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Status derives the review state: approved, rejected (with a reason) or pending.
func (c *Content) Status() ContentStatus {
	if c.IsApproved {
		return StatusApproved
	}
	if c.RejectionReason != nil {
		return StatusRejected
	}
	return StatusPending
}

func (c *Content) IsFree() bool {
	return c.Price == nil || *c.Price == 0
}

type Film struct {
	ID        string `json:"id"`
	ContentID string `json:"content_id"`
	Duration  int    `json:"duration"` // minutes
	VideoPath string `json:"video_path"`
}

type Serie struct {
	ID        string   `json:"id"`
	ContentID string   `json:"content_id"`
	Seasons   []Season `json:"seasons"`
}

type Season struct {
	ID       string    `json:"id"`
	SerieID  string    `json:"serie_id"`
	Number   int       `json:"number"`
	Title    string    `json:"title"`
	Episodes []Episode `json:"episodes"`
}

type Episode struct {
	ID          string `json:"id"`
	SeasonID    string `json:"season_id"`
	Title       string `json:"title"`
	Number      *int   `json:"number"` // nullable; unique per season when set
	Duration    int    `json:"duration"`
	VideoPath   string `json:"video_path"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
}
