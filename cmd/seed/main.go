package main

import (
	"fmt"

	"cinewave/pkg/config"
	"cinewave/pkg/database"
	"cinewave/pkg/logger"
	"cinewave/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		name     string
		password string
		role     models.UserRole
		verified bool
	}{
		{"admin@cinewave.io", "Platform Admin", "admin12345", models.RoleAdmin, true},
		{"marta@cinewave.io", "Marta Reyes", "password123", models.RoleCreator, true},
		{"deniz@cinewave.io", "Deniz Kaya", "password123", models.RoleCreator, false},
		{"viewer@cinewave.io", "Sam Viewer", "password123", models.RoleUser, true},
	}

	userIDs := make(map[string]string, len(testUsers))

	for _, userData := range testUsers {
		var existing models.User
		result := db.Where("email = ?", userData.email).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", userData.email)
			userIDs[userData.email] = existing.ID
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &models.User{
			Email:      userData.email,
			Name:       userData.name,
			Password:   string(hashedPassword),
			Role:       userData.role,
			IsVerified: userData.verified,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}
		userIDs[userData.email] = user.ID
		log.Info("Created user %s (%s)", userData.email, userData.role)
	}

	creatorID := userIDs["marta@cinewave.io"]

	if err := seedFilm(db, log, creatorID); err != nil {
		return err
	}
	return seedSerie(db, log, creatorID)
}

func seedFilm(db *gorm.DB, log *logger.Logger, creatorID string) error {
	var existing models.Content
	if err := db.Where("title = ? AND creator_id = ?", "Harbor Lights", creatorID).First(&existing).Error; err == nil {
		log.Info("Sample film already exists, skipping")
		return nil
	}

	filmPrice := 4.99
	content := &models.Content{
		Title:       "Harbor Lights",
		Description: "A fisherman's last season before the harbor closes for good.",
		Type:        models.ContentTypeFilm,
		Price:       &filmPrice,
		Genre:       "drama",
		Year:        2024,
		Language:    "en",
		IsApproved:  true,
		CreatorID:   creatorID,
	}
	if err := db.Create(content).Error; err != nil {
		return fmt.Errorf("failed to create sample film: %w", err)
	}

	film := &models.Film{
		ContentID: content.ID,
		Duration:  104,
		VideoPath: "videos/harbor-lights.mp4",
	}
	if err := db.Create(film).Error; err != nil {
		return fmt.Errorf("failed to create sample film record: %w", err)
	}

	log.Info("Created sample film %s", content.Title)
	return nil
}

func seedSerie(db *gorm.DB, log *logger.Logger, creatorID string) error {
	var existing models.Content
	if err := db.Where("title = ? AND creator_id = ?", "Night Shift", creatorID).First(&existing).Error; err == nil {
		log.Info("Sample serie already exists, skipping")
		return nil
	}

	content := &models.Content{
		Title:       "Night Shift",
		Description: "A free anthology following the city after midnight.",
		Type:        models.ContentTypeSerie,
		Genre:       "documentary",
		Year:        2025,
		Language:    "en",
		IsApproved:  true,
		CreatorID:   creatorID,
	}
	if err := db.Create(content).Error; err != nil {
		return fmt.Errorf("failed to create sample serie: %w", err)
	}

	serie := &models.Serie{ContentID: content.ID}
	if err := db.Create(serie).Error; err != nil {
		return fmt.Errorf("failed to create sample serie record: %w", err)
	}

	season := &models.Season{
		SerieID: serie.ID,
		Number:  1,
		Title:   "Season 1",
	}
	if err := db.Create(season).Error; err != nil {
		return fmt.Errorf("failed to create sample season: %w", err)
	}

	episodes := []struct {
		number int
		title  string
	}{
		{1, "The Dispatcher"},
		{2, "Last Train Home"},
	}
	for _, e := range episodes {
		number := e.number
		episode := &models.Episode{
			SeasonID:  season.ID,
			Title:     e.title,
			Number:    &number,
			Duration:  24,
			VideoPath: fmt.Sprintf("videos/night-shift-s01e%02d.mp4", e.number),
		}
		if err := db.Create(episode).Error; err != nil {
			return fmt.Errorf("failed to create sample episode: %w", err)
		}
	}

	log.Info("Created sample serie %s", content.Title)
	return nil
}
