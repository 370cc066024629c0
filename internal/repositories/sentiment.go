package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"hr-assistant/internal/models"
)

type SentimentRepository interface {
	Create(sentiment *models.EmployeeSentiment) error
	FindRecent(limit int) ([]models.EmployeeSentiment, error)
}

type sentimentRepository struct {
	db *gorm.DB
}

func NewSentimentRepository(db *gorm.DB) SentimentRepository {
	return &sentimentRepository{db: db}
}

func (r *sentimentRepository) Create(sentiment *models.EmployeeSentiment) error {
	if err := r.db.Create(sentiment).Error; err != nil {
		return fmt.Errorf("failed to create sentiment analysis: %w", err)
	}
	return nil
}

func (r *sentimentRepository) FindRecent(limit int) ([]models.EmployeeSentiment, error) {
	var sentiments []models.EmployeeSentiment
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&sentiments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find sentiment analyses: %w", err)
	}

	return sentiments, nil
}
