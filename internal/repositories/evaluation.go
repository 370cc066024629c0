package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"hr-assistant/internal/models"
)

type EvaluationRepository interface {
	Create(eval *models.ResumeEvaluation) error
	FindRecent(limit int) ([]models.ResumeEvaluation, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(eval *models.ResumeEvaluation) error {
	if err := r.db.Create(eval).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}

func (r *evaluationRepository) FindRecent(limit int) ([]models.ResumeEvaluation, error) {
	var evals []models.ResumeEvaluation
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&evals).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find evaluations: %w", err)
	}

	return evals, nil
}
