package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ResumeEvaluation struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeText        string    `gorm:"type:text" json:"-"`
	JobDescription    string    `gorm:"type:text" json:"-"`
	ResultJSON        string    `gorm:"type:text" json:"-"`
	OverallMatchScore float64   `gorm:"type:decimal(4,2)" json:"overall_match_score"`
	Recommendation    string    `gorm:"type:varchar(20)" json:"recommendation"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ResumeEvaluation) TableName() string {
	return "resume_evaluations"
}

// Result decodes the stored full evaluation record.
func (e *ResumeEvaluation) Result() map[string]interface{} {
	if e.ResultJSON == "" {
		return map[string]interface{}{}
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(e.ResultJSON), &result); err != nil {
		return map[string]interface{}{}
	}

	return result
}
