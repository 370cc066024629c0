package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EmployeeSentiment struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FeedbackText   string    `gorm:"type:text" json:"-"`
	ResultJSON     string    `gorm:"type:text" json:"-"`
	SentimentScore float64   `gorm:"type:decimal(4,2)" json:"sentiment_score"`
	AttritionRisk  string    `gorm:"type:varchar(10)" json:"attrition_risk"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (EmployeeSentiment) TableName() string {
	return "employee_sentiments"
}

// Result decodes the stored full sentiment analysis record.
func (s *EmployeeSentiment) Result() map[string]interface{} {
	if s.ResultJSON == "" {
		return map[string]interface{}{}
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(s.ResultJSON), &result); err != nil {
		return map[string]interface{}{}
	}

	return result
}
