package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"hr-assistant/internal/models"
	"hr-assistant/internal/repositories"
)

type SentimentService interface {
	AnalyzeFeedback(ctx context.Context, feedbackText string) (*SentimentResult, error)
}

// SentimentResult is the validated record produced for one piece of employee
// feedback. AttritionRisk is freeform text, same permissiveness as the
// evaluation recommendation.
type SentimentResult struct {
	SentimentScore           float64  `json:"sentiment_score"`
	AttritionRisk            string   `json:"attrition_risk"`
	KeyConcerns              []string `json:"key_concerns"`
	PositiveAspects          []string `json:"positive_aspects"`
	RetentionRecommendations []string `json:"retention_recommendations"`
	Summary                  string   `json:"summary"`
}

var sentimentContract = ResponseContract{
	RequiredFields: []string{
		"sentiment_score",
		"attrition_risk",
		"key_concerns",
		"positive_aspects",
		"retention_recommendations",
		"summary",
	},
	ScoreField: "sentiment_score",
	ScoreMin:   1,
	ScoreMax:   10,
}

type sentimentService struct {
	sentimentRepo repositories.SentimentRepository
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewSentimentService(
	sentimentRepo repositories.SentimentRepository,
	geminiService GeminiService,
) SentimentService {
	return &sentimentService{
		sentimentRepo: sentimentRepo,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// AnalyzeFeedback implements SentimentService.
func (s *sentimentService) AnalyzeFeedback(ctx context.Context, feedbackText string) (*SentimentResult, error) {
	prompt := s.promptBuilder.BuildSentimentPrompt(feedbackText)

	response, err := s.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		return nil, &SentimentError{Err: err}
	}

	record, err := ExtractRecord(response, sentimentContract)
	if err != nil {
		return nil, &SentimentError{Err: err}
	}

	result, resultJSON, err := decodeSentiment(record)
	if err != nil {
		return nil, &SentimentError{Err: err}
	}

	sentiment := &models.EmployeeSentiment{
		FeedbackText:   feedbackText,
		ResultJSON:     resultJSON,
		SentimentScore: result.SentimentScore,
		AttritionRisk:  result.AttritionRisk,
	}
	if err := s.sentimentRepo.Create(sentiment); err != nil {
		log.Printf("⚠️  Sentiment analysis completed but could not be saved: %v\n", err)
	}

	return result, nil
}

func decodeSentiment(record map[string]interface{}) (*SentimentResult, string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode sentiment record: %w", err)
	}

	var result SentimentResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, "", fmt.Errorf("failed to decode sentiment record: %w", err)
	}

	return &result, string(data), nil
}
