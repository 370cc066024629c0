package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"hr-assistant/internal/models"
	"hr-assistant/internal/repositories"
)

type EvaluatorService interface {
	EvaluateResume(ctx context.Context, resumeText, jobDescription string) (*EvaluationResult, error)
}

// EvaluationResult is the validated record produced for one resume and job
// description pair. Recommendation is stored as the model returned it; only
// presence is enforced, not membership in the documented set.
type EvaluationResult struct {
	OverallMatchScore float64  `json:"overall_match_score"`
	KeySkillsMatched  []string `json:"key_skills_matched"`
	MissingWeakAreas  []string `json:"missing_weak_areas"`
	ExperienceSummary string   `json:"experience_summary"`
	Recommendation    string   `json:"recommendation"`
	Reasoning         string   `json:"reasoning"`
}

var evaluationContract = ResponseContract{
	RequiredFields: []string{
		"overall_match_score",
		"key_skills_matched",
		"missing_weak_areas",
		"experience_summary",
		"recommendation",
		"reasoning",
	},
	ScoreField: "overall_match_score",
	ScoreMin:   0,
	ScoreMax:   10,
}

type evaluatorService struct {
	evalRepo      repositories.EvaluationRepository
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewEvaluatorService(
	evalRepo repositories.EvaluationRepository,
	geminiService GeminiService,
) EvaluatorService {
	return &evaluatorService{
		evalRepo:      evalRepo,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// EvaluateResume implements EvaluatorService. One prompt, one model call,
// one validated record or one error.
func (e *evaluatorService) EvaluateResume(ctx context.Context, resumeText, jobDescription string) (*EvaluationResult, error) {
	prompt := e.promptBuilder.BuildEvaluationPrompt(resumeText, jobDescription)

	response, err := e.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		return nil, &EvaluationError{Err: err}
	}

	record, err := ExtractRecord(response, evaluationContract)
	if err != nil {
		return nil, &EvaluationError{Err: err}
	}

	result, resultJSON, err := decodeEvaluation(record)
	if err != nil {
		return nil, &EvaluationError{Err: err}
	}

	// Persist the validated record together with the original inputs. A
	// storage failure does not invalidate the evaluation itself.
	evaluation := &models.ResumeEvaluation{
		ResumeText:        resumeText,
		JobDescription:    jobDescription,
		ResultJSON:        resultJSON,
		OverallMatchScore: result.OverallMatchScore,
		Recommendation:    result.Recommendation,
	}
	if err := e.evalRepo.Create(evaluation); err != nil {
		log.Printf("⚠️  Evaluation completed but could not be saved: %v\n", err)
	}

	return result, nil
}

func decodeEvaluation(record map[string]interface{}) (*EvaluationResult, string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode evaluation record: %w", err)
	}

	var result EvaluationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, "", fmt.Errorf("failed to decode evaluation record: %w", err)
	}

	return &result, string(data), nil
}
