package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-assistant/internal/models"
)

type fakeGeminiService struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeGeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeEvaluationRepo struct {
	created []*models.ResumeEvaluation
	err     error
}

func (f *fakeEvaluationRepo) Create(eval *models.ResumeEvaluation) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, eval)
	return nil
}

func (f *fakeEvaluationRepo) FindRecent(limit int) ([]models.ResumeEvaluation, error) {
	return nil, nil
}

func TestEvaluateResume_ClampsAndPersists(t *testing.T) {
	gemini := &fakeGeminiService{
		response: "Here is the result:\n```json\n" +
			`{"overall_match_score": 12, "key_skills_matched": ["python"], "missing_weak_areas": [], "experience_summary": "5 years backend", "recommendation": "Strong Fit", "reasoning": "Good fit"}` +
			"\n```",
	}
	repo := &fakeEvaluationRepo{}
	svc := NewEvaluatorService(repo, gemini)

	result, err := svc.EvaluateResume(context.Background(), "resume text", "job description")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 10.0, result.OverallMatchScore)
	assert.Equal(t, []string{"python"}, result.KeySkillsMatched)
	assert.Empty(t, result.MissingWeakAreas)
	assert.Equal(t, "5 years backend", result.ExperienceSummary)
	assert.Equal(t, "Strong Fit", result.Recommendation)
	assert.Equal(t, "Good fit", result.Reasoning)

	// The prompt carried both inputs
	assert.Contains(t, gemini.lastPrompt, "resume text")
	assert.Contains(t, gemini.lastPrompt, "job description")

	// The stored record holds the clamped score and original inputs
	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.Equal(t, 10.0, stored.OverallMatchScore)
	assert.Equal(t, "Strong Fit", stored.Recommendation)
	assert.Equal(t, "resume text", stored.ResumeText)
	assert.Equal(t, "job description", stored.JobDescription)
	assert.Equal(t, 10.0, stored.Result()["overall_match_score"])
}

func TestEvaluateResume_MissingRecommendation(t *testing.T) {
	gemini := &fakeGeminiService{
		response: `{"overall_match_score": 5, "key_skills_matched": [], "missing_weak_areas": [], "experience_summary": "n/a", "reasoning": "n/a"}`,
	}
	repo := &fakeEvaluationRepo{}
	svc := NewEvaluatorService(repo, gemini)

	result, err := svc.EvaluateResume(context.Background(), "resume", "job")
	require.Error(t, err)
	assert.Nil(t, result)

	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))

	var fieldErr *MissingFieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "recommendation", fieldErr.Field)

	// No partial record is ever stored
	assert.Empty(t, repo.created)
}

func TestEvaluateResume_GenerationFailure(t *testing.T) {
	gemini := &fakeGeminiService{
		err: &GenerationError{Err: fmt.Errorf("service unavailable")},
	}
	repo := &fakeEvaluationRepo{}
	svc := NewEvaluatorService(repo, gemini)

	result, err := svc.EvaluateResume(context.Background(), "resume", "job")
	require.Error(t, err)
	assert.Nil(t, result)

	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Contains(t, genErr.Error(), "service unavailable")

	assert.Empty(t, repo.created)
}

func TestEvaluateResume_StorageFailureDoesNotDropResult(t *testing.T) {
	gemini := &fakeGeminiService{
		response: `{"overall_match_score": 6, "key_skills_matched": [], "missing_weak_areas": [], "experience_summary": "ok", "recommendation": "Moderate Fit", "reasoning": "ok"}`,
	}
	repo := &fakeEvaluationRepo{err: fmt.Errorf("db down")}
	svc := NewEvaluatorService(repo, gemini)

	result, err := svc.EvaluateResume(context.Background(), "resume", "job")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 6.0, result.OverallMatchScore)
}
