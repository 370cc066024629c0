package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildEvaluationPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	resume := "Jane Doe\n10 years of Go and Python."
	job := "Senior Backend Engineer, Go required."

	prompt := pb.BuildEvaluationPrompt(resume, job)

	// Inputs are embedded verbatim
	assert.Contains(t, prompt, resume)
	assert.Contains(t, prompt, job)

	// The full output schema is spelled out
	for _, field := range evaluationContract.RequiredFields {
		assert.Contains(t, prompt, `"`+field+`"`)
	}
	assert.Contains(t, prompt, "JSON")
}

func TestBuildEvaluationPrompt_EmptyInputsAllowed(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildEvaluationPrompt("", "")
	assert.Contains(t, prompt, "JOB DESCRIPTION:")
	assert.Contains(t, prompt, "CANDIDATE RESUME:")
}

func TestBuildSentimentPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	feedback := "I feel my career growth has stagnated."
	prompt := pb.BuildSentimentPrompt(feedback)

	assert.Contains(t, prompt, feedback)
	for _, field := range sentimentContract.RequiredFields {
		assert.Contains(t, prompt, `"`+field+`"`)
	}
}

func TestPromptsAreDeterministic(t *testing.T) {
	pb := NewPromptBuilder()

	assert.Equal(t,
		pb.BuildEvaluationPrompt("resume", "job"),
		pb.BuildEvaluationPrompt("resume", "job"),
	)
	assert.Equal(t,
		pb.BuildSentimentPrompt("feedback"),
		pb.BuildSentimentPrompt("feedback"),
	)
}
