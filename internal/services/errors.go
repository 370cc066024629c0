package services

import "fmt"

// GenerationError wraps any failure of the outbound model call: network,
// auth, or a service-side rejection. It is never retried here.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("model generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// MalformedJSONError means the candidate payload pulled out of the model
// response could not be parsed. Payload is kept for diagnostics.
type MalformedJSONError struct {
	Payload string
	Err     error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in model response: %v (payload: %s)", e.Err, truncate(e.Payload, 200))
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// MissingFieldError means a required field was absent from an otherwise
// well-formed parsed object.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field in model response: %s", e.Field)
}

// TypeMismatchError means a field was present but held the wrong type.
type TypeMismatchError struct {
	Field    string
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %s has wrong type, expected %s", e.Field, e.Expected)
}

// EvaluationError is the single user-facing failure for the resume
// evaluation flow. The original cause chain is preserved.
type EvaluationError struct {
	Err error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("resume evaluation failed: %v", e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// SentimentError is the single user-facing failure for the sentiment
// analysis flow.
type SentimentError struct {
	Err error
}

func (e *SentimentError) Error() string {
	return fmt.Sprintf("sentiment analysis failed: %v", e.Err)
}

func (e *SentimentError) Unwrap() error { return e.Err }

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
