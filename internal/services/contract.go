package services

import (
	"encoding/json"
	"math"
	"strings"
)

const fenceMarker = "```"

// ResponseContract describes the JSON object a model response must satisfy
// before the rest of the system is allowed to see it: which fields must be
// present, and the closed range the score field is clamped into.
type ResponseContract struct {
	RequiredFields []string
	ScoreField     string
	ScoreMin       float64
	ScoreMax       float64
}

// ExtractRecord parses raw model output into a validated record.
//
// The candidate payload is located first: a ```json fence wins over a generic
// ``` fence pair, and with no fences at all the whole text is used. The
// payload must parse as a JSON object, every required field must be present
// (all-or-nothing, no partial records), and the score field must be a JSON
// number. Out-of-range scores are clamped, not rejected, since models
// routinely overshoot their stated bounds.
func ExtractRecord(raw string, contract ResponseContract) (map[string]interface{}, error) {
	payload := extractPayload(raw)

	var record map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, &MalformedJSONError{Payload: payload, Err: err}
	}

	for _, field := range contract.RequiredFields {
		if _, ok := record[field]; !ok {
			return nil, &MissingFieldError{Field: field}
		}
	}

	score, ok := record[contract.ScoreField].(float64)
	if !ok {
		return nil, &TypeMismatchError{Field: contract.ScoreField, Expected: "number"}
	}
	record[contract.ScoreField] = math.Max(contract.ScoreMin, math.Min(contract.ScoreMax, score))

	return record, nil
}

// extractPayload pulls the JSON candidate out of model text. An opening fence
// without a closing one consumes the rest of the text.
func extractPayload(text string) string {
	if idx := strings.Index(text, fenceMarker+"json"); idx != -1 {
		rest := text[idx+len(fenceMarker+"json"):]
		if end := strings.Index(rest, fenceMarker); end != -1 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}

	if idx := strings.Index(text, fenceMarker); idx != -1 {
		rest := text[idx+len(fenceMarker):]
		if end := strings.Index(rest, fenceMarker); end != -1 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}

	return strings.TrimSpace(text)
}
