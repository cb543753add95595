package extractor

import (
	"encoding/json"
	"strings"

	"contract-rag/internal/models"
)

var emptyString = json.RawMessage(`""`)

// parseResult validates the model response and backfills any missing
// required key with a safe default rather than failing the extraction.
func parseResult(raw json.RawMessage) (models.FieldExtractionResult, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return models.FieldExtractionResult{}, err
	}

	result := models.FieldExtractionResult{
		FieldValue: emptyString,
		Confidence: 1,
		Reasoning:  "No reasoning provided",
		Proof:      emptyString,
	}

	if v, ok := keys["field_value"]; ok {
		result.FieldValue = v
	}
	if v, ok := keys["page_number"]; ok {
		result.PageNumber = asString(v)
	}
	if v, ok := keys["confidence"]; ok {
		result.Confidence = parseConfidence(v)
	}
	if v, ok := keys["reasoning"]; ok {
		result.Reasoning = asString(v)
	}
	if v, ok := keys["proof"]; ok {
		result.Proof = v
	}

	return result, nil
}

// parseConfidence accepts the numeric 1-10 scale, passing numbers through
// unchanged, and maps the legacy label format to its numeric equivalent.
func parseConfidence(raw json.RawMessage) models.Confidence10 {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return models.Confidence10(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return MapLegacyConfidence(s)
	}
	return 1
}

// MapLegacyConfidence converts the old high/medium/low labels to the
// numeric scale. Unrecognized labels map to 1.
func MapLegacyConfidence(label string) models.Confidence10 {
	switch strings.ToLower(label) {
	case "high":
		return 9
	case "medium":
		return 6
	case "low":
		return 3
	default:
		return 1
	}
}

// asString renders a JSON value as plain text: strings are unquoted,
// anything else keeps its JSON encoding. Models occasionally return page
// numbers as bare numbers despite the schema.
func asString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func degradedOutcome(field, reason string) models.FieldOutcome {
	return models.FieldOutcome{
		Field: field,
		Result: models.FieldExtractionResult{
			FieldValue: emptyString,
			Confidence: 1,
			Reasoning:  reason,
			Proof:      emptyString,
		},
		Degraded: true,
		Reason:   reason,
	}
}
