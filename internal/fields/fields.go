// Package fields holds the static extraction configuration: for every
// contract field of each document type, the retrieval query variants, the
// canonical query, extraction notes for the model, and the JSON output
// schema the model response is constrained to. The core consumes this
// data read-only.
package fields

import (
	"encoding/json"
	"fmt"

	"contract-rag/internal/llm"
	"contract-rag/internal/models"
)

// ValueKind tags the shape of a field's field_value in the output schema.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueNumber
	ValueEnum
	ValueInsurance
	ValueRoleRates
	ValueBillingRates
)

// Field is one extraction target.
type Field struct {
	Name           string
	Queries        []string
	CanonicalQuery string
	Notes          string
	SchemaName     string
	Kind           ValueKind
	EnumValues     []string
	ValueDesc      string
}

// For returns the configured fields for a document type, in extraction
// order.
func For(docType models.DocType) []Field {
	if docType == models.DocTypeMSA {
		return msaFields
	}
	return sowFields
}

// Lookup finds a field by name within a document type's catalog.
func Lookup(docType models.DocType, name string) (Field, bool) {
	for _, f := range For(docType) {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// OutputSchema renders the field's JSON schema: field_value shaped per
// the value kind plus the four provenance properties.
func (f Field) OutputSchema() llm.ResponseSchema {
	proof := map[string]any{
		"type":        "string",
		"description": "Exact content from the contract chunk used as proof for the extraction.",
	}
	if f.Kind == ValueInsurance {
		proof = map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":        "string",
				"description": "Exact content from the contract chunk used as proof for the extraction.",
			},
		}
	}

	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"field_value": f.valueSchema(),
			"page_number": map[string]any{
				"type":        "string",
				"description": fmt.Sprintf("The page number from which the %s was extracted.", f.Name),
			},
			"confidence": map[string]any{
				"type":        "number",
				"description": "The confidence level of the extraction, ranging from 1 to 10.",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": fmt.Sprintf("Justification for why the %s was extracted.", f.Name),
			},
			"proof": proof,
		},
		"required":             []string{"field_value", "page_number", "confidence", "reasoning", "proof"},
		"additionalProperties": false,
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("fields: schema for %s does not marshal: %v", f.Name, err))
	}
	return llm.ResponseSchema{Name: f.SchemaName, Schema: raw}
}

func (f Field) valueSchema() map[string]any {
	switch f.Kind {
	case ValueNumber:
		return map[string]any{"type": "number", "description": f.ValueDesc}
	case ValueEnum:
		return map[string]any{"type": "string", "enum": f.EnumValues, "description": f.ValueDesc}
	case ValueInsurance:
		return insuranceValueSchema()
	case ValueRoleRates:
		return map[string]any{
			"type":        "array",
			"description": f.ValueDesc,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"role": map[string]any{"type": "string", "description": "The name of the role"},
					"rate": map[string]any{
						"type":        "number",
						"description": "The rate corresponding to the role. If multiple rates are mentioned, consider the highest rate. If no rate is mentioned, return 0.",
					},
				},
				"required":             []string{"role", "rate"},
				"additionalProperties": false,
			},
		}
	case ValueBillingRates:
		return map[string]any{
			"type":        "object",
			"description": f.ValueDesc,
			"properties": map[string]any{
				"per_sample": map[string]any{"type": "number", "description": "Rate for the billing unit per sample"},
				"per_item":   map[string]any{"type": "number", "description": "Rate for the billing unit per item"},
			},
			"required":             []string{"per_sample", "per_item"},
			"additionalProperties": false,
		}
	default:
		return map[string]any{"type": "string", "description": f.ValueDesc}
	}
}

func insuranceValueSchema() map[string]any {
	yesNo := []string{"YES", "NO"}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"insurance_required": map[string]any{
				"type":        "string",
				"enum":        yesNo,
				"description": "Yes if any type of insurance or insurance clause mentioned. No if it does not exist",
			},
			"type_of_insurance_required": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"is_cyber_insurance_required":    map[string]any{"type": "string", "enum": yesNo},
			"cyber_insurance_amount":         map[string]any{"type": "number"},
			"is_workman_compensation_insurance_required": map[string]any{"type": "string", "enum": yesNo},
			"workman_compensation_insurance_amount":      map[string]any{"type": "number"},
			"other_insurance_required": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"other_insurance_amount": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"insurance_details": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"insurance_type": map[string]any{"type": "string", "description": "Name of the insurance type"},
								"amount":         map[string]any{"type": "number", "description": "Monetary amount associated with insurance type"},
							},
							"required":             []string{"insurance_type", "amount"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []string{"insurance_details"},
				"additionalProperties": false,
			},
		},
		"required": []string{
			"insurance_required", "type_of_insurance_required",
			"is_cyber_insurance_required", "cyber_insurance_amount",
			"is_workman_compensation_insurance_required", "workman_compensation_insurance_amount",
			"other_insurance_required", "other_insurance_amount",
		},
		"additionalProperties": false,
	}
}
