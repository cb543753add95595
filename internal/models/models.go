package models

import "encoding/json"

// DocType selects the field catalog used for extraction.
type DocType string

const (
	DocTypeSOW DocType = "SOW"
	DocTypeMSA DocType = "MSA"
)

// Confidence10 is the 1-10 integer confidence scale used by field
// extraction. Confidence1 is the 0-1 float scale used by the chat
// pipeline. Both scales are part of their respective response contracts
// and are never converted into one another.
type Confidence10 int

type Confidence1 float64

// Page is one page of extracted contract text, cleaned upstream.
type Page struct {
	PageNumber int
	Text       string
}

// Chunk is a page's text augmented with word overlap borrowed from the
// adjacent pages. It is the retrieval unit.
type Chunk struct {
	PageNumber int
	Text       string
}

// EmbeddedChunk pairs a chunk with its embedding vector.
type EmbeddedChunk struct {
	Chunk
	Embedding []float32
}

// RetrievedChunk is a stored chunk projected with its cosine similarity
// against a query vector. Produced per query, never persisted.
type RetrievedChunk struct {
	Chunk
	Score float32
}

// FieldExtractionResult is the schema-constrained answer for one field.
// FieldValue is polymorphic (string, number, list or object depending on
// the field schema), so it is kept as raw JSON and rendered by consumers.
type FieldExtractionResult struct {
	FieldValue json.RawMessage `json:"field_value"`
	PageNumber string          `json:"page_number"`
	Confidence Confidence10    `json:"confidence"`
	Reasoning  string          `json:"reasoning"`
	Proof      json.RawMessage `json:"proof"`
}

// FieldOutcome is one entry of an extraction run. Degraded marks results
// substituted after a retrieval or model failure; the placeholder values
// inside Result are still populated for downstream consumers that key off
// confidence.
type FieldOutcome struct {
	Field    string
	Result   FieldExtractionResult
	Degraded bool
	Reason   string
}

// Sender of a conversation turn.
const (
	SentByUser = "user"
	SentByBot  = "bot"
)
