package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"contract-rag/internal/fields"
	"contract-rag/internal/llm"
	"contract-rag/internal/models"
)

// Retriever is the read side of the embedding store.
type Retriever interface {
	TopK(ctx context.Context, query []float32, k int) ([]models.RetrievedChunk, error)
}

// QueryEmbedder embeds retrieval queries with the corpus model.
type QueryEmbedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}

const defaultTopK = 3

const systemPrompt = `You are a contract analysis expert. Extract information accurately and provide confidence levels and reasoning.
Always return your response in the exact JSON format specified, with all required fields.`

// Extractor pulls structured field values out of the stored corpus.
type Extractor struct {
	retriever Retriever
	embedder  QueryEmbedder
	client    llm.Client
	topK      int
}

func New(retriever Retriever, embedder QueryEmbedder, client llm.Client, topK int) *Extractor {
	if topK <= 0 {
		topK = defaultTopK
	}
	return &Extractor{retriever: retriever, embedder: embedder, client: client, topK: topK}
}

// ExtractField runs the retrieval fan-out and one schema-constrained
// model call for a single field. Every failure mode degrades to a
// placeholder outcome; the error itself never escapes.
func (e *Extractor) ExtractField(ctx context.Context, field fields.Field) models.FieldOutcome {
	chunks, err := e.retrieve(ctx, field)
	if err != nil {
		log.Error().Err(err).Str("field", field.Name).Msg("Error retrieving chunks")
		return degradedOutcome(field.Name, fmt.Sprintf("Error: %v", err))
	}

	if len(chunks) == 0 {
		return models.FieldOutcome{
			Field: field.Name,
			Result: models.FieldExtractionResult{
				FieldValue: emptyString,
				Confidence: 0,
				Reasoning:  "No relevant chunks found",
				Proof:      emptyString,
			},
		}
	}

	raw, err := e.client.Complete(ctx, systemPrompt, buildPrompt(field, chunks), field.OutputSchema())
	if err != nil {
		log.Error().Err(err).Str("field", field.Name).Msg("Error during extraction")
		return degradedOutcome(field.Name, fmt.Sprintf("Error during extraction: %v", err))
	}

	result, err := parseResult(raw)
	if err != nil {
		log.Error().Err(err).Str("field", field.Name).Msg("Error parsing model response")
		return degradedOutcome(field.Name, fmt.Sprintf("Error: Failed to parse model response - %v", err))
	}

	return models.FieldOutcome{Field: field.Name, Result: result}
}

// retrieve fans out one topK query per configured variant concurrently
// and merges the results into a deduplicated candidate set: first
// occurrence of a chunk text wins, ordered by variant order then rank.
func (e *Extractor) retrieve(ctx context.Context, field fields.Field) ([]models.RetrievedChunk, error) {
	perVariant := make([][]models.RetrievedChunk, len(field.Queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, query := range field.Queries {
		i, query := i, query
		g.Go(func() error {
			vec, err := e.embedder.EmbedQuery(gctx, query)
			if err != nil {
				return err
			}
			chunks, err := e.retriever.TopK(gctx, vec, e.topK)
			if err != nil {
				return err
			}
			perVariant[i] = chunks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var merged []models.RetrievedChunk
	for _, chunks := range perVariant {
		for _, chunk := range chunks {
			if _, ok := seen[chunk.Text]; ok {
				continue
			}
			seen[chunk.Text] = struct{}{}
			merged = append(merged, chunk)
		}
	}
	return merged, nil
}

func buildPrompt(field fields.Field, chunks []models.RetrievedChunk) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extract the %s from the following contract text.\n\n", field.Name)
	b.WriteString("The response must include:\n")
	b.WriteString("1. field_value: The extracted value\n")
	b.WriteString("2. page_number: The page where the information was found\n")
	b.WriteString("3. confidence: A number between 1-10 indicating confidence level\n")
	b.WriteString("4. reasoning: Clear explanation of why this value was extracted\n")
	b.WriteString("5. proof: The exact text from the contract supporting this extraction\n\n")
	if field.Notes != "" {
		fmt.Fprintf(&b, "Points to remember:\n%s\n\n", field.Notes)
	}
	fmt.Fprintf(&b, "Contract Text:\n%s\n", formatChunksXML(chunks))
	return b.String()
}

// formatChunksXML tags each candidate chunk with its page number so the
// model can cite provenance.
func formatChunksXML(chunks []models.RetrievedChunk) string {
	var b strings.Builder
	b.WriteString("<CONTENT>\n")
	for i, chunk := range chunks {
		fmt.Fprintf(&b, "<CHUNK_%d>\n", i+1)
		fmt.Fprintf(&b, "<PAGE_NUMBER>\n%d\n</PAGE_NUMBER>\n", chunk.PageNumber)
		fmt.Fprintf(&b, "<CHUNK_CONTENT>\n%s\n</CHUNK_CONTENT>\n", strings.TrimSpace(chunk.Text))
		fmt.Fprintf(&b, "</CHUNK_%d>\n", i+1)
	}
	b.WriteString("</CONTENT>")
	return b.String()
}
