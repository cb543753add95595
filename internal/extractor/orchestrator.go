package extractor

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"contract-rag/internal/fields"
	"contract-rag/internal/models"
)

// ExtractAll runs every field configured for the document type
// concurrently and returns one outcome per field, in catalog order. A
// failed field carries its placeholder outcome forward; nothing is
// retried here, and a single failure never aborts the other fields.
func (e *Extractor) ExtractAll(ctx context.Context, docType models.DocType) []models.FieldOutcome {
	catalog := fields.For(docType)
	outcomes := make([]models.FieldOutcome, len(catalog))

	var wg sync.WaitGroup
	for i, field := range catalog {
		i, field := i, field
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = e.ExtractField(ctx, field)
		}()
	}
	wg.Wait()

	degraded := 0
	for _, outcome := range outcomes {
		if outcome.Degraded {
			degraded++
		}
	}
	log.Info().Str("doc_type", string(docType)).Int("fields", len(outcomes)).
		Int("degraded", degraded).Msg("Extraction run complete")

	return outcomes
}
