package extractor_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"

	"contract-rag/internal/extractor"
	"contract-rag/internal/fields"
	"contract-rag/internal/llm"
	"contract-rag/internal/models"
)

// fakeRetriever serves canned chunks keyed by query vector length, which
// the fakeEmbedder sets to the variant's position in the query list.
type fakeRetriever struct {
	mu      sync.Mutex
	byID    map[int][]models.RetrievedChunk
	queries int
	ks      []int
	err     error
}

func (f *fakeRetriever) TopK(_ context.Context, query []float32, k int) ([]models.RetrievedChunk, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	f.ks = append(f.ks, k)
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[len(query)], nil
}

// fakeEmbedder encodes the variant's index as the vector length so the
// retriever can tell query variants apart.
type fakeEmbedder struct {
	variants []string
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, query string) ([]float32, error) {
	for i, v := range f.variants {
		if v == query {
			return make([]float32, i+1), nil
		}
	}
	return []float32{0}, nil
}

type fakeClient struct {
	mu       sync.Mutex
	calls    int
	prompts  []string
	response json.RawMessage
	err      error
	failOn   string
}

func (f *fakeClient) Complete(_ context.Context, _ string, prompt string, _ llm.ResponseSchema) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return nil, f.err
	}
	if f.failOn != "" && strings.Contains(prompt, f.failOn) {
		return nil, errors.New("model overloaded")
	}
	if f.response != nil {
		return f.response, nil
	}
	return json.RawMessage(`{"field_value":"ACME Corp","page_number":"2","confidence":8,"reasoning":"found in preamble","proof":"between ACME Corp and"}`), nil
}

func chunk(text string, page int, score float32) models.RetrievedChunk {
	return models.RetrievedChunk{
		Chunk: models.Chunk{PageNumber: page, Text: text},
		Score: score,
	}
}

func testField(queries ...string) fields.Field {
	return fields.Field{
		Name:       "client_company_name",
		Queries:    queries,
		SchemaName: "client_company_name_schema",
		Kind:       fields.ValueString,
	}
}

func TestExtractField(t *testing.T) {
	ctx := context.Background()

	t.Run("zero retrieved chunks short-circuits without a model call", func(t *testing.T) {
		client := &fakeClient{}
		e := extractor.New(
			&fakeRetriever{byID: map[int][]models.RetrievedChunk{}},
			&fakeEmbedder{variants: []string{"q1"}},
			client,
			3,
		)

		outcome := e.ExtractField(ctx, testField("q1"))
		gt.Number(t, client.calls).Equal(0)
		gt.Bool(t, outcome.Degraded).False()
		gt.String(t, string(outcome.Result.FieldValue)).Equal(`""`)
		gt.Value(t, outcome.Result.Confidence).Equal(models.Confidence10(0))
		gt.String(t, outcome.Result.Reasoning).Equal("No relevant chunks found")
	})

	t.Run("successful extraction parses the model response", func(t *testing.T) {
		retriever := &fakeRetriever{byID: map[int][]models.RetrievedChunk{
			1: {chunk("this agreement is between ACME Corp and", 2, 0.9)},
		}}
		client := &fakeClient{}
		e := extractor.New(retriever, &fakeEmbedder{variants: []string{"q1"}}, client, 3)

		outcome := e.ExtractField(ctx, testField("q1"))
		gt.Bool(t, outcome.Degraded).False()
		gt.String(t, string(outcome.Result.FieldValue)).Equal(`"ACME Corp"`)
		gt.String(t, outcome.Result.PageNumber).Equal("2")
		gt.Value(t, outcome.Result.Confidence).Equal(models.Confidence10(8))
	})

	t.Run("variant fan-out dedupes by chunk text, first occurrence wins", func(t *testing.T) {
		shared := chunk("shared clause", 1, 0.8)
		retriever := &fakeRetriever{byID: map[int][]models.RetrievedChunk{
			1: {chunk("variant one hit", 3, 0.9), shared},
			2: {shared, chunk("variant two hit", 5, 0.7)},
		}}
		client := &fakeClient{}
		e := extractor.New(retriever, &fakeEmbedder{variants: []string{"q1", "q2"}}, client, 3)

		e.ExtractField(ctx, testField("q1", "q2"))
		gt.Number(t, retriever.queries).Equal(2)
		gt.Number(t, client.calls).Equal(1)

		prompt := client.prompts[0]
		gt.Number(t, strings.Count(prompt, "shared clause")).Equal(1)

		// variant order then rank: q1's chunks before q2's remainder
		gt.Bool(t, strings.Index(prompt, "variant one hit") < strings.Index(prompt, "shared clause")).True()
		gt.Bool(t, strings.Index(prompt, "shared clause") < strings.Index(prompt, "variant two hit")).True()
	})

	t.Run("prompt carries page-tagged chunks and field notes", func(t *testing.T) {
		retriever := &fakeRetriever{byID: map[int][]models.RetrievedChunk{
			1: {chunk("net 45 payment terms", 7, 0.9)},
		}}
		client := &fakeClient{}
		e := extractor.New(retriever, &fakeEmbedder{variants: []string{"q1"}}, client, 3)

		field := testField("q1")
		field.Notes = "Look near the payment section."
		e.ExtractField(ctx, field)

		prompt := client.prompts[0]
		gt.Bool(t, strings.Contains(prompt, "<CONTENT>")).True()
		gt.Bool(t, strings.Contains(prompt, "<PAGE_NUMBER>\n7\n</PAGE_NUMBER>")).True()
		gt.Bool(t, strings.Contains(prompt, "net 45 payment terms")).True()
		gt.Bool(t, strings.Contains(prompt, "Look near the payment section.")).True()
	})

	t.Run("configured top-k reaches the retriever", func(t *testing.T) {
		retriever := &fakeRetriever{byID: map[int][]models.RetrievedChunk{
			1: {chunk("some clause", 1, 0.5)},
		}}
		e := extractor.New(retriever, &fakeEmbedder{variants: []string{"q1"}}, &fakeClient{}, 7)

		e.ExtractField(ctx, testField("q1"))
		gt.Array(t, retriever.ks).Length(1)
		gt.Number(t, retriever.ks[0]).Equal(7)
	})

	t.Run("non-positive top-k falls back to the default", func(t *testing.T) {
		retriever := &fakeRetriever{byID: map[int][]models.RetrievedChunk{
			1: {chunk("some clause", 1, 0.5)},
		}}
		e := extractor.New(retriever, &fakeEmbedder{variants: []string{"q1"}}, &fakeClient{}, 0)

		e.ExtractField(ctx, testField("q1"))
		gt.Array(t, retriever.ks).Length(1)
		gt.Number(t, retriever.ks[0]).Equal(3)
	})

	t.Run("retrieval failure degrades the outcome", func(t *testing.T) {
		client := &fakeClient{}
		e := extractor.New(
			&fakeRetriever{err: errors.New("store offline")},
			&fakeEmbedder{variants: []string{"q1"}},
			client,
			3,
		)

		outcome := e.ExtractField(ctx, testField("q1"))
		gt.Bool(t, outcome.Degraded).True()
		gt.Number(t, client.calls).Equal(0)
		gt.Value(t, outcome.Result.Confidence).Equal(models.Confidence10(1))
	})

	t.Run("model failure degrades the outcome", func(t *testing.T) {
		retriever := &fakeRetriever{byID: map[int][]models.RetrievedChunk{
			1: {chunk("some clause", 1, 0.5)},
		}}
		client := &fakeClient{err: errors.New("rate limited")}
		e := extractor.New(retriever, &fakeEmbedder{variants: []string{"q1"}}, client, 3)

		outcome := e.ExtractField(ctx, testField("q1"))
		gt.Bool(t, outcome.Degraded).True()
		gt.String(t, string(outcome.Result.FieldValue)).Equal(`""`)
	})

	t.Run("unparseable model response degrades the outcome", func(t *testing.T) {
		retriever := &fakeRetriever{byID: map[int][]models.RetrievedChunk{
			1: {chunk("some clause", 1, 0.5)},
		}}
		client := &fakeClient{response: json.RawMessage(`["not","an","object"]`)}
		e := extractor.New(retriever, &fakeEmbedder{variants: []string{"q1"}}, client, 3)

		outcome := e.ExtractField(ctx, testField("q1"))
		gt.Bool(t, outcome.Degraded).True()
	})

	t.Run("missing response keys are backfilled with defaults", func(t *testing.T) {
		retriever := &fakeRetriever{byID: map[int][]models.RetrievedChunk{
			1: {chunk("some clause", 1, 0.5)},
		}}
		client := &fakeClient{response: json.RawMessage(`{"field_value":"USD"}`)}
		e := extractor.New(retriever, &fakeEmbedder{variants: []string{"q1"}}, client, 3)

		outcome := e.ExtractField(ctx, testField("q1"))
		gt.Bool(t, outcome.Degraded).False()
		gt.String(t, string(outcome.Result.FieldValue)).Equal(`"USD"`)
		gt.Value(t, outcome.Result.Confidence).Equal(models.Confidence10(1))
		gt.String(t, outcome.Result.Reasoning).Equal("No reasoning provided")
		gt.String(t, string(outcome.Result.Proof)).Equal(`""`)
	})

	t.Run("legacy confidence labels map to the numeric scale", func(t *testing.T) {
		retriever := &fakeRetriever{byID: map[int][]models.RetrievedChunk{
			1: {chunk("some clause", 1, 0.5)},
		}}
		client := &fakeClient{response: json.RawMessage(`{"field_value":"x","confidence":"High"}`)}
		e := extractor.New(retriever, &fakeEmbedder{variants: []string{"q1"}}, client, 3)

		outcome := e.ExtractField(ctx, testField("q1"))
		gt.Value(t, outcome.Result.Confidence).Equal(models.Confidence10(9))
	})
}

func TestMapLegacyConfidence(t *testing.T) {
	cases := []struct {
		label string
		want  models.Confidence10
	}{
		{"high", 9},
		{"High", 9},
		{"MEDIUM", 6},
		{"medium", 6},
		{"low", 3},
		{"unknown", 1},
		{"", 1},
	}
	for _, tc := range cases {
		gt.Value(t, extractor.MapLegacyConfidence(tc.label)).Equal(tc.want)
	}
}

func TestExtractAll(t *testing.T) {
	ctx := context.Background()

	t.Run("one outcome per configured field in catalog order", func(t *testing.T) {
		catalog := fields.For(models.DocTypeMSA)
		retriever := &staticRetriever{chunks: []models.RetrievedChunk{
			chunk("governing clause text", 1, 0.9),
		}}
		client := &fakeClient{}
		e := extractor.New(retriever, &staticEmbedder{}, client, 3)

		outcomes := e.ExtractAll(ctx, models.DocTypeMSA)
		gt.Array(t, outcomes).Length(len(catalog))
		for i, outcome := range outcomes {
			gt.String(t, outcome.Field).Equal(catalog[i].Name)
		}
	})

	t.Run("one failed field never aborts the others", func(t *testing.T) {
		catalog := fields.For(models.DocTypeMSA)
		retriever := &staticRetriever{chunks: []models.RetrievedChunk{
			chunk("clause text", 1, 0.9),
		}}
		client := &fakeClient{failOn: "Extract the limitation_of_liability"}
		e := extractor.New(retriever, &staticEmbedder{}, client, 3)

		outcomes := e.ExtractAll(ctx, models.DocTypeMSA)
		gt.Array(t, outcomes).Length(len(catalog))

		degraded := 0
		for _, outcome := range outcomes {
			if outcome.Degraded {
				degraded++
				gt.String(t, outcome.Field).Equal("limitation_of_liability")
				gt.Value(t, outcome.Result.Confidence).Equal(models.Confidence10(1))
			}
		}
		gt.Number(t, degraded).Equal(1)
	})
}

// staticRetriever returns the same chunks for every query.
type staticRetriever struct {
	mu     sync.Mutex
	chunks []models.RetrievedChunk
}

func (f *staticRetriever) TopK(_ context.Context, _ []float32, _ int) ([]models.RetrievedChunk, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chunks, nil
}

type staticEmbedder struct{}

func (staticEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	return []float32{1}, nil
}
