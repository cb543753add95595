package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"contract-rag/internal/llm"
	"contract-rag/internal/models"
)

// ResetSessionID is the sentinel session id that starts a conversation
// fresh: a turn arriving with it purges any prior turns stored under this
// exact id before proceeding, keeping the same id.
const ResetSessionID = "new"

const defaultTopK = 3

// Retriever is the read side of the embedding store.
type Retriever interface {
	TopK(ctx context.Context, query []float32, k int) ([]models.RetrievedChunk, error)
}

// QueryEmbedder embeds retrieval queries with the corpus model.
type QueryEmbedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}

// Reply is the outcome of one conversation turn. Confidence uses the 0-1
// scale of the chat response contract, distinct from extraction's 1-10.
type Reply struct {
	SessionID      string
	Answer         string
	Confidence     models.Confidence1
	Reasoning      string
	ContextSummary string
	KeyPoints      []string
}

// Session drives the conversational retrieval loop. Each turn runs
// strictly sequentially: every step consumes the previous step's output.
type Session struct {
	turns     *TurnStore
	embedder  QueryEmbedder
	retriever Retriever
	client    llm.Client
	topK      int
}

func NewSession(turns *TurnStore, embedder QueryEmbedder, retriever Retriever, client llm.Client, topK int) *Session {
	if topK <= 0 {
		topK = defaultTopK
	}
	return &Session{turns: turns, embedder: embedder, retriever: retriever, client: client, topK: topK}
}

// Chat processes one user query: load the running summary, rewrite the
// query into a search-optimized and an answer-optimized form, retrieve,
// generate an answer grounded only in the retrieved chunks, refresh the
// summary, and persist both turn rows.
func (s *Session) Chat(ctx context.Context, query, sessionID string) (*Reply, error) {
	switch sessionID {
	case "":
		sessionID = uuid.NewString()
		log.Info().Str("session_id", sessionID).Msg("New session started")
	case ResetSessionID:
		if err := s.turns.Purge(ctx, sessionID); err != nil {
			return nil, err
		}
		log.Info().Str("session_id", sessionID).Msg("Session reset")
	}

	summary, err := s.turns.LatestSummary(ctx, sessionID)
	if err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to load summary")
		summary = ""
	}

	searchQuery, llmQuery, err := s.rewriteQuery(ctx, query, summary)
	if err != nil {
		return nil, fmt.Errorf("rewrite query: %w", err)
	}

	chunks := s.retrieveChunks(ctx, searchQuery)

	answer, err := s.generate(ctx, llmQuery, chunks, summary)
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	updatedSummary, keyPoints := s.updateSummary(ctx, query, answer.Answer, summary)

	if err := s.turns.Append(ctx, sessionID, query, answer.Answer, updatedSummary); err != nil {
		return nil, err
	}

	return &Reply{
		SessionID:      sessionID,
		Answer:         answer.Answer,
		Confidence:     answer.Confidence,
		Reasoning:      answer.Reasoning,
		ContextSummary: updatedSummary,
		KeyPoints:      keyPoints,
	}, nil
}

// History exposes the session's stored turns.
func (s *Session) History(ctx context.Context, sessionID string) ([]TurnRecord, error) {
	return s.turns.History(ctx, sessionID)
}

// rewriteQuery asks the model for two derived queries: one optimized for
// similarity search with pronouns and references resolved from the
// conversation context, and one optimized for answer generation.
func (s *Session) rewriteQuery(ctx context.Context, query, summary string) (string, string, error) {
	prompt := fmt.Sprintf(`Given the user query and conversation context, rewrite it into two optimized queries:
1. A query sentence for similarity search to find relevant document chunks, capturing the context.
2. A query for the LLM to generate a response based on retrieved chunks

User Query: %s
Previous Context: %s

Return the rewritten queries in the specified JSON format.`, query, summary)

	raw, err := s.client.Complete(ctx,
		"You are a query optimization expert. Rewrite queries to improve search and response quality.",
		prompt, queryRewriteSchema)
	if err != nil {
		return "", "", err
	}

	var rewritten struct {
		RAGSearchQuery string `json:"rag_search_query"`
		LLMQuery       string `json:"llm_query"`
	}
	if err := json.Unmarshal(raw, &rewritten); err != nil {
		return "", "", &models.FormatError{Op: "query_schema", Detail: err.Error()}
	}
	if rewritten.RAGSearchQuery == "" {
		rewritten.RAGSearchQuery = query
	}
	if rewritten.LLMQuery == "" {
		rewritten.LLMQuery = query
	}
	return rewritten.RAGSearchQuery, rewritten.LLMQuery, nil
}

// retrieveChunks is a single top-k query, not fanned out. Read-path
// failures degrade to an empty candidate set.
func (s *Session) retrieveChunks(ctx context.Context, searchQuery string) []models.RetrievedChunk {
	vec, err := s.embedder.EmbedQuery(ctx, searchQuery)
	if err != nil {
		log.Error().Err(err).Msg("Error embedding search query")
		return nil
	}
	chunks, err := s.retriever.TopK(ctx, vec, s.topK)
	if err != nil {
		log.Error().Err(err).Msg("Error getting top k chunks")
		return nil
	}
	return chunks
}

type generated struct {
	Answer     string             `json:"answer"`
	Confidence models.Confidence1 `json:"confidence"`
	Reasoning  string             `json:"reasoning"`
}

func (s *Session) generate(ctx context.Context, llmQuery string, chunks []models.RetrievedChunk, summary string) (*generated, error) {
	prompt := fmt.Sprintf(`Answer the user's query based ONLY on the provided context chunks.
Do not use any external knowledge.

User Query: %s
Previous Context: %s

Reference Chunks:
%s

Provide a detailed answer with confidence score and reasoning.`, llmQuery, summary, formatChunksXML(chunks))

	raw, err := s.client.Complete(ctx,
		"You are a contract analysis expert. Answer questions accurately based only on provided context.",
		prompt, responseSchema)
	if err != nil {
		return nil, err
	}

	var answer generated
	if err := json.Unmarshal(raw, &answer); err != nil {
		return nil, &models.FormatError{Op: "response_schema", Detail: err.Error()}
	}
	return &answer, nil
}

// updateSummary replaces the running summary wholesale; it is never
// appended to. A failed summary call keeps the previous summary so the
// turn still persists.
func (s *Session) updateSummary(ctx context.Context, query, answer, previous string) (string, []string) {
	prompt := fmt.Sprintf(`Update the context summary based on the user query and response.

User Query: %s
Response: %s
Previous Summary: %s

Update the summary to include new information and remove redundant or irrelevant details.
Provide a concise and accurate summary. Make it kind of reported speech.
Conversationally, make it sound like a reported speech but very concise.
Keeping track of the conversation. Concentrate on very high level of conversation summary.`, query, answer, previous)

	raw, err := s.client.Complete(ctx,
		"You are a conversation summarizer. Create concise and informative summaries.",
		prompt, summarySchema)
	if err != nil {
		log.Warn().Err(err).Msg("Summary update failed, keeping previous summary")
		return previous, nil
	}

	var updated struct {
		Summary   string   `json:"summary"`
		KeyPoints []string `json:"key_points"`
	}
	if err := json.Unmarshal(raw, &updated); err != nil {
		log.Warn().Err(err).Msg("Summary response malformed, keeping previous summary")
		return previous, nil
	}
	return updated.Summary, updated.KeyPoints
}

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
