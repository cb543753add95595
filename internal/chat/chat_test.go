package chat_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"contract-rag/internal/chat"
	"contract-rag/internal/llm"
	"contract-rag/internal/models"
	"contract-rag/internal/store"
)

func newTurnStore(t *testing.T) *chat.TurnStore {
	t.Helper()

	db, err := store.Connect(filepath.Join(t.TempDir(), "conversation.db"), false)
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, db.Close())
	})

	turns, err := chat.NewTurnStore(context.Background(), db)
	gt.NoError(t, err).Required()
	return turns
}

func TestTurnStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty session has no summary", func(t *testing.T) {
		turns := newTurnStore(t)

		summary, err := turns.LatestSummary(ctx, "s1")
		gt.NoError(t, err).Required()
		gt.String(t, summary).Equal("")
	})

	t.Run("latest summary wins", func(t *testing.T) {
		turns := newTurnStore(t)

		gt.NoError(t, turns.Append(ctx, "s1", "what is the term?", "two years", "asked about term")).Required()
		gt.NoError(t, turns.Append(ctx, "s1", "and renewal?", "auto-renews", "asked about term and renewal")).Required()

		summary, err := turns.LatestSummary(ctx, "s1")
		gt.NoError(t, err).Required()
		gt.String(t, summary).Equal("asked about term and renewal")
	})

	t.Run("history keeps insertion order with alternating senders", func(t *testing.T) {
		turns := newTurnStore(t)

		gt.NoError(t, turns.Append(ctx, "s1", "q1", "a1", "sum1")).Required()
		gt.NoError(t, turns.Append(ctx, "s1", "q2", "a2", "sum2")).Required()

		history, err := turns.History(ctx, "s1")
		gt.NoError(t, err).Required()
		gt.Array(t, history).Length(4)
		gt.String(t, history[0].Message).Equal("q1")
		gt.String(t, history[0].SentBy).Equal(models.SentByUser)
		gt.String(t, history[1].Message).Equal("a1")
		gt.String(t, history[1].SentBy).Equal(models.SentByBot)
		gt.String(t, history[2].Message).Equal("q2")
		gt.String(t, history[3].Message).Equal("a2")
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		turns := newTurnStore(t)

		gt.NoError(t, turns.Append(ctx, "s1", "q1", "a1", "sum-s1")).Required()
		gt.NoError(t, turns.Append(ctx, "s2", "q2", "a2", "sum-s2")).Required()

		summary, err := turns.LatestSummary(ctx, "s1")
		gt.NoError(t, err).Required()
		gt.String(t, summary).Equal("sum-s1")

		history, err := turns.History(ctx, "s2")
		gt.NoError(t, err).Required()
		gt.Array(t, history).Length(2)
	})

	t.Run("purge removes only the named session", func(t *testing.T) {
		turns := newTurnStore(t)

		gt.NoError(t, turns.Append(ctx, "s1", "q1", "a1", "sum1")).Required()
		gt.NoError(t, turns.Append(ctx, "s2", "q2", "a2", "sum2")).Required()

		gt.NoError(t, turns.Purge(ctx, "s1")).Required()

		history, err := turns.History(ctx, "s1")
		gt.NoError(t, err).Required()
		gt.Array(t, history).Length(0)

		history, err = turns.History(ctx, "s2")
		gt.NoError(t, err).Required()
		gt.Array(t, history).Length(2)
	})
}

// fakeClient serves a canned response per schema name, so one fake covers
// the rewrite, generate and summarize calls of a turn.
type fakeClient struct {
	responses map[string]json.RawMessage
	errOn     map[string]error
	schemas   []string
}

func (f *fakeClient) Complete(_ context.Context, _, _ string, schema llm.ResponseSchema) (json.RawMessage, error) {
	f.schemas = append(f.schemas, schema.Name)
	if err := f.errOn[schema.Name]; err != nil {
		return nil, err
	}
	rsp, ok := f.responses[schema.Name]
	if !ok {
		return nil, errors.New("unexpected schema " + schema.Name)
	}
	return rsp, nil
}

func happyClient() *fakeClient {
	return &fakeClient{responses: map[string]json.RawMessage{
		"query_schema":         json.RawMessage(`{"rag_search_query":"contract termination clause","llm_query":"What does the contract say about termination?"}`),
		"response_schema":      json.RawMessage(`{"answer":"Either party may terminate with 30 days notice.","confidence":0.85,"reasoning":"Stated in the termination clause."}`),
		"conversation_summary": json.RawMessage(`{"summary":"User asked about termination.","key_points":["30 days notice"]}`),
	}}
}

type fakeEmbedder struct {
	err     error
	queries []string
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, query string) ([]float32, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return []float32{1, 0}, nil
}

type fakeRetriever struct {
	chunks []models.RetrievedChunk
	ks     []int
	err    error
}

func (f *fakeRetriever) TopK(_ context.Context, _ []float32, k int) ([]models.RetrievedChunk, error) {
	f.ks = append(f.ks, k)
	return f.chunks, f.err
}

func testChunks() []models.RetrievedChunk {
	return []models.RetrievedChunk{
		{Chunk: models.Chunk{PageNumber: 4, Text: "termination with 30 days notice"}, Score: 0.9},
	}
}

func TestSessionChat(t *testing.T) {
	ctx := context.Background()

	t.Run("full turn persists both rows with updated summary", func(t *testing.T) {
		turns := newTurnStore(t)
		client := happyClient()
		session := chat.NewSession(turns, &fakeEmbedder{}, &fakeRetriever{chunks: testChunks()}, client, 3)

		reply, err := session.Chat(ctx, "can we terminate early?", "s1")
		gt.NoError(t, err).Required()

		gt.String(t, reply.SessionID).Equal("s1")
		gt.String(t, reply.Answer).Equal("Either party may terminate with 30 days notice.")
		gt.Value(t, reply.Confidence).Equal(models.Confidence1(0.85))
		gt.String(t, reply.ContextSummary).Equal("User asked about termination.")
		gt.Array(t, reply.KeyPoints).Length(1)

		gt.Value(t, client.schemas).Equal([]string{"query_schema", "response_schema", "conversation_summary"})

		history, err := session.History(ctx, "s1")
		gt.NoError(t, err).Required()
		gt.Array(t, history).Length(2)
		gt.String(t, history[0].Message).Equal("can we terminate early?")
		gt.String(t, history[0].SentBy).Equal(models.SentByUser)
		gt.String(t, history[0].ContextSummary).Equal("User asked about termination.")
		gt.String(t, history[1].SentBy).Equal(models.SentByBot)
	})

	t.Run("empty session id starts a fresh session", func(t *testing.T) {
		turns := newTurnStore(t)
		session := chat.NewSession(turns, &fakeEmbedder{}, &fakeRetriever{chunks: testChunks()}, happyClient(), 3)

		reply, err := session.Chat(ctx, "query", "")
		gt.NoError(t, err).Required()
		gt.String(t, reply.SessionID).NotEqual("")
		gt.String(t, reply.SessionID).NotEqual(chat.ResetSessionID)

		history, err := session.History(ctx, reply.SessionID)
		gt.NoError(t, err).Required()
		gt.Array(t, history).Length(2)
	})

	t.Run("reset sentinel purges prior turns under that id", func(t *testing.T) {
		turns := newTurnStore(t)
		session := chat.NewSession(turns, &fakeEmbedder{}, &fakeRetriever{chunks: testChunks()}, happyClient(), 3)

		_, err := session.Chat(ctx, "first question", chat.ResetSessionID)
		gt.NoError(t, err).Required()
		_, err = session.Chat(ctx, "second question", chat.ResetSessionID)
		gt.NoError(t, err).Required()

		history, err := session.History(ctx, chat.ResetSessionID)
		gt.NoError(t, err).Required()
		gt.Array(t, history).Length(2)
		gt.String(t, history[0].Message).Equal("second question")
	})

	t.Run("search query comes from the rewrite", func(t *testing.T) {
		turns := newTurnStore(t)
		embedder := &fakeEmbedder{}
		session := chat.NewSession(turns, embedder, &fakeRetriever{chunks: testChunks()}, happyClient(), 3)

		_, err := session.Chat(ctx, "can we terminate early?", "s1")
		gt.NoError(t, err).Required()
		gt.Array(t, embedder.queries).Length(1)
		gt.String(t, embedder.queries[0]).Equal("contract termination clause")
	})

	t.Run("configured top-k reaches the retriever", func(t *testing.T) {
		turns := newTurnStore(t)
		retriever := &fakeRetriever{chunks: testChunks()}
		session := chat.NewSession(turns, &fakeEmbedder{}, retriever, happyClient(), 5)

		_, err := session.Chat(ctx, "query", "s1")
		gt.NoError(t, err).Required()
		gt.Array(t, retriever.ks).Length(1)
		gt.Number(t, retriever.ks[0]).Equal(5)
	})

	t.Run("empty rewritten queries fall back to the raw query", func(t *testing.T) {
		turns := newTurnStore(t)
		client := happyClient()
		client.responses["query_schema"] = json.RawMessage(`{"rag_search_query":"","llm_query":""}`)
		embedder := &fakeEmbedder{}
		session := chat.NewSession(turns, embedder, &fakeRetriever{chunks: testChunks()}, client, 3)

		_, err := session.Chat(ctx, "raw question", "s1")
		gt.NoError(t, err).Required()
		gt.String(t, embedder.queries[0]).Equal("raw question")
	})

	t.Run("retrieval failure degrades to an empty candidate set", func(t *testing.T) {
		turns := newTurnStore(t)
		session := chat.NewSession(turns, &fakeEmbedder{}, &fakeRetriever{err: errors.New("store offline")}, happyClient(), 3)

		reply, err := session.Chat(ctx, "query", "s1")
		gt.NoError(t, err).Required()
		gt.String(t, reply.Answer).Equal("Either party may terminate with 30 days notice.")
	})

	t.Run("rewrite failure aborts the turn before anything persists", func(t *testing.T) {
		turns := newTurnStore(t)
		client := happyClient()
		client.errOn = map[string]error{"query_schema": errors.New("model offline")}
		session := chat.NewSession(turns, &fakeEmbedder{}, &fakeRetriever{chunks: testChunks()}, client, 3)

		_, err := session.Chat(ctx, "query", "s1")
		gt.Error(t, err)

		history, herr := session.History(ctx, "s1")
		gt.NoError(t, herr).Required()
		gt.Array(t, history).Length(0)
	})

	t.Run("summary failure keeps the previous summary and the turn persists", func(t *testing.T) {
		turns := newTurnStore(t)
		first := happyClient()
		session := chat.NewSession(turns, &fakeEmbedder{}, &fakeRetriever{chunks: testChunks()}, first, 3)

		_, err := session.Chat(ctx, "first question", "s1")
		gt.NoError(t, err).Required()

		second := happyClient()
		second.errOn = map[string]error{"conversation_summary": errors.New("model offline")}
		session = chat.NewSession(turns, &fakeEmbedder{}, &fakeRetriever{chunks: testChunks()}, second, 3)

		reply, err := session.Chat(ctx, "second question", "s1")
		gt.NoError(t, err).Required()
		gt.String(t, reply.ContextSummary).Equal("User asked about termination.")
		gt.Array(t, reply.KeyPoints).Length(0)

		history, err := session.History(ctx, "s1")
		gt.NoError(t, err).Required()
		gt.Array(t, history).Length(4)
	})
}
