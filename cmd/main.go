package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"contract-rag/internal/chat"
	"contract-rag/internal/chunker"
	"contract-rag/internal/config"
	"contract-rag/internal/embedding"
	"contract-rag/internal/extractor"
	"contract-rag/internal/ingest"
	"contract-rag/internal/llm"
	"contract-rag/internal/models"
	"contract-rag/internal/parser"
	"contract-rag/internal/results"
	"contract-rag/internal/store"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	configPath := flag.String("config", "./configs/config.yaml", "Path to the config file")
	filePath := flag.String("file", "", "Path to the contract PDF to ingest and extract")
	docType := flag.String("type", "SOW", "Document type: SOW or MSA")
	query := flag.String("query", "", "Chat query against the ingested contract")
	sessionID := flag.String("session", "", "Chat session id (empty starts a new session)")
	force := flag.Bool("force", false, "Replace the stored corpus even if already populated")
	flag.Parse()

	if *filePath != "" && *query != "" {
		log.Fatal().Msg("Provide either a contract file using the -file flag or a query using the -query flag, not both")
	}

	dt := models.DocType(*docType)
	if dt != models.DocTypeSOW && dt != models.DocTypeMSA {
		log.Fatal().Str("type", *docType).Msg("Document type must be SOW or MSA")
	}

	switch {
	case *filePath != "":
		extractContract(context.Background(), *configPath, *filePath, dt, *force)
	case *query != "":
		chatWithContract(context.Background(), *configPath, *query, *sessionID)
	default:
		log.Fatal().Msg("Provide a contract file using the -file flag or a query using the -query flag")
	}
}

func extractContract(ctx context.Context, configPath, filePath string, docType models.DocType, force bool) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	vectorDB, err := store.Connect(cfg.VectorStore.Path, cfg.VectorStore.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to vector store")
	}
	corpus, err := store.New(ctx, vectorDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing vector store")
	}
	defer corpus.Close()

	embedder, err := embedding.NewEmbedder(&cfg.OpenAI)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}
	generator := embedding.NewGenerator(embedder)

	pages, err := parser.ExtractPages(filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error parsing document")
	}

	ingestor := ingest.New(corpus, generator, chunker.New(cfg.RAG.OverlapWords), cfg.RAG.BatchSize)
	if err := ingestor.Ingest(ctx, pages, force); err != nil {
		log.Fatal().Err(err).Msg("Error ingesting document")
	}

	client := llm.NewClient(&cfg.OpenAI)
	outcomes := extractor.New(corpus, generator, client, cfg.RAG.TopK).ExtractAll(ctx, docType)

	resultsDB, err := store.Connect(cfg.Results.Path, cfg.Results.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to results store")
	}
	defer resultsDB.Close()
	resultStore, err := results.New(ctx, resultsDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing results store")
	}

	runID, err := resultStore.StoreRun(ctx, docType, filePath, outcomes)
	if err != nil {
		log.Fatal().Err(err).Msg("Error storing extraction results")
	}

	log.Info().Int64("run_id", runID).Str("doc_type", string(docType)).Msg("Extraction complete")
	for _, outcome := range outcomes {
		fmt.Printf("--- %s ---\n", outcome.Field)
		if outcome.Degraded {
			fmt.Printf("degraded: %s\n\n", outcome.Reason)
			continue
		}
		fmt.Printf("field_value: %s\npage_number: %s\nconfidence: %d\nreasoning: %s\n\n",
			outcome.Result.FieldValue, outcome.Result.PageNumber,
			outcome.Result.Confidence, outcome.Result.Reasoning)
	}
}

func chatWithContract(ctx context.Context, configPath, query, sessionID string) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	vectorDB, err := store.Connect(cfg.VectorStore.Path, cfg.VectorStore.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to vector store")
	}
	corpus, err := store.New(ctx, vectorDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing vector store")
	}
	defer corpus.Close()

	conversationDB, err := store.Connect(cfg.Conversation.Path, cfg.Conversation.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to conversation store")
	}
	defer conversationDB.Close()
	turns, err := chat.NewTurnStore(ctx, conversationDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing conversation store")
	}

	embedder, err := embedding.NewEmbedder(&cfg.OpenAI)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}
	generator := embedding.NewGenerator(embedder)

	session := chat.NewSession(turns, generator, corpus, llm.NewClient(&cfg.OpenAI), cfg.RAG.TopK)
	reply, err := session.Chat(ctx, query, sessionID)
	if err != nil {
		log.Fatal().Err(err).Msg("Error during chat turn")
	}

	log.Info().Str("session_id", reply.SessionID).Msg("Query: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	fmt.Printf("%s\n\n", query)

	log.Info().Msg("Answer: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	fmt.Printf("%s\n\n", reply.Answer)

	fmt.Printf("confidence: %.2f\ncontext summary: %s\n", reply.Confidence, reply.ContextSummary)
}
