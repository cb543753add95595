package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"contract-rag/internal/config"
	"contract-rag/internal/models"
)

// ResponseSchema constrains a completion to one JSON object.
type ResponseSchema struct {
	Name   string
	Schema json.RawMessage
}

// Client issues a schema-constrained chat completion and returns the raw
// JSON object the model produced.
type Client interface {
	Complete(ctx context.Context, system, prompt string, schema ResponseSchema) (json.RawMessage, error)
}

const (
	callTimeout = 60 * time.Second
	maxAttempts = 3
)

type openAIClient struct {
	client *openai.Client
	model  string
}

func NewClient(cfg *config.OpenAIConfig) Client {
	clientCfg := openai.DefaultConfig(strings.TrimPrefix(cfg.Key, "Bearer "))
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &openAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.ChatModel,
	}
}

// Complete retries transient failures a small fixed number of times with
// backoff before giving up. A response that is not valid JSON is a
// FormatError, not retried.
func (c *openAIClient) Complete(ctx context.Context, system, prompt string, schema ResponseSchema) (json.RawMessage, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schema.Name,
				Schema: schema.Schema,
				Strict: true,
			},
		},
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, callTimeout)
		rsp, err := c.client.CreateChatCompletion(callCtx, req)
		cancel()
		if err == nil {
			return parseContent(schema.Name, rsp)
		}

		lastErr = err
		if ctx.Err() != nil {
			break
		}
		log.Warn().Err(err).Int("attempt", attempt).Str("schema", schema.Name).
			Msg("Chat completion failed")
		if attempt < maxAttempts {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}
	return nil, lastErr
}

func parseContent(name string, rsp openai.ChatCompletionResponse) (json.RawMessage, error) {
	if len(rsp.Choices) == 0 {
		return nil, &models.FormatError{Op: name, Detail: "no choices in response"}
	}
	content := rsp.Choices[0].Message.Content
	if !json.Valid([]byte(content)) {
		return nil, &models.FormatError{Op: name, Detail: "response is not valid JSON"}
	}
	return json.RawMessage(content), nil
}

// IsFormat reports whether err is a response-shape violation rather than
// a transport failure.
func IsFormat(err error) bool {
	var fe *models.FormatError
	return errors.As(err, &fe)
}
