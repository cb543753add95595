package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// OpenAIConfig covers both the embedding and the chat completion clients.
// Query and corpus embeddings must come from the same EmbeddingModel;
// building both sides from this one struct is what guarantees that.
type OpenAIConfig struct {
	BaseURL        string `yaml:"base_url"`
	Key            string `yaml:"key"`
	EmbeddingModel string `yaml:"embedding_model"`
	ChatModel      string `yaml:"chat_model"`
	VectorSize     int    `yaml:"vector_size"`
}

type RAGConfig struct {
	OverlapWords int `yaml:"overlap_words"`
	BatchSize    int `yaml:"batch_size"`
	TopK         int `yaml:"top_k"`
}

type StoreConfig struct {
	Path  string `yaml:"path"`
	Debug bool   `yaml:"debug"`
}

type Config struct {
	OpenAI       OpenAIConfig `yaml:"openai"`
	RAG          RAGConfig    `yaml:"rag"`
	VectorStore  StoreConfig  `yaml:"vector_store"`
	Conversation StoreConfig  `yaml:"conversation"`
	Results      StoreConfig  `yaml:"results"`
}

const (
	defaultOverlapWords = 50
	defaultBatchSize    = 15
	defaultTopK         = 3
	defaultVectorSize   = 1536
)

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.RAG.OverlapWords == 0 {
		cfg.RAG.OverlapWords = defaultOverlapWords
	}
	if cfg.RAG.BatchSize == 0 {
		cfg.RAG.BatchSize = defaultBatchSize
	}
	if cfg.RAG.TopK == 0 {
		cfg.RAG.TopK = defaultTopK
	}
	if cfg.OpenAI.VectorSize == 0 {
		cfg.OpenAI.VectorSize = defaultVectorSize
	}
	if cfg.OpenAI.EmbeddingModel == "" {
		cfg.OpenAI.EmbeddingModel = "text-embedding-3-small"
	}
	if cfg.OpenAI.ChatModel == "" {
		cfg.OpenAI.ChatModel = "gpt-4o-mini"
	}
	if cfg.VectorStore.Path == "" {
		cfg.VectorStore.Path = "vector_store.db"
	}
	if cfg.Conversation.Path == "" {
		cfg.Conversation.Path = "conversation.db"
	}
	if cfg.Results.Path == "" {
		cfg.Results.Path = "contract_results.db"
	}
}
