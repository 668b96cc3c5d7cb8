package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey          string
	EmbeddingModel  string
	GenerationModel string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		embeddingModel := os.Getenv("GEMINI_EMBEDDING_MODEL")
		if embeddingModel == "" {
			embeddingModel = "gemini-embedding-001"
		}
		generationModel := os.Getenv("GEMINI_GENERATION_MODEL")
		if generationModel == "" {
			generationModel = "gemini-2.5-flash"
		}
		geminiConfig = &GeminiConfig{
			APIKey:          os.Getenv("GEMINI_API_KEY"),
			EmbeddingModel:  embeddingModel,
			GenerationModel: generationModel,
		}
	})
	return geminiConfig
}
