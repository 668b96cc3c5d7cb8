package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samyakjain16/SkillVisaFinderNew/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const maxEmbeddingTextLen = 10000

type GeminiServiceInterface interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	GenerateContent(ctx context.Context, prompt string) (string, error)
	SuggestOccupations(ctx context.Context, cvText string) ([]string, error)
}

// GeminiService wraps the Gemini API with retry, timeout, and a simple
// consecutive-error circuit breaker. It is the embedding adapter behind
// occupation matching.
type GeminiService struct {
	Client          *genai.Client
	EmbeddingModel  string
	GenerationModel string
	MaxRetries      int
	BaseDelay       time.Duration
	MaxDelay        time.Duration
	RequestTimeout  time.Duration

	logger            *zap.Logger
	consecutiveErrors int
	circuitBreakerMax int
}

func NewGeminiService(ctx context.Context, logger *zap.Logger) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:            client,
		EmbeddingModel:    geminiConfig.EmbeddingModel,
		GenerationModel:   geminiConfig.GenerationModel,
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          90 * time.Second,
		RequestTimeout:    90 * time.Second,
		logger:            logger,
		circuitBreakerMax: 5,
	}, nil
}

// EmbedTexts returns one embedding vector per input text via a single batched
// request. Streamed or partial embeddings are not supported; the caller gets
// either the full batch or an error.
func (s *GeminiService) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("texts for embedding cannot be empty")
	}
	if s.consecutiveErrors >= s.circuitBreakerMax {
		return nil, fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", s.consecutiveErrors)
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil, fmt.Errorf("text for embedding cannot be empty")
		}
		if len(trimmed) > maxEmbeddingTextLen {
			s.logger.Warn("truncating embedding input",
				zap.Int("length", len(trimmed)),
				zap.Int("limit", maxEmbeddingTextLen),
			)
			trimmed = trimmed[:maxEmbeddingTextLen]
		}
		contents = append(contents, genai.NewContentFromText(trimmed, genai.RoleUser))
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.logger.Info("retrying EmbedContent",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", s.MaxRetries),
				zap.Duration("delay", delay),
			)
			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return nil, fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := s.Client.Models.EmbedContent(timeoutCtx, s.EmbeddingModel, contents, nil)
		if err == nil {
			s.consecutiveErrors = 0
			vectors, err := s.validateEmbeddingResponse(result, len(texts))
			if err != nil {
				return nil, fmt.Errorf("invalid embedding response: %w", err)
			}
			return vectors, nil
		}

		lastErr = err
		if !s.isRetryableError(err) {
			s.consecutiveErrors++
			return nil, fmt.Errorf("generate embeddings failed: %w", err)
		}
		s.logger.Warn("retryable embedding error", zap.Int("attempt", attempt+1), zap.Error(err))
	}

	s.consecutiveErrors++
	return nil, fmt.Errorf("max retries (%d) exceeded for EmbedContent: %w", s.MaxRetries, lastErr)
}

func (s *GeminiService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if s.consecutiveErrors >= s.circuitBreakerMax {
		return "", fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", s.consecutiveErrors)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.logger.Info("retrying GenerateContent",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", s.MaxRetries),
				zap.Duration("delay", delay),
			)
			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return "", fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := s.Client.Models.GenerateContent(timeoutCtx, s.GenerationModel, genai.Text(prompt), genConfig)
		if err == nil {
			s.consecutiveErrors = 0
			if err := s.validateGenerateResponse(result); err != nil {
				return "", fmt.Errorf("invalid response: %w", err)
			}
			return result.Text(), nil
		}

		lastErr = err
		if !s.isRetryableError(err) {
			s.consecutiveErrors++
			return "", fmt.Errorf("generate content failed: %w", err)
		}
		s.logger.Warn("retryable generation error", zap.Int("attempt", attempt+1), zap.Error(err))
	}

	s.consecutiveErrors++
	return "", fmt.Errorf("max retries (%d) exceeded for GenerateContent: %w", s.MaxRetries, lastErr)
}

// SuggestOccupations is the fallback suggestion path used when the primary
// LLM provider is unavailable. Same prompt, same parsing.
func (s *GeminiService) SuggestOccupations(ctx context.Context, cvText string) ([]string, error) {
	content, err := s.GenerateContent(ctx, suggestPrompt(cvText))
	if err != nil {
		return nil, fmt.Errorf("suggest occupations: %w", err)
	}
	names := parseOccupationList(content)
	if len(names) == 0 {
		return nil, fmt.Errorf("suggest occupations: no occupation names in response")
	}
	return names, nil
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}

	jitter := time.Duration(float64(delay) * 0.25)
	delay = delay - jitter/2 + time.Duration(float64(jitter)*0.5)
	return delay
}

func (s *GeminiService) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "context canceled") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return false
	}
	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 429:
			return true
		case 500, 502, 503, 504:
			return true
		case 400, 401, 403, 404:
			return false
		}
	}

	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF") {
		return true
	}
	return false
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}

func (s *GeminiService) validateEmbeddingResponse(resp *genai.EmbedContentResponse, want int) ([][]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}
	if len(resp.Embeddings) != want {
		return nil, fmt.Errorf("got %d embeddings, want %d", len(resp.Embeddings), want)
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if len(emb.Values) == 0 {
			return nil, fmt.Errorf("embedding %d is empty", i)
		}
		for j, val := range emb.Values {
			if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
				return nil, fmt.Errorf("invalid embedding value at %d[%d]: %v", i, j, val)
			}
		}
		vectors[i] = emb.Values
	}
	return vectors, nil
}

func (s *GeminiService) ResetCircuitBreaker() {
	s.consecutiveErrors = 0
	s.logger.Info("circuit breaker reset")
}

func (s *GeminiService) GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	return s.consecutiveErrors, s.consecutiveErrors >= s.circuitBreakerMax
}
