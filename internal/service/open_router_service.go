package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/config"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/dto"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type OpenRouterServiceInterface interface {
	SuggestOccupations(ctx context.Context, cvText string) ([]string, error)
	ExtractApplicantData(ctx context.Context, cvText string) (*dto.ApplicantAttributes, error)
}

// OpenRouterService runs the two LLM steps of the CV pipeline: suggesting
// candidate ANZSCO occupation names and extracting structured applicant
// attributes. Both return data the deterministic core consumes; neither makes
// any scoring decision.
type OpenRouterService struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

func NewOpenRouterService(logger *zap.Logger) *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &OpenRouterService{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}
}

const suggestSystemPrompt = "You are an expert Australian migration agent who specializes in analyzing CVs " +
	"and identifying appropriate ANZSCO occupations for migration visas."

const extractSystemPrompt = "You are a helpful assistant that extracts structured data from text and returns it as JSON."

func suggestPrompt(cvText string) string {
	return fmt.Sprintf(`Analyze the following CV and suggest 3-5 most suitable ANZSCO occupations for Australian skilled migration:

%s

For each occupation, provide only the occupation name. Do not include ANZSCO codes or additional information.
Format your response as a JSON array of occupation names only.`, cvText)
}

// SuggestOccupations asks the LLM for 3-5 suitable occupation names. The
// result is free text from the model's perspective; names are matched against
// the catalog downstream.
func (s *OpenRouterService) SuggestOccupations(ctx context.Context, cvText string) ([]string, error) {
	content, err := s.chat(ctx, suggestSystemPrompt, suggestPrompt(cvText))
	if err != nil {
		return nil, fmt.Errorf("suggest occupations: %w", err)
	}

	names := parseOccupationList(content)
	if len(names) == 0 {
		return nil, fmt.Errorf("suggest occupations: no occupation names in response")
	}
	s.logger.Debug("occupations suggested", zap.Strings("occupations", names))
	return names, nil
}

// ExtractApplicantData asks the LLM for the applicant attributes schema the
// assessment engine consumes. Date fields come back loosely formatted and are
// normalized later.
func (s *OpenRouterService) ExtractApplicantData(ctx context.Context, cvText string) (*dto.ApplicantAttributes, error) {
	prompt := fmt.Sprintf(`Based on the following CV, extract information relevant for an Australian skilled visa application.
Extract full name, email, date of birth or age, education qualifications, work experience, and English language proficiency if available.

Format your response as structured JSON with these fields (leave empty if not found):
{
  "full_name": "",
  "email": "",
  "phone": "",
  "nationality": "",
  "date_of_birth": "YYYY-MM-DD",
  "age": null,
  "education": [
    {"level": "", "field": "", "institution": "", "country": "", "start_date": "YYYY-MM", "end_date": "YYYY-MM"}
  ],
  "experience": [
    {"title": "", "company": "", "country": "", "start_date": "YYYY-MM", "end_date": "YYYY-MM or present", "duration_years": null}
  ],
  "english": {
    "level": "superior, proficient, competent or null",
    "test": "",
    "scores": {"overall": null, "reading": null, "writing": null, "speaking": null, "listening": null}
  }
}

CV Content:
%s`, cvText)

	content, err := s.chat(ctx, extractSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("extract applicant data: %w", err)
	}

	var attrs dto.ApplicantAttributes
	if err := json.Unmarshal([]byte(extractJSON(content)), &attrs); err != nil {
		return nil, fmt.Errorf("extract applicant data: parse response: %w", err)
	}
	return &attrs, nil
}

func (s *OpenRouterService) chat(ctx context.Context, system, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "system", "content": system},
				{"role": "user", "content": prompt},
			},
			"temperature": 0.2,
		}).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter returned %s: %s", resp.Status(), resp.String())
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return content, nil
}

var listItemPrefix = regexp.MustCompile(`^[\d.*\-"'\s]+`)

// parseOccupationList reads the suggested occupations out of an LLM reply:
// either a JSON array (possibly nested under "occupations"), or, as a
// fallback, one name per line.
func parseOccupationList(content string) []string {
	cleaned := extractJSON(content)

	var names []string
	if err := json.Unmarshal([]byte(cleaned), &names); err == nil {
		return limitNames(names)
	}

	nested := gjson.Get(cleaned, "occupations")
	if nested.IsArray() {
		for _, item := range nested.Array() {
			if name := strings.TrimSpace(item.String()); name != "" {
				names = append(names, name)
			}
		}
		return limitNames(names)
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") || strings.HasPrefix(line, "{") || strings.HasPrefix(line, "}") {
			continue
		}
		line = listItemPrefix.ReplaceAllString(line, "")
		line = strings.Trim(line, `"' `)
		if line != "" {
			names = append(names, line)
		}
	}
	return limitNames(names)
}

func limitNames(names []string) []string {
	out := names[:0]
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// extractJSON strips markdown code fences around a JSON payload.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
