// Package matcher maps LLM-suggested job titles onto the ANZSCO occupation
// catalog by cosine similarity over embedding vectors.
package matcher

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"
)

// MaxMatches bounds the ranked result list.
const MaxMatches = 5

// Embedder turns texts into fixed-length vectors in a single batched call.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Match is one suggested occupation resolved against the catalog.
type Match struct {
	Entry      Entry
	Confidence float64 // percent, one decimal place
	Suggested  string
}

type Matcher struct {
	embedder Embedder
	logger   *zap.Logger
}

func New(embedder Embedder, logger *zap.Logger) *Matcher {
	return &Matcher{embedder: embedder, logger: logger}
}

// Match resolves each suggested occupation name to its best catalog entry,
// deduplicates by occupation name keeping the highest confidence, and returns
// at most MaxMatches results ordered by descending confidence.
//
// When the embedder fails or returns nothing, the whole run yields an empty
// result with the cause logged; a partial match set without its compute
// context would mislead a human reviewer.
func (m *Matcher) Match(ctx context.Context, suggested []string, catalog *Catalog) []Match {
	if len(suggested) == 0 || catalog == nil || catalog.Len() == 0 {
		return []Match{}
	}

	vectors, err := m.embedder.EmbedTexts(ctx, suggested)
	if err != nil {
		m.logger.Error("embedding call failed, returning no matches", zap.Error(err))
		return []Match{}
	}
	if len(vectors) != len(suggested) {
		m.logger.Error("embedding count does not match suggestion count, returning no matches",
			zap.Int("suggestions", len(suggested)),
			zap.Int("embeddings", len(vectors)),
		)
		return []Match{}
	}

	matches := make([]Match, 0, len(suggested))
	for i, vector := range vectors {
		queryNorm := vectorNorm(vector)
		if queryNorm == 0 {
			// an all-zero vector has undefined similarity against every
			// entry, so the suggestion is excluded from scoring
			m.logger.Warn("skipping suggestion with zero-norm embedding",
				zap.String("suggested_occupation", suggested[i]))
			continue
		}

		var best *Entry
		bestSim := math.Inf(-1)
		for j := range catalog.entries {
			entry := &catalog.entries[j]
			sim := dotProduct(vector, entry.Embedding) / (queryNorm * entry.norm)
			// strict comparison keeps the first-seen entry on ties, so runs
			// over the same snapshot are reproducible
			if sim > bestSim {
				bestSim = sim
				best = entry
			}
		}
		if best == nil {
			continue
		}

		matches = append(matches, Match{
			Entry:      *best,
			Confidence: math.Round(bestSim*100*10) / 10,
			Suggested:  suggested[i],
		})
	}

	return rank(matches)
}

// rank deduplicates by occupation name (keeping the higher confidence),
// sorts by descending confidence and truncates to MaxMatches.
func rank(matches []Match) []Match {
	byName := make(map[string]int, len(matches))
	unique := make([]Match, 0, len(matches))
	for _, match := range matches {
		idx, seen := byName[match.Entry.Name]
		if !seen {
			byName[match.Entry.Name] = len(unique)
			unique = append(unique, match)
			continue
		}
		if match.Confidence > unique[idx].Confidence {
			unique[idx] = match
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Confidence > unique[j].Confidence
	})

	if len(unique) > MaxMatches {
		unique = unique[:MaxMatches]
	}
	return unique
}

func dotProduct(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
