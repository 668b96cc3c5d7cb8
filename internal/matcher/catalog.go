package matcher

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samyakjain16/SkillVisaFinderNew/internal/model"
	"go.uber.org/zap"
)

// Entry is one catalog occupation with its precomputed embedding.
type Entry struct {
	Code               string
	Name               string
	List               string
	VisaSubclasses     string
	AssessingAuthority string
	Embedding          []float32

	norm float64
}

// Catalog is an immutable snapshot of the occupation taxonomy. A matching run
// works against a single snapshot, so concurrent refreshes never leak into a
// computation in progress.
type Catalog struct {
	entries []Entry
}

// NewCatalog filters entries down to those with a usable embedding and
// precomputes vector norms. Entries with a missing or zero-norm embedding are
// skipped and logged, not treated as fatal.
func NewCatalog(entries []Entry, logger *zap.Logger) *Catalog {
	usable := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if len(e.Embedding) == 0 {
			logger.Warn("skipping catalog entry without embedding",
				zap.String("anzsco_code", e.Code),
				zap.String("occupation_name", e.Name),
			)
			continue
		}
		e.norm = vectorNorm(e.Embedding)
		if e.norm == 0 {
			logger.Warn("skipping catalog entry with zero-norm embedding",
				zap.String("anzsco_code", e.Code),
				zap.String("occupation_name", e.Name),
			)
			continue
		}
		usable = append(usable, e)
	}
	return &Catalog{entries: usable}
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// CatalogFromOccupations builds a snapshot from persisted occupation rows.
func CatalogFromOccupations(rows []model.Occupation, logger *zap.Logger) *Catalog {
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			Code:               row.AnzscoCode,
			Name:               row.OccupationName,
			List:               row.List,
			VisaSubclasses:     row.VisaSubclasses,
			AssessingAuthority: row.AssessingAuthority,
			Embedding:          row.Embedding.Slice(),
		})
	}
	return NewCatalog(entries, logger)
}

// DecodeEmbedding accepts an embedding delivered as a float slice or as an
// encoded string and returns it as []float32. The catalog source may persist
// vectors either way, so both forms are tolerated on read.
func DecodeEmbedding(v any) ([]float32, error) {
	switch vec := v.(type) {
	case nil:
		return nil, fmt.Errorf("embedding is nil")
	case []float32:
		return vec, nil
	case []float64:
		out := make([]float32, len(vec))
		for i, f := range vec {
			out[i] = float32(f)
		}
		return out, nil
	case []any:
		out := make([]float32, len(vec))
		for i, raw := range vec {
			f, ok := raw.(float64)
			if !ok {
				return nil, fmt.Errorf("embedding element %d is %T, not a number", i, raw)
			}
			out[i] = float32(f)
		}
		return out, nil
	case string:
		return ParseVector(vec)
	default:
		return nil, fmt.Errorf("unsupported embedding type %T", v)
	}
}

// ParseVector parses a string-encoded embedding: a JSON array, or a bare list
// of numbers separated by commas or whitespace.
func ParseVector(s string) ([]float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("embedding string is empty")
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		var floats []float64
		if err := json.Unmarshal([]byte(s), &floats); err != nil {
			// fall back to a loose split of the bracketed body
			s = strings.Trim(s, "[]")
		} else {
			out := make([]float32, len(floats))
			for i, f := range floats {
				out[i] = float32(f)
			}
			return out, nil
		}
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("embedding string has no values")
	}
	out := make([]float32, len(fields))
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return nil, fmt.Errorf("parse embedding value %q: %w", field, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func vectorNorm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
