package matcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = f.vectors[t]
	}
	return out, nil
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	return NewCatalog([]Entry{
		{Code: "261313", Name: "Software Engineer", List: "MLTSSL", Embedding: []float32{1, 0, 0}},
		{Code: "261312", Name: "Developer Programmer", List: "MLTSSL", Embedding: []float32{0, 1, 0}},
		{Code: "261111", Name: "ICT Business Analyst", List: "MLTSSL", Embedding: []float32{0, 0, 1}},
	}, zap.NewNop())
}

func TestMatchExactVector(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"Software Engineer": {1, 0, 0},
	}}
	m := New(embedder, zap.NewNop())

	matches := m.Match(context.Background(), []string{"Software Engineer"}, testCatalog(t))

	require.Len(t, matches, 1)
	assert.Equal(t, "261313", matches[0].Entry.Code)
	assert.Equal(t, "Software Engineer", matches[0].Suggested)
	assert.Equal(t, 100.0, matches[0].Confidence)
}

func TestMatchConfidenceRounding(t *testing.T) {
	// cos angle between (1,1,0) and (1,0,0) is 1/sqrt(2) = 0.7071..., so the
	// percentage must come back as 70.7 exactly
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"Tech Lead": {1, 1, 0},
	}}
	m := New(embedder, zap.NewNop())

	matches := m.Match(context.Background(), []string{"Tech Lead"}, testCatalog(t))

	require.Len(t, matches, 1)
	assert.Equal(t, 70.7, matches[0].Confidence)
}

func TestMatchDeduplicatesByName(t *testing.T) {
	// both suggestions resolve to Software Engineer; the higher-confidence
	// one must win and only one row may come back
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"Software Engineer": {1, 0, 0},
		"Backend Engineer":  {10, 1, 0},
	}}
	m := New(embedder, zap.NewNop())

	matches := m.Match(context.Background(), []string{"Backend Engineer", "Software Engineer"}, testCatalog(t))

	require.Len(t, matches, 1)
	assert.Equal(t, "Software Engineer", matches[0].Entry.Name)
	assert.Equal(t, 100.0, matches[0].Confidence)
	assert.Equal(t, "Software Engineer", matches[0].Suggested)
}

func TestMatchCapsResults(t *testing.T) {
	entries := make([]Entry, 0, 8)
	vectors := map[string][]float32{}
	suggested := make([]string, 0, 8)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for i, name := range names {
		vec := make([]float32, 8)
		vec[i] = 1
		entries = append(entries, Entry{Code: name, Name: name, Embedding: vec})
		vectors[name] = vec
		suggested = append(suggested, name)
	}
	catalog := NewCatalog(entries, zap.NewNop())
	m := New(&fakeEmbedder{vectors: vectors}, zap.NewNop())

	matches := m.Match(context.Background(), suggested, catalog)

	assert.Len(t, matches, MaxMatches)
}

func TestMatchOrderedByConfidence(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"Coder":   {1, 1, 0},
		"Analyst": {0, 0, 1},
	}}
	m := New(embedder, zap.NewNop())

	matches := m.Match(context.Background(), []string{"Coder", "Analyst"}, testCatalog(t))

	require.Len(t, matches, 2)
	assert.Equal(t, "ICT Business Analyst", matches[0].Entry.Name)
	assert.Equal(t, 100.0, matches[0].Confidence)
	assert.GreaterOrEqual(t, matches[0].Confidence, matches[1].Confidence)
}

func TestMatchEmptyAndFailureCases(t *testing.T) {
	catalog := testCatalog(t)

	tests := []struct {
		name      string
		embedder  Embedder
		suggested []string
		catalog   *Catalog
	}{
		{
			name:      "no suggestions",
			embedder:  &fakeEmbedder{},
			suggested: nil,
			catalog:   catalog,
		},
		{
			name:      "nil catalog",
			embedder:  &fakeEmbedder{},
			suggested: []string{"Software Engineer"},
			catalog:   nil,
		},
		{
			name:      "embedder error",
			embedder:  &fakeEmbedder{err: errors.New("quota exceeded")},
			suggested: []string{"Software Engineer"},
			catalog:   catalog,
		},
		{
			name:      "zero vector suggestion",
			embedder:  &fakeEmbedder{vectors: map[string][]float32{"Software Engineer": {0, 0, 0}}},
			suggested: []string{"Software Engineer"},
			catalog:   catalog,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.embedder, zap.NewNop())
			matches := m.Match(context.Background(), tt.suggested, tt.catalog)
			assert.NotNil(t, matches)
			assert.Empty(t, matches)
		})
	}
}

func TestMatchIsReproducible(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"Software Engineer": {1, 0.5, 0},
		"Analyst":           {0.2, 0, 1},
	}}
	m := New(embedder, zap.NewNop())
	catalog := testCatalog(t)

	first := m.Match(context.Background(), []string{"Software Engineer", "Analyst"}, catalog)
	second := m.Match(context.Background(), []string{"Software Engineer", "Analyst"}, catalog)

	assert.Equal(t, first, second)
}

func TestNewCatalogSkipsUnusableEntries(t *testing.T) {
	catalog := NewCatalog([]Entry{
		{Code: "1", Name: "Has Vector", Embedding: []float32{1, 0}},
		{Code: "2", Name: "No Vector"},
		{Code: "3", Name: "Zero Vector", Embedding: []float32{0, 0}},
	}, zap.NewNop())

	assert.Equal(t, 1, catalog.Len())
}

func TestDecodeEmbedding(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    []float32
		wantErr bool
	}{
		{name: "float32 slice", in: []float32{1, 2}, want: []float32{1, 2}},
		{name: "float64 slice", in: []float64{1.5, 2.5}, want: []float32{1.5, 2.5}},
		{name: "json any slice", in: []any{float64(1), float64(2)}, want: []float32{1, 2}},
		{name: "json string", in: "[0.1, 0.2]", want: []float32{0.1, 0.2}},
		{name: "bare string", in: "0.1, 0.2", want: []float32{0.1, 0.2}},
		{name: "nil", in: nil, wantErr: true},
		{name: "bad element type", in: []any{"x"}, wantErr: true},
		{name: "unsupported type", in: 42, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeEmbedding(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVector(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []float32
		wantErr bool
	}{
		{name: "json array", in: "[1, 2.5, -3]", want: []float32{1, 2.5, -3}},
		{name: "comma separated", in: "1,2.5,-3", want: []float32{1, 2.5, -3}},
		{name: "whitespace separated", in: "1 2.5\t-3", want: []float32{1, 2.5, -3}},
		{name: "bracketed loose", in: "[1, 2.5, -3,]", want: []float32{1, 2.5, -3}},
		{name: "empty", in: "   ", wantErr: true},
		{name: "not a number", in: "1, x, 3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVector(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
