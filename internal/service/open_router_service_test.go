package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOccupationList(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "json array",
			content: `["Software Engineer", "Developer Programmer"]`,
			want:    []string{"Software Engineer", "Developer Programmer"},
		},
		{
			name: "fenced json array",
			content: "```json\n" +
				`["Software Engineer", "ICT Business Analyst"]` +
				"\n```",
			want: []string{"Software Engineer", "ICT Business Analyst"},
		},
		{
			name:    "nested under occupations",
			content: `{"occupations": ["Software Engineer", "Developer Programmer"]}`,
			want:    []string{"Software Engineer", "Developer Programmer"},
		},
		{
			name:    "numbered lines",
			content: "1. Software Engineer\n2. Developer Programmer\n3. ICT Business Analyst",
			want:    []string{"Software Engineer", "Developer Programmer", "ICT Business Analyst"},
		},
		{
			name:    "bulleted lines with quotes",
			content: "- \"Software Engineer\"\n- 'Developer Programmer'",
			want:    []string{"Software Engineer", "Developer Programmer"},
		},
		{
			name:    "caps at five",
			content: `["A", "B", "C", "D", "E", "F", "G"]`,
			want:    []string{"A", "B", "C", "D", "E"},
		},
		{
			name:    "drops blank entries",
			content: `["Software Engineer", "  ", ""]`,
			want:    []string{"Software Engineer"},
		},
		{
			name:    "nothing usable",
			content: "",
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOccupationList(tt.content))
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain json", in: `{"a": 1}`, want: `{"a": 1}`},
		{name: "json fence", in: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "anonymous fence", in: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "surrounding whitespace", in: "  {\"a\": 1}\n", want: `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}
