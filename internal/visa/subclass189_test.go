package visa

import (
	"testing"

	"github.com/samyakjain16/SkillVisaFinderNew/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubclass189AgePoints(t *testing.T) {
	s := NewSubclass189()

	tests := []struct {
		name string
		age  int
		want int
	}{
		{name: "under 18", age: 17, want: 0},
		{name: "lower bound first bracket", age: 18, want: 25},
		{name: "upper bound first bracket", age: 24, want: 25},
		{name: "prime bracket lower", age: 25, want: 30},
		{name: "prime bracket upper", age: 32, want: 30},
		{name: "mid bracket lower", age: 33, want: 25},
		{name: "mid bracket upper", age: 39, want: 25},
		{name: "last bracket lower", age: 40, want: 15},
		{name: "last bracket upper", age: 44, want: 15},
		{name: "over 44", age: 45, want: 0},
		{name: "zero age", age: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.AgePoints(tt.age))
		})
	}
}

func TestSubclass189EnglishPoints(t *testing.T) {
	s := NewSubclass189()

	tests := []struct {
		name  string
		level string
		want  int
	}{
		{name: "superior", level: "superior", want: 20},
		{name: "proficient", level: "proficient", want: 10},
		{name: "competent", level: "competent", want: 0},
		{name: "case insensitive", level: " Superior ", want: 20},
		{name: "empty", level: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.EnglishPoints(tt.level))
		})
	}
}

func TestSubclass189EducationPoints(t *testing.T) {
	s := NewSubclass189()

	tests := []struct {
		name  string
		level string
		want  int
	}{
		{name: "phd", level: "phd", want: 20},
		{name: "doctorate", level: "Doctorate", want: 20},
		{name: "masters", level: "masters", want: 15},
		{name: "bachelor", level: "Bachelor", want: 15},
		{name: "diploma", level: "diploma", want: 10},
		{name: "advanced diploma", level: "advanced diploma", want: 10},
		{name: "trade", level: "trade", want: 10},
		{name: "unknown", level: "bootcamp", want: 0},
		{name: "empty", level: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.EducationPoints(tt.level))
		})
	}
}

func TestSubclass189ExperiencePoints(t *testing.T) {
	s := NewSubclass189()

	tests := []struct {
		name      string
		overseas  float64
		australia float64
		want      int
	}{
		{name: "no experience", want: 0},
		{name: "overseas below first bucket", overseas: 2.9, want: 0},
		{name: "overseas three years", overseas: 3, want: 5},
		{name: "overseas five years", overseas: 5, want: 10},
		{name: "overseas eight years", overseas: 8, want: 15},
		{name: "australia one year", australia: 1, want: 5},
		{name: "australia three years", australia: 3, want: 10},
		{name: "australia five years", australia: 5, want: 15},
		{name: "australia eight years", australia: 8, want: 20},
		{name: "higher track wins", overseas: 8, australia: 3, want: 15},
		{name: "tracks are not additive", overseas: 5, australia: 5, want: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ExperiencePoints(tt.overseas, tt.australia))
		})
	}
}

func TestSubclass189BonusPoints(t *testing.T) {
	s := NewSubclass189()

	assert.Equal(t, 5, s.AustralianStudyPoints(true))
	assert.Equal(t, 0, s.AustralianStudyPoints(false))
	assert.Equal(t, 10, s.SpecialistEducationPoints(true))
	assert.Equal(t, 0, s.SpecialistEducationPoints(false))
	assert.Equal(t, 5, s.CommunityLanguagePoints(true))
	assert.Equal(t, 0, s.CommunityLanguagePoints(false))
	assert.Equal(t, 5, s.RegionalStudyPoints(true))
	assert.Equal(t, 0, s.RegionalStudyPoints(false))
	assert.Equal(t, 5, s.ProfessionalYearPoints(true))
	assert.Equal(t, 0, s.ProfessionalYearPoints(false))
}

func TestSubclass189PartnerSkillsPoints(t *testing.T) {
	s := NewSubclass189()

	tests := []struct {
		name             string
		skilled          bool
		competentEnglish bool
		want             int
	}{
		{name: "skilled partner", skilled: true, want: 10},
		{name: "skilled beats competent english", skilled: true, competentEnglish: true, want: 10},
		{name: "competent english only", competentEnglish: true, want: 5},
		{name: "neither", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.PartnerSkillsPoints(tt.skilled, tt.competentEnglish))
		})
	}
}

func TestSubclass189Eligibility(t *testing.T) {
	s := NewSubclass189()

	status, notes := s.Eligibility(65)
	assert.Equal(t, EligibilityPotentiallyEligible, status)
	assert.Equal(t, "Points requirement met. Further verification needed.", notes)

	status, notes = s.Eligibility(60)
	assert.Equal(t, EligibilityNotEligible, status)
	assert.Equal(t, "Minimum 65 points required. Current points: 60", notes)
}

// A worked example: 29 year old, proficient English, bachelor degree, six
// years of overseas experience lands exactly on the threshold.
func TestSubclass189WorkedExample(t *testing.T) {
	s := NewSubclass189()

	total := s.AgePoints(29) +
		s.EnglishPoints("proficient") +
		s.EducationPoints("bachelors") +
		s.ExperiencePoints(6, 0)

	require.Equal(t, 65, total)
	status, _ := s.Eligibility(total)
	assert.Equal(t, EligibilityPotentiallyEligible, status)
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	rs, err := r.Lookup("189")
	require.NoError(t, err)
	assert.Equal(t, "189", rs.Subclass())
	assert.Equal(t, 65, rs.Threshold())

	_, err = r.Lookup("190")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedSubclass)
	assert.Contains(t, err.Error(), "190")
}

func TestVisaName(t *testing.T) {
	assert.Equal(t, "Skilled Independent Visa", Name("189"))
	assert.Equal(t, "Skilled Nominated Visa", Name("190"))
	assert.Equal(t, "Visa Subclass 999", Name("999"))
}

func TestHighestQualification(t *testing.T) {
	tests := []struct {
		name      string
		education []dto.Education
		wantLevel string
		wantOK    bool
	}{
		{
			name:   "empty",
			wantOK: false,
		},
		{
			name: "single entry",
			education: []dto.Education{
				{Level: "diploma", Field: "IT"},
			},
			wantLevel: "diploma",
			wantOK:    true,
		},
		{
			name: "masters beats bachelor",
			education: []dto.Education{
				{Level: "bachelor", Field: "Science"},
				{Level: "masters", Field: "Engineering"},
			},
			wantLevel: "masters",
			wantOK:    true,
		},
		{
			name: "tie keeps the earliest",
			education: []dto.Education{
				{Level: "bachelor", Field: "Science"},
				{Level: "bachelors", Field: "Arts"},
			},
			wantLevel: "bachelor",
			wantOK:    true,
		},
		{
			name: "unknown levels rank below known",
			education: []dto.Education{
				{Level: "bootcamp", Field: "Coding"},
				{Level: "certificate", Field: "Welding"},
			},
			wantLevel: "certificate",
			wantOK:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HighestQualification(tt.education)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLevel, got.Level)
		})
	}
}
