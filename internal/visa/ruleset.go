// Package visa holds the per-subclass points rule sets used by the
// assessment engine.
package visa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samyakjain16/SkillVisaFinderNew/internal/dto"
)

type EligibilityStatus string

const (
	EligibilityUndetermined        EligibilityStatus = "undetermined"
	EligibilityPotentiallyEligible EligibilityStatus = "potentially_eligible"
	EligibilityNotEligible         EligibilityStatus = "not_eligible"
)

// ErrUnsupportedSubclass is returned when a rule set for the requested visa
// subclass has not been implemented yet. Scoring must fail loudly in that
// case; silently skipping would corrupt the total-points invariant.
var ErrUnsupportedSubclass = errors.New("rule set not implemented for visa subclass")

// RuleSet scores one visa subclass. Every category function is pure and has a
// 0-point default for missing input, so total points stay well-defined once
// normalization succeeds.
type RuleSet interface {
	Subclass() string
	Threshold() int

	AgePoints(age int) int
	EnglishPoints(level string) int
	EducationPoints(level string) int
	ExperiencePoints(overseasYears, australiaYears float64) int
	AustralianStudyPoints(completed bool) int
	SpecialistEducationPoints(completed bool) int
	CommunityLanguagePoints(accredited bool) int
	RegionalStudyPoints(completed bool) int
	ProfessionalYearPoints(completed bool) int
	PartnerSkillsPoints(skilledPartner, competentEnglish bool) int

	Eligibility(totalPoints int) (EligibilityStatus, string)
}

// Registry resolves visa subclasses to their rule sets.
type Registry struct {
	rules map[string]RuleSet
}

func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]RuleSet)}
	r.Register(NewSubclass189())
	return r
}

func (r *Registry) Register(rs RuleSet) {
	r.rules[rs.Subclass()] = rs
}

func (r *Registry) Lookup(subclass string) (RuleSet, error) {
	rs, ok := r.rules[subclass]
	if !ok {
		return nil, fmt.Errorf("subclass %q: %w", subclass, ErrUnsupportedSubclass)
	}
	return rs, nil
}

var visaNames = map[string]string{
	"189": "Skilled Independent Visa",
	"190": "Skilled Nominated Visa",
	"491": "Skilled Work Regional (Provisional) Visa",
	"186": "Employer Nomination Scheme",
	"482": "Temporary Skill Shortage Visa",
	"500": "Student Visa",
}

// Name returns the display name of a visa subclass.
func Name(subclass string) string {
	if name, ok := visaNames[subclass]; ok {
		return name
	}
	return fmt.Sprintf("Visa Subclass %s", subclass)
}

var educationRanks = map[string]int{
	"phd":              5,
	"doctorate":        5,
	"masters":          4,
	"master":           4,
	"bachelors":        3,
	"bachelor":         3,
	"diploma":          2,
	"advanced diploma": 2,
	"certificate":      1,
	"trade":            1,
}

// EducationLevelRank orders qualification levels; unknown levels rank 0.
func EducationLevelRank(level string) int {
	return educationRanks[strings.ToLower(strings.TrimSpace(level))]
}

// HighestQualification picks the entry with the highest ranked level. Ties
// keep the earliest entry, so the ordering of the input stays meaningful.
func HighestQualification(education []dto.Education) (dto.Education, bool) {
	if len(education) == 0 {
		return dto.Education{}, false
	}
	best := education[0]
	for _, edu := range education[1:] {
		if EducationLevelRank(edu.Level) > EducationLevelRank(best.Level) {
			best = edu
		}
	}
	return best, true
}
