package visa

import (
	"fmt"
	"strings"
)

// Subclass189 implements the points test for the Skilled Independent Visa.
type Subclass189 struct {
	threshold int
}

func NewSubclass189() *Subclass189 {
	return &Subclass189{threshold: 65}
}

func (s *Subclass189) Subclass() string { return "189" }

func (s *Subclass189) Threshold() int { return s.threshold }

func (s *Subclass189) AgePoints(age int) int {
	switch {
	case age >= 18 && age <= 24:
		return 25
	case age >= 25 && age <= 32:
		return 30
	case age >= 33 && age <= 39:
		return 25
	case age >= 40 && age <= 44:
		return 15
	default:
		return 0
	}
}

func (s *Subclass189) EnglishPoints(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "superior":
		return 20
	case "proficient":
		return 10
	default:
		// competent English is a visa precondition, not a points source
		return 0
	}
}

func (s *Subclass189) EducationPoints(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "phd", "doctorate":
		return 20
	case "masters", "master", "bachelors", "bachelor":
		return 15
	case "diploma", "advanced diploma", "trade":
		return 10
	default:
		return 0
	}
}

// ExperiencePoints buckets skilled employment years. The overseas and
// Australian tracks are not additive; the higher of the two counts.
func (s *Subclass189) ExperiencePoints(overseasYears, australiaYears float64) int {
	var overseas int
	switch {
	case overseasYears >= 8:
		overseas = 15
	case overseasYears >= 5:
		overseas = 10
	case overseasYears >= 3:
		overseas = 5
	}

	var australia int
	switch {
	case australiaYears >= 8:
		australia = 20
	case australiaYears >= 5:
		australia = 15
	case australiaYears >= 3:
		australia = 10
	case australiaYears >= 1:
		australia = 5
	}

	if australia > overseas {
		return australia
	}
	return overseas
}

func (s *Subclass189) AustralianStudyPoints(completed bool) int {
	if completed {
		return 5
	}
	return 0
}

func (s *Subclass189) SpecialistEducationPoints(completed bool) int {
	if completed {
		return 10
	}
	return 0
}

func (s *Subclass189) CommunityLanguagePoints(accredited bool) int {
	if accredited {
		return 5
	}
	return 0
}

func (s *Subclass189) RegionalStudyPoints(completed bool) int {
	if completed {
		return 5
	}
	return 0
}

func (s *Subclass189) ProfessionalYearPoints(completed bool) int {
	if completed {
		return 5
	}
	return 0
}

func (s *Subclass189) PartnerSkillsPoints(skilledPartner, competentEnglish bool) int {
	if skilledPartner {
		return 10
	}
	if competentEnglish {
		return 5
	}
	return 0
}

func (s *Subclass189) Eligibility(totalPoints int) (EligibilityStatus, string) {
	if totalPoints >= s.threshold {
		return EligibilityPotentiallyEligible, "Points requirement met. Further verification needed."
	}
	return EligibilityNotEligible,
		fmt.Sprintf("Minimum %d points required. Current points: %d", s.threshold, totalPoints)
}
