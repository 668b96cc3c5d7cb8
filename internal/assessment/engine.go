// Package assessment owns the visa assessment lifecycle: creation from
// applicant data, full scoring, and partial re-scoring on attribute update.
package assessment

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/applicant"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/dto"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/model"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/visa"
	"go.uber.org/zap"
)

// Engine scores assessments against the rule set registry. It performs no
// locking; callers must serialize concurrent updates to the same assessment
// record.
type Engine struct {
	registry *visa.Registry
	logger   *zap.Logger

	// Now supplies the evaluation clock. "present"-ended experience is
	// measured against it, so two scorings of the same stored data can differ
	// over time; tests inject a fixed clock.
	Now func() time.Time
}

func NewEngine(registry *visa.Registry, logger *zap.Logger) *Engine {
	return &Engine{
		registry: registry,
		logger:   logger,
		Now:      time.Now,
	}
}

// Create builds and fully scores a new assessment. The occupation is optional
// metadata, not a scoring input. An unsupported visa subclass fails before
// any scoring happens.
func (e *Engine) Create(attrs *dto.ApplicantAttributes, subclass, occupationCode, occupationName string) (*model.Assessment, error) {
	rules, err := e.registry.Lookup(subclass)
	if err != nil {
		return nil, err
	}

	now := e.Now()
	a := &model.Assessment{
		ID:                uuid.New(),
		VisaSubclass:      subclass,
		VisaName:          visa.Name(subclass),
		OccupationCode:    occupationCode,
		OccupationName:    occupationName,
		Status:            model.AssessmentStatusDraft,
		EligibilityStatus: string(visa.EligibilityUndetermined),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if attrs != nil {
		applicant.Normalize(attrs)
		e.scoreAll(a, rules, attrs, now)
		a.Status = model.AssessmentStatusScored
		e.finalize(a, rules)
	}

	e.logger.Info("assessment scored",
		zap.String("assessment_id", a.ID.String()),
		zap.String("visa_subclass", a.VisaSubclass),
		zap.Int("total_points", a.TotalPoints),
		zap.String("eligibility_status", a.EligibilityStatus),
	)
	return a, nil
}

// Update applies a partial change set, re-scores only the categories whose
// inputs changed, then unconditionally recomputes total points and
// eligibility from the full category set. An unsupported subclass fails
// before anything is mutated.
func (e *Engine) Update(a *model.Assessment, upd *dto.AssessmentUpdate) error {
	rules, err := e.registry.Lookup(a.VisaSubclass)
	if err != nil {
		return err
	}
	if upd == nil {
		return nil
	}

	if upd.OccupationCode != nil {
		a.OccupationCode = *upd.OccupationCode
	}
	if upd.OccupationName != nil {
		a.OccupationName = *upd.OccupationName
	}

	if upd.AgeValue != nil {
		a.AgeValue = *upd.AgeValue
		a.AgePoints = rules.AgePoints(a.AgeValue)
	}
	if upd.EnglishLevel != nil {
		a.EnglishLevel = *upd.EnglishLevel
		a.EnglishPoints = rules.EnglishPoints(a.EnglishLevel)
	}
	if upd.EnglishTest != nil {
		a.EnglishTest = *upd.EnglishTest
	}
	if upd.EducationLevel != nil {
		a.EducationLevel = *upd.EducationLevel
		a.EducationPoints = rules.EducationPoints(a.EducationLevel)
	}
	if upd.EducationField != nil {
		a.EducationField = *upd.EducationField
	}
	if upd.ExperienceOverseasYears != nil || upd.ExperienceAustraliaYears != nil {
		if upd.ExperienceOverseasYears != nil {
			a.ExperienceOverseasYears = *upd.ExperienceOverseasYears
		}
		if upd.ExperienceAustraliaYears != nil {
			a.ExperienceAustraliaYears = *upd.ExperienceAustraliaYears
		}
		a.ExperiencePoints = rules.ExperiencePoints(a.ExperienceOverseasYears, a.ExperienceAustraliaYears)
	}
	if upd.AustralianStudy != nil {
		a.AustralianStudy = *upd.AustralianStudy
		a.AustralianStudyPoints = rules.AustralianStudyPoints(a.AustralianStudy)
	}
	if upd.SpecialistEducation != nil {
		a.SpecialistEducation = *upd.SpecialistEducation
		a.SpecialistEducationPoints = rules.SpecialistEducationPoints(a.SpecialistEducation)
	}
	if upd.CommunityLanguage != nil {
		a.CommunityLanguage = *upd.CommunityLanguage
		a.CommunityLanguagePoints = rules.CommunityLanguagePoints(a.CommunityLanguage)
	}
	if upd.RegionalStudy != nil {
		a.RegionalStudy = *upd.RegionalStudy
		a.RegionalStudyPoints = rules.RegionalStudyPoints(a.RegionalStudy)
	}
	if upd.ProfessionalYear != nil {
		a.ProfessionalYear = *upd.ProfessionalYear
		a.ProfessionalYearPoints = rules.ProfessionalYearPoints(a.ProfessionalYear)
	}
	if upd.PartnerSkilled != nil || upd.PartnerCompetentEnglish != nil {
		if upd.PartnerSkilled != nil {
			a.PartnerSkilled = *upd.PartnerSkilled
		}
		if upd.PartnerCompetentEnglish != nil {
			a.PartnerCompetentEnglish = *upd.PartnerCompetentEnglish
		}
		a.PartnerSkillsPoints = rules.PartnerSkillsPoints(a.PartnerSkilled, a.PartnerCompetentEnglish)
	}

	a.Status = model.AssessmentStatusScored
	e.finalize(a, rules)
	a.UpdatedAt = e.Now()
	return nil
}

// scoreAll evaluates every category from normalized applicant attributes.
func (e *Engine) scoreAll(a *model.Assessment, rules visa.RuleSet, attrs *dto.ApplicantAttributes, now time.Time) {
	age := 0
	switch {
	case attrs.Age != nil:
		age = *attrs.Age
	default:
		if derived, ok := applicant.AgeFromDOB(attrs.DateOfBirth, now); ok {
			age = derived
		}
	}
	a.AgeValue = age
	a.AgePoints = rules.AgePoints(age)

	if highest, ok := visa.HighestQualification(attrs.Education); ok {
		a.EducationLevel = highest.Level
		a.EducationField = highest.Field
		a.EducationPoints = rules.EducationPoints(highest.Level)
	}

	if attrs.English != nil {
		a.EnglishLevel = attrs.English.Level
		a.EnglishTest = attrs.English.Test
		a.EnglishPoints = rules.EnglishPoints(attrs.English.Level)
	}

	overseas, australia := applicant.ExperienceYears(attrs.Experience, now)
	a.ExperienceOverseasYears = roundYears(overseas)
	a.ExperienceAustraliaYears = roundYears(australia)
	a.ExperiencePoints = rules.ExperiencePoints(overseas, australia)

	a.AustralianStudyPoints = rules.AustralianStudyPoints(a.AustralianStudy)
	a.SpecialistEducationPoints = rules.SpecialistEducationPoints(a.SpecialistEducation)
	a.CommunityLanguagePoints = rules.CommunityLanguagePoints(a.CommunityLanguage)
	a.RegionalStudyPoints = rules.RegionalStudyPoints(a.RegionalStudy)
	a.ProfessionalYearPoints = rules.ProfessionalYearPoints(a.ProfessionalYear)
	a.PartnerSkillsPoints = rules.PartnerSkillsPoints(a.PartnerSkilled, a.PartnerCompetentEnglish)
}

// finalize recomputes the total from the full category set, never from a
// delta, and derives eligibility from the subclass threshold.
func (e *Engine) finalize(a *model.Assessment, rules visa.RuleSet) {
	a.TotalPoints = a.CategoryTotal()
	status, notes := rules.Eligibility(a.TotalPoints)
	a.EligibilityStatus = string(status)
	a.EligibilityNotes = notes
}

func roundYears(years float64) float64 {
	return math.Round(years*100) / 100
}
