package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAssessmentRequest struct {
	ClientID       string `json:"client_id"`
	VisaSubclass   string `json:"visa_subclass"`
	DocumentID     string `json:"document_id"`
	OccupationCode string `json:"occupation_code"`
	OccupationName string `json:"occupation_name"`
}

// AssessmentUpdate carries a partial update to a scored assessment. Nil fields
// are left untouched; only the categories whose inputs appear here are
// re-scored.
type AssessmentUpdate struct {
	OccupationCode *string `json:"occupation_code"`
	OccupationName *string `json:"occupation_name"`

	AgeValue       *int    `json:"age_value"`
	EnglishLevel   *string `json:"english_level"`
	EnglishTest    *string `json:"english_test"`
	EducationLevel *string `json:"education_level"`
	EducationField *string `json:"education_field"`

	ExperienceOverseasYears  *float64 `json:"experience_overseas_years"`
	ExperienceAustraliaYears *float64 `json:"experience_australia_years"`

	AustralianStudy         *bool `json:"australian_study"`
	SpecialistEducation     *bool `json:"specialist_education"`
	CommunityLanguage       *bool `json:"community_language"`
	RegionalStudy           *bool `json:"regional_study"`
	ProfessionalYear        *bool `json:"professional_year"`
	PartnerSkilled          *bool `json:"partner_skilled"`
	PartnerCompetentEnglish *bool `json:"partner_competent_english"`
}

type AssessmentDTO struct {
	ID                uuid.UUID `json:"id"`
	ClientID          string    `json:"client_id"`
	DocumentID        string    `json:"document_id,omitempty"`
	VisaSubclass      string    `json:"visa_subclass"`
	VisaName          string    `json:"visa_name"`
	OccupationCode    string    `json:"occupation_code,omitempty"`
	OccupationName    string    `json:"occupation_name,omitempty"`
	Status            string    `json:"status"`
	EligibilityStatus string    `json:"eligibility_status"`
	EligibilityNotes  string    `json:"eligibility_notes"`

	AgeValue                 int     `json:"age_value"`
	AgePoints                int     `json:"age_points"`
	EnglishLevel             string  `json:"english_level"`
	EnglishTest              string  `json:"english_test"`
	EnglishPoints            int     `json:"english_points"`
	EducationLevel           string  `json:"education_level"`
	EducationField           string  `json:"education_field"`
	EducationPoints          int     `json:"education_points"`
	ExperienceOverseasYears  float64 `json:"experience_overseas_years"`
	ExperienceAustraliaYears float64 `json:"experience_australia_years"`
	ExperiencePoints         int     `json:"experience_points"`

	AustralianStudyPoints     int `json:"australian_study_points"`
	SpecialistEducationPoints int `json:"specialist_education_points"`
	PartnerSkillsPoints       int `json:"partner_skills_points"`
	CommunityLanguagePoints   int `json:"community_language_points"`
	RegionalStudyPoints       int `json:"regional_study_points"`
	ProfessionalYearPoints    int `json:"professional_year_points"`

	TotalPoints int       `json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
