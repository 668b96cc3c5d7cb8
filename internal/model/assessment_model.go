package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AssessmentStatusDraft  = "draft"
	AssessmentStatusScored = "scored"
)

// Assessment is one visa points assessment for a client. Category point
// fields and total_points are owned by the assessment engine; total_points is
// always the sum of the category fields.
type Assessment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"type:varchar(64);index" json:"user_id"`
	ClientID   string    `gorm:"type:varchar(64);index" json:"client_id"`
	DocumentID string    `gorm:"type:varchar(64)" json:"document_id"`

	VisaSubclass   string `gorm:"type:varchar(10)" json:"visa_subclass"`
	VisaName       string `gorm:"type:varchar(100)" json:"visa_name"`
	OccupationCode string `gorm:"type:varchar(10)" json:"occupation_code"`
	OccupationName string `gorm:"type:varchar(255)" json:"occupation_name"`

	Status            string `gorm:"type:varchar(20)" json:"status"`             // draft, scored
	EligibilityStatus string `gorm:"type:varchar(30)" json:"eligibility_status"` // undetermined, potentially_eligible, not_eligible
	EligibilityNotes  string `gorm:"type:text" json:"eligibility_notes"`

	AgeValue  int `json:"age_value"`
	AgePoints int `json:"age_points"`

	EnglishLevel  string `gorm:"type:varchar(20)" json:"english_level"`
	EnglishTest   string `gorm:"type:varchar(20)" json:"english_test"`
	EnglishPoints int    `json:"english_points"`

	EducationLevel  string `gorm:"type:varchar(50)" json:"education_level"`
	EducationField  string `gorm:"type:varchar(100)" json:"education_field"`
	EducationPoints int    `json:"education_points"`

	ExperienceOverseasYears  float64 `json:"experience_overseas_years"`
	ExperienceAustraliaYears float64 `json:"experience_australia_years"`
	ExperiencePoints         int     `json:"experience_points"`

	AustralianStudy         bool `json:"australian_study"`
	SpecialistEducation     bool `json:"specialist_education"`
	CommunityLanguage       bool `json:"community_language"`
	RegionalStudy           bool `json:"regional_study"`
	ProfessionalYear        bool `json:"professional_year"`
	PartnerSkilled          bool `json:"partner_skilled"`
	PartnerCompetentEnglish bool `json:"partner_competent_english"`

	AustralianStudyPoints     int `json:"australian_study_points"`
	SpecialistEducationPoints int `json:"specialist_education_points"`
	PartnerSkillsPoints       int `json:"partner_skills_points"`
	CommunityLanguagePoints   int `json:"community_language_points"`
	RegionalStudyPoints       int `json:"regional_study_points"`
	ProfessionalYearPoints    int `json:"professional_year_points"`

	TotalPoints int `json:"total_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Assessment) TableName() string {
	return "visa_assessments"
}

// CategoryTotal sums the current per-category point fields. The engine calls
// this after every mutation so the stored total can never drift from the
// categories.
func (a *Assessment) CategoryTotal() int {
	return a.AgePoints +
		a.EnglishPoints +
		a.EducationPoints +
		a.ExperiencePoints +
		a.AustralianStudyPoints +
		a.SpecialistEducationPoints +
		a.PartnerSkillsPoints +
		a.CommunityLanguagePoints +
		a.RegionalStudyPoints +
		a.ProfessionalYearPoints
}
