package dto

// OccupationMatchDTO is one ranked match returned from CV analysis.
type OccupationMatchDTO struct {
	AnzscoCode          string  `json:"anzsco_code"`
	OccupationName      string  `json:"occupation_name"`
	List                string  `json:"list"`
	VisaSubclasses      string  `json:"visa_subclasses"`
	AssessingAuthority  string  `json:"assessing_authority"`
	ConfidenceScore     float64 `json:"confidence_score"`
	SuggestedOccupation string  `json:"suggested_occupation"`
}

type CVAnalysisResponse struct {
	DocumentID        string               `json:"document_id"`
	SuggestedNames    []string             `json:"suggested_occupations"`
	OccupationMatches []OccupationMatchDTO `json:"occupation_matches"`
}
