package dto

// ApplicantAttributes is the structured view of a CV produced by the LLM
// extraction step. Every field is optional; the scoring engine treats missing
// data as a zero-point default rather than an error.
type ApplicantAttributes struct {
	FullName    string       `json:"full_name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Nationality string       `json:"nationality"`
	DateOfBirth string       `json:"date_of_birth"` // YYYY-MM-DD after normalization
	Age         *int         `json:"age"`           // used when date_of_birth is absent
	Education   []Education  `json:"education"`
	Experience  []Experience `json:"experience"`
	English     *English     `json:"english"`
}

type Education struct {
	Level       string `json:"level"` // phd, masters, bachelors, diploma, trade, certificate
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Country     string `json:"country"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type Experience struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	Country   string `json:"country"`
	StartDate string `json:"start_date"`
	// EndDate may be "present" for a current position.
	EndDate       string   `json:"end_date"`
	DurationYears *float64 `json:"duration_years"` // explicit duration when dates are unclear
}

type English struct {
	Level  string        `json:"level"` // superior, proficient, competent
	Test   string        `json:"test"`  // IELTS, PTE, ...
	Scores EnglishScores `json:"scores"`
}

type EnglishScores struct {
	Overall   *float64 `json:"overall"`
	Reading   *float64 `json:"reading"`
	Writing   *float64 `json:"writing"`
	Speaking  *float64 `json:"speaking"`
	Listening *float64 `json:"listening"`
}
