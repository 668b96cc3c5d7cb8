// Package applicant normalizes the loosely typed attributes produced by the
// CV extraction step before they reach the scoring engine.
package applicant

import (
	"strings"
	"time"

	"github.com/samyakjain16/SkillVisaFinderNew/internal/dto"
)

const (
	// UnknownDate marks a value that could not be parsed as a calendar date.
	// Missing personal data must not abort the extraction/scoring flow, so
	// bad dates degrade to this marker instead of an error.
	UnknownDate = "unknown"

	// Present marks an experience or education entry that is still ongoing.
	Present = "present"
)

// Layouts accepted for extracted date strings, most specific first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006/01/02",
	"02/01/2006",
	"01/2006",
	"2 January 2006",
	"January 2006",
	"Jan 2006",
	"2006",
}

// NormalizeDate converts a loosely formatted date string to YYYY-MM-DD.
// Empty input stays empty, "present" is preserved, anything unparseable
// becomes UnknownDate.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.EqualFold(s, Present) {
		return Present
	}
	if t, ok := parseDate(s); ok {
		return t.Format("2006-01-02")
	}
	return UnknownDate
}

// Normalize rewrites every date field of attrs in place.
func Normalize(attrs *dto.ApplicantAttributes) {
	if attrs == nil {
		return
	}
	attrs.DateOfBirth = NormalizeDate(attrs.DateOfBirth)
	for i := range attrs.Education {
		attrs.Education[i].StartDate = NormalizeDate(attrs.Education[i].StartDate)
		attrs.Education[i].EndDate = NormalizeDate(attrs.Education[i].EndDate)
	}
	for i := range attrs.Experience {
		attrs.Experience[i].StartDate = NormalizeDate(attrs.Experience[i].StartDate)
		attrs.Experience[i].EndDate = NormalizeDate(attrs.Experience[i].EndDate)
	}
}

// DurationYears returns the length of an experience entry in years. An
// explicit duration wins; otherwise it is derived from the start and end
// dates at month granularity. A "present" end date is evaluated against now,
// which makes the result a function of wall-clock time; callers needing
// point-in-time stability must snapshot the evaluation date.
func DurationYears(exp dto.Experience, now time.Time) float64 {
	if exp.DurationYears != nil {
		return *exp.DurationYears
	}
	start, ok := parseDate(exp.StartDate)
	if !ok {
		return 0
	}
	end := now
	if !strings.EqualFold(strings.TrimSpace(exp.EndDate), Present) {
		var endOK bool
		end, endOK = parseDate(exp.EndDate)
		if !endOK {
			return 0
		}
	}
	years := float64(end.Year()-start.Year()) + float64(end.Month()-start.Month())/12
	if years < 0 {
		return 0
	}
	return years
}

// ExperienceYears sums experience per entry by country. Australian entries
// accumulate into the second return value, everything else counts as
// overseas.
func ExperienceYears(exps []dto.Experience, now time.Time) (overseas, australia float64) {
	for _, exp := range exps {
		years := DurationYears(exp, now)
		if years <= 0 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(exp.Country), "australia") {
			australia += years
		} else {
			overseas += years
		}
	}
	return overseas, australia
}

// AgeFromDOB derives age in whole years from a normalized date of birth.
func AgeFromDOB(dob string, now time.Time) (int, bool) {
	t, ok := parseDate(dob)
	if !ok {
		return 0, false
	}
	age := now.Year() - t.Year()
	if now.Month() < t.Month() || (now.Month() == t.Month() && now.Day() < t.Day()) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, Present) || s == UnknownDate {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
