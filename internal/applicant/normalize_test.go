package applicant

import (
	"testing"
	"time"

	"github.com/samyakjain16/SkillVisaFinderNew/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "iso date", in: "1994-03-15", want: "1994-03-15"},
		{name: "iso year month", in: "2020-06", want: "2020-06-01"},
		{name: "slash date", in: "2020/06/15", want: "2020-06-15"},
		{name: "day first slash date", in: "15/06/2020", want: "2020-06-15"},
		{name: "month slash year", in: "06/2020", want: "2020-06-01"},
		{name: "long form", in: "15 June 2020", want: "2020-06-15"},
		{name: "month name year", in: "June 2020", want: "2020-06-01"},
		{name: "short month year", in: "Jun 2020", want: "2020-06-01"},
		{name: "bare year", in: "2020", want: "2020-01-01"},
		{name: "present preserved", in: "Present", want: "present"},
		{name: "empty stays empty", in: "", want: ""},
		{name: "whitespace only stays empty", in: "   ", want: ""},
		{name: "garbage degrades to unknown", in: "sometime in the 90s", want: "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}

func TestNormalizeRewritesAllDateFields(t *testing.T) {
	attrs := &dto.ApplicantAttributes{
		DateOfBirth: "March 1994",
		Education: []dto.Education{
			{Level: "bachelors", StartDate: "2012", EndDate: "garbage"},
		},
		Experience: []dto.Experience{
			{Title: "Engineer", StartDate: "Jan 2016", EndDate: "present"},
		},
	}

	Normalize(attrs)

	assert.Equal(t, "1994-03-01", attrs.DateOfBirth)
	assert.Equal(t, "2012-01-01", attrs.Education[0].StartDate)
	assert.Equal(t, "unknown", attrs.Education[0].EndDate)
	assert.Equal(t, "2016-01-01", attrs.Experience[0].StartDate)
	assert.Equal(t, "present", attrs.Experience[0].EndDate)
}

func TestNormalizeNilIsSafe(t *testing.T) {
	assert.NotPanics(t, func() { Normalize(nil) })
}

func TestDurationYears(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	explicit := 4.5

	tests := []struct {
		name string
		exp  dto.Experience
		want float64
	}{
		{
			name: "explicit duration wins over dates",
			exp:  dto.Experience{StartDate: "2020-01-01", EndDate: "2021-01-01", DurationYears: &explicit},
			want: 4.5,
		},
		{
			name: "whole years from dates",
			exp:  dto.Experience{StartDate: "2018-03-01", EndDate: "2021-03-01"},
			want: 3,
		},
		{
			name: "month granularity",
			exp:  dto.Experience{StartDate: "2020-01-01", EndDate: "2021-07-01"},
			want: 1.5,
		},
		{
			name: "present measured against now",
			exp:  dto.Experience{StartDate: "2024-06-01", EndDate: "present"},
			want: 2,
		},
		{
			name: "missing start",
			exp:  dto.Experience{EndDate: "2021-01-01"},
			want: 0,
		},
		{
			name: "unparseable end",
			exp:  dto.Experience{StartDate: "2020-01-01", EndDate: "unknown"},
			want: 0,
		},
		{
			name: "end before start clamps to zero",
			exp:  dto.Experience{StartDate: "2021-01-01", EndDate: "2020-01-01"},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DurationYears(tt.exp, now), 1e-9)
		})
	}
}

func TestExperienceYears(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	exps := []dto.Experience{
		{Title: "Engineer", Country: "India", StartDate: "2016-01-01", EndDate: "2020-01-01"},
		{Title: "Engineer", Country: "Australia", StartDate: "2020-01-01", EndDate: "2023-01-01"},
		{Title: "Senior Engineer", Country: "AUSTRALIA", StartDate: "2023-01-01", EndDate: "present"},
		{Title: "Intern", Country: "India", StartDate: "garbage", EndDate: "2015-01-01"},
	}

	overseas, australia := ExperienceYears(exps, now)

	assert.InDelta(t, 4, overseas, 1e-9)
	assert.InDelta(t, 6, australia, 1e-9)
}

func TestAgeFromDOB(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		dob    string
		want   int
		wantOK bool
	}{
		{name: "birthday passed", dob: "1994-03-15", want: 32, wantOK: true},
		{name: "birthday today", dob: "1994-06-15", want: 32, wantOK: true},
		{name: "birthday upcoming", dob: "1994-06-16", want: 31, wantOK: true},
		{name: "unknown marker", dob: "unknown", wantOK: false},
		{name: "empty", dob: "", wantOK: false},
		{name: "future dob", dob: "2030-01-01", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AgeFromDOB(tt.dob, now)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
