package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExperienceRange(t *testing.T) {
	cases := []struct {
		text         string
		min, max     *int
		noExperience bool
	}{
		{"Опыт работы не требуется", intPtr(0), intPtr(0), true},
		{"Опыт работы 1–3 года", intPtr(1), intPtr(3), false},
		{"Опыт работы 1-3 года", intPtr(1), intPtr(3), false},
		{"Опыт работы 3–6 лет", intPtr(3), intPtr(6), false},
		{"Опыт работы более 6 лет", intPtr(6), nil, false},
		{"6+ лет", intPtr(6), nil, false},
	}
	for _, tc := range cases {
		got := ParseExperienceRange(tc.text)
		assert.Equal(t, tc.min, got.MinYears, tc.text)
		assert.Equal(t, tc.max, got.MaxYears, tc.text)
		assert.Equal(t, tc.noExperience, got.IsNoExperience, tc.text)
	}
}

func TestParseExperienceRangeUnknownPhrasing(t *testing.T) {
	// Anything outside the site's fixed vocabulary yields nil bounds
	got := ParseExperienceRange("От двух до пяти лет")
	require.Nil(t, got.MinYears)
	require.Nil(t, got.MaxYears)
	assert.False(t, got.IsNoExperience)

	empty := ParseExperienceRange("")
	assert.Nil(t, empty.MinYears)
	assert.Nil(t, empty.MaxYears)
}
