package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFlags(t *testing.T) {
	text := "Разработка на Python, опыт с Airflow и Docker"
	flags := DetectFlags(text, TechKeywords)

	assert.True(t, flags["has_python"])
	assert.True(t, flags["has_airflow"])
	assert.True(t, flags["has_docker"])
	assert.False(t, flags["has_php"])
	// Every dictionary key gets an entry, hit or not
	assert.Len(t, flags, len(TechKeywords))
}

func TestDetectFlagsIndependent(t *testing.T) {
	// Each flag depends only on its own patterns: a text hitting one
	// flag leaves all unrelated flags false, and repeated runs agree.
	flags := DetectFlags("kubernetes", TechKeywords)
	hits := 0
	for _, v := range flags {
		if v {
			hits++
		}
	}
	assert.Equal(t, 1, hits)
	assert.True(t, flags["has_kubernetes"])

	again := DetectFlags("kubernetes", TechKeywords)
	assert.Equal(t, flags, again)
}

func TestDetectGrade(t *testing.T) {
	cases := []struct {
		text  string
		grade string
	}{
		{"Стажёр-разработчик Python", "intern"},
		{"junior frontend developer", "junior"},
		{"Middle+ Java разработчик", "middle"},
		{"Senior Go Developer", "senior"},
		{"Старший разработчик", "senior"},
		{"Team Lead / Руководитель группы", "lead"},
		{"Ведущий инженер", "lead"},
		{"Архитектор решений", "architect"},
		{"Разработчик C++", "unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.grade, DetectGrade(tc.text), tc.text)
	}
}

func TestDetectGradePriorityOrder(t *testing.T) {
	// When several tiers are named the highest-priority group wins
	assert.Equal(t, "intern", DetectGrade("стажер или junior"))
	assert.Equal(t, "junior", DetectGrade("junior/middle разработчик"))
}

func TestDetectGradeLeadStopwords(t *testing.T) {
	// Marketing "lead generation" must not read as a lead position
	assert.Equal(t, "unknown", DetectGrade("специалист по lead generation"))
	assert.Equal(t, "unknown", DetectGrade("менеджер по лидогенерации"))
}

func TestDetectGradeWordBoundaries(t *testing.T) {
	// Substrings inside larger words do not count
	assert.Equal(t, "unknown", DetectGrade("international company"))
}
