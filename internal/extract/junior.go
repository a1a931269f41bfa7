package extract

import "strings"

// JuniorSignals flag whether the posting looks accessible to juniors.
type JuniorSignals struct {
	IsForJuniors  bool
	AllowsStudents bool
	HasMentoring  bool
	HasTestTask   bool
}

// DetectJuniorSignals scans the combined text for entry-level markers.
// A no-experience requirement alone marks the posting junior-friendly.
func DetectJuniorSignals(fullText string, isNoExperience bool) JuniorSignals {
	lowered := strings.ToLower(fullText)
	return JuniorSignals{
		IsForJuniors:  containsAny(lowered, "junior", "стаж", "intern", "младший", "джун") || isNoExperience,
		AllowsStudents: containsAny(lowered, "студент", "подходит для студентов", "без полного высшего"),
		HasMentoring:  strings.Contains(lowered, "ментор") || strings.Contains(lowered, "наставнич"),
		HasTestTask:   containsAny(lowered, "тестовое задание", "test task", "coding challenge"),
	}
}
