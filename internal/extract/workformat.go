package extract

import (
	"regexp"
	"strings"
)

// WorkFormat is the normalized work arrangement of a vacancy plus the
// raw values it was derived from.
type WorkFormat struct {
	Raw      string
	Format   string // remote/hybrid/office/field/unknown
	IsRemote bool
	IsHybrid bool
	Schedule string
}

var (
	workFormatRe = regexp.MustCompile(`Формат работы:\s*([^\n]+)`)
	scheduleRe   = regexp.MustCompile(`(?i)график работы:\s*([^\n]+)`)
)

// ClassifyWorkFormat derives the work arrangement from the page's full
// text and the description. Remote wins over hybrid wins over office;
// the remote signal is an OR over the labelled "Формат работы" value
// and free-text mentions, which occasionally disagree with each other.
func ClassifyWorkFormat(fullText, descriptionText string) WorkFormat {
	var wf WorkFormat
	if m := workFormatRe.FindStringSubmatch(fullText); m != nil {
		wf.Raw = strings.TrimSpace(m[1])
	}
	rawLowered := strings.ToLower(wf.Raw)
	combined := strings.ToLower(fullText + "\n" + descriptionText)

	wf.IsRemote = strings.Contains(rawLowered, "удал") ||
		strings.Contains(combined, "удал") ||
		strings.Contains(combined, "можно удаленно") ||
		strings.Contains(combined, "можно удалённо")
	wf.IsHybrid = strings.Contains(rawLowered, "гибрид") || strings.Contains(combined, "hybrid")

	switch {
	case wf.IsRemote:
		wf.Format = "remote"
	case wf.IsHybrid:
		wf.Format = "hybrid"
	case strings.Contains(rawLowered, "офис") || strings.Contains(combined, "в офисе"):
		wf.Format = "office"
	case strings.Contains(combined, "разъезд") || strings.Contains(combined, "field"):
		wf.Format = "field"
	default:
		wf.Format = "unknown"
	}

	if m := scheduleRe.FindStringSubmatch(fullText); m != nil {
		wf.Schedule = strings.TrimSpace(m[1])
	}
	return wf
}

var employmentRe = regexp.MustCompile(`(Полная занятость|Частичная занятость|Стажировка|Проектная работа|Волонтёрство)`)

// FindEmployment matches the employment-type label in the full page
// text; "" when none of the known labels occurs.
func FindEmployment(fullText string) string {
	if m := employmentRe.FindStringSubmatch(fullText); m != nil {
		return m[1]
	}
	return ""
}

var vacancyCodeRe = regexp.MustCompile(`Код вакансии\s+([\w-]+)`)

// FindVacancyCode extracts the internal vacancy code shown on some
// layouts.
func FindVacancyCode(fullText string) string {
	if m := vacancyCodeRe.FindStringSubmatch(fullText); m != nil {
		return m[1]
	}
	return ""
}

var publishedAtRe = regexp.MustCompile(`Вакансия опубликована\s+(.+?)\s+в\s+.+`)

// FindPublishedAt extracts the raw publication phrase ("сегодня",
// "15 марта") from the "Вакансия опубликована ... в <city>" line.
func FindPublishedAt(fullText string) string {
	if m := publishedAtRe.FindStringSubmatch(fullText); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
