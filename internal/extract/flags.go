package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// DetectFlags reports, for every flag in the dictionary, whether any of
// its patterns occurs as a case-insensitive substring of the text.
// Flags are independent of each other: adding a pattern to one flag
// never changes another, and dictionary iteration order is irrelevant.
func DetectFlags(text string, dict map[string][]string) map[string]bool {
	lowered := strings.ToLower(text)
	flags := make(map[string]bool, len(dict))
	for key, patterns := range dict {
		hit := false
		for _, pat := range patterns {
			if strings.Contains(lowered, strings.ToLower(pat)) {
				hit = true
				break
			}
		}
		flags[key] = hit
	}
	return flags
}

// compileWordPattern wraps a regex core with explicit word boundaries.
// RE2's \b is ASCII-only, so Cyrillic keywords need the boundary
// spelled out as "not a letter, digit or underscore".
func compileWordPattern(core string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?:^|[^\p{L}\p{N}_])(?:%s)(?:[^\p{L}\p{N}_]|$)`, core))
}

var compiledGrades = func() []struct {
	name     string
	patterns []*regexp.Regexp
} {
	out := make([]struct {
		name     string
		patterns []*regexp.Regexp
	}, 0, len(gradeGroups))
	for _, g := range gradeGroups {
		compiled := make([]*regexp.Regexp, 0, len(g.patterns))
		for _, p := range g.patterns {
			compiled = append(compiled, compileWordPattern(p))
		}
		out = append(out, struct {
			name     string
			patterns []*regexp.Regexp
		}{g.name, compiled})
	}
	return out
}()

// DetectGrade classifies the seniority tier of a posting. Known false
// positive spans ("lead generation") are stripped first, then the grade
// groups are tested in fixed priority order; the first match wins. A
// posting is assumed to target a single tier, so the result is one
// label, defaulting to "unknown".
func DetectGrade(text string) string {
	lowered := strings.ToLower(text)
	for _, stopword := range leadStopwords {
		lowered = strings.ReplaceAll(lowered, stopword, "")
	}

	for _, group := range compiledGrades {
		for _, pat := range group.patterns {
			if pat.MatchString(lowered) {
				return group.name
			}
		}
	}
	return "unknown"
}
