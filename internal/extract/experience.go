package extract

import "strings"

// ExperienceRange is the parsed experience requirement. Max stays nil
// for open-ended ranges ("более 6 лет").
type ExperienceRange struct {
	MinYears       *int
	MaxYears       *int
	IsNoExperience bool
}

// ParseExperienceRange maps the site's fixed experience vocabulary to
// a year range. This is a closed phrase match, not a general parser:
// any unrecognized phrasing yields an all-nil result.
func ParseExperienceRange(experience string) ExperienceRange {
	text := strings.ToLower(experience)
	switch {
	case strings.Contains(text, "не требуется"):
		return ExperienceRange{MinYears: intPtr(0), MaxYears: intPtr(0), IsNoExperience: true}
	case strings.Contains(text, "1–3") || strings.Contains(text, "1-3"):
		return ExperienceRange{MinYears: intPtr(1), MaxYears: intPtr(3)}
	case strings.Contains(text, "3–6") || strings.Contains(text, "3-6"):
		return ExperienceRange{MinYears: intPtr(3), MaxYears: intPtr(6)}
	case strings.Contains(text, "более 6") || strings.Contains(text, "6+"):
		return ExperienceRange{MinYears: intPtr(6)}
	}
	return ExperienceRange{}
}
