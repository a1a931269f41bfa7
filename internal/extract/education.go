package extract

import "strings"

// Education is the parsed education requirement block.
type Education struct {
	Required  *bool
	Level     *string // partial_higher/bachelor_or_higher/master_or_higher/any_he/none
	Technical *bool
	MathOrCS  *bool
}

// ParseEducation derives education requirements from title+description
// text. Absent signals stay nil rather than false: a posting silent on
// education is unknown, not "not required".
func ParseEducation(fullText string) Education {
	lowered := strings.ToLower(fullText)
	var edu Education

	switch {
	case containsAny(lowered, "высшее образование", "бакалавр", "магистр", "степень"):
		edu.Required = boolPtr(true)
	case strings.Contains(lowered, "образование"):
		edu.Required = boolPtr(true)
	case strings.Contains(lowered, "без образования") || strings.Contains(lowered, "можно без"):
		edu.Required = boolPtr(false)
	}

	switch {
	case strings.Contains(lowered, "неполное высшее"):
		edu.Level = strPtr("partial_higher")
	case strings.Contains(lowered, "бакалавр"):
		edu.Level = strPtr("bachelor_or_higher")
	case strings.Contains(lowered, "магистр"):
		edu.Level = strPtr("master_or_higher")
	case strings.Contains(lowered, "высшее"):
		edu.Level = strPtr("any_he")
	case edu.Required != nil && !*edu.Required:
		edu.Level = strPtr("none")
	}

	if strings.Contains(lowered, "техническое") {
		edu.Technical = boolPtr(true)
	}
	if containsAny(lowered, "математ", "информат", "кибернет", "прикладная математика") {
		edu.MathOrCS = boolPtr(true)
	}
	return edu
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
