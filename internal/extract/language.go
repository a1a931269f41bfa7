package extract

import (
	"regexp"
	"strings"
)

// Languages are the parsed language requirements.
type Languages struct {
	EnglishRequired *bool
	EnglishLevel    *string // basic/intermediate/upper_intermediate/advanced/none
	OtherCount      *int
}

var (
	upperIntermediateRe = regexp.MustCompile(`upper[- ]?intermediate|b2`)
	intermediateRe      = regexp.MustCompile(`intermediate|b1`)
	advancedRe          = regexp.MustCompile(`advanced|fluent|свободн`)
)

var otherLanguageStems = []string{
	"немец", "german", "китай", "chinese", "француз", "french",
	"испан", "spanish", "итальян", "italian",
}

// ParseLanguages derives English requirement and level plus a count of
// other languages mentioned. Level detection goes from the most
// specific marker down; a bare documentation-reading mention maps to
// basic.
func ParseLanguages(fullText string) Languages {
	lowered := strings.ToLower(fullText)
	var langs Languages

	if strings.Contains(lowered, "англий") || strings.Contains(lowered, "english") {
		langs.EnglishRequired = boolPtr(true)
		switch {
		case upperIntermediateRe.MatchString(lowered):
			langs.EnglishLevel = strPtr("upper_intermediate")
		case intermediateRe.MatchString(lowered):
			langs.EnglishLevel = strPtr("intermediate")
		case advancedRe.MatchString(lowered):
			langs.EnglishLevel = strPtr("advanced")
		case strings.Contains(lowered, "документац"):
			langs.EnglishLevel = strPtr("basic")
		}
	} else {
		langs.EnglishRequired = boolPtr(false)
		langs.EnglishLevel = strPtr("none")
	}

	count := 0
	for _, stem := range otherLanguageStems {
		if strings.Contains(lowered, stem) {
			count++
		}
	}
	langs.OtherCount = intPtr(count)
	return langs
}
