package extract

import (
	"strings"
)

// DescriptionStats are length/structure counts over the plain-text
// description.
type DescriptionStats struct {
	LenChars   int
	LenWords   int
	Bullets    int
	Paragraphs int
}

// ComputeDescriptionStats counts characters, words, bullet lines and
// blank-line-separated paragraphs. A non-empty description always has
// at least one paragraph.
func ComputeDescriptionStats(description string) DescriptionStats {
	stats := DescriptionStats{LenChars: len([]rune(description))}
	if description != "" {
		stats.LenWords = len(strings.Fields(description))
	}
	lines := strings.Split(description, "\n")
	stats.Bullets = CountBullets(lines)

	prevBlank := true
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			if prevBlank {
				stats.Paragraphs++
			}
			prevBlank = false
		} else {
			prevBlank = true
		}
	}
	if stats.Paragraphs == 0 && description != "" {
		stats.Paragraphs = 1
	}
	return stats
}

// CountBullets counts lines starting with a list marker.
func CountBullets(lines []string) int {
	count := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "•") {
			count++
		}
	}
	return count
}

// Sections are the description split at its heading keywords.
type Sections struct {
	Duties       string
	Requirements string
	Conditions   string
	NiceToHave   string
}

var sectionHeadings = []struct {
	target   string
	keywords []string
}{
	{"duties", []string{"обязанности", "что делать", "responsibilit"}},
	{"requirements", []string{"требован", "requirements"}},
	{"conditions", []string{"услови", "conditions", "we offer"}},
	{"nice_to_have", []string{"будет плюсом", "nice to have", "желательно"}},
}

// SplitDescriptionSections partitions newline-separated description
// text into duties/requirements/conditions/nice-to-have blocks. A line
// matching a heading keyword switches the current block; lines before
// the first heading are dropped.
func SplitDescriptionSections(text string) Sections {
	var sections Sections
	current := ""
	for _, line := range strings.Split(text, "\n") {
		lowered := strings.ToLower(strings.TrimSpace(line))
		heading := ""
		for _, h := range sectionHeadings {
			for _, kw := range h.keywords {
				if strings.Contains(lowered, kw) {
					heading = h.target
					break
				}
			}
			if heading != "" {
				break
			}
		}
		if heading != "" {
			current = heading
			continue
		}
		switch current {
		case "duties":
			sections.Duties += line + "\n"
		case "requirements":
			sections.Requirements += line + "\n"
		case "conditions":
			sections.Conditions += line + "\n"
		case "nice_to_have":
			sections.NiceToHave += line + "\n"
		}
	}
	return sections
}

// CountSkillHits counts how many of the already-detected skill/tech
// flags are mentioned in the given text section. The flag name minus
// its has_/skill_ prefix serves as the search term; each flag key
// counts at most once.
func CountSkillHits(text string, flagMaps ...map[string]bool) int {
	lowered := strings.ToLower(text)
	hits := make(map[string]bool)
	for _, mapping := range flagMaps {
		for key, isTrue := range mapping {
			if !isTrue {
				continue
			}
			pattern := strings.TrimPrefix(strings.TrimPrefix(key, "has_"), "skill_")
			if strings.Contains(lowered, pattern) {
				hits[key] = true
			}
		}
	}
	return len(hits)
}
