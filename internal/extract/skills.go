package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"skillra/vacancyworker/helpers"
)

// skillTagSelectors are the known markup variants for skill tags,
// broadest last. All of them are collected in one pass.
var skillTagSelectors = []string{
	"[data-qa='bloko-tag__text']",
	"[data-qa='skills-element']",
	"span[data-qa='bloko-tag__text']",
	"span[class*='bloko-tag__text']",
	"div[class*='bloko-tag__text']",
	"a[class*='bloko-tag__text']",
	"[data-qa*='skill']",
	"div[data-qa='skills-block'] span",
}

var skillNameRe = regexp.MustCompile(`"name"\s*:\s*"([^"]+)"`)

// ExtractSkills pulls the key-skill list out of a vacancy page. The
// strategies form a fallback chain, each tried only when the previous
// one produced nothing: tag markup selectors, the "Ключевые навыки"
// heading and its siblings, embedded script/JSON-LD blocks, and finally
// any element whose data-qa mentions skills. The result is deduplicated
// case-insensitively preserving first-seen order and casing.
func ExtractSkills(doc *goquery.Document) []string {
	var raw []string

	for _, selector := range skillTagSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			raw = append(raw, strings.TrimSpace(s.Text()))
		})
	}

	if len(raw) == 0 {
		raw = skillsFromHeading(doc)
	}
	if len(raw) == 0 {
		raw = skillsFromScripts(doc)
	}
	if len(raw) == 0 {
		doc.Find("div[data-qa*='skill']").First().Find("span, a, div").Each(func(_ int, s *goquery.Selection) {
			raw = append(raw, strings.TrimSpace(s.Text()))
		})
	}

	seen := make(map[string]bool, len(raw))
	var deduped []string
	for _, skill := range raw {
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if !seen[key] {
			seen[key] = true
			deduped = append(deduped, skill)
		}
	}
	return deduped
}

// skillsFromHeading locates the "Ключевые навыки" heading and collects
// span texts from it and its following siblings until enough tags are
// found.
func skillsFromHeading(doc *goquery.Document) []string {
	var heading *goquery.Selection
	doc.Find("h1, h2, h3, h4, div, p, span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(s.Text()), "ключевые навыки") && s.Children().Length() == 0 {
			heading = s
			return false
		}
		return true
	})
	if heading == nil {
		return nil
	}

	var tags []string
	section := heading.Parent()
	section.Find("span").Each(func(_ int, s *goquery.Selection) {
		tags = append(tags, strings.TrimSpace(s.Text()))
	})
	for sibling := section.Next(); sibling.Length() > 0 && len(tags) < 5; sibling = sibling.Next() {
		sibling.Find("span").Each(func(_ int, s *goquery.Selection) {
			tags = append(tags, strings.TrimSpace(s.Text()))
		})
	}
	return tags
}

// skillsFromScripts reads skills out of embedded script blocks: JSON-LD
// keySkills/skills arrays (with escape-variant retries, since the state
// object ships with inconsistent escaping) and a literal "name" regex
// sweep over blocks that mention keySkills.
func skillsFromScripts(doc *goquery.Document) []string {
	var names []string
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		if text == "" {
			return
		}
		if attr, _ := s.Attr("type"); attr == "application/ld+json" {
			for _, variant := range helpers.BuildVariants(text) {
				parsed := parseKeySkillsJSON(variant)
				if len(parsed) > 0 {
					names = append(names, parsed...)
					break
				}
			}
		}
		if strings.Contains(text, "keySkills") {
			for _, m := range skillNameRe.FindAllStringSubmatch(text, -1) {
				names = append(names, m[1])
			}
		}
	})
	return names
}

func parseKeySkillsJSON(text string) []string {
	var data interface{}
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil
	}
	entries, ok := data.([]interface{})
	if !ok {
		entries = []interface{}{data}
	}

	var names []string
	for _, entry := range entries {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		keySkills := obj["keySkills"]
		if keySkills == nil {
			keySkills = obj["skills"]
		}
		items, ok := keySkills.([]interface{})
		if !ok {
			continue
		}
		for _, item := range items {
			switch v := item.(type) {
			case string:
				names = append(names, v)
			case map[string]interface{}:
				if name, ok := v["name"].(string); ok {
					names = append(names, name)
				}
			}
		}
	}
	return names
}
