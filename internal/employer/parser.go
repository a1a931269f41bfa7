package employer

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"skillra/vacancyworker/helpers"
)

// Info carries everything extracted from one employer page. Rating
// and reviews stay nil when no source yielded a plausible value; the
// advantage flags default to false.
type Info struct {
	Rating              *float64
	ReviewsCount        *int
	HasRemote           bool
	HasFlexibleSchedule bool
	HasMedInsurance     bool
	HasEducation        bool
	AccreditedIT        *bool
	Type                *string
}

var (
	employerReviewsRe = regexp.MustCompile(`(?i)"employerReviews"\s*:\s*\{`)

	totalRatingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)totalRating\s*[:=]\s*['"]?([0-9]+(?:[.,][0-9]+)?)`),
		regexp.MustCompile(`(?is)"totalRating"\s*:\s*(?:\{[^}]*?"value"\s*:\s*)?['"]?([0-9]+(?:[.,][0-9]+)?)['"]?`),
		regexp.MustCompile(`(?is)totalRating[^0-9]{0,20}([0-9]+(?:[.,][0-9]+)?)`),
		regexp.MustCompile(`(?is)totalRating\\"\s*:\s*\\"([0-9]+(?:[.,][0-9]+)?)`),
	}

	ratingValueRe = regexp.MustCompile(`(?i)ratingValue\s*[:=]\s*([0-9]+(?:[.,][0-9]+)?)`)
	reviewsWordRe = regexp.MustCompile("([0-9\\s  ]+)\\s+отзыв")
	reviewsJSONRe = regexp.MustCompile("\"reviewsCount\"\\s*:\\s*([0-9\\s  ]+)")

	advantagesRe  = regexp.MustCompile(`"advantages"\s*:\s*(\[[^\]]+\])`)
	accreditedRe  = regexp.MustCompile(`(?i)аккредитованн[а-я\s]+it`)
	nonDigitRe    = regexp.MustCompile(`[^0-9]`)
)

// ratingSelectors is the DOM fallback chain for the rating value, in
// priority order. Meta tags expose the value via content/value attrs.
var ratingSelectors = []string{
	"[data-qa='employer-rating-value']",
	"[data-qa='employer-review-rating-value']",
	"[data-qa='employer-header-rating-value']",
	"[itemprop='ratingValue']",
	"meta[itemprop='ratingValue']",
	"meta[name='ratingValue']",
	"[data-qa='employer-rating']",
	"[data-qa='employer-review-rating']",
	"[data-qa='rating-score']",
}

// ParsePage extracts rating, review count, advantage flags, IT
// accreditation and employer type from an employer profile page. The
// page embeds its review data as JSON with inconsistent escaping, so
// every JSON probe runs over a set of unescaping variants of the raw
// markup before falling back to regexes and DOM selectors.
func ParsePage(rawHTML string, doc *goquery.Document) Info {
	info := Info{}
	fullText := helpers.DocumentText(doc, "\n")

	rating, reviews := searchTotalRating(rawHTML)
	info.ReviewsCount = reviews

	if rating == nil {
		rating = ratingFromSelectors(doc)
	}
	if rating == nil {
		rating = ratingFromJSONLD(doc)
	}
	if rating == nil {
		rating = ratingFromScripts(doc)
	}
	if rating == nil {
		if m := ratingValueRe.FindStringSubmatch(rawHTML); m != nil {
			rating = normalizeRating(m[1])
		}
	}
	info.Rating = rating

	if info.ReviewsCount == nil {
		info.ReviewsCount = reviewsFromPage(rawHTML, doc, fullText)
	}

	advText := advantagesText(rawHTML, fullText)
	info.HasRemote = strings.Contains(advText, "удал") || strings.Contains(advText, "remote")
	info.HasFlexibleSchedule = strings.Contains(advText, "гибк") || strings.Contains(advText, "flexible")
	info.HasMedInsurance = strings.Contains(advText, "дмс") || strings.Contains(advText, "мед") || strings.Contains(advText, "insurance")
	info.HasEducation = strings.Contains(advText, "обуч") || strings.Contains(advText, "education") || strings.Contains(advText, "курсы")

	if accreditedRe.MatchString(fullText) || strings.Contains(strings.ToLower(fullText), "аккредитован") {
		accredited := true
		info.AccreditedIT = &accredited
	}

	typeText := strings.ToLower(strings.TrimSpace(doc.Find("[data-qa='employer-type']").First().Text()))
	if typeText == "" {
		typeText = strings.ToLower(fullText)
	}
	if strings.Contains(typeText, "прямой работодатель") {
		direct := "direct"
		info.Type = &direct
	} else if strings.Contains(typeText, "кадров") || strings.Contains(typeText, "агентств") {
		agency := "agency"
		info.Type = &agency
	}

	return info
}

// searchTotalRating walks every unescaping variant of the markup
// looking for an embedded employerReviews object, reading the review
// count opportunistically along the way, then falls back to raw
// totalRating regex probes.
func searchTotalRating(rawHTML string) (*float64, *int) {
	var reviewsCount *int
	for _, variant := range helpers.BuildVariants(rawHTML) {
		for _, loc := range employerReviewsRe.FindAllStringIndex(variant, -1) {
			fragment := helpers.ExtractBalancedJSON(variant, loc[1]-1)
			if fragment == "" {
				continue
			}
			for _, reviewJSON := range helpers.BuildVariants(fragment) {
				var data map[string]any
				if err := json.Unmarshal([]byte(reviewJSON), &data); err != nil {
					continue
				}
				if reviewsCount == nil {
					if count := reviewsFromObject(data); count != nil {
						reviewsCount = count
					}
				}
				candidate := normalizeRating(firstRatingValue(data))
				if candidate != nil {
					return candidate, reviewsCount
				}
			}
		}
	}
	for _, variant := range helpers.BuildVariants(rawHTML) {
		for _, pat := range totalRatingPatterns {
			for _, m := range pat.FindAllStringSubmatch(variant, -1) {
				if candidate := normalizeRating(m[1]); candidate != nil {
					return candidate, reviewsCount
				}
			}
		}
	}
	return nil, reviewsCount
}

func reviewsFromObject(data map[string]any) *int {
	candidates := []any{data["reviewsCount"]}
	if nested, ok := data["ratingInfo"].(map[string]any); ok {
		candidates = append(candidates, nested["reviewsCount"])
	}
	if nested, ok := data["rating"].(map[string]any); ok {
		candidates = append(candidates, nested["reviewsCount"])
	}
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if parsed := parseIntWithSpaces(stringify(c)); parsed != nil {
			return parsed
		}
	}
	return nil
}

func firstRatingValue(data map[string]any) any {
	if v := data["totalRating"]; scalarPresent(v) {
		return v
	}
	if v := data["rating"]; scalarPresent(v) {
		return v
	}
	if nested, ok := data["ratingInfo"].(map[string]any); ok {
		if v := nested["value"]; scalarPresent(v) {
			return v
		}
	}
	if nested, ok := data["rating"].(map[string]any); ok {
		if v := nested["value"]; scalarPresent(v) {
			return v
		}
	}
	return nil
}

func scalarPresent(v any) bool {
	switch v.(type) {
	case string, float64, json.Number:
		return true
	}
	return false
}

func ratingFromSelectors(doc *goquery.Document) *float64 {
	for _, selector := range ratingSelectors {
		element := doc.Find(selector).First()
		if element.Length() == 0 {
			continue
		}
		value, ok := element.Attr("content")
		if !ok || value == "" {
			value, ok = element.Attr("value")
		}
		if !ok || value == "" {
			value = strings.TrimSpace(element.Text())
		}
		if candidate := normalizeRating(value); candidate != nil {
			return candidate
		}
	}
	return nil
}

func ratingFromJSONLD(doc *goquery.Document) *float64 {
	var rating *float64
	doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, entry := range decodeJSONEntries(s.Text()) {
			agg, ok := entry["aggregateRating"].(map[string]any)
			if !ok {
				agg, ok = entry["rating"].(map[string]any)
			}
			if ok {
				for _, key := range []string{"ratingValue", "rating", "value"} {
					if rating = normalizeRating(agg[key]); rating != nil {
						return false
					}
				}
			} else if v, present := entry["ratingValue"]; present {
				if rating = normalizeRating(v); rating != nil {
					return false
				}
			}
		}
		return true
	})
	return rating
}

func ratingFromScripts(doc *goquery.Document) *float64 {
	var rating *float64
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, entry := range decodeJSONEntries(strings.TrimSpace(s.Text())) {
			for _, key := range []string{"rating", "ratingInfo", "ratingScore", "totalRating"} {
				val := entry[key]
				if nested, ok := val.(map[string]any); ok {
					val = nested["value"]
					if val == nil {
						val = nested["ratingValue"]
					}
					if val == nil {
						val = nested["score"]
					}
				}
				if rating = normalizeRating(val); rating != nil {
					return false
				}
			}
		}
		return true
	})
	return rating
}

func reviewsFromPage(rawHTML string, doc *goquery.Document, fullText string) *int {
	link := doc.Find("[data-qa='employer-reviews-link']").First()
	if link.Length() > 0 {
		if parsed := parseIntWithSpaces(strings.TrimSpace(link.Text())); parsed != nil {
			return parsed
		}
	}
	if m := reviewsWordRe.FindStringSubmatch(strings.ToLower(fullText)); m != nil {
		if parsed := parseIntWithSpaces(m[1]); parsed != nil {
			return parsed
		}
	}
	var fromJSONLD *int
	doc.Find("script[type='application/ld+json']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, entry := range decodeJSONEntries(s.Text()) {
			agg, ok := entry["aggregateRating"].(map[string]any)
			if !ok {
				agg, ok = entry["rating"].(map[string]any)
			}
			if !ok {
				continue
			}
			for _, key := range []string{"ratingCount", "reviewCount"} {
				if v := agg[key]; v != nil {
					if fromJSONLD = parseIntWithSpaces(stringify(v)); fromJSONLD != nil {
						return false
					}
				}
			}
		}
		return true
	})
	if fromJSONLD != nil {
		return fromJSONLD
	}
	if m := reviewsJSONRe.FindStringSubmatch(rawHTML); m != nil {
		return parseIntWithSpaces(m[1])
	}
	return nil
}

// advantagesText prefers the embedded advantages JSON array over the
// full page text, which keeps unrelated page copy from tripping the
// benefit flags.
func advantagesText(rawHTML, fullText string) string {
	m := advantagesRe.FindStringSubmatch(rawHTML)
	if m == nil {
		return strings.ToLower(fullText)
	}
	var items []string
	if err := json.Unmarshal([]byte(m[1]), &items); err != nil {
		return strings.ToLower(m[1])
	}
	return strings.ToLower(strings.Join(items, " "))
}

func decodeJSONEntries(text string) []map[string]any {
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case map[string]any:
		return []map[string]any{v}
	case []any:
		entries := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if entry, ok := item.(map[string]any); ok {
				entries = append(entries, entry)
			}
		}
		return entries
	}
	return nil
}

// normalizeRating accepts a comma- or dot-decimal value and discards
// anything outside the 0..5 scale rather than clamping it.
func normalizeRating(val any) *float64 {
	text := stringify(val)
	if text == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil {
		return nil
	}
	if parsed < 0 || parsed > 5 {
		return nil
	}
	return &parsed
}

// parseIntWithSpaces reads integers that use spaces or narrow NBSPs
// as thousands separators.
func parseIntWithSpaces(text string) *int {
	cleaned := nonDigitRe.ReplaceAllString(text, "")
	if cleaned == "" {
		return nil
	}
	parsed, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil
	}
	return &parsed
}

func stringify(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
