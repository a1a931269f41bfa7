package helpers

import (
	"html"
	"strconv"
	"strings"
)

// BuildVariants returns alternate decodings of a text fragment that may
// carry embedded JSON: the raw form, the HTML-entity-unescaped form,
// and backslash-unescaped forms. Pages embed the same state object with
// inconsistent escaping, so structured-data extraction tries each
// variant in order. Duplicates are dropped preserving order.
func BuildVariants(raw string) []string {
	variants := []string{raw}

	unescaped := html.UnescapeString(raw)
	if unescaped != raw {
		variants = append(variants, unescaped)
	}
	if strings.Contains(raw, "\\") {
		variants = append(variants, strings.ReplaceAll(raw, `\/`, "/"))
		variants = append(variants, strings.ReplaceAll(raw, `\"`, `"`))
		if decoded, ok := decodeUnicodeEscapes(raw); ok {
			variants = append(variants, decoded)
		}
	}

	seen := make(map[string]bool, len(variants))
	deduped := variants[:0]
	for _, v := range variants {
		if !seen[v] {
			seen[v] = true
			deduped = append(deduped, v)
		}
	}
	return deduped
}

// decodeUnicodeEscapes resolves \uXXXX escapes in the text, leaving
// everything else untouched. Returns ok=false when nothing changed.
func decodeUnicodeEscapes(raw string) (string, bool) {
	if !strings.Contains(raw, `\u`) {
		return raw, false
	}
	var b strings.Builder
	b.Grow(len(raw))
	changed := false
	for i := 0; i < len(raw); {
		if i+6 <= len(raw) && raw[i] == '\\' && raw[i+1] == 'u' {
			if code, err := strconv.ParseUint(raw[i+2:i+6], 16, 32); err == nil {
				b.WriteRune(rune(code))
				i += 6
				changed = true
				continue
			}
		}
		b.WriteByte(raw[i])
		i++
	}
	return b.String(), changed
}

// ExtractBalancedJSON returns the brace-balanced object starting at
// startIndex (which must point at or before the opening brace). Nested
// braces defeat regex-only scanning, hence the counter walk. Returns ""
// when the object never closes.
func ExtractBalancedJSON(text string, startIndex int) string {
	depth := 0
	started := false
	for idx := startIndex; idx < len(text); idx++ {
		switch text[idx] {
		case '{':
			depth++
			started = true
		case '}':
			depth--
			if started && depth == 0 {
				return text[startIndex : idx+1]
			}
		}
	}
	return ""
}
