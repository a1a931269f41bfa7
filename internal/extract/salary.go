package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Salary holds the parsed compensation block of a vacancy. Absent
// bounds stay nil; Gross is nil when the text names neither gross nor
// net.
type Salary struct {
	From     *int
	To       *int
	Currency *string
	Gross    *bool
}

// SalaryFeatures are the record-level values derived from the bounds.
type SalaryFeatures struct {
	Mid        *float64
	RangeWidth *int
	IsExact    bool
}

// currencyHints is an ordered table: the first hint found in the text
// wins. Ruble markers come first since "руб." appears alongside
// converted USD figures on some layouts.
var currencyHints = []struct {
	hint string
	code string
}{
	{"руб", "RUB"},
	{"₽", "RUB"},
	{"USD", "USD"},
	{"EUR", "EUR"},
	{"$", "USD"},
	{"€", "EUR"},
	{"KZT", "KZT"},
}

var salaryNumberRe = regexp.MustCompile(`\d[\d ]*`)
var nonDigitRe = regexp.MustCompile(`\D`)

// ParseSalary parses a raw salary text fragment. Locale whitespace
// variants (NBSP, narrow NBSP) are normalized first; digit runs with
// embedded spaces count as one number. Range assignment follows the
// от/до markers, falling back on bare number counts.
func ParseSalary(text string) Salary {
	cleaned := strings.NewReplacer(" ", " ", " ", " ").Replace(text)
	lowered := strings.ToLower(cleaned)

	var salary Salary
	if strings.Contains(lowered, "до вычета") {
		salary.Gross = boolPtr(true)
	}
	if strings.Contains(lowered, "на руки") {
		salary.Gross = boolPtr(false)
	}

	for _, entry := range currencyHints {
		if strings.Contains(cleaned, entry.hint) {
			salary.Currency = strPtr(entry.code)
			break
		}
	}

	var numbers []int
	for _, raw := range salaryNumberRe.FindAllString(cleaned, -1) {
		n, err := strconv.Atoi(nonDigitRe.ReplaceAllString(raw, ""))
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}

	if len(numbers) == 0 {
		return salary
	}

	hasFrom := strings.Contains(cleaned, "от")
	hasTo := strings.Contains(cleaned, "до")
	switch {
	case hasFrom && hasTo && len(numbers) >= 2:
		salary.From = intPtr(numbers[0])
		salary.To = intPtr(numbers[1])
	case hasFrom:
		salary.From = intPtr(numbers[0])
	case hasTo:
		salary.To = intPtr(numbers[0])
	case len(numbers) == 2:
		salary.From = intPtr(numbers[0])
		salary.To = intPtr(numbers[1])
	case len(numbers) == 1:
		salary.From = intPtr(numbers[0])
	}
	return salary
}

// ComputeSalaryFeatures derives midpoint, range width and exactness.
// A single disclosed bound counts as an exact figure with zero width.
func ComputeSalaryFeatures(from, to *int) SalaryFeatures {
	var f SalaryFeatures
	switch {
	case from != nil && to != nil:
		f.Mid = floatPtr(float64(*from+*to) / 2)
		f.RangeWidth = intPtr(*to - *from)
	case from != nil:
		f.Mid = floatPtr(float64(*from))
		f.IsExact = true
		f.RangeWidth = intPtr(0)
	case to != nil:
		f.Mid = floatPtr(float64(*to))
		f.IsExact = true
		f.RangeWidth = intPtr(0)
	}
	return f
}

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string    { return &v }
func boolPtr(v bool) *bool       { return &v }
