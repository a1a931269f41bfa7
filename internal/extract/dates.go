package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	daysAgoRe     = regexp.MustCompile(`(\d+)\s+дн`)
	literalDateRe = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)
	wordDateRe    = regexp.MustCompile(`(\d{1,2})\s+([а-яА-Я]+)(?:\s+(\d{4}))?`)
)

// monthStems maps Russian month-name stems to month numbers. Stems
// cover the genitive forms used in "10 марта" style dates.
var monthStems = []struct {
	stem  string
	month time.Month
}{
	{"январ", time.January},
	{"феврал", time.February},
	{"март", time.March},
	{"апрел", time.April},
	{"мая", time.May},
	{"май", time.May},
	{"июн", time.June},
	{"июл", time.July},
	{"август", time.August},
	{"сентябр", time.September},
	{"октябр", time.October},
	{"ноябр", time.November},
	{"декабр", time.December},
}

// NormalizePublishedAt resolves a raw "published" phrase against the
// current instant. Resolution order: сегодня, вчера, "N дней назад",
// a literal DD.MM.YYYY, then "D <month> [year]" with the year
// defaulting to now's. Anything unparseable is a silent (nil, nil),
// never an error.
func NormalizePublishedAt(rawText string, now time.Time) (*string, *int) {
	if rawText == "" {
		return nil, nil
	}
	lowered := strings.ToLower(rawText)

	var pubDate time.Time
	var ok bool
	switch {
	case strings.Contains(lowered, "сегодня"):
		pubDate, ok = now, true
	case strings.Contains(lowered, "вчера"):
		pubDate, ok = now.AddDate(0, 0, -1), true
	default:
		if m := daysAgoRe.FindStringSubmatch(lowered); m != nil {
			days, _ := strconv.Atoi(m[1])
			pubDate, ok = now.AddDate(0, 0, -days), true
		} else if m := literalDateRe.FindStringSubmatch(rawText); m != nil {
			day, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			pubDate, ok = time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
		} else if m := wordDateRe.FindStringSubmatch(lowered); m != nil {
			day, _ := strconv.Atoi(m[1])
			year := now.Year()
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
			}
			for _, entry := range monthStems {
				if strings.Contains(m[2], entry.stem) {
					pubDate = time.Date(year, entry.month, day, 0, 0, 0, 0, now.Location())
					ok = true
					break
				}
			}
		}
	}

	if !ok {
		return nil, nil
	}

	iso := pubDate.Format("2006-01-02")
	ageDays := daysBetween(pubDate, now)
	return &iso, &ageDays
}

// daysBetween compares calendar dates, ignoring the time of day.
func daysBetween(from, to time.Time) int {
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate).Hours() / 24)
}
