package crawl

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExperienceShards are the search filters the controller iterates to
// get around the site's pagination depth cap. The empty shard runs the
// unfiltered query first.
var ExperienceShards = []string{
	"",
	"noExperience",
	"between1And3",
	"between3And6",
	"moreThan6",
}

// ParseSearchPage pulls vacancy links off one search results page.
// Relative hrefs are made absolute against host and query strings are
// stripped so the same vacancy always yields the same URL.
func ParseSearchPage(doc *goquery.Document, host string) []string {
	var links []string
	doc.Find("a[data-qa='serp-item__title']").Each(func(_ int, anchor *goquery.Selection) {
		href, ok := anchor.Attr("href")
		if !ok || href == "" {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = host + href
		}
		links = append(links, strings.SplitN(href, "?", 2)[0])
	})
	return links
}
