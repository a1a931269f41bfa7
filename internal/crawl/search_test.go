package crawl

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchPage(t *testing.T) {
	html := `<html><body>
	<a data-qa="serp-item__title" href="/vacancy/111?from=search&query=go">Go разработчик</a>
	<a data-qa="serp-item__title" href="https://hh.ru/vacancy/222">Python разработчик</a>
	<a href="/vacancy/333">не тайтл</a>
	</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	links := ParseSearchPage(doc, "https://hh.ru")
	assert.Equal(t, []string{
		"https://hh.ru/vacancy/111",
		"https://hh.ru/vacancy/222",
	}, links)
}

func TestParseSearchPageEmpty(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, ParseSearchPage(doc, "https://hh.ru"))
}
