package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractSkillsFromTags(t *testing.T) {
	doc := docFromHTML(t, `<html><body>
		<span data-qa="bloko-tag__text">Python</span>
		<span data-qa="bloko-tag__text">SQL</span>
		<span data-qa="bloko-tag__text">python</span>
	</body></html>`)

	skills := ExtractSkills(doc)
	// Case-insensitive dedup keeps the first casing
	assert.Equal(t, []string{"Python", "SQL"}, skills)
}

func TestExtractSkillsFromHeading(t *testing.T) {
	doc := docFromHTML(t, `<html><body>
		<div>
			<h2>Ключевые навыки</h2>
			<span>Git</span>
			<span>Linux</span>
		</div>
	</body></html>`)

	skills := ExtractSkills(doc)
	assert.Contains(t, skills, "Git")
	assert.Contains(t, skills, "Linux")
}

func TestExtractSkillsFromJSONLD(t *testing.T) {
	doc := docFromHTML(t, `<html><head>
		<script type="application/ld+json">{"keySkills": ["Docker", {"name": "Kubernetes"}]}</script>
	</head><body></body></html>`)

	skills := ExtractSkills(doc)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, skills)
}

func TestExtractSkillsFromStateScript(t *testing.T) {
	// Inline state objects are not standalone JSON documents; the
	// name regex sweep still finds the skills
	doc := docFromHTML(t, `<html><head>
		<script>var state = {"keySkills": {"items": [{"name": "Ansible"}, {"name": "Terraform"}]}};</script>
	</head><body></body></html>`)

	skills := ExtractSkills(doc)
	assert.Equal(t, []string{"Ansible", "Terraform"}, skills)
}

func TestExtractSkillsEmpty(t *testing.T) {
	doc := docFromHTML(t, `<html><body><p>Без навыков</p></body></html>`)
	assert.Empty(t, ExtractSkills(doc))
}
