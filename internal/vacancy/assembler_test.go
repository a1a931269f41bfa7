package vacancy

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scrapedAt = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

const sampleVacancyHTML = `<html><body>
<h1 data-qa="vacancy-title">Senior Python разработчик</h1>
<div data-qa="vacancy-salary">от 200 000 до 300 000 ₽ на руки</div>
<a data-qa="vacancy-company-name" href="/employer/123">Рога и Копыта</a>
<span data-qa="vacancy-view-raw-address">Москва, м. Тверская</span>
<span data-qa="vacancy-experience">3–6 лет</span>
<p data-qa="vacancy-view-employment-mode">Полная занятость</p>
<div data-qa="vacancy-description">
<p>Обязанности:</p>
<ul><li>писать код</li></ul>
<p>Требования:</p>
<ul><li>python</li><li>docker</li></ul>
</div>
<span data-qa="bloko-tag__text">Python</span>
<span data-qa="bloko-tag__text">Docker</span>
<p data-qa="vacancy-view-creation-time">Вакансия опубликована вчера в Москве</p>
</body></html>`

func parseSample(t *testing.T, html string) *Record {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return ParseVacancyPage(doc, "https://hh.ru/vacancy/987654", 113, scrapedAt)
}

func TestParseVacancyPage(t *testing.T) {
	record := parseSample(t, sampleVacancyHTML)
	require.NotNil(t, record)

	assert.Equal(t, "987654", record.VacancyID)
	assert.Equal(t, "Senior Python разработчик", record.Title)
	assert.Equal(t, "Рога и Копыта", record.Company)
	assert.Equal(t, "/employer/123", record.EmployerURL)
	assert.Equal(t, 113, record.SearchAreaID)

	require.NotNil(t, record.SalaryFrom)
	assert.Equal(t, 200000, *record.SalaryFrom)
	require.NotNil(t, record.SalaryTo)
	assert.Equal(t, 300000, *record.SalaryTo)
	require.NotNil(t, record.Currency)
	assert.Equal(t, "RUB", *record.Currency)
	require.NotNil(t, record.SalaryGross)
	assert.False(t, *record.SalaryGross)
	require.NotNil(t, record.SalaryMid)
	assert.Equal(t, 250000.0, *record.SalaryMid)

	assert.Equal(t, "Москва", record.City)
	assert.True(t, record.HasMetro)
	assert.Equal(t, "Тверская", record.MetroPrimary)

	require.NotNil(t, record.ExpMinYears)
	assert.Equal(t, 3, *record.ExpMinYears)
	require.NotNil(t, record.ExpMaxYears)
	assert.Equal(t, 6, *record.ExpMaxYears)
	assert.False(t, record.ExpIsNoExperience)

	assert.Equal(t, "Полная занятость", record.EmploymentType)
	assert.Equal(t, "senior", record.Grade)
	assert.True(t, record.HasPython)
	assert.True(t, record.HasDocker)
	assert.False(t, record.HasPhp)

	assert.Equal(t, "Python, Docker", record.Skills)
	assert.Equal(t, 2, record.SkillsCount)

	assert.Equal(t, "вчера", record.PublishedAtRaw)
	require.NotNil(t, record.PublishedAtISO)
	assert.Equal(t, "2024-03-09", *record.PublishedAtISO)
	require.NotNil(t, record.VacancyAgeDays)
	assert.Equal(t, 1, *record.VacancyAgeDays)
	assert.Equal(t, "2024-03-10T12:00:00Z", record.ScrapedAtUTC)

	assert.Equal(t, "https://hh.ru/vacancy/987654", record.VacancyURL)
	assert.Greater(t, record.DescriptionLenChars, 0)
	assert.Greater(t, record.MustHaveSkillsCount, 0)
}

func TestParseVacancyPageNoSalary(t *testing.T) {
	// The admissibility gate: no disclosed salary means no record
	html := strings.Replace(sampleVacancyHTML,
		`<div data-qa="vacancy-salary">от 200 000 до 300 000 ₽ на руки</div>`, "", 1)
	assert.Nil(t, parseSample(t, html))
}

func TestParseVacancyPageSalaryWithoutOtherFields(t *testing.T) {
	// A bare salary still produces a record with defaults
	record := parseSample(t, `<html><body>
		<div data-qa="vacancy-salary">от 100 000 руб.</div>
	</body></html>`)
	require.NotNil(t, record)
	assert.Equal(t, "Москва", record.City)
	assert.Equal(t, "unknown", record.Grade)
	assert.True(t, record.SalaryIsExact)
	assert.Empty(t, record.Title)
}
