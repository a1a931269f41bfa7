package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducation(t *testing.T) {
	edu := ParseEducation("Требуется высшее образование, бакалавр технических специальностей")
	require.NotNil(t, edu.Required)
	assert.True(t, *edu.Required)
	require.NotNil(t, edu.Level)
	assert.Equal(t, "bachelor_or_higher", *edu.Level)

	math := ParseEducation("Высшее образование: прикладная математика и информатика")
	require.NotNil(t, math.MathOrCS)
	assert.True(t, *math.MathOrCS)
}

func TestParseEducationSilent(t *testing.T) {
	// No education mention leaves everything nil, not false
	edu := ParseEducation("Ищем разработчика на Go")
	assert.Nil(t, edu.Required)
	assert.Nil(t, edu.Level)
	assert.Nil(t, edu.Technical)
	assert.Nil(t, edu.MathOrCS)
}

func TestParseLanguages(t *testing.T) {
	langs := ParseLanguages("Английский язык на уровне Upper-Intermediate (B2)")
	require.NotNil(t, langs.EnglishRequired)
	assert.True(t, *langs.EnglishRequired)
	require.NotNil(t, langs.EnglishLevel)
	assert.Equal(t, "upper_intermediate", *langs.EnglishLevel)

	reading := ParseLanguages("Английский для чтения документации")
	require.NotNil(t, reading.EnglishLevel)
	assert.Equal(t, "basic", *reading.EnglishLevel)
}

func TestParseLanguagesNone(t *testing.T) {
	langs := ParseLanguages("Знание русского языка")
	require.NotNil(t, langs.EnglishRequired)
	assert.False(t, *langs.EnglishRequired)
	require.NotNil(t, langs.EnglishLevel)
	assert.Equal(t, "none", *langs.EnglishLevel)
	require.NotNil(t, langs.OtherCount)
	assert.Equal(t, 0, *langs.OtherCount)
}

func TestParseLanguagesOtherCount(t *testing.T) {
	langs := ParseLanguages("Английский B1, немецкий или французский приветствуются")
	require.NotNil(t, langs.EnglishLevel)
	assert.Equal(t, "intermediate", *langs.EnglishLevel)
	require.NotNil(t, langs.OtherCount)
	assert.Equal(t, 2, *langs.OtherCount)
}

func TestDetectJuniorSignals(t *testing.T) {
	signals := DetectJuniorSignals("ищем junior разработчика, есть менторство и тестовое задание", false)
	assert.True(t, signals.IsForJuniors)
	assert.True(t, signals.HasMentoring)
	assert.True(t, signals.HasTestTask)
	assert.False(t, signals.AllowsStudents)
}

func TestDetectJuniorSignalsNoExperience(t *testing.T) {
	// No-experience postings count as junior-friendly even without
	// keyword mentions
	signals := DetectJuniorSignals("обычное описание", true)
	assert.True(t, signals.IsForJuniors)

	none := DetectJuniorSignals("обычное описание", false)
	assert.False(t, none.IsForJuniors)
}

func TestDetectDataSkills(t *testing.T) {
	techFlags := DetectFlags("python pytorch spark", TechKeywords)
	info := DetectDataSkills("Аналитик данных", "Нужны SQL, Excel и Tableau", []string{"SQL", "Power BI"}, techFlags)

	assert.True(t, info.Flags["skill_sql"])
	assert.Equal(t, 2, info.SkillsCount)
	// SQL + Excel + BI tool + Python
	assert.Equal(t, 4, info.CoreDataSkillCount)
	// pytorch + spark
	assert.Equal(t, 2, info.MLStackCount)
	assert.Greater(t, info.TechStackSize, 0)
}
