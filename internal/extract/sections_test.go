package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDescriptionStats(t *testing.T) {
	description := "Мы ищем разработчика.\n\n- писать код\n- ревьюить код\n\nУдалённая работа."
	stats := ComputeDescriptionStats(description)

	assert.Equal(t, len([]rune(description)), stats.LenChars)
	assert.Equal(t, 11, stats.LenWords)
	assert.Equal(t, 2, stats.Bullets)
	assert.Equal(t, 3, stats.Paragraphs)
}

func TestComputeDescriptionStatsSingleParagraph(t *testing.T) {
	stats := ComputeDescriptionStats("Короткое описание без переносов")
	assert.Equal(t, 1, stats.Paragraphs)
	assert.Equal(t, 0, stats.Bullets)

	empty := ComputeDescriptionStats("")
	assert.Equal(t, 0, empty.Paragraphs)
	assert.Equal(t, 0, empty.LenChars)
	assert.Equal(t, 0, empty.LenWords)
}

func TestSplitDescriptionSections(t *testing.T) {
	text := "О компании\n" +
		"Обязанности:\n" +
		"- разработка сервисов\n" +
		"- поддержка продакшена\n" +
		"Требования:\n" +
		"- python\n" +
		"- docker\n" +
		"Будет плюсом:\n" +
		"- kafka\n" +
		"Условия:\n" +
		"- ДМС\n"

	sections := SplitDescriptionSections(text)
	assert.Contains(t, sections.Duties, "разработка сервисов")
	assert.Contains(t, sections.Requirements, "python")
	assert.Contains(t, sections.Requirements, "docker")
	assert.Contains(t, sections.NiceToHave, "kafka")
	assert.Contains(t, sections.Conditions, "ДМС")
	// Preamble before the first heading is dropped
	assert.NotContains(t, sections.Duties, "О компании")
}

func TestCountSkillHits(t *testing.T) {
	techFlags := map[string]bool{
		"has_python": true,
		"has_docker": true,
		"has_kafka":  false,
	}
	hits := CountSkillHits("- опыт с python\n- знание docker\n- kafka", techFlags)
	// kafka's flag is false, so only the two true flags count
	assert.Equal(t, 2, hits)

	assert.Equal(t, 0, CountSkillHits("", techFlags))
}
