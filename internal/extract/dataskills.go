package extract

import "strings"

// DataSkillInfo bundles the data-skill flags with the derived stack
// counts.
type DataSkillInfo struct {
	Flags              map[string]bool
	SkillsCount        int
	CoreDataSkillCount int
	MLStackCount       int
	TechStackSize      int
}

// DetectDataSkills runs the data-skill dictionary over the combined
// title/description/skills text and derives the aggregate counts:
// ML stack size over the modelling/pipeline technologies, the core
// analyst toolkit count (SQL, Excel, a BI tool, Python-or-R), and the
// overall stack size across tech and data-skill flags.
func DetectDataSkills(title, description string, skills []string, techFlags map[string]bool) DataSkillInfo {
	combined := title + "\n" + description + "\n" + strings.Join(skills, " ")
	dataFlags := DetectFlags(combined, DataSkillKeywords)

	mlCandidates := []bool{
		techFlags["has_sklearn"],
		techFlags["has_pytorch"],
		techFlags["has_tensorflow"],
		techFlags["has_airflow"] || dataFlags["skill_airflow"],
		techFlags["has_spark"],
		techFlags["has_kafka"],
	}
	mlStackCount := 0
	for _, v := range mlCandidates {
		if v {
			mlStackCount++
		}
	}

	coreCount := 0
	if dataFlags["skill_sql"] {
		coreCount++
	}
	if dataFlags["skill_excel"] {
		coreCount++
	}
	if dataFlags["skill_powerbi"] || dataFlags["skill_tableau"] {
		coreCount++
	}
	if techFlags["has_python"] || dataFlags["skill_r"] {
		coreCount++
	}

	stackSize := 0
	for _, v := range techFlags {
		if v {
			stackSize++
		}
	}
	for _, v := range dataFlags {
		if v {
			stackSize++
		}
	}

	return DataSkillInfo{
		Flags:              dataFlags,
		SkillsCount:        len(skills),
		CoreDataSkillCount: coreCount,
		MLStackCount:       mlStackCount,
		TechStackSize:      stackSize,
	}
}
