package extract

// Flag dictionaries are pure data: a flag is true iff any of its
// patterns occurs as a case-insensitive substring of the combined
// vacancy text. Patterns with leading/trailing spaces are deliberate
// word-ish guards (" go " vs "go").

// RoleKeywords classify the vacancy into broad role families.
var RoleKeywords = map[string][]string{
	"role_backend":   {"backend", "back-end", "бекенд", "бэкенд"},
	"role_frontend":  {"frontend", "front-end", "фронтенд", "frontend-разработчик"},
	"role_fullstack": {"fullstack", "full-stack", "фуллстек", "фул-стек"},
	"role_mobile":    {"android", "ios", "mobile", "мобиль", "swift", "kotlin"},
	"role_data":      {"data engineer", "etl", "dwh", "bi-", "bi ", "dwh "},
	"role_ml":        {"machine learning", "ml ", "ml-", "data scientist", "нейросет"},
	"role_devops":    {"devops", "sre", "site reliability", "platform engineer"},
	"role_qa":        {"qa", "тестир", "quality assurance", "тестиров"},
	"role_manager":   {"project manager", "delivery", "scrum", "agile coach", "pm "},
	"role_product":   {"product manager", "продакт", "product owner", "po "},
	"role_analyst":   {"аналитик", "analyst", "bi", "системный аналитик", "бизнес-аналитик"},
}

// TechKeywords flag concrete technologies in the stack.
var TechKeywords = map[string][]string{
	"has_python":     {"python"},
	"has_java":       {" java"},
	"has_kotlin":     {"kotlin"},
	"has_csharp":     {"c#", ".net", "dotnet"},
	"has_cpp":        {"c++"},
	"has_go":         {" golang", " go "},
	"has_php":        {"php"},
	"has_javascript": {"javascript", " js"},
	"has_typescript": {"typescript", " ts"},
	"has_scala":      {"scala"},
	"has_rust":       {"rust"},
	"has_ruby":       {"ruby", "rails"},
	"has_django":     {"django"},
	"has_flask":      {"flask"},
	"has_fastapi":    {"fastapi"},
	"has_dotnet":     {".net", "dotnet"},
	"has_spring":     {"spring"},
	"has_nodejs":     {"node.js", "nodejs", "node js"},
	"has_express":    {"express"},
	"has_nestjs":     {"nestjs"},
	"has_react":      {"react"},
	"has_vue":        {"vue"},
	"has_angular":    {"angular"},
	"has_nextjs":     {"next.js", "nextjs"},
	"has_nuxt":       {"nuxt"},
	"has_svelte":     {"svelte"},
	"has_pandas":     {"pandas"},
	"has_numpy":      {"numpy"},
	"has_sklearn":    {"sklearn", "scikit"},
	"has_pytorch":    {"pytorch"},
	"has_tensorflow": {"tensorflow"},
	"has_airflow":    {"airflow"},
	"has_spark":      {"spark"},
	"has_kafka":      {"kafka"},
	"has_docker":     {"docker"},
	"has_kubernetes": {"kubernetes", "k8s"},
	"has_terraform":  {"terraform"},
	"has_ansible":    {"ansible"},
	"has_jenkins":    {"jenkins"},
	"has_gitlab_ci":  {"gitlab ci", "gitlab-ci"},
	"has_cicd":       {"ci/cd", "ci cd", "continuous integration", "continuous delivery"},
}

// BenefitKeywords flag compensation-package perks.
var BenefitKeywords = map[string][]string{
	"benefit_dms":                 {"дмс", "медицинск", "медстрах"},
	"benefit_insurance":           {"страховка", "страхование"},
	"benefit_sick_leave_paid":     {"оплачиваемые больничные", "оплачиваемый больничный"},
	"benefit_vacation_paid":       {"оплачиваемый отпуск", "оплачиваемые отпуска"},
	"benefit_relocation":          {"релокац", "переезд"},
	"benefit_sport":               {"спорт", "фитнес", "спортзал", "доступ в фитнес"},
	"benefit_education":           {"обучени", "курсы", "конференц", "митап"},
	"benefit_remote_compensation": {"компенсац", "интернет", "электричества"},
	"benefit_stock":               {"опционы", "rsu", "акци", "опцион"},
}

// DataSkillKeywords flag analyst/data tooling.
var DataSkillKeywords = map[string][]string{
	"skill_sql": {
		" sql", "postgres", "postgresql", "mysql", "mariadb", "mssql",
		"sql server", "oracle", "clickhouse", "bigquery",
	},
	"skill_excel":      {"excel", "ms excel"},
	"skill_powerbi":    {"powerbi", "power bi"},
	"skill_tableau":    {"tableau"},
	"skill_clickhouse": {"clickhouse"},
	"skill_bigquery":   {"bigquery"},
	"skill_r":          {" язык r", " r ", " r,", " r.", "rstudio"},
	"skill_airflow":    {"airflow"},
	"skill_ab_testing": {"a/b", "ab test", "a/b тест", "a/b-тест"},
	"skill_product_metrics": {
		"продуктов", "метрик", "конверси", "воронк", "ltv", "retention", "unit-эконом",
	},
}

// SoftSkillKeywords flag soft-skill mentions.
var SoftSkillKeywords = map[string][]string{
	"soft_communication":       {"коммуникац", "общени"},
	"soft_teamwork":            {"команд", "team"},
	"soft_leadership":          {"лидер", "leadership", "руководств"},
	"soft_result_oriented":     {"результат", "result oriented", "ориентаци"},
	"soft_structured_thinking": {"структур", "структурное мышление"},
	"soft_critical_thinking":   {"критическ", "critical thinking"},
}

// DomainKeywords flag the employer's business domain.
var DomainKeywords = map[string][]string{
	"domain_finance":    {"банк", "финтех", "финансов"},
	"domain_ecommerce":  {"ecommerce", "маркетплейс", "marketplace", "e-commerce"},
	"domain_telecom":    {"телеком", "operator", "оператор связи"},
	"domain_state":      {"госкомпания", "государствен"},
	"domain_retail":     {"ритейл", "retail", "магазин"},
	"domain_it_product": {"saas", "продуктов", "it-продукт", "digital product"},
}

// gradeGroup is one seniority tier with its keyword patterns. The
// patterns are regex cores matched on whole-word boundaries (see
// compileWordPattern). Order matters: the first group with a match wins.
type gradeGroup struct {
	name     string
	patterns []string
}

var gradeGroups = []gradeGroup{
	{"intern", []string{`intern`, `стаж[её]р`}},
	{"junior", []string{`junior`, `младший`, `джуниор`, `джун`}},
	{"middle", []string{`middle\+?`, `мидл`, `mid`}},
	{"senior", []string{`senior\+?`, `сеньор`, `синьор`, `старший`}},
	{"lead", []string{`team\s*lead`, `tech(?:nical)?\s*lead`, `тим[- ]?лид`, `ведущ(?:ий|ая)`}},
	{"architect", []string{`architect`, `архитектор`}},
}

// leadStopwords are spans stripped before grade matching, so that
// "lead generation" postings do not register as lead grade.
var leadStopwords = []string{"lead generation", "лидогенера"}
