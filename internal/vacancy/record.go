package vacancy

import (
	"reflect"
	"strconv"
)

// Record is one scraped job posting, flattened to the full output
// schema. Nullable numerics and tri-state booleans are pointers; the
// keyword flags are plain bools because an absent keyword is a
// confident negative, not missing data. A Record is built once by the
// assembler, optionally enriched in place by the employer enricher
// (employer_* fields only), and never mutated afterwards.
type Record struct {
	VacancyID   string `csv:"vacancy_id" json:"vacancy_id"`
	Title       string `csv:"title" json:"title"`
	Company     string `csv:"company" json:"company"`
	SalaryFrom  *int   `csv:"salary_from" json:"salary_from"`
	SalaryTo    *int   `csv:"salary_to" json:"salary_to"`
	Currency    *string `csv:"currency" json:"currency"`
	SalaryGross *bool  `csv:"salary_gross" json:"salary_gross"`
	SalaryMid   *float64 `csv:"salary_mid" json:"salary_mid"`
	SalaryRangeWidth *int `csv:"salary_range_width" json:"salary_range_width"`
	SalaryIsExact    bool `csv:"salary_is_exact" json:"salary_is_exact"`

	City               string `csv:"city" json:"city"`
	Address            string `csv:"address" json:"address"`
	HasMetro           bool   `csv:"has_metro" json:"has_metro"`
	MetroPrimary       string `csv:"metro_primary" json:"metro_primary"`
	MetroCount         int    `csv:"metro_count" json:"metro_count"`
	AddressHasDistrict bool   `csv:"address_has_district" json:"address_has_district"`
	SearchAreaID       int    `csv:"search_area_id" json:"search_area_id"`

	Experience       string `csv:"experience" json:"experience"`
	ExpMinYears      *int   `csv:"exp_min_years" json:"exp_min_years"`
	ExpMaxYears      *int   `csv:"exp_max_years" json:"exp_max_years"`
	ExpIsNoExperience bool  `csv:"exp_is_no_experience" json:"exp_is_no_experience"`

	EmploymentType string `csv:"employment_type" json:"employment_type"`
	Schedule       string `csv:"schedule" json:"schedule"`
	WorkFormatRaw  string `csv:"work_format_raw" json:"work_format_raw"`
	WorkFormat     string `csv:"work_format" json:"work_format"`
	IsRemote       bool   `csv:"is_remote" json:"is_remote"`
	IsHybrid       bool   `csv:"is_hybrid" json:"is_hybrid"`

	Description                string `csv:"description" json:"description"`
	DescriptionLenChars        int    `csv:"description_len_chars" json:"description_len_chars"`
	DescriptionLenWords        int    `csv:"description_len_words" json:"description_len_words"`
	DescriptionBulletsCount    int    `csv:"description_bullets_count" json:"description_bullets_count"`
	DescriptionParagraphsCount int    `csv:"description_paragraphs_count" json:"description_paragraphs_count"`
	RequirementsCount          int    `csv:"requirements_count" json:"requirements_count"`
	ResponsibilitiesCount      int    `csv:"responsibilities_count" json:"responsibilities_count"`
	OptionalSkillsCount        int    `csv:"optional_skills_count" json:"optional_skills_count"`
	MustHaveSkillsCount        int    `csv:"must_have_skills_count" json:"must_have_skills_count"`

	Skills      string `csv:"skills" json:"skills"`
	SkillsCount int    `csv:"skills_count" json:"skills_count"`

	PublishedAtRaw  string  `csv:"published_at_raw" json:"published_at_raw"`
	PublishedAtISO  *string `csv:"published_at_iso" json:"published_at_iso"`
	VacancyAgeDays  *int    `csv:"vacancy_age_days" json:"vacancy_age_days"`
	ScrapedAtUTC    string  `csv:"scraped_at_utc" json:"scraped_at_utc"`
	VacancyCode     string  `csv:"vacancy_code" json:"vacancy_code"`
	Grade           string  `csv:"grade" json:"grade"`

	RoleBackend   bool `csv:"role_backend" json:"role_backend"`
	RoleFrontend  bool `csv:"role_frontend" json:"role_frontend"`
	RoleFullstack bool `csv:"role_fullstack" json:"role_fullstack"`
	RoleMobile    bool `csv:"role_mobile" json:"role_mobile"`
	RoleData      bool `csv:"role_data" json:"role_data"`
	RoleML        bool `csv:"role_ml" json:"role_ml"`
	RoleDevops    bool `csv:"role_devops" json:"role_devops"`
	RoleQA        bool `csv:"role_qa" json:"role_qa"`
	RoleManager   bool `csv:"role_manager" json:"role_manager"`
	RoleProduct   bool `csv:"role_product" json:"role_product"`
	RoleAnalyst   bool `csv:"role_analyst" json:"role_analyst"`

	HasPython     bool `csv:"has_python" json:"has_python"`
	HasJava       bool `csv:"has_java" json:"has_java"`
	HasKotlin     bool `csv:"has_kotlin" json:"has_kotlin"`
	HasCsharp     bool `csv:"has_csharp" json:"has_csharp"`
	HasCpp        bool `csv:"has_cpp" json:"has_cpp"`
	HasGo         bool `csv:"has_go" json:"has_go"`
	HasPhp        bool `csv:"has_php" json:"has_php"`
	HasJavascript bool `csv:"has_javascript" json:"has_javascript"`
	HasTypescript bool `csv:"has_typescript" json:"has_typescript"`
	HasScala      bool `csv:"has_scala" json:"has_scala"`
	HasRust       bool `csv:"has_rust" json:"has_rust"`
	HasRuby       bool `csv:"has_ruby" json:"has_ruby"`
	HasDjango     bool `csv:"has_django" json:"has_django"`
	HasFlask      bool `csv:"has_flask" json:"has_flask"`
	HasFastapi    bool `csv:"has_fastapi" json:"has_fastapi"`
	HasDotnet     bool `csv:"has_dotnet" json:"has_dotnet"`
	HasSpring     bool `csv:"has_spring" json:"has_spring"`
	HasNodejs     bool `csv:"has_nodejs" json:"has_nodejs"`
	HasExpress    bool `csv:"has_express" json:"has_express"`
	HasNestjs     bool `csv:"has_nestjs" json:"has_nestjs"`
	HasReact      bool `csv:"has_react" json:"has_react"`
	HasVue        bool `csv:"has_vue" json:"has_vue"`
	HasAngular    bool `csv:"has_angular" json:"has_angular"`
	HasNextjs     bool `csv:"has_nextjs" json:"has_nextjs"`
	HasNuxt       bool `csv:"has_nuxt" json:"has_nuxt"`
	HasSvelte     bool `csv:"has_svelte" json:"has_svelte"`
	HasPandas     bool `csv:"has_pandas" json:"has_pandas"`
	HasNumpy      bool `csv:"has_numpy" json:"has_numpy"`
	HasSklearn    bool `csv:"has_sklearn" json:"has_sklearn"`
	HasPytorch    bool `csv:"has_pytorch" json:"has_pytorch"`
	HasTensorflow bool `csv:"has_tensorflow" json:"has_tensorflow"`
	HasAirflow    bool `csv:"has_airflow" json:"has_airflow"`
	HasSpark      bool `csv:"has_spark" json:"has_spark"`
	HasKafka      bool `csv:"has_kafka" json:"has_kafka"`
	HasDocker     bool `csv:"has_docker" json:"has_docker"`
	HasKubernetes bool `csv:"has_kubernetes" json:"has_kubernetes"`
	HasTerraform  bool `csv:"has_terraform" json:"has_terraform"`
	HasAnsible    bool `csv:"has_ansible" json:"has_ansible"`
	HasJenkins    bool `csv:"has_jenkins" json:"has_jenkins"`
	HasGitlabCI   bool `csv:"has_gitlab_ci" json:"has_gitlab_ci"`
	HasCICD       bool `csv:"has_cicd" json:"has_cicd"`

	SkillSQL            bool `csv:"skill_sql" json:"skill_sql"`
	SkillExcel          bool `csv:"skill_excel" json:"skill_excel"`
	SkillPowerBI        bool `csv:"skill_powerbi" json:"skill_powerbi"`
	SkillTableau        bool `csv:"skill_tableau" json:"skill_tableau"`
	SkillClickhouse     bool `csv:"skill_clickhouse" json:"skill_clickhouse"`
	SkillBigquery       bool `csv:"skill_bigquery" json:"skill_bigquery"`
	SkillR              bool `csv:"skill_r" json:"skill_r"`
	SkillAirflow        bool `csv:"skill_airflow" json:"skill_airflow"`
	SkillABTesting      bool `csv:"skill_ab_testing" json:"skill_ab_testing"`
	SkillProductMetrics bool `csv:"skill_product_metrics" json:"skill_product_metrics"`

	CoreDataSkillsCount int `csv:"core_data_skills_count" json:"core_data_skills_count"`
	MLStackCount        int `csv:"ml_stack_count" json:"ml_stack_count"`
	TechStackSize       int `csv:"tech_stack_size" json:"tech_stack_size"`

	BenefitDMS                bool `csv:"benefit_dms" json:"benefit_dms"`
	BenefitInsurance          bool `csv:"benefit_insurance" json:"benefit_insurance"`
	BenefitSickLeavePaid      bool `csv:"benefit_sick_leave_paid" json:"benefit_sick_leave_paid"`
	BenefitVacationPaid       bool `csv:"benefit_vacation_paid" json:"benefit_vacation_paid"`
	BenefitRelocation         bool `csv:"benefit_relocation" json:"benefit_relocation"`
	BenefitSport              bool `csv:"benefit_sport" json:"benefit_sport"`
	BenefitEducation          bool `csv:"benefit_education" json:"benefit_education"`
	BenefitRemoteCompensation bool `csv:"benefit_remote_compensation" json:"benefit_remote_compensation"`
	BenefitStock              bool `csv:"benefit_stock" json:"benefit_stock"`

	VacancyURL  string `csv:"vacancy_url" json:"vacancy_url"`
	EmployerURL string `csv:"employer_url" json:"employer_url"`

	EmployerRating              *float64 `csv:"employer_rating" json:"employer_rating"`
	EmployerReviewsCount        *int     `csv:"employer_reviews_count" json:"employer_reviews_count"`
	EmployerHasRemote           bool     `csv:"employer_has_remote" json:"employer_has_remote"`
	EmployerHasFlexibleSchedule bool     `csv:"employer_has_flexible_schedule" json:"employer_has_flexible_schedule"`
	EmployerHasMedInsurance     bool     `csv:"employer_has_med_insurance" json:"employer_has_med_insurance"`
	EmployerHasEducation        bool     `csv:"employer_has_education" json:"employer_has_education"`
	EmployerAccreditedIT        *bool    `csv:"employer_accredited_it" json:"employer_accredited_it"`
	EmployerType                *string  `csv:"employer_type" json:"employer_type"`

	EduRequired  *bool   `csv:"edu_required" json:"edu_required"`
	EduLevel     *string `csv:"edu_level" json:"edu_level"`
	EduTechnical *bool   `csv:"edu_technical" json:"edu_technical"`
	EduMathOrCS  *bool   `csv:"edu_math_or_cs" json:"edu_math_or_cs"`

	LangEnglishRequired *bool   `csv:"lang_english_required" json:"lang_english_required"`
	LangEnglishLevel    *string `csv:"lang_english_level" json:"lang_english_level"`
	LangOtherCount      *int    `csv:"lang_other_count" json:"lang_other_count"`

	IsForJuniors   bool `csv:"is_for_juniors" json:"is_for_juniors"`
	AllowsStudents bool `csv:"allows_students" json:"allows_students"`
	HasMentoring   bool `csv:"has_mentoring" json:"has_mentoring"`
	HasTestTask    bool `csv:"has_test_task" json:"has_test_task"`

	SoftCommunication       bool `csv:"soft_communication" json:"soft_communication"`
	SoftTeamwork            bool `csv:"soft_teamwork" json:"soft_teamwork"`
	SoftLeadership          bool `csv:"soft_leadership" json:"soft_leadership"`
	SoftResultOriented      bool `csv:"soft_result_oriented" json:"soft_result_oriented"`
	SoftStructuredThinking  bool `csv:"soft_structured_thinking" json:"soft_structured_thinking"`
	SoftCriticalThinking    bool `csv:"soft_critical_thinking" json:"soft_critical_thinking"`

	DomainFinance   bool `csv:"domain_finance" json:"domain_finance"`
	DomainEcommerce bool `csv:"domain_ecommerce" json:"domain_ecommerce"`
	DomainTelecom   bool `csv:"domain_telecom" json:"domain_telecom"`
	DomainState     bool `csv:"domain_state" json:"domain_state"`
	DomainRetail    bool `csv:"domain_retail" json:"domain_retail"`
	DomainITProduct bool `csv:"domain_it_product" json:"domain_it_product"`
}

var recordType = reflect.TypeOf(Record{})

// CSVHeader returns the full output schema in struct field order.
// Every record renders every column; absent values become empty cells,
// never omitted columns.
func CSVHeader() []string {
	header := make([]string, 0, recordType.NumField())
	for i := 0; i < recordType.NumField(); i++ {
		header = append(header, recordType.Field(i).Tag.Get("csv"))
	}
	return header
}

// CSVRow renders the record's values in header order.
func (r *Record) CSVRow() []string {
	value := reflect.ValueOf(r).Elem()
	row := make([]string, 0, recordType.NumField())
	for i := 0; i < recordType.NumField(); i++ {
		row = append(row, formatCSVValue(value.Field(i)))
	}
	return row
}

func formatCSVValue(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return ""
	}
}
