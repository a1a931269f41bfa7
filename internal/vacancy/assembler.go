package vacancy

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"skillra/vacancyworker/helpers"
	"skillra/vacancyworker/internal/extract"
)

var vacancyIDRe = regexp.MustCompile(`vacancy/(\d+)`)

// ParseVacancyPage assembles a Record from one parsed vacancy page.
// It is a single-pass pure transformation: every extractor runs over
// the page, derived aggregates are computed, and the admissibility
// gate rejects postings without a disclosed salary by returning nil
// (a filtered-out outcome, not an error).
func ParseVacancyPage(doc *goquery.Document, url string, areaID int, scrapedAt time.Time) *Record {
	title := helpers.FirstText(doc, "h1[data-qa='vacancy-title']")

	salaryText := helpers.SelectionText(doc.Find("div[data-qa='vacancy-salary']").First(), " ")
	salary := extract.ParseSalary(salaryText)
	if salary.From == nil && salary.To == nil {
		return nil
	}
	salaryFeatures := extract.ComputeSalaryFeatures(salary.From, salary.To)

	companyAnchor := doc.Find("a[data-qa='vacancy-company-name']").First()
	company := strings.TrimSpace(companyAnchor.Text())
	employerURL, _ := companyAnchor.Attr("href")

	address := helpers.FirstText(doc, "span[data-qa='vacancy-view-raw-address'], span[data-qa='vacancy-view-location']")
	city := "Москва"
	if address != "" {
		city = strings.TrimSpace(strings.Split(address, ",")[0])
	}
	addressFeatures := extract.ExtractAddressFeatures(address)

	experience := helpers.FirstText(doc, "span[data-qa='vacancy-experience']")
	expRange := extract.ParseExperienceRange(experience)

	fullText := helpers.DocumentText(doc, "\n")
	employment := extract.FindEmployment(fullText)
	if employment == "" {
		employment = helpers.FirstText(doc, "p[data-qa='vacancy-view-employment-mode']")
	}

	descriptionNode := doc.Find("div[data-qa='vacancy-description']").First()
	description := helpers.SelectionText(descriptionNode, "\n\n")
	descriptionLines := helpers.SelectionText(descriptionNode, "\n")

	workFormat := extract.ClassifyWorkFormat(fullText, description)
	schedule := workFormat.Schedule
	if schedule == "" {
		schedule = helpers.FirstText(doc, "p[data-qa='vacancy-view-emp-mode']")
	}
	if schedule == "" {
		schedule = helpers.FirstText(doc, "p[data-qa='vacancy-view-schedule']")
	}

	skills := extract.ExtractSkills(doc)
	skillsStr := strings.Join(skills, ", ")

	publishedAtRaw := extract.FindPublishedAt(fullText)
	if publishedAtRaw == "" {
		publishedAtRaw = helpers.FirstText(doc, "p[data-qa='vacancy-view-creation-time']")
	}
	publishedAtISO, vacancyAgeDays := extract.NormalizePublishedAt(publishedAtRaw, scrapedAt)

	descStats := extract.ComputeDescriptionStats(description)
	sections := extract.SplitDescriptionSections(descriptionLines)

	requirementsCount := 0
	if sections.Requirements != "" {
		requirementsCount = extract.CountBullets(strings.Split(sections.Requirements, "\n"))
	}
	responsibilitiesCount := 0
	if sections.Duties != "" {
		responsibilitiesCount = extract.CountBullets(strings.Split(sections.Duties, "\n"))
	}

	combined := strings.ToLower(title + "\n" + description + "\n" + skillsStr)
	grade := extract.DetectGrade(combined)
	roleFlags := extract.DetectFlags(combined, extract.RoleKeywords)
	techFlags := extract.DetectFlags(combined, extract.TechKeywords)
	benefitFlags := extract.DetectFlags(combined, extract.BenefitKeywords)
	softFlags := extract.DetectFlags(combined, extract.SoftSkillKeywords)
	domainFlags := extract.DetectFlags(combined, extract.DomainKeywords)

	dataSkills := extract.DetectDataSkills(title, description, skills, techFlags)
	education := extract.ParseEducation(title + "\n" + description)
	languages := extract.ParseLanguages(title + "\n" + description)
	junior := extract.DetectJuniorSignals(combined, expRange.IsNoExperience)

	mustHaveCount := extract.CountSkillHits(sections.Requirements, techFlags, dataSkills.Flags)
	optionalCount := extract.CountSkillHits(sections.NiceToHave, techFlags, dataSkills.Flags)

	vacancyID := ""
	if m := vacancyIDRe.FindStringSubmatch(url); m != nil {
		vacancyID = m[1]
	}

	record := &Record{
		VacancyID:        vacancyID,
		Title:            title,
		Company:          company,
		SalaryFrom:       salary.From,
		SalaryTo:         salary.To,
		Currency:         salary.Currency,
		SalaryGross:      salary.Gross,
		SalaryMid:        salaryFeatures.Mid,
		SalaryRangeWidth: salaryFeatures.RangeWidth,
		SalaryIsExact:    salaryFeatures.IsExact,

		City:               city,
		Address:            address,
		HasMetro:           addressFeatures.HasMetro,
		MetroPrimary:       addressFeatures.MetroPrimary,
		MetroCount:         addressFeatures.MetroCount,
		AddressHasDistrict: addressFeatures.HasDistrict,
		SearchAreaID:       areaID,

		Experience:        experience,
		ExpMinYears:       expRange.MinYears,
		ExpMaxYears:       expRange.MaxYears,
		ExpIsNoExperience: expRange.IsNoExperience,

		EmploymentType: employment,
		Schedule:       schedule,
		WorkFormatRaw:  workFormat.Raw,
		WorkFormat:     workFormat.Format,
		IsRemote:       workFormat.IsRemote || benefitFlags["benefit_remote_compensation"],
		IsHybrid:       workFormat.IsHybrid,

		Description:                description,
		DescriptionLenChars:        descStats.LenChars,
		DescriptionLenWords:        descStats.LenWords,
		DescriptionBulletsCount:    descStats.Bullets,
		DescriptionParagraphsCount: descStats.Paragraphs,
		RequirementsCount:          requirementsCount,
		ResponsibilitiesCount:      responsibilitiesCount,
		OptionalSkillsCount:        optionalCount,
		MustHaveSkillsCount:        mustHaveCount,

		Skills:      skillsStr,
		SkillsCount: dataSkills.SkillsCount,

		PublishedAtRaw: publishedAtRaw,
		PublishedAtISO: publishedAtISO,
		VacancyAgeDays: vacancyAgeDays,
		ScrapedAtUTC:   scrapedAt.UTC().Format(time.RFC3339),
		VacancyCode:    extract.FindVacancyCode(fullText),
		Grade:          grade,

		CoreDataSkillsCount: dataSkills.CoreDataSkillCount,
		MLStackCount:        dataSkills.MLStackCount,
		TechStackSize:       dataSkills.TechStackSize,

		VacancyURL:  url,
		EmployerURL: employerURL,

		EduRequired:  education.Required,
		EduLevel:     education.Level,
		EduTechnical: education.Technical,
		EduMathOrCS:  education.MathOrCS,

		LangEnglishRequired: languages.EnglishRequired,
		LangEnglishLevel:    languages.EnglishLevel,
		LangOtherCount:      languages.OtherCount,

		IsForJuniors:   junior.IsForJuniors,
		AllowsStudents: junior.AllowsStudents,
		HasMentoring:   junior.HasMentoring,
		HasTestTask:    junior.HasTestTask,
	}

	applyFlags(record, roleFlags)
	applyFlags(record, techFlags)
	applyFlags(record, benefitFlags)
	applyFlags(record, softFlags)
	applyFlags(record, domainFlags)
	applyFlags(record, dataSkills.Flags)

	// skill_airflow doubles as a tech flag on some layouts
	record.SkillAirflow = record.SkillAirflow || techFlags["has_airflow"]

	return record
}

// flagFieldIndex maps csv tag names to struct field indices for the
// boolean flag columns.
var flagFieldIndex = func() map[string]int {
	index := make(map[string]int)
	for i := 0; i < recordType.NumField(); i++ {
		field := recordType.Field(i)
		if field.Type.Kind() == reflect.Bool {
			index[field.Tag.Get("csv")] = i
		}
	}
	return index
}()

// applyFlags copies a detector's flag map onto the record's matching
// boolean fields. Unknown flag names are ignored.
func applyFlags(r *Record, flags map[string]bool) {
	value := reflect.ValueOf(r).Elem()
	for name, set := range flags {
		if idx, ok := flagFieldIndex[name]; ok && set {
			value.Field(idx).SetBool(true)
		}
	}
}
