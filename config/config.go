package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Search configuration
	SearchURL   string
	VacancyHost string
	Query       string
	AreaIDs     []int
	Limit       int
	MaxPages    int // 0 means unlimited pagination depth

	// Fetcher configuration
	RequestTimeout time.Duration
	RequestDelay   time.Duration
	ProxyFile      string

	// Output configuration
	OutputPath string

	// Memcache configuration (optional; in-process cache when empty)
	MemcacheAddr string

	// Redis configuration (optional)
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Postgres configuration (optional)
	PostgresURL string

	// Telegram configuration (optional)
	TelegramToken  string
	TelegramChatID int64

	// Crawl scheduling
	CrawlInterval time.Duration
	RunOnce       bool

	// Environment
	Environment string
}

// DefaultAreaIDs are the HH area ids crawled when VACANCY_AREAS is unset.
// 113 Russia, 40 Belarus, 159 Kazakhstan, 160 Armenia, 5 Ukraine,
// 204 Azerbaijan, 237 Uzbekistan, 246 Kyrgyzstan, 111 Moldova,
// 51 Georgia, 194 Tajikistan, 218 Turkmenistan.
var DefaultAreaIDs = []int{113, 40, 159, 160, 5, 204, 237, 246, 111, 51, 194, 218}

const defaultQuery = `NAME:(программист OR разработчик OR !developer OR "software engineer" ` +
	`OR "software developer" OR "инженер-программист" OR devops ` +
	`OR "data engineer" OR "data scientist" OR "ML engineer" ` +
	`OR тестировщик OR "QA engineer" OR "QA automation" ` +
	`OR "automation QA" OR "инженер по автоматизации тестирования" OR тестир* ` +
	`OR "site reliability engineer" OR SRE OR "platform engineer" ` +
	`OR "infrastructure engineer" OR "инженер инфраструктуры" ` +
	`OR "system administrator" OR "system engineer" ` +
	`OR "системный администратор" OR "сисадмин" OR "системный инженер" ` +
	`OR "сетевой инженер" OR "сетевой администратор" OR "network engineer" ` +
	`OR "инженер по эксплуатации" OR "инженер сопровождения" ` +
	`OR "инженер технической поддержки" OR "инженер поддержки" ` +
	`OR "специалист технической поддержки" OR "специалист техподдержки" ` +
	`OR "support engineer" OR "technical support engineer" ` +
	`OR "IT support engineer" OR "helpdesk engineer" ` +
	`OR "администратор баз данных" OR "администратор БД" OR DBA ` +
	`OR "database administrator" OR "database engineer" ` +
	`OR "инженер по информационной безопасности" ` +
	`OR "инженер информационной безопасности" ` +
	`OR "специалист по информационной безопасности" ` +
	`OR "security engineer" OR DevSecOps ` +
	`OR "data analyst" OR "аналитик данных" OR "product analyst" ` +
	`OR "BI аналитик" OR "BI-аналитик" OR "BI analyst" ` +
	`OR "BI разработчик" OR "BI-разработчик" OR "BI developer" ` +
	`OR "ETL разработчик" OR "ETL developer" OR "ETL-инженер" ` +
	`OR "ETL engineer" OR "DWH разработчик" OR "data warehouse developer" ` +
	`OR "системный аналитик" OR "system analyst" ` +
	`OR "solution architect" OR "software architect" OR "system architect" ` +
	`OR "архитектор решений" OR "архитектор ПО" ` +
	`OR "архитектор программного обеспечения" OR "архитектор ИТ")`

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	limit, _ := strconv.Atoi(getEnv("VACANCY_LIMIT", "10000"))
	maxPages, _ := strconv.Atoi(getEnv("VACANCY_MAX_PAGES", "0"))
	timeoutSec, _ := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "20"))
	delayMs, _ := strconv.Atoi(getEnv("REQUEST_DELAY_MS", "1500"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	chatID, _ := strconv.ParseInt(getEnv("TELEGRAM_CHAT_ID", "0"), 10, 64)
	crawlInterval, _ := strconv.Atoi(getEnv("CRAWL_INTERVAL_HOURS", "24"))

	return Config{
		SearchURL:            getEnv("SEARCH_URL", "https://hh.ru/search/vacancy"),
		VacancyHost:          getEnv("VACANCY_HOST", "https://hh.ru"),
		Query:                getEnv("VACANCY_QUERY", defaultQuery),
		AreaIDs:              parseAreaIDs(getEnv("VACANCY_AREAS", "")),
		Limit:                limit,
		MaxPages:             maxPages,
		RequestTimeout:       time.Duration(timeoutSec) * time.Second,
		RequestDelay:         time.Duration(delayMs) * time.Millisecond,
		ProxyFile:            getEnv("PROXY_FILE", ""),
		OutputPath:           getEnv("OUTPUT_PATH", defaultOutputPath()),
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", ""),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "vacancies"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLen,
		PostgresURL:          getEnv("POSTGRES_URL", ""),
		TelegramToken:        getEnv("TELEGRAM_TOKEN", ""),
		TelegramChatID:       chatID,
		CrawlInterval:        time.Duration(crawlInterval) * time.Hour,
		RunOnce:              getEnv("RUN_ONCE", "") == "true",
		Environment:          getEnv("VACANCY_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for invalid combinations
func (c Config) Validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("VACANCY_LIMIT must be positive, got %d", c.Limit)
	}
	if len(c.AreaIDs) == 0 {
		return fmt.Errorf("no search areas configured")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH must not be empty")
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}
	return nil
}

// CronSpec renders the crawl interval as a robfig/cron schedule.
func (c Config) CronSpec() string {
	return "@every " + c.CrawlInterval.String()
}

func defaultOutputPath() string {
	timestamp := time.Now().Format("2006_01_02_15_04_05")
	return "data/hh_it_" + timestamp + ".csv"
}

func parseAreaIDs(raw string) []int {
	if raw == "" {
		return DefaultAreaIDs
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return DefaultAreaIDs
	}
	return ids
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
