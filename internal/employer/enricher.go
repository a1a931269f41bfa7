package employer

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"skillra/vacancyworker/logger"
	"skillra/vacancyworker/internal/vacancy"
	"skillra/vacancyworker/services/cache"
)

// PageFetcher is the subset of the HTTP helper the enricher needs.
type PageFetcher interface {
	Get(rawURL string, params url.Values) (string, int, error)
}

const (
	employerCachePrefix = "employer:"
	employerCacheTTL    = 24 * time.Hour
)

// Enricher fills the employer columns of vacancy records, fetching
// each distinct employer profile at most once. Parsed profiles are
// kept in the cache service as JSON; failed fetches are cached as an
// empty Info so a bad profile never triggers repeat requests.
type Enricher struct {
	host     string
	fetcher  PageFetcher
	cacheSvc cache.CacheService
	log      *logger.Logger
}

func NewEnricher(host string, fetcher PageFetcher, cacheSvc cache.CacheService) *Enricher {
	return &Enricher{
		host:     host,
		fetcher:  fetcher,
		cacheSvc: cacheSvc,
		log:      logger.ForComponent("employer"),
	}
}

// Enrich resolves the record's employer URL, looks the profile up in
// the cache (fetching and parsing on a miss) and copies the extracted
// fields onto the record. Records without an employer URL are left
// untouched.
func (e *Enricher) Enrich(record *vacancy.Record) {
	employerURL := record.EmployerURL
	if strings.HasPrefix(employerURL, "/") {
		employerURL = e.host + employerURL
		record.EmployerURL = employerURL
	}
	if employerURL == "" {
		return
	}

	info := e.lookup(employerURL)

	record.EmployerRating = info.Rating
	record.EmployerReviewsCount = info.ReviewsCount
	record.EmployerHasRemote = info.HasRemote
	record.EmployerHasFlexibleSchedule = info.HasFlexibleSchedule
	record.EmployerHasMedInsurance = info.HasMedInsurance
	record.EmployerHasEducation = info.HasEducation
	record.EmployerAccreditedIT = info.AccreditedIT
	record.EmployerType = info.Type
}

func (e *Enricher) lookup(employerURL string) Info {
	key := employerCachePrefix + employerURL
	if cached, err := e.cacheSvc.Get(key); err == nil {
		var info Info
		if err := json.Unmarshal(cached, &info); err == nil {
			return info
		}
	}

	info := e.fetchInfo(employerURL)
	if encoded, err := json.Marshal(info); err == nil {
		if err := e.cacheSvc.Set(key, encoded, employerCacheTTL); err != nil {
			e.log.Warn().Err(err).Str("url", employerURL).Msg("employer cache write failed")
		}
	}
	return info
}

func (e *Enricher) fetchInfo(employerURL string) Info {
	body, status, err := e.fetcher.Get(employerURL, nil)
	if err != nil || body == "" {
		e.log.Warn().Str("url", employerURL).Int("status", status).Msg("employer page unavailable")
		return Info{}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		e.log.Warn().Err(err).Str("url", employerURL).Msg("employer page parse failed")
		return Info{}
	}
	return ParsePage(body, doc)
}
