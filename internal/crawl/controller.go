package crawl

import (
	"context"
	mathrand "math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"skillra/vacancyworker/config"
	"skillra/vacancyworker/helpers"
	"skillra/vacancyworker/internal/employer"
	"skillra/vacancyworker/internal/vacancy"
	"skillra/vacancyworker/logger"
)

// Summary is the externally observed outcome of one crawl cycle.
type Summary struct {
	Processed     int
	Admitted      int
	Duplicates    int
	NoSalary      int
	FetchFailures int
	Started       time.Time
	Duration      time.Duration
}

// Controller walks the area x experience-shard x page space
// sequentially, admits salary-disclosing vacancies and enriches them
// with employer data. One instance drives one crawl cycle at a time.
type Controller struct {
	cfg      *config.Config
	fetcher  *helpers.Fetcher
	enricher *employer.Enricher
	rnd      *mathrand.Rand
	log      *logger.Logger
}

func NewController(cfg *config.Config, fetcher *helpers.Fetcher, enricher *employer.Enricher) *Controller {
	return &Controller{
		cfg:      cfg,
		fetcher:  fetcher,
		enricher: enricher,
		rnd:      mathrand.New(mathrand.NewSource(time.Now().UnixNano())),
		log:      logger.ForComponent("crawl"),
	}
}

// Run executes one full crawl cycle. The returned records all passed
// the salary admissibility gate and are unique by vacancy id; the
// summary counts everything else. A canceled context stops the crawl
// and returns what was collected so far.
func (c *Controller) Run(ctx context.Context) ([]*vacancy.Record, Summary) {
	summary := Summary{Started: time.Now()}
	scrapedAt := time.Now().UTC()
	seen := make(map[string]struct{})
	var collected []*vacancy.Record

areas:
	for _, areaID := range c.cfg.AreaIDs {
		for _, shard := range ExperienceShards {
			shardLabel := shard
			if shardLabel == "" {
				shardLabel = "all_experience"
			}
			page := 0
			for len(collected) < c.cfg.Limit {
				if ctx.Err() != nil {
					break areas
				}
				if c.cfg.MaxPages > 0 && page >= c.cfg.MaxPages {
					break
				}

				links, status, stop := c.fetchSearchPage(areaID, shard, shardLabel, page)
				if stop {
					break
				}
				if status >= 400 {
					c.log.Warn().Int("status", status).Int("area", areaID).Str("shard", shardLabel).Msg("search request failed, rotating proxy")
					c.fetcher.RotateProxy()
					c.sleep(ctx, c.cfg.RequestDelay)
					continue
				}
				if len(links) == 0 {
					c.log.Info().Int("area", areaID).Str("shard", shardLabel).Msg("shard exhausted")
					break
				}

				for _, link := range links {
					if ctx.Err() != nil {
						break areas
					}
					record, outcome := c.processVacancy(link, areaID, scrapedAt)
					summary.Processed++
					switch outcome {
					case outcomeFetchFailed:
						summary.FetchFailures++
						continue
					case outcomeNoSalary:
						summary.NoSalary++
						continue
					}
					if _, dup := seen[record.VacancyID]; dup {
						summary.Duplicates++
						continue
					}
					seen[record.VacancyID] = struct{}{}
					c.enricher.Enrich(record)
					collected = append(collected, record)
					summary.Admitted++
					if summary.Admitted%50 == 0 {
						c.log.Info().Int("admitted", summary.Admitted).Msg("crawl progress")
					}
					if len(collected) >= c.cfg.Limit {
						break
					}
					c.sleep(ctx, c.jitteredDelay())
				}

				page++
				c.fetcher.RotateProxy()
				c.sleep(ctx, c.cfg.RequestDelay)
			}
		}
	}

	summary.Duration = time.Since(summary.Started)
	c.log.Info().
		Int("processed", summary.Processed).
		Int("admitted", summary.Admitted).
		Int("duplicates", summary.Duplicates).
		Int("no_salary", summary.NoSalary).
		Int("fetch_failures", summary.FetchFailures).
		Dur("duration", summary.Duration).
		Msg("crawl cycle finished")
	return collected, summary
}

// fetchSearchPage returns the vacancy links of one search page. stop
// is true when the shard's pagination is over: a 404 means the site's
// depth cap was hit, a transport failure means retries are exhausted.
func (c *Controller) fetchSearchPage(areaID int, shard, shardLabel string, page int) ([]string, int, bool) {
	params := url.Values{}
	params.Set("text", c.cfg.Query)
	params.Set("area", strconv.Itoa(areaID))
	params.Set("only_with_salary", "true")
	params.Set("page", strconv.Itoa(page))
	params.Set("items_on_page", "20")
	params.Set("order_by", "publication_time")
	if shard != "" {
		params.Set("experience", shard)
	}

	c.log.Debug().Int("area", areaID).Str("shard", shardLabel).Int("page", page).Msg("fetching search page")
	body, status, err := c.fetcher.Get(c.cfg.SearchURL, params)
	if err != nil {
		c.log.Error().Err(err).Int("area", areaID).Str("shard", shardLabel).Msg("search fetch failed")
		return nil, status, true
	}
	if status == http.StatusNotFound {
		c.log.Debug().Int("area", areaID).Str("shard", shardLabel).Int("page", page).Msg("pagination limit reached")
		return nil, status, true
	}
	if status >= 400 {
		return nil, status, false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		c.log.Error().Err(err).Msg("search page parse failed")
		return nil, status, true
	}
	return ParseSearchPage(doc, c.cfg.VacancyHost), status, false
}

type vacancyOutcome int

const (
	outcomeAdmitted vacancyOutcome = iota
	outcomeFetchFailed
	outcomeNoSalary
)

func (c *Controller) processVacancy(link string, areaID int, scrapedAt time.Time) (*vacancy.Record, vacancyOutcome) {
	body, status, err := c.fetcher.Get(link, nil)
	if err != nil || body == "" {
		c.log.Warn().Str("url", link).Int("status", status).Msg("skipping vacancy, page unavailable")
		return nil, outcomeFetchFailed
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		c.log.Warn().Err(err).Str("url", link).Msg("skipping vacancy, parse failed")
		return nil, outcomeFetchFailed
	}
	record := vacancy.ParseVacancyPage(doc, link, areaID, scrapedAt)
	if record == nil {
		return nil, outcomeNoSalary
	}
	return record, outcomeAdmitted
}

func (c *Controller) jitteredDelay() time.Duration {
	return c.cfg.RequestDelay + time.Duration(c.rnd.Int63n(int64(c.cfg.RequestDelay)+1))
}

func (c *Controller) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
