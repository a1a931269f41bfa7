package worker

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/robfig/cron/v3"

	"skillra/vacancyworker/internal/crawl"
	"skillra/vacancyworker/internal/vacancy"
	"skillra/vacancyworker/logger"
	"skillra/vacancyworker/services/notify"
	"skillra/vacancyworker/services/publisher"
	"skillra/vacancyworker/services/sink"
)

// Worker runs crawl cycles on a cron schedule and fans each cycle's
// records out to the configured sinks and publisher. Cycles are
// single-flight: a tick that fires while the previous cycle is still
// running is skipped.
type Worker struct {
	controller *crawl.Controller
	sinks      []sink.RecordSink
	publisher  publisher.Publisher
	notifier   notify.Notifier
	cron       *cron.Cron
	spec       string
	running    atomic.Bool
	log        *logger.Logger
}

// New creates a worker firing on the given cron spec, e.g. "@every 6h".
// Publisher and notifier may be nil when not configured.
func New(
	controller *crawl.Controller,
	sinks []sink.RecordSink,
	pub publisher.Publisher,
	notifier notify.Notifier,
	spec string,
) *Worker {
	return &Worker{
		controller: controller,
		sinks:      sinks,
		publisher:  pub,
		notifier:   notifier,
		cron:       cron.New(),
		spec:       spec,
		log:        logger.ForComponent("worker"),
	}
}

// Start registers the cron job and kicks off one cycle immediately so
// the output is populated without waiting for the first tick.
func (w *Worker) Start(ctx context.Context) error {
	_, err := w.cron.AddFunc(w.spec, func() {
		w.RunCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	w.cron.Start()
	w.log.Info().Str("spec", w.spec).Msg("scheduler started")

	go w.RunCycle(ctx)
	return nil
}

// Stop shuts the scheduler down and waits for in-flight cron jobs.
func (w *Worker) Stop() {
	<-w.cron.Stop().Done()
	w.log.Info().Msg("scheduler stopped")
}

// RunCycle executes one crawl cycle end to end. Returns false when a
// previous cycle was still in flight and this one was skipped.
func (w *Worker) RunCycle(ctx context.Context) bool {
	if !w.running.CompareAndSwap(false, true) {
		w.log.Warn().Msg("previous crawl cycle still running, skipping tick")
		return false
	}
	defer w.running.Store(false)

	records, summary := w.controller.Run(ctx)
	w.deliver(ctx, records)

	if w.notifier != nil {
		if err := w.notifier.NotifySummary(summary); err != nil {
			w.log.Error().Err(err).Msg("summary notification failed")
		}
	}
	return true
}

func (w *Worker) deliver(ctx context.Context, records []*vacancy.Record) {
	for _, record := range records {
		for _, s := range w.sinks {
			if err := s.Write(ctx, record); err != nil {
				w.log.Error().Err(err).Str("vacancy_id", record.VacancyID).Msg("sink write failed")
			}
		}
		if w.publisher != nil {
			if err := w.publisher.Publish(record); err != nil {
				w.log.Error().Err(err).Str("vacancy_id", record.VacancyID).Msg("publish failed")
			}
		}
	}

	for _, s := range w.sinks {
		if err := s.Flush(ctx); err != nil {
			w.log.Error().Err(err).Msg("sink flush failed")
		}
	}
	if w.publisher != nil {
		if err := w.publisher.TrimStreams(); err != nil {
			w.log.Error().Err(err).Msg("stream trimming failed")
		}
	}
}
