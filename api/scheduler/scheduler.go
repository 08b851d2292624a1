package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/floodwatch/floodwatch-sync-api/localcache"
	"github.com/floodwatch/floodwatch-sync-api/remote"
)

// Scheduler handles periodic background jobs that keep the local cache
// reconciled with the remote store
type Scheduler struct {
	cron     *cron.Cron
	reports  remote.ReportStore
	threads  remote.ThreadStore
	messages remote.MessageStore
	cache    *localcache.Cache
}

// New creates a new scheduler instance
func New(reports remote.ReportStore, threads remote.ThreadStore, messages remote.MessageStore, cache *localcache.Cache) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		reports:  reports,
		threads:  threads,
		messages: messages,
		cache:    cache,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Reconcile the cache against the remote store every 15 minutes. Change
	// feeds keep live subscribers current; the sweep repairs anything a
	// dropped feed or offline window left stale.
	_, err := s.cron.AddFunc("*/15 * * * *", s.Reconcile)
	if err != nil {
		zap.S().Errorw("failed to register reconciliation job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Cache reconciliation scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Cache reconciliation scheduler stopped")
}

// Reconcile pulls the current remote state and upserts it into the cache
func (s *Scheduler) Reconcile() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	zap.S().Info("Running cache reconciliation sweep")

	reports, err := s.reports.QueryRange(ctx, remote.All())
	if err != nil {
		zap.S().Errorw("failed to pull reports for reconciliation", "error", err)
	}
	for _, report := range reports {
		if err := s.cache.Reports().Put(ctx, report); err != nil {
			zap.S().Warnw("failed to reconcile report", "reportId", report.ID, "error", err)
		}
	}

	threads, err := s.threads.QueryRange(ctx, remote.All())
	if err != nil {
		zap.S().Errorw("failed to pull threads for reconciliation", "error", err)
	}
	for _, thread := range threads {
		if err := s.cache.Threads().Put(ctx, thread); err != nil {
			zap.S().Warnw("failed to reconcile thread", "threadId", thread.ThreadID, "error", err)
		}
	}

	messages, err := s.messages.QueryRange(ctx, remote.All())
	if err != nil {
		zap.S().Errorw("failed to pull messages for reconciliation", "error", err)
	}
	for _, message := range messages {
		if err := s.cache.Messages().Put(ctx, message); err != nil {
			zap.S().Warnw("failed to reconcile message", "messageId", message.MessageID, "error", err)
		}
	}

	zap.S().Infow("Cache reconciliation sweep finished",
		"reports", len(reports),
		"threads", len(threads),
		"messages", len(messages),
	)
}
