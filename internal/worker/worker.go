// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package worker runs the background jobs scheduled next to the HTTP server.

Jobs:

  - Audit: Recomputes the stats counters from the collections and logs any drift.
    It never writes to the document.
  - Snapshot: Copies the whole document into a timestamped JSON file.

Both jobs are driven by robfig/cron specs from the configuration; an empty spec
disables the job.
*/
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/taibuivan/animelar/internal/core/stats"
	"github.com/taibuivan/animelar/internal/store"
)

// jobTimeout bounds a single job run.
const jobTimeout = time.Minute

// Options selects which jobs run and where snapshots go.
type Options struct {
	AuditSchedule    string
	SnapshotSchedule string
	SnapshotDir      string
}

// Scheduler owns the cron runner and the jobs registered on it.
type Scheduler struct {
	cron        *cron.Cron
	gateway     *store.Gateway
	logger      *slog.Logger
	snapshotDir string
	clock       func() time.Time
}

// New registers the configured jobs. Nothing runs until [Scheduler.Start].
func New(gateway *store.Gateway, logger *slog.Logger, options Options) (*Scheduler, error) {
	cronLogger := slogAdapter{logger: logger}

	scheduler := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		gateway:     gateway,
		logger:      logger,
		snapshotDir: options.SnapshotDir,
		clock:       func() time.Time { return time.Now().UTC() },
	}

	if options.AuditSchedule != "" {
		if _, err := scheduler.cron.AddFunc(options.AuditSchedule, scheduler.runAudit); err != nil {
			return nil, fmt.Errorf("worker: invalid AUDIT_SCHEDULE %q: %w", options.AuditSchedule, err)
		}
	}

	if options.SnapshotSchedule != "" {
		if options.SnapshotDir == "" {
			return nil, fmt.Errorf("worker: SNAPSHOT_DIR is required when SNAPSHOT_SCHEDULE is set")
		}
		if _, err := scheduler.cron.AddFunc(options.SnapshotSchedule, scheduler.runSnapshot); err != nil {
			return nil, fmt.Errorf("worker: invalid SNAPSHOT_SCHEDULE %q: %w", options.SnapshotSchedule, err)
		}
	}

	return scheduler, nil
}

// Jobs reports how many jobs are scheduled.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("worker_started", slog.Int("jobs", s.Jobs()))
}

// Stop halts scheduling and waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("worker_stopped")
	case <-ctx.Done():
		s.logger.Warn("worker_stop_timeout")
	}
}

// # Jobs

// Audit compares the running counters with the collections.
func (s *Scheduler) Audit(ctx context.Context) (stats.Reconciliation, error) {
	var (
		result    stats.Reconciliation
		mispriced []string
	)

	err := s.gateway.Read(ctx, func(doc *store.Document) error {
		result = stats.Reconcile(doc)
		mispriced = stats.MispricedAnimes(doc)
		return nil
	})
	if err != nil {
		return result, err
	}

	if result.Drifted() {
		s.logger.Warn("stats_drift_detected",
			slog.Any("recorded", result.Recorded),
			slog.Any("derived", result.Derived),
		)
	}
	if len(mispriced) > 0 {
		s.logger.Warn("anime_revenue_mismatch", slog.Any("anime_ids", mispriced))
	}

	return result, nil
}

// Snapshot writes the current document to SNAPSHOT_DIR and returns the file path.
func (s *Scheduler) Snapshot(ctx context.Context) (string, error) {
	var doc *store.Document
	err := s.gateway.Read(ctx, func(loaded *store.Document) error {
		doc = loaded
		return nil
	})
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("animelar-%s.json", s.clock().Format("20060102T150405.000Z"))
	path := filepath.Join(s.snapshotDir, name)

	if err := store.NewFileRepository(path).Save(ctx, doc); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Scheduler) runAudit() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	result, err := s.Audit(ctx)
	if err != nil {
		s.logger.Error("stats_audit_failed", slog.Any("error", err))
		return
	}
	s.logger.Info("stats_audit_finished", slog.Bool("drifted", result.Drifted()))
}

func (s *Scheduler) runSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	path, err := s.Snapshot(ctx)
	if err != nil {
		s.logger.Error("snapshot_failed", slog.Any("error", err))
		return
	}
	s.logger.Info("snapshot_written", slog.String("path", path))
}

// # Logging

// slogAdapter satisfies cron.Logger on top of slog.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Debug("cron_"+msg, keysAndValues...)
}

func (a slogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.logger.Error("cron_"+msg, append([]interface{}{slog.Any("error", err)}, keysAndValues...)...)
}
