package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/formscrape"
)

// Ensure LoggingSnapshotService implements formscrape.SnapshotService.
var _ formscrape.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService with debug logging.
type LoggingSnapshotService struct {
	next   formscrape.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next formscrape.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

func (s *LoggingSnapshotService) CreateSnapshot(ctx context.Context, snapshot *formscrape.Snapshot) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create snapshot",
			"id", snapshot.ID,
			"url", snapshot.SourceURL,
			"kind", snapshot.Kind,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSnapshot(ctx, snapshot)
}

func (s *LoggingSnapshotService) FindSnapshotByID(ctx context.Context, id string) (snapshot *formscrape.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find snapshot",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSnapshotByID(ctx, id)
}

func (s *LoggingSnapshotService) FindSnapshots(ctx context.Context, filter formscrape.SnapshotFilter) (snapshots []*formscrape.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find snapshots",
			"count", len(snapshots),
			"offset", filter.Offset,
			"limit", filter.Limit,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSnapshots(ctx, filter)
}

func (s *LoggingSnapshotService) DeleteSnapshot(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete snapshot",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSnapshot(ctx, id)
}
