package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/curate"
)

// Ensure LoggingRecordStore implements curate.RecordStore.
var _ curate.RecordStore = (*LoggingRecordStore)(nil)

// LoggingRecordStore wraps a RecordStore with logging.
type LoggingRecordStore struct {
	next   curate.RecordStore
	logger *slog.Logger
}

// NewLoggingRecordStore creates a new LoggingRecordStore.
func NewLoggingRecordStore(next curate.RecordStore, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, logger: logger}
}

func (s *LoggingRecordStore) Save(ctx context.Context, record *curate.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save record",
			"uri", record.URI,
			"id", record.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, record)
}

func (s *LoggingRecordStore) Commit() (err error) {
	defer func() {
		s.logger.Info("commit records", "err", err)
	}()
	return s.next.Commit()
}

func (s *LoggingRecordStore) Abort() (err error) {
	defer func() {
		s.logger.Info("abort records", "err", err)
	}()
	return s.next.Abort()
}
