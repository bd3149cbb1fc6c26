package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/formscrape"
)

// Ensure LoggingExtractor implements formscrape.ComponentExtractor.
var _ formscrape.ComponentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ComponentExtractor with debug logging.
type LoggingExtractor struct {
	next   formscrape.ComponentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next formscrape.ComponentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractComponents logs the kind and number of records found.
func (e *LoggingExtractor) ExtractComponents(html string, kind formscrape.ComponentKind) (resp *formscrape.ComponentResponse, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"kind", kind,
			"bytes", len(html),
			"records", resp.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractComponents(html, kind)
}
