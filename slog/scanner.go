package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/formscrape"
)

// Ensure LoggingScanner implements formscrape.PostbackScanner.
var _ formscrape.PostbackScanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a PostbackScanner with debug logging.
// Token values are never logged, only their lengths.
type LoggingScanner struct {
	next   formscrape.PostbackScanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next formscrape.PostbackScanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// ViewState delegates to the wrapped scanner and logs the token length.
func (s *LoggingScanner) ViewState(html string) (token string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scan",
			"field", formscrape.FieldViewState,
			"length", len(token),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ViewState(html)
}

// EventValidation delegates to the wrapped scanner and logs the token length.
func (s *LoggingScanner) EventValidation(html string) (token string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scan",
			"field", formscrape.FieldEventValidation,
			"length", len(token),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EventValidation(html)
}

// Parameters delegates to the wrapped scanner and logs the field names.
func (s *LoggingScanner) Parameters(html string, target string) (params *formscrape.PostbackParameters, err error) {
	defer func(begin time.Time) {
		var names []string
		if params != nil {
			names = params.Names()
		}
		s.logger.Info("postback parameters",
			"target", target,
			"fields", names,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Parameters(html, target)
}
