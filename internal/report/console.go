package report

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Sink renders intermediate analysis results for a human reader. The
// rendered form is not a stable machine interface; the metrics endpoint is.
type Sink interface {
	Write(title string, payload interface{}) error
}

// ConsoleSink pretty-prints reports as indented JSON on stdout.
type ConsoleSink struct {
	out    io.Writer
	logger *zap.Logger
}

// NewConsoleSink creates a sink writing to stdout.
func NewConsoleSink(logger *zap.Logger) *ConsoleSink {
	return &ConsoleSink{
		out:    os.Stdout,
		logger: logger,
	}
}

// Write renders one report.
func (s *ConsoleSink) Write(title string, payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report %q: %w", title, err)
	}

	_, err = fmt.Fprintf(s.out, "\n%s\n\n%s\n", title, data)
	if err != nil {
		return fmt.Errorf("write report %q: %w", title, err)
	}

	s.logger.Info("report-written", zap.String("report", title))

	return nil
}
