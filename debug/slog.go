//go:build !js
// +build !js

package debug

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var sink logSink = &slogSink{
	logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
}

// SetLogger redirects native output, e.g. to silence tests or to add attrs.
func SetLogger(l *slog.Logger) {
	sink = &slogSink{logger: l}
}

type slogSink struct {
	logger *slog.Logger
}

func (s *slogSink) log(args ...interface{}) {
	s.logger.Debug(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (s *slogSink) logf(format string, args ...interface{}) {
	s.logger.Debug(fmt.Sprintf(format, args...))
}

func (s *slogSink) warn(args ...interface{}) {
	s.logger.Warn(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (s *slogSink) error(args ...interface{}) {
	s.logger.Error(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}
