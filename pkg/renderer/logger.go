package renderer

import (
	"log"
	"os"

	"github.com/ilandmann/pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stderr, leaving
// stdout free for a PPM stream written there.
type DefaultLogger struct {
	logger *log.Logger
}

// NewDefaultLogger creates a core.Logger that writes to stderr.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{logger: log.New(os.Stderr, "", 0)}
}

func (l *DefaultLogger) Printf(format string, args ...interface{}) {
	l.logger.Printf(format, args...)
}
