package console

import (
	"log"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Key and raw-mode tracing for debugging escape-sequence issues. Frames own
// stdout, so traces go to a rotating file instead: set GOCLACK_TRACE to a
// file path to enable.

var (
	traceOnce sync.Once
	tracer    *log.Logger
)

func traceLogger() *log.Logger {
	traceOnce.Do(func() {
		path := os.Getenv("GOCLACK_TRACE")
		if path == "" {
			return
		}
		tracer = log.New(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
			MaxAge:     7, // days
		}, "", log.LstdFlags|log.Lmicroseconds)
	})
	return tracer
}

func tracef(format string, args ...any) {
	if l := traceLogger(); l != nil {
		l.Printf(format, args...)
	}
}
