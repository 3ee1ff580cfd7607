// Copyright 2025 G-Core Innovations SARL

package host

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the harness logger. It is a no-op logger unless SetLogger
// installed something louder first.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the harness logger. Hostcall tracing is logged at debug
// level, so a development logger makes guest runs fully visible.
func SetLogger(l *zap.Logger) {
	logger = l
}
