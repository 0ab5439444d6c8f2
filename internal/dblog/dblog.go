// Package dblog provides the engine's fatal-path logger. Statement-local
// parse/execute errors are never logged here — they're rendered by the
// REPL instead — this is only for errors that unwind to process exit:
// corrupt files, I/O failures on open/flush/close.
package dblog

import "go.uber.org/zap"

var logger = mustDevelopment()

func mustDevelopment() *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		// zap itself failing to construct is not recoverable; fall back
		// to a no-op logger rather than panicking at package init.
		return zap.NewNop()
	}
	return l
}

// SetLogger replaces the package-level logger, e.g. with zap.NewProduction()
// or a test observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Fatal logs a fatal storage error with structured context. Callers are
// responsible for exiting the process afterwards; Fatal itself never
// calls os.Exit.
func Fatal(msg string, err error) {
	logger.Error(msg, zap.Error(err))
}

// Sync flushes any buffered log entries. Call before process exit.
func Sync() {
	_ = logger.Sync()
}
