// Package debug holds the console logging helpers shared by every package.
// Browser builds write to the developer console, native builds to log/slog.
package debug

// EnableDebug gates Debug and Debugf. Warnings and errors are always emitted.
var EnableDebug = true

// Debug logs a message if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		sink.log(args...)
	}
}

// Debugf logs a formatted message if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		sink.logf(format, args...)
	}
}

// DebugWarn logs a warning.
func DebugWarn(args ...interface{}) {
	sink.warn(args...)
}

// DebugError logs an error.
func DebugError(args ...interface{}) {
	sink.error(args...)
}

type logSink interface {
	log(args ...interface{})
	logf(format string, args ...interface{})
	warn(args ...interface{})
	error(args ...interface{})
}
