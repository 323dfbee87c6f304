// Package daylog provides a lightweight, colorized logging facility that
// writes to the standard error stream and, optionally, to a daily-rotating
// log file.
//
// # Overview
//
// A [Logger] constructs one [Record] per call, shortens the caller's source
// path relative to the process root, renders the record with a shared
// [Formatter], and hands the rendered line to each of its sinks. The console
// sink is always present; a [RotatingFileSink] is added when file logging is
// requested. The file sink owns a single open handle and swaps it for a new
// dated file whenever the calendar date changes between writes.
//
// # Basic Usage
//
//	logger, err := daylog.Make("application")
//	if err != nil {
//		panic(err)
//	}
//	logger.Info("Hello, world!")
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger, err := daylog.Make("svc",
//		daylog.WithLevel(daylog.LevelInfo),
//		daylog.WithFileLogging(true),
//		daylog.WithFolder("logs"))
//
// # File Rotation
//
// With file logging enabled, records are appended to
// <folder>/<YYYY-MM-DD>-<name>.log. The first write after a date change
// closes the previous day's file before the new day's file is opened, so at
// most one handle is ever open and no record lands in a file whose date does
// not match the write time. [WithCompress] additionally compresses each
// rotated-out file with zstd.
//
// # Errors
//
// Construction fails if the log folder or the initial file cannot be
// created. Write errors are returned from the logging call itself; sinks
// fail independently, and the errors of all failing sinks are joined.
//
// # Supported Levels
//
// The package supports five severities: [LevelDebug], [LevelInfo],
// [LevelWarning], [LevelError], and [LevelCritical]. Messages below the
// configured level are discarded before a record is built.
package daylog
