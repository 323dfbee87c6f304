package daylog

import (
	"errors"
	"fmt"
	"runtime"
)

// Logger dispatches log records to its sinks. A console sink is always
// present; a [RotatingFileSink] is added when file logging is enabled.
// All sinks share one formatter unless replaced with [Logger.SetFormatter].
//
// Loggers are independent values: construct as many as needed with
// different names and folders. A single Logger is safe for concurrent use.
type Logger struct {
	config
	name  string
	sinks []Sink
}

// Make creates a new [Logger] with the given name. The name identifies the
// logger in rendered lines and tags the log files of the file sink.
//
// The default configuration logs everything at [LevelDebug] and above to
// [os.Stderr] with no file sink. Optional configuration can be applied
// using functional options like [WithLevel], [WithFileLogging],
// [WithFolder], and [WithCompress].
//
// If file logging is enabled and the folder or today's file cannot be
// created, Make fails; the caller decides whether to retry, fall back to a
// console-only logger, or abort.
func Make(name string, opts ...Option) (*Logger, error) {
	cfg := makeConfig(opts...)

	if cfg.formatter == nil {
		cfg.formatter = &LineFormatter{formatTime: cfg.formatTime}
	}

	l := &Logger{
		config: cfg,
		name:   name,
		sinks:  []Sink{NewConsoleSink(cfg.console)},
	}

	if cfg.file {
		sink, err := newRotatingFileSink(cfg.folder, name, cfg.clock, cfg.compress)
		if err != nil {
			return nil, err
		}

		l.sinks = append(l.sinks, sink)
	}

	return l, nil
}

// Name returns the logger's name.
func (l *Logger) Name() string {
	if l == nil {
		return ""
	}

	return l.name
}

// Level returns the current minimum log level.
func (l *Logger) Level() Level {
	if l == nil || l.mutex == nil {
		return DefaultLevel
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	if l == nil || l.mutex == nil {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.level = level
}

// SetFormatter replaces the formatter shared by all sinks.
// A nil formatter is ignored.
func (l *Logger) SetFormatter(formatter Formatter) {
	if l == nil || l.mutex == nil || formatter == nil {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.formatter = formatter
}

// Debug logs a message at Debug level.
func (l *Logger) Debug(msg string) error {
	return l.output(2, LevelDebug, msg)
}

// Info logs a message at Info level.
func (l *Logger) Info(msg string) error {
	return l.output(2, LevelInfo, msg)
}

// Warning logs a message at Warning level.
func (l *Logger) Warning(msg string) error {
	return l.output(2, LevelWarning, msg)
}

// Error logs a message at Error level.
func (l *Logger) Error(msg string) error {
	return l.output(2, LevelError, msg)
}

// Critical logs a message at Critical level.
func (l *Logger) Critical(msg string) error {
	return l.output(2, LevelCritical, msg)
}

// Debugf logs a formatted message at Debug level.
func (l *Logger) Debugf(format string, args ...any) error {
	return l.output(2, LevelDebug, fmt.Sprintf(format, args...))
}

// Infof logs a formatted message at Info level.
func (l *Logger) Infof(format string, args ...any) error {
	return l.output(2, LevelInfo, fmt.Sprintf(format, args...))
}

// Warningf logs a formatted message at Warning level.
func (l *Logger) Warningf(format string, args ...any) error {
	return l.output(2, LevelWarning, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at Error level.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.output(2, LevelError, fmt.Sprintf(format, args...))
}

// Criticalf logs a formatted message at Critical level.
func (l *Logger) Criticalf(format string, args ...any) error {
	return l.output(2, LevelCritical, fmt.Sprintf(format, args...))
}

// Log logs a message at the given level.
func (l *Logger) Log(level Level, msg string) error {
	return l.output(2, level, msg)
}

// Close releases every sink's resources. Sinks close independently; the
// errors of all failing sinks are joined.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}

	var err error
	for _, sink := range l.sinks {
		err = errors.Join(err, sink.Close())
	}

	return err
}

// output builds the record for a single logging call and dispatches it to
// every sink. calldepth counts stack frames above output to the user's
// call site, following the convention of [log.Logger.Output].
//
// Sinks fail independently: a write error on one sink does not block the
// others, and the errors of all failing sinks are joined.
func (l *Logger) output(calldepth int, level Level, msg string) error {
	// Silently return for zero value loggers
	if l == nil || l.mutex == nil {
		return nil
	}

	l.mutex.RLock()
	minLevel := l.level
	formatter := l.formatter
	root := l.root
	clock := l.clock
	l.mutex.RUnlock()

	// Below the threshold no record is built and no caller is resolved.
	if level < minLevel {
		return nil
	}

	// The call site must be captured synchronously: one frame for output
	// itself plus one for the exported wrapper.
	_, path, line, ok := runtime.Caller(calldepth)
	if !ok {
		path, line = "???", 0
	}

	rec := &Record{
		Time:    clock(),
		Name:    l.name,
		Path:    Redact(path, root),
		Message: msg,
		Line:    line,
		Level:   level,
	}

	rendered := formatter.Render(rec)

	var err error
	for _, sink := range l.sinks {
		err = errors.Join(err, sink.Write(rec, rendered))
	}

	return err
}
