package daylog

import (
	"io"
	"iter"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// DefaultLevel is the default minimum log level.
const DefaultLevel = LevelDebug

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Levels returns an iterator over all defined log levels.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range []Level{
			LevelDebug,
			LevelInfo,
			LevelWarning,
			LevelError,
			LevelCritical,
		} {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a log level.
// Valid level strings are "DEBUG", "INFO", "WARNING" (or "WARN"), "ERROR",
// and "CRITICAL", compared case-insensitively.
// Unrecognized strings return [DefaultLevel].
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARNING", "WARN":
		return LevelWarning
	case "ERROR":
		return LevelError
	case "CRITICAL":
		return LevelCritical
	default:
		return DefaultLevel
	}
}

// FormatTime defines a function that formats a time.Time value as a string.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the default used when no valid time layout is
// provided. It carries millisecond precision.
const DefaultTimeLayout = "2006-01-02 15:04:05.000"

// DefaultFolder is the default folder for log files.
const DefaultFolder = "logs"

// config holds the configuration options for a Logger.
type config struct {
	mutex      *sync.RWMutex
	console    io.Writer
	formatter  Formatter
	formatTime FormatTime
	clock      func() time.Time
	folder     string
	root       string
	level      Level
	file       bool
	compress   bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	var c config

	c.mutex = &sync.RWMutex{}

	return apply(apply(c, WithDefaults()), opts...)
}

// WithDefaults returns a functional option that sets the default
// configuration: console output on [os.Stderr], [DefaultLevel],
// [DefaultTimeLayout], [DefaultFolder], file logging disabled, and the
// process working directory as the path redaction root.
func WithDefaults() Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.console = os.Stderr
		c.formatter = nil
		c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
		c.clock = time.Now
		c.folder = DefaultFolder
		c.root = processRoot()
		c.level = DefaultLevel
		c.file = false
		c.compress = false

		return c
	}
}

// WithConsole returns a functional option that sets the writer used by the
// console sink.
// If a nil writer is provided, [os.Stderr] is used instead.
func WithConsole(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = os.Stderr
		}

		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.console = w

		return c
	}
}

// WithLevel returns a functional option that sets the minimum log level.
// Messages below this level are discarded.
func WithLevel(level Level) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.level = level

		return c
	}
}

// WithFileLogging returns a functional option that controls whether records
// are also written to a daily-rotating log file.
func WithFileLogging(enable bool) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.file = enable

		return c
	}
}

// WithFolder returns a functional option that sets the folder holding the
// log files. The folder is created on construction when file logging is
// enabled.
func WithFolder(folder string) Option {
	return func(c config) config {
		if folder == "" {
			folder = DefaultFolder
		}

		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.folder = folder

		return c
	}
}

// WithRoot returns a functional option that sets the root directory used to
// shorten caller paths in log output.
// An empty root disables redaction.
func WithRoot(root string) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.root = root

		return c
	}
}

// WithClock returns a functional option that sets the time source used for
// record timestamps and file rotation.
// If a nil clock is provided, [time.Now] is used instead.
func WithClock(clock func() time.Time) Option {
	return func(c config) config {
		if clock == nil {
			clock = time.Now
		}

		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.clock = clock

		return c
	}
}

// WithCompress returns a functional option that controls whether the file
// sink compresses each rotated-out log file with zstd.
func WithCompress(enable bool) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.compress = enable

		return c
	}
}

// WithFormatter returns a functional option that sets the formatter shared
// by all sinks.
// A nil formatter restores the default [LineFormatter].
func WithFormatter(formatter Formatter) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.formatter = formatter

		return c
	}
}

// WithTimeLayout returns a functional option that sets the layout used to
// format record timestamps by the default formatter.
//
// The layout string can be one of the named layouts from the [time] package
// (for example, "RFC3339" or "RFC3339Nano"). Otherwise, it is passed
// verbatim to [time.Time.Format] and must follow the standard specification.
//
// If an empty string (after trimming whitespace) is provided, timestamps are
// disabled and the timestamp field is left empty in log output.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		format := makeFormatTimeFunc(layout)

		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.formatTime = format

		return c
	}
}

// processRoot returns the directory that caller paths are shortened against.
func processRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}

	return dir
}

// timeLayout maps named layouts to their corresponding time.Time constants.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,

	"stamp": time.Stamp,
	"none":  "",

	"stampmilli": time.StampMilli,
	"milli":      time.StampMilli,
	"millis":     time.StampMilli,
	"ms":         time.StampMilli,

	"stampmicro": time.StampMicro,
	"micro":      time.StampMicro,
	"micros":     time.StampMicro,
	"us":         time.StampMicro,

	"stampnano": time.StampNano,
	"nano":      time.StampNano,
	"nanos":     time.StampNano,
	"ns":        time.StampNano,
}

func makeFormatTimeFunc(layout string) FormatTime {
	// Trim whitespace only for inspection.
	// Custom layouts are used verbatim.
	trimmed := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if trimmed == "" {
		return func(time.Time) string { return "" }
	}

	if std, ok := timeLayout[trimmed]; ok {
		layout = std
	}

	return func(t time.Time) string { return t.Format(layout) }
}
