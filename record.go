package daylog

import (
	"strings"
	"time"
)

// Record is a single log record, constructed once per logging call and
// owned by that call for the duration of dispatch. The Path field is
// rewritten exactly once by [Redact] before formatting; every other field
// is fixed at construction.
type Record struct {
	Time    time.Time
	Name    string
	Path    string
	Message string
	Line    int
	Level   Level
}

// Redact replaces a leading root prefix of path with "~", leaving the
// remainder of the path unchanged.
//
// Redacting an already-redacted path is a no-op, so the transformation is
// idempotent. An empty root leaves the path unchanged.
func Redact(path, root string) string {
	if root == "" || strings.HasPrefix(path, "~") {
		return path
	}

	if rest, ok := strings.CutPrefix(path, root); ok {
		return "~" + rest
	}

	return path
}
