package daylog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

// dateLayout names the log files; rotation compares these strings, so any
// date difference (earlier or later) triggers a rotation.
const dateLayout = "2006-01-02"

// RotatingFileSink appends rendered lines to <folder>/<date>-<tag>.log,
// where date is the calendar date of the write. Each write first checks
// whether the date has changed since the file was opened; if so, the old
// handle is closed before the new day's file is opened, so at most one
// handle is open at any instant and no record is appended to a file whose
// date differs from the write time.
//
// Each sink instance tracks its own rotation date, beginning at the date it
// was constructed. Files are always opened in append mode and never
// truncated.
type RotatingFileSink struct {
	mu       sync.Mutex
	now      func() time.Time
	file     *os.File
	folder   string
	tag      string
	date     string
	compress bool
	closed   bool
}

// NewRotatingFileSink creates a [RotatingFileSink] writing beneath folder,
// tagged with tag. The folder is created if absent, and today's file is
// opened immediately; failure of either is returned and the sink is not
// usable.
func NewRotatingFileSink(folder, tag string) (*RotatingFileSink, error) {
	return newRotatingFileSink(folder, tag, time.Now, false)
}

func newRotatingFileSink(
	folder, tag string,
	now func() time.Time,
	compress bool,
) (*RotatingFileSink, error) {
	if now == nil {
		now = time.Now
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("create log folder: %w", err)
	}

	s := &RotatingFileSink{
		now:      now,
		folder:   folder,
		tag:      tag,
		compress: compress,
	}

	if err := s.open(s.today()); err != nil {
		return nil, err
	}

	return s, nil
}

// Write implements [Sink]. The check-then-rotate-then-append sequence is a
// critical section guarded by the sink's mutex.
//
// If a previous rotation failed partway, the handle is simply reopened for
// today's date before appending, so a failed rotation is safe to retry.
func (s *RotatingFileSink) Write(_ *Record, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	today := s.today()

	if s.file != nil && today != s.date {
		closed := s.path(s.date)

		err := s.file.Close()
		s.file = nil

		if err != nil {
			return fmt.Errorf("close rotated log file: %w", err)
		}

		if s.compress {
			compressFile(closed)
		}
	}

	if s.file == nil {
		if err := s.open(today); err != nil {
			return err
		}
	}

	if _, err := s.file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}

	return nil
}

// Close implements [Sink], releasing the open handle. Further writes return
// [ErrClosed].
func (s *RotatingFileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true

	if s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil

	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}

	return nil
}

func (s *RotatingFileSink) today() string {
	return s.now().Format(dateLayout)
}

func (s *RotatingFileSink) path(date string) string {
	return filepath.Join(s.folder, date+"-"+s.tag+".log")
}

// open opens the append-mode file for date and records date as current.
// The recorded date changes only when an open succeeds, keeping it in step
// with the handle.
func (s *RotatingFileSink) open(date string) error {
	file, err := os.OpenFile(
		s.path(date),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	s.file = file
	s.date = date

	return nil
}

// compressFile writes a zstd-compressed copy of path alongside it and
// removes the original. Best effort: on any failure the partial archive is
// removed and the original file is left in place.
func compressFile(path string) {
	src, err := os.Open(path)
	if err != nil {
		return
	}
	defer src.Close()

	dst, err := os.Create(path + ".zst")
	if err != nil {
		return
	}

	enc, err := zstd.NewWriter(dst)
	if err != nil {
		dst.Close()
		os.Remove(path + ".zst")

		return
	}

	_, copyErr := io.Copy(enc, src)

	if err := enc.Close(); copyErr == nil {
		copyErr = err
	}

	if err := dst.Close(); copyErr == nil {
		copyErr = err
	}

	if copyErr != nil {
		os.Remove(path + ".zst")

		return
	}

	os.Remove(path)
}
