// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging provides the ambient application logger (a thin wrapper
// around charmbracelet/log) and a leveled Logger with an optional plain-text
// file sink that can be written synchronously or through a background writer.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jacktogon/gotools/internal/termstyle"
	"github.com/jacktogon/gotools/internal/timeconv"
)

// Level is a verbosity scale, not a severity scale: a logger emits a record
// iff its own level is >= the record's level. An Error-level logger therefore
// still prints info and warn records.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
	LevelDebug
	LevelAll
)

// String returns the tag name for the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelDebug:
		return "DEBUG"
	case LevelAll:
		return "ALL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Logger writes aligned, color-tagged records to a console writer and,
// optionally, uncolored copies to a file sink.
type Logger struct {
	level     Level
	name      string
	printTime bool
	tagWidth  int

	mu  sync.Mutex
	out io.Writer

	file  *os.File
	async *asyncSink
}

// Option configures a Logger.
type Option func(*Logger) error

// WithName prefixes every record tag with a daemon name.
func WithName(name string) Option {
	return func(l *Logger) error {
		l.name = name
		return nil
	}
}

// WithTimestamps prepends the local datestring to every record.
func WithTimestamps() Option {
	return func(l *Logger) error {
		l.printTime = true
		return nil
	}
}

// WithOutput redirects console records to w. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) error {
		l.out = w
		return nil
	}
}

// WithFile adds a synchronous plain-text file sink. Parent directories are
// created; the file is truncated unless appendFile is set.
func WithFile(path string, appendFile bool) Option {
	return func(l *Logger) error {
		f, err := openSink(path, appendFile)
		if err != nil {
			return err
		}
		l.file = f
		return nil
	}
}

// WithAsyncFile adds a file sink drained by a background goroutine. Records
// are buffered; Flush blocks until everything queued so far is on disk.
func WithAsyncFile(path string, appendFile bool) Option {
	return func(l *Logger) error {
		f, err := openSink(path, appendFile)
		if err != nil {
			return err
		}
		l.async = newAsyncSink(f)
		return nil
	}
}

func openSink(path string, appendFile bool) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	flags := os.O_CREATE | os.O_WRONLY
	if appendFile {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// NewLogger returns a Logger emitting records at or below the given
// verbosity level.
func NewLogger(level Level, opts ...Option) (*Logger, error) {
	l := &Logger{
		level: level,
		out:   os.Stdout,
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	// Width of the widest tag ("ERROR") plus brackets and padding, plus the
	// optional name. Keeps the message column aligned across levels.
	l.tagWidth = len("ERROR") + 3 + len(l.name)
	return l, nil
}

// Info logs the values at INFO level.
func (l *Logger) Info(values ...any) {
	l.log(LevelInfo, termstyle.Reset, values)
}

// Warn logs the values at WARN level.
func (l *Logger) Warn(values ...any) {
	l.log(LevelWarn, termstyle.FGBrightMagenta, values)
}

// Debug logs the values at DEBUG level.
func (l *Logger) Debug(values ...any) {
	l.log(LevelDebug, termstyle.FGBrightYellow, values)
}

// Error logs the values at ERROR level.
func (l *Logger) Error(values ...any) {
	l.log(LevelError, termstyle.Error, values)
}

// Flush blocks until all queued async records have been written. It is a
// no-op for sync sinks and loggers without a file.
func (l *Logger) Flush() {
	if l.async != nil {
		l.async.flush()
	}
}

// Close flushes pending records and closes the file sink, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.async != nil {
		return l.async.close()
	}
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) tag(level Level) string {
	t := "["
	if l.name != "" {
		t += l.name + " "
	}
	t += level.String() + "]"
	if pad := l.tagWidth - len(t); pad > 0 {
		t += strings.Repeat(" ", pad)
	}
	return t
}

func (l *Logger) log(level Level, color string, values []any) {
	if l.level < level {
		return
	}

	tag := l.tag(level)
	now := timeconv.UnixToDatestring(float64(time.Now().UnixNano()) / 1e9)

	parts := make([]string, 0, len(values)+2)
	if l.printTime {
		parts = append(parts, now)
	}
	parts = append(parts, color+tag+termstyle.Reset)
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, strings.Join(parts, " "))

	if l.file == nil && l.async == nil {
		return
	}

	// File records are always timestamped and never colored.
	fileParts := make([]string, 0, len(values)+2)
	fileParts = append(fileParts, now, tag)
	for _, v := range values {
		fileParts = append(fileParts, fmt.Sprint(v))
	}
	record := strings.Join(fileParts, " ") + "\n"

	if l.async != nil {
		l.async.write(record)
		return
	}
	_, _ = l.file.WriteString(record)
}

// asyncSink drains records into a file from a dedicated goroutine.
type asyncSink struct {
	ch     chan asyncRecord
	done   chan struct{}
	closed sync.Once
	f      *os.File
	errMu  sync.Mutex
	err    error
}

type asyncRecord struct {
	s   string
	ack chan struct{} // non-nil for flush requests
}

func newAsyncSink(f *os.File) *asyncSink {
	s := &asyncSink{
		ch:   make(chan asyncRecord, 1024),
		done: make(chan struct{}),
		f:    f,
	}
	go s.run()
	return s
}

func (s *asyncSink) run() {
	defer close(s.done)
	for rec := range s.ch {
		if rec.ack != nil {
			close(rec.ack)
			continue
		}
		if _, err := s.f.WriteString(rec.s); err != nil {
			s.errMu.Lock()
			s.err = err
			s.errMu.Unlock()
		}
	}
}

func (s *asyncSink) write(record string) {
	s.ch <- asyncRecord{s: record}
}

func (s *asyncSink) flush() {
	ack := make(chan struct{})
	s.ch <- asyncRecord{ack: ack}
	<-ack
}

func (s *asyncSink) close() error {
	s.closed.Do(func() {
		close(s.ch)
	})
	<-s.done
	cerr := s.f.Close()
	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.err != nil {
		return s.err
	}
	return cerr
}
