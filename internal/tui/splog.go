// Package tui provides terminal user interface components and utilities.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
	quiet     *bool // Pointer to quiet flag so it can be changed dynamically
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// createLumberjackLogger creates a lumberjack logger with configuration from environment variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	logger := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
		Compress:   false,
	}

	if v := os.Getenv("PDFMERGE_LOG_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			logger.MaxSize = n
		}
	}
	if v := os.Getenv("PDFMERGE_LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			logger.MaxBackups = n
		}
	}
	if v := os.Getenv("PDFMERGE_LOG_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			logger.MaxAge = n
		}
	}

	return logger
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	writer    *os.File
	logWriter io.WriteCloser // Lumberjack logger for file logging
	quiet     bool           // When true, suppresses all output (used during TUI mode)
}

// NewSplog creates a new splog instance with console-only logging.
// Debug messages are enabled when the DEBUG environment variable is set.
// File logging is enabled when PDFMERGE_LOG_FILE points at a path.
func NewSplog() *Splog {
	splog, _ := NewSplogWithConfig(os.Getenv("PDFMERGE_LOG_FILE"))
	return splog
}

// NewSplogWithConfig creates a new splog instance with optional file logging
func NewSplogWithConfig(logFilePath string) (*Splog, error) {
	splog := &Splog{
		writer: os.Stdout,
		quiet:  false,
	}

	consoleHandler := &simpleHandler{
		writer:    splog.writer,
		debugMode: os.Getenv("DEBUG") != "",
		quiet:     &splog.quiet,
	}

	handlers := []slog.Handler{consoleHandler}

	if logFilePath != "" {
		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := createLumberjackLogger(logFilePath)
		splog.logWriter = lumberjackLogger

		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// SetQuiet sets the quiet mode for the logger.
// When quiet is true, all console output is suppressed (used during TUI mode).
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// IsQuiet returns whether the logger is in quiet mode.
func (s *Splog) IsQuiet() bool {
	return s.quiet
}

func (s *Splog) logMessage(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

func (s *Splog) format(prefix, format string, args ...interface{}) string {
	if len(args) == 0 {
		return prefix + format
	}
	return fmt.Sprintf(prefix+format, args...)
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, s.format("", format, args...))
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, s.format("⚠️  ", format, args...))
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	s.logMessage(slog.LevelError, s.format("❌ ", format, args...))
}

// Debug writes a debug message, shown only when DEBUG is set
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, s.format("", format, args...))
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, s.format("💡 ", format, args...))
}

// Page writes raw output without level handling
func (s *Splog) Page(content string) {
	if s.quiet {
		return
	}
	_, _ = fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	if s.quiet {
		return
	}
	_, _ = fmt.Fprintln(s.writer)
}

// Close releases the file log writer, if any
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
