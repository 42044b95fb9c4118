package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Formats accepted by SetFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	levelVar slog.LevelVar

	mu     sync.RWMutex
	out    io.Writer = os.Stdout
	format           = FormatText
	base   *slog.Logger
)

func init() {
	levelVar.Set(slog.LevelInfo)
	base = build(out, format)
}

func build(w io.Writer, f string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: &levelVar}
	var h slog.Handler
	if f == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("svc", "hlpnl")
}

// SetOutput redirects every subsequent log line to w; nil means stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	mu.Lock()
	out = w
	base = build(out, format)
	mu.Unlock()
}

// SetFormat switches between the text and json handlers. Unknown values keep text.
func SetFormat(f string) {
	f = strings.ToLower(strings.TrimSpace(f))
	if f != FormatJSON {
		f = FormatText
	}
	mu.Lock()
	format = f
	base = build(out, format)
	mu.Unlock()
}

// ParseLevel 将配置中的字符串映射为 slog 级别，未知值按 info 处理。
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLevel can be called while other goroutines log.
func SetLevel(level string) {
	levelVar.Set(ParseLevel(level))
}

func Level() slog.Level {
	return levelVar.Level()
}

// With returns a logger carrying the given attributes, e.g. a request id.
func With(args ...any) *slog.Logger {
	return current().With(args...)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

func Debugf(format string, v ...any) {
	current().Debug(fmt.Sprintf(format, v...))
}

func Infof(format string, v ...any) {
	current().Info(fmt.Sprintf(format, v...))
}

func Warnf(format string, v ...any) {
	current().Warn(fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...any) {
	current().Error(fmt.Sprintf(format, v...))
}
