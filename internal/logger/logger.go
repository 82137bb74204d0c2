package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

const timeLayout = "2006-01-02 15:04:05"

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

var levelColors = map[string]string{
	"debug": "\033[36m",
	"info":  "\033[34m",
	"warn":  "\033[33m",
	"error": "\033[31m",
}

const colorReset = "\033[0m"

type implLogger struct {
	mu    sync.Mutex
	out   io.Writer
	level string
	color bool
	now   func() time.Time
}

// New creates a new Logger instance writing to stdout
func New(level string) Logger {
	fd := os.Stdout.Fd()
	color := (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("NO_COLOR") == ""
	return newLogger(os.Stdout, level, color)
}

// NewWithWriter creates an uncolored Logger writing to w
func NewWithWriter(w io.Writer, level string) Logger {
	return newLogger(w, level, false)
}

func newLogger(w io.Writer, level string, color bool) *implLogger {
	return &implLogger{
		out:   w,
		level: strings.ToLower(level),
		color: color,
		now:   time.Now,
	}
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args...)
}

// write must be called directly from one of the level methods so the
// caller lookup lands on the user's frame.
func (l *implLogger) write(ctx context.Context, level, msg string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	module, function := "unknown", "unknown"
	if pc, _, _, ok := runtime.Caller(2); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			module, function = splitFuncName(fn.Name())
		}
	}

	label := strings.ToUpper(level)
	if l.color {
		label = levelColors[level] + label + colorReset
	}

	text := msg
	if len(args) > 0 {
		text = fmt.Sprintf(msg, args...)
	}
	if id := RunID(ctx); id != "" {
		text = "run=" + id + " " + text
	}

	line := fmt.Sprintf("%s :: %s :: %s :: %s :: %s\n",
		l.now().Format(timeLayout), label, module, function, text)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, line)
}

// splitFuncName turns "example.com/mod/internal/processor.(*implProcessor).mux"
// into ("processor", "implProcessor.mux").
func splitFuncName(full string) (string, string) {
	rest := full
	if idx := strings.LastIndex(rest, "/"); idx >= 0 {
		rest = rest[idx+1:]
	}

	dot := strings.Index(rest, ".")
	if dot < 0 {
		return rest, "unknown"
	}

	module := rest[:dot]
	function := strings.NewReplacer("(*", "", "(", "", ")", "").Replace(rest[dot+1:])
	return module, function
}
