package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// StdLogger escribe una línea por entrada (key=value o JSON) sobre log.Logger.
type StdLogger struct {
	mu     *sync.Mutex
	std    *log.Logger
	level  Level
	format Format
	base   map[string]any
	now    func() time.Time
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Output: default os.Stdout.
	Output io.Writer
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	base := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	return &StdLogger{
		mu:     &sync.Mutex{},
		std:    log.New(out, "", 0),
		level:  opts.Level,
		format: format,
		base:   base,
		now:    time.Now,
	}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME=petpal (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

// Discard descarta todo. Útil en tests.
func Discard() Logger {
	return New(Options{Level: Error + 1, Output: io.Discard})
}

func (l *StdLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}

	merged := make(map[string]any, len(l.base)+len(fields))
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		merged[k] = v
	}

	// comparte writer y mutex con el padre
	return &StdLogger{
		mu:     l.mu,
		std:    l.std,
		level:  l.level,
		format: l.format,
		base:   merged,
		now:    l.now,
	}
}

func (l *StdLogger) Debug(msg string, fields map[string]any) { l.log(Debug, msg, fields) }
func (l *StdLogger) Info(msg string, fields map[string]any)  { l.log(Info, msg, fields) }
func (l *StdLogger) Warn(msg string, fields map[string]any)  { l.log(Warn, msg, fields) }
func (l *StdLogger) Error(msg string, fields map[string]any) { l.log(Error, msg, fields) }

func (l *StdLogger) log(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}

	entry := make(map[string]any, len(l.base)+len(fields)+3)
	for k, v := range l.base {
		entry[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		entry[k] = v
	}
	entry["ts"] = l.now().UTC().Format(time.RFC3339Nano)
	entry["level"] = lvl.String()
	entry["msg"] = msg

	var line string
	switch l.format {
	case FormatJSON:
		b, err := json.Marshal(entry)
		if err != nil {
			b, _ = json.Marshal(map[string]any{"level": lvl.String(), "msg": msg, "log_error": err.Error()})
		}
		line = string(b)
	default:
		line = formatText(entry)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.std.Println(line)
}

// formatText ordena las keys para que la salida sea estable.
func formatText(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := fmt.Sprintf("%v", m[k])
		if strings.ContainsAny(v, " \t\"=") {
			v = fmt.Sprintf("%q", v)
		}
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, " ")
}
