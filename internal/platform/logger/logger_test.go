package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func fixedLogger(buf *bytes.Buffer, format Format, level Level) *StdLogger {
	l := New(Options{Level: level, Format: format, App: "petpal", Output: buf}).(*StdLogger)
	l.now = func() time.Time { return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC) }
	return l
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, FormatJSON, Info)

	l.With(map[string]any{"component": "orm"}).Info("store ready", map[string]any{"driver": "sqlite"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	want := map[string]any{
		"app":       "petpal",
		"component": "orm",
		"driver":    "sqlite",
		"level":     "info",
		"msg":       "store ready",
		"ts":        "2025-12-22T10:00:00Z",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Fatalf("field %s: expected %v, got %v", k, v, entry[k])
		}
	}
}

func TestLogger_TextSortedAndQuoted(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, FormatText, Debug)

	l.Warn("slow query", map[string]any{"sql": "SELECT 1", "rows": 1})

	got := strings.TrimSpace(buf.String())
	want := `app=petpal level=warn msg="slow query" rows=1 sql="SELECT 1" ts=2025-12-22T10:00:00Z`
	if got != want {
		t.Fatalf("unexpected line\n got: %s\nwant: %s", got, want)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, FormatText, Warn)

	l.Debug("nope", nil)
	l.Info("nope", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}
	l.Error("boom", nil)
	if !strings.Contains(buf.String(), "level=error") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("bogus") != Info || ParseLevel("debug") != Debug {
		t.Fatalf("unexpected ParseLevel results")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected ParseFormat results")
	}
}
