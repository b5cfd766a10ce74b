package toolpath

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultsToSilent(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("got a nil logger")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected the default logger to be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	rec := &recorder{}
	s, err := NewSession(rec, lineFace)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RenderRune('/'); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "rendering glyph") {
		t.Errorf("got log output %q, expected a per-glyph debug record", buf.String())
	}

	buf.Reset()
	if err := s.RenderRune('x'); err == nil {
		t.Fatal("expected an error for an unsupported rune")
	}
	if !strings.Contains(buf.String(), "no glyph program") {
		t.Errorf("got log output %q, expected a warning about the missing glyph", buf.String())
	}
}
