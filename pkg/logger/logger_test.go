package logger

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := parseLevel(in)
		if err != nil {
			t.Errorf("parseLevel(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := parseLevel("loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestConvertToFields(t *testing.T) {
	fields := convertToFields([]interface{}{"id", int64(7), "err", errors.New("boom"), "took", 2 * time.Second, "dangling"})
	if len(fields) != 4 {
		t.Fatalf("Expected 4 fields, got %d", len(fields))
	}
	if fields[0].Key != "id" || fields[0].Integer != 7 {
		t.Errorf("Unexpected first field: %+v", fields[0])
	}
	if fields[1].Key != "err" {
		t.Errorf("Expected error field keyed %q, got %q", "err", fields[1].Key)
	}
	if fields[2].Type != zapcore.DurationType || fields[2].Integer != int64(2*time.Second) {
		t.Errorf("Expected duration field, got %+v", fields[2])
	}
	if fields[3].Key != "dangling" {
		t.Errorf("Expected dangling key preserved, got %q", fields[3].Key)
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "text"} {
		log, err := New("error", format)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", format, err)
		}
		log.WithComponent("test").Info("ignored below error level")
	}
	if _, err := New("nope", "json"); err == nil {
		t.Error("Expected error for invalid level")
	}
}
