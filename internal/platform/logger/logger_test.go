package logger

import (
	"strings"
	"testing"
)

func TestSanitizeKVs(t *testing.T) {
	l := &Logger{hashSalt: "salt"}

	out := l.sanitizeKVs([]interface{}{
		"story_id", "65a1f0c2e4b0a1b2c3d4e5f6",
		"postgres_password", "hunter2",
		"user_id", "reader-1",
		"dangling",
	})
	if len(out) != 7 {
		t.Fatalf("len: want=7 got=%d", len(out))
	}
	if out[1] != "65a1f0c2e4b0a1b2c3d4e5f6" {
		t.Fatalf("story_id should pass through, got %v", out[1])
	}
	if out[3] != "[REDACTED]" {
		t.Fatalf("password should be redacted, got %v", out[3])
	}
	hashed, ok := out[5].(string)
	if !ok || !strings.HasPrefix(hashed, "hash:") || strings.Contains(hashed, "reader-1") {
		t.Fatalf("user_id should be hashed, got %v", out[5])
	}
	if out[6] != "dangling" {
		t.Fatalf("odd trailing key should be kept, got %v", out[6])
	}
}

func TestHashValueIsStable(t *testing.T) {
	l := &Logger{hashSalt: "s"}
	a := l.hashValue("reader-1")
	b := l.hashValue("reader-1")
	if a != b {
		t.Fatalf("hash not stable: %q vs %q", a, b)
	}
	if l.hashValue("") != "" {
		t.Fatalf("empty value should hash to empty string")
	}
}

func TestNewTestModeIsNop(t *testing.T) {
	l, err := New("test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.With("service", "x").Info("discarded", "user_id", "u")
}
