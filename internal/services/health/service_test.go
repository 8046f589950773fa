package health

import (
	"testing"
	"time"
)

func TestStatus(t *testing.T) {
	svc := NewService()
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	}

	status := svc.Status()
	if status["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", status["status"])
	}
	if status["timestamp"] != "2026-03-01T12:00:00Z" {
		t.Fatalf("unexpected timestamp %v", status["timestamp"])
	}
}
