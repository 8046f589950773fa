package roast

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPrepareTextRejectsShortContent(t *testing.T) {
	cases := []string{
		"",
		"   \n\t  ",
		strings.Repeat("a", 49),
		"  " + strings.Repeat("a", 49) + "  ",
	}
	for _, raw := range cases {
		if _, err := PrepareText(raw, 10000); !errors.Is(err, ErrContentTooShort) {
			t.Fatalf("input %q: expected ErrContentTooShort, got %v", raw, err)
		}
	}
}

func TestPrepareTextAcceptsMinimum(t *testing.T) {
	raw := strings.Repeat("a", 50)
	out, err := PrepareText(raw, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != raw {
		t.Fatalf("expected text unchanged, got %q", out)
	}
}

func TestPrepareTextTruncatesAtCap(t *testing.T) {
	raw := strings.Repeat("b", 10001)
	out, err := PrepareText(raw, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(out, truncationMarker) {
		t.Fatalf("expected truncation marker suffix")
	}
	body := strings.TrimSuffix(out, truncationMarker)
	if got := utf8.RuneCountInString(body); got != 10000 {
		t.Fatalf("expected exactly 10000 runes before marker, got %d", got)
	}
}

func TestPrepareTextDeterministic(t *testing.T) {
	raw := strings.Repeat("résumé ", 2000)
	a, errA := PrepareText(raw, 10000)
	b, errB := PrepareText(raw, 10000)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v %v", errA, errB)
	}
	if a != b {
		t.Fatalf("expected deterministic output")
	}
}

func TestTruncateMultibyteBoundary(t *testing.T) {
	raw := strings.Repeat("é", 20)
	out := Truncate(raw, 10)
	if !strings.HasSuffix(out, truncationMarker) {
		t.Fatalf("expected marker")
	}
	body := strings.TrimSuffix(out, truncationMarker)
	if utf8.RuneCountInString(body) != 10 {
		t.Fatalf("expected 10 runes, got %d", utf8.RuneCountInString(body))
	}
	if !utf8.ValidString(out) {
		t.Fatalf("truncation split a rune")
	}
}
