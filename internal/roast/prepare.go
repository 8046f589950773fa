package roast

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// minContentRunes is the floor below which extracted text carries too
	// little signal to critique.
	minContentRunes = 50

	truncationMarker = "\n\n[... truncated]"
)

// ErrContentTooShort rejects documents with too little extractable text.
var ErrContentTooShort = errors.New("content too short")

// PrepareText trims, validates and truncates text bound for the prompt
// builder. Pure and deterministic.
func PrepareText(raw string, maxChars int) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) < minContentRunes {
		return "", ErrContentTooShort
	}
	return Truncate(trimmed, maxChars), nil
}

// Truncate caps text at maxChars runes, appending a fixed marker when it had
// to cut. maxChars <= 0 disables the cap.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars]) + truncationMarker
}
