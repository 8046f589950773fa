package llm

import (
	"strings"
	"testing"
)

func TestBuildPromptEmbedsTextVerbatim(t *testing.T) {
	text := "10 years of <synergy> & \"disruption\""
	prompt := BuildPrompt(ModeCV, text)
	if !strings.Contains(prompt, text) {
		t.Fatalf("expected document text verbatim in prompt")
	}
	if strings.Contains(prompt, documentMarker) {
		t.Fatalf("marker not replaced")
	}
}

func TestBuildPromptModesDiffer(t *testing.T) {
	cv := BuildPrompt(ModeCV, "same text")
	li := BuildPrompt(ModeLinkedIn, "same text")
	if cv == li {
		t.Fatalf("expected cv and linkedin templates to differ")
	}
	if !strings.Contains(cv, "CV") {
		t.Fatalf("cv prompt missing cv guidance")
	}
	if !strings.Contains(li, "LinkedIn") {
		t.Fatalf("linkedin prompt missing linkedin guidance")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	a := BuildPrompt(ModeLinkedIn, "profile text")
	b := BuildPrompt(ModeLinkedIn, "profile text")
	if a != b {
		t.Fatalf("prompt build not deterministic")
	}
}
