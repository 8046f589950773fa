package llm

import (
	_ "embed"
	"strings"
)

// Mode selects the prompt template for a roast.
type Mode string

const (
	ModeCV       Mode = "cv"
	ModeLinkedIn Mode = "linkedin"
)

var (
	//go:embed prompts/cv.txt
	promptCV string
	//go:embed prompts/linkedin.txt
	promptLinkedIn string
)

const documentMarker = "{{DOCUMENT}}"

// BuildPrompt embeds the document text verbatim into the instructional
// template for the given mode. Unknown modes fall back to the CV template.
func BuildPrompt(mode Mode, text string) string {
	template := promptCV
	if mode == ModeLinkedIn {
		template = promptLinkedIn
	}
	return strings.Replace(template, documentMarker, text, 1)
}
