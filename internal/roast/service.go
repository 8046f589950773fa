package roast

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"roast-backend/internal/extract"
	"roast-backend/internal/linkedin"
	"roast-backend/internal/llm"
	"roast-backend/internal/shared/metrics"
)

// Service runs the roast pipeline: extract, validate, build prompt, call
// upstream. It holds no per-request state.
type Service struct {
	LLM      llm.Client
	MaxChars int
	Metrics  *metrics.Metrics
}

// CVResult carries the critique plus metadata about the extracted text.
type CVResult struct {
	Roast           string
	WordCount       int
	ExtractedLength int
}

// RoastCV extracts text from an uploaded document and roasts it.
func (s *Service) RoastCV(ctx context.Context, data []byte, mimeType, fileName string) (CVResult, error) {
	text, err := extract.Extract(data, mimeType, fileName)
	if err != nil {
		s.Metrics.ObserveRoast("cv", "extract_error")
		return CVResult{}, err
	}

	prepared, err := PrepareText(text, s.MaxChars)
	if err != nil {
		s.Metrics.ObserveRoast("cv", "rejected")
		return CVResult{}, err
	}

	out, err := s.callUpstream(ctx, llm.ModeCV, prepared)
	if err != nil {
		s.Metrics.ObserveRoast("cv", "upstream_error")
		return CVResult{}, err
	}

	s.Metrics.ObserveRoast("cv", "ok")
	return CVResult{
		Roast:           out,
		WordCount:       len(strings.Fields(text)),
		ExtractedLength: utf8.RuneCountInString(text),
	}, nil
}

// RoastLinkedIn roasts pasted profile content, or the scraping-stub
// placeholder when only a URL was given. Pasted content is used verbatim
// apart from the length cap.
func (s *Service) RoastLinkedIn(ctx context.Context, url, content string) (string, error) {
	text := content
	if strings.TrimSpace(text) == "" {
		text = linkedin.FetchProfile(url)
	}
	text = Truncate(text, s.MaxChars)

	out, err := s.callUpstream(ctx, llm.ModeLinkedIn, text)
	if err != nil {
		s.Metrics.ObserveRoast("linkedin", "upstream_error")
		return "", err
	}
	s.Metrics.ObserveRoast("linkedin", "ok")
	return out, nil
}

func (s *Service) callUpstream(ctx context.Context, mode llm.Mode, text string) (string, error) {
	prompt := llm.BuildPrompt(mode, text)
	start := time.Now()
	out, err := s.LLM.Roast(ctx, prompt)
	s.Metrics.ObserveUpstream(time.Since(start))
	return out, err
}
