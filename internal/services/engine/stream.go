package engine

import (
	"context"
	"strings"
	"time"

	"github.com/probelab/genmock/internal/gemini"
)

// Stream generates the full response, then replays it word by word.
// Each snapshot is a complete response whose text is the space-joined
// prefix of the words emitted so far - self-contained and growing, not
// a delta. Word deadlines are computed once against the stream start
// time (word i fires at start + i*WordDelay), so a slow consumer does
// not push later words out; the schedule is fixed when the stream opens.
//
// Emission stops as soon as the context is cancelled: a disconnected
// client does not keep timers running to completion.
func (s *Implementation) Stream(ctx context.Context, model string, req *gemini.GenerateContentRequest, emit func(*gemini.GenerateContentResponse) error) error {
	if err := ValidateRequest(req); err != nil {
		return err
	}
	if err := s.sleep(ctx, s.latency()); err != nil {
		return err
	}

	resp := s.respond(model, req)
	promptTokens := resp.UsageMetadata.PromptTokenCount
	text := ""
	if len(resp.Candidates) > 0 && len(resp.Candidates[0].Content.Parts) > 0 {
		text = resp.Candidates[0].Content.Parts[0].Text
	}

	return s.streamText(ctx, resp.ModelVersion, text, promptTokens, emit)
}

// streamText emits one snapshot per word of text. An empty text emits
// nothing and returns nil so the transport still closes cleanly.
func (s *Implementation) streamText(ctx context.Context, model, text string, promptTokens int, emit func(*gemini.GenerateContentResponse) error) error {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	start := time.Now()
	for i := range words {
		target := start.Add(time.Duration(i) * s.timing.WordDelay)
		if err := s.sleep(ctx, time.Until(target)); err != nil {
			return err
		}

		snapshot := s.assemble(model, strings.Join(words[:i+1], " "), promptTokens)
		if err := emit(snapshot); err != nil {
			return err
		}
	}
	return nil
}
