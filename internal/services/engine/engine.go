// Package engine implements the mock response engine: it classifies the
// latest turn of a chat-style request, synthesizes canned text, applies
// approximate token accounting, and serves the result either whole or as
// a sequence of growing streaming snapshots.
package engine

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/config"
	"github.com/probelab/genmock/internal/gemini"
)

// safetyRatings is attached to every candidate regardless of input.
var safetyRatings = []gemini.SafetyRating{
	{Category: "HARM_CATEGORY_HARASSMENT", Probability: "NEGLIGIBLE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Probability: "NEGLIGIBLE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Probability: "NEGLIGIBLE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Probability: "NEGLIGIBLE"},
}

// Implementation holds the engine's timing knobs and random source.
// Every request builds its own response data; the only shared state is
// the rng, guarded by mu.
type Implementation struct {
	mu     sync.Mutex
	rng    *rand.Rand
	timing config.MockTiming
}

// Option customises an engine instance. Primarily used by tests to
// inject a deterministic random source and zero delays.
type Option func(*Implementation)

// WithRand replaces the random source used for branch selection and
// latency jitter.
func WithRand(rng *rand.Rand) Option {
	return func(s *Implementation) { s.rng = rng }
}

// WithTiming overrides the delay configuration.
func WithTiming(timing config.MockTiming) Option {
	return func(s *Implementation) { s.timing = timing }
}

// NewService creates an engine with timing from the environment and a
// time-seeded random source.
func NewService(opts ...Option) *Implementation {
	s := &Implementation{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		timing: config.GetMockTiming(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Service = (*Implementation)(nil)

// Generate waits out the simulated inference latency and returns one
// complete mock response.
func (s *Implementation) Generate(ctx context.Context, model string, req *gemini.GenerateContentRequest) (*gemini.GenerateContentResponse, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	if err := s.sleep(ctx, s.latency()); err != nil {
		return nil, err
	}
	return s.respond(model, req), nil
}

// CountTokens estimates the token count of the serialized contents.
func (s *Implementation) CountTokens(req *gemini.GenerateContentRequest) int {
	return EstimateTokens(serializeContents(req.Contents))
}

// respond runs classification, truncation and assembly. No delays here;
// callers handle timing.
func (s *Implementation) respond(model string, req *gemini.GenerateContentRequest) *gemini.GenerateContentResponse {
	text := s.composeText(req.Contents)

	if cfg := req.GenerationConfig; cfg != nil && cfg.MaxOutputTokens != nil {
		truncated, cut := TruncateWords(text, WordBudget(*cfg.MaxOutputTokens))
		if cut {
			log.Debug().Int("maxOutputTokens", *cfg.MaxOutputTokens).Msg("Response truncated to word budget")
		}
		text = truncated
	}

	promptTokens := EstimateTokens(serializeContents(req.Contents))
	return s.assemble(model, text, promptTokens)
}

// assemble wraps text in the full response structure: one candidate,
// finish reason STOP, the four fixed safety ratings, and token accounting.
func (s *Implementation) assemble(model, text string, promptTokens int) *gemini.GenerateContentResponse {
	if model == "" {
		model = gemini.DefaultModelVersion
	}

	responseTokens := EstimateTokens(text)
	return &gemini.GenerateContentResponse{
		Candidates: []gemini.Candidate{
			{
				Content: gemini.Content{
					Role:  "model",
					Parts: []gemini.Part{{Text: text}},
				},
				FinishReason:  gemini.FinishReasonStop,
				Index:         0,
				SafetyRatings: safetyRatings,
			},
		},
		UsageMetadata: gemini.UsageMetadata{
			PromptTokenCount:     promptTokens,
			CandidatesTokenCount: responseTokens,
			TotalTokenCount:      promptTokens + responseTokens,
		},
		ModelVersion: model,
	}
}

// serializeContents renders the contents the same way the wire does, so
// the prompt estimate tracks what the client actually sent.
func serializeContents(contents []gemini.Content) string {
	raw, err := json.Marshal(contents)
	if err != nil {
		return ""
	}
	return string(raw)
}

// latency draws a uniformly-random delay from [MinLatency, MaxLatency).
func (s *Implementation) latency() time.Duration {
	min, max := s.timing.MinLatency, s.timing.MaxLatency
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + time.Duration(s.rng.Int63n(int64(max-min)))
}

// sleep waits for d or until the context is cancelled.
func (s *Implementation) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// pick selects a random element from options.
func (s *Implementation) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rng.Intn(len(options))]
}
