package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probelab/genmock/internal/gemini"
)

func collectSnapshots(t *testing.T, s *Implementation, req *gemini.GenerateContentRequest) []*gemini.GenerateContentResponse {
	t.Helper()
	var snapshots []*gemini.GenerateContentResponse
	err := s.Stream(context.Background(), "gemini-1.5-pro", req, func(snap *gemini.GenerateContentResponse) error {
		snapshots = append(snapshots, snap)
		return nil
	})
	require.NoError(t, err)
	return snapshots
}

func TestStreamEmitsOneSnapshotPerWord(t *testing.T) {
	s := newTestEngine(1)
	snapshots := collectSnapshots(t, s, textRequest("write a haiku"))

	words := strings.Fields(haikuText)
	require.Len(t, snapshots, len(words))

	for k, snap := range snapshots {
		expected := strings.Join(words[:k+1], " ")
		assert.Equal(t, expected, responseText(t, snap), "snapshot %d", k)
	}

	// The final snapshot carries the whole (whitespace-normalised) text.
	final := responseText(t, snapshots[len(snapshots)-1])
	assert.Equal(t, strings.Join(words, " "), final)
}

func TestStreamSnapshotsAreSelfContained(t *testing.T) {
	s := newTestEngine(1)
	req := textRequest("write a haiku")
	snapshots := collectSnapshots(t, s, req)

	promptTokens := EstimateTokens(serializeContents(req.Contents))
	for _, snap := range snapshots {
		require.Len(t, snap.Candidates, 1)
		assert.Equal(t, gemini.FinishReasonStop, snap.Candidates[0].FinishReason)
		assert.Len(t, snap.Candidates[0].SafetyRatings, 4)
		assert.Equal(t, promptTokens, snap.UsageMetadata.PromptTokenCount)
		assert.Equal(t,
			snap.UsageMetadata.PromptTokenCount+snap.UsageMetadata.CandidatesTokenCount,
			snap.UsageMetadata.TotalTokenCount)
	}
}

func TestStreamRespectsTruncation(t *testing.T) {
	s := newTestEngine(1)

	maxTokens := 5 // 3-word budget
	req := textRequest("please explain how APIs work")
	req.GenerationConfig = &gemini.GenerationConfig{MaxOutputTokens: &maxTokens}

	snapshots := collectSnapshots(t, s, req)
	require.NotEmpty(t, snapshots)
	final := responseText(t, snapshots[len(snapshots)-1])
	assert.True(t, strings.HasSuffix(final, "..."))
	assert.LessOrEqual(t, len(snapshots), 4) // 3 words + possible bare ellipsis token
}

func TestStreamEmptyTextEmitsNothing(t *testing.T) {
	s := newTestEngine(1)

	var emitted int
	err := s.streamText(context.Background(), "gemini-1.5-pro", "", 0, func(*gemini.GenerateContentResponse) error {
		emitted++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, emitted, "empty response must close the stream without chunks")
}

func TestStreamStopsOnCancelledContext(t *testing.T) {
	s := newTestEngine(1)
	s.timing.WordDelay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())

	var emitted int
	err := s.Stream(ctx, "gemini-1.5-pro", textRequest("write a haiku"), func(*gemini.GenerateContentResponse) error {
		emitted++
		if emitted == 2 {
			cancel()
		}
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, emitted)
}

func TestStreamStopsOnEmitError(t *testing.T) {
	s := newTestEngine(1)

	wantErr := assert.AnError
	var emitted int
	err := s.Stream(context.Background(), "gemini-1.5-pro", textRequest("write a haiku"), func(*gemini.GenerateContentResponse) error {
		emitted++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, emitted)
}

func TestStreamValidatesRequest(t *testing.T) {
	s := newTestEngine(1)
	err := s.Stream(context.Background(), "m", &gemini.GenerateContentRequest{}, func(*gemini.GenerateContentResponse) error {
		t.Fatal("emit must not be called for an invalid request")
		return nil
	})
	assert.ErrorIs(t, err, ErrMissingContents)
}
