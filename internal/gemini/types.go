// Package gemini holds the wire types for the generative-language REST
// surface the mock exposes. Field names and JSON casing mirror the public
// API so recorded fixtures stay interchangeable with real responses.
package gemini

import "strings"

// GenerateContentRequest is the inbound payload for generateContent,
// streamGenerateContent and countTokens.
type GenerateContentRequest struct {
	Contents          []Content         `json:"contents" validate:"required,min=1"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
	// SafetySettings are accepted for shape compatibility but never
	// consulted; the mock always reports NEGLIGIBLE ratings.
	SafetySettings []SafetySetting `json:"safetySettings,omitempty"`
}

// Content is a single conversation turn.
type Content struct {
	Role  string `json:"role,omitempty"` // "user" | "model"
	Parts []Part `json:"parts"`
}

// Part is one content unit within a turn: text, an inline base64 blob,
// or a reference to an externally uploaded file.
type Part struct {
	Text       string    `json:"text,omitempty"`
	InlineData *Blob     `json:"inlineData,omitempty"`
	FileData   *FileData `json:"fileData,omitempty"`
}

// HasMedia reports whether the part carries binary content rather than text.
func (p Part) HasMedia() bool {
	return p.InlineData != nil || p.FileData != nil
}

// Blob is an inline binary payload.
type Blob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

// FileData references an externally hosted file.
type FileData struct {
	MimeType string `json:"mimeType,omitempty"`
	FileURI  string `json:"fileUri"`
}

// GenerationConfig is the optional tuning bag. The engine only consults
// MaxOutputTokens; the rest is accepted so real client payloads round-trip.
type GenerationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	TopK            *int     `json:"topK,omitempty"`
	TopP            *float64 `json:"topP,omitempty"`
	MaxOutputTokens *int     `json:"maxOutputTokens,omitempty"`
	CandidateCount  *int     `json:"candidateCount,omitempty"`
	StopSequences   []string `json:"stopSequences,omitempty"`
}

// SafetySetting is a caller-supplied per-category threshold.
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// FinishReason describes why candidate generation stopped.
type FinishReason string

const (
	FinishReasonStop       FinishReason = "STOP"
	FinishReasonMaxTokens  FinishReason = "MAX_TOKENS"
	FinishReasonSafety     FinishReason = "SAFETY"
	FinishReasonRecitation FinishReason = "RECITATION"
	FinishReasonOther      FinishReason = "OTHER"
)

// GenerateContentResponse is the blocking response body, and also the
// shape of every streamed snapshot.
type GenerateContentResponse struct {
	Candidates    []Candidate   `json:"candidates"`
	UsageMetadata UsageMetadata `json:"usageMetadata"`
	ModelVersion  string        `json:"modelVersion"`
}

// Candidate is one generated alternative. The mock always produces
// exactly one.
type Candidate struct {
	Content       Content        `json:"content"`
	FinishReason  FinishReason   `json:"finishReason"`
	Index         int            `json:"index"`
	SafetyRatings []SafetyRating `json:"safetyRatings"`
}

// SafetyRating is a (category, probability) assessment pair.
type SafetyRating struct {
	Category    string `json:"category"`
	Probability string `json:"probability"`
}

// UsageMetadata carries token accounting for one request/response cycle.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// CountTokensResponse is the countTokens response body.
type CountTokensResponse struct {
	TotalTokens int `json:"totalTokens"`
}

// HasMediaPart reports whether any part of any turn carries inline data
// or a file reference.
func HasMediaPart(contents []Content) bool {
	for _, c := range contents {
		for _, p := range c.Parts {
			if p.HasMedia() {
				return true
			}
		}
	}
	return false
}

// LatestText returns the space-joined text of the last turn, which is
// the turn the engine responds to.
func LatestText(contents []Content) string {
	if len(contents) == 0 {
		return ""
	}
	last := contents[len(contents)-1]
	texts := make([]string, 0, len(last.Parts))
	for _, p := range last.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.TrimSpace(strings.Join(texts, " "))
}
