package engine

import (
	"strings"

	"github.com/probelab/genmock/internal/gemini"
)

// queryKind is the outcome of the intent cascade. The order of the
// constants matches the precedence order of classify: ties are broken
// by this listed order, not by keyword specificity, so callers can
// predict which branch fires.
type queryKind int

const (
	kindImage queryKind = iota
	kindHaiku
	kindCode
	kindDebug
	kindExplain
	kindTest
	kindDefault
)

// classify runs the fixed-precedence keyword cascade over the latest
// turn. Attached media anywhere in the conversation wins outright.
func classify(contents []gemini.Content) queryKind {
	if gemini.HasMediaPart(contents) {
		return kindImage
	}

	lower := strings.ToLower(gemini.LatestText(contents))
	switch {
	case strings.Contains(lower, "haiku"):
		return kindHaiku
	case containsAny(lower, "code", "function", "python", "javascript"):
		return kindCode
	case containsAny(lower, "error", "debug", "fix"):
		return kindDebug
	case containsAny(lower, "explain", "what is", "how to"):
		return kindExplain
	case containsAny(lower, "test", "testing"):
		return kindTest
	default:
		return kindDefault
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// composeText turns the classification into the actual response text.
// Image, default and code-language branches consult the injected random
// source; everything else is a single fixed text.
func (s *Implementation) composeText(contents []gemini.Content) string {
	switch classify(contents) {
	case kindImage:
		return s.pick(imageDescriptions)
	case kindHaiku:
		return haikuText
	case kindCode:
		lower := strings.ToLower(gemini.LatestText(contents))
		switch {
		case strings.Contains(lower, "python"):
			return pythonSnippet
		case strings.Contains(lower, "javascript"):
			return javascriptSnippet
		default:
			return codeAssistText
		}
	case kindDebug:
		return debugChecklistText
	case kindExplain:
		return explainText
	case kindTest:
		return testingAdviceText
	default:
		return s.defaultReply(gemini.LatestText(contents))
	}
}

// defaultReply echoes the first 50 characters of the prompt between a
// random lead-in and fixed boilerplate advice.
func (s *Implementation) defaultReply(prompt string) string {
	echo := prompt
	if runes := []rune(echo); len(runes) > 50 {
		echo = string(runes[:50]) + "..."
	}
	return s.pick(defaultLeadIns) + " You asked about: \"" + echo + "\". " + defaultAdviceText
}
