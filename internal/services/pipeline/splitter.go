package pipeline

import (
	"regexp"
	"strings"
)

// MinFragmentLength is the cutoff below which a split fragment is dropped
// as too short to be a meaningful sentence. Measured before the trailing
// punctuation fix.
const MinFragmentLength = 10

var (
	terminalRuns   = regexp.MustCompile(`[.!?]+`)
	spaceRuns      = regexp.MustCompile(`[ \t]+`)
	blankLineRuns  = regexp.MustCompile(`\n\s*\n+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// NormalizeWhitespace collapses runs of spaces and tabs to single spaces
// and runs of blank lines to single newlines, trimming the result.
func NormalizeWhitespace(text string) string {
	text = blankLineRuns.ReplaceAllString(text, "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SplitSentences splits raw paragraph text into sentence fragments on runs
// of terminal punctuation (., !, ?). Fragments are trimmed, fragments of
// MinFragmentLength characters or fewer are dropped, and surviving
// fragments get a trailing period restored since splitting consumed their
// punctuation. Order follows the original left-to-right text.
func SplitSentences(text string) []string {
	fragments := terminalRuns.Split(text, -1)
	sentences := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(whitespaceRuns.ReplaceAllString(fragment, " "))
		if len(fragment) <= MinFragmentLength {
			continue
		}
		last := fragment[len(fragment)-1]
		if last != '.' && last != '!' && last != '?' {
			fragment += "."
		}
		sentences = append(sentences, fragment)
	}
	return sentences
}

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
