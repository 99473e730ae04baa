package summarizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/commentsense/internal/models"
)

const NoCommentsMessage = "No comments to summarize."

var (
	positiveKeywords = []string{"great", "good", "like", "love"}
	negativeKeywords = []string{"bad", "poor", "hate", "dislike"}
)

// FallbackSummarize describes comments from lexical counts alone. It needs
// no network and always returns a non-empty string.
//
// A comment can count toward both tallies ("I like it, but the battery is
// bad"), and since "dislike" contains "like" it always does.
func FallbackSummarize(comments models.CommentSet) string {
	if comments.IsEmpty() {
		return NoCommentsMessage
	}

	count := len(comments)
	totalLength := 0
	positive, negative := 0, 0
	for _, c := range comments {
		totalLength += utf8.RuneCountInString(strings.TrimSpace(c))

		lower := strings.ToLower(c)
		if containsAny(lower, positiveKeywords) {
			positive++
		}
		if containsAny(lower, negativeKeywords) {
			negative++
		}
	}

	sentiment := overallSentiment(positive, negative)

	if count == 1 {
		return fmt.Sprintf("There is 1 comment with %s sentiment.", sentiment)
	}

	summary := fmt.Sprintf("There are %d comments with %s sentiment. ", count, sentiment)
	if count >= 3 {
		// integer division floors the non-negative mean
		summary += fmt.Sprintf("Comments have an average length of %d characters.", totalLength/count)
	}
	return summary
}

func overallSentiment(positive, negative int) string {
	switch {
	case positive > negative:
		return "mostly positive"
	case negative > positive:
		return "mostly negative"
	default:
		return "mixed or neutral"
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
