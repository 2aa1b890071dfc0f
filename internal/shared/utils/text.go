package utils

import (
	"math"
	"strings"
)

const (
	ExcerptLength  = 150
	WordsPerMinute = 200
)

// CollapseWhitespace trims and folds any run of whitespace into one space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Excerpt is the first ExcerptLength characters of the whitespace-collapsed content,
// followed by "..." when it was cut.
func Excerpt(content string) string {
	collapsed := CollapseWhitespace(content)
	r := []rune(collapsed)
	if len(r) <= ExcerptLength {
		return collapsed
	}
	return strings.TrimRight(string(r[:ExcerptLength]), " ") + "..."
}

// ReadTime estimates reading minutes at WordsPerMinute, rounded, minimum 1.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Round(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
