package markdown

import (
	"strings"
	"unicode"

	"notedeck/internal/richtext"
)

// CountWords counts the words in a rich document by flattening it to
// plain text first, so formatting syntax never inflates the count.
func CountWords(doc richtext.Node) int {
	text := richtext.PlainText(doc)

	words := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r)
	})

	count := 0
	for _, word := range words {
		if len(strings.TrimSpace(word)) > 0 {
			count++
		}
	}
	return count
}
