package richtext

import "strings"

// PlainText flattens a node and its descendants into plain text.
// Block boundaries become newlines; marks are discarded.
func PlainText(n Node) string {
	var b strings.Builder
	writePlainText(&b, n)
	return strings.TrimSpace(b.String())
}

func writePlainText(b *strings.Builder, n Node) {
	switch n.Type {
	case TypeText:
		b.WriteString(n.Text)
	case TypeHardBreak:
		b.WriteString("\n")
	default:
		for _, child := range n.Content {
			writePlainText(b, child)
		}
		if isBlockType(n.Type) {
			b.WriteString("\n")
		}
	}
}

func isBlockType(t string) bool {
	switch t {
	case TypeParagraph, TypeHeading, TypeBlockquote, TypeCodeBlock,
		TypeListItem, TypeTaskItem, TypeHorizontalRule:
		return true
	}
	return false
}
