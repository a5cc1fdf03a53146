// Package markdown renders rich-document trees as Markdown for the
// export endpoint and for word counting.
package markdown

import (
	"fmt"
	"strings"

	"notedeck/internal/richtext"
)

// Export converts a rich-document tree to Markdown text.
func Export(doc richtext.Node) string {
	var b strings.Builder
	for _, node := range doc.Content {
		writeNode(&b, node, 0)
	}
	return strings.TrimSpace(b.String())
}

func writeNode(b *strings.Builder, node richtext.Node, depth int) {
	switch node.Type {
	case richtext.TypeHeading:
		b.WriteString(strings.Repeat("#", clampLevel(node.HeadingLevel())))
		b.WriteString(" ")
		writeInline(b, node.Content)
		b.WriteString("\n\n")

	case richtext.TypeParagraph:
		writeInline(b, node.Content)
		b.WriteString("\n\n")

	case richtext.TypeBulletList:
		for _, item := range node.Content {
			writeListItem(b, item, depth, "- ")
		}
		if depth == 0 {
			b.WriteString("\n")
		}

	case richtext.TypeOrderedList:
		for i, item := range node.Content {
			writeListItem(b, item, depth, fmt.Sprintf("%d. ", i+1))
		}
		if depth == 0 {
			b.WriteString("\n")
		}

	case richtext.TypeTaskList:
		for _, item := range node.Content {
			box := "[ ] "
			if item.AttrBool("checked") {
				box = "[x] "
			}
			writeListItem(b, item, depth, "- "+box)
		}
		if depth == 0 {
			b.WriteString("\n")
		}

	case richtext.TypeCodeBlock:
		b.WriteString("```")
		b.WriteString(node.AttrString("language"))
		b.WriteString("\n")
		for _, child := range node.Content {
			if child.Type == richtext.TypeText {
				b.WriteString(child.Text)
			}
		}
		b.WriteString("\n```\n\n")

	case richtext.TypeBlockquote:
		for _, child := range node.Content {
			var inner strings.Builder
			writeNode(&inner, child, depth)
			for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
				b.WriteString("> ")
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")

	case richtext.TypeHorizontalRule:
		b.WriteString("---\n\n")

	case richtext.TypeHardBreak:
		b.WriteString("  \n")

	default:
		// Unknown containers: flatten their children
		for _, child := range node.Content {
			writeNode(b, child, depth)
		}
	}
}

func writeListItem(b *strings.Builder, item richtext.Node, depth int, marker string) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(marker)
	first := true
	for _, child := range item.Content {
		if child.Type == richtext.TypeParagraph && first {
			writeInline(b, child.Content)
			b.WriteString("\n")
			first = false
			continue
		}
		writeNode(b, child, depth+1)
	}
	if first {
		b.WriteString("\n")
	}
}

func writeInline(b *strings.Builder, inline []richtext.Node) {
	for _, node := range inline {
		switch node.Type {
		case richtext.TypeText:
			b.WriteString(wrapMarks(node.Text, node.Marks))
		case richtext.TypeHardBreak:
			b.WriteString("  \n")
		}
	}
}

// wrapMarks surrounds text with Markdown markers for the marks the
// format can express; colors, highlights, and underline have no
// Markdown spelling and pass through unwrapped.
func wrapMarks(text string, marks []richtext.Mark) string {
	result := text
	for _, mark := range marks {
		switch mark.Type {
		case richtext.MarkBold:
			result = "**" + result + "**"
		case richtext.MarkItalic:
			result = "*" + result + "*"
		case richtext.MarkCode:
			result = "`" + result + "`"
		case richtext.MarkStrike:
			result = "~~" + result + "~~"
		case richtext.MarkLink:
			if href := mark.MarkAttrString("href"); href != "" {
				result = "[" + result + "](" + href + ")"
			}
		}
	}
	return result
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
