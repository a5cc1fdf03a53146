package notion

import (
	"strings"

	"notedeck/internal/richtext"
)

// ToggleMarker prefixes the first line of a converted toggle block; the
// editor has no native disclosure node, so toggles degrade to quotes
// with a visible marker.
const ToggleMarker = "▸ "

// BlocksToDocument converts a Notion block sequence into a rich-document
// tree. Consecutive list-item blocks of the same kind merge into a
// single list node; unknown block kinds are dropped. The result always
// has at least one paragraph so the editor never sees an empty doc.
func BlocksToDocument(blocks []Block) richtext.Node {
	return richtext.Doc(convertBlocks(blocks)...)
}

// convertBlocks walks the sequence with an explicit cursor rather than
// mapping block-by-block: runs of sibling list items have to collapse
// into one list container. Nested children re-enter this function, so
// arbitrarily deep structures convert naturally.
func convertBlocks(blocks []Block) []richtext.Node {
	var nodes []richtext.Node
	for i := 0; i < len(blocks); {
		switch blocks[i].Type {
		case BlockBulletedListItem:
			run := listRun(blocks, i, BlockBulletedListItem)
			nodes = append(nodes, listNode(richtext.TypeBulletList, richtext.TypeListItem, run))
			i += len(run)
		case BlockNumberedListItem:
			run := listRun(blocks, i, BlockNumberedListItem)
			nodes = append(nodes, listNode(richtext.TypeOrderedList, richtext.TypeListItem, run))
			i += len(run)
		case BlockToDo:
			run := listRun(blocks, i, BlockToDo)
			nodes = append(nodes, listNode(richtext.TypeTaskList, richtext.TypeTaskItem, run))
			i += len(run)
		default:
			if n, ok := convertBlock(blocks[i]); ok {
				nodes = append(nodes, n)
			}
			i++
		}
	}
	return nodes
}

// listRun returns the maximal run of consecutive blocks of one kind
// starting at index start.
func listRun(blocks []Block, start int, kind BlockType) []Block {
	end := start
	for end < len(blocks) && blocks[end].Type == kind {
		end++
	}
	return blocks[start:end]
}

// listNode wraps one run of list-item blocks in a list container, one
// item per run member. Item children (sub-lists, nested paragraphs)
// convert recursively and follow the item's own paragraph.
func listNode(listType, itemType string, run []Block) richtext.Node {
	items := make([]richtext.Node, 0, len(run))
	for _, b := range run {
		item := richtext.Node{
			Type:    itemType,
			Content: []richtext.Node{richtext.Paragraph(inlineNodes(b.richTextOf())...)},
		}
		if itemType == richtext.TypeTaskItem {
			checked := false
			if b.ToDo != nil {
				checked = b.ToDo.Checked
			}
			item.Attrs = map[string]interface{}{"checked": checked}
		}
		if len(b.Children) > 0 {
			item.Content = append(item.Content, convertBlocks(b.Children)...)
		}
		items = append(items, item)
	}
	return richtext.Node{Type: listType, Content: items}
}

// convertBlock maps a single non-list block. Returns ok=false for block
// kinds the editor has no representation for.
func convertBlock(b Block) (richtext.Node, bool) {
	switch b.Type {
	case BlockParagraph:
		return richtext.Paragraph(inlineNodes(b.richTextOf())...), true

	case BlockHeading1:
		return richtext.Heading(1, inlineNodes(b.richTextOf())...), true
	case BlockHeading2:
		return richtext.Heading(2, inlineNodes(b.richTextOf())...), true
	case BlockHeading3:
		return richtext.Heading(3, inlineNodes(b.richTextOf())...), true

	case BlockQuote:
		quote := richtext.Node{
			Type:    richtext.TypeBlockquote,
			Content: []richtext.Node{richtext.Paragraph(inlineNodes(b.richTextOf())...)},
		}
		if len(b.Children) > 0 {
			quote.Content = append(quote.Content, convertBlocks(b.Children)...)
		}
		return quote, true

	case BlockCode:
		n := richtext.Node{Type: richtext.TypeCodeBlock}
		if b.Code != nil && b.Code.Language != "" {
			n.Attrs = map[string]interface{}{"language": b.Code.Language}
		}
		if text := plainTextOf(b.richTextOf()); text != "" {
			n.Content = []richtext.Node{richtext.Text(text)}
		}
		return n, true

	case BlockDivider:
		return richtext.Node{Type: richtext.TypeHorizontalRule}, true

	case BlockCallout:
		// Callouts render as quotes with the icon glyph leading the text.
		inline := inlineNodes(b.richTextOf())
		if b.Callout != nil && b.Callout.Icon != nil && b.Callout.Icon.Emoji != "" {
			inline = append([]richtext.Node{richtext.Text(b.Callout.Icon.Emoji + " ")}, inline...)
		}
		return richtext.Node{
			Type:    richtext.TypeBlockquote,
			Content: []richtext.Node{richtext.Paragraph(inline...)},
		}, true

	case BlockToggle:
		// No disclosure node in the editor: a toggle becomes a quote whose
		// first line carries a synthetic marker, children following below.
		inline := append([]richtext.Node{richtext.Text(ToggleMarker)}, inlineNodes(b.richTextOf())...)
		toggle := richtext.Node{
			Type:    richtext.TypeBlockquote,
			Content: []richtext.Node{richtext.Paragraph(inline...)},
		}
		if len(b.Children) > 0 {
			toggle.Content = append(toggle.Content, convertBlocks(b.Children)...)
		}
		return toggle, true

	case BlockImage:
		caption := ""
		if b.Image != nil {
			caption = plainTextOf(b.Image.Caption)
		}
		stub := "[Image]"
		if caption != "" {
			stub = "[Image: " + caption + "]"
		}
		return richtext.Paragraph(richtext.Text(stub)), true

	case BlockBookmark:
		url, caption := "", ""
		if b.Bookmark != nil {
			url = b.Bookmark.URL
			caption = plainTextOf(b.Bookmark.Caption)
		}
		label := caption
		if label == "" {
			label = url
		}
		if label == "" {
			return richtext.Paragraph(), true
		}
		text := richtext.Text(label)
		if url != "" {
			text.Marks = []richtext.Mark{{
				Type:  richtext.MarkLink,
				Attrs: map[string]interface{}{"href": url},
			}}
		}
		return richtext.Paragraph(text), true
	}

	return richtext.Node{}, false
}

// inlineNodes converts rich text runs to inline text nodes with marks.
func inlineNodes(runs []RichText) []richtext.Node {
	nodes := make([]richtext.Node, 0, len(runs))
	for _, run := range runs {
		nodes = append(nodes, richtext.Text(run.PlainText, marksFor(run)...))
	}
	return nodes
}

// marksFor maps a run's flat annotations onto the editor's mark list.
// Mark order is not significant to the reverse converter.
func marksFor(run RichText) []richtext.Mark {
	var marks []richtext.Mark
	a := run.Annotations
	if a.Bold {
		marks = append(marks, richtext.Mark{Type: richtext.MarkBold})
	}
	if a.Italic {
		marks = append(marks, richtext.Mark{Type: richtext.MarkItalic})
	}
	if a.Strikethrough {
		marks = append(marks, richtext.Mark{Type: richtext.MarkStrike})
	}
	if a.Underline {
		marks = append(marks, richtext.Mark{Type: richtext.MarkUnderline})
	}
	if a.Code {
		marks = append(marks, richtext.Mark{Type: richtext.MarkCode})
	}
	if a.Color != "" && a.Color != ColorDefault {
		if css, ok := cssForColor(a.Color); ok {
			markType := richtext.MarkTextStyle
			if isBackgroundColor(a.Color) {
				markType = richtext.MarkHighlight
			}
			marks = append(marks, richtext.Mark{
				Type:  markType,
				Attrs: map[string]interface{}{"color": css},
			})
		}
	}
	if run.Href != nil && *run.Href != "" {
		marks = append(marks, richtext.Mark{
			Type:  richtext.MarkLink,
			Attrs: map[string]interface{}{"href": *run.Href},
		})
	}
	return marks
}

// plainTextOf joins a rich text sequence into one unformatted string.
func plainTextOf(runs []RichText) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.PlainText)
	}
	return b.String()
}
