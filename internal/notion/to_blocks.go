package notion

import (
	"strings"

	"notedeck/internal/richtext"
)

// DocumentToBlocks converts a rich-document tree back into a Notion
// block sequence. The mapping is intentionally lossy where the external
// model is flatter than the editor's: list nodes expand to one block per
// item, blockquotes collapse multi-paragraph content into a single
// quote's rich text, and content nested inside a list item beyond its
// first paragraph is dropped.
//
// Conversion never fails; malformed or missing optional fields default
// to empty values.
func DocumentToBlocks(doc richtext.Node) []Block {
	blocks := []Block{}
	for _, n := range doc.Content {
		blocks = append(blocks, convertNode(n)...)
	}
	return blocks
}

// convertNode maps one top-level node to zero or more blocks.
func convertNode(n richtext.Node) []Block {
	switch n.Type {
	case richtext.TypeParagraph:
		return []Block{{
			Type:      BlockParagraph,
			Paragraph: &TextPayload{RichText: richTextRuns(n.Content)},
		}}

	case richtext.TypeHeading:
		return []Block{headingBlock(n)}

	case richtext.TypeBulletList:
		return listItemBlocks(n, func(runs []RichText, _ bool) Block {
			return Block{Type: BlockBulletedListItem, BulletedListItem: &TextPayload{RichText: runs}}
		})

	case richtext.TypeOrderedList:
		return listItemBlocks(n, func(runs []RichText, _ bool) Block {
			return Block{Type: BlockNumberedListItem, NumberedListItem: &TextPayload{RichText: runs}}
		})

	case richtext.TypeTaskList:
		return listItemBlocks(n, func(runs []RichText, checked bool) Block {
			return Block{Type: BlockToDo, ToDo: &ToDoPayload{RichText: runs, Checked: checked}}
		})

	case richtext.TypeBlockquote:
		return []Block{quoteBlock(n)}

	case richtext.TypeCodeBlock:
		return []Block{codeBlock(n)}

	case richtext.TypeHorizontalRule:
		return []Block{{Type: BlockDivider, Divider: &struct{}{}}}
	}

	// Node kinds without an external representation are dropped.
	return nil
}

// headingBlock clamps the editor's heading levels to Notion's 1..3.
// Out-of-range levels are clamped, never dropped.
func headingBlock(n richtext.Node) Block {
	level := n.HeadingLevel()
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}

	payload := &TextPayload{RichText: richTextRuns(n.Content)}
	switch level {
	case 1:
		return Block{Type: BlockHeading1, Heading1: payload}
	case 2:
		return Block{Type: BlockHeading2, Heading2: payload}
	default:
		return Block{Type: BlockHeading3, Heading3: payload}
	}
}

// listItemBlocks expands a list node into one sibling block per item.
// Only the item's first paragraph child supplies the block's rich text;
// nested content inside an item (sub-lists and further paragraphs) is
// dropped in this direction, a known asymmetry with the forward
// converter that is preserved deliberately.
func listItemBlocks(list richtext.Node, build func(runs []RichText, checked bool) Block) []Block {
	var blocks []Block
	for _, item := range list.Content {
		var runs []RichText
		for _, child := range item.Content {
			if child.Type == richtext.TypeParagraph {
				runs = richTextRuns(child.Content)
				break
			}
		}
		if runs == nil {
			runs = []RichText{}
		}
		blocks = append(blocks, build(runs, item.AttrBool("checked")))
	}
	return blocks
}

// quoteBlock flattens a blockquote's paragraph children into a single
// quote's rich text run list. Structure beyond "has multiple paragraphs"
// is lost here; that is the accepted lossy edge of this direction.
func quoteBlock(n richtext.Node) Block {
	runs := []RichText{}
	for _, child := range n.Content {
		if child.Type == richtext.TypeParagraph {
			runs = append(runs, richTextRuns(child.Content)...)
		}
	}
	return Block{Type: BlockQuote, Quote: &TextPayload{RichText: runs}}
}

func codeBlock(n richtext.Node) Block {
	var text strings.Builder
	for _, child := range n.Content {
		if child.Type == richtext.TypeText {
			text.WriteString(child.Text)
		}
	}

	runs := []RichText{}
	if text.Len() > 0 {
		runs = append(runs, RichText{
			PlainText:   text.String(),
			Annotations: Annotations{Color: ColorDefault},
		})
	}
	return Block{
		Type: BlockCode,
		Code: &CodePayload{RichText: runs, Language: n.AttrString("language")},
	}
}

// richTextRuns converts inline nodes to rich text runs, folding each
// node's marks into one flat annotations record.
func richTextRuns(inline []richtext.Node) []RichText {
	runs := []RichText{}
	for _, n := range inline {
		switch n.Type {
		case richtext.TypeText:
			runs = append(runs, runFor(n))
		case richtext.TypeHardBreak:
			runs = append(runs, RichText{
				PlainText:   "\n",
				Annotations: Annotations{Color: ColorDefault},
			})
		}
	}
	return runs
}

// runFor folds a text node's mark list into the flat annotations record.
// Marks are visited in their original order; when two marks map onto the
// same annotation slot (e.g. two colors), the later one wins, because
// the record has no room for more than one.
func runFor(n richtext.Node) RichText {
	run := RichText{
		PlainText:   n.Text,
		Annotations: Annotations{Color: ColorDefault},
	}
	for _, m := range n.Marks {
		switch m.Type {
		case richtext.MarkBold:
			run.Annotations.Bold = true
		case richtext.MarkItalic:
			run.Annotations.Italic = true
		case richtext.MarkStrike:
			run.Annotations.Strikethrough = true
		case richtext.MarkUnderline:
			run.Annotations.Underline = true
		case richtext.MarkCode:
			run.Annotations.Code = true
		case richtext.MarkTextStyle:
			if name, ok := colorForCSS(m.MarkAttrString("color")); ok {
				run.Annotations.Color = name
			}
		case richtext.MarkHighlight:
			if name, ok := backgroundForCSS(m.MarkAttrString("color")); ok {
				run.Annotations.Color = name
			}
		case richtext.MarkLink:
			if href := m.MarkAttrString("href"); href != "" {
				h := href
				run.Href = &h
			}
		}
	}
	return run
}
