package richtext

// Node is one node of the rich-document tree consumed by the editor.
// The root is always a TypeDoc node; leaf TypeText nodes carry Text and
// optional Marks, container nodes carry Content.
type Node struct {
	Type    string                 `json:"type"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Content []Node                 `json:"content,omitempty"`
	Text    string                 `json:"text,omitempty"`
	Marks   []Mark                 `json:"marks,omitempty"`
}

// Mark is an inline formatting annotation attached to a text node.
type Mark struct {
	Type  string                 `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// Node types
const (
	TypeDoc            = "doc"
	TypeParagraph      = "paragraph"
	TypeHeading        = "heading"
	TypeText           = "text"
	TypeBulletList     = "bulletList"
	TypeOrderedList    = "orderedList"
	TypeListItem       = "listItem"
	TypeTaskList       = "taskList"
	TypeTaskItem       = "taskItem"
	TypeBlockquote     = "blockquote"
	TypeCodeBlock      = "codeBlock"
	TypeHorizontalRule = "horizontalRule"
	TypeHardBreak      = "hardBreak"
)

// Mark types
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkStrike    = "strike"
	MarkUnderline = "underline"
	MarkCode      = "code"
	MarkLink      = "link"
	MarkTextStyle = "textStyle"
	MarkHighlight = "highlight"
)

// Doc wraps content nodes in a document root. An empty document always
// contains a single empty paragraph so the editor never receives a doc
// with zero content nodes.
func Doc(content ...Node) Node {
	if len(content) == 0 {
		content = []Node{{Type: TypeParagraph}}
	}
	return Node{Type: TypeDoc, Content: content}
}

// Paragraph builds a paragraph node from inline content.
func Paragraph(inline ...Node) Node {
	return Node{Type: TypeParagraph, Content: inline}
}

// Heading builds a heading node at the given level.
func Heading(level int, inline ...Node) Node {
	return Node{
		Type:    TypeHeading,
		Attrs:   map[string]interface{}{"level": level},
		Content: inline,
	}
}

// Text builds an inline text node with optional marks.
func Text(text string, marks ...Mark) Node {
	return Node{Type: TypeText, Text: text, Marks: marks}
}

// HeadingLevel reads the level attribute of a heading node, defaulting
// to 1 when absent or malformed.
func (n *Node) HeadingLevel() int {
	if n.Attrs == nil {
		return 1
	}
	switch v := n.Attrs["level"].(type) {
	case int:
		return v
	case float64:
		// JSON round-trips numbers as float64
		return int(v)
	default:
		return 1
	}
}

// AttrString reads a string attribute, defaulting to "" when absent.
func (n *Node) AttrString(key string) string {
	if n.Attrs == nil {
		return ""
	}
	s, _ := n.Attrs[key].(string)
	return s
}

// AttrBool reads a boolean attribute, defaulting to false when absent.
func (n *Node) AttrBool(key string) bool {
	if n.Attrs == nil {
		return false
	}
	b, _ := n.Attrs[key].(bool)
	return b
}

// MarkAttrString reads a string attribute from a mark.
func (m *Mark) MarkAttrString(key string) string {
	if m.Attrs == nil {
		return ""
	}
	s, _ := m.Attrs[key].(string)
	return s
}
