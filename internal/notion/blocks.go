// Package notion maps between the Notion block-page model and the
// editor's rich-document tree, and talks to the Notion REST API for
// wholesale page pulls and pushes.
package notion

// BlockType identifies the kind of a Notion block. The payload field
// matching the type carries the block's content; all other payload
// fields are nil.
type BlockType string

const (
	BlockParagraph        BlockType = "paragraph"
	BlockHeading1         BlockType = "heading_1"
	BlockHeading2         BlockType = "heading_2"
	BlockHeading3         BlockType = "heading_3"
	BlockBulletedListItem BlockType = "bulleted_list_item"
	BlockNumberedListItem BlockType = "numbered_list_item"
	BlockToDo             BlockType = "to_do"
	BlockQuote            BlockType = "quote"
	BlockCode             BlockType = "code"
	BlockCallout          BlockType = "callout"
	BlockToggle           BlockType = "toggle"
	BlockDivider          BlockType = "divider"
	BlockImage            BlockType = "image"
	BlockBookmark         BlockType = "bookmark"
)

// Block is one node of a Notion page. Children appear on list items and
// toggles; the API nests them arbitrarily deep.
type Block struct {
	Type             BlockType        `json:"type"`
	Paragraph        *TextPayload     `json:"paragraph,omitempty"`
	Heading1         *TextPayload     `json:"heading_1,omitempty"`
	Heading2         *TextPayload     `json:"heading_2,omitempty"`
	Heading3         *TextPayload     `json:"heading_3,omitempty"`
	BulletedListItem *TextPayload     `json:"bulleted_list_item,omitempty"`
	NumberedListItem *TextPayload     `json:"numbered_list_item,omitempty"`
	ToDo             *ToDoPayload     `json:"to_do,omitempty"`
	Quote            *TextPayload     `json:"quote,omitempty"`
	Code             *CodePayload     `json:"code,omitempty"`
	Callout          *CalloutPayload  `json:"callout,omitempty"`
	Toggle           *TextPayload     `json:"toggle,omitempty"`
	Divider          *struct{}        `json:"divider,omitempty"`
	Image            *ImagePayload    `json:"image,omitempty"`
	Bookmark         *BookmarkPayload `json:"bookmark,omitempty"`
	Children         []Block          `json:"children,omitempty"`
}

// TextPayload is the common payload of text-bearing blocks.
type TextPayload struct {
	RichText []RichText `json:"rich_text"`
}

// ToDoPayload is the payload of a to_do (checkbox) block.
type ToDoPayload struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

// CodePayload is the payload of a fenced code block.
type CodePayload struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language"`
}

// CalloutPayload is the payload of a callout block.
type CalloutPayload struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
}

// Icon is a callout's decoration; only emoji icons carry a glyph.
type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji,omitempty"`
}

// ImagePayload is the payload of an image block.
type ImagePayload struct {
	Caption  []RichText    `json:"caption,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
}

// ExternalFile points at an externally hosted file.
type ExternalFile struct {
	URL string `json:"url"`
}

// BookmarkPayload is the payload of a bookmark block.
type BookmarkPayload struct {
	URL     string     `json:"url"`
	Caption []RichText `json:"caption,omitempty"`
}

// RichText is one run of inline text with flat annotation flags.
type RichText struct {
	PlainText   string      `json:"plain_text"`
	Annotations Annotations `json:"annotations"`
	Href        *string     `json:"href,omitempty"`
}

// Annotations is the flat formatting record attached to a rich text run.
// Color holds either a foreground name or a "*_background" name.
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

// ColorDefault is the annotation color meaning "no color applied".
const ColorDefault = "default"

// richTextOf returns the block's rich text runs regardless of kind.
// Blocks without a text payload (divider, image, bookmark) yield nil.
func (b *Block) richTextOf() []RichText {
	switch b.Type {
	case BlockParagraph:
		if b.Paragraph != nil {
			return b.Paragraph.RichText
		}
	case BlockHeading1:
		if b.Heading1 != nil {
			return b.Heading1.RichText
		}
	case BlockHeading2:
		if b.Heading2 != nil {
			return b.Heading2.RichText
		}
	case BlockHeading3:
		if b.Heading3 != nil {
			return b.Heading3.RichText
		}
	case BlockBulletedListItem:
		if b.BulletedListItem != nil {
			return b.BulletedListItem.RichText
		}
	case BlockNumberedListItem:
		if b.NumberedListItem != nil {
			return b.NumberedListItem.RichText
		}
	case BlockToDo:
		if b.ToDo != nil {
			return b.ToDo.RichText
		}
	case BlockQuote:
		if b.Quote != nil {
			return b.Quote.RichText
		}
	case BlockCode:
		if b.Code != nil {
			return b.Code.RichText
		}
	case BlockCallout:
		if b.Callout != nil {
			return b.Callout.RichText
		}
	case BlockToggle:
		if b.Toggle != nil {
			return b.Toggle.RichText
		}
	}
	return nil
}
