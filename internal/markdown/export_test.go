package markdown

import (
	"testing"

	"notedeck/internal/richtext"
)

func TestExport(t *testing.T) {
	tests := []struct {
		name string
		doc  richtext.Node
		want string
	}{
		{
			name: "heading and paragraph",
			doc: richtext.Doc(
				richtext.Heading(2, richtext.Text("Title")),
				richtext.Paragraph(richtext.Text("Body text.")),
			),
			want: "## Title\n\nBody text.",
		},
		{
			name: "inline marks",
			doc: richtext.Doc(richtext.Paragraph(
				richtext.Text("bold", richtext.Mark{Type: richtext.MarkBold}),
				richtext.Text(" and "),
				richtext.Text("code", richtext.Mark{Type: richtext.MarkCode}),
			)),
			want: "**bold** and `code`",
		},
		{
			name: "link",
			doc: richtext.Doc(richtext.Paragraph(
				richtext.Text("site", richtext.Mark{
					Type:  richtext.MarkLink,
					Attrs: map[string]interface{}{"href": "https://example.com"},
				}),
			)),
			want: "[site](https://example.com)",
		},
		{
			name: "bullet list",
			doc: richtext.Doc(richtext.Node{
				Type: richtext.TypeBulletList,
				Content: []richtext.Node{
					{Type: richtext.TypeListItem, Content: []richtext.Node{richtext.Paragraph(richtext.Text("one"))}},
					{Type: richtext.TypeListItem, Content: []richtext.Node{richtext.Paragraph(richtext.Text("two"))}},
				},
			}),
			want: "- one\n- two",
		},
		{
			name: "task list",
			doc: richtext.Doc(richtext.Node{
				Type: richtext.TypeTaskList,
				Content: []richtext.Node{
					{
						Type:    richtext.TypeTaskItem,
						Attrs:   map[string]interface{}{"checked": true},
						Content: []richtext.Node{richtext.Paragraph(richtext.Text("done"))},
					},
					{
						Type:    richtext.TypeTaskItem,
						Content: []richtext.Node{richtext.Paragraph(richtext.Text("open"))},
					},
				},
			}),
			want: "- [x] done\n- [ ] open",
		},
		{
			name: "code block with language",
			doc: richtext.Doc(richtext.Node{
				Type:    richtext.TypeCodeBlock,
				Attrs:   map[string]interface{}{"language": "go"},
				Content: []richtext.Node{richtext.Text("fmt.Println()")},
			}),
			want: "```go\nfmt.Println()\n```",
		},
		{
			name: "blockquote",
			doc: richtext.Doc(richtext.Node{
				Type:    richtext.TypeBlockquote,
				Content: []richtext.Node{richtext.Paragraph(richtext.Text("quoted"))},
			}),
			want: "> quoted",
		},
		{
			name: "horizontal rule",
			doc: richtext.Doc(
				richtext.Paragraph(richtext.Text("above")),
				richtext.Node{Type: richtext.TypeHorizontalRule},
			),
			want: "above\n\n---",
		},
		{
			name: "empty doc",
			doc:  richtext.Doc(),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Export(tt.doc); got != tt.want {
				t.Errorf("Export() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		doc  richtext.Node
		want int
	}{
		{
			name: "plain paragraph",
			doc:  richtext.Doc(richtext.Paragraph(richtext.Text("three little words"))),
			want: 3,
		},
		{
			name: "marks do not inflate the count",
			doc: richtext.Doc(richtext.Paragraph(
				richtext.Text("bold", richtext.Mark{Type: richtext.MarkBold}),
				richtext.Text(" word"),
			)),
			want: 2,
		},
		{
			name: "counts across blocks",
			doc: richtext.Doc(
				richtext.Heading(1, richtext.Text("Title here")),
				richtext.Paragraph(richtext.Text("body")),
			),
			want: 3,
		},
		{
			name: "empty doc",
			doc:  richtext.Doc(),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.doc); got != tt.want {
				t.Errorf("CountWords() = %d, want %d", got, tt.want)
			}
		})
	}
}
