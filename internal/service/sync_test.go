package service

import (
	"context"
	"errors"
	"testing"

	"notedeck/internal/domain"
	"notedeck/internal/notion"
	"notedeck/internal/richtext"
)

type fakePageClient struct {
	blocks   []notion.Block
	appended map[string][]notion.Block
	err      error
}

func (f *fakePageClient) PageBlocks(_ context.Context, pageID string) ([]notion.Block, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.blocks, nil
}

func (f *fakePageClient) AppendBlocks(_ context.Context, pageID string, blocks []notion.Block) error {
	if f.err != nil {
		return f.err
	}
	if f.appended == nil {
		f.appended = map[string][]notion.Block{}
	}
	f.appended[pageID] = append(f.appended[pageID], blocks...)
	return nil
}

func notionParagraph(text string) notion.Block {
	return notion.Block{
		Type: notion.BlockParagraph,
		Paragraph: &notion.TextPayload{
			RichText: []notion.RichText{{
				PlainText:   text,
				Annotations: notion.Annotations{Color: notion.ColorDefault},
			}},
		},
	}
}

func TestPullPage(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace()
	dsvc := NewDocumentService(ws, testLogger())
	client := &fakePageClient{blocks: []notion.Block{notionParagraph("pulled from notion")}}
	svc := NewSyncService(ws, client, testLogger())

	doc, err := dsvc.CreateDocument(ctx, &CreateDocumentRequest{Title: "Synced"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.PullPage(ctx, doc.ID, "page-123")
	if err != nil {
		t.Fatalf("PullPage: %v", err)
	}
	if updated.NotionPageID == nil || *updated.NotionPageID != "page-123" {
		t.Errorf("NotionPageID = %v, want page-123", updated.NotionPageID)
	}
	if updated.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", updated.WordCount)
	}
	if got := richtext.PlainText(updated.Content); got != "pulled from notion" {
		t.Errorf("content text = %q", got)
	}
}

func TestPushPageUsesLinkedPage(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace()
	dsvc := NewDocumentService(ws, testLogger())
	client := &fakePageClient{blocks: []notion.Block{notionParagraph("original")}}
	svc := NewSyncService(ws, client, testLogger())

	doc, err := dsvc.CreateDocument(ctx, &CreateDocumentRequest{Title: "Linked"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.PullPage(ctx, doc.ID, "page-abc"); err != nil {
		t.Fatal(err)
	}

	content := richtext.Doc(richtext.Paragraph(richtext.Text("edited locally")))
	if _, err := dsvc.UpdateDocument(ctx, doc.ID, &UpdateDocumentRequest{Content: &content}); err != nil {
		t.Fatal(err)
	}

	n, err := svc.PushPage(ctx, doc.ID, "")
	if err != nil {
		t.Fatalf("PushPage: %v", err)
	}
	if n != 1 {
		t.Errorf("pushed %d blocks, want 1", n)
	}
	if len(client.appended["page-abc"]) != 1 {
		t.Errorf("appended to %v, want page-abc", client.appended)
	}
}

func TestPushPageWithoutLink(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace()
	dsvc := NewDocumentService(ws, testLogger())
	svc := NewSyncService(ws, &fakePageClient{}, testLogger())

	doc, err := dsvc.CreateDocument(ctx, &CreateDocumentRequest{Title: "Unlinked"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.PushPage(ctx, doc.ID, ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestSyncUnconfigured(t *testing.T) {
	ctx := context.Background()
	svc := NewSyncService(newTestWorkspace(), nil, testLogger())

	if _, err := svc.PullPage(ctx, "doc", "page"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("PullPage err = %v, want validation error", err)
	}
	if _, err := svc.PushPage(ctx, "doc", "page"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("PushPage err = %v, want validation error", err)
	}
}
