package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"notedeck/internal/domain"
	"notedeck/internal/richtext"
	"notedeck/internal/tree"
)

func TestCreateDocumentDefaults(t *testing.T) {
	ctx := context.Background()
	svc := NewDocumentService(newTestWorkspace(), testLogger())

	doc, err := svc.CreateDocument(ctx, &CreateDocumentRequest{Title: "  Meeting notes  "})
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	if doc.Title != "Meeting notes" {
		t.Errorf("Title = %q, want trimmed", doc.Title)
	}
	if doc.FolderID != tree.FallbackFolderID {
		t.Errorf("FolderID = %q, want %q", doc.FolderID, tree.FallbackFolderID)
	}
	if doc.ID == "" {
		t.Error("ID not assigned")
	}
	// Empty content normalizes to a doc with one empty paragraph.
	if doc.Content.Type != richtext.TypeDoc || len(doc.Content.Content) != 1 {
		t.Errorf("Content = %+v, want empty doc shape", doc.Content)
	}
	if doc.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", doc.WordCount)
	}
}

func TestCreateDocumentValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewDocumentService(newTestWorkspace(), testLogger())

	_, err := svc.CreateDocument(ctx, &CreateDocumentRequest{Title: ""})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestUpdateDocumentRecountsWords(t *testing.T) {
	ctx := context.Background()
	svc := NewDocumentService(newTestWorkspace(), testLogger())

	doc, err := svc.CreateDocument(ctx, &CreateDocumentRequest{Title: "Draft"})
	if err != nil {
		t.Fatal(err)
	}
	created := doc.UpdatedAt

	content := richtext.Doc(
		richtext.Paragraph(richtext.Text("four words right here")),
	)
	time.Sleep(time.Millisecond)
	updated, err := svc.UpdateDocument(ctx, doc.ID, &UpdateDocumentRequest{Content: &content})
	if err != nil {
		t.Fatalf("UpdateDocument: %v", err)
	}
	if updated.WordCount != 4 {
		t.Errorf("WordCount = %d, want 4", updated.WordCount)
	}
	if !updated.UpdatedAt.After(created) {
		t.Error("UpdatedAt not bumped")
	}
	if updated.Title != "Draft" {
		t.Errorf("Title = %q, want unchanged", updated.Title)
	}
}

func TestUpdateDocumentNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewDocumentService(newTestWorkspace(), testLogger())

	title := "New title"
	_, err := svc.UpdateDocument(ctx, "missing", &UpdateDocumentRequest{Title: &title})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestUpdateDocumentNotionLink(t *testing.T) {
	ctx := context.Background()
	svc := NewDocumentService(newTestWorkspace(), testLogger())

	doc, err := svc.CreateDocument(ctx, &CreateDocumentRequest{Title: "Linked"})
	if err != nil {
		t.Fatal(err)
	}

	var link UpdateDocumentRequest
	if err := json.Unmarshal([]byte(`{"notionPageId":"page-1"}`), &link); err != nil {
		t.Fatal(err)
	}
	updated, err := svc.UpdateDocument(ctx, doc.ID, &link)
	if err != nil {
		t.Fatal(err)
	}
	if updated.NotionPageID == nil || *updated.NotionPageID != "page-1" {
		t.Fatalf("NotionPageID = %v, want page-1", updated.NotionPageID)
	}

	// Absent field leaves the link alone.
	var rename UpdateDocumentRequest
	if err := json.Unmarshal([]byte(`{"title":"Renamed"}`), &rename); err != nil {
		t.Fatal(err)
	}
	updated, err = svc.UpdateDocument(ctx, doc.ID, &rename)
	if err != nil {
		t.Fatal(err)
	}
	if updated.NotionPageID == nil {
		t.Error("link dropped by unrelated update")
	}

	// Explicit null unlinks.
	var unlink UpdateDocumentRequest
	if err := json.Unmarshal([]byte(`{"notionPageId":null}`), &unlink); err != nil {
		t.Fatal(err)
	}
	updated, err = svc.UpdateDocument(ctx, doc.ID, &unlink)
	if err != nil {
		t.Fatal(err)
	}
	if updated.NotionPageID != nil {
		t.Errorf("NotionPageID = %v, want nil", *updated.NotionPageID)
	}
}

func TestListDocumentsRecursive(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace()
	fsvc := NewFolderService(ws, testLogger())
	dsvc := NewDocumentService(ws, testLogger())

	if _, err := fsvc.CreateFolder(ctx, &CreateFolderRequest{Name: "Root"}); err != nil {
		t.Fatal(err)
	}
	if _, err := fsvc.CreateFolder(ctx, &CreateFolderRequest{Name: "Nested", ParentID: strPtr("root")}); err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct{ title, folder string }{
		{"In root", "root"},
		{"In nested", "nested"},
		{"Elsewhere", "general"},
	} {
		if _, err := dsvc.CreateDocument(ctx, &CreateDocumentRequest{Title: c.title, FolderID: c.folder}); err != nil {
			t.Fatal(err)
		}
	}

	direct, err := dsvc.ListDocuments(ctx, "root", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(direct) != 1 {
		t.Errorf("direct listing = %d docs, want 1", len(direct))
	}

	recursive, err := dsvc.ListDocuments(ctx, "root", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(recursive) != 2 {
		t.Errorf("recursive listing = %d docs, want 2", len(recursive))
	}

	all, err := dsvc.ListDocuments(ctx, "", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("unscoped listing = %d docs, want 3", len(all))
	}
}

func TestDeleteDocument(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace()
	svc := NewDocumentService(ws, testLogger())

	doc, err := svc.CreateDocument(ctx, &CreateDocumentRequest{Title: "Ephemeral"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteDocument(ctx, doc.ID); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if err := svc.DeleteDocument(ctx, doc.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete err = %v, want not found", err)
	}
}

func TestExportMarkdown(t *testing.T) {
	ctx := context.Background()
	svc := NewDocumentService(newTestWorkspace(), testLogger())

	content := richtext.Doc(
		richtext.Heading(2, richtext.Text("Agenda")),
		richtext.Paragraph(richtext.Text("Review the roadmap.")),
	)
	doc, err := svc.CreateDocument(ctx, &CreateDocumentRequest{Title: "Sync", Content: &content})
	if err != nil {
		t.Fatal(err)
	}

	md, err := svc.ExportMarkdown(ctx, doc.ID)
	if err != nil {
		t.Fatalf("ExportMarkdown: %v", err)
	}
	want := "## Agenda\n\nReview the roadmap."
	if md != want {
		t.Errorf("ExportMarkdown = %q, want %q", md, want)
	}
}

func TestSidebarCountsAndOrphans(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace()
	fsvc := NewFolderService(ws, testLogger())
	dsvc := NewDocumentService(ws, testLogger())
	tsvc := NewTreeService(ws, testLogger())

	if _, err := fsvc.CreateFolder(ctx, &CreateFolderRequest{Name: "Top"}); err != nil {
		t.Fatal(err)
	}
	if _, err := fsvc.CreateFolder(ctx, &CreateFolderRequest{Name: "Sub", ParentID: strPtr("top")}); err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct{ title, folder string }{
		{"A", "top"},
		{"B", "sub"},
		{"Lost", "deleted-long-ago"},
	} {
		if _, err := dsvc.CreateDocument(ctx, &CreateDocumentRequest{Title: c.title, FolderID: c.folder}); err != nil {
			t.Fatal(err)
		}
	}

	sb, err := tsvc.Sidebar(ctx)
	if err != nil {
		t.Fatalf("Sidebar: %v", err)
	}
	if len(sb.Folders) != 1 {
		t.Fatalf("roots = %d, want 1", len(sb.Folders))
	}
	top := sb.Folders[0]
	if top.DocCount != 2 {
		t.Errorf("top.DocCount = %d, want 2", top.DocCount)
	}
	if len(top.Folders) != 1 || top.Folders[0].ID != "sub" {
		t.Fatalf("top children = %+v, want [sub]", top.Folders)
	}
	if top.Folders[0].DocCount != 1 {
		t.Errorf("sub.DocCount = %d, want 1", top.Folders[0].DocCount)
	}
	if len(sb.Orphaned) != 1 || sb.Orphaned[0].Title != "Lost" {
		t.Errorf("Orphaned = %+v, want the dangling doc", sb.Orphaned)
	}
}
