package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"notedeck/internal/domain"
	"notedeck/internal/store"
	"notedeck/internal/tree"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestWorkspace() *store.Workspace {
	return store.NewWorkspace(store.NewMemoryKV())
}

func strPtr(s string) *string { return &s }

func TestCreateFolder(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace()
	svc := NewFolderService(ws, testLogger())

	folder, err := svc.CreateFolder(ctx, &CreateFolderRequest{Name: "Work Projects"})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if folder.ID != "work-projects" {
		t.Errorf("ID = %q, want %q", folder.ID, "work-projects")
	}
	if folder.ParentID != nil {
		t.Errorf("ParentID = %v, want nil", *folder.ParentID)
	}
	if folder.Order != 0 {
		t.Errorf("Order = %d, want 0", folder.Order)
	}

	child, err := svc.CreateFolder(ctx, &CreateFolderRequest{
		Name:     "Q3 Planning",
		ParentID: strPtr("work-projects"),
	})
	if err != nil {
		t.Fatalf("CreateFolder child: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != "work-projects" {
		t.Errorf("child ParentID = %v, want work-projects", child.ParentID)
	}

	folders, err := ws.Folders(ctx)
	if err != nil {
		t.Fatalf("Folders: %v", err)
	}
	if len(folders) != 2 {
		t.Errorf("persisted %d folders, want 2", len(folders))
	}
}

func TestCreateFolderErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewFolderService(newTestWorkspace(), testLogger())

	if _, err := svc.CreateFolder(ctx, &CreateFolderRequest{Name: "Inbox"}); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	tests := []struct {
		name    string
		req     *CreateFolderRequest
		wantErr error
	}{
		{"duplicate slug", &CreateFolderRequest{Name: "INBOX"}, domain.ErrConflict},
		{"empty name", &CreateFolderRequest{Name: ""}, domain.ErrValidation},
		{"symbols only", &CreateFolderRequest{Name: "!!!"}, domain.ErrValidation},
		{"unknown parent", &CreateFolderRequest{Name: "Child", ParentID: strPtr("nope")}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateFolder(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenameFolderKeepsID(t *testing.T) {
	ctx := context.Background()
	svc := NewFolderService(newTestWorkspace(), testLogger())

	if _, err := svc.CreateFolder(ctx, &CreateFolderRequest{Name: "Drafts"}); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	renamed, err := svc.RenameFolder(ctx, "drafts", "Published Posts")
	if err != nil {
		t.Fatalf("RenameFolder: %v", err)
	}
	if renamed.ID != "drafts" {
		t.Errorf("ID changed to %q on rename", renamed.ID)
	}
	if renamed.Name != "Published Posts" {
		t.Errorf("Name = %q, want %q", renamed.Name, "Published Posts")
	}
}

func TestReparentFolderInside(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace()
	svc := NewFolderService(ws, testLogger())

	for _, name := range []string{"Alpha", "Beta"} {
		if _, err := svc.CreateFolder(ctx, &CreateFolderRequest{Name: name}); err != nil {
			t.Fatalf("CreateFolder %s: %v", name, err)
		}
	}

	offset, row := 16.0, 32.0
	applied, err := svc.ReparentFolder(ctx, "beta", &ReparentRequest{
		TargetID:  "alpha",
		OffsetY:   &offset,
		RowHeight: &row,
	})
	if err != nil {
		t.Fatalf("ReparentFolder: %v", err)
	}
	if !applied {
		t.Fatal("applied = false, want true")
	}

	folders, _ := ws.Folders(ctx)
	for _, f := range folders {
		if f.ID == "beta" {
			if f.ParentID == nil || *f.ParentID != "alpha" {
				t.Errorf("beta ParentID = %v, want alpha", f.ParentID)
			}
		}
	}

	// Nesting expands the target folder in the persisted UI state.
	state, _ := ws.TreeState(ctx)
	if !state.ExpandedFolderIDs["alpha"] {
		t.Error("alpha not expanded after nesting drop")
	}
}

func TestReparentFolderCycleIgnored(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace()
	svc := NewFolderService(ws, testLogger())

	if _, err := svc.CreateFolder(ctx, &CreateFolderRequest{Name: "Parent"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateFolder(ctx, &CreateFolderRequest{Name: "Child", ParentID: strPtr("parent")}); err != nil {
		t.Fatal(err)
	}

	applied, err := svc.ReparentFolder(ctx, "parent", &ReparentRequest{
		TargetID: "child",
		Position: string(tree.DropInside),
	})
	if err != nil {
		t.Fatalf("ReparentFolder: %v", err)
	}
	if applied {
		t.Error("applied = true for cycle drop, want false")
	}
}

func TestDeleteFolderCascade(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace()
	fsvc := NewFolderService(ws, testLogger())
	dsvc := NewDocumentService(ws, testLogger())

	if _, err := fsvc.CreateFolder(ctx, &CreateFolderRequest{Name: "Research"}); err != nil {
		t.Fatal(err)
	}
	if _, err := fsvc.CreateFolder(ctx, &CreateFolderRequest{Name: "Papers", ParentID: strPtr("research")}); err != nil {
		t.Fatal(err)
	}
	if _, err := dsvc.CreateDocument(ctx, &CreateDocumentRequest{Title: "Notes", FolderID: "research"}); err != nil {
		t.Fatal(err)
	}

	moved, err := fsvc.DeleteFolder(ctx, "research")
	if err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}
	if moved != 1 {
		t.Errorf("movedDocs = %d, want 1", moved)
	}

	folders, _ := ws.Folders(ctx)
	if len(folders) != 1 {
		t.Fatalf("len(folders) = %d, want 1", len(folders))
	}
	if folders[0].ID != "papers" || folders[0].ParentID != nil {
		t.Errorf("papers not promoted to root: %+v", folders[0])
	}

	docs, _ := ws.Documents(ctx)
	if docs[0].FolderID != tree.FallbackFolderID {
		t.Errorf("doc FolderID = %q, want %q", docs[0].FolderID, tree.FallbackFolderID)
	}
}

func TestDeleteFolderUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := NewFolderService(newTestWorkspace(), testLogger())

	moved, err := svc.DeleteFolder(ctx, "never-created")
	if err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}
	if moved != 0 {
		t.Errorf("movedDocs = %d, want 0", moved)
	}
}

func TestDeleteFolderForgetsUIState(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace()
	fsvc := NewFolderService(ws, testLogger())
	tsvc := NewTreeService(ws, testLogger())

	if _, err := fsvc.CreateFolder(ctx, &CreateFolderRequest{Name: "Archive"}); err != nil {
		t.Fatal(err)
	}
	state, _ := tsvc.UIState(ctx)
	state.ActiveFolderID = "archive"
	state.Expand("archive")
	if err := tsvc.SaveUIState(ctx, state); err != nil {
		t.Fatal(err)
	}

	if _, err := fsvc.DeleteFolder(ctx, "archive"); err != nil {
		t.Fatal(err)
	}

	state, _ = tsvc.UIState(ctx)
	if state.ActiveFolderID != "" {
		t.Errorf("ActiveFolderID = %q, want empty", state.ActiveFolderID)
	}
	if state.ExpandedFolderIDs["archive"] {
		t.Error("archive still expanded after delete")
	}
}
