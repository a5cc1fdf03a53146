package store

import (
	"context"
	"testing"

	"notedeck/internal/domain/models"
	"notedeck/internal/richtext"
)

func TestWorkspaceRoundTrip(t *testing.T) {
	ctx := context.Background()
	ws := NewWorkspace(NewMemoryKV())

	parent := "projects"
	folders := []models.Folder{
		{ID: "projects", Name: "Projects", Order: 0},
		{ID: "drafts", Name: "Drafts", ParentID: &parent, Order: 0},
	}
	if err := ws.SaveFolders(ctx, folders); err != nil {
		t.Fatalf("SaveFolders: %v", err)
	}

	got, err := ws.Folders(ctx)
	if err != nil {
		t.Fatalf("Folders: %v", err)
	}
	if len(got) != 2 || got[1].ParentID == nil || *got[1].ParentID != "projects" {
		t.Fatalf("folders = %+v, want saved list with parent link", got)
	}

	docs := []models.Document{{
		ID:       "d1",
		Title:    "Note",
		FolderID: "drafts",
		Content:  richtext.Doc(richtext.Paragraph(richtext.Text("hello"))),
	}}
	if err := ws.SaveDocuments(ctx, docs); err != nil {
		t.Fatalf("SaveDocuments: %v", err)
	}
	gotDocs, err := ws.Documents(ctx)
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}
	if len(gotDocs) != 1 || gotDocs[0].Content.Content[0].Content[0].Text != "hello" {
		t.Fatalf("documents = %+v, want content preserved", gotDocs)
	}
}

func TestWorkspaceDefaults(t *testing.T) {
	ctx := context.Background()
	ws := NewWorkspace(NewMemoryKV())

	folders, err := ws.Folders(ctx)
	if err != nil {
		t.Fatalf("Folders: %v", err)
	}
	if folders == nil || len(folders) != 0 {
		t.Fatalf("folders = %v, want empty non-nil list", folders)
	}

	state, err := ws.TreeState(ctx)
	if err != nil {
		t.Fatalf("TreeState: %v", err)
	}
	if state.ActiveFolderID != "" || state.ExpandedFolderIDs == nil {
		t.Fatalf("state = %+v, want fresh default", state)
	}
}

func TestTreeStatePersistence(t *testing.T) {
	ctx := context.Background()
	ws := NewWorkspace(NewMemoryKV())

	state := models.NewTreeUIState()
	state.ActiveFolderID = "projects"
	state.Expand("projects")
	if err := ws.SaveTreeState(ctx, state); err != nil {
		t.Fatalf("SaveTreeState: %v", err)
	}

	got, err := ws.TreeState(ctx)
	if err != nil {
		t.Fatalf("TreeState: %v", err)
	}
	if got.ActiveFolderID != "projects" || !got.ExpandedFolderIDs["projects"] {
		t.Fatalf("state = %+v, want persisted selection", got)
	}
}
