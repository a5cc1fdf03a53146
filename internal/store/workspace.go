package store

import (
	"context"
	"encoding/json"
	"fmt"

	"notedeck/internal/domain/models"
)

// Workspace loads and saves the three workspace collections through the
// KV collaborator. Every save writes the whole collection back under
// its key; at this system's scale (tens of folders, hundreds of notes)
// wholesale writes are simpler than diffing and match the original
// storage contract.
type Workspace struct {
	kv KV
}

// NewWorkspace wraps a KV store.
func NewWorkspace(kv KV) *Workspace {
	return &Workspace{kv: kv}
}

// Folders loads the folder list; a never-written key yields an empty
// forest, not an error.
func (w *Workspace) Folders(ctx context.Context) ([]models.Folder, error) {
	var folders []models.Folder
	if err := w.load(ctx, KeyFolders, &folders); err != nil {
		return nil, err
	}
	if folders == nil {
		folders = []models.Folder{}
	}
	return folders, nil
}

// SaveFolders writes the full folder list.
func (w *Workspace) SaveFolders(ctx context.Context, folders []models.Folder) error {
	return w.save(ctx, KeyFolders, folders)
}

// Documents loads the document list.
func (w *Workspace) Documents(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if err := w.load(ctx, KeyDocuments, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return docs, nil
}

// SaveDocuments writes the full document list.
func (w *Workspace) SaveDocuments(ctx context.Context, docs []models.Document) error {
	return w.save(ctx, KeyDocuments, docs)
}

// TreeState loads the sidebar UI state, defaulting to a fresh state.
func (w *Workspace) TreeState(ctx context.Context) (*models.TreeUIState, error) {
	state := models.NewTreeUIState()
	if err := w.load(ctx, KeyTreeState, state); err != nil {
		return nil, err
	}
	if state.ExpandedFolderIDs == nil {
		state.ExpandedFolderIDs = map[string]bool{}
	}
	return state, nil
}

// SaveTreeState writes the sidebar UI state.
func (w *Workspace) SaveTreeState(ctx context.Context, state *models.TreeUIState) error {
	return w.save(ctx, KeyTreeState, state)
}

func (w *Workspace) load(ctx context.Context, key string, dest interface{}) error {
	data, found, err := w.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (w *Workspace) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return w.kv.Set(ctx, key, data)
}
