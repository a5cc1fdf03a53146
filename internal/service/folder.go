package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"notedeck/internal/config"
	"notedeck/internal/domain"
	"notedeck/internal/domain/models"
	"notedeck/internal/store"
	"notedeck/internal/tree"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FolderService owns mutations of the folder forest. Every operation
// loads the collections, applies a pure transformation from the tree
// package, and writes the result back through the workspace store.
type FolderService struct {
	ws     *store.Workspace
	logger *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(ws *store.Workspace, logger *slog.Logger) *FolderService {
	return &FolderService{ws: ws, logger: logger}
}

// CreateFolderRequest is the payload for creating a folder. A nil
// ParentID creates the folder at the root level.
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}

// CreateFolder appends a new folder as the last child of its parent.
// The folder id is the slugified name; a collision anywhere in the
// forest is reported as a conflict with the tree unchanged.
func (s *FolderService) CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	// Normalize empty string to nil for root-level folders
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}

	folders, err := s.ws.Folders(ctx)
	if err != nil {
		return nil, err
	}

	folder, err := tree.NewFolder(folders, req.Name, req.ParentID)
	if err != nil {
		return nil, err
	}

	folders = append(folders, folder)
	if err := s.ws.SaveFolders(ctx, folders); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
		"order", folder.Order,
	)

	return &folder, nil
}

// GetFolder retrieves a folder with its computed breadcrumb path.
func (s *FolderService) GetFolder(ctx context.Context, folderID string) (*models.Folder, string, error) {
	folders, err := s.ws.Folders(ctx)
	if err != nil {
		return nil, "", err
	}
	for _, f := range folders {
		if f.ID == folderID {
			return &f, tree.Path(folders, folderID), nil
		}
	}
	return nil, "", fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
}

// RenameFolder changes a folder's display name. The slug id is stable
// across renames so documents and UI state keep their references.
func (s *FolderService) RenameFolder(ctx context.Context, folderID, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if err := validation.Validate(name,
		validation.Required,
		validation.Length(1, config.MaxFolderNameLength),
	); err != nil {
		return nil, fmt.Errorf("%w: name %v", domain.ErrValidation, err)
	}

	folders, err := s.ws.Folders(ctx)
	if err != nil {
		return nil, err
	}

	for i := range folders {
		if folders[i].ID == folderID {
			folders[i].Name = name
			if err := s.ws.SaveFolders(ctx, folders); err != nil {
				return nil, err
			}
			s.logger.Info("folder renamed", "id", folderID, "name", name)
			return &folders[i], nil
		}
	}
	return nil, fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
}

// ReparentRequest describes a drop gesture. Position can be given
// directly, or derived from the pointer's vertical offset within the
// target row when OffsetY and RowHeight are set.
type ReparentRequest struct {
	TargetID  string   `json:"targetId"`
	Position  string   `json:"position,omitempty"`
	OffsetY   *float64 `json:"offsetY,omitempty"`
	RowHeight *float64 `json:"rowHeight,omitempty"`
}

// ReparentFolder moves a folder relative to a drop target. Illegal
// drops (onto itself or its own descendants) report applied=false and
// leave everything untouched; the gesture just snaps back.
func (s *FolderService) ReparentFolder(ctx context.Context, draggedID string, req *ReparentRequest) (applied bool, err error) {
	if req.TargetID == "" {
		return false, fmt.Errorf("%w: targetId is required", domain.ErrValidation)
	}

	pos := tree.DropPosition(req.Position)
	if pos == "" {
		if req.OffsetY == nil || req.RowHeight == nil {
			return false, fmt.Errorf("%w: either position or offsetY/rowHeight is required", domain.ErrValidation)
		}
		pos = tree.DropZoneForOffset(*req.OffsetY, *req.RowHeight)
	}
	switch pos {
	case tree.DropBefore, tree.DropAfter, tree.DropInside:
	default:
		return false, fmt.Errorf("%w: unknown drop position %q", domain.ErrValidation, req.Position)
	}

	folders, err := s.ws.Folders(ctx)
	if err != nil {
		return false, err
	}

	moved, applied := tree.Reparent(folders, draggedID, req.TargetID, pos)
	if !applied {
		s.logger.Debug("reparent ignored",
			"dragged_id", draggedID,
			"target_id", req.TargetID,
			"position", pos,
		)
		return false, nil
	}

	if err := s.ws.SaveFolders(ctx, moved); err != nil {
		return false, err
	}

	// Nesting into a collapsed folder would hide the moved folder, so
	// the target expands as part of the gesture.
	if pos == tree.DropInside {
		state, err := s.ws.TreeState(ctx)
		if err != nil {
			return true, err
		}
		state.Expand(req.TargetID)
		if err := s.ws.SaveTreeState(ctx, state); err != nil {
			return true, err
		}
	}

	s.logger.Info("folder reparented",
		"dragged_id", draggedID,
		"target_id", req.TargetID,
		"position", pos,
	)
	return true, nil
}

// DeleteFolder removes a folder, promoting its children and reassigning
// its documents to the parent level. Deleting an unknown id is a no-op.
// Returns the number of documents that were reassigned.
func (s *FolderService) DeleteFolder(ctx context.Context, folderID string) (movedDocs int, err error) {
	folders, err := s.ws.Folders(ctx)
	if err != nil {
		return 0, err
	}
	docs, err := s.ws.Documents(ctx)
	if err != nil {
		return 0, err
	}

	exists := false
	for _, f := range folders {
		if f.ID == folderID {
			exists = true
			break
		}
	}
	if !exists {
		return 0, nil
	}

	for _, d := range docs {
		if d.FolderID == folderID {
			movedDocs++
		}
	}

	newFolders, newDocs := tree.Delete(folders, docs, folderID)
	if err := s.ws.SaveFolders(ctx, newFolders); err != nil {
		return 0, err
	}
	if err := s.ws.SaveDocuments(ctx, newDocs); err != nil {
		return 0, err
	}

	// Drop stale references: active selection falls back to "All".
	state, err := s.ws.TreeState(ctx)
	if err != nil {
		return movedDocs, err
	}
	state.Forget(folderID)
	if err := s.ws.SaveTreeState(ctx, state); err != nil {
		return movedDocs, err
	}

	s.logger.Info("folder deleted",
		"id", folderID,
		"moved_docs", movedDocs,
	)
	return movedDocs, nil
}

// CountDocs returns the recursive document count under a folder, used
// by the UI for delete confirmation prompts.
func (s *FolderService) CountDocs(ctx context.Context, folderID string) (int, error) {
	folders, err := s.ws.Folders(ctx)
	if err != nil {
		return 0, err
	}
	docs, err := s.ws.Documents(ctx)
	if err != nil {
		return 0, err
	}
	return tree.CountDocsRecursive(folders, folderID, docs), nil
}

func (s *FolderService) validateCreateRequest(req *CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
		),
	)
}
