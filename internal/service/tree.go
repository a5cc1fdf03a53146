package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"notedeck/internal/domain"
	"notedeck/internal/domain/models"
	"notedeck/internal/store"
	"notedeck/internal/tree"
)

// TreeService assembles the sidebar payload and owns the persisted
// expansion state.
type TreeService struct {
	ws     *store.Workspace
	logger *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(ws *store.Workspace, logger *slog.Logger) *TreeService {
	return &TreeService{ws: ws, logger: logger}
}

// Sidebar builds the nested folder tree with per-folder documents and
// recursive document counts. Documents pointing at a folder id that no
// longer exists are listed separately as orphaned.
func (s *TreeService) Sidebar(ctx context.Context) (*models.Tree, error) {
	folders, err := s.ws.Folders(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.ws.Documents(ctx)
	if err != nil {
		return nil, err
	}

	// Pass 1: a node per folder.
	nodes := make(map[string]*models.FolderTreeNode, len(folders))
	for _, f := range folders {
		nodes[f.ID] = &models.FolderTreeNode{
			ID:       f.ID,
			Name:     f.Name,
			ParentID: f.ParentID,
			Order:    f.Order,
			DocCount: tree.CountDocsRecursive(folders, f.ID, docs),
			Folders:  []*models.FolderTreeNode{},
			Docs:     []models.DocumentSummary{},
		}
	}

	// Pass 2: attach documents to their folders.
	orphaned := []models.DocumentSummary{}
	for _, d := range docs {
		summary := models.DocumentSummary{
			ID:        d.ID,
			Title:     d.Title,
			FolderID:  d.FolderID,
			WordCount: d.WordCount,
			UpdatedAt: d.UpdatedAt,
		}
		if node, ok := nodes[d.FolderID]; ok {
			node.Docs = append(node.Docs, summary)
		} else {
			orphaned = append(orphaned, summary)
		}
	}

	// Pass 3: link children to parents, collecting roots.
	roots := []*models.FolderTreeNode{}
	for _, f := range folders {
		node := nodes[f.ID]
		if f.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*f.ParentID]; ok {
			parent.Folders = append(parent.Folders, node)
		} else {
			// Dangling parent reference: surface at the root
			// rather than dropping a whole subtree.
			roots = append(roots, node)
		}
	}

	sortTreeNodes(roots)
	for _, node := range nodes {
		sortTreeNodes(node.Folders)
		sort.SliceStable(node.Docs, func(i, j int) bool {
			return node.Docs[i].UpdatedAt.After(node.Docs[j].UpdatedAt)
		})
	}
	sort.SliceStable(orphaned, func(i, j int) bool {
		return orphaned[i].UpdatedAt.After(orphaned[j].UpdatedAt)
	})

	return &models.Tree{Folders: roots, Orphaned: orphaned}, nil
}

func sortTreeNodes(nodes []*models.FolderTreeNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Order < nodes[j].Order
	})
}

// Breadcrumb returns the ancestor path of a folder as display text.
func (s *TreeService) Breadcrumb(ctx context.Context, folderID string) (string, error) {
	folders, err := s.ws.Folders(ctx)
	if err != nil {
		return "", err
	}
	path := tree.Path(folders, folderID)
	if path == "" {
		return "", fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
	}
	return path, nil
}

// UIState returns the persisted sidebar state, defaulting to a fresh
// state when none has been saved yet.
func (s *TreeService) UIState(ctx context.Context) (*models.TreeUIState, error) {
	state, err := s.ws.TreeState(ctx)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// SaveUIState persists the sidebar state as sent by the client.
func (s *TreeService) SaveUIState(ctx context.Context, state *models.TreeUIState) error {
	if state.ExpandedFolderIDs == nil {
		state.ExpandedFolderIDs = map[string]bool{}
	}
	if err := s.ws.SaveTreeState(ctx, state); err != nil {
		return err
	}
	s.logger.Debug("tree state saved",
		"active", state.ActiveFolderID,
		"expanded", len(state.ExpandedFolderIDs),
	)
	return nil
}
