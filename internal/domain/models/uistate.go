package models

// TreeUIState is the sidebar's interaction state, owned by the UI layer
// and persisted alongside the folder list. The tree operations themselves
// stay pure; services update this struct explicitly.
type TreeUIState struct {
	ActiveFolderID    string          `json:"activeFolderId"` // "" = All notes
	ExpandedFolderIDs map[string]bool `json:"expandedFolderIds"`
	DraggedFolderID   string          `json:"draggedFolderId"`
}

// NewTreeUIState returns an empty state with the expanded set allocated.
func NewTreeUIState() *TreeUIState {
	return &TreeUIState{
		ExpandedFolderIDs: map[string]bool{},
	}
}

// Expand marks a folder as expanded so newly nested children are visible.
func (s *TreeUIState) Expand(folderID string) {
	if s.ExpandedFolderIDs == nil {
		s.ExpandedFolderIDs = map[string]bool{}
	}
	s.ExpandedFolderIDs[folderID] = true
}

// Forget clears any references to a folder that no longer exists. The
// active selection falls back to "All notes".
func (s *TreeUIState) Forget(folderID string) {
	if s.ActiveFolderID == folderID {
		s.ActiveFolderID = ""
	}
	if s.DraggedFolderID == folderID {
		s.DraggedFolderID = ""
	}
	delete(s.ExpandedFolderIDs, folderID)
}
