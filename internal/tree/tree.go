// Package tree implements the folder forest behind the notes sidebar:
// an ordered hierarchy stored as a flat list of parent references.
//
// Every operation is a pure function over (folders, documents) slices;
// callers own persistence and UI state. Structural mutations return new
// slices and always leave sibling ranks dense from 0.
package tree

import (
	"sort"

	"notedeck/internal/domain/models"
)

// FallbackFolderID receives documents orphaned by deleting a root folder.
const FallbackFolderID = "general"

// Children returns the folders directly under parentID, sorted by rank.
// A nil parentID selects the root level.
func Children(folders []models.Folder, parentID *string) []models.Folder {
	var out []models.Folder
	for _, f := range folders {
		if models.SameParent(f.ParentID, parentID) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// DescendantIDs collects every folder transitively parented under
// folderID, excluding folderID itself. Used to reject cycle-forming
// moves and to scope "all notes under this folder".
func DescendantIDs(folders []models.Folder, folderID string) map[string]struct{} {
	childrenOf := make(map[string][]string, len(folders))
	for _, f := range folders {
		if f.ParentID != nil {
			childrenOf[*f.ParentID] = append(childrenOf[*f.ParentID], f.ID)
		}
	}

	ids := make(map[string]struct{})
	stack := append([]string(nil), childrenOf[folderID]...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := ids[id]; seen {
			continue
		}
		ids[id] = struct{}{}
		stack = append(stack, childrenOf[id]...)
	}
	return ids
}

// CountDocsRecursive counts documents directly in folderID plus every
// document in its descendant folders.
func CountDocsRecursive(folders []models.Folder, folderID string, docs []models.Document) int {
	ids := DescendantIDs(folders, folderID)
	ids[folderID] = struct{}{}

	count := 0
	for _, d := range docs {
		if _, ok := ids[d.FolderID]; ok {
			count++
		}
	}
	return count
}

// Path walks parent links to the root and joins folder names for
// breadcrumb display. Returns "" for an unknown id.
func Path(folders []models.Folder, folderID string) string {
	byID := make(map[string]models.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}

	var names []string
	id := folderID
	// Bounded by the folder count so a corrupted parent chain can't spin.
	for range folders {
		f, ok := byID[id]
		if !ok {
			break
		}
		names = append([]string{f.Name}, names...)
		if f.ParentID == nil {
			break
		}
		id = *f.ParentID
	}

	path := ""
	for i, name := range names {
		if i > 0 {
			path += " / "
		}
		path += name
	}
	return path
}

// rerank re-assigns dense 0..n-1 ranks to the siblings under parentID,
// preserving their current relative order. Mutates folders in place.
func rerank(folders []models.Folder, parentID *string) {
	idx := make([]int, 0, 8)
	for i, f := range folders {
		if models.SameParent(f.ParentID, parentID) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return folders[idx[a]].Order < folders[idx[b]].Order
	})
	for rank, i := range idx {
		folders[i].Order = rank
	}
}

// clone copies the folder slice so mutating operations stay pure.
func clone(folders []models.Folder) []models.Folder {
	out := make([]models.Folder, len(folders))
	copy(out, folders)
	return out
}

func find(folders []models.Folder, id string) (int, bool) {
	for i, f := range folders {
		if f.ID == id {
			return i, true
		}
	}
	return -1, false
}
