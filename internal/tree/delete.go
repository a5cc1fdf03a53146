package tree

import "notedeck/internal/domain/models"

// Delete removes a folder and repairs the forest around it: child
// folders are promoted to the deleted folder's parent, documents in the
// folder are reassigned to that same parent (or to FallbackFolderID when
// the folder was a root), and sibling ranks at the promotion level are
// re-densified. Deleting an unknown id is a no-op.
//
// Documents in descendant folders are untouched; only the folder record
// itself disappears, never note content.
func Delete(folders []models.Folder, docs []models.Document, folderID string) ([]models.Folder, []models.Document) {
	i, ok := find(folders, folderID)
	if !ok {
		return folders, docs
	}
	parentID := folders[i].ParentID

	newFolders := make([]models.Folder, 0, len(folders)-1)
	for _, f := range folders {
		if f.ID == folderID {
			continue
		}
		if f.ParentID != nil && *f.ParentID == folderID {
			f.ParentID = parentID
		}
		newFolders = append(newFolders, f)
	}
	rerank(newFolders, parentID)

	docTarget := FallbackFolderID
	if parentID != nil {
		docTarget = *parentID
	}

	newDocs := make([]models.Document, len(docs))
	copy(newDocs, docs)
	for j := range newDocs {
		if newDocs[j].FolderID == folderID {
			newDocs[j].FolderID = docTarget
		}
	}

	return newFolders, newDocs
}
