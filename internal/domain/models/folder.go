package models

// Folder is one node of the note folder forest. Folders are stored as a
// flat list; nesting is expressed through ParentID references.
type Folder struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"` // nil = root level
	Order    int     `json:"order"`    // dense zero-based rank among siblings
}

// IsRoot reports whether the folder sits at the top level of the forest.
func (f *Folder) IsRoot() bool {
	return f.ParentID == nil
}

// SameParent reports whether two parent references point at the same
// folder (both nil, or both the same id).
func SameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
