package models

import "time"

// FolderTreeNode is a folder with its nested children, as served to the
// sidebar. DocCount includes documents in every descendant folder.
type FolderTreeNode struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	ParentID *string           `json:"parentId"`
	Order    int               `json:"order"`
	DocCount int               `json:"docCount"`
	Folders  []*FolderTreeNode `json:"folders"`
	Docs     []DocumentSummary `json:"documents"`
}

// DocumentSummary is document metadata without content, for tree listings.
type DocumentSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	FolderID  string    `json:"folder"`
	WordCount int       `json:"wordCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Tree is the full sidebar payload: nested root folders plus any
// documents whose folder reference no longer resolves.
type Tree struct {
	Folders  []*FolderTreeNode `json:"folders"`
	Orphaned []DocumentSummary `json:"orphaned"`
}
