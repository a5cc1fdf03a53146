package models

import (
	"time"

	"notedeck/internal/richtext"
)

// Document is a single note. Content is the rich-document tree consumed
// by the editor; NotionPageID links the note to its synced Notion page,
// if any.
type Document struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	FolderID     string        `json:"folder"` // references Folder.ID
	Content      richtext.Node `json:"content"`
	NotionPageID *string       `json:"notionPageId"`
	WordCount    int           `json:"wordCount"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
