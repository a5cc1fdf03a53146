package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"notedeck/internal/config"
	"notedeck/internal/domain"
	"notedeck/internal/domain/models"
	"notedeck/internal/httputil"
	"notedeck/internal/markdown"
	"notedeck/internal/richtext"
	"notedeck/internal/store"
	"notedeck/internal/tree"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// DocumentService owns note CRUD. Folder references on documents are
// not validated against the forest on write: the delete cascade repairs
// them instead, so a save can never be rejected for a stale folder.
type DocumentService struct {
	ws     *store.Workspace
	logger *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(ws *store.Workspace, logger *slog.Logger) *DocumentService {
	return &DocumentService{ws: ws, logger: logger}
}

// CreateDocumentRequest is the payload for creating a note.
type CreateDocumentRequest struct {
	Title    string         `json:"title"`
	FolderID string         `json:"folder"`
	Content  *richtext.Node `json:"content"`
}

// UpdateDocumentRequest is the PATCH payload; absent fields are
// unchanged. NotionPageID follows merge-patch semantics so an explicit
// null unlinks the page.
type UpdateDocumentRequest struct {
	Title        *string                 `json:"title"`
	FolderID     *string                 `json:"folder"`
	Content      *richtext.Node          `json:"content"`
	NotionPageID httputil.OptionalString `json:"notionPageId"`
}

// CreateDocument saves a new note. Content defaults to an empty
// document; the folder defaults to the fallback root.
func (s *DocumentService) CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*models.Document, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxDocumentTitleLength),
		),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	content := richtext.Doc()
	if req.Content != nil {
		content = *req.Content
	}
	folderID := req.FolderID
	if folderID == "" {
		folderID = tree.FallbackFolderID
	}

	now := time.Now()
	doc := models.Document{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(req.Title),
		FolderID:  folderID,
		Content:   content,
		WordCount: markdown.CountWords(content),
		CreatedAt: now,
		UpdatedAt: now,
	}

	docs, err := s.ws.Documents(ctx)
	if err != nil {
		return nil, err
	}
	docs = append(docs, doc)
	if err := s.ws.SaveDocuments(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Info("document created",
		"id", doc.ID,
		"title", doc.Title,
		"folder", doc.FolderID,
		"word_count", doc.WordCount,
	)
	return &doc, nil
}

// GetDocument retrieves a note by id.
func (s *DocumentService) GetDocument(ctx context.Context, docID string) (*models.Document, error) {
	docs, err := s.ws.Documents(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.ID == docID {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("document %s: %w", docID, domain.ErrNotFound)
}

// ListDocuments lists notes, optionally scoped to a folder. Recursive
// listing includes the folder's whole subtree, the scope the sidebar
// uses for "show all notes under this folder".
func (s *DocumentService) ListDocuments(ctx context.Context, folderID string, recursive bool) ([]models.Document, error) {
	docs, err := s.ws.Documents(ctx)
	if err != nil {
		return nil, err
	}
	if folderID == "" {
		return docs, nil
	}

	scope := map[string]struct{}{folderID: {}}
	if recursive {
		folders, err := s.ws.Folders(ctx)
		if err != nil {
			return nil, err
		}
		for id := range tree.DescendantIDs(folders, folderID) {
			scope[id] = struct{}{}
		}
	}

	out := []models.Document{}
	for _, d := range docs {
		if _, ok := scope[d.FolderID]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// UpdateDocument applies a partial update and bumps UpdatedAt on every
// save, recomputing the word count when content changed.
func (s *DocumentService) UpdateDocument(ctx context.Context, docID string, req *UpdateDocumentRequest) (*models.Document, error) {
	if req.Title != nil {
		if err := validation.Validate(strings.TrimSpace(*req.Title),
			validation.Required,
			validation.Length(1, config.MaxDocumentTitleLength),
		); err != nil {
			return nil, fmt.Errorf("%w: title %v", domain.ErrValidation, err)
		}
	}

	docs, err := s.ws.Documents(ctx)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		if docs[i].ID != docID {
			continue
		}
		if req.Title != nil {
			docs[i].Title = strings.TrimSpace(*req.Title)
		}
		if req.FolderID != nil {
			docs[i].FolderID = *req.FolderID
		}
		if req.Content != nil {
			docs[i].Content = *req.Content
			docs[i].WordCount = markdown.CountWords(*req.Content)
		}
		if req.NotionPageID.Present {
			docs[i].NotionPageID = req.NotionPageID.Value
		}
		docs[i].UpdatedAt = time.Now()

		if err := s.ws.SaveDocuments(ctx, docs); err != nil {
			return nil, err
		}
		s.logger.Info("document updated", "id", docID, "title", docs[i].Title)
		return &docs[i], nil
	}
	return nil, fmt.Errorf("document %s: %w", docID, domain.ErrNotFound)
}

// DeleteDocument removes a note. Document lifecycle is independent of
// folder lifecycle; deleting a note never touches the forest.
func (s *DocumentService) DeleteDocument(ctx context.Context, docID string) error {
	docs, err := s.ws.Documents(ctx)
	if err != nil {
		return err
	}

	for i := range docs {
		if docs[i].ID == docID {
			docs = append(docs[:i], docs[i+1:]...)
			if err := s.ws.SaveDocuments(ctx, docs); err != nil {
				return err
			}
			s.logger.Info("document deleted", "id", docID)
			return nil
		}
	}
	return fmt.Errorf("document %s: %w", docID, domain.ErrNotFound)
}

// ExportMarkdown renders a note's content as Markdown.
func (s *DocumentService) ExportMarkdown(ctx context.Context, docID string) (string, error) {
	doc, err := s.GetDocument(ctx, docID)
	if err != nil {
		return "", err
	}
	return markdown.Export(doc.Content), nil
}
