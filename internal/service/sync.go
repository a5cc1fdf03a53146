package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"notedeck/internal/domain"
	"notedeck/internal/domain/models"
	"notedeck/internal/markdown"
	"notedeck/internal/notion"
	"notedeck/internal/store"
)

// PageClient is the slice of the Notion API the sync layer needs.
type PageClient interface {
	PageBlocks(ctx context.Context, pageID string) ([]notion.Block, error)
	AppendBlocks(ctx context.Context, pageID string, blocks []notion.Block) error
}

// SyncService moves note content between the workspace and Notion
// pages. A nil client means no API key was configured; both directions
// fail with a validation error in that case.
type SyncService struct {
	ws     *store.Workspace
	client PageClient
	logger *slog.Logger
}

// NewSyncService creates a new sync service
func NewSyncService(ws *store.Workspace, client PageClient, logger *slog.Logger) *SyncService {
	return &SyncService{ws: ws, client: client, logger: logger}
}

// PullPage fetches a Notion page's blocks, converts them, and saves the
// result as the document's content, linking the page for later pushes.
func (s *SyncService) PullPage(ctx context.Context, docID, pageID string) (*models.Document, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: notion sync is not configured", domain.ErrValidation)
	}
	if pageID == "" {
		return nil, fmt.Errorf("%w: page id is required", domain.ErrValidation)
	}

	blocks, err := s.client.PageBlocks(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("fetching notion page %s: %w", pageID, err)
	}
	content := notion.BlocksToDocument(blocks)

	docs, err := s.ws.Documents(ctx)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID != docID {
			continue
		}
		docs[i].Content = content
		docs[i].WordCount = markdown.CountWords(content)
		docs[i].NotionPageID = &pageID
		docs[i].UpdatedAt = time.Now()

		if err := s.ws.SaveDocuments(ctx, docs); err != nil {
			return nil, err
		}
		s.logger.Info("notion page pulled",
			"doc", docID,
			"page", pageID,
			"blocks", len(blocks),
		)
		return &docs[i], nil
	}
	return nil, fmt.Errorf("document %s: %w", docID, domain.ErrNotFound)
}

// PushPage converts a document's content to Notion blocks and appends
// them to the linked page. An explicit pageID overrides the link and
// becomes the new one.
func (s *SyncService) PushPage(ctx context.Context, docID, pageID string) (int, error) {
	if s.client == nil {
		return 0, fmt.Errorf("%w: notion sync is not configured", domain.ErrValidation)
	}

	docs, err := s.ws.Documents(ctx)
	if err != nil {
		return 0, err
	}
	for i := range docs {
		if docs[i].ID != docID {
			continue
		}
		target := pageID
		if target == "" {
			if docs[i].NotionPageID == nil {
				return 0, fmt.Errorf("%w: document has no linked notion page", domain.ErrValidation)
			}
			target = *docs[i].NotionPageID
		}

		blocks := notion.DocumentToBlocks(docs[i].Content)
		if len(blocks) > 0 {
			if err := s.client.AppendBlocks(ctx, target, blocks); err != nil {
				return 0, fmt.Errorf("pushing to notion page %s: %w", target, err)
			}
		}

		if docs[i].NotionPageID == nil || *docs[i].NotionPageID != target {
			docs[i].NotionPageID = &target
			docs[i].UpdatedAt = time.Now()
			if err := s.ws.SaveDocuments(ctx, docs); err != nil {
				return 0, err
			}
		}
		s.logger.Info("notion page pushed",
			"doc", docID,
			"page", target,
			"blocks", len(blocks),
		)
		return len(blocks), nil
	}
	return 0, fmt.Errorf("document %s: %w", docID, domain.ErrNotFound)
}
