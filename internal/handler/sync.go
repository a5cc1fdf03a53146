package handler

import (
	"log/slog"
	"net/http"

	"notedeck/internal/httputil"
	"notedeck/internal/service"
)

// SyncHandler handles Notion sync HTTP requests
type SyncHandler struct {
	syncService *service.SyncService
	logger      *slog.Logger
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService *service.SyncService, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		logger:      logger,
	}
}

type syncRequest struct {
	PageID string `json:"pageId"`
}

// PullPage replaces a document's content with a Notion page's blocks
// POST /api/documents/{id}/sync/pull
func (h *SyncHandler) PullPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	var req syncRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, err := h.syncService.PullPage(r.Context(), id, req.PageID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// PushPage appends a document's content to its linked Notion page
// POST /api/documents/{id}/sync/push
// The body's pageId is optional and overrides the stored link.
func (h *SyncHandler) PushPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	var req syncRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	blocks, err := h.syncService.PushPage(r.Context(), id, req.PageID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"pushedBlocks": blocks,
	})
}
