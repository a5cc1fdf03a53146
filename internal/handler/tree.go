package handler

import (
	"log/slog"
	"net/http"

	"notedeck/internal/domain/models"
	"notedeck/internal/httputil"
	"notedeck/internal/service"
)

// TreeHandler serves the sidebar tree and its persisted UI state
type TreeHandler struct {
	treeService *service.TreeService
	logger      *slog.Logger
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(treeService *service.TreeService, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{
		treeService: treeService,
		logger:      logger,
	}
}

// GetTree returns the full nested folder tree with documents
// GET /api/tree
func (h *TreeHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	sidebar, err := h.treeService.Sidebar(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, sidebar)
}

// GetBreadcrumb returns a folder's ancestor path as display text
// GET /api/folders/{id}/path
func (h *TreeHandler) GetBreadcrumb(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}

	path, err := h.treeService.Breadcrumb(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"path": path})
}

// GetState returns the persisted sidebar state
// GET /api/tree/state
func (h *TreeHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.treeService.UIState(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, state)
}

// PutState replaces the persisted sidebar state
// PUT /api/tree/state
func (h *TreeHandler) PutState(w http.ResponseWriter, r *http.Request) {
	var state models.TreeUIState
	if err := httputil.ParseJSON(w, r, &state); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.treeService.SaveUIState(r.Context(), &state); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, state)
}
