package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

// WidgetHandler handles HTTP requests for the shared widget.
type WidgetHandler struct {
	service     *service.WidgetService
	copyTimeout time.Duration
}

// NewWidgetHandler creates a new WidgetHandler. copyTimeout bounds clipboard
// writes; zero means no bound beyond the request context.
func NewWidgetHandler(svc *service.WidgetService, copyTimeout time.Duration) *WidgetHandler {
	return &WidgetHandler{service: svc, copyTimeout: copyTimeout}
}

// HandleGetState handles GET /api/v1/widget requests.
func (h *WidgetHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.State())
}

// HandleUpdate handles PATCH /api/v1/widget requests.
func (h *WidgetHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.WidgetPatchRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	resp, err := h.service.Update(req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleRegenerate handles POST /api/v1/widget/regenerate requests.
func (h *WidgetHandler) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Regenerate()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCopy handles POST /api/v1/widget/copy requests.
func (h *WidgetHandler) HandleCopy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.copyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.copyTimeout)
		defer cancel()
	}

	resp := h.service.Copy(ctx)
	if resp.Outcome != clipboard.Copied.String() {
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
