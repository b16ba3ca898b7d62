package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/livesitter/livesitter-backend/internal/http/response"
	apperrors "github.com/livesitter/livesitter-backend/internal/pkg/errors"
	"github.com/livesitter/livesitter-backend/internal/pkg/logger"
	"github.com/livesitter/livesitter-backend/internal/services"
	"github.com/livesitter/livesitter-backend/internal/types"
)

type OverlayHandler struct {
	log            *logger.Logger
	overlayService services.OverlayService
}

func NewOverlayHandler(log *logger.Logger, overlayService services.OverlayService) *OverlayHandler {
	return &OverlayHandler{
		log:            log.With("handler", "OverlayHandler"),
		overlayService: overlayService,
	}
}

// GET /api/overlays?stream_url=...
func (h *OverlayHandler) List(c *gin.Context) {
	overlays, err := h.overlayService.List(c.Request.Context(), c.Query("stream_url"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, overlays)
}

// GET /api/overlays/:id
func (h *OverlayHandler) Get(c *gin.Context) {
	overlay, err := h.overlayService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, overlay)
}

// POST /api/overlays
// body: { "content": "...", "type": "text"|"image", "position": {x,y}, "size": {width,height} }
func (h *OverlayHandler) Create(c *gin.Context) {
	var req types.CreateOverlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %v", err))
		return
	}
	overlay, err := h.overlayService.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Created(c, overlay)
}

// PUT|PATCH /api/overlays/:id
// body: any subset of the create fields; omitted fields keep stored values
func (h *OverlayHandler) Update(c *gin.Context) {
	var req types.UpdateOverlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %v", err))
		return
	}
	overlay, err := h.overlayService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, overlay)
}

// DELETE /api/overlays/:id
func (h *OverlayHandler) Delete(c *gin.Context) {
	if err := h.overlayService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/overlays/batch
// body: { "stream_url": "...", "overlays": [ ... ] }
// Replaces every overlay tagged with stream_url by the given set.
func (h *OverlayHandler) BatchReplace(c *gin.Context) {
	var req struct {
		StreamURL string                        `json:"stream_url"`
		Overlays  []*types.CreateOverlayRequest `json:"overlays"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %v", err))
		return
	}
	count, err := h.overlayService.ReplaceForStream(c.Request.Context(), req.StreamURL, req.Overlays)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{"count": count})
}

func (h *OverlayHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidID):
		response.Error(c, http.StatusBadRequest, err)
	case errors.Is(err, apperrors.ErrNotFound):
		response.Error(c, http.StatusNotFound, err)
	default:
		h.log.Error("Overlay operation failed", "error", err, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, err)
	}
}
