package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/livesitter/livesitter-backend/internal/pkg/errors"
	"github.com/livesitter/livesitter-backend/internal/pkg/logger"
	"github.com/livesitter/livesitter-backend/internal/repos"
	"github.com/livesitter/livesitter-backend/internal/types"
)

type OverlayService interface {
	List(ctx context.Context, streamURL string) ([]*types.Overlay, error)
	Get(ctx context.Context, id string) (*types.Overlay, error)
	Create(ctx context.Context, req *types.CreateOverlayRequest) (*types.Overlay, error)
	Update(ctx context.Context, id string, req *types.UpdateOverlayRequest) (*types.Overlay, error)
	Delete(ctx context.Context, id string) error
	ReplaceForStream(ctx context.Context, streamURL string, reqs []*types.CreateOverlayRequest) (int, error)
}

type overlayService struct {
	log         *logger.Logger
	overlayRepo repos.OverlayRepo
}

func NewOverlayService(log *logger.Logger, overlayRepo repos.OverlayRepo) OverlayService {
	return &overlayService{
		log:         log.With("service", "OverlayService"),
		overlayRepo: overlayRepo,
	}
}

func (os *overlayService) List(ctx context.Context, streamURL string) ([]*types.Overlay, error) {
	return os.overlayRepo.Find(ctx, streamURL)
}

func (os *overlayService) Get(ctx context.Context, id string) (*types.Overlay, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return os.overlayRepo.GetByID(ctx, oid)
}

func (os *overlayService) Create(ctx context.Context, req *types.CreateOverlayRequest) (*types.Overlay, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	overlay, err := os.overlayRepo.Insert(ctx, req.Overlay(time.Now().UTC()))
	if err != nil {
		return nil, err
	}
	os.log.Info("Overlay created", "overlay_id", overlay.ID.Hex(), "type", overlay.Type)
	return overlay, nil
}

func (os *overlayService) Update(ctx context.Context, id string, req *types.UpdateOverlayRequest) (*types.Overlay, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return os.overlayRepo.UpdateByID(ctx, oid, req.Update(time.Now().UTC()))
}

func (os *overlayService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	deleted, err := os.overlayRepo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	os.log.Info("Overlay deleted", "overlay_id", id)
	return nil
}

// ReplaceForStream drops every overlay tagged with streamURL and inserts
// the given set in its place, returning the inserted count. The incoming
// overlays are re-tagged with streamURL and get fresh ids and timestamps.
func (os *overlayService) ReplaceForStream(ctx context.Context, streamURL string, reqs []*types.CreateOverlayRequest) (int, error) {
	if strings.TrimSpace(streamURL) == "" {
		return 0, fmt.Errorf("%w: stream_url is required", apperrors.ErrValidation)
	}
	now := time.Now().UTC()
	overlays := make([]*types.Overlay, 0, len(reqs))
	for _, req := range reqs {
		req.StreamURL = streamURL
		if err := req.Validate(); err != nil {
			return 0, err
		}
		overlays = append(overlays, req.Overlay(now))
	}

	if _, err := os.overlayRepo.DeleteByStreamURL(ctx, streamURL); err != nil {
		return 0, err
	}
	count, err := os.overlayRepo.InsertMany(ctx, overlays)
	if err != nil {
		return 0, err
	}
	os.log.Info("Overlays replaced for stream", "stream_url", streamURL, "count", count)
	return count, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", apperrors.ErrInvalidID, id)
	}
	return oid, nil
}
