package testutil

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/livesitter/livesitter-backend/internal/pkg/errors"
	"github.com/livesitter/livesitter-backend/internal/types"
)

// FakeOverlayRepo is an in-memory OverlayRepo that preserves insertion
// order, for service and handler tests that should not touch Mongo.
type FakeOverlayRepo struct {
	mu       sync.Mutex
	overlays []*types.Overlay

	// InsertErr, when set, is returned by every write to simulate a store
	// failure.
	InsertErr error
}

func NewFakeOverlayRepo() *FakeOverlayRepo {
	return &FakeOverlayRepo{}
}

func (f *FakeOverlayRepo) Insert(_ context.Context, overlay *types.Overlay) (*types.Overlay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.InsertErr != nil {
		return nil, f.InsertErr
	}
	overlay.ID = primitive.NewObjectID()
	stored := *overlay
	f.overlays = append(f.overlays, &stored)
	return overlay, nil
}

func (f *FakeOverlayRepo) InsertMany(ctx context.Context, overlays []*types.Overlay) (int, error) {
	for _, o := range overlays {
		if _, err := f.Insert(ctx, o); err != nil {
			return 0, err
		}
	}
	return len(overlays), nil
}

func (f *FakeOverlayRepo) Find(_ context.Context, streamURL string) ([]*types.Overlay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	results := []*types.Overlay{}
	for _, o := range f.overlays {
		if streamURL != "" && o.StreamURL != streamURL {
			continue
		}
		copied := *o
		results = append(results, &copied)
	}
	return results, nil
}

func (f *FakeOverlayRepo) GetByID(_ context.Context, id primitive.ObjectID) (*types.Overlay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.overlays {
		if o.ID == id {
			copied := *o
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *FakeOverlayRepo) UpdateByID(_ context.Context, id primitive.ObjectID, update *types.OverlayUpdate) (*types.Overlay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.InsertErr != nil {
		return nil, f.InsertErr
	}
	for _, o := range f.overlays {
		if o.ID != id {
			continue
		}
		if update.StreamURL != nil {
			o.StreamURL = *update.StreamURL
		}
		if update.Content != nil {
			o.Content = *update.Content
		}
		if update.Type != nil {
			o.Type = *update.Type
		}
		if update.Position != nil {
			o.Position = *update.Position
		}
		if update.Size != nil {
			o.Size = *update.Size
		}
		o.UpdatedAt = update.UpdatedAt
		copied := *o
		return &copied, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *FakeOverlayRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, o := range f.overlays {
		if o.ID == id {
			f.overlays = append(f.overlays[:i], f.overlays[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeOverlayRepo) DeleteByStreamURL(_ context.Context, streamURL string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.overlays[:0]
	var deleted int64
	for _, o := range f.overlays {
		if o.StreamURL == streamURL {
			deleted++
			continue
		}
		kept = append(kept, o)
	}
	f.overlays = kept
	return deleted, nil
}
