package repos

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/livesitter/livesitter-backend/internal/pkg/errors"
	"github.com/livesitter/livesitter-backend/internal/pkg/logger"
	"github.com/livesitter/livesitter-backend/internal/types"
)

// OverlayCollection is the name of the backing Mongo collection.
const OverlayCollection = "overlays"

type OverlayRepo interface {
	Insert(ctx context.Context, overlay *types.Overlay) (*types.Overlay, error)
	InsertMany(ctx context.Context, overlays []*types.Overlay) (int, error)
	Find(ctx context.Context, streamURL string) ([]*types.Overlay, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*types.Overlay, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update *types.OverlayUpdate) (*types.Overlay, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByStreamURL(ctx context.Context, streamURL string) (int64, error)
}

type overlayRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewOverlayRepo(coll *mongo.Collection, baseLog *logger.Logger) OverlayRepo {
	return &overlayRepo{coll: coll, log: baseLog.With("repo", "OverlayRepo")}
}

func (or *overlayRepo) Insert(ctx context.Context, overlay *types.Overlay) (*types.Overlay, error) {
	res, err := or.coll.InsertOne(ctx, overlay)
	if err != nil {
		return nil, fmt.Errorf("insert overlay: %w", err)
	}
	overlay.ID = res.InsertedID.(primitive.ObjectID)
	return overlay, nil
}

func (or *overlayRepo) InsertMany(ctx context.Context, overlays []*types.Overlay) (int, error) {
	if len(overlays) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, len(overlays))
	for i, o := range overlays {
		docs[i] = o
	}
	res, err := or.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert overlays: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// Find returns overlays in natural collection order, which matches
// insertion order for ObjectId-keyed documents. An empty streamURL lists
// the whole collection.
func (or *overlayRepo) Find(ctx context.Context, streamURL string) ([]*types.Overlay, error) {
	filter := bson.M{}
	if streamURL != "" {
		filter["stream_url"] = streamURL
	}
	cursor, err := or.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find overlays: %w", err)
	}
	defer cursor.Close(ctx)

	results := []*types.Overlay{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode overlays: %w", err)
	}
	return results, nil
}

func (or *overlayRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*types.Overlay, error) {
	var overlay types.Overlay
	err := or.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&overlay)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get overlay: %w", err)
	}
	return &overlay, nil
}

// UpdateByID applies the non-nil fields of update via $set and returns the
// post-update document.
func (or *overlayRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, update *types.OverlayUpdate) (*types.Overlay, error) {
	set := bson.M{"updated_at": update.UpdatedAt}
	if update.StreamURL != nil {
		set["stream_url"] = *update.StreamURL
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	if update.Position != nil {
		set["position"] = *update.Position
	}
	if update.Size != nil {
		set["size"] = *update.Size
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var overlay types.Overlay
	err := or.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&overlay)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update overlay: %w", err)
	}
	return &overlay, nil
}

func (or *overlayRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := or.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete overlay: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (or *overlayRepo) DeleteByStreamURL(ctx context.Context, streamURL string) (int64, error) {
	res, err := or.coll.DeleteMany(ctx, bson.M{"stream_url": streamURL})
	if err != nil {
		return 0, fmt.Errorf("delete overlays by stream url: %w", err)
	}
	return res.DeletedCount, nil
}
