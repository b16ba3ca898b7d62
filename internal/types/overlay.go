package types

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/livesitter/livesitter-backend/internal/pkg/errors"
)

type OverlayType string

const (
	OverlayTypeText  OverlayType = "text"
	OverlayTypeImage OverlayType = "image"
)

// MaxContentLength bounds overlay text and image URLs.
const MaxContentLength = 5000

type Position struct {
	X float64 `bson:"x" json:"x"`
	Y float64 `bson:"y" json:"y"`
}

type Size struct {
	Width  float64 `bson:"width" json:"width"`
	Height float64 `bson:"height" json:"height"`
}

// Overlay is a positioned, sized text-or-image annotation stored in the
// "overlays" collection. Content holds literal text for type "text" and an
// image URL for type "image". StreamURL optionally scopes the overlay to
// one stream.
type Overlay struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StreamURL string             `bson:"stream_url,omitempty" json:"stream_url,omitempty"`
	Content   string             `bson:"content" json:"content"`
	Type      OverlayType        `bson:"type" json:"type"`
	Position  Position           `bson:"position" json:"position"`
	Size      Size               `bson:"size" json:"size"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// PositionInput and SizeInput use pointer fields so validation can tell a
// missing coordinate apart from an explicit zero.
type PositionInput struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type SizeInput struct {
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

type CreateOverlayRequest struct {
	StreamURL string         `json:"stream_url"`
	Content   string         `json:"content"`
	Type      string         `json:"type"`
	Position  *PositionInput `json:"position"`
	Size      *SizeInput     `json:"size"`
}

func (r *CreateOverlayRequest) Validate() error {
	if err := validateContent(r.Content); err != nil {
		return err
	}
	if r.Type == "" {
		return validationError("type is required")
	}
	if err := validateType(r.Type); err != nil {
		return err
	}
	if r.Position == nil {
		return validationError("position is required")
	}
	if err := r.Position.validate(); err != nil {
		return err
	}
	if r.Size == nil {
		return validationError("size is required")
	}
	return r.Size.validate()
}

// Overlay materializes a validated create request. The store assigns the id.
func (r *CreateOverlayRequest) Overlay(now time.Time) *Overlay {
	return &Overlay{
		StreamURL: r.StreamURL,
		Content:   r.Content,
		Type:      OverlayType(r.Type),
		Position:  Position{X: *r.Position.X, Y: *r.Position.Y},
		Size:      Size{Width: *r.Size.Width, Height: *r.Size.Height},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateOverlayRequest is a partial update: nil fields keep their stored
// values, a provided position/size replaces the whole sub-record.
type UpdateOverlayRequest struct {
	StreamURL *string        `json:"stream_url"`
	Content   *string        `json:"content"`
	Type      *string        `json:"type"`
	Position  *PositionInput `json:"position"`
	Size      *SizeInput     `json:"size"`
}

func (r *UpdateOverlayRequest) Validate() error {
	if r.StreamURL == nil && r.Content == nil && r.Type == nil && r.Position == nil && r.Size == nil {
		return validationError("no fields provided")
	}
	if r.Content != nil {
		if err := validateContent(*r.Content); err != nil {
			return err
		}
	}
	if r.Type != nil {
		if err := validateType(*r.Type); err != nil {
			return err
		}
	}
	if r.Position != nil {
		if err := r.Position.validate(); err != nil {
			return err
		}
	}
	if r.Size != nil {
		return r.Size.validate()
	}
	return nil
}

// Update converts a validated request into the typed $set payload applied
// by the repository.
func (r *UpdateOverlayRequest) Update(now time.Time) *OverlayUpdate {
	u := &OverlayUpdate{StreamURL: r.StreamURL, Content: r.Content, UpdatedAt: now}
	if r.Type != nil {
		t := OverlayType(*r.Type)
		u.Type = &t
	}
	if r.Position != nil {
		u.Position = &Position{X: *r.Position.X, Y: *r.Position.Y}
	}
	if r.Size != nil {
		u.Size = &Size{Width: *r.Size.Width, Height: *r.Size.Height}
	}
	return u
}

// OverlayUpdate carries the fields an update actually sets. Nil pointers
// are left untouched in the stored document.
type OverlayUpdate struct {
	StreamURL *string
	Content   *string
	Type      *OverlayType
	Position  *Position
	Size      *Size
	UpdatedAt time.Time
}

func (p *PositionInput) validate() error {
	if p.X == nil {
		return validationError("position.x is required and must be numeric")
	}
	if p.Y == nil {
		return validationError("position.y is required and must be numeric")
	}
	return nil
}

func (s *SizeInput) validate() error {
	if s.Width == nil {
		return validationError("size.width is required and must be numeric")
	}
	if s.Height == nil {
		return validationError("size.height is required and must be numeric")
	}
	return nil
}

func validateContent(content string) error {
	if content == "" {
		return validationError("content is required")
	}
	if len(content) > MaxContentLength {
		return validationError(fmt.Sprintf("content must be at most %d characters", MaxContentLength))
	}
	return nil
}

func validateType(t string) error {
	switch OverlayType(t) {
	case OverlayTypeText, OverlayTypeImage:
		return nil
	}
	return validationError(`type must be either "text" or "image"`)
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
}
