package types

import (
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/livesitter/livesitter-backend/internal/pkg/errors"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func validCreateRequest() *CreateOverlayRequest {
	return &CreateOverlayRequest{
		Content:  "Hello",
		Type:     "text",
		Position: &PositionInput{X: fptr(10), Y: fptr(20)},
		Size:     &SizeInput{Width: fptr(100), Height: fptr(30)},
	}
}

func TestCreateOverlayRequestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*CreateOverlayRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(r *CreateOverlayRequest) {}},
		{
			name:   "valid image",
			mutate: func(r *CreateOverlayRequest) { r.Type = "image"; r.Content = "https://example.com/logo.png" },
		},
		{
			name:   "negative size accepted",
			mutate: func(r *CreateOverlayRequest) { r.Size = &SizeInput{Width: fptr(-5), Height: fptr(0)} },
		},
		{
			name:    "missing content",
			mutate:  func(r *CreateOverlayRequest) { r.Content = "" },
			wantErr: "content is required",
		},
		{
			name:    "content too long",
			mutate:  func(r *CreateOverlayRequest) { r.Content = strings.Repeat("x", MaxContentLength+1) },
			wantErr: "at most",
		},
		{
			name:    "missing type",
			mutate:  func(r *CreateOverlayRequest) { r.Type = "" },
			wantErr: "type is required",
		},
		{
			name:    "bad type",
			mutate:  func(r *CreateOverlayRequest) { r.Type = "video" },
			wantErr: `either "text" or "image"`,
		},
		{
			name:    "missing position",
			mutate:  func(r *CreateOverlayRequest) { r.Position = nil },
			wantErr: "position is required",
		},
		{
			name:    "missing position y",
			mutate:  func(r *CreateOverlayRequest) { r.Position = &PositionInput{X: fptr(1)} },
			wantErr: "position.y",
		},
		{
			name:    "missing size",
			mutate:  func(r *CreateOverlayRequest) { r.Size = nil },
			wantErr: "size is required",
		},
		{
			name:    "missing size width",
			mutate:  func(r *CreateOverlayRequest) { r.Size = &SizeInput{Height: fptr(1)} },
			wantErr: "size.width",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := validCreateRequest()
			tc.mutate(req)
			err := req.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tc.wantErr)
			}
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("error not wrapped in ErrValidation: %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("unexpected error message: got=%q want substring=%q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestUpdateOverlayRequestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		req     UpdateOverlayRequest
		wantErr string
	}{
		{name: "empty", req: UpdateOverlayRequest{}, wantErr: "no fields provided"},
		{name: "content only", req: UpdateOverlayRequest{Content: sptr("updated")}},
		{name: "position only", req: UpdateOverlayRequest{Position: &PositionInput{X: fptr(5), Y: fptr(5)}}},
		{name: "empty content", req: UpdateOverlayRequest{Content: sptr("")}, wantErr: "content is required"},
		{name: "bad type", req: UpdateOverlayRequest{Type: sptr("gif")}, wantErr: `either "text" or "image"`},
		{name: "incomplete position", req: UpdateOverlayRequest{Position: &PositionInput{Y: fptr(1)}}, wantErr: "position.x"},
		{name: "incomplete size", req: UpdateOverlayRequest{Size: &SizeInput{Width: fptr(1)}}, wantErr: "size.height"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.req.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("unexpected error: got=%v want substring=%q", err, tc.wantErr)
			}
		})
	}
}

func TestUpdateOverlayRequestUpdateCarriesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	req := UpdateOverlayRequest{Position: &PositionInput{X: fptr(5), Y: fptr(6)}}
	u := req.Update(now)

	if u.Position == nil || u.Position.X != 5 || u.Position.Y != 6 {
		t.Fatalf("position not carried: %+v", u.Position)
	}
	if u.Content != nil || u.Type != nil || u.Size != nil || u.StreamURL != nil {
		t.Fatalf("unset fields must stay nil: %+v", u)
	}
	if !u.UpdatedAt.Equal(now) {
		t.Fatalf("updated_at not set: %v", u.UpdatedAt)
	}
}

func TestCreateOverlayRequestOverlaySetsTimestamps(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	o := validCreateRequest().Overlay(now)
	if !o.CreatedAt.Equal(now) || !o.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not set from now: created=%v updated=%v", o.CreatedAt, o.UpdatedAt)
	}
	if o.Type != OverlayTypeText {
		t.Fatalf("unexpected type: %v", o.Type)
	}
	if !o.ID.IsZero() {
		t.Fatalf("id must be store-assigned, got %v", o.ID)
	}
}
