package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ericstephens/scheduler/internal/domain"
)

// Locations is the resource client for training location records.
type Locations struct {
	c *Client
}

// NewLocations creates the location resource client.
func NewLocations(c *Client) *Locations {
	return &Locations{c: c}
}

// List returns locations, restricted to active ones when activeOnly is set.
func (l *Locations) List(ctx context.Context, activeOnly bool) ([]domain.Location, error) {
	query := url.Values{}
	query.Set("active_only", fmt.Sprintf("%t", activeOnly))

	var locations []domain.Location
	if err := l.c.get(ctx, domain.ResourceLocations, "/locations/", query, &locations); err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return locations, nil
}

// Get fetches one location by ID.
func (l *Locations) Get(ctx context.Context, id int) (*domain.Location, error) {
	var location domain.Location
	if err := l.c.get(ctx, domain.ResourceLocations, fmt.Sprintf("/locations/%d", id), nil, &location); err != nil {
		return nil, fmt.Errorf("fetching location %d: %w", id, err)
	}
	return &location, nil
}

// Create registers a new location.
func (l *Locations) Create(ctx context.Context, req domain.CreateLocationRequest) (*domain.Location, error) {
	var location domain.Location
	if err := l.c.post(ctx, domain.ResourceLocations, "/locations/", req, &location); err != nil {
		return nil, fmt.Errorf("creating location: %w", err)
	}
	return &location, nil
}

// Update applies a partial update; only non-nil fields are sent.
func (l *Locations) Update(ctx context.Context, id int, req domain.UpdateLocationRequest) (*domain.Location, error) {
	var location domain.Location
	if err := l.c.put(ctx, domain.ResourceLocations, fmt.Sprintf("/locations/%d", id), req, &location); err != nil {
		return nil, fmt.Errorf("updating location %d: %w", id, err)
	}
	return &location, nil
}

// SetStatus activates or deactivates a location.
func (l *Locations) SetStatus(ctx context.Context, id int, active bool) (*domain.Confirmation, error) {
	var confirmation domain.Confirmation
	req := domain.DeactivationRequest{Active: active}
	if err := l.c.patch(ctx, domain.ResourceLocations, fmt.Sprintf("/locations/%d/status", id), req, &confirmation); err != nil {
		return nil, fmt.Errorf("updating location %d status: %w", id, err)
	}
	return &confirmation, nil
}

// Delete soft-deletes a location by deactivating it.
func (l *Locations) Delete(ctx context.Context, id int) (*domain.Confirmation, error) {
	return l.SetStatus(ctx, id, false)
}

// Search runs a structured filter query.
func (l *Locations) Search(ctx context.Context, filter domain.LocationSearch) ([]domain.Location, error) {
	var locations []domain.Location
	if err := l.c.post(ctx, domain.ResourceLocations, "/locations/search", filter, &locations); err != nil {
		return nil, fmt.Errorf("searching locations: %w", err)
	}
	return locations, nil
}
