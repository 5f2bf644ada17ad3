// Package albums coordinates album workflows on top of the store.
package albums

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bandvault/internal/query"
	"bandvault/internal/store"
)

// Store captures the persistence needs for album workflows.
type Store interface {
	ListAlbums(ctx context.Context, filter query.AlbumFilter) ([]store.Album, error)
	AlbumByID(ctx context.Context, id int64) (store.Album, error)
	AlbumByNameAndBand(ctx context.Context, name, band string, excludeID int64) (store.Album, error)
	CreateAlbum(ctx context.Context, album store.Album) (store.Album, error)
	UpdateAlbum(ctx context.Context, album store.Album) (store.Album, error)
	DeleteAlbum(ctx context.Context, id int64) error
}

// Update carries the optional fields of an album update; nil means keep the
// current value.
type Update struct {
	Name *string
	Year *int
	Band *string
}

// Service coordinates album-related operations.
type Service interface {
	List(ctx context.Context, filter query.AlbumFilter) ([]store.Album, error)
	Get(ctx context.Context, id int64) (store.Album, error)
	Create(ctx context.Context, album store.Album) (store.Album, error)
	Update(ctx context.Context, id int64, upd Update) (store.Album, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

// List passes the filter through to the store. An empty result is a valid
// outcome, not a failure.
func (s *service) List(ctx context.Context, filter query.AlbumFilter) ([]store.Album, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListAlbums(ctx, filter)
}

func (s *service) Get(ctx context.Context, id int64) (store.Album, error) {
	if err := ctx.Err(); err != nil {
		return store.Album{}, err
	}
	return s.store.AlbumByID(ctx, id)
}

// Create persists a new album after checking no other album holds the same
// (name, band) pair.
func (s *service) Create(ctx context.Context, album store.Album) (store.Album, error) {
	if err := ctx.Err(); err != nil {
		return store.Album{}, err
	}

	album.Name = strings.TrimSpace(album.Name)
	album.Band = strings.TrimSpace(album.Band)
	if err := validateAlbum(album); err != nil {
		return store.Album{}, err
	}

	if err := s.ensureNoDuplicate(ctx, album.Name, album.Band, 0); err != nil {
		return store.Album{}, err
	}

	return s.store.CreateAlbum(ctx, album)
}

// Update merges the provided fields onto the existing album and persists the
// result. The duplicate search excludes the album's own id, so saving a
// record with its (name, band) unchanged never conflicts with itself.
func (s *service) Update(ctx context.Context, id int64, upd Update) (store.Album, error) {
	if err := ctx.Err(); err != nil {
		return store.Album{}, err
	}

	existing, err := s.store.AlbumByID(ctx, id)
	if err != nil {
		return store.Album{}, err
	}

	merged := store.Album{ID: id, Name: existing.Name, Year: existing.Year, Band: existing.Band}
	if upd.Name != nil {
		merged.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Year != nil {
		merged.Year = *upd.Year
	}
	if upd.Band != nil {
		merged.Band = strings.TrimSpace(*upd.Band)
	}
	if err := validateAlbum(merged); err != nil {
		return store.Album{}, err
	}

	if err := s.ensureNoDuplicate(ctx, merged.Name, merged.Band, id); err != nil {
		return store.Album{}, err
	}

	return s.store.UpdateAlbum(ctx, merged)
}

// Delete removes the album; its songs cascade at the schema level.
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteAlbum(ctx, id)
}

func (s *service) ensureNoDuplicate(ctx context.Context, name, band string, excludeID int64) error {
	_, err := s.store.AlbumByNameAndBand(ctx, name, band, excludeID)
	switch {
	case err == nil:
		return store.ErrDuplicateAlbum
	case errors.Is(err, store.ErrAlbumNotFound):
		return nil
	default:
		return err
	}
}

func validateAlbum(album store.Album) error {
	switch {
	case album.Name == "":
		return fmt.Errorf("%w: name is required", store.ErrInvalidAlbum)
	case album.Band == "":
		return fmt.Errorf("%w: band is required", store.ErrInvalidAlbum)
	case album.Year <= 0:
		return fmt.Errorf("%w: year must be positive", store.ErrInvalidAlbum)
	}
	return nil
}
