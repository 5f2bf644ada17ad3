// Package songs coordinates song workflows on top of the store.
package songs

import (
	"context"
	"fmt"
	"strings"

	"bandvault/internal/query"
	"bandvault/internal/store"
)

// Store captures the persistence needs for song workflows.
type Store interface {
	ListSongs(ctx context.Context, filter query.SongFilter) ([]store.Song, error)
	SongByID(ctx context.Context, id int64) (store.Song, error)
	CreateSong(ctx context.Context, name string, albumID int64) (store.Song, error)
	UpdateSong(ctx context.Context, song store.Song) (store.Song, error)
	DeleteSong(ctx context.Context, id int64) error
	AlbumExists(ctx context.Context, id int64) (bool, error)
}

// Update carries the optional fields of a song update; nil means keep the
// current value.
type Update struct {
	Name    *string
	AlbumID *int64
}

// Service exposes song-centric operations.
type Service interface {
	List(ctx context.Context, filter query.SongFilter) ([]store.Song, error)
	Create(ctx context.Context, name string, albumID int64) (store.Song, error)
	Update(ctx context.Context, id int64, upd Update) (store.Song, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a song Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context, filter query.SongFilter) ([]store.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListSongs(ctx, filter)
}

// Create persists a new song only when its album exists.
func (s *service) Create(ctx context.Context, name string, albumID int64) (store.Song, error) {
	if err := ctx.Err(); err != nil {
		return store.Song{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return store.Song{}, fmt.Errorf("%w: name is required", store.ErrInvalidSong)
	}

	if err := s.ensureAlbum(ctx, albumID); err != nil {
		return store.Song{}, err
	}

	return s.store.CreateSong(ctx, name, albumID)
}

// Update merges the provided fields onto the existing song. A changed album
// id must reference an existing album; the check runs before any write, so a
// failure leaves the song's prior album untouched.
func (s *service) Update(ctx context.Context, id int64, upd Update) (store.Song, error) {
	if err := ctx.Err(); err != nil {
		return store.Song{}, err
	}

	existing, err := s.store.SongByID(ctx, id)
	if err != nil {
		return store.Song{}, err
	}

	merged := store.Song{ID: id, Name: existing.Name, AlbumID: existing.AlbumID}
	if upd.Name != nil {
		merged.Name = strings.TrimSpace(*upd.Name)
	}
	if merged.Name == "" {
		return store.Song{}, fmt.Errorf("%w: name is required", store.ErrInvalidSong)
	}
	if upd.AlbumID != nil {
		if err := s.ensureAlbum(ctx, *upd.AlbumID); err != nil {
			return store.Song{}, err
		}
		merged.AlbumID = *upd.AlbumID
	}

	return s.store.UpdateSong(ctx, merged)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteSong(ctx, id)
}

func (s *service) ensureAlbum(ctx context.Context, albumID int64) error {
	if albumID <= 0 {
		return fmt.Errorf("%w: album id is required", store.ErrInvalidSong)
	}
	ok, err := s.store.AlbumExists(ctx, albumID)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrAlbumNotFound
	}
	return nil
}
