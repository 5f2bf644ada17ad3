// Package store provides persistence for the music catalog backed by
// Postgres.
package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrAlbumNotFound signals a missing album record.
	ErrAlbumNotFound = errors.New("album not found")
	// ErrSongNotFound signals a missing song record.
	ErrSongNotFound = errors.New("song not found")
	// ErrDuplicateAlbum indicates another album already holds the same
	// (name, band) pair.
	ErrDuplicateAlbum = errors.New("album already exists")
	// ErrInvalidAlbum indicates validation failure for album data.
	ErrInvalidAlbum = errors.New("invalid album")
	// ErrInvalidSong indicates validation failure for song data.
	ErrInvalidSong = errors.New("invalid song")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// The schema is the authoritative guard against races between the services'
// read-before-write checks and the write itself: UNIQUE (name, band) on
// albums and the songs->albums foreign key surface here as the same sentinel
// errors the pre-checks produce.

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
