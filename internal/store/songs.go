package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bandvault/internal/query"
)

// Song represents a track belonging to an album. AlbumName and AlbumYear are
// projected from the joined album on listing.
type Song struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	AlbumID   int64  `json:"albumId"`
	AlbumName string `json:"albumName,omitempty"`
	AlbumYear int    `json:"albumYear,omitempty"`
}

// ListSongs returns songs joined to their album, filtered on the album's
// band and name.
func (s *Store) ListSongs(ctx context.Context, filter query.SongFilter) ([]Song, error) {
	where, args := query.Where(query.SongPredicates(filter))

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.album_id, a.name, a.year
		FROM songs s
		JOIN albums a ON a.id = s.album_id`+where+`
		ORDER BY s.album_id ASC, s.id ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("select songs: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Name, &song.AlbumID, &song.AlbumName, &song.AlbumYear); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}

	return songs, nil
}

// SongByID returns a single song by its identifier.
func (s *Store) SongByID(ctx context.Context, id int64) (Song, error) {
	var song Song
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, album_id
		FROM songs
		WHERE id = $1
	`, id).Scan(&song.ID, &song.Name, &song.AlbumID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Song{}, ErrSongNotFound
		}
		return Song{}, fmt.Errorf("select song: %w", err)
	}
	return song, nil
}

// CreateSong inserts a new song and returns it with its assigned id.
func (s *Store) CreateSong(ctx context.Context, name string, albumID int64) (Song, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO songs (name, album_id)
		VALUES ($1, $2)
		RETURNING id
	`, name, albumID).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return Song{}, ErrAlbumNotFound
		}
		return Song{}, fmt.Errorf("insert song: %w", err)
	}

	return Song{ID: id, Name: name, AlbumID: albumID}, nil
}

// UpdateSong persists the song's fields under its id.
func (s *Store) UpdateSong(ctx context.Context, song Song) (Song, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE songs
		SET name = $1, album_id = $2
		WHERE id = $3
	`, song.Name, song.AlbumID, song.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return Song{}, ErrAlbumNotFound
		}
		return Song{}, fmt.Errorf("update song: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Song{}, fmt.Errorf("update song rows affected: %w", err)
	}
	if affected == 0 {
		return Song{}, ErrSongNotFound
	}

	return song, nil
}

// DeleteSong removes a single song. Albums are untouched.
func (s *Store) DeleteSong(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM songs
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete song rows affected: %w", err)
	}
	if affected == 0 {
		return ErrSongNotFound
	}

	return nil
}
