package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bandvault/internal/query"
)

// Album models a record in the catalog. Songs is populated only by AlbumByID.
type Album struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Year  int       `json:"year"`
	Band  string    `json:"band"`
	Songs []SongRef `json:"songs,omitempty"`
}

// SongRef is the projection of a song carried inside its album.
type SongRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListAlbums returns albums matching the filter.
func (s *Store) ListAlbums(ctx context.Context, filter query.AlbumFilter) ([]Album, error) {
	where, args := query.Where(query.AlbumPredicates(filter))

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, year, band
		FROM albums`+where+`
		ORDER BY year ASC, id ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("select albums: %w", err)
	}
	defer rows.Close()

	var albums []Album
	for rows.Next() {
		var a Album
		if err := rows.Scan(&a.ID, &a.Name, &a.Year, &a.Band); err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate albums: %w", err)
	}

	return albums, nil
}

// AlbumByID returns a single album with its songs projected as {id, name}.
func (s *Store) AlbumByID(ctx context.Context, id int64) (Album, error) {
	var a Album
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, year, band
		FROM albums
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.Year, &a.Band)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Album{}, ErrAlbumNotFound
		}
		return Album{}, fmt.Errorf("select album: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM songs
		WHERE album_id = $1
		ORDER BY id ASC
	`, id)
	if err != nil {
		return Album{}, fmt.Errorf("select album songs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ref SongRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return Album{}, fmt.Errorf("scan album song: %w", err)
		}
		a.Songs = append(a.Songs, ref)
	}
	if err := rows.Err(); err != nil {
		return Album{}, fmt.Errorf("iterate album songs: %w", err)
	}

	return a, nil
}

// AlbumByNameAndBand looks up an album by its unique (name, band) pair,
// skipping excludeID so an update never collides with the record itself.
// Pass excludeID 0 to search all albums. The name comparison is
// case-sensitive.
func (s *Store) AlbumByNameAndBand(ctx context.Context, name, band string, excludeID int64) (Album, error) {
	var a Album
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, year, band
		FROM albums
		WHERE name = $1 AND band = $2 AND id <> $3
	`, name, band, excludeID).Scan(&a.ID, &a.Name, &a.Year, &a.Band)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Album{}, ErrAlbumNotFound
		}
		return Album{}, fmt.Errorf("select album by name and band: %w", err)
	}
	return a, nil
}

// AlbumExists reports whether an album with the given id is present.
func (s *Store) AlbumExists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id
		FROM albums
		WHERE id = $1
	`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup album: %w", err)
	}
	return true, nil
}

// CreateAlbum inserts a new album and returns it with its assigned id.
func (s *Store) CreateAlbum(ctx context.Context, album Album) (Album, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO albums (name, year, band)
		VALUES ($1, $2, $3)
		RETURNING id
	`, album.Name, album.Year, album.Band).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return Album{}, ErrDuplicateAlbum
		}
		return Album{}, fmt.Errorf("insert album: %w", err)
	}

	album.ID = id
	return album, nil
}

// UpdateAlbum persists the album's fields under its id.
func (s *Store) UpdateAlbum(ctx context.Context, album Album) (Album, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE albums
		SET name = $1, year = $2, band = $3
		WHERE id = $4
	`, album.Name, album.Year, album.Band, album.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return Album{}, ErrDuplicateAlbum
		}
		return Album{}, fmt.Errorf("update album: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Album{}, fmt.Errorf("update album rows affected: %w", err)
	}
	if affected == 0 {
		return Album{}, ErrAlbumNotFound
	}

	return album, nil
}

// DeleteAlbum removes an album. Its songs go with it through the schema's
// ON DELETE CASCADE.
func (s *Store) DeleteAlbum(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM albums
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete album rows affected: %w", err)
	}
	if affected == 0 {
		return ErrAlbumNotFound
	}

	return nil
}
