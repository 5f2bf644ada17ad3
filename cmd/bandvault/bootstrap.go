package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// bootstrapDemoData seeds a few albums with songs so a fresh instance has
// something to browse. It runs only when the albums table exists and is
// empty.
func bootstrapDemoData(ctx context.Context, db *sql.DB) error {
	albumsTableExists, err := tableExists(ctx, db, "albums")
	if err != nil {
		return fmt.Errorf("check albums table: %w", err)
	}
	if !albumsTableExists {
		return nil
	}

	var count int
	if err := db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM albums
	`).Scan(&count); err != nil {
		return fmt.Errorf("count albums: %w", err)
	}
	if count > 0 {
		return nil
	}

	type seedAlbum struct {
		Name  string
		Year  int
		Band  string
		Songs []string
	}

	albums := []seedAlbum{
		{
			Name:  "Images and Words",
			Year:  1992,
			Band:  "Dream Theater",
			Songs: []string{"Pull Me Under", "Another Day", "Take the Time"},
		},
		{
			Name:  "Awake",
			Year:  1994,
			Band:  "Dream Theater",
			Songs: []string{"6:00", "Caught in a Web"},
		},
		{
			Name:  "OK Computer",
			Year:  1997,
			Band:  "Radiohead",
			Songs: []string{"Airbag", "Paranoid Android", "No Surprises"},
		},
		{
			Name:  "Mezzanine",
			Year:  1998,
			Band:  "Massive Attack",
			Songs: []string{"Angel", "Teardrop"},
		},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	for _, album := range albums {
		var albumID int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO albums (name, year, band)
			VALUES ($1, $2, $3)
			RETURNING id
		`, album.Name, album.Year, album.Band).Scan(&albumID); err != nil {
			return fmt.Errorf("insert demo album %q: %w", album.Name, err)
		}

		for _, song := range album.Songs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO songs (name, album_id)
				VALUES ($1, $2)
			`, song, albumID); err != nil {
				return fmt.Errorf("insert demo song %q: %w", song, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	tx = nil

	return nil
}

func tableExists(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var name sql.NullString
	if err := db.QueryRowContext(ctx, `SELECT to_regclass($1)`, table).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return name.Valid, nil
}
