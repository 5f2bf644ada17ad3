// Package httpapi wires HTTP handlers to the underlying services and maps
// typed failures to transport statuses.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bandvault/internal/app/albums"
	"bandvault/internal/app/songs"
	"bandvault/internal/query"
	"bandvault/internal/store"
)

// AlbumService exposes album-specific workflows.
type AlbumService interface {
	List(ctx context.Context, filter query.AlbumFilter) ([]store.Album, error)
	Get(ctx context.Context, id int64) (store.Album, error)
	Create(ctx context.Context, album store.Album) (store.Album, error)
	Update(ctx context.Context, id int64, upd albums.Update) (store.Album, error)
	Delete(ctx context.Context, id int64) error
}

// SongService coordinates track-level operations.
type SongService interface {
	List(ctx context.Context, filter query.SongFilter) ([]store.Song, error)
	Create(ctx context.Context, name string, albumID int64) (store.Song, error)
	Update(ctx context.Context, id int64, upd songs.Update) (store.Song, error)
	Delete(ctx context.Context, id int64) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	albums AlbumService
	songs  SongService
}

// New configures a Server with the given services.
func New(albums AlbumService, songs SongService) *Server {
	return &Server{albums: albums, songs: songs}
}

// Routes exposes the HTTP handlers for the catalog.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /api/v1/albums", s.handleListAlbums)
	mux.HandleFunc("POST /api/v1/albums", s.handleCreateAlbum)
	mux.HandleFunc("GET /api/v1/albums/{id}", s.handleGetAlbum)
	mux.HandleFunc("PUT /api/v1/albums/{id}", s.handleUpdateAlbum)
	mux.HandleFunc("DELETE /api/v1/albums/{id}", s.handleDeleteAlbum)

	mux.HandleFunc("GET /api/v1/songs", s.handleListSongs)
	mux.HandleFunc("POST /api/v1/songs", s.handleCreateSong)
	mux.HandleFunc("PUT /api/v1/songs/{id}", s.handleUpdateSong)
	mux.HandleFunc("DELETE /api/v1/songs/{id}", s.handleDeleteSong)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeServiceError maps the services' sentinel errors onto statuses.
// Anything unclassified is an internal error.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrAlbumNotFound), errors.Is(err, store.ErrSongNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrDuplicateAlbum):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrInvalidAlbum), errors.Is(err, store.ErrInvalidSong):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
