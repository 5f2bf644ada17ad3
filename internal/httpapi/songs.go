package httpapi

import (
	"encoding/json"
	"net/http"

	"bandvault/internal/app/songs"
	"bandvault/internal/query"
	"bandvault/internal/store"
)

type songRequest struct {
	Name    string `json:"name"`
	AlbumID int64  `json:"albumId"`
}

type songUpdateRequest struct {
	Name    *string `json:"name"`
	AlbumID *int64  `json:"albumId"`
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	filter := query.NewSongFilter(params.Get("band"), params.Get("album"))

	result, err := s.songs.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Songs []store.Song `json:"songs"`
	}{Songs: result})
}

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	var req songRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	song, err := s.songs.Create(r.Context(), req.Name, req.AlbumID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, song)
}

func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req songUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	song, err := s.songs.Update(r.Context(), id, songs.Update{Name: req.Name, AlbumID: req.AlbumID})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, song)
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.songs.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
