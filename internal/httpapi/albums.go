package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bandvault/internal/app/albums"
	"bandvault/internal/query"
	"bandvault/internal/store"
)

type albumRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
	Band string `json:"band"`
}

type albumUpdateRequest struct {
	Name *string `json:"name"`
	Year *int    `json:"year"`
	Band *string `json:"band"`
}

func (s *Server) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	// An unparseable year is treated as absent, matching the filter's
	// contract; only an explicit inverted range is a client error, caught
	// here before any filter exists.
	from := parseYear(params.Get("from"))
	to := parseYear(params.Get("to"))
	if from > 0 && to > 0 && from > to {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "'from' must not exceed 'to'"})
		return
	}

	filter := query.NewAlbumFilter(params.Get("band"), from, to)

	result, err := s.albums.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Albums []store.Album `json:"albums"`
	}{Albums: result})
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	album, err := s.albums.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, album)
}

func (s *Server) handleCreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	album, err := s.albums.Create(r.Context(), store.Album{Name: req.Name, Year: req.Year, Band: req.Band})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, album)
}

func (s *Server) handleUpdateAlbum(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req albumUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	album, err := s.albums.Update(r.Context(), id, albums.Update{Name: req.Name, Year: req.Year, Band: req.Band})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, album)
}

func (s *Server) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.albums.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseYear returns 0 for anything that is not a positive integer.
func parseYear(raw string) int {
	year, err := strconv.Atoi(raw)
	if err != nil || year < 0 {
		return 0
	}
	return year
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
