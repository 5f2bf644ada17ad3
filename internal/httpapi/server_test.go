package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bandvault/internal/app/albums"
	"bandvault/internal/app/songs"
	"bandvault/internal/query"
	"bandvault/internal/store"
)

type stubAlbumService struct {
	listResponse []store.Album
	listErr      error
	lastFilter   query.AlbumFilter
	listCalled   bool

	singleAlbum store.Album
	singleErr   error

	createdAlbum store.Album
	createErr    error

	updatedAlbum store.Album
	updateErr    error

	deleteErr error
}

func (s *stubAlbumService) List(ctx context.Context, filter query.AlbumFilter) ([]store.Album, error) {
	s.listCalled = true
	s.lastFilter = filter
	return s.listResponse, s.listErr
}

func (s *stubAlbumService) Get(ctx context.Context, id int64) (store.Album, error) {
	return s.singleAlbum, s.singleErr
}

func (s *stubAlbumService) Create(ctx context.Context, album store.Album) (store.Album, error) {
	if s.createErr != nil {
		return store.Album{}, s.createErr
	}
	s.createdAlbum = album
	album.ID = 1
	return album, nil
}

func (s *stubAlbumService) Update(ctx context.Context, id int64, upd albums.Update) (store.Album, error) {
	return s.updatedAlbum, s.updateErr
}

func (s *stubAlbumService) Delete(ctx context.Context, id int64) error {
	return s.deleteErr
}

type stubSongService struct {
	listResponse []store.Song
	listErr      error
	lastFilter   query.SongFilter

	createdSong store.Song
	createErr   error

	updatedSong store.Song
	updateErr   error

	deleteErr error
}

func (s *stubSongService) List(ctx context.Context, filter query.SongFilter) ([]store.Song, error) {
	s.lastFilter = filter
	return s.listResponse, s.listErr
}

func (s *stubSongService) Create(ctx context.Context, name string, albumID int64) (store.Song, error) {
	if s.createErr != nil {
		return store.Song{}, s.createErr
	}
	s.createdSong = store.Song{ID: 1, Name: name, AlbumID: albumID}
	return s.createdSong, nil
}

func (s *stubSongService) Update(ctx context.Context, id int64, upd songs.Update) (store.Song, error) {
	return s.updatedSong, s.updateErr
}

func (s *stubSongService) Delete(ctx context.Context, id int64) error {
	return s.deleteErr
}

func newTestServer(albumSvc *stubAlbumService, songSvc *stubSongService) http.Handler {
	if albumSvc == nil {
		albumSvc = &stubAlbumService{}
	}
	if songSvc == nil {
		songSvc = &stubSongService{}
	}
	return New(albumSvc, songSvc).Routes()
}

func TestListAlbumsInvertedRangeRejected(t *testing.T) {
	albumSvc := &stubAlbumService{}
	handler := newTestServer(albumSvc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/albums?from=2000&to=1990", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if albumSvc.listCalled {
		t.Fatal("service must not be reached for an inverted range")
	}
}

func TestListAlbumsFilterPassedThrough(t *testing.T) {
	albumSvc := &stubAlbumService{
		listResponse: []store.Album{{ID: 2, Name: "Images and Words", Year: 1992, Band: "Dream Theater"}},
	}
	handler := newTestServer(albumSvc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/albums?band=Dream+Theater&from=1990&to=1995", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	want := query.AlbumFilter{Band: "Dream Theater", From: 1990, To: 1995}
	if albumSvc.lastFilter != want {
		t.Fatalf("filter = %+v, want %+v", albumSvc.lastFilter, want)
	}

	var body struct {
		Albums []store.Album `json:"albums"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Albums) != 1 || body.Albums[0].Name != "Images and Words" {
		t.Fatalf("unexpected body: %#v", body)
	}
}

func TestListAlbumsUnparseableYearTreatedAsAbsent(t *testing.T) {
	albumSvc := &stubAlbumService{}
	handler := newTestServer(albumSvc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/albums?from=abc&to=1999", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if albumSvc.lastFilter.From != 0 || albumSvc.lastFilter.To != 1999 {
		t.Fatalf("unexpected filter: %+v", albumSvc.lastFilter)
	}
}

func TestGetAlbumNotFound(t *testing.T) {
	handler := newTestServer(&stubAlbumService{singleErr: store.ErrAlbumNotFound}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/albums/999", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateAlbumConflict(t *testing.T) {
	handler := newTestServer(&stubAlbumService{createErr: store.ErrDuplicateAlbum}, nil)

	payload, _ := json.Marshal(albumRequest{Name: "Album 3", Year: 2001, Band: "Band A"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/albums", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestCreateAlbumSuccess(t *testing.T) {
	albumSvc := &stubAlbumService{}
	handler := newTestServer(albumSvc, nil)

	payload, _ := json.Marshal(albumRequest{Name: "Album 3", Year: 2001, Band: "Band B"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/albums", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if albumSvc.createdAlbum.Band != "Band B" {
		t.Fatalf("unexpected created album: %#v", albumSvc.createdAlbum)
	}
}

func TestCreateAlbumInvalidPayload(t *testing.T) {
	handler := newTestServer(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/albums", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateAlbumValidationError(t *testing.T) {
	handler := newTestServer(&stubAlbumService{updateErr: store.ErrInvalidAlbum}, nil)

	payload := []byte(`{"name": ""}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/albums/5", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDeleteAlbumNoContent(t *testing.T) {
	handler := newTestServer(&stubAlbumService{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/albums/3", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestListSongsFilterPassedThrough(t *testing.T) {
	songSvc := &stubSongService{
		listResponse: []store.Song{{ID: 1, Name: "Song 1", AlbumID: 1, AlbumName: "Album 1", AlbumYear: 1994}},
	}
	handler := newTestServer(nil, songSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/songs?album=Album+1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if songSvc.lastFilter != (query.SongFilter{Album: "Album 1"}) {
		t.Fatalf("unexpected filter: %+v", songSvc.lastFilter)
	}
}

func TestCreateSongMissingAlbum(t *testing.T) {
	handler := newTestServer(nil, &stubSongService{createErr: store.ErrAlbumNotFound})

	payload, _ := json.Marshal(songRequest{Name: "Orphan", AlbumID: 404})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/songs", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateSongSuccess(t *testing.T) {
	songSvc := &stubSongService{}
	handler := newTestServer(nil, songSvc)

	payload, _ := json.Marshal(songRequest{Name: "Pull Me Under", AlbumID: 2})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/songs", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var song store.Song
	if err := json.NewDecoder(rec.Body).Decode(&song); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if song.AlbumID != 2 {
		t.Fatalf("expected returned song to carry albumId 2, got %d", song.AlbumID)
	}
}

func TestDeleteSongNotFound(t *testing.T) {
	handler := newTestServer(nil, &stubSongService{deleteErr: store.ErrSongNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/songs/999", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestInvalidPathID(t *testing.T) {
	handler := newTestServer(nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/albums/abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
