package main

import (
	"net/http"

	"bandvault/internal/app/albums"
	"bandvault/internal/app/songs"
	"bandvault/internal/http/middleware"
	"bandvault/internal/httpapi"
	"bandvault/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	albumSvc := albums.New(dataStore)
	songSvc := songs.New(dataStore)

	handler := httpapi.New(albumSvc, songSvc).Routes()
	handler = middleware.Recovery()(handler)
	handler = middleware.RequestLogging()(handler)
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)

	return handler
}
