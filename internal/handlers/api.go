// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the JSON resource API
// the dashboard talks to, including the media and stock-photo
// passthroughs.
//
// Error conventions differ by endpoint family, matching what dashboard
// callers expect. Reads degrade to an empty or default value and never
// fail. Document writes report {"success":false,"error":...}; most do so
// with a 200 status, so callers inspect the payload. External-call
// failures (asset host, stock photos) embed the error in an otherwise
// well-formed payload.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pagecraft/internal/stockphoto"
	"pagecraft/internal/storage"
	"pagecraft/internal/store"
)

// API is the handler group for the JSON resource endpoints.
type API struct {
	store  *store.Store
	media  *storage.Client
	photos *stockphoto.Client
}

// NewAPI creates the API handler group. media and photos may be nil when
// the corresponding service is not configured; the affected endpoints
// report that per request.
func NewAPI(st *store.Store, media *storage.Client, photos *stockphoto.Client) *API {
	return &API{store: st, media: media, photos: photos}
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "error", err)
	}
}

// writeNoCacheJSON writes v with headers that defeat intermediary and
// browser caching. Theme state uses this so the public renderers see
// edits within one polling interval.
func writeNoCacheJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	writeJSON(w, status, v)
}

// writeError writes {"error": msg} with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeSuccess writes {"success": true}.
func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// writeFailure writes {"success": false, "error": msg}. Status is 200 for
// the endpoints whose callers inspect the payload rather than the status
// code; others pass 500.
func writeFailure(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"success": false, "error": err.Error()})
}

// jsonRoundTrip converts a typed value into its map form.
func jsonRoundTrip(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeBody decodes the request body into v, reporting a 400 on failure.
// Returns false when the caller should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
