// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"pagecraft/internal/storage"
	"pagecraft/internal/store"
)

// newMediaAPI builds an API whose asset host points at a dead endpoint.
// The handlers' own validation runs before any storage call, so these
// tests never reach the network.
func newMediaAPI(t *testing.T) *API {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "site.json"))
	if err != nil {
		t.Fatalf("store.Open() error: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	media, err := storage.New("http://127.0.0.1:1", "us-east-1", "key", "secret", "test-bucket", "")
	if err != nil {
		t.Fatalf("storage.New() error: %v", err)
	}
	return NewAPI(st, media, nil)
}

// --------------------------------------------------------------------------
// Unconfigured asset host — every media endpoint answers 503
// --------------------------------------------------------------------------

func TestMediaUnconfigured(t *testing.T) {
	api := newTestAPI(t)

	endpoints := []struct {
		name    string
		method  string
		handler http.HandlerFunc
	}{
		{"upload", "POST", api.MediaUpload},
		{"list", "GET", api.MediaList},
		{"delete", "POST", api.MediaDelete},
		{"import-by-url", "POST", api.MediaImportByURL},
	}

	for _, ep := range endpoints {
		t.Run(ep.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ep.handler(w, httptest.NewRequest(ep.method, "/api/media/"+ep.name, nil))

			if w.Code != http.StatusServiceUnavailable {
				t.Fatalf("expected 503, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "media storage is not configured") {
				t.Errorf("body: %q", w.Body.String())
			}
		})
	}
}

// --------------------------------------------------------------------------
// Upload validation
// --------------------------------------------------------------------------

func TestMediaUploadRejectsUnsupportedType(t *testing.T) {
	api := newMediaAPI(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("plain text, not an image"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	api.MediaUpload(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "unsupported file type") {
		t.Errorf("body: %q", w.Body.String())
	}
}

func TestMediaUploadMissingFile(t *testing.T) {
	api := newMediaAPI(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("name", "nothing attached")
	mw.Close()

	req := httptest.NewRequest("POST", "/api/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	api.MediaUpload(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// --------------------------------------------------------------------------
// Delete and import validation
// --------------------------------------------------------------------------

func TestMediaDeleteRequiresPublicID(t *testing.T) {
	api := newMediaAPI(t)

	req := httptest.NewRequest("POST", "/api/media/delete", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	api.MediaDelete(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "public_id is required") {
		t.Errorf("body: %q", w.Body.String())
	}
}

func TestMediaImportByURLValidation(t *testing.T) {
	api := newMediaAPI(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing url", `{}`},
		{"not a url", `{"imageUrl":"not a url at all"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/media/import-by-url", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			api.MediaImportByURL(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
