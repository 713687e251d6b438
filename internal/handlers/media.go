// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"pagecraft/internal/storage"
)

// maxUploadSize is the maximum allowed media upload size (50 MB).
const maxUploadSize = 50 << 20

// allowedMediaTypes defines MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
	"video/mp4":     true,
	"video/webm":    true,
}

// requireMedia reports whether the asset host is configured, answering
// the request when it is not.
func (a *API) requireMedia(w http.ResponseWriter) bool {
	if a.media == nil {
		writeError(w, http.StatusServiceUnavailable, "media storage is not configured")
		return false
	}
	return true
}

// MediaUpload accepts a multipart upload and stores it on the asset host,
// returning the new library entry.
func (a *API) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if !a.requireMedia(w) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 50 MB")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 50 MB")
		return
	}

	// Sniff the content type from the first bytes rather than trusting
	// the client's header.
	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}
	contentType := http.DetectContentType(sniff[:n])

	// SVG comes back as XML or plain text from the sniffer.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedMediaTypes[contentType] {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported file type: "+contentType)
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	obj, err := a.media.Upload(r.Context(), header.Filename, contentType, file, header.Size)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, obj)
}

// MediaList returns the media library. An asset-host failure produces an
// empty list with the error embedded, not an HTTP error.
func (a *API) MediaList(w http.ResponseWriter, r *http.Request) {
	if !a.requireMedia(w) {
		return
	}

	objects, err := a.media.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"resources": []storage.Object{},
			"error":     err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, objects)
}

// MediaDelete removes a media object by its public id.
func (a *API) MediaDelete(w http.ResponseWriter, r *http.Request) {
	if !a.requireMedia(w) {
		return
	}

	// Both key spellings are in the wild: the dashboard sends publicId,
	// older callers send public_id.
	var body struct {
		PublicID    string `json:"public_id"`
		PublicIDAlt string `json:"publicId"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.PublicID == "" {
		body.PublicID = body.PublicIDAlt
	}
	if body.PublicID == "" {
		writeError(w, http.StatusBadRequest, "public_id is required")
		return
	}

	if err := a.media.Delete(r.Context(), body.PublicID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}

// importRequest is the import-by-url payload.
type importRequest struct {
	ImageURL string `json:"imageUrl"`
}

func (ir importRequest) Validate() error {
	return validation.ValidateStruct(&ir,
		validation.Field(&ir.ImageURL, validation.Required, is.URL),
	)
}

// MediaImportByURL downloads a remote image onto the asset host, so stock
// photos live alongside direct uploads.
func (a *API) MediaImportByURL(w http.ResponseWriter, r *http.Request) {
	if !a.requireMedia(w) {
		return
	}

	var body importRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if err := body.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	obj, err := a.media.ImportFromURL(r.Context(), body.ImageURL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, obj)
}
