// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"pagecraft/internal/stockphoto"
)

// StockPhotoSearch proxies the Pexels search API for the dashboard
// picker. Failures always produce a 200 with empty photos and the error
// embedded; the picker inspects the payload, never the status code.
func (a *API) StockPhotoSearch(w http.ResponseWriter, r *http.Request) {
	if a.photos == nil {
		writeJSON(w, http.StatusOK, stockphoto.SearchResult{
			Photos: []stockphoto.Photo{},
			Error:  "stock photo search is not configured",
		})
		return
	}

	query := r.URL.Query().Get("query")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	result, err := a.photos.Search(r.Context(), query, page)
	if err != nil {
		writeJSON(w, http.StatusOK, stockphoto.SearchResult{
			Photos: []stockphoto.Photo{},
			Error:  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, result)
}
