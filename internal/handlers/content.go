// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"sort"

	"pagecraft/internal/models"
)

// Pages returns the pages array, empty when nothing is stored.
func (a *API) Pages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Pages())
}

// SavePages replaces the pages array. Sections are cleaned for sparse
// storage; orphaned sections and stale menu items are handled inside the
// store. Failures report success:false with a 200 status.
func (a *API) SavePages(w http.ResponseWriter, r *http.Request) {
	var pages []models.Page
	if !decodeBody(w, r, &pages) {
		return
	}
	if err := a.store.ReplacePages(pages); err != nil {
		writeFailure(w, http.StatusOK, err)
		return
	}
	writeSuccess(w)
}

// Sections returns every section from every page with its pageId attached
// (the legacy flattened view).
func (a *API) Sections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.FlatSections())
}

// SaveSections accepts the flattened section list, regroups it by page,
// and writes each group back.
func (a *API) SaveSections(w http.ResponseWriter, r *http.Request) {
	var sections []models.PageSection
	if !decodeBody(w, r, &sections) {
		return
	}
	if err := a.store.ReplaceFlatSections(sections); err != nil {
		writeFailure(w, http.StatusOK, err)
		return
	}
	writeSuccess(w)
}

// Menus returns the menus array.
func (a *API) Menus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Menus())
}

// SaveMenus replaces the menus array. Unlike the pages write, a failure
// here is a 500 with a bare error payload.
func (a *API) SaveMenus(w http.ResponseWriter, r *http.Request) {
	var menus []models.Menu
	if !decodeBody(w, r, &menus) {
		return
	}
	if err := a.store.ReplaceMenus(menus); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeSuccess(w)
}

// Settings returns the settings record, {} when nothing is stored.
func (a *API) Settings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.SettingsValue())
}

// SaveSettings shallow-merges a partial settings payload into the stored
// record so dashboard saves never drop the footer block.
func (a *API) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if !decodeBody(w, r, &patch) {
		return
	}
	if err := a.store.MergeSettings(patch); err != nil {
		writeFailure(w, http.StatusOK, err)
		return
	}
	writeSuccess(w)
}

// Theme returns {"colors": {...}} with defaults applied, never cached.
func (a *API) Theme(w http.ResponseWriter, r *http.Request) {
	writeNoCacheJSON(w, http.StatusOK, map[string]any{"colors": a.store.Colors()})
}

// SaveTheme replaces the theme palette.
func (a *API) SaveTheme(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Colors models.ThemeColors `json:"colors"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := a.store.SetColors(body.Colors); err != nil {
		writeFailure(w, http.StatusOK, err)
		return
	}
	writeSuccess(w)
}

// Typography returns {"typography": null} when unset so the renderer
// knows to keep its stylesheet defaults.
func (a *API) Typography(w http.ResponseWriter, r *http.Request) {
	writeNoCacheJSON(w, http.StatusOK, map[string]any{"typography": a.store.TypographyValue()})
}

// SaveTypography replaces the typography, or deletes it when the payload
// carries action "delete".
func (a *API) SaveTypography(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Typography *models.Typography `json:"typography"`
		Action     string             `json:"action"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	value := body.Typography
	if body.Action == "delete" {
		value = nil
	}
	if err := a.store.SetTypography(value); err != nil {
		writeFailure(w, http.StatusOK, err)
		return
	}
	writeSuccess(w)
}

// Logo returns {"logo": {...}} with defaults applied.
func (a *API) Logo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"logo": a.store.LogoValue()})
}

// SaveLogo replaces the logo record and echoes it back. Failures are 500s
// here, unlike the pages family.
func (a *API) SaveLogo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Logo models.Logo `json:"logo"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := a.store.SetLogo(body.Logo); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save logo settings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "logo": body.Logo})
}

// HeaderVariation returns {"variation": "background"} by default.
func (a *API) HeaderVariation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"variation": a.store.HeaderVariation()})
}

// SaveHeaderVariation stores the selected header variation.
func (a *API) SaveHeaderVariation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Variation string `json:"variation"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := a.store.SetHeaderVariation(body.Variation); err != nil {
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}
	writeSuccess(w)
}

// DarkMode reports whether dark mode is enabled.
func (a *API) DarkMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": a.store.DarkMode()})
}

// DebugSettings exposes the shape of the stored settings for dashboard
// troubleshooting.
func (a *API) DebugSettings(w http.ResponseWriter, r *http.Request) {
	settings := a.store.SettingsValue()

	keys := []string{}
	raw := map[string]any{}
	if data, err := jsonRoundTrip(settings); err == nil {
		raw = data
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"hasSettings":   len(raw) > 0,
		"hasFooter":     settings.Footer != nil,
		"footerEnabled": settings.Footer != nil && settings.Footer.Enabled,
		"settingsKeys":  keys,
		"fullSettings":  settings,
	})
}
