// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"

	"github.com/google/uuid"

	"pagecraft/internal/models"
	"pagecraft/internal/slug"
)

// Pages returns the stored pages, never nil.
func (s *Store) Pages() []models.Page {
	pages := s.Document().Pages
	if pages == nil {
		return []models.Page{}
	}
	return pages
}

// ReplacePages swaps in a new pages array. Sections are cleaned for sparse
// storage, missing page ids and slugs are filled in, sections belonging to
// pages that disappeared are reassigned to the first surviving page, and
// menu items pointing at deleted slugs are pruned.
func (s *Store) ReplacePages(pages []models.Page) error {
	return s.Update(func(doc *models.Document) {
		for i := range pages {
			if pages[i].ID == "" {
				pages[i].ID = uuid.NewString()
			}
			if pages[i].Slug == "" {
				pages[i].Slug = "/" + slug.Generate(pages[i].Name)
			}
			pages[i] = pages[i].CleanSections()
		}

		orphans := orphanedSections(doc.Pages, pages)
		removedSlugs := removedPageSlugs(doc.Pages, pages)

		doc.Pages = pages
		reassignSections(doc, orphans)
		pruneMenus(doc, removedSlugs)
	})
}

// FlatSections returns every section with its owning page id (the legacy
// flattened view).
func (s *Store) FlatSections() []models.PageSection {
	return s.Document().FlattenSections()
}

// ReplaceFlatSections regroups a flattened section list by page id and
// writes each group back to its page. Sections with a missing or unknown
// page id go to the first page, or a synthesized "home" page when no pages
// exist. Pages absent from the input keep their sections.
func (s *Store) ReplaceFlatSections(sections []models.PageSection) error {
	return s.Update(func(doc *models.Document) {
		byPage := make(map[string][]models.Section)
		for _, sec := range sections {
			pageID := sec.PageID
			if pageID == "" || !pageExists(doc.Pages, pageID) {
				pageID = firstPageID(doc.Pages)
			}
			byPage[pageID] = append(byPage[pageID], sec.Section.Clean())
		}

		if len(doc.Pages) == 0 && len(byPage) > 0 {
			doc.Pages = append(doc.Pages, models.Page{
				ID:     models.HomePageID,
				Name:   "Home",
				Slug:   "/",
				Status: models.PageStatusPublished,
			})
		}

		for i := range doc.Pages {
			if group, ok := byPage[doc.Pages[i].ID]; ok {
				doc.Pages[i].Sections = group
			}
		}
	})
}

// Menus returns the stored menus, never nil.
func (s *Store) Menus() []models.Menu {
	menus := s.Document().Menus
	if menus == nil {
		return []models.Menu{}
	}
	return menus
}

// ReplaceMenus swaps in a new menus array, filling in missing ids.
func (s *Store) ReplaceMenus(menus []models.Menu) error {
	return s.Update(func(doc *models.Document) {
		for i := range menus {
			if menus[i].ID == "" {
				menus[i].ID = uuid.NewString()
			}
			for j := range menus[i].Items {
				if menus[i].Items[j].ID == "" {
					menus[i].Items[j].ID = uuid.NewString()
				}
			}
		}
		doc.Menus = menus
	})
}

// Colors returns the stored palette with defaults applied.
func (s *Store) Colors() models.ThemeColors {
	return s.Document().EffectiveColors()
}

// SetColors replaces the theme palette.
func (s *Store) SetColors(colors models.ThemeColors) error {
	return s.Update(func(doc *models.Document) {
		doc.Colors = colors
	})
}

// TypographyValue returns the stored typography, or nil when none is set —
// absence means the renderer uses the stylesheet defaults.
func (s *Store) TypographyValue() *models.Typography {
	return s.Document().Typography
}

// SetTypography replaces the typography. Passing nil deletes it.
func (s *Store) SetTypography(t *models.Typography) error {
	return s.Update(func(doc *models.Document) {
		doc.Typography = t
	})
}

// SettingsValue returns the stored settings.
func (s *Store) SettingsValue() models.Settings {
	return s.Document().Settings
}

// MergeSettings shallow-merges a partial settings payload into the stored
// record, preserving fields (like the footer block) that the payload does
// not mention. The merge happens in map form so only keys present in the
// patch overwrite.
func (s *Store) MergeSettings(patch map[string]any) error {
	return s.Update(func(doc *models.Document) {
		current, err := json.Marshal(doc.Settings)
		if err != nil {
			return
		}
		merged := make(map[string]any)
		if err := json.Unmarshal(current, &merged); err != nil {
			return
		}
		for k, v := range patch {
			merged[k] = v
		}
		data, err := json.Marshal(merged)
		if err != nil {
			return
		}
		var settings models.Settings
		if err := json.Unmarshal(data, &settings); err != nil {
			return
		}
		doc.Settings = settings
	})
}

// LogoValue returns the stored logo with defaults applied.
func (s *Store) LogoValue() models.Logo {
	logo := s.Document().Logo
	if logo == (models.Logo{}) {
		return models.DefaultLogo()
	}
	return logo
}

// SetLogo replaces the logo record.
func (s *Store) SetLogo(logo models.Logo) error {
	return s.Update(func(doc *models.Document) {
		doc.Logo = logo
	})
}

// HeaderVariation returns the selected header variation, defaulting to
// "background".
func (s *Store) HeaderVariation() string {
	settings := s.Document().Settings
	return settings.EffectiveHeaderVariation()
}

// SetHeaderVariation stores the header variation.
func (s *Store) SetHeaderVariation(variation string) error {
	return s.Update(func(doc *models.Document) {
		doc.Settings.HeaderVariation = variation
	})
}

// DarkMode reports whether dark mode is enabled in settings.
func (s *Store) DarkMode() bool {
	return s.Document().Settings.EnableDarkMode
}
