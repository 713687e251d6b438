// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"log/slog"

	"pagecraft/internal/models"
)

// orphanedSections collects the sections of pages present in old but not
// in new. They are reattached instead of dropped when a page is deleted.
func orphanedSections(before, after []models.Page) []models.Section {
	surviving := make(map[string]bool, len(after))
	for _, p := range after {
		surviving[p.ID] = true
	}

	var orphans []models.Section
	for _, p := range before {
		if !surviving[p.ID] {
			orphans = append(orphans, p.Sections...)
		}
	}
	return orphans
}

// removedPageSlugs returns the slugs of pages present in old but not new.
func removedPageSlugs(before, after []models.Page) map[string]bool {
	surviving := make(map[string]bool, len(after))
	for _, p := range after {
		surviving[p.Slug] = true
	}

	removed := make(map[string]bool)
	for _, p := range before {
		if p.Slug != "" && !surviving[p.Slug] {
			removed[p.Slug] = true
		}
	}
	return removed
}

// reassignSections appends orphaned sections to the first remaining page.
// When no pages remain, a "home" page is synthesized to own them.
func reassignSections(doc *models.Document, orphans []models.Section) {
	if len(orphans) == 0 {
		return
	}

	if len(doc.Pages) == 0 {
		doc.Pages = append(doc.Pages, models.Page{
			ID:     models.HomePageID,
			Name:   "Home",
			Slug:   "/",
			Status: models.PageStatusPublished,
		})
	}

	slog.Info("reassigning orphaned sections",
		"count", len(orphans),
		"page", doc.Pages[0].ID,
	)
	doc.Pages[0].Sections = append(doc.Pages[0].Sections, orphans...)
}

// pruneMenus removes menu items (and their children) that link to deleted
// page slugs, across every menu.
func pruneMenus(doc *models.Document, removedSlugs map[string]bool) {
	if len(removedSlugs) == 0 {
		return
	}
	for i := range doc.Menus {
		doc.Menus[i].RemoveByURL(removedSlugs)
	}
}

// pageExists reports whether a page with the given id exists.
func pageExists(pages []models.Page, id string) bool {
	for _, p := range pages {
		if p.ID == id {
			return true
		}
	}
	return false
}

// firstPageID returns the id of the first page, or "home" when none exist.
func firstPageID(pages []models.Page) string {
	if len(pages) == 0 {
		return models.HomePageID
	}
	return pages[0].ID
}
