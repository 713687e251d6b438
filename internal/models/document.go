// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the content document and every record stored in
// it: pages and their sections, menus, theme colors, typography, logo, and
// site settings. The document is the sole source of truth — handlers load
// it fully, mutate one slice, and write the whole thing back.
package models

// Document is the complete persisted site configuration.
type Document struct {
	Logo       Logo        `json:"logo"`
	Colors     ThemeColors `json:"colors"`
	Typography *Typography `json:"typography,omitempty"`
	Menus      []Menu      `json:"menus"`
	Settings   Settings    `json:"settings"`
	Pages      []Page      `json:"pages"`
}

// DefaultDocument returns the document used when the backing file is
// missing or unreadable. Readers degrade to this rather than erroring.
func DefaultDocument() *Document {
	return &Document{
		Logo:  DefaultLogo(),
		Menus: []Menu{},
		Pages: []Page{},
	}
}

// EffectiveColors returns the stored palette, or the defaults when the
// colors slice has never been saved.
func (d *Document) EffectiveColors() ThemeColors {
	if d.Colors.IsZero() {
		return DefaultThemeColors()
	}
	return d.Colors
}

// PageBySlug returns the page with the given slug, or nil. Slugs are
// stored with a leading slash ("/about"); a bare "about" matches too.
func (d *Document) PageBySlug(slug string) *Page {
	for i := range d.Pages {
		p := &d.Pages[i]
		if p.Slug == slug || p.Slug == "/"+slug {
			return p
		}
	}
	return nil
}

// MenuByID returns the menu with the given id, or nil.
func (d *Document) MenuByID(id string) *Menu {
	for i := range d.Menus {
		if d.Menus[i].ID == id {
			return &d.Menus[i]
		}
	}
	return nil
}

// FlattenSections returns every section from every page with its owning
// page id attached, preserving page order then section order.
func (d *Document) FlattenSections() []PageSection {
	out := []PageSection{}
	for _, p := range d.Pages {
		for _, s := range p.Sections {
			out = append(out, PageSection{Section: s, PageID: p.ID})
		}
	}
	return out
}
