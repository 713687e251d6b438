// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// PageStatus represents the publishing state of a page.
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
)

// HomePageID is the fallback owner for sections whose page has been
// deleted and no other page exists.
const HomePageID = "home"

// Page is one site page: an ordered list of sections plus routing metadata.
// Section order is render order.
type Page struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	Title    string     `json:"title,omitempty"`
	Status   PageStatus `json:"status"`
	Sections []Section  `json:"sections"`
}

// IsPublished returns true if the page is in published status.
func (p *Page) IsPublished() bool {
	return p.Status == PageStatusPublished
}

// CleanSections returns a copy of the page with every section cleaned for
// sparse storage.
func (p Page) CleanSections() Page {
	cleaned := make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		cleaned[i] = s.Clean()
	}
	p.Sections = cleaned
	return p
}
