// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"os"
	"path/filepath"
	"testing"

	"pagecraft/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "site.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenMissingFile(t *testing.T) {
	s := testStore(t)

	doc := s.Document()
	if doc == nil {
		t.Fatal("Document() = nil")
	}
	if len(doc.Pages) != 0 || len(doc.Menus) != 0 {
		t.Errorf("fresh store not empty: %d pages, %d menus", len(doc.Pages), len(doc.Menus))
	}
	if doc.Typography != nil {
		t.Error("fresh store should have no typography")
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open on corrupt file: %v", err)
	}
	defer s.Close()

	if doc := s.Document(); len(doc.Pages) != 0 {
		t.Errorf("corrupt store should degrade to defaults, got %d pages", len(doc.Pages))
	}
}

func TestUpdatePersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	err = s.Update(func(doc *models.Document) {
		doc.Pages = []models.Page{{ID: "p1", Name: "Home", Slug: "/"}}
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	s.Close()

	// A second store over the same file sees the write.
	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	if pages := s2.Pages(); len(pages) != 1 || pages[0].ID != "p1" {
		t.Errorf("reopened store pages = %+v", pages)
	}
}

// TestSiblingSlicesPreserved is the core single-document guarantee:
// replacing one slice leaves every other slice untouched.
func TestSiblingSlicesPreserved(t *testing.T) {
	s := testStore(t)

	colors := models.DefaultThemeColors()
	if err := s.SetColors(colors); err != nil {
		t.Fatal(err)
	}
	if err := s.SetLogo(models.Logo{URL: "/logo.png", Width: "200", Height: "auto"}); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplaceMenus([]models.Menu{{ID: "m1", Name: "Main"}}); err != nil {
		t.Fatal(err)
	}

	// Now replace pages and verify the rest survived.
	if err := s.ReplacePages([]models.Page{{ID: "p1", Name: "Home", Slug: "/"}}); err != nil {
		t.Fatal(err)
	}

	if got := s.Colors(); got != colors {
		t.Errorf("colors clobbered by pages write: %+v", got)
	}
	if got := s.LogoValue(); got.URL != "/logo.png" {
		t.Errorf("logo clobbered by pages write: %+v", got)
	}
	if menus := s.Menus(); len(menus) != 1 || menus[0].ID != "m1" {
		t.Errorf("menus clobbered by pages write: %+v", menus)
	}
}

// TestSetColorsIdempotent verifies saving the same palette twice produces
// an identical stored document.
func TestSetColorsIdempotent(t *testing.T) {
	s := testStore(t)

	colors := models.DefaultThemeColors()
	if err := s.SetColors(colors); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}

	if err := s.SetColors(colors); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("saving identical colors changed the stored document")
	}
}

func TestReplacePagesFillsIDs(t *testing.T) {
	s := testStore(t)

	if err := s.ReplacePages([]models.Page{{Name: "New", Slug: "/new"}, {Name: "Our Team"}}); err != nil {
		t.Fatal(err)
	}
	pages := s.Pages()
	if len(pages) != 2 || pages[0].ID == "" || pages[1].ID == "" {
		t.Errorf("page ids not generated: %+v", pages)
	}
	if pages[1].Slug != "/our-team" {
		t.Errorf("slug not derived from name: %q", pages[1].Slug)
	}
}

// TestReplacePagesCleansSections checks the sparse-storage step runs on
// the write path: default values are stripped before persisting.
func TestReplacePagesCleansSections(t *testing.T) {
	s := testStore(t)

	err := s.ReplacePages([]models.Page{{
		ID:   "p1",
		Slug: "/",
		Sections: []models.Section{{
			Heading:      "Hello",
			TextAlign:    models.AlignLeft,
			PaddingY:     models.PaddingComfortable,
			ButtonTarget: "_self",
		}},
	}})
	if err != nil {
		t.Fatal(err)
	}

	sec := s.Pages()[0].Sections[0]
	if sec.TextAlign != "" || sec.PaddingY != "" || sec.ButtonTarget != "" {
		t.Errorf("defaults not stripped on save: %+v", sec)
	}
	if sec.Heading != "Hello" {
		t.Errorf("non-default field lost: %+v", sec)
	}
}

// TestOrphanSectionsReassigned covers the page-delete sync: sections of a
// removed page move to the first remaining page instead of being dropped.
func TestOrphanSectionsReassigned(t *testing.T) {
	s := testStore(t)

	pages := []models.Page{
		{ID: "a", Name: "Home", Slug: "/", Sections: []models.Section{{Heading: "Stay"}}},
		{ID: "b", Name: "About", Slug: "/about", Sections: []models.Section{{Heading: "Orphan"}}},
	}
	if err := s.ReplacePages(pages); err != nil {
		t.Fatal(err)
	}

	// Delete page b.
	if err := s.ReplacePages(pages[:1]); err != nil {
		t.Fatal(err)
	}

	got := s.Pages()
	if len(got) != 1 {
		t.Fatalf("pages = %d, want 1", len(got))
	}
	if len(got[0].Sections) != 2 {
		t.Fatalf("first page has %d sections, want orphan appended", len(got[0].Sections))
	}
	if got[0].Sections[1].Heading != "Orphan" {
		t.Errorf("orphan section = %+v", got[0].Sections[1])
	}
}

// TestOrphanSectionsSynthesizeHome: deleting every page resurrects a home
// page to hold the orphans rather than losing content.
func TestOrphanSectionsSynthesizeHome(t *testing.T) {
	s := testStore(t)

	if err := s.ReplacePages([]models.Page{
		{ID: "a", Name: "Only", Slug: "/only", Sections: []models.Section{{Heading: "Orphan"}}},
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplacePages(nil); err != nil {
		t.Fatal(err)
	}

	got := s.Pages()
	if len(got) != 1 {
		t.Fatalf("pages = %d, want synthesized home", len(got))
	}
	if got[0].ID != models.HomePageID {
		t.Errorf("synthesized page id = %q, want %q", got[0].ID, models.HomePageID)
	}
	if len(got[0].Sections) != 1 || got[0].Sections[0].Heading != "Orphan" {
		t.Errorf("orphans not carried over: %+v", got[0].Sections)
	}
}

// TestMenuPruneOnPageDelete: menu items pointing at a deleted page's slug
// disappear from every menu.
func TestMenuPruneOnPageDelete(t *testing.T) {
	s := testStore(t)

	if err := s.ReplacePages([]models.Page{
		{ID: "a", Name: "Home", Slug: "/"},
		{ID: "b", Name: "About", Slug: "/about"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.ReplaceMenus([]models.Menu{{
		ID:   "m1",
		Name: "Main",
		Items: []models.MenuItem{
			{ID: "i1", Label: "Home", URL: "/"},
			{ID: "i2", Label: "About", URL: "/about"},
		},
	}}); err != nil {
		t.Fatal(err)
	}

	if err := s.ReplacePages([]models.Page{{ID: "a", Name: "Home", Slug: "/"}}); err != nil {
		t.Fatal(err)
	}

	menus := s.Menus()
	if len(menus[0].Items) != 1 || menus[0].Items[0].URL != "/" {
		t.Errorf("stale menu item not pruned: %+v", menus[0].Items)
	}
}

// TestFlatSectionsRoundTrip exercises the legacy flattened view: sections
// regroup under their page and unknown page ids fall back to the first
// page.
func TestFlatSectionsRoundTrip(t *testing.T) {
	s := testStore(t)

	if err := s.ReplacePages([]models.Page{
		{ID: "a", Name: "Home", Slug: "/"},
		{ID: "b", Name: "About", Slug: "/about"},
	}); err != nil {
		t.Fatal(err)
	}

	err := s.ReplaceFlatSections([]models.PageSection{
		{Section: models.Section{Heading: "One"}, PageID: "a"},
		{Section: models.Section{Heading: "Two"}, PageID: "b"},
		{Section: models.Section{Heading: "Lost"}, PageID: "ghost"},
	})
	if err != nil {
		t.Fatal(err)
	}

	flat := s.FlatSections()
	if len(flat) != 3 {
		t.Fatalf("FlatSections() = %d, want 3", len(flat))
	}

	byPage := map[string]int{}
	for _, ps := range flat {
		byPage[ps.PageID]++
	}
	// The ghost section lands on the first page.
	if byPage["a"] != 2 || byPage["b"] != 1 {
		t.Errorf("sections per page = %v, want a:2 b:1", byPage)
	}
}

// TestMergeSettingsShallow verifies a partial settings write keeps
// sibling fields, including the nested footer block.
func TestMergeSettingsShallow(t *testing.T) {
	s := testStore(t)

	err := s.MergeSettings(map[string]any{
		"siteTitle": "My Site",
		"footer":    map[string]any{"companyName": "ACME", "layout": "layout3"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.MergeSettings(map[string]any{"tagline": "Hello"}); err != nil {
		t.Fatal(err)
	}

	got := s.SettingsValue()
	if got.SiteTitle != "My Site" || got.Tagline != "Hello" {
		t.Errorf("settings = %+v, want both fields present", got)
	}
	if got.Footer == nil || got.Footer.CompanyName != "ACME" {
		t.Errorf("footer dropped by sibling write: %+v", got.Footer)
	}
}

func TestTypographyAbsence(t *testing.T) {
	s := testStore(t)

	if tp := s.TypographyValue(); tp != nil {
		t.Errorf("fresh typography = %+v, want nil", tp)
	}

	tp := models.DefaultTypography()
	if err := s.SetTypography(&tp); err != nil {
		t.Fatal(err)
	}
	if got := s.TypographyValue(); got == nil || got.Heading.Family != tp.Heading.Family {
		t.Errorf("typography = %+v", got)
	}

	// The delete action clears it back to absent.
	if err := s.SetTypography(nil); err != nil {
		t.Fatal(err)
	}
	if got := s.TypographyValue(); got != nil {
		t.Errorf("typography after delete = %+v, want nil", got)
	}
}

func TestDarkModeAndHeaderVariation(t *testing.T) {
	s := testStore(t)

	if s.DarkMode() {
		t.Error("dark mode should default off")
	}
	if err := s.MergeSettings(map[string]any{"enableDarkMode": true}); err != nil {
		t.Fatal(err)
	}
	if !s.DarkMode() {
		t.Error("dark mode not persisted")
	}

	if got := s.HeaderVariation(); got != models.HeaderBackground {
		t.Errorf("default header variation = %q", got)
	}
	if err := s.SetHeaderVariation(models.HeaderCenter); err != nil {
		t.Fatal(err)
	}
	if got := s.HeaderVariation(); got != models.HeaderCenter {
		t.Errorf("header variation = %q, want center", got)
	}
}
