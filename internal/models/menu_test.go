// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"testing"
)

func sampleMenu() Menu {
	return Menu{
		ID:   "m1",
		Name: "Main",
		Items: []MenuItem{
			{ID: "a", Label: "Home", URL: "/"},
			{ID: "b", Label: "About", URL: "/about"},
			{ID: "c", Label: "Team", URL: "/about/team", ParentID: "b"},
			{ID: "d", Label: "History", URL: "/about/history", ParentID: "b"},
			{ID: "e", Label: "Contact", URL: "/contact"},
		},
	}
}

// TestMenuTreeRoundTrip ensures the flat parent-pointer list survives a
// trip through the nested wire form.
func TestMenuTreeRoundTrip(t *testing.T) {
	m := sampleMenu()

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}

	// The wire form nests children under their parent instead of carrying
	// parentId pointers.
	var wire struct {
		Items []struct {
			ID       string `json:"id"`
			Children []struct {
				ID string `json:"id"`
			} `json:"children"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatal(err)
	}
	if len(wire.Items) != 3 {
		t.Fatalf("wire form has %d top-level items, want 3", len(wire.Items))
	}
	if len(wire.Items[1].Children) != 2 || wire.Items[1].Children[0].ID != "c" {
		t.Errorf("wire form children = %+v, want c and d under b", wire.Items[1].Children)
	}

	var back Menu
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Items) != len(m.Items) {
		t.Fatalf("round-trip has %d items, want %d", len(back.Items), len(m.Items))
	}
	// Pre-order flattening: parents must come before their children.
	seen := map[string]bool{"": true}
	for _, item := range back.Items {
		if !seen[item.ParentID] {
			t.Errorf("item %s appears before its parent %s", item.ID, item.ParentID)
		}
		seen[item.ID] = true
	}
	for i, item := range back.Items {
		if item.ParentID != m.Items[i].ParentID {
			t.Errorf("item %s parentId = %q, want %q", item.ID, item.ParentID, m.Items[i].ParentID)
		}
	}
}

func TestMenuVisibility(t *testing.T) {
	hidden := false
	m := sampleMenu()
	m.Items[4].Visible = &hidden

	top := m.TopLevel()
	if len(top) != 2 {
		t.Fatalf("TopLevel() = %d items, want 2 with contact hidden", len(top))
	}
	for _, item := range top {
		if item.ID == "e" {
			t.Error("hidden item returned by TopLevel")
		}
	}

	kids := m.Children("b")
	if len(kids) != 2 {
		t.Errorf("Children(b) = %d items, want 2", len(kids))
	}
}

// TestMenuRemoveByURL checks the validation pass: removing a page's URL
// removes the item and cascades to its descendants.
func TestMenuRemoveByURL(t *testing.T) {
	m := sampleMenu()
	m.RemoveByURL(map[string]bool{"/about": true})

	if len(m.Items) != 2 {
		t.Fatalf("after removal: %d items, want 2", len(m.Items))
	}
	for _, item := range m.Items {
		switch item.ID {
		case "b", "c", "d":
			t.Errorf("item %s should have been removed", item.ID)
		}
	}
}

func TestMenuRemoveByURLNoMatch(t *testing.T) {
	m := sampleMenu()
	m.RemoveByURL(map[string]bool{"/nope": true})
	if len(m.Items) != 5 {
		t.Errorf("after no-op removal: %d items, want 5", len(m.Items))
	}
}
