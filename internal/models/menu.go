// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "encoding/json"

// MenuItem is one navigation entry. In memory items form a flat list with
// parent pointers; on the wire they nest as a children tree. The flat form
// is canonical — tree building happens only at the serialization boundary.
type MenuItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	ParentID string `json:"parentId,omitempty"`
	Visible  *bool  `json:"visible,omitempty"` // default true
}

// IsVisible reports whether the item renders in navigation (default true).
func (m *MenuItem) IsVisible() bool {
	return m.Visible == nil || *m.Visible
}

// Menu is a named navigation menu.
type Menu struct {
	ID    string
	Name  string
	Items []MenuItem // flat, parent-pointer form
}

// menuItemNode is the nested wire form of a menu item.
type menuItemNode struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	URL      string         `json:"url"`
	Visible  *bool          `json:"visible,omitempty"`
	Children []menuItemNode `json:"children,omitempty"`
}

// menuJSON is the wire form of a menu.
type menuJSON struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []menuItemNode `json:"items"`
}

// MarshalJSON serializes the flat item list as a nested children tree.
func (m Menu) MarshalJSON() ([]byte, error) {
	return json.Marshal(menuJSON{
		ID:    m.ID,
		Name:  m.Name,
		Items: buildTree(m.Items, ""),
	})
}

// UnmarshalJSON accepts the nested wire form and flattens it back to the
// parent-pointer list. Items that arrive already flat (with parentId and no
// children) round-trip unchanged.
func (m *Menu) UnmarshalJSON(data []byte) error {
	var raw menuJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.ID = raw.ID
	m.Name = raw.Name
	m.Items = nil
	flattenTree(&m.Items, raw.Items, "")
	return nil
}

// TopLevel returns the visible root items in order.
func (m *Menu) TopLevel() []MenuItem {
	var out []MenuItem
	for _, item := range m.Items {
		if item.ParentID == "" && item.IsVisible() {
			out = append(out, item)
		}
	}
	return out
}

// Children returns the visible direct children of the given item.
func (m *Menu) Children(parentID string) []MenuItem {
	var out []MenuItem
	for _, item := range m.Items {
		if item.ParentID == parentID && item.IsVisible() {
			out = append(out, item)
		}
	}
	return out
}

// RemoveByURL deletes every item whose URL matches, along with its
// descendants. Used by the menu validation pass when pages are deleted.
func (m *Menu) RemoveByURL(urls map[string]bool) {
	removed := make(map[string]bool)
	var kept []MenuItem
	for _, item := range m.Items {
		if urls[item.URL] || removed[item.ParentID] {
			removed[item.ID] = true
			continue
		}
		kept = append(kept, item)
	}
	m.Items = kept
}

func buildTree(items []MenuItem, parentID string) []menuItemNode {
	var nodes []menuItemNode
	for _, item := range items {
		if item.ParentID != parentID {
			continue
		}
		nodes = append(nodes, menuItemNode{
			ID:       item.ID,
			Label:    item.Label,
			URL:      item.URL,
			Visible:  item.Visible,
			Children: buildTree(items, item.ID),
		})
	}
	return nodes
}

func flattenTree(out *[]MenuItem, nodes []menuItemNode, parentID string) {
	for _, n := range nodes {
		*out = append(*out, MenuItem{
			ID:       n.ID,
			Label:    n.Label,
			URL:      n.URL,
			ParentID: parentID,
			Visible:  n.Visible,
		})
		flattenTree(out, n.Children, n.ID)
	}
}
