// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSectionClean(t *testing.T) {
	tests := []struct {
		name string
		in   Section
		want Section
	}{
		{
			name: "bgType none normalizes to absent",
			in:   Section{Heading: "A", BgType: BackgroundNone},
			want: Section{Heading: "A"},
		},
		{
			name: "legacy default bgType normalizes to absent",
			in:   Section{Heading: "A", BgType: "default"},
			want: Section{Heading: "A"},
		},
		{
			name: "no bgType drops every background field",
			in: Section{
				Heading:      "A",
				BgImage:      "https://cdn/a.jpg",
				BgColor:      "#FFF",
				BgThemeColor: "accent",
			},
			want: Section{Heading: "A"},
		},
		{
			name: "image bgType keeps image fields, drops colors",
			in: Section{
				BgType:       BackgroundImage,
				BgImage:      "https://cdn/a.jpg",
				BgColor:      "#FFF",
				BgThemeColor: "accent",
			},
			want: Section{BgType: BackgroundImage, BgImage: "https://cdn/a.jpg"},
		},
		{
			name: "custom color keeps its color only",
			in: Section{
				BgType:       BackgroundColor,
				BgColor:      "#FF0000",
				BgImage:      "https://cdn/a.jpg",
				BgThemeColor: "accent",
			},
			want: Section{BgType: BackgroundColor, BgColor: "#FF0000"},
		},
		{
			name: "align dropped without an image",
			in:   Section{Align: AlignRight},
			want: Section{},
		},
		{
			name: "default align dropped with an image",
			in:   Section{Img: "x.jpg", Align: AlignLeft},
			want: Section{Img: "x.jpg"},
		},
		{
			name: "right align kept with an image",
			in:   Section{Img: "x.jpg", Align: AlignRight},
			want: Section{Img: "x.jpg", Align: AlignRight},
		},
		{
			name: "textAlign dropped with an image",
			in:   Section{Img: "x.jpg", TextAlign: AlignCenter},
			want: Section{Img: "x.jpg"},
		},
		{
			name: "center textAlign kept without an image",
			in:   Section{TextAlign: AlignCenter},
			want: Section{TextAlign: AlignCenter},
		},
		{
			name: "default textAlign dropped without an image",
			in:   Section{TextAlign: AlignLeft},
			want: Section{},
		},
		{
			name: "default button target and padding dropped",
			in:   Section{ButtonTarget: "_self", PaddingY: PaddingComfortable},
			want: Section{},
		},
		{
			name: "non-default padding kept",
			in:   Section{PaddingY: PaddingSpacious},
			want: Section{PaddingY: PaddingSpacious},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clean()
			a, _ := json.Marshal(got)
			b, _ := json.Marshal(tt.want)
			if string(a) != string(b) {
				t.Errorf("Clean() = %s, want %s", a, b)
			}
		})
	}
}

// TestSectionSparseJSON checks that a cleaned default-valued section
// serializes to (nearly) nothing, per the sparse-storage convention.
func TestSectionSparseJSON(t *testing.T) {
	s := Section{
		Heading:      "Hello",
		Align:        AlignLeft,
		TextAlign:    AlignLeft,
		PaddingY:     PaddingComfortable,
		ButtonTarget: "_self",
		BgType:       BackgroundNone,
	}
	data, err := json.Marshal(s.Clean())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"heading":"Hello"}` {
		t.Errorf("cleaned section = %s, want only the heading", data)
	}
}

func TestSectionDefaults(t *testing.T) {
	var s Section

	if got := s.VideoOverlay(); got != DefaultVideoOverlay {
		t.Errorf("VideoOverlay() = %d, want %d", got, DefaultVideoOverlay)
	}
	if !s.VideoAutoplay() || !s.VideoLoop() || !s.VideoMuted() {
		t.Error("autoplay/loop/muted should default true")
	}
	if s.VideoControls() {
		t.Error("controls should default false")
	}
	if !s.VideoShowPlayButton() {
		t.Error("show play button should default true")
	}
	if !s.SubheadingVisible() || !s.DescriptionVisible() || !s.MapVisible() {
		t.Error("show flags should default true")
	}

	off := false
	s.ShowSubheading = &off
	if s.SubheadingVisible() {
		t.Error("explicit false should win")
	}

	zero := 0
	s.BgVideoOverlay = &zero
	if got := s.VideoOverlay(); got != 0 {
		t.Errorf("explicit zero overlay = %d, want 0", got)
	}
}

func TestSectionJSONFieldNames(t *testing.T) {
	s := Section{
		Heading:        "H",
		BgType:         BackgroundThemeColor,
		BgThemeColor:   "accent",
		FeaturesLayout: FeaturesGrid3,
		Features:       []Feature{{Icon: "🚀", Title: "Fast"}},
		FAQs:           []FAQ{{Question: "Q", Answer: "A"}},
	}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"bgType"`, `"bgThemeColor"`, `"featuresLayout"`, `"features"`, `"faqs"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("serialized section missing %s: %s", key, data)
		}
	}
}
