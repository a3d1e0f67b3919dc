package model

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		in   string
		want Location
		ok   bool
	}{
		{"Vancouver", LocationVancouver, true},
		{"  west vancouver ", LocationWestVancouver, true},
		{"NEW WESTMINSTER", LocationNewWestminster, true},
		{"Toronto", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLocation(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLocation(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseProjectType(t *testing.T) {
	tests := []struct {
		in   string
		want ProjectType
		ok   bool
	}{
		{"Luxury Estates", TypeLuxuryEstates, true},
		{"townhouses and duplexes", TypeTownhouses, true},
		{"Condos & Apartments", TypeCondosApartment, true},
		{"Castles", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseProjectType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseProjectType(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestImagePaths(t *testing.T) {
	got := ImagePaths("point-grey", "pg", 3, "")
	want := []string{
		"/projects/point-grey/pg-1.avif",
		"/projects/point-grey/pg-2.avif",
		"/projects/point-grey/pg-3.avif",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d paths, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if ImagePaths("x", "y", 0, "") != nil {
		t.Error("zero count should produce no paths")
	}
	if p := ImagePaths("x", "y", 1, "jpg"); p[0] != "/projects/x/y-1.jpg" {
		t.Errorf("unexpected extension handling: %s", p[0])
	}
}

func TestImageFileAndURL(t *testing.T) {
	if got := ImageFile("/srv/site", "/projects/a/a-1.avif"); got != filepath.Join("/srv/site", "projects", "a", "a-1.avif") {
		t.Errorf("unexpected image file: %s", got)
	}
	if ImageFile("", "/projects/a/a-1.avif") != "" {
		t.Error("empty root should resolve to nothing")
	}
	if got := ProjectURL("https://studio.example/", "alpha"); got != "https://studio.example/projects/alpha" {
		t.Errorf("unexpected url: %s", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Point Grey Residence":     "point-grey-residence",
		"  The Shaughnessy  ":      "the-shaughnessy",
		"Kerrisdale -- Townhouse!": "kerrisdale-townhouse",
		"Unit 1204":                "unit-1204",
		"":                         "",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProjectCover(t *testing.T) {
	p := Project{Images: []string{"/a.avif", "/b.avif"}}
	if p.Cover() != "/a.avif" {
		t.Errorf("expected first image as cover, got %s", p.Cover())
	}
	p.Thumbnail = "/thumb.avif"
	if p.Cover() != "/thumb.avif" {
		t.Errorf("expected thumbnail as cover, got %s", p.Cover())
	}
	if (Project{}).HasImages() {
		t.Error("empty project should report no images")
	}
}

func TestFilterMatches(t *testing.T) {
	p := Project{Location: LocationBurnaby, Type: TypePenthouses}

	if !(Filter{}).Matches(p) {
		t.Error("empty filter should match everything")
	}
	if (Filter{}).Active() {
		t.Error("empty filter should be inactive")
	}
	if !(Filter{Location: LocationBurnaby}).Matches(p) {
		t.Error("location filter should match")
	}
	if (Filter{Location: LocationDelta}).Matches(p) {
		t.Error("wrong location should not match")
	}
	if (Filter{Location: LocationBurnaby, Type: TypeSingleFamily}).Matches(p) {
		t.Error("both fields must match")
	}
}

func TestInquiryValidate(t *testing.T) {
	ok := NewInquiry(" Jane Doe ", "jane@example.com", ScopeInterior, "Kitchen refresh")
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok.Name != "Jane Doe" {
		t.Errorf("expected trimmed name, got %q", ok.Name)
	}
	if ok.ID == "" || ok.CreatedAt.IsZero() {
		t.Error("expected ID and CreatedAt to be set")
	}

	if err := NewInquiry("", "jane@example.com", "", "").Validate(); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if err := NewInquiry("Jane", "  ", "", "").Validate(); !errors.Is(err, ErrEmailRequired) {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
	for _, bad := range []string{"jane", "jane@", "Jane <jane@example.com>", "jane@localhost"} {
		if err := NewInquiry("Jane", bad, "", "").Validate(); err == nil {
			t.Errorf("expected error for email %q", bad)
		}
	}
	if err := NewInquiry("Jane", "jane@example.com", Scope("Landscaping"), "").Validate(); err == nil {
		t.Error("expected error for unknown scope")
	}
}

func TestNewInquiryUniqueIDs(t *testing.T) {
	a := NewInquiry("A", "a@example.com", "", "")
	b := NewInquiry("B", "b@example.com", "", "")
	if a.ID == b.ID {
		t.Error("expected unique inquiry IDs")
	}
}
