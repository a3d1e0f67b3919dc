package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProjectType is the category a project is filed under.
type ProjectType string

const (
	TypeLuxuryEstates   ProjectType = "Luxury Estates"
	TypeSingleFamily    ProjectType = "Single-Family Homes"
	TypeTownhouses      ProjectType = "Townhouses & Duplexes"
	TypePenthouses      ProjectType = "Penthouses"
	TypeCondosApartment ProjectType = "Condos & Apartments"
)

// ProjectTypes lists every type in display order.
var ProjectTypes = []ProjectType{
	TypeLuxuryEstates,
	TypeSingleFamily,
	TypeTownhouses,
	TypePenthouses,
	TypeCondosApartment,
}

func (t ProjectType) String() string { return string(t) }

// Location is the municipality a project is in.
type Location string

const (
	LocationVancouver      Location = "Vancouver"
	LocationWestVancouver  Location = "West Vancouver"
	LocationNorthVancouver Location = "North Vancouver"
	LocationBurnaby        Location = "Burnaby"
	LocationRichmond       Location = "Richmond"
	LocationSurrey         Location = "Surrey"
	LocationNewWestminster Location = "New Westminster"
	LocationDelta          Location = "Delta"
)

// Locations lists every location in display order.
var Locations = []Location{
	LocationVancouver,
	LocationWestVancouver,
	LocationNorthVancouver,
	LocationBurnaby,
	LocationRichmond,
	LocationSurrey,
	LocationNewWestminster,
	LocationDelta,
}

func (l Location) String() string { return string(l) }

// ParseLocation matches s case-insensitively against the known locations.
func ParseLocation(s string) (Location, bool) {
	s = strings.TrimSpace(s)
	for _, l := range Locations {
		if strings.EqualFold(s, string(l)) {
			return l, true
		}
	}
	return "", false
}

// ParseProjectType matches s case-insensitively against the known types.
// "and" is accepted in place of "&".
func ParseProjectType(s string) (ProjectType, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " and ", " & ")
	for _, t := range ProjectTypes {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// Project is one portfolio entry.
type Project struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Address     string      `json:"address,omitempty"` // empty when undisclosed
	Location    Location    `json:"location"`
	Type        ProjectType `json:"project_type"`
	Images      []string    `json:"images"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	Featured    bool        `json:"featured"`
	Description string      `json:"description,omitempty"`
}

// HasImages reports whether the project has a gallery to show.
func (p Project) HasImages() bool {
	return len(p.Images) > 0
}

// Cover returns the thumbnail, falling back to the first image.
func (p Project) Cover() string {
	if p.Thumbnail != "" {
		return p.Thumbnail
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// ImagePaths generates the gallery references for a project stored as
// /projects/<folder>/<base>-1.<ext> .. -<count>.<ext>. ext defaults to avif.
func ImagePaths(folder, base string, count int, ext string) []string {
	if count <= 0 || folder == "" || base == "" {
		return nil
	}
	if ext == "" {
		ext = "avif"
	}
	paths := make([]string, count)
	for i := range paths {
		paths[i] = fmt.Sprintf("/projects/%s/%s-%d.%s", folder, base, i+1, ext)
	}
	return paths
}

// ImageFile resolves a gallery reference against the local image root.
// An empty root yields an empty path.
func ImageFile(root, ref string) string {
	if root == "" || ref == "" {
		return ""
	}
	return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(ref, "/")))
}

// ProjectURL is the public page address for a project slug.
func ProjectURL(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/projects/" + slug
}

// Slugify lower-cases s and replaces runs of non-alphanumerics with '-'.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Filter narrows the portfolio by location and type. A zero field means all.
type Filter struct {
	Location Location
	Type     ProjectType
}

// Active reports whether any field is set.
func (f Filter) Active() bool {
	return f.Location != "" || f.Type != ""
}

// Matches reports whether p passes the filter.
func (f Filter) Matches(p Project) bool {
	if f.Location != "" && p.Location != f.Location {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	return true
}
