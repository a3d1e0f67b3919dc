// Package catalog holds the studio's project portfolio and the queries the
// pages run against it.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/piwi3910/StudioFolio/internal/importer"
	"github.com/piwi3910/StudioFolio/internal/model"
)

//go:embed projects.csv
var defaultCSV []byte

// Catalog is an ordered, read-only set of projects.
type Catalog struct {
	projects []model.Project
	bySlug   map[string]int
	byID     map[string]int
}

// New builds a catalog from projects in display order. Slugs must be unique.
func New(projects []model.Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]model.Project, len(projects)),
		bySlug:   make(map[string]int, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}
	copy(c.projects, projects)
	for i, p := range c.projects {
		if p.Slug == "" {
			return nil, fmt.Errorf("project %q has no slug", p.Name)
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate project slug %q", p.Slug)
		}
		c.bySlug[p.Slug] = i
		if p.ID != "" {
			c.byID[p.ID] = i
		}
	}
	return c, nil
}

// Default loads the built-in portfolio.
func Default() (*Catalog, error) {
	return FromImport(importer.ImportCSVData(defaultCSV))
}

// FromImport builds a catalog from an import. Any row error fails the whole
// catalog; warnings are ignored.
func FromImport(res importer.ImportResult) (*Catalog, error) {
	if len(res.Errors) > 0 {
		return nil, fmt.Errorf("import catalog: %s", strings.Join(res.Errors, "; "))
	}
	return New(res.Projects)
}

// All returns every project in display order.
func (c *Catalog) All() []model.Project {
	out := make([]model.Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Len is the number of projects.
func (c *Catalog) Len() int { return len(c.projects) }

// BySlug looks a project up by its URL slug.
func (c *Catalog) BySlug(slug string) (model.Project, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return model.Project{}, false
	}
	return c.projects[i], true
}

// ByID looks a project up by its ID.
func (c *Catalog) ByID(id string) (model.Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Project{}, false
	}
	return c.projects[i], true
}

// Featured returns the featured projects that have a gallery.
func (c *Catalog) Featured() []model.Project {
	return c.collect(func(p model.Project) bool { return p.Featured && p.HasImages() })
}

// WithImages returns the projects that have a gallery.
func (c *Catalog) WithImages() []model.Project {
	return c.collect(model.Project.HasImages)
}

// Filter returns the projects matching f, in display order.
func (c *Catalog) Filter(f model.Filter) []model.Project {
	return c.collect(f.Matches)
}

func (c *Catalog) collect(keep func(model.Project) bool) []model.Project {
	var out []model.Project
	for _, p := range c.projects {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Next returns the project after slug, wrapping to the first.
func (c *Catalog) Next(slug string) (model.Project, bool) {
	return c.step(slug, 1)
}

// Previous returns the project before slug, wrapping to the last.
func (c *Catalog) Previous(slug string) (model.Project, bool) {
	return c.step(slug, -1)
}

func (c *Catalog) step(slug string, d int) (model.Project, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return model.Project{}, false
	}
	n := len(c.projects)
	return c.projects[((i+d)%n+n)%n], true
}

// Count pairs a facet value with the number of projects carrying it.
type Count[T any] struct {
	Value T
	N     int
}

// LocationCounts counts projects per location, in model.Locations order.
// Locations with no projects are omitted.
func (c *Catalog) LocationCounts() []Count[model.Location] {
	var out []Count[model.Location]
	for _, l := range model.Locations {
		if n := len(c.Filter(model.Filter{Location: l})); n > 0 {
			out = append(out, Count[model.Location]{Value: l, N: n})
		}
	}
	return out
}

// TypeCounts counts projects per type, in model.ProjectTypes order.
// Types with no projects are omitted.
func (c *Catalog) TypeCounts() []Count[model.ProjectType] {
	var out []Count[model.ProjectType]
	for _, t := range model.ProjectTypes {
		if n := len(c.Filter(model.Filter{Type: t})); n > 0 {
			out = append(out, Count[model.ProjectType]{Value: t, N: n})
		}
	}
	return out
}

// ImageCount is the total number of gallery images across the portfolio.
func (c *Catalog) ImageCount() int {
	n := 0
	for _, p := range c.projects {
		n += len(p.Images)
	}
	return n
}
