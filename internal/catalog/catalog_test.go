package catalog

import (
	"testing"

	"github.com/piwi3910/StudioFolio/internal/importer"
	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New([]model.Project{
		{ID: "a", Slug: "alpha", Name: "Alpha", Location: model.LocationVancouver, Type: model.TypePenthouses, Images: []string{"/1", "/2"}, Featured: true},
		{ID: "b", Slug: "beta", Name: "Beta", Location: model.LocationDelta, Type: model.TypePenthouses, Featured: true},
		{ID: "c", Slug: "gamma", Name: "Gamma", Location: model.LocationVancouver, Type: model.TypeSingleFamily, Images: []string{"/3"}},
	})
	require.NoError(t, err)
	return c
}

func TestDefault_Loads(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 33, c.Len())
	p, ok := c.BySlug("king-georges-way-830")
	require.True(t, ok)
	assert.Equal(t, model.LocationWestVancouver, p.Location)
	assert.Equal(t, model.TypeLuxuryEstates, p.Type)
	assert.Len(t, p.Images, 9)
	assert.Equal(t, "/projects/king_georges_way_830/king-georges-way-830-west-vancouver-1.avif", p.Images[0])

	featured := c.Featured()
	require.Len(t, featured, 3)
	assert.Equal(t, "king-georges-way-830", featured[0].Slug)
	assert.Equal(t, c.Len(), len(c.WithImages()))
}

func TestDefault_IDDiffersFromSlug(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	p, ok := c.ByID("quayside-dr-680")
	require.True(t, ok)
	assert.Equal(t, "quayside-drive-680", p.Slug)
}

func TestNew_RejectsDuplicateSlug(t *testing.T) {
	_, err := New([]model.Project{{Slug: "x"}, {Slug: "x"}})
	assert.Error(t, err)

	_, err = New([]model.Project{{Name: "No slug"}})
	assert.Error(t, err)
}

func TestFromImport_FailsOnRowErrors(t *testing.T) {
	_, err := FromImport(importer.ImportResult{Errors: []string{"Line 2: Unknown location 'Paris'"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Paris")
}

func TestLookups(t *testing.T) {
	c := testCatalog(t)

	_, ok := c.BySlug("missing")
	assert.False(t, ok)
	p, ok := c.ByID("c")
	require.True(t, ok)
	assert.Equal(t, "gamma", p.Slug)
}

func TestFeatured_RequiresImages(t *testing.T) {
	c := testCatalog(t)

	got := c.Featured()
	require.Len(t, got, 1)
	assert.Equal(t, "alpha", got[0].Slug)
}

func TestFilter(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name   string
		filter model.Filter
		want   []string
	}{
		{"all", model.Filter{}, []string{"alpha", "beta", "gamma"}},
		{"location", model.Filter{Location: model.LocationVancouver}, []string{"alpha", "gamma"}},
		{"type", model.Filter{Type: model.TypePenthouses}, []string{"alpha", "beta"}},
		{"both", model.Filter{Location: model.LocationVancouver, Type: model.TypeSingleFamily}, []string{"gamma"}},
		{"none", model.Filter{Location: model.LocationSurrey}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range c.Filter(tt.filter) {
				got = append(got, p.Slug)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextPrevious_Wrap(t *testing.T) {
	c := testCatalog(t)

	p, ok := c.Next("gamma")
	require.True(t, ok)
	assert.Equal(t, "alpha", p.Slug)

	p, _ = c.Previous("alpha")
	assert.Equal(t, "gamma", p.Slug)

	p, _ = c.Next("alpha")
	assert.Equal(t, "beta", p.Slug)

	_, ok = c.Next("missing")
	assert.False(t, ok)
}

func TestCounts(t *testing.T) {
	c := testCatalog(t)

	assert.Equal(t, []Count[model.Location]{
		{Value: model.LocationVancouver, N: 2},
		{Value: model.LocationDelta, N: 1},
	}, c.LocationCounts())
	assert.Equal(t, []Count[model.ProjectType]{
		{Value: model.TypeSingleFamily, N: 1},
		{Value: model.TypePenthouses, N: 2},
	}, c.TypeCounts())
	assert.Equal(t, 3, c.ImageCount())
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := testCatalog(t)
	all := c.All()
	all[0].Name = "Changed"

	p, _ := c.BySlug("alpha")
	assert.Equal(t, "Alpha", p.Name)
}
