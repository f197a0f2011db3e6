package usecase

import (
	"context"
	"testing"

	"github.com/aislefinder/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog serves canned search results keyed by search term
type stubCatalog struct {
	results     map[string][]domain.CatalogProduct
	err         error
	searchCalls []string
}

func (s *stubCatalog) SearchProducts(ctx context.Context, term, locationID string) ([]domain.CatalogProduct, error) {
	s.searchCalls = append(s.searchCalls, term)
	if s.err != nil {
		return nil, s.err
	}
	return s.results[term], nil
}

func (s *stubCatalog) FindStores(ctx context.Context, zipCode string) ([]domain.Store, error) {
	return nil, nil
}

func produceAisle(n int) []domain.AislePlacement {
	return []domain.AislePlacement{{Number: n}}
}

func TestResolve_AcceptsRelevantTopCandidate(t *testing.T) {
	catalog := &stubCatalog{
		results: map[string][]domain.CatalogProduct{
			"bananas": {
				{Description: "Bananas, Yellow", Categories: []string{"Produce"}, Aisles: produceAisle(4)},
			},
		},
	}
	resolver := NewProductResolver(catalog, ResolverConfig{LocationID: "01400943"})

	resolved, err := resolver.Resolve(context.Background(), []string{"2 lbs bananas"})

	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "2 lbs bananas", resolved[0].InputName)
	assert.Equal(t, "Bananas, Yellow", resolved[0].FoundName)
	assert.Equal(t, "Produce", resolved[0].Category)
	assert.Equal(t, 4, resolved[0].AisleNumber)

	// The catalog sees the normalized term, not the raw line
	assert.Equal(t, []string{"bananas"}, catalog.searchCalls)
}

func TestResolve_NoCandidatesYieldsSentinel(t *testing.T) {
	catalog := &stubCatalog{results: map[string][]domain.CatalogProduct{}}
	resolver := NewProductResolver(catalog, ResolverConfig{})

	resolved, err := resolver.Resolve(context.Background(), []string{"xyzxyz123"})

	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.True(t, resolved[0].NotFound())
	assert.Equal(t, domain.CategoryNotFound, resolved[0].Category)
	assert.Equal(t, domain.AisleUnknown, resolved[0].AisleNumber)
	assert.Equal(t, "xyzxyz123 (not found in store)", resolved[0].FoundName)
}

func TestResolve_ScansAlternatesWhenTopMisses(t *testing.T) {
	catalog := &stubCatalog{
		results: map[string][]domain.CatalogProduct{
			"whole milk": {
				{Description: "Charcoal Briquettes", Categories: []string{"Outdoor"}, Aisles: produceAisle(22)},
				{Description: "Motor Oil 5W-30", Categories: []string{"Automotive"}, Aisles: produceAisle(21)},
				{Description: "Kroger Whole Milk", Categories: []string{"Dairy"}, Aisles: produceAisle(1)},
			},
		},
	}
	resolver := NewProductResolver(catalog, ResolverConfig{})

	resolved, err := resolver.Resolve(context.Background(), []string{"whole milk"})

	require.NoError(t, err)
	assert.Equal(t, "Kroger Whole Milk", resolved[0].FoundName)
	assert.Equal(t, 1, resolved[0].AisleNumber)
}

func TestResolve_AlternateScanStopsAfterTwo(t *testing.T) {
	// The relevant candidate sits at index 3, beyond the scan depth
	catalog := &stubCatalog{
		results: map[string][]domain.CatalogProduct{
			"whole milk": {
				{Description: "Charcoal Briquettes"},
				{Description: "Motor Oil 5W-30"},
				{Description: "Lawn Fertilizer"},
				{Description: "Kroger Whole Milk", Categories: []string{"Dairy"}, Aisles: produceAisle(1)},
			},
		},
	}
	resolver := NewProductResolver(catalog, ResolverConfig{})

	resolved, err := resolver.Resolve(context.Background(), []string{"whole milk"})

	require.NoError(t, err)
	assert.True(t, resolved[0].NotFound())
}

func TestResolve_TransportFailureIsFatal(t *testing.T) {
	catalog := &stubCatalog{err: domain.ErrCatalogAPIFailure}
	resolver := NewProductResolver(catalog, ResolverConfig{})

	resolved, err := resolver.Resolve(context.Background(), []string{"milk", "eggs"})

	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, domain.ErrCatalogAPIFailure)
}

func TestResolve_AuthFailureIsFatal(t *testing.T) {
	catalog := &stubCatalog{err: domain.ErrAuthFailed}
	resolver := NewProductResolver(catalog, ResolverConfig{})

	resolved, err := resolver.Resolve(context.Background(), []string{"milk"})

	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestResolve_PreservesInputOrder(t *testing.T) {
	catalog := &stubCatalog{
		results: map[string][]domain.CatalogProduct{
			"bananas": {{Description: "Bananas", Categories: []string{"Produce"}, Aisles: produceAisle(4)}},
			"eggs":    {{Description: "Large Eggs", Categories: []string{"Dairy"}, Aisles: produceAisle(1)}},
		},
	}
	resolver := NewProductResolver(catalog, ResolverConfig{})

	resolved, err := resolver.Resolve(context.Background(), []string{"eggs", "missing thing", "bananas"})

	require.NoError(t, err)
	require.Len(t, resolved, 3)
	assert.Equal(t, "eggs", resolved[0].InputName)
	assert.Equal(t, "missing thing", resolved[1].InputName)
	assert.True(t, resolved[1].NotFound())
	assert.Equal(t, "bananas", resolved[2].InputName)
}

func TestResolve_CandidateWithoutAisleOrCategory(t *testing.T) {
	catalog := &stubCatalog{
		results: map[string][]domain.CatalogProduct{
			"tulips": {{Description: "Fresh Tulips Bouquet"}},
		},
	}
	resolver := NewProductResolver(catalog, ResolverConfig{})

	resolved, err := resolver.Resolve(context.Background(), []string{"tulips"})

	require.NoError(t, err)
	assert.Equal(t, domain.AisleUnknown, resolved[0].AisleNumber)
	assert.Equal(t, "Other", resolved[0].Category)
	assert.False(t, resolved[0].NotFound())
}

func TestResolveAndFormat_EndToEnd(t *testing.T) {
	catalog := &stubCatalog{
		results: map[string][]domain.CatalogProduct{
			"bananas":    {{Description: "Bananas, Yellow", Categories: []string{"Produce"}, Aisles: produceAisle(4)}},
			"whole milk": {{Description: "Kroger Whole Milk", Categories: []string{"Dairy"}, Aisles: produceAisle(1)}},
		},
	}
	resolver := NewProductResolver(catalog, ResolverConfig{})

	resolved, err := resolver.Resolve(context.Background(), []string{"2 lbs bananas", "whole milk", "xyzxyz123"})
	require.NoError(t, err)
	require.Len(t, resolved, 3)
	assert.True(t, resolved[2].NotFound())

	out := FormatRoute(resolved, ModeAisle)
	headings := sectionHeadings(out)
	assert.Equal(t, []string{"Aisle 1", "Aisle 4", "Not Found"}, headings)
	assert.Contains(t, out, "- xyzxyz123: xyzxyz123 (not found in store)")
}
