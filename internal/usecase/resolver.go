package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/aislefinder/backend/internal/domain"
)

// alternateScanDepth caps how many candidates beyond the top result are
// checked before an item degrades to the "Not Found" sentinel. The scan stays
// deliberately shallow: deeper results are rarely better matches.
const alternateScanDepth = 2

// ResolverConfig holds configuration for the product resolver
type ResolverConfig struct {
	LocationID         string
	EnableDebugLogging bool
}

// ProductResolver turns raw grocery list lines into resolved products by
// normalizing each line, searching the catalog, and gating the results
// through the relevance check.
type ProductResolver struct {
	catalog    domain.CatalogClient
	normalizer *TermNormalizer
	locationID string
	debug      bool
}

// NewProductResolver creates a new product resolver with dependencies
func NewProductResolver(catalog domain.CatalogClient, config ResolverConfig) *ProductResolver {
	return &ProductResolver{
		catalog:    catalog,
		normalizer: NewTermNormalizer(config.EnableDebugLogging),
		locationID: config.LocationID,
		debug:      config.EnableDebugLogging,
	}
}

// Resolve produces exactly one ResolvedProduct per input line, in input
// order. A line with no relevant catalog match degrades to the "Not Found"
// sentinel and resolution continues. Authorization failures and exhausted
// retries abort the whole run: there is no partial result on a fatal error.
func (r *ProductResolver) Resolve(ctx context.Context, items []string) ([]domain.ResolvedProduct, error) {
	return r.ResolveAt(ctx, items, r.locationID)
}

// ResolveAt is Resolve with a per-run store override; an empty locationID
// falls back to the configured store.
func (r *ProductResolver) ResolveAt(ctx context.Context, items []string, locationID string) ([]domain.ResolvedProduct, error) {
	if locationID == "" {
		locationID = r.locationID
	}

	resolved := make([]domain.ResolvedProduct, 0, len(items))
	for _, item := range items {
		product, err := r.resolveItem(ctx, item, locationID)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, product)
	}

	return resolved, nil
}

func (r *ProductResolver) resolveItem(ctx context.Context, item, locationID string) (domain.ResolvedProduct, error) {
	term := r.normalizer.Normalize(item)

	candidates, err := r.catalog.SearchProducts(ctx, term, locationID)
	if err != nil {
		return domain.ResolvedProduct{}, fmt.Errorf("searching for %q: %w", term, err)
	}

	if len(candidates) == 0 {
		if r.debug {
			log.Printf("[RESOLVE] No candidates for %q (term %q)", item, term)
		}
		return notFoundProduct(item), nil
	}

	// Validate the top result against both the raw item and the cleaned term
	top := candidates[0]
	if IsRelevant(item, top) || IsRelevant(term, top) {
		return matchedProduct(item, top), nil
	}

	// Top result missed; scan a short list of alternates
	for i := 1; i < len(candidates) && i <= alternateScanDepth; i++ {
		alt := candidates[i]
		if IsRelevant(item, alt) || IsRelevant(term, alt) {
			if r.debug {
				log.Printf("[RESOLVE] Accepted alternate %d for %q: %q", i, item, alt.Description)
			}
			return matchedProduct(item, alt), nil
		}
	}

	if r.debug {
		log.Printf("[RESOLVE] No relevant match for %q among %d candidates", item, len(candidates))
	}
	return notFoundProduct(item), nil
}

// matchedProduct builds the resolved product for an accepted candidate
func matchedProduct(item string, candidate domain.CatalogProduct) domain.ResolvedProduct {
	return domain.ResolvedProduct{
		InputName:   item,
		FoundName:   candidate.Description,
		Category:    candidate.FirstCategory(),
		AisleNumber: candidate.FirstAisle(),
	}
}

// notFoundProduct builds the sentinel result for an unresolved item
func notFoundProduct(item string) domain.ResolvedProduct {
	return domain.ResolvedProduct{
		InputName:   item,
		FoundName:   item + " (not found in store)",
		Category:    domain.CategoryNotFound,
		AisleNumber: domain.AisleUnknown,
	}
}
