package domain

import "context"

// CatalogClient defines the interface for the Kroger catalog API.
type CatalogClient interface {
	SearchProducts(ctx context.Context, term, locationID string) ([]CatalogProduct, error)
	FindStores(ctx context.Context, zipCode string) ([]Store, error)
}

// TokenSource supplies a valid bearer token for catalog requests.
// Implementations own the cached-token slot; callers never see expiry.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
