package kroger

import (
	"strconv"
	"strings"

	"github.com/aislefinder/backend/internal/domain"
)

// Wire types for the Kroger API. Aisle numbers arrive as strings and are
// parsed on the way into the domain model.

type searchResponse struct {
	Data []productRecord `json:"data"`
}

type productRecord struct {
	ProductID      string               `json:"productId"`
	Description    string               `json:"description"`
	Brand          string               `json:"brand"`
	Categories     []string             `json:"categories"`
	AisleLocations []aisleLocationRecord `json:"aisleLocations"`
}

type aisleLocationRecord struct {
	Number      string `json:"number"`
	Description string `json:"description"`
}

type locationsResponse struct {
	Data []locationRecord `json:"data"`
}

type locationRecord struct {
	LocationID string `json:"locationId"`
	Name       string `json:"name"`
	Address    struct {
		AddressLine1 string `json:"addressLine1"`
		City         string `json:"city"`
		State        string `json:"state"`
		ZipCode      string `json:"zipCode"`
	} `json:"address"`
}

// mapProducts converts catalog search records to domain products
func mapProducts(records []productRecord) []domain.CatalogProduct {
	products := make([]domain.CatalogProduct, 0, len(records))
	for _, r := range records {
		products = append(products, domain.CatalogProduct{
			ProductID:   r.ProductID,
			Description: r.Description,
			Brand:       r.Brand,
			Categories:  r.Categories,
			Aisles:      mapAisles(r.AisleLocations),
		})
	}
	return products
}

// mapAisles parses aisle placements, dropping any with an unparsable number
func mapAisles(records []aisleLocationRecord) []domain.AislePlacement {
	var aisles []domain.AislePlacement
	for _, r := range records {
		number, err := strconv.Atoi(strings.TrimSpace(r.Number))
		if err != nil {
			continue
		}
		aisles = append(aisles, domain.AislePlacement{
			Number:      number,
			Description: r.Description,
		})
	}
	return aisles
}

// mapStores converts location records to domain stores, skipping records
// missing their required fields
func mapStores(records []locationRecord) []domain.Store {
	var stores []domain.Store
	for _, r := range records {
		if r.LocationID == "" || r.Name == "" {
			continue
		}
		stores = append(stores, domain.Store{
			LocationID: r.LocationID,
			Name:       r.Name,
			Address:    formatAddress(r),
			Zip:        r.Address.ZipCode,
		})
	}
	return stores
}

func formatAddress(r locationRecord) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{r.Address.AddressLine1, r.Address.City, r.Address.State} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
