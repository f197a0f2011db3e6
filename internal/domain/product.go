package domain

// Sentinel values marking an item the resolver could not confidently place.
// They always travel together: any other category/aisle pair is a real match.
const (
	CategoryNotFound = "Not Found"
	AisleUnknown     = -1
)

// CatalogProduct is a candidate product returned by the Kroger catalog search.
// It is read-only and sourced fresh per query, never cached.
type CatalogProduct struct {
	ProductID   string           `json:"productId"`
	Description string           `json:"description"`
	Brand       string           `json:"brand,omitempty"`
	Categories  []string         `json:"categories"`
	Aisles      []AislePlacement `json:"aisleLocations"`
}

// AislePlacement is a product's declared physical location within a store.
type AislePlacement struct {
	Number      int    `json:"number"`
	Description string `json:"description,omitempty"`
}

// FirstAisle returns the product's first listed aisle number, or AisleUnknown
// when the catalog reports no placement for the store.
func (p CatalogProduct) FirstAisle() int {
	if len(p.Aisles) == 0 {
		return AisleUnknown
	}
	return p.Aisles[0].Number
}

// FirstCategory returns the product's first listed category label, or "Other"
// when the catalog record carries none. "Not Found" is never returned here so
// the sentinel pair stays unambiguous.
func (p CatalogProduct) FirstCategory() string {
	if len(p.Categories) == 0 {
		return "Other"
	}
	return p.Categories[0]
}

// ResolvedProduct is the resolver's output unit: one per input line,
// immutable once created, consumed by the route formatter.
type ResolvedProduct struct {
	InputName   string `json:"inputName"`
	FoundName   string `json:"foundName"`
	Category    string `json:"category"`
	AisleNumber int    `json:"aisleNumber"`
}

// NotFound reports whether this product carries the unresolved sentinel.
func (p ResolvedProduct) NotFound() bool {
	return p.AisleNumber == AisleUnknown && p.Category == CategoryNotFound
}

// Store is a nearby store record from the locations endpoint.
type Store struct {
	LocationID string `json:"locationId"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Zip        string `json:"zipCode,omitempty"`
}
