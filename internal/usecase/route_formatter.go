package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aislefinder/backend/internal/domain"
)

// RouteMode selects how resolved products are grouped for presentation
type RouteMode string

const (
	ModeAisle    RouteMode = "aisle"
	ModeCategory RouteMode = "category"
)

// ParseRouteMode validates a mode string from an HTTP form or CLI flag
func ParseRouteMode(s string) (RouteMode, error) {
	switch RouteMode(s) {
	case ModeAisle, ModeCategory:
		return RouteMode(s), nil
	case "":
		return ModeAisle, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q", domain.ErrInvalidRequest, s)
	}
}

// routeSection is one heading in the formatted route. A section is keyed
// either by aisle number or by category label, never both.
type routeSection struct {
	aisle    int
	label    string
	numeric  bool
	products []domain.ResolvedProduct
}

func (s routeSection) heading() string {
	if s.numeric {
		return fmt.Sprintf("Aisle %d", s.aisle)
	}
	return s.label
}

// FormatRoute groups products into sections and renders them as plain text.
//
// Grouping: a product lands in an aisle-numbered section when its aisle is
// known and the mode is aisle; otherwise it lands in a section named after
// its category. Within a section, products keep resolution order.
//
// Section order is a deterministic total order, independent of map
// iteration: numeric aisle sections ascending, then category sections in
// lexicographic order, with "Not Found" always last.
//
// Each section renders as a heading followed by one line per product:
//
//	Aisle 3
//	- bananas: Bananas, Yellow
//
// with a blank line between sections. In category mode a product with a
// known aisle keeps it on the line, "(Aisle 3)", since the heading no
// longer carries it.
func FormatRoute(products []domain.ResolvedProduct, mode RouteMode) string {
	var sections []*routeSection
	index := make(map[string]*routeSection)

	for _, p := range products {
		key, section := sectionFor(p, mode)
		existing, ok := index[key]
		if !ok {
			existing = section
			index[key] = existing
			sections = append(sections, existing)
		}
		existing.products = append(existing.products, p)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sectionLess(*sections[i], *sections[j])
	})

	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(section.heading())
		b.WriteString("\n")
		for _, p := range section.products {
			fmt.Fprintf(&b, "- %s: %s", p.InputName, p.FoundName)
			// Category sections hide the aisle, so carry it on the line
			if mode == ModeCategory && p.AisleNumber > 0 {
				fmt.Fprintf(&b, " (Aisle %d)", p.AisleNumber)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// sectionFor computes the grouping key and a fresh section for a product.
// Aisle-less products group by category in both modes.
func sectionFor(p domain.ResolvedProduct, mode RouteMode) (string, *routeSection) {
	if mode == ModeAisle && p.AisleNumber > 0 {
		return fmt.Sprintf("aisle:%d", p.AisleNumber), &routeSection{aisle: p.AisleNumber, numeric: true}
	}
	return "category:" + p.Category, &routeSection{label: p.Category}
}

// sectionLess is the total order over sections: numeric aisles ascending,
// then labels lexicographically, "Not Found" last in every mode.
func sectionLess(a, b routeSection) bool {
	aNotFound := !a.numeric && a.label == domain.CategoryNotFound
	bNotFound := !b.numeric && b.label == domain.CategoryNotFound
	if aNotFound || bNotFound {
		return bNotFound && !aNotFound
	}

	if a.numeric != b.numeric {
		return a.numeric
	}
	if a.numeric {
		return a.aisle < b.aisle
	}
	return a.label < b.label
}
