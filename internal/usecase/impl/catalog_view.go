package impl

import (
	"slices"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// DeriveView filters and sorts a product list for display. It is a pure
// function of its inputs: the input slice is never mutated and identical
// arguments always yield identical output.
//
// A product matches when its name contains the search term
// (case-insensitive) and either no category is selected or its category
// matches exactly. The sort is stable, so products that compare equal keep
// their input order. An unrecognized sort key leaves the filtered list in
// input order.
func DeriveView(products []entity.Product, searchTerm, category string, key usecase.SortKey) []entity.Product {
	needle := strings.ToLower(searchTerm)

	view := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if !strings.Contains(strings.ToLower(product.Name), needle) {
			continue
		}
		if category != "" && product.Category != category {
			continue
		}
		view = append(view, product)
	}

	switch key {
	case usecase.SortPriceAsc:
		slices.SortStableFunc(view, func(a, b entity.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case usecase.SortPriceDesc:
		slices.SortStableFunc(view, func(a, b entity.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case usecase.SortName:
		slices.SortStableFunc(view, func(a, b entity.Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	}

	return view
}
