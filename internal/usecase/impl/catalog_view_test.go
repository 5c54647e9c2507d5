package impl

import (
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewFixture() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Zener diode", Price: decimal.NewFromInt(5), Category: "diodes"},
		{ID: "p2", Name: "Power resistor", Price: decimal.NewFromInt(12), Category: "resistors"},
		{ID: "p3", Name: "Signal diode", Price: decimal.NewFromInt(3), Category: "diodes"},
		{ID: "p4", Name: "LED diode", Price: decimal.NewFromInt(5), Category: "diodes"},
	}
}

func ids(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestDeriveView_FilterBySearchTerm(t *testing.T) {
	view := DeriveView(viewFixture(), "DIODE", "", "")

	assert.Equal(t, []string{"p1", "p3", "p4"}, ids(view), "search is case-insensitive substring match on name")
}

func TestDeriveView_FilterByCategory(t *testing.T) {
	view := DeriveView(viewFixture(), "", "resistors", "")

	assert.Equal(t, []string{"p2"}, ids(view))

	view = DeriveView(viewFixture(), "", "", "")
	assert.Len(t, view, 4, "empty category matches everything")
}

func TestDeriveView_CombinedFilters(t *testing.T) {
	view := DeriveView(viewFixture(), "signal", "diodes", "")

	assert.Equal(t, []string{"p3"}, ids(view))

	view = DeriveView(viewFixture(), "signal", "resistors", "")
	assert.Empty(t, view, "both filters must match")
}

func TestDeriveView_SortPrice(t *testing.T) {
	view := DeriveView(viewFixture(), "", "", usecase.SortPriceAsc)
	assert.Equal(t, []string{"p3", "p1", "p4", "p2"}, ids(view), "equal prices keep input order")

	view = DeriveView(viewFixture(), "", "", usecase.SortPriceDesc)
	assert.Equal(t, []string{"p2", "p1", "p4", "p3"}, ids(view))
}

func TestDeriveView_SortNameCaseInsensitive(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Name: "zeta"},
		{ID: "p2", Name: "Alpha"},
		{ID: "p3", Name: "beta"},
	}

	view := DeriveView(products, "", "", usecase.SortName)

	assert.Equal(t, []string{"p2", "p3", "p1"}, ids(view))
}

func TestDeriveView_UnknownSortKeepsInputOrder(t *testing.T) {
	view := DeriveView(viewFixture(), "", "", usecase.SortKey("bogus"))

	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(view))
}

func TestDeriveView_DoesNotMutateInput(t *testing.T) {
	products := viewFixture()

	first := DeriveView(products, "diode", "", usecase.SortPriceDesc)
	second := DeriveView(products, "diode", "", usecase.SortPriceDesc)

	require.Equal(t, ids(first), ids(second), "identical inputs yield identical output")
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(products), "input order is untouched")
}
