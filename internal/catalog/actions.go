package catalog

import "github.com/ramonehamilton/deckforge/internal/api"

// LoadCards requests a catalog fetch with the current inputs.
type LoadCards struct{}

func (LoadCards) ActionName() string { return "catalog/loadCards" }

// LoadSuccess replaces the catalog page with a fetch response.
type LoadSuccess struct {
	Response api.CardListResponse
}

func (LoadSuccess) ActionName() string { return "catalog/loadSuccess" }

// LoadFailure reports a failed catalog fetch.
type LoadFailure struct {
	Err string
}

func (LoadFailure) ActionName() string { return "catalog/loadFailure" }

// UpdateFilters replaces the filter set. The page index resets to zero.
type UpdateFilters struct {
	Filters Filters
}

func (UpdateFilters) ActionName() string { return "catalog/updateFilters" }

// UpdatePage replaces the pagination state.
type UpdatePage struct {
	Pagination Pagination
}

func (UpdatePage) ActionName() string { return "catalog/updatePage" }

// UpdateSort replaces the sort order.
type UpdateSort struct {
	Sort Sort
}

func (UpdateSort) ActionName() string { return "catalog/updateSort" }

// ResetFilters restores the initial filter set and first page.
type ResetFilters struct{}

func (ResetFilters) ActionName() string { return "catalog/resetFilters" }
