// Package catalog holds the searchable card catalog slice: the current
// filtered, sorted, paginated page of the remote catalog, and the
// debounced sync effect that keeps it consistent with those inputs.
package catalog

import "github.com/ramonehamilton/deckforge/internal/cards"

// DefaultPageSize is the catalog page size before configuration applies.
const DefaultPageSize = 10

// Pagination is the catalog's page position. PageIndex is zero-based
// internally; translation to the remote API's one-based convention happens
// only when the fetch is issued.
type Pagination struct {
	PageIndex  int
	PageSize   int
	TotalItems int
}

// Sort direction values.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
	SortNone = ""
)

// Sort is the catalog's sort order. Both fields must be set for the sort
// to reach the remote query.
type Sort struct {
	Column    string
	Direction string
}

// Filters narrows the catalog query. Nil or empty fields are omitted from
// the fetch; multi-valued filters are comma-joined at the boundary.
type Filters struct {
	Name     string
	Set      string
	Rarity   []string
	Color    []string
	Type     []string
	ManaCost *float64
}

// State is the current view of the remote catalog. Cards is replaced
// wholesale on every successful fetch, never merged.
type State struct {
	Cards      []cards.Card
	Pagination Pagination
	Sort       Sort
	Filters    Filters
	IsLoading  bool
	Err        string
}

// InitialState returns the default catalog view: first page, sorted by
// name ascending, no filters.
func InitialState() State {
	return State{
		Pagination: Pagination{PageSize: DefaultPageSize},
		Sort:       Sort{Column: "name", Direction: SortAsc},
	}
}
