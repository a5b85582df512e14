package catalog

import "github.com/ramonehamilton/deckforge/internal/store"

// Reduce folds one action into the catalog state. A successful fetch
// replaces the visible page wholesale and converts the response's 1-based
// page number back to the internal zero-based index.
func Reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case LoadCards:
		state.IsLoading = true
		state.Err = ""
		return state

	case LoadSuccess:
		state.Cards = a.Response.Cards
		if a.Response.Pagination != nil {
			state.Pagination = Pagination{
				PageIndex:  a.Response.Pagination.Page - 1,
				PageSize:   a.Response.Pagination.PageSize,
				TotalItems: a.Response.Pagination.TotalRecords,
			}
		}
		state.IsLoading = false
		return state

	case LoadFailure:
		state.IsLoading = false
		state.Err = a.Err
		return state

	case UpdateFilters:
		state.Filters = a.Filters
		// Any filter change restarts browsing from the first page.
		state.Pagination.PageIndex = 0
		return state

	case UpdatePage:
		state.Pagination = a.Pagination
		return state

	case UpdateSort:
		state.Sort = a.Sort
		return state

	case ResetFilters:
		state.Filters = Filters{}
		state.Pagination.PageIndex = 0
		return state
	}

	return state
}
