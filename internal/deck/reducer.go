package deck

import "github.com/ramonehamilton/deckforge/internal/store"

// Reduce folds one action into the deck state. Entry mutations never edit
// the previous slice in place: the entry list is copied, mutated, then
// revalidated before the new state is returned, so validity can never go
// stale relative to the entries.
func Reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case Load:
		state.IsLoading = true
		state.Err = ""
		return state

	case LoadSuccess:
		entries := make([]Entry, 0, len(a.Details.Cards))
		for _, payload := range a.Details.Cards {
			entries = append(entries, Entry{Card: payload.Card, Quantity: payload.Quantity})
		}
		state.ID = a.Details.ID
		state.Name = a.Details.Name
		state.Format = a.Details.Format
		state.Description = a.Details.Description
		state.IsLoading = false
		return withEntries(state, entries)

	case LoadFailure:
		state.IsLoading = false
		state.Err = a.Err
		return state

	case CreateNew:
		return InitialState()

	case UpdateName:
		state.Name = a.Name
		return state

	case UpdateDescription:
		state.Description = a.Description
		return state

	case UpdateFormat:
		state.Format = a.Format
		return state

	case AddCard:
		idx := entryIndex(state.Entries, a.Card.APIID)
		entries := copyEntries(state.Entries)
		if idx >= 0 {
			entries[idx].Quantity++
		} else {
			entries = append(entries, Entry{Card: a.Card, Quantity: 1})
		}
		return withEntries(state, entries)

	case RemoveCard:
		return withEntries(state, withoutEntry(state.Entries, a.Card.APIID))

	case IncrementQuantity:
		idx := entryIndex(state.Entries, a.Card.APIID)
		if idx < 0 {
			return state
		}
		entries := copyEntries(state.Entries)
		entries[idx].Quantity++
		return withEntries(state, entries)

	case DecrementQuantity:
		idx := entryIndex(state.Entries, a.Card.APIID)
		if idx < 0 {
			return state
		}
		if state.Entries[idx].Quantity <= 1 {
			return withEntries(state, withoutEntry(state.Entries, a.Card.APIID))
		}
		entries := copyEntries(state.Entries)
		entries[idx].Quantity--
		return withEntries(state, entries)

	case SetQuantity:
		if a.Quantity <= 0 {
			return withEntries(state, withoutEntry(state.Entries, a.Card.APIID))
		}
		idx := entryIndex(state.Entries, a.Card.APIID)
		entries := copyEntries(state.Entries)
		if idx >= 0 {
			entries[idx].Quantity = a.Quantity
		} else {
			entries = append(entries, Entry{Card: a.Card, Quantity: a.Quantity})
		}
		return withEntries(state, entries)

	case Revalidate:
		return withEntries(state, state.Entries)

	case Save:
		state.IsSaving = true
		state.Err = ""
		return state

	case SaveSuccess:
		state.ID = a.ID
		state.IsSaving = false
		return state

	case SaveFailure:
		state.IsSaving = false
		state.Err = a.Err
		return state
	}

	return state
}

// withEntries replaces the entry list and recomputes validity.
func withEntries(state State, entries []Entry) State {
	v := Validate(entries)
	state.Entries = entries
	state.IsValid = v.IsValid
	state.Messages = v.Messages
	return state
}

// entryIndex finds the entry for an API ID, or -1.
func entryIndex(entries []Entry, apiID string) int {
	for i, entry := range entries {
		if entry.Card.APIID == apiID {
			return i
		}
	}
	return -1
}

func copyEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// withoutEntry returns a copy of entries with the matching entry dropped.
func withoutEntry(entries []Entry, apiID string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Card.APIID != apiID {
			out = append(out, entry)
		}
	}
	return out
}
