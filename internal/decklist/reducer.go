package decklist

import "github.com/ramonehamilton/deckforge/internal/store"

// Reduce folds one action into the deck list state. Loads replace the
// list wholesale; a successful delete removes just the matching summary.
func Reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case Load:
		state.IsLoading = true
		state.Err = ""
		return state

	case LoadSuccess:
		state.Decks = a.Decks
		state.IsLoading = false
		state.Err = ""
		return state

	case LoadFailure:
		state.IsLoading = false
		state.Err = a.Err
		return state

	case Delete:
		state.IsLoading = true
		state.Err = ""
		return state

	case DeleteSuccess:
		decks := make([]Summary, 0, len(state.Decks))
		for _, deck := range state.Decks {
			if deck.ID != a.DeckID {
				decks = append(decks, deck)
			}
		}
		state.Decks = decks
		state.IsLoading = false
		state.Err = ""
		return state

	case DeleteFailure:
		state.IsLoading = false
		state.Err = a.Err
		return state
	}

	return state
}
