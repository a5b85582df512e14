// Package deck holds the deck-under-edit state slice: the entry-mutation
// state machine, the validation rules, the derived views, and the
// persistence effect that syncs the aggregate with the remote deck API.
package deck

import "github.com/ramonehamilton/deckforge/internal/cards"

// Entry is one (card, quantity) pairing inside a deck. Quantity is always
// a positive integer; a mutation driving it to zero removes the entry.
type Entry struct {
	Card     cards.Card
	Quantity int
}

// State is the deck under edit. ID 0 means the deck has not been saved
// yet. IsValid and Messages are derived from Entries by the validation
// rules and are recomputed on every entry mutation; no event sets them
// directly.
type State struct {
	ID          int
	Name        string
	Format      string
	Description *string
	Entries     []Entry
	IsValid     bool
	Messages    []string
	IsLoading   bool
	IsSaving    bool
	Err         string
}

// InitialState returns the blank "new deck" state.
func InitialState() State {
	v := Validate(nil)
	return State{
		Name:     "New Deck",
		Format:   "Standard",
		IsValid:  v.IsValid,
		Messages: v.Messages,
	}
}
