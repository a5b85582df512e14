// Package decklist holds the saved-deck browsing slice: lightweight deck
// summaries enriched with a representative card image, and the sync
// effect that loads, enriches and deletes them.
package decklist

// Summary is one saved deck as shown in the browsing view. It carries no
// entry list; RepresentativeImageURL is nil when the image fetch failed
// or the deck has no cards.
type Summary struct {
	ID                     int
	Name                   string
	Format                 string
	RepresentativeImageURL *string
}

// State is the browsable list of saved decks.
type State struct {
	Decks     []Summary
	IsLoading bool
	Err       string
}

// InitialState returns the empty list.
func InitialState() State {
	return State{}
}
