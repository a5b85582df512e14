package decklist

// Load requests the saved-deck list from the remote API.
type Load struct{}

func (Load) ActionName() string { return "decklist/load" }

// LoadSuccess replaces the list with fully enriched summaries.
type LoadSuccess struct {
	Decks []Summary
}

func (LoadSuccess) ActionName() string { return "decklist/loadSuccess" }

// LoadFailure reports a failed list fetch.
type LoadFailure struct {
	Err string
}

func (LoadFailure) ActionName() string { return "decklist/loadFailure" }

// Delete requests deletion of a saved deck.
type Delete struct {
	DeckID int
}

func (Delete) ActionName() string { return "decklist/delete" }

// DeleteSuccess removes the matching summary locally, without a reload.
type DeleteSuccess struct {
	DeckID int
}

func (DeleteSuccess) ActionName() string { return "decklist/deleteSuccess" }

// DeleteFailure reports a failed delete; the list is unchanged.
type DeleteFailure struct {
	Err string
}

func (DeleteFailure) ActionName() string { return "decklist/deleteFailure" }

// SelectForEdit opens a saved deck in the deck editor. It loads the deck
// into the deck slice and navigates; this slice is not mutated.
type SelectForEdit struct {
	DeckID int
}

func (SelectForEdit) ActionName() string { return "decklist/selectForEdit" }
