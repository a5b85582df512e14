package deck

import (
	"github.com/ramonehamilton/deckforge/internal/api"
	"github.com/ramonehamilton/deckforge/internal/cards"
)

// Load requests hydration of the deck slice from the remote API.
type Load struct {
	DeckID int
}

func (Load) ActionName() string { return "deck/load" }

// LoadSuccess carries the remote deck representation.
type LoadSuccess struct {
	Details api.DeckDetails
}

func (LoadSuccess) ActionName() string { return "deck/loadSuccess" }

// LoadFailure reports a failed deck load.
type LoadFailure struct {
	Err string
}

func (LoadFailure) ActionName() string { return "deck/loadFailure" }

// CreateNew resets the slice to the blank initial deck.
type CreateNew struct{}

func (CreateNew) ActionName() string { return "deck/createNew" }

// UpdateName replaces the deck name.
type UpdateName struct {
	Name string
}

func (UpdateName) ActionName() string { return "deck/updateName" }

// UpdateDescription replaces the deck description.
type UpdateDescription struct {
	Description *string
}

func (UpdateDescription) ActionName() string { return "deck/updateDescription" }

// UpdateFormat replaces the deck format.
type UpdateFormat struct {
	Format string
}

func (UpdateFormat) ActionName() string { return "deck/updateFormat" }

// AddCard adds one copy of the card, appending a new entry when absent.
type AddCard struct {
	Card cards.Card
}

func (AddCard) ActionName() string { return "deck/addCard" }

// RemoveCard drops the entry matching the card, whatever its quantity.
type RemoveCard struct {
	Card cards.Card
}

func (RemoveCard) ActionName() string { return "deck/removeCard" }

// IncrementQuantity adds one copy of an already-present card. No-op when
// the card is absent.
type IncrementQuantity struct {
	Card cards.Card
}

func (IncrementQuantity) ActionName() string { return "deck/incrementQuantity" }

// DecrementQuantity removes one copy; at quantity one the entry is
// removed. No-op when the card is absent.
type DecrementQuantity struct {
	Card cards.Card
}

func (DecrementQuantity) ActionName() string { return "deck/decrementQuantity" }

// SetQuantity replaces the card's quantity. Zero or negative removes the
// entry; a positive quantity for an absent card appends a new entry.
type SetQuantity struct {
	Card     cards.Card
	Quantity int
}

func (SetQuantity) ActionName() string { return "deck/setQuantity" }

// Revalidate recomputes validity from the current entry list.
type Revalidate struct{}

func (Revalidate) ActionName() string { return "deck/revalidate" }

// Save requests persistence of the current deck (create or update).
type Save struct{}

func (Save) ActionName() string { return "deck/save" }

// SaveSuccess reports a completed save with the deck's identity.
type SaveSuccess struct {
	ID int
}

func (SaveSuccess) ActionName() string { return "deck/saveSuccess" }

// SaveFailure reports a failed save.
type SaveFailure struct {
	Err string
}

func (SaveFailure) ActionName() string { return "deck/saveFailure" }
