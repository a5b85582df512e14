package api

import "github.com/ramonehamilton/deckforge/internal/cards"

// CardListResponse is the catalog query response.
type CardListResponse struct {
	Cards      []cards.Card `json:"cards"`
	Pagination *PageInfo    `json:"pagination"`
}

// PageInfo describes the server-side pagination of a catalog response.
// The page number is 1-based on the wire.
type PageInfo struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
}

// DeckRecord is one saved deck as returned by GET /decks.
type DeckRecord struct {
	ID          int     `json:"id"`
	Name        string  `json:"deckName"`
	Format      string  `json:"deckFormat"`
	Description *string `json:"deckDescription"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// DeckEntryPayload is one (card, quantity) pairing on the wire, used both
// in deck details and in save requests.
type DeckEntryPayload struct {
	Quantity int        `json:"quantity"`
	Card     cards.Card `json:"card"`
}

// DeckStatistics is the server-computed breakdown attached to a deck
// detail response.
type DeckStatistics struct {
	TotalCards int            `json:"totalCards"`
	Types      map[string]int `json:"types"`
	ManaCurve  map[string]int `json:"manaCurve"`
	Colors     map[string]int `json:"colors"`
}

// DeckDetails is the full deck representation from GET /decks/{id}.
type DeckDetails struct {
	ID          int                `json:"id"`
	Name        string             `json:"deckName"`
	Format      string             `json:"deckFormat"`
	Description *string            `json:"deckDescription"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
	Cards       []DeckEntryPayload `json:"cards"`
	Statistics  *DeckStatistics    `json:"statistics,omitempty"`
}

// CreateDeckRequest is the POST /decks payload.
type CreateDeckRequest struct {
	Name        string             `json:"deckName"`
	Format      string             `json:"deckFormat"`
	Description *string            `json:"deckDescription"`
	Cards       []DeckEntryPayload `json:"cards"`
}

// UpdateDeckRequest is the PUT /decks/{id} payload. Format is immutable
// after creation and therefore absent.
type UpdateDeckRequest struct {
	Name        string             `json:"deckName"`
	Description *string            `json:"deckDescription"`
	Cards       []DeckEntryPayload `json:"cards"`
}

// RandomCard is the representative-card response for a deck. Card is nil
// when the deck is empty.
type RandomCard struct {
	Card *struct {
		ImageURL string `json:"imageUrl"`
	} `json:"card"`
}
