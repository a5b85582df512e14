package cards

// Card is an immutable snapshot of one printing from the remote catalog,
// keyed by the external API identifier. Decks copy cards by value; the
// catalog remains the owner of record.
type Card struct {
	// Unique ID from the external API (e.g., multiverse or scryfall id)
	APIID string `json:"apiId"`

	// Basic card information
	Name     string   `json:"name"`
	Type     string   `json:"type"`  // Full type line
	Types    []string `json:"types"` // e.g., ["Creature"]
	Subtypes []string `json:"subtypes,omitempty"`
	Set      string   `json:"set"` // Set code
	SetName  string   `json:"setName"`

	// Mana information
	ManaCost *string `json:"manaCost"`
	CMC      float64 `json:"cmc"` // Converted mana cost

	// Colors and identity
	Colors        []string `json:"colors"`
	ColorIdentity []string `json:"colorIdentity"`

	// Rarity
	Rarity string `json:"rarity"` // "common", "uncommon", "rare", "mythic"

	// Power/Toughness (for creatures)
	Power     *string `json:"power,omitempty"`
	Toughness *string `json:"toughness,omitempty"`

	// Text and imagery
	Text     *string `json:"text,omitempty"`
	ImageURL *string `json:"imageUrl"`

	// Metadata
	Artist *string `json:"artist,omitempty"`
	Number *string `json:"number,omitempty"` // Collector number
	Layout string  `json:"layout"`           // "normal", "split", "transform", etc.
}

// HasType reports whether the card's type set includes the given type
// (e.g., "Land", "Creature").
func (c Card) HasType(cardType string) bool {
	for _, t := range c.Types {
		if t == cardType {
			return true
		}
	}
	return false
}

// ColorName maps a single-letter color code to its full name. Unknown
// codes are returned unchanged.
func ColorName(code string) string {
	switch code {
	case "W":
		return "White"
	case "U":
		return "Blue"
	case "B":
		return "Black"
	case "R":
		return "Red"
	case "G":
		return "Green"
	default:
		return code
	}
}
