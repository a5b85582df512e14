package deck

import "fmt"

const (
	// MinDeckSize is the minimum total number of cards in a legal deck.
	MinDeckSize = 60

	// MaxCopies is the copy ceiling for any single non-Land card.
	MaxCopies = 4
)

// Validity is the validation engine's output for an entry list.
type Validity struct {
	IsValid  bool
	Messages []string
}

// Validate checks an entry list against the deck construction rules:
// at least MinDeckSize cards in total, and at most MaxCopies copies of any
// card whose types do not include Land. The size message, if any, comes
// first; per-card messages follow in entry-list order. Pure and
// deterministic.
func Validate(entries []Entry) Validity {
	var messages []string

	total := 0
	for _, entry := range entries {
		total += entry.Quantity
	}

	if total < MinDeckSize {
		messages = append(messages,
			fmt.Sprintf("A deck must contain at least %d cards (currently %d)", MinDeckSize, total))
	}

	for _, entry := range entries {
		if entry.Card.HasType("Land") {
			continue
		}
		if entry.Quantity > MaxCopies {
			messages = append(messages,
				fmt.Sprintf("A deck can't contain more than %d copies of %s (currently %d)",
					MaxCopies, entry.Card.Name, entry.Quantity))
		}
	}

	return Validity{
		IsValid:  len(messages) == 0,
		Messages: messages,
	}
}
