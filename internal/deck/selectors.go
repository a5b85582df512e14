package deck

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/ramonehamilton/deckforge/internal/cards"
)

// GroupOrder is the fixed category order for the grouped deck view. An
// entry is filed under the first category its card's types match; cards
// matching none fall under "Other".
var GroupOrder = []string{
	"Land",
	"Creature",
	"Planeswalker",
	"Artifact",
	"Enchantment",
	"Instant",
	"Sorcery",
	"Other",
}

// Group is one category of the grouped deck view.
type Group struct {
	Category string
	Entries  []Entry
	Total    int // summed quantity of the category's members
}

// Metadata is the identity projection of the deck.
type Metadata struct {
	ID     int
	Name   string
	Format string
}

// SelectMetadata projects the deck's identity fields.
func SelectMetadata(state State) Metadata {
	return Metadata{ID: state.ID, Name: state.Name, Format: state.Format}
}

// SelectValidity projects the deck's derived validity.
func SelectValidity(state State) Validity {
	return Validity{IsValid: state.IsValid, Messages: state.Messages}
}

// SelectTotalCount sums the quantities of all entries.
func SelectTotalCount(state State) int {
	return lo.SumBy(state.Entries, func(e Entry) int { return e.Quantity })
}

// SelectGroups partitions the entries into the fixed category list. Every
// category appears in GroupOrder order, including empty ones, so renderers
// get a stable layout. First matching category wins: a Creature-Artifact
// files under Creature because Creature is tested first after Land.
func SelectGroups(state State) []Group {
	groups := make([]Group, len(GroupOrder))
	index := make(map[string]int, len(GroupOrder))
	for i, category := range GroupOrder {
		groups[i] = Group{Category: category}
		index[category] = i
	}

	for _, entry := range state.Entries {
		i := index[primaryCategory(entry)]
		groups[i].Entries = append(groups[i].Entries, entry)
		groups[i].Total += entry.Quantity
	}

	return groups
}

func primaryCategory(entry Entry) string {
	for _, category := range GroupOrder {
		if category == "Other" {
			break
		}
		if entry.Card.HasType(category) {
			return category
		}
	}
	return "Other"
}

// Statistics is an aggregate breakdown of the deck's entries, matching
// the shape the backend attaches to deck details.
type Statistics struct {
	TotalCards int
	Types      map[string]int // by primary category
	ManaCurve  map[string]int // by integer converted cost
	Colors     map[string]int // by color name
}

// SelectStatistics computes the deck's type, mana-curve and color
// breakdowns, each weighted by entry quantity. Lands are excluded from
// the mana curve.
func SelectStatistics(state State) Statistics {
	stats := Statistics{
		Types:     make(map[string]int),
		ManaCurve: make(map[string]int),
		Colors:    make(map[string]int),
	}

	for _, entry := range state.Entries {
		stats.TotalCards += entry.Quantity
		stats.Types[primaryCategory(entry)] += entry.Quantity

		if !entry.Card.HasType("Land") {
			bucket := strconv.Itoa(int(entry.Card.CMC))
			stats.ManaCurve[bucket] += entry.Quantity
		}

		for _, code := range entry.Card.Colors {
			stats.Colors[cards.ColorName(code)] += entry.Quantity
		}
	}

	return stats
}
