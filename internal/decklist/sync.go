package decklist

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/ramonehamilton/deckforge/internal/api"
	"github.com/ramonehamilton/deckforge/internal/deck"
	"github.com/ramonehamilton/deckforge/internal/notify"
	"github.com/ramonehamilton/deckforge/internal/store"
)

// DefaultImageConcurrency caps the concurrent representative-image
// fetches during list enrichment.
const DefaultImageConcurrency = 4

// Navigator is the routing collaborator for edit selection.
type Navigator interface {
	NavigateTo(route string)
}

// SyncEffect orchestrates the saved-deck list: load with per-deck image
// enrichment, delete, and hand-off to the deck editor. Image fetches fan
// out concurrently and failures degrade to a nil image; only a failure of
// the primary list fetch fails the whole operation.
type SyncEffect struct {
	client      *api.Client
	dispatcher  *store.Dispatcher
	notifier    notify.Notifier
	navigator   Navigator
	concurrency int
}

// NewSyncEffect creates the effect. concurrency caps the image fetch
// fan-out; zero means DefaultImageConcurrency. navigator may be nil.
func NewSyncEffect(client *api.Client, dispatcher *store.Dispatcher, notifier notify.Notifier, navigator Navigator, concurrency int) *SyncEffect {
	if concurrency <= 0 {
		concurrency = DefaultImageConcurrency
	}
	return &SyncEffect{
		client:      client,
		dispatcher:  dispatcher,
		notifier:    notifier,
		navigator:   navigator,
		concurrency: concurrency,
	}
}

// Name implements store.Effect.
func (e *SyncEffect) Name() string { return "DeckListSync" }

// Wants implements store.Effect.
func (e *SyncEffect) Wants(action store.Action) bool {
	switch action.(type) {
	case Load, Delete, SelectForEdit:
		return true
	}
	return false
}

// Handle implements store.Effect.
func (e *SyncEffect) Handle(action store.Action) {
	switch a := action.(type) {
	case Load:
		go e.load()
	case Delete:
		go e.delete(a.DeckID)
	case SelectForEdit:
		e.selectForEdit(a.DeckID)
	}
}

func (e *SyncEffect) load() {
	ctx := context.Background()

	records, err := e.client.GetDecks(ctx)
	if err != nil {
		log.Printf("[DeckListSync] Load failed: %v", err)
		e.dispatcher.Dispatch(LoadFailure{Err: err.Error()})
		return
	}

	if len(records) == 0 {
		e.dispatcher.Dispatch(LoadSuccess{Decks: []Summary{}})
		return
	}

	e.dispatcher.Dispatch(LoadSuccess{Decks: e.enrich(ctx, records)})
}

// enrich fans out one representative-image fetch per record, joins them,
// and merges each record with its image. A failed image fetch degrades
// that summary to a nil image rather than failing the batch; record order
// is preserved.
func (e *SyncEffect) enrich(ctx context.Context, records []api.DeckRecord) []Summary {
	summaries := make([]Summary, len(records))
	sem := make(chan struct{}, e.concurrency)

	var wg sync.WaitGroup
	for i, record := range records {
		summaries[i] = Summary{
			ID:     record.ID,
			Name:   record.Name,
			Format: record.Format,
		}

		wg.Add(1)
		go func(i, deckID int) {
			defer wg.Done()
			sem <- struct{}{}        // Acquire semaphore
			defer func() { <-sem }() // Release semaphore

			random, err := e.client.GetRandomCard(ctx, deckID)
			if err != nil {
				log.Printf("[DeckListSync] Image fetch failed for deck %d: %v", deckID, err)
				return
			}
			if random.Card != nil && random.Card.ImageURL != "" {
				url := random.Card.ImageURL
				summaries[i].RepresentativeImageURL = &url
			}
		}(i, record.ID)
	}
	wg.Wait()

	return summaries
}

func (e *SyncEffect) delete(deckID int) {
	if err := e.client.DeleteDeck(context.Background(), deckID); err != nil {
		log.Printf("[DeckListSync] Delete failed for deck %d: %v", deckID, err)
		e.notifier.Error(fmt.Sprintf("Error deleting deck: %v", err))
		e.dispatcher.Dispatch(DeleteFailure{Err: err.Error()})
		return
	}

	e.notifier.Success("Deck deleted successfully")
	e.dispatcher.Dispatch(DeleteSuccess{DeckID: deckID})
}

// selectForEdit hands the deck to the editor slice and navigates. Runs on
// the dispatch path so the editor starts loading before navigation.
func (e *SyncEffect) selectForEdit(deckID int) {
	e.dispatcher.Dispatch(deck.Load{DeckID: deckID})
	if e.navigator != nil {
		e.navigator.NavigateTo(fmt.Sprintf("/decks/%d", deckID))
	}
}
