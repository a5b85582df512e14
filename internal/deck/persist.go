package deck

import (
	"context"
	"fmt"
	"log"

	"github.com/ramonehamilton/deckforge/internal/api"
	"github.com/ramonehamilton/deckforge/internal/notify"
	"github.com/ramonehamilton/deckforge/internal/store"
)

// Navigator is the routing collaborator. Creating a deck navigates to the
// new deck's route.
type Navigator interface {
	NavigateTo(route string)
}

// PersistenceEffect drives deck load and save I/O. On Save it reads the
// slice's current state and issues exactly one create or update call; a
// second Save while one is in flight is not guarded against here.
type PersistenceEffect struct {
	slice      *store.Slice[State]
	client     *api.Client
	dispatcher *store.Dispatcher
	notifier   notify.Notifier
	navigator  Navigator
}

// NewPersistenceEffect creates the effect. navigator may be nil when no
// routing collaborator is attached.
func NewPersistenceEffect(slice *store.Slice[State], client *api.Client, dispatcher *store.Dispatcher, notifier notify.Notifier, navigator Navigator) *PersistenceEffect {
	return &PersistenceEffect{
		slice:      slice,
		client:     client,
		dispatcher: dispatcher,
		notifier:   notifier,
		navigator:  navigator,
	}
}

// Name implements store.Effect.
func (e *PersistenceEffect) Name() string { return "DeckPersistence" }

// Wants implements store.Effect.
func (e *PersistenceEffect) Wants(action store.Action) bool {
	switch action.(type) {
	case Load, Save:
		return true
	}
	return false
}

// Handle implements store.Effect.
func (e *PersistenceEffect) Handle(action store.Action) {
	switch a := action.(type) {
	case Load:
		go e.load(a.DeckID)
	case Save:
		// Snapshot before leaving the dispatch path so the payload
		// reflects the state the Save was issued against.
		go e.save(e.slice.State())
	}
}

func (e *PersistenceEffect) load(deckID int) {
	details, err := e.client.GetDeck(context.Background(), deckID)
	if err != nil {
		log.Printf("[DeckPersistence] Load failed for deck %d: %v", deckID, err)
		e.notifier.Error(fmt.Sprintf("Error loading deck: %v", err))
		e.dispatcher.Dispatch(LoadFailure{Err: err.Error()})
		return
	}
	e.dispatcher.Dispatch(LoadSuccess{Details: *details})
}

func (e *PersistenceEffect) save(state State) {
	payload := make([]api.DeckEntryPayload, 0, len(state.Entries))
	for _, entry := range state.Entries {
		payload = append(payload, api.DeckEntryPayload{
			Quantity: entry.Quantity,
			Card:     entry.Card,
		})
	}

	if state.ID != 0 {
		e.update(state, payload)
		return
	}
	e.create(state, payload)
}

func (e *PersistenceEffect) update(state State, payload []api.DeckEntryPayload) {
	req := api.UpdateDeckRequest{
		Name:        state.Name,
		Description: state.Description,
		Cards:       payload,
	}

	if _, err := e.client.UpdateDeck(context.Background(), state.ID, req); err != nil {
		log.Printf("[DeckPersistence] Update failed for deck %d: %v", state.ID, err)
		e.notifier.Error(fmt.Sprintf("Error saving deck: %v", err))
		e.dispatcher.Dispatch(SaveFailure{Err: err.Error()})
		return
	}

	e.notifier.Success("Deck updated successfully")
	e.dispatcher.Dispatch(SaveSuccess{ID: state.ID})
}

func (e *PersistenceEffect) create(state State, payload []api.DeckEntryPayload) {
	req := api.CreateDeckRequest{
		Name:        state.Name,
		Format:      state.Format,
		Description: state.Description,
		Cards:       payload,
	}

	record, err := e.client.CreateDeck(context.Background(), req)
	if err != nil {
		log.Printf("[DeckPersistence] Create failed: %v", err)
		e.notifier.Error(fmt.Sprintf("Error creating deck: %v", err))
		e.dispatcher.Dispatch(SaveFailure{Err: err.Error()})
		return
	}

	e.notifier.Success("Deck created successfully")
	if e.navigator != nil {
		e.navigator.NavigateTo(fmt.Sprintf("/decks/%d", record.ID))
	}
	e.dispatcher.Dispatch(SaveSuccess{ID: record.ID})
}
