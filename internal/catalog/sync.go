package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/ramonehamilton/deckforge/internal/api"
	"github.com/ramonehamilton/deckforge/internal/notify"
	"github.com/ramonehamilton/deckforge/internal/store"
)

// DefaultDebounceWindow is the quiet period a burst of triggers must
// settle for before a fetch fires.
const DefaultDebounceWindow = 300 * time.Millisecond

// SyncEffect keeps the catalog slice consistent with its filter, sort and
// page inputs. Rapid trigger bursts (keystrokes in a name filter) collapse
// into one fetch per quiet window, and the fetch always reads the current
// combined state rather than anything carried by the triggering action.
//
// In-flight requests use switch-to-latest semantics: a newer fetch cancels
// the previous request's context, and a stale response that slips through
// anyway is dropped by generation check instead of overwriting the view.
type SyncEffect struct {
	slice      *store.Slice[State]
	client     *api.Client
	dispatcher *store.Dispatcher
	notifier   notify.Notifier
	debounced  func(f func())

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// NewSyncEffect creates the effect with the given debounce window; zero
// means DefaultDebounceWindow.
func NewSyncEffect(slice *store.Slice[State], client *api.Client, dispatcher *store.Dispatcher, notifier notify.Notifier, window time.Duration) *SyncEffect {
	if window == 0 {
		window = DefaultDebounceWindow
	}
	return &SyncEffect{
		slice:      slice,
		client:     client,
		dispatcher: dispatcher,
		notifier:   notifier,
		debounced:  debounce.New(window),
	}
}

// Name implements store.Effect.
func (e *SyncEffect) Name() string { return "CatalogSync" }

// Wants implements store.Effect.
func (e *SyncEffect) Wants(action store.Action) bool {
	switch action.(type) {
	case LoadCards, UpdateFilters, UpdatePage, UpdateSort:
		return true
	}
	return false
}

// Handle implements store.Effect. Each qualifying trigger restarts the
// debounce timer; only the last trigger of a quiet period fires.
func (e *SyncEffect) Handle(store.Action) {
	e.debounced(e.fire)
}

// fire snapshots the combined inputs and issues the fetch, superseding any
// request still in flight.
func (e *SyncEffect) fire() {
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.gen++
	gen := e.gen
	e.mu.Unlock()

	query := BuildQuery(e.slice.State())

	go func() {
		defer cancel()

		response, err := e.client.GetCards(ctx, query)

		e.mu.Lock()
		stale := gen != e.gen
		e.mu.Unlock()
		if stale {
			log.Printf("[CatalogSync] Dropping superseded response (gen %d)", gen)
			return
		}

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			e.notifier.Error(fmt.Sprintf("Error loading cards: %v", err))
			e.dispatcher.Dispatch(LoadFailure{Err: err.Error()})
			return
		}

		e.dispatcher.Dispatch(LoadSuccess{Response: *response})
	}()
}

// BuildQuery translates the catalog state into the remote query: page
// becomes 1-based, sort is included only when column and direction are
// both set, and empty filters are dropped.
func BuildQuery(state State) api.CardQuery {
	query := api.CardQuery{
		Page:     state.Pagination.PageIndex + 1,
		Name:     state.Filters.Name,
		Set:      state.Filters.Set,
		Rarity:   state.Filters.Rarity,
		Color:    state.Filters.Color,
		Type:     state.Filters.Type,
		ManaCost: state.Filters.ManaCost,
	}

	if state.Sort.Column != "" && state.Sort.Direction != SortNone {
		query.Sort = state.Sort.Column
		query.Order = state.Sort.Direction
	}

	return query
}
