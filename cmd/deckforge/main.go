// Command deckforge wires the deck-building sync engine against a remote
// deck backend and runs a short browsing session: it loads the first
// catalog page and the saved-deck list, and can open one deck and export
// its statistics charts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ramonehamilton/deckforge/internal/api"
	"github.com/ramonehamilton/deckforge/internal/catalog"
	"github.com/ramonehamilton/deckforge/internal/charts"
	"github.com/ramonehamilton/deckforge/internal/config"
	"github.com/ramonehamilton/deckforge/internal/deck"
	"github.com/ramonehamilton/deckforge/internal/decklist"
	"github.com/ramonehamilton/deckforge/internal/notify"
	"github.com/ramonehamilton/deckforge/internal/store"
)

var (
	configPath = flag.String("config", "", "Config file path (default: ~/.deckforge/config.toml)")
	nameFilter = flag.String("name", "", "Catalog name filter")
	deckID     = flag.Int("deck", 0, "Deck ID to open in the editor")
	chartsDir  = flag.String("charts-dir", "", "Export statistics charts for the opened deck into this directory")
	watch      = flag.Bool("watch-config", false, "Reload config on file change")
)

// logNavigator stands in for the routing collaborator.
type logNavigator struct{}

func (logNavigator) NavigateTo(route string) {
	log.Printf("[Navigator] -> %s", route)
}

// settled closes its channel on the first action matching want. The
// catalog fetch is debounced and a filter update does not set IsLoading,
// so polling the slice cannot tell "not started yet" from "finished";
// watching for the completion action can.
type settled struct {
	want func(store.Action) bool
	done chan struct{}
	once sync.Once
}

func newSettled(want func(store.Action) bool) *settled {
	return &settled{want: want, done: make(chan struct{})}
}

func (s *settled) Name() string { return "SessionWait" }

func (s *settled) Wants(action store.Action) bool { return s.want(action) }

func (s *settled) Handle(store.Action) { s.once.Do(func() { close(s.done) }) }

func (s *settled) wait(timeout time.Duration) bool {
	select {
	case <-s.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	timeout, _ := cfg.GetRequestTimeout()
	rateDelay, _ := cfg.GetRateDelay()
	window, _ := cfg.GetDebounceWindow()

	client := api.NewClient(cfg.API.BaseURL, api.Options{
		Timeout:   timeout,
		RateDelay: rateDelay,
		Token:     cfg.API.Token,
	})

	notifier := notify.LogSink{}
	navigator := logNavigator{}

	dispatcher := store.NewDispatcher()
	dispatcher.SetVerbose(cfg.App.DebugMode)

	deckSlice := store.NewSlice(deck.InitialState(), deck.Reduce)
	catalogState := catalog.InitialState()
	catalogState.Pagination.PageSize = cfg.Catalog.PageSize
	catalogSlice := store.NewSlice(catalogState, catalog.Reduce)
	listSlice := store.NewSlice(decklist.InitialState(), decklist.Reduce)

	dispatcher.Register(deckSlice)
	dispatcher.Register(catalogSlice)
	dispatcher.Register(listSlice)

	dispatcher.RegisterEffect(deck.NewPersistenceEffect(deckSlice, client, dispatcher, notifier, navigator))
	dispatcher.RegisterEffect(catalog.NewSyncEffect(catalogSlice, client, dispatcher, notifier, window))
	dispatcher.RegisterEffect(decklist.NewSyncEffect(client, dispatcher, notifier, navigator, cfg.Decks.ImageConcurrency))

	catalogDone := newSettled(func(action store.Action) bool {
		switch action.(type) {
		case catalog.LoadSuccess, catalog.LoadFailure:
			return true
		}
		return false
	})
	listDone := newSettled(func(action store.Action) bool {
		switch action.(type) {
		case decklist.LoadSuccess, decklist.LoadFailure:
			return true
		}
		return false
	})
	dispatcher.RegisterEffect(catalogDone)
	dispatcher.RegisterEffect(listDone)

	if *watch && *configPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			err := config.Watch(ctx, *configPath, func(next *config.Config) {
				log.Printf("[Config] Reloaded from %s", *configPath)
				dispatcher.SetVerbose(next.App.DebugMode)
			})
			if err != nil && ctx.Err() == nil {
				log.Printf("[Config] Watch stopped: %v", err)
			}
		}()
	}

	fmt.Println("Deckforge")
	fmt.Println("=========")
	fmt.Printf("Backend: %s\n\n", cfg.API.BaseURL)

	if *nameFilter != "" {
		dispatcher.Dispatch(catalog.UpdateFilters{Filters: catalog.Filters{Name: *nameFilter}})
	} else {
		dispatcher.Dispatch(catalog.LoadCards{})
	}
	dispatcher.Dispatch(decklist.Load{})

	if !catalogDone.wait(window + 10*time.Second) {
		log.Printf("[Session] Catalog load timed out")
	}
	if !listDone.wait(10 * time.Second) {
		log.Printf("[Session] Deck list load timed out")
	}

	printCatalog(catalogSlice.State())
	printDecks(listSlice.State())

	if *deckID != 0 {
		dispatcher.Dispatch(deck.Load{DeckID: *deckID})
		waitFor(func() bool { return !deckSlice.State().IsLoading }, 10*time.Second)
		printDeck(deckSlice.State())

		if *chartsDir != "" {
			if err := exportCharts(deckSlice.State(), *chartsDir); err != nil {
				log.Fatalf("Failed to export charts: %v", err)
			}
			fmt.Printf("Charts written to %s\n", *chartsDir)
		}
	}
}

func loadConfig() (*config.Config, error) {
	if *configPath != "" {
		return config.LoadFrom(*configPath)
	}
	return config.Load()
}

// waitFor polls until done reports true or the timeout elapses. The
// engine is event-driven; this binary is a one-shot session, so polling
// the slices is enough.
func waitFor(done func() bool, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if done() {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func printCatalog(state catalog.State) {
	if state.Err != "" {
		fmt.Printf("Catalog error: %s\n\n", state.Err)
		return
	}
	fmt.Printf("Catalog (page %d, %d cards total):\n", state.Pagination.PageIndex+1, state.Pagination.TotalItems)
	for _, card := range state.Cards {
		fmt.Printf("  %-30s %-10s %s\n", card.Name, card.Rarity, card.Type)
	}
	fmt.Println()
}

func printDecks(state decklist.State) {
	if state.Err != "" {
		fmt.Printf("Deck list error: %s\n\n", state.Err)
		return
	}
	fmt.Printf("Saved decks (%d):\n", len(state.Decks))
	for _, summary := range state.Decks {
		image := "no image"
		if summary.RepresentativeImageURL != nil {
			image = *summary.RepresentativeImageURL
		}
		fmt.Printf("  #%d %-25s %-10s %s\n", summary.ID, summary.Name, summary.Format, image)
	}
	fmt.Println()
}

func printDeck(state deck.State) {
	if state.Err != "" {
		fmt.Printf("Deck error: %s\n\n", state.Err)
		return
	}
	fmt.Printf("Deck #%d %q (%s) - %d cards\n", state.ID, state.Name, state.Format, deck.SelectTotalCount(state))
	for _, group := range deck.SelectGroups(state) {
		if len(group.Entries) == 0 {
			continue
		}
		fmt.Printf("  %s (%d):\n", group.Category, group.Total)
		for _, entry := range group.Entries {
			fmt.Printf("    %dx %s\n", entry.Quantity, entry.Card.Name)
		}
	}
	validity := deck.SelectValidity(state)
	if !validity.IsValid {
		fmt.Println("  Validation:")
		for _, message := range validity.Messages {
			fmt.Printf("    - %s\n", message)
		}
	}
	fmt.Println()
}

func exportCharts(state deck.State, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create charts directory: %w", err)
	}

	stats := deck.SelectStatistics(state)
	cfg := charts.DefaultChartConfig()
	cfg.Subtitle = state.Name

	if err := charts.RenderManaCurve(stats, cfg, filepath.Join(dir, "mana_curve.html")); err != nil {
		return err
	}
	if err := charts.RenderTypeBreakdown(stats, cfg, filepath.Join(dir, "types.html")); err != nil {
		return err
	}
	return charts.RenderColorBreakdown(stats, cfg, filepath.Join(dir, "colors.html"))
}
