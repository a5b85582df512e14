package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ramonehamilton/deckforge/internal/cards"
)

func testClient(serverURL string, token string) *Client {
	return NewClient(serverURL, Options{
		RateDelay: time.Millisecond,
		Token:     token,
	})
}

func TestCardQuery_Params(t *testing.T) {
	cmc := 2.0

	tests := []struct {
		name  string
		query CardQuery
		want  string
	}{
		{
			name:  "page only",
			query: CardQuery{Page: 1},
			want:  "page=1",
		},
		{
			name:  "sort needs both column and order",
			query: CardQuery{Page: 1, Sort: "name"},
			want:  "page=1",
		},
		{
			name:  "full sort",
			query: CardQuery{Page: 2, Sort: "name", Order: "desc"},
			want:  "order=desc&page=2&sort=name",
		},
		{
			name: "multi-valued filters comma-joined",
			query: CardQuery{
				Page:   1,
				Rarity: []string{"rare", "mythic"},
				Color:  []string{"R", "G"},
				Type:   []string{"Creature"},
			},
			want: "color=R%2CG&page=1&rarity=rare%2Cmythic&type=Creature",
		},
		{
			name:  "mana cost filter",
			query: CardQuery{Page: 1, ManaCost: &cmc},
			want:  "cmc=2&page=1",
		},
		{
			name:  "name and set",
			query: CardQuery{Page: 1, Name: "bolt", Set: "lea"},
			want:  "name=bolt&page=1&set=lea",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.params().Encode(); got != tt.want {
				t.Errorf("params() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(CardListResponse{})
	}))
	defer server.Close()

	client := testClient(server.URL, "secret-token")

	if _, err := client.GetCards(context.Background(), CardQuery{Page: 1}); err != nil {
		t.Fatalf("GetCards failed: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Expected bearer token header, got %q", gotAuth)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(CardListResponse{})
	}))
	defer server.Close()

	client := testClient(server.URL, "")

	if _, err := client.GetCards(context.Background(), CardQuery{Page: 1}); err != nil {
		t.Fatalf("GetCards failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Expected no auth header, got %q", gotAuth)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := testClient(server.URL, "")

	// A 401 surfaces as a plain failure, not a special case
	if _, err := client.GetCards(context.Background(), CardQuery{Page: 1}); err == nil {
		t.Error("Expected error on 401 status")
	}
}

func TestClient_GetDeck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/decks/12" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(DeckDetails{
			ID:     12,
			Name:   "Mono Red",
			Format: "Standard",
			Cards: []DeckEntryPayload{
				{Quantity: 4, Card: cards.Card{APIID: "c1", Name: "Shock", Types: []string{"Instant"}}},
			},
		})
	}))
	defer server.Close()

	client := testClient(server.URL, "")

	details, err := client.GetDeck(context.Background(), 12)
	if err != nil {
		t.Fatalf("GetDeck failed: %v", err)
	}
	if details.ID != 12 || len(details.Cards) != 1 {
		t.Errorf("Unexpected details: %+v", details)
	}
	if details.Cards[0].Card.Name != "Shock" {
		t.Errorf("Entry card not decoded: %+v", details.Cards[0])
	}
}

func TestClient_DeleteDeck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/decks/3" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := testClient(server.URL, "")

	if err := client.DeleteDeck(context.Background(), 3); err != nil {
		t.Errorf("DeleteDeck failed: %v", err)
	}
}

func TestClient_GetRandomCard_NullCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"card":null}`))
	}))
	defer server.Close()

	client := testClient(server.URL, "")

	random, err := client.GetRandomCard(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetRandomCard failed: %v", err)
	}
	if random.Card != nil {
		t.Errorf("Expected nil card, got %+v", random.Card)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := testClient(server.URL, "")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	if _, err := client.GetCards(ctx, CardQuery{Page: 1}); err == nil {
		t.Error("Expected error after context cancellation")
	}
}
