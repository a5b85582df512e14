package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ramonehamilton/deckforge/internal/deck"
)

func sampleStats() deck.Statistics {
	return deck.Statistics{
		TotalCards: 60,
		Types:      map[string]int{"Land": 24, "Creature": 20, "Instant": 16},
		ManaCurve:  map[string]int{"1": 8, "2": 12, "3": 10, "10": 6},
		Colors:     map[string]int{"Red": 20, "Green": 16},
	}
}

func TestRenderManaCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.html")

	if err := RenderManaCurve(sampleStats(), DefaultChartConfig(), path); err != nil {
		t.Fatalf("RenderManaCurve failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Chart file not written: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "Mana Curve") {
		t.Error("Chart should carry the default title")
	}
	// Buckets must sort numerically, not lexically: 10 after 3
	if strings.Index(html, `"3"`) > strings.Index(html, `"10"`) {
		t.Error("Cost buckets should be in numeric order")
	}
}

func TestRenderTypeBreakdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.html")

	if err := RenderTypeBreakdown(sampleStats(), DefaultChartConfig(), path); err != nil {
		t.Fatalf("RenderTypeBreakdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Chart file not written: %v", err)
	}
	html := string(data)
	// Categories follow the grouped-view order: Land before Creature
	if strings.Index(html, "Land") > strings.Index(html, "Creature") {
		t.Error("Type categories should follow the grouped-view order")
	}
}

func TestRenderToUnwritablePathReturnsError(t *testing.T) {
	// A directory cannot be created as a file, so the write fails
	if err := RenderManaCurve(sampleStats(), DefaultChartConfig(), t.TempDir()); err == nil {
		t.Error("Rendering onto a directory path should return an error")
	}
}

func TestRenderColorBreakdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.html")

	if err := RenderColorBreakdown(sampleStats(), DefaultChartConfig(), path); err != nil {
		t.Fatalf("RenderColorBreakdown failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Chart file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Chart file should not be empty")
	}
}
