package catalog

import (
	"errors"
	"testing"

	"github.com/statbridge/statbank-mcp/statbank"
)

func sampleTables() []statbank.TableSummary {
	return []statbank.TableSummary{
		{
			ID:            "TAB0001",
			Label:         "Population by region and year",
			Description:   "Resident population at the end of the year",
			SubjectCode:   "BE",
			VariableNames: []string{"region", "year"},
		},
		{
			ID:            "TAB0002",
			Label:         "Unemployment rate by county",
			Description:   "Registered unemployment",
			SubjectCode:   "AM",
			VariableNames: []string{"county", "month"},
		},
		{
			ID:            "TAB0003",
			Label:         "Consumer price index",
			SubjectCode:   "PR",
			VariableNames: []string{"month"},
		},
	}
}

func TestSearchBeforeRefresh(t *testing.T) {
	c := New()
	if _, err := c.Search("population", 5); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}

func TestRefreshAndSearch(t *testing.T) {
	c := New()
	defer func() {
		_ = c.Close()
	}()

	if err := c.Refresh(sampleTables()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 indexed tables, got %d", c.Len())
	}

	results, err := c.Search("population", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].ID != "TAB0001" {
		t.Errorf("expected TAB0001 first, got %s", results[0].ID)
	}
}

func TestSearchMatchesDescription(t *testing.T) {
	c := New()
	defer func() {
		_ = c.Close()
	}()
	if err := c.Refresh(sampleTables()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	results, err := c.Search("unemployment", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) == 0 || results[0].ID != "TAB0002" {
		t.Errorf("expected TAB0002, got %v", results)
	}
}

func TestSearchEmptyQueryListsAll(t *testing.T) {
	c := New()
	defer func() {
		_ = c.Close()
	}()
	if err := c.Refresh(sampleTables()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	results, err := c.Search("", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected all 3 tables, got %d", len(results))
	}
	if results[0].ID != "TAB0001" || results[2].ID != "TAB0003" {
		t.Errorf("expected ID order, got %v", results)
	}

	limited, err := c.Search("", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 tables with limit, got %d", len(limited))
	}
}

func TestRefreshSkipsUnchangedListing(t *testing.T) {
	c := New()
	defer func() {
		_ = c.Close()
	}()

	if err := c.Refresh(sampleTables()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	first := c.index

	if err := c.Refresh(sampleTables()); err != nil {
		t.Fatalf("second Refresh failed: %v", err)
	}
	if c.index != first {
		t.Error("expected index reuse for unchanged listing")
	}

	changed := sampleTables()
	changed[0].Label = "Population by municipality"
	if err := c.Refresh(changed); err != nil {
		t.Fatalf("third Refresh failed: %v", err)
	}
	if c.index == first {
		t.Error("expected index rebuild for changed listing")
	}
}

func TestFingerprintStability(t *testing.T) {
	a := computeFingerprint(sampleTables())
	b := computeFingerprint(sampleTables())
	if a != b {
		t.Error("fingerprint not stable for identical listings")
	}

	changed := sampleTables()
	changed[1].Updated = "2024-05-01"
	if computeFingerprint(changed) == a {
		t.Error("fingerprint unchanged for modified listing")
	}
}
