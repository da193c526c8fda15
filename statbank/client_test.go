package statbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Options{})
	if !errors.Is(err, ErrBaseURLRequired) {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
}

func newTestClient(t *testing.T, handler http.Handler) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Options{
		BaseURL:  server.URL,
		Language: "en",
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return server, client
}

func TestNavigate(t *testing.T) {
	var gotPath, gotLang string
	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLang = r.URL.Query().Get("lang")
		_ = json.NewEncoder(w).Encode(Folder{
			ID:    "BE",
			Label: "Population",
			Contents: []FolderItem{
				{Type: ItemTypeFolder, ID: "BE01", Label: "Population statistics"},
				{Type: ItemTypeTable, ID: "TAB1234", Label: "Population by region"},
			},
		})
	}))

	folder, err := client.Navigate(context.Background(), "BE")
	if err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	if gotPath != "/navigation/BE" {
		t.Errorf("expected path /navigation/BE, got %s", gotPath)
	}
	if gotLang != "en" {
		t.Errorf("expected lang=en, got %q", gotLang)
	}
	if len(folder.Contents) != 2 {
		t.Fatalf("expected 2 items, got %d", len(folder.Contents))
	}
	if folder.Contents[1].Type != ItemTypeTable {
		t.Errorf("expected table item, got %s", folder.Contents[1].Type)
	}
}

func TestNavigateRoot(t *testing.T) {
	var gotPath string
	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(Folder{Label: "Root"})
	}))

	if _, err := client.Navigate(context.Background(), ""); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	if gotPath != "/navigation" {
		t.Errorf("expected path /navigation, got %s", gotPath)
	}
}

func TestListTablesFollowsPages(t *testing.T) {
	var gotQuery string
	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		page, _ := strconv.Atoi(r.URL.Query().Get("pageNumber"))
		listing := tableListing{
			Tables: []TableSummary{{ID: fmt.Sprintf("TAB%d", page), Label: fmt.Sprintf("Table %d", page)}},
			Page:   pageInfo{PageNumber: page, TotalPages: 3},
		}
		_ = json.NewEncoder(w).Encode(listing)
	}))

	tables, err := client.ListTables(context.Background(), "population", 0)
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	if gotQuery != "population" {
		t.Errorf("expected query=population, got %q", gotQuery)
	}
	if len(tables) != 3 {
		t.Fatalf("expected 3 tables across pages, got %d", len(tables))
	}
	if tables[2].ID != "TAB3" {
		t.Errorf("expected TAB3 last, got %s", tables[2].ID)
	}
}

func TestListTablesStopsOnEmptyPage(t *testing.T) {
	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A broken remote that claims more pages but returns nothing.
		_ = json.NewEncoder(w).Encode(tableListing{Page: pageInfo{TotalPages: 99}})
	}))

	tables, err := client.ListTables(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("expected no tables, got %d", len(tables))
	}
}

func TestMetadata(t *testing.T) {
	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tables/TAB1234/metadata" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(TableMetadata{
			ID:    "TAB1234",
			Label: "Population by region",
			Variables: []Variable{
				{Code: "region", Label: "region", Values: []VariableValue{{Code: "N", Label: "North"}}},
				{Code: "year", Label: "year", Time: true},
			},
		})
	}))

	meta, err := client.Metadata(context.Background(), "TAB1234")
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if len(meta.Variables) != 2 {
		t.Fatalf("expected 2 variables, got %d", len(meta.Variables))
	}
	if !meta.Variables[1].Time {
		t.Error("expected time variable flag")
	}
}

func TestMetadataRequiresTableID(t *testing.T) {
	client, err := NewClient(Options{BaseURL: "http://example.invalid"})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := client.Metadata(context.Background(), " "); !errors.Is(err, ErrTableIDRequired) {
		t.Fatalf("expected ErrTableIDRequired, got %v", err)
	}
}

func TestData(t *testing.T) {
	var gotURL string
	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		_, _ = w.Write([]byte(`{
			"class": "dataset",
			"label": "Population",
			"id": ["year"],
			"size": [2],
			"dimension": {
				"year": {"label": "year", "category": {"index": ["2023", "2024"]}}
			},
			"value": [10, 20]
		}`))
	}))

	ds, err := client.Data(context.Background(), "TAB1234", map[string][]string{
		"year":   {"2023", "2024"},
		"region": {"N"},
	})
	if err != nil {
		t.Fatalf("Data failed: %v", err)
	}
	if len(ds.Value) != 2 {
		t.Fatalf("expected 2 values, got %d", len(ds.Value))
	}

	u, err := url.Parse(gotURL)
	if err != nil {
		t.Fatalf("parse recorded URL: %v", err)
	}
	q := u.Query()
	if q.Get("outputFormat") != "json-stat2" {
		t.Errorf("expected outputFormat=json-stat2, got %q", q.Get("outputFormat"))
	}
	if q.Get("valueCodes[region]") != "N" {
		t.Errorf("expected region selection, got %q", q.Get("valueCodes[region]"))
	}
	if q.Get("valueCodes[year]") != "2023,2024" {
		t.Errorf("expected year selection, got %q", q.Get("valueCodes[year]"))
	}
}

func TestStatusError(t *testing.T) {
	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "table not found", http.StatusNotFound)
	}))

	_, err := client.Metadata(context.Background(), "NOPE")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", statusErr.StatusCode)
	}
	if statusErr.Body != "table not found" {
		t.Errorf("expected body snippet, got %q", statusErr.Body)
	}
}

func TestMalformedJSON(t *testing.T) {
	_, client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))

	if _, err := client.Navigate(context.Background(), ""); err == nil {
		t.Fatal("expected decode error")
	}
}
