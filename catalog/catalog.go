package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/statbridge/statbank-mcp/statbank"
)

// ErrNotLoaded is returned by Search before the first successful Refresh.
var ErrNotLoaded = errors.New("catalog not loaded")

const defaultSearchLimit = 20

// searchDoc is the indexed shape of one table summary.
type searchDoc struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Variables   string `json:"variables"`
}

// Catalog is a ranked search index over table summaries. Safe for
// concurrent use.
type Catalog struct {
	mu          sync.RWMutex
	index       bleve.Index
	tables      map[string]statbank.TableSummary
	fingerprint string
}

// New creates an empty Catalog. Call Refresh before Search.
func New() *Catalog {
	return &Catalog{}
}

// Refresh replaces the indexed listing. The bleve index is only rebuilt
// when the listing content actually changed.
func (c *Catalog) Refresh(tables []statbank.TableSummary) error {
	fp := computeFingerprint(tables)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index != nil && fp == c.fingerprint {
		return nil
	}

	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	batch := idx.NewBatch()
	byID := make(map[string]statbank.TableSummary, len(tables))
	for _, table := range tables {
		if table.ID == "" {
			continue
		}
		byID[table.ID] = table
		doc := searchDoc{
			Label:       table.Label,
			Description: table.Description,
			Subject:     table.SubjectCode,
			Variables:   strings.Join(table.VariableNames, " "),
		}
		if err := batch.Index(table.ID, doc); err != nil {
			_ = idx.Close()
			return fmt.Errorf("index table %s: %w", table.ID, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return fmt.Errorf("apply index batch: %w", err)
	}

	if c.index != nil {
		_ = c.index.Close()
	}
	c.index = idx
	c.tables = byID
	c.fingerprint = fp
	return nil
}

// Search returns up to limit tables ranked by relevance. An empty query
// lists the catalog in table-ID order.
func (c *Catalog) Search(query string, limit int) ([]statbank.TableSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.index == nil {
		return nil, ErrNotLoaded
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	if strings.TrimSpace(query) == "" {
		return c.listAllLocked(limit), nil
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, 0, false)
	res, err := c.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}

	out := make([]statbank.TableSummary, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if table, ok := c.tables[hit.ID]; ok {
			out = append(out, table)
		}
	}
	return out, nil
}

// Len returns the number of indexed tables.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}

// Close releases the underlying index.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index == nil {
		return nil
	}
	err := c.index.Close()
	c.index = nil
	c.tables = nil
	c.fingerprint = ""
	return err
}

func (c *Catalog) listAllLocked(limit int) []statbank.TableSummary {
	ids := make([]string, 0, len(c.tables))
	for id := range c.tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]statbank.TableSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.tables[id])
	}
	return out
}
