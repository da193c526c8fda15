package tools

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/statbridge/statbank-mcp/catalog"
	"github.com/statbridge/statbank-mcp/jsonstat"
	"github.com/statbridge/statbank-mcp/registry"
	"github.com/statbridge/statbank-mcp/statbank"
	"github.com/statbridge/statbank-mcp/tabular"
)

// DefaultRowLimit caps table_data output when the caller does not pass a
// row_limit.
const DefaultRowLimit = 50

const defaultSearchLimit = 20

// toolNamespace groups all statistics tools.
const toolNamespace = "statbank"

// ErrClientRequired is returned by NewService without a statbank client.
var ErrClientRequired = errors.New("statbank client is required")

// Options configures a Service.
type Options struct {
	// Client talks to the statistics API. Required.
	Client *statbank.Client
	// Catalog ranks table searches. A fresh one is created when nil.
	Catalog *catalog.Catalog
	// Logger receives tool-level logging. Defaults to a no-op.
	Logger *zap.Logger
}

// Service binds the statistics client and catalog to the MCP tool surface.
type Service struct {
	client  *statbank.Client
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewService creates a Service from opts.
func NewService(opts Options) (*Service, error) {
	if opts.Client == nil {
		return nil, ErrClientRequired
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: opts.Client, catalog: cat, logger: logger}, nil
}

// toolSpec declares one tool's metadata and handler.
type toolSpec struct {
	name        string
	description string
	inputSchema map[string]any
	tags        []string
	handler     registry.ToolHandler
}

// Register wires all statistics tools into reg, in browse-to-data order.
func (s *Service) Register(reg *registry.Registry) error {
	for _, spec := range s.specs() {
		err := reg.RegisterLocalFunc(
			spec.name,
			spec.description,
			spec.inputSchema,
			spec.handler,
			registry.WithNamespace(toolNamespace),
			registry.WithTags(spec.tags...),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) specs() []toolSpec {
	return []toolSpec{
		{
			name:        "list_folders",
			description: "Browse the statistics bureau's subject-folder tree. Without folder_id, lists the root folders.",
			inputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"folder_id": map[string]any{
						"type":        "string",
						"description": "Folder to open; omit for the root",
					},
				},
			},
			tags:    []string{"browse"},
			handler: s.listFolders,
		},
		{
			name:        "search_tables",
			description: "Search the table catalog by free text and return ranked matches.",
			inputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Free-text search, e.g. 'population by region'",
					},
					"past_days": map[string]any{
						"type":        "integer",
						"description": "Only tables updated within this many days",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Max results (default 20)",
					},
				},
				"required": []string{"query"},
			},
			tags:    []string{"search"},
			handler: s.searchTables,
		},
		{
			name:        "table_metadata",
			description: "Show a table's dimensions and their categories, needed to build a table_data selection.",
			inputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"table_id": map[string]any{
						"type":        "string",
						"description": "Table identifier, e.g. 'TAB1234'",
					},
				},
				"required": []string{"table_id"},
			},
			tags:    []string{"metadata"},
			handler: s.tableMetadata,
		},
		{
			name:        "table_data",
			description: "Fetch a data slice from a table and render it as a flat, readable table.",
			inputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"table_id": map[string]any{
						"type":        "string",
						"description": "Table identifier, e.g. 'TAB1234'",
					},
					"selection": map[string]any{
						"type":        "object",
						"description": "Dimension code to category codes, e.g. {\"region\": [\"N\", \"S\"]}. Omit for the API's default slice.",
					},
					"row_limit": map[string]any{
						"type":        "integer",
						"description": "Max rows to return (default 50)",
					},
				},
				"required": []string{"table_id"},
			},
			tags:    []string{"data"},
			handler: s.tableData,
		},
	}
}

func (s *Service) listFolders(ctx context.Context, args map[string]any) (any, error) {
	folderID, err := stringArg(args, "folder_id")
	if err != nil {
		return nil, err
	}

	folder, err := s.client.Navigate(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return renderFolder(folder), nil
}

func (s *Service) searchTables(ctx context.Context, args map[string]any) (any, error) {
	query, err := requiredStringArg(args, "query")
	if err != nil {
		return nil, err
	}
	pastDays, err := intArg(args, "past_days", 0)
	if err != nil {
		return nil, err
	}
	limit, err := intArg(args, "limit", defaultSearchLimit)
	if err != nil {
		return nil, err
	}

	listing, err := s.client.ListTables(ctx, query, pastDays)
	if err != nil {
		return nil, err
	}
	if err := s.catalog.Refresh(listing); err != nil {
		return nil, err
	}

	ranked, err := s.catalog.Search(query, limit)
	if err != nil {
		return nil, err
	}
	// The remote may match terms the local ranking does not recognize
	// (e.g. synonyms resolved server side); fall back to listing order
	// rather than hiding remote matches.
	if len(ranked) == 0 && len(listing) > 0 {
		ranked = listing
		if len(ranked) > limit {
			ranked = ranked[:limit]
		}
	}

	s.logger.Debug("table search",
		zap.String("query", query),
		zap.Int("listed", len(listing)),
		zap.Int("returned", len(ranked)))

	return renderTables(ranked, len(listing)), nil
}

func (s *Service) tableMetadata(ctx context.Context, args map[string]any) (any, error) {
	tableID, err := requiredStringArg(args, "table_id")
	if err != nil {
		return nil, err
	}

	meta, err := s.client.Metadata(ctx, tableID)
	if err != nil {
		return nil, err
	}
	return renderMetadata(meta), nil
}

func (s *Service) tableData(ctx context.Context, args map[string]any) (any, error) {
	tableID, err := requiredStringArg(args, "table_id")
	if err != nil {
		return nil, err
	}
	selection, err := selectionArg(args, "selection")
	if err != nil {
		return nil, err
	}
	rowLimit, err := intArg(args, "row_limit", DefaultRowLimit)
	if err != nil {
		return nil, err
	}

	ds, err := s.client.Data(ctx, tableID, selection)
	if err != nil {
		return nil, err
	}

	table := jsonstat.Decode(ds, rowLimit)
	return tabular.Render(table), nil
}
