// Package tools defines the statistics tool surface of statbank-mcp.
//
// Service binds the statbank client, the catalog search index, the
// JSON-stat decoder, and the tabular renderer into four MCP tools:
//
//   - list_folders: browse the subject-folder tree
//   - search_tables: ranked free-text search over the table catalog
//   - table_metadata: dimensions and categories of one table
//   - table_data: fetch a data slice and flatten it into a readable table
//
// Tool definitions are declarative specs; handlers coerce the untyped MCP
// argument maps, call the client, and render display text.
package tools
