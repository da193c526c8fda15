// Package catalog maintains an in-memory search index over the statistics
// bureau's table catalog.
//
// Refresh ingests a table listing fetched from the remote API and Search
// runs ranked free-text queries against it. The index is rebuilt only when
// the listing's fingerprint changes, so repeated refreshes with an
// unchanged catalog are cheap.
package catalog
