package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/statbridge/statbank-mcp/statbank"
)

// computeFingerprint generates a stable hash of the table listing. The
// fingerprint changes when listing content changes, enabling Refresh to
// skip index rebuilds for an unchanged catalog.
func computeFingerprint(tables []statbank.TableSummary) string {
	h := sha256.New()

	for _, table := range tables {
		h.Write([]byte(table.ID))
		h.Write([]byte{0}) // separator
		h.Write([]byte(table.Label))
		h.Write([]byte{0})
		h.Write([]byte(table.Description))
		h.Write([]byte{0})
		h.Write([]byte(table.Updated))
		h.Write([]byte{0})
		h.Write([]byte(table.FirstPeriod))
		h.Write([]byte{0})
		h.Write([]byte(table.LastPeriod))
		h.Write([]byte{0})
		h.Write([]byte(table.SubjectCode))
		h.Write([]byte{0})
		h.Write([]byte(strings.Join(table.VariableNames, "\x01")))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
