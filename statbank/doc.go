// Package statbank is a client for a statistics bureau's public tabular
// data API (PxWeb-style REST endpoints).
//
// The client covers four read-only operations: browsing the subject-folder
// tree, listing and filtering the table catalog, reading table metadata,
// and fetching table data as a JSON-stat 2.0 dataset. Transport failures
// and non-2xx responses surface as errors before any decoding happens; a
// non-2xx status is reported as *StatusError.
//
// Example usage:
//
//	client, err := statbank.NewClient(statbank.Options{
//	    BaseURL:  "https://api.example.org/v2",
//	    Language: "en",
//	})
//	if err != nil {
//	    return err
//	}
//	ds, err := client.Data(ctx, "TAB1234", map[string][]string{
//	    "region": {"N", "S"},
//	})
package statbank
