// Package jsonstat decodes JSON-stat 2.0 dataset responses into flat,
// row-oriented tables.
//
// A JSON-stat dataset is an N-dimensional cube serialized as a flat value
// array plus per-dimension category metadata. Decode reconstructs the
// category ordering of every dimension, computes a row-major stride table,
// and emits one row per linear value position, so that the row order equals
// the cartesian product of the category lists with the last-listed dimension
// varying fastest.
//
// Decoding is total: malformed category indexes degrade to a placeholder
// label instead of failing, and the input dataset is never mutated.
//
// Example usage:
//
//	var ds jsonstat.Dataset
//	if err := json.Unmarshal(body, &ds); err != nil {
//	    return err
//	}
//	table := jsonstat.Decode(&ds, 50)
//	fmt.Println(tabular.Render(table))
package jsonstat
