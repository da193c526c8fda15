package jsonstat_test

import (
	"fmt"

	"github.com/statbridge/statbank-mcp/jsonstat"
)

func ExampleDecode() {
	v := func(f float64) *float64 { return &f }
	ds := &jsonstat.Dataset{
		Label: "Example",
		ID:    []string{"year", "region"},
		Size:  []int{2, 2},
		Dimension: map[string]jsonstat.Dimension{
			"year": {
				Label: "year",
				Category: jsonstat.Category{
					Index: jsonstat.CategoryIndex{Codes: []string{"2023", "2024"}},
				},
			},
			"region": {
				Label: "region",
				Category: jsonstat.Category{
					Index: jsonstat.CategoryIndex{Codes: []string{"N", "S"}},
					Label: map[string]string{"N": "North", "S": "South"},
				},
			},
		},
		Value: []*float64{v(1), v(2), v(3), v(4)},
	}

	table := jsonstat.Decode(ds, 50)
	for _, row := range table.Rows {
		fmt.Printf("%s %s %v\n", row["year"], row["region"], row["value"])
	}
	// Output:
	// 2023 North 1
	// 2023 South 2
	// 2024 North 3
	// 2024 South 4
}
