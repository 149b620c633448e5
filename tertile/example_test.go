// SPDX-License-Identifier: MIT

package tertile_test

import (
	"fmt"

	"github.com/katalvlaran/eigenkit/tertile"
)

// ExampleCuts discretizes a small column into three equal-frequency bands.
func ExampleCuts() {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	cuts, _ := tertile.Cuts(xs)

	for _, v := range xs {
		fmt.Printf("%v ", cuts.Level(v))
	}
	fmt.Println()

	// Output:
	// Low Low Low Medium Medium Medium High High High
}
