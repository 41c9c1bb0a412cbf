// SPDX-License-Identifier: MIT

// Command cclust clusters a point file under must-link / cannot-link
// constraints with one of the search algorithms.
//
//	cclust data.csv constraints.csv 42 3 memeelitist --trace-dir traces
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
