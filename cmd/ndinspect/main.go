// SPDX-License-Identifier: MIT

// Command ndinspect prints the layouts produced by the ndview package: the
// enumeration order of an extent, the elements a section addresses and the
// row a rank-reducing slice selects.
//
//	ndinspect scan --extent 2,3
//	ndinspect section --extent 4,5 --origin 1,1 --sub 2,3 --fill 'c[0]*10 + c[1]'
//	ndinspect slice --extent 2,3,4 --at 1 --output yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ndinspect:", err)
		os.Exit(1)
	}
}
