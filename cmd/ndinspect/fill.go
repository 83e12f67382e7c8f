// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// defaultFill fills every element with its linear position.
const defaultFill = "n"

// filler evaluates an integer expression over n (the linear position) and c
// (the coordinate as a list).
type filler struct {
	program *vm.Program
}

func newFiller(src string) (*filler, error) {
	env := map[string]any{"n": 0, "c": []int{}}
	program, err := expr.Compile(src, expr.Env(env), expr.AsInt())
	if err != nil {
		return nil, fmt.Errorf("--fill %q: %w", src, err)
	}

	return &filler{program: program}, nil
}

// value evaluates the expression for one element.
func (f *filler) value(n int, c []int) (int, error) {
	out, err := vm.Run(f.program, map[string]any{"n": n, "c": c})
	if err != nil {
		return 0, fmt.Errorf("fill at %s: %w", tuple(c), err)
	}
	v, ok := out.(int)
	if !ok {
		return 0, fmt.Errorf("fill at %s: got %T, want int", tuple(c), out)
	}

	return v, nil
}
