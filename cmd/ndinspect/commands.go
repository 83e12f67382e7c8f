// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvmorph/ndview"
)

var errSliceRank = errors.New("slice needs an extent of rank 2..5")

// extentFlag registers the required --extent flag on fs.
func extentFlag(cmd *cobra.Command, fs *pflag.FlagSet, p *[]int) {
	fs.IntSliceVarP(p, "extent", "e", nil, "extent, comma separated (rank 1..5)")
	_ = cmd.MarkFlagRequired("extent")
}

func checkRank(ext []int) error {
	if len(ext) < 1 || len(ext) > 5 {
		return fmt.Errorf("--extent %s: %w", tuple(ext), errRank)
	}

	return nil
}

//----------------------------------------------------------------------------//
// scan
//----------------------------------------------------------------------------//

func newScanCmd(cfg *globalConfig) *cobra.Command {
	var ext []int
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Print the row-major enumeration of an extent with linear offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkRank(ext); err != nil {
				return err
			}
			var (
				r   report
				err error
			)
			switch len(ext) {
			case 1:
				r, err = scan[ndview.R1](ext)
			case 2:
				r, err = scan[ndview.R2](ext)
			case 3:
				r, err = scan[ndview.R3](ext)
			case 4:
				r, err = scan[ndview.R4](ext)
			case 5:
				r, err = scan[ndview.R5](ext)
			}
			if err != nil {
				return err
			}
			cfg.log.Debug("scan", "extent", tuple(ext), "count", len(r.Entries))

			return r.write(cmd.OutOrStdout(), cfg.Output)
		},
	}
	extentFlag(cmd, cmd.Flags(), &ext)

	return cmd
}

func scan[R ndview.Rank](ext []int) (report, error) {
	b, err := ndview.NewBounds[R](ext...)
	if err != nil {
		return report{}, err
	}
	r := report{
		Command:    "scan",
		Extent:     ext,
		View:       ext,
		Stride:     indexInts(b.Strides()),
		Contiguous: true,
	}
	for i := range b.All() {
		off, err := b.Linear(i)
		if err != nil {
			return report{}, err
		}
		r.Entries = append(r.Entries, entry{Index: indexInts(i), Offset: off})
	}

	return r, nil
}

//----------------------------------------------------------------------------//
// section
//----------------------------------------------------------------------------//

func newSectionCmd(cfg *globalConfig) *cobra.Command {
	var (
		ext, origin, sub []int
		fill             string
	)
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Fill a buffer, take a section of it and print the addressed elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkRank(ext); err != nil {
				return err
			}
			if !cmd.Flags().Changed("sub") {
				sub = nil
			}
			var (
				r   report
				err error
			)
			switch len(ext) {
			case 1:
				r, err = section[ndview.R1](ext, origin, sub, fill)
			case 2:
				r, err = section[ndview.R2](ext, origin, sub, fill)
			case 3:
				r, err = section[ndview.R3](ext, origin, sub, fill)
			case 4:
				r, err = section[ndview.R4](ext, origin, sub, fill)
			case 5:
				r, err = section[ndview.R5](ext, origin, sub, fill)
			}
			if err != nil {
				return err
			}
			cfg.log.Debug("section", "extent", tuple(ext), "origin", tuple(origin), "view", tuple(r.View))

			return r.write(cmd.OutOrStdout(), cfg.Output)
		},
	}
	fs := cmd.Flags()
	extentFlag(cmd, fs, &ext)
	fs.IntSliceVar(&origin, "origin", nil, "section origin, comma separated")
	fs.IntSliceVar(&sub, "sub", nil, "section extent (default: the rest of the extent)")
	fs.StringVar(&fill, "fill", defaultFill, "integer expression over n (linear position) and c (coordinate)")
	_ = cmd.MarkFlagRequired("origin")

	return cmd
}

func section[R ndview.Rank](ext, origin, sub []int, fill string) (report, error) {
	v, err := filled[R](ext, fill)
	if err != nil {
		return report{}, err
	}
	o, err := ndview.NewIndex[R](origin...)
	if err != nil {
		return report{}, fmt.Errorf("--origin %s: %w", tuple(origin), err)
	}

	var s ndview.StridedArrayView[int, R]
	if sub == nil {
		s, err = v.SectionFrom(o)
	} else {
		var sb ndview.Bounds[R]
		if sb, err = ndview.NewBounds[R](sub...); err != nil {
			return report{}, fmt.Errorf("--sub %s: %w", tuple(sub), err)
		}
		s, err = v.Section(o, sb)
	}
	if err != nil {
		return report{}, err
	}

	r := report{
		Command:    "section",
		Extent:     ext,
		Origin:     origin,
		View:       boundsInts(s.Bounds()),
		Stride:     indexInts(s.Stride()),
		Contiguous: s.IsContiguous(),
	}
	for l, x := range s.All() {
		src := o.Add(l)
		off, err := v.Bounds().Linear(src)
		if err != nil {
			return report{}, err
		}
		r.Entries = append(r.Entries, entry{
			Index:  indexInts(l),
			Source: indexInts(src),
			Offset: off,
			Value:  &x,
		})
	}

	return r, nil
}

//----------------------------------------------------------------------------//
// slice
//----------------------------------------------------------------------------//

func newSliceCmd(cfg *globalConfig) *cobra.Command {
	var (
		ext  []int
		at   int
		fill string
	)
	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Fix the outermost coordinate and print the resulting lower-rank view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkRank(ext); err != nil {
				return err
			}
			var (
				r   report
				err error
			)
			switch len(ext) {
			case 1:
				return fmt.Errorf("--extent %s: %w", tuple(ext), errSliceRank)
			case 2:
				r, err = slice(ext, at, fill, ndview.Slice2[int])
			case 3:
				r, err = slice(ext, at, fill, ndview.Slice3[int])
			case 4:
				r, err = slice(ext, at, fill, ndview.Slice4[int])
			case 5:
				r, err = slice(ext, at, fill, ndview.Slice5[int])
			}
			if err != nil {
				return err
			}
			cfg.log.Debug("slice", "extent", tuple(ext), "at", at, "view", tuple(r.View))

			return r.write(cmd.OutOrStdout(), cfg.Output)
		},
	}
	fs := cmd.Flags()
	extentFlag(cmd, fs, &ext)
	fs.IntVar(&at, "at", 0, "outermost coordinate to fix")
	fs.StringVar(&fill, "fill", defaultFill, "integer expression over n (linear position) and c (coordinate)")

	return cmd
}

func slice[R, Q ndview.Rank](
	ext []int,
	at int,
	fill string,
	cut func(ndview.ArrayView[int, R], int) (ndview.ArrayView[int, Q], error),
) (report, error) {
	v, err := filled[R](ext, fill)
	if err != nil {
		return report{}, err
	}
	sl, err := cut(v, at)
	if err != nil {
		return report{}, fmt.Errorf("--at %d: %w", at, err)
	}

	r := report{
		Command:    "slice",
		Extent:     ext,
		Origin:     []int{at},
		View:       boundsInts(sl.Bounds()),
		Stride:     indexInts(sl.Stride()),
		Contiguous: true,
	}
	for l, x := range sl.All() {
		src := append([]int{at}, indexInts(l)...)
		si, err := ndview.NewIndex[R](src...)
		if err != nil {
			return report{}, err
		}
		off, err := v.Bounds().Linear(si)
		if err != nil {
			return report{}, err
		}
		r.Entries = append(r.Entries, entry{
			Index:  indexInts(l),
			Source: src,
			Offset: off,
			Value:  &x,
		})
	}

	return r, nil
}

//----------------------------------------------------------------------------//
// helpers
//----------------------------------------------------------------------------//

// filled allocates a buffer of extent ext and fills it with the expression.
func filled[R ndview.Rank](ext []int, fill string) (ndview.ArrayView[int, R], error) {
	b, err := ndview.NewBounds[R](ext...)
	if err != nil {
		return ndview.ArrayView[int, R]{}, fmt.Errorf("--extent %s: %w", tuple(ext), err)
	}
	f, err := newFiller(fill)
	if err != nil {
		return ndview.ArrayView[int, R]{}, err
	}
	buf := make([]int, b.TotalCount())
	for i := range b.All() {
		n, err := b.Linear(i)
		if err != nil {
			return ndview.ArrayView[int, R]{}, err
		}
		if buf[n], err = f.value(n, indexInts(i)); err != nil {
			return ndview.ArrayView[int, R]{}, err
		}
	}

	return ndview.NewArrayView(buf, b)
}

func indexInts[R ndview.Rank](i ndview.Index[R]) []int {
	out := make([]int, i.Rank())
	for d := range out {
		out[d], _ = i.At(d)
	}

	return out
}

func boundsInts[R ndview.Rank](b ndview.Bounds[R]) []int {
	out := make([]int, b.Rank())
	for d := range out {
		out[d], _ = b.Dim(d)
	}

	return out
}
