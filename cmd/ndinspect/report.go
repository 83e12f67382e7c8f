// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
)

// entry is one addressed element.
type entry struct {
	Index  []int `yaml:"index"`
	Source []int `yaml:"source,omitempty"`
	Offset int   `yaml:"offset"`
	Value  *int  `yaml:"value,omitempty"`
}

// report is what every subcommand prints.
type report struct {
	Command    string  `yaml:"command"`
	Extent     []int   `yaml:"extent"`
	Origin     []int   `yaml:"origin,omitempty"`
	View       []int   `yaml:"view"`
	Stride     []int   `yaml:"stride"`
	Contiguous bool    `yaml:"contiguous"`
	Entries    []entry `yaml:"entries"`
}

var (
	coordColor  = color.New(color.FgCyan)
	offsetColor = color.New(color.FgYellow)
	valueColor  = color.New(color.FgGreen, color.Bold)
)

// write renders r in the requested format.
func (r report) write(w io.Writer, format string) error {
	if format == outputYAML {
		b, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)

		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", r.Command, tuple(r.View))
	if r.Origin != nil {
		fmt.Fprintf(&sb, " at %s", tuple(r.Origin))
	}
	fmt.Fprintf(&sb, " of %s, stride %s", tuple(r.Extent), tuple(r.Stride))
	if r.Contiguous {
		sb.WriteString(", contiguous")
	}
	sb.WriteByte('\n')
	for _, e := range r.Entries {
		sb.WriteString("  ")
		sb.WriteString(coordColor.Sprint(tuple(e.Index)))
		if e.Source != nil {
			sb.WriteString(" <- ")
			sb.WriteString(coordColor.Sprint(tuple(e.Source)))
		}
		sb.WriteString(" @")
		sb.WriteString(offsetColor.Sprint(e.Offset))
		if e.Value != nil {
			sb.WriteString(" = ")
			sb.WriteString(valueColor.Sprint(*e.Value))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// tuple renders {a, b, c}.
func tuple(c []int) string {
	return "{" + strings.Join(lo.Map(c, func(x int, _ int) string {
		return strconv.Itoa(x)
	}), ", ") + "}"
}
