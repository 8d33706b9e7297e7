package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/padding"

	"github.com/pdok/gridstep/direction"
)

const columnWidth = 11

var tableColumns = []struct {
	header string
	fn     func(direction.Direction) string
}{
	{"direction", direction.Direction.String},
	{"opposite", func(d direction.Direction) string { return d.Opposite().String() }},
	{"cw", func(d direction.Direction) string { return d.RotateCW().String() }},
	{"ccw", func(d direction.Direction) string { return d.RotateCCW().String() }},
	{"flipV", func(d direction.Direction) string { return d.FlipV().String() }},
	{"flipH", func(d direction.Direction) string { return d.FlipH().String() }},
	{"readable", func(d direction.Direction) string { return d.Readable().String() }},
	{"delta", func(d direction.Direction) string {
		dx, dy := d.Delta()
		return fmt.Sprintf("%d,%d", dx, dy)
	}},
}

// printTable writes one row per direction with the result of every unary operation.
func printTable(w io.Writer) {
	cells := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		cells[i] = padding.String(col.header, columnWidth)
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, ""), " "))

	for _, d := range direction.All {
		for i, col := range tableColumns {
			cells[i] = padding.String(col.fn(d), columnWidth)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, ""), " "))
	}
}
