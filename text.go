package tably

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeText renders the grid as a plain ASCII-bordered table, useful for
// terminal previews of what the HTML renderer will mount.
func writeText(w io.Writer, g Grid) error {
	if len(g.Rows) == 0 {
		_, err := fmt.Fprintln(w, "No data available")
		return err
	}

	widths := gridWidths(g)

	if err := drawTextLine(w, widths); err != nil {
		return err
	}
	if len(g.Headers) > 0 {
		if err := drawTextRow(w, g.Headers, widths); err != nil {
			return err
		}
		if err := drawTextLine(w, widths); err != nil {
			return err
		}
	}
	for _, row := range g.Rows {
		if err := drawTextRow(w, row, widths); err != nil {
			return err
		}
	}
	return drawTextLine(w, widths)
}

func gridWidths(g Grid) []int {
	n := len(g.Headers)
	for _, row := range g.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	widths := make([]int, n)
	for i, h := range g.Headers {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range g.Rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < n && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func drawTextLine(w io.Writer, widths []int) error {
	var sb strings.Builder
	sb.WriteString("+")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawTextRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	sb.WriteString("|")
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(cell)
		if pad := width - runewidth.StringWidth(cell); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" |")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}
