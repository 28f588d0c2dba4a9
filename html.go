package tably

import (
	"fmt"
	"html"
	"io"
	"strings"
)

func writeHTML(w io.Writer, g Grid, st Style) error {
	if len(g.Rows) == 0 {
		_, err := fmt.Fprintln(w, `<p class="tably-empty">No data available</p>`)
		return err
	}

	if _, err := fmt.Fprintf(w, "<table%s%s>\n", classAttr(st.Class), styleAttr(st.tableStyle())); err != nil {
		return err
	}

	headerStyle := styleAttr(st.headerStyle())
	cellStyle := styleAttr(st.cellStyle())

	if len(g.Headers) > 0 {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, col := range g.Headers {
			if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", headerStyle, html.EscapeString(col)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range g.Rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", cellStyle, html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func classAttr(class string) string {
	if class == "" {
		return ""
	}
	return ` class="` + html.EscapeString(class) + `"`
}

func styleAttr(style string) string {
	if style == "" {
		return ""
	}
	return ` style="` + html.EscapeString(style) + `"`
}

// borderDecl returns the CSS border declaration used when Outline is set.
func (st Style) borderDecl() string {
	color := st.Border
	if color == "" {
		color = "black"
	}
	return "border: 1px solid " + color
}

func (st Style) tableStyle() string {
	var parts []string
	if st.Outline {
		parts = append(parts, st.borderDecl(), "border-collapse: collapse")
	}
	if st.Background != "" {
		parts = append(parts, "background-color: "+st.Background)
	}
	if st.Text != "" {
		parts = append(parts, "color: "+st.Text)
	}
	return strings.Join(parts, "; ")
}

func (st Style) headerStyle() string {
	var parts []string
	if st.Outline {
		parts = append(parts, st.borderDecl())
	}
	if st.HeaderBackground != "" {
		parts = append(parts, "background-color: "+st.HeaderBackground)
	}
	if st.HeaderText != "" {
		parts = append(parts, "color: "+st.HeaderText)
	}
	if st.CellMinWidth != "" {
		parts = append(parts, "min-width: "+st.CellMinWidth)
	}
	return strings.Join(parts, "; ")
}

func (st Style) cellStyle() string {
	var parts []string
	if st.Outline {
		parts = append(parts, st.borderDecl())
	}
	if st.CellMinWidth != "" {
		parts = append(parts, "min-width: "+st.CellMinWidth)
	}
	return strings.Join(parts, "; ")
}
