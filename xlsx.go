package tably

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Sheet1"

// writeXLSX exports the grid as a single-sheet spreadsheet. Header fill and
// font colors come from the style; everything else is written plain.
func writeXLSX(w io.Writer, g Grid, st Style) error {
	f := excelize.NewFile()
	defer f.Close()

	if len(g.Headers) > 0 {
		if err := f.SetSheetRow(xlsxSheet, "A1", &g.Headers); err != nil {
			return fmt.Errorf("write header row: %w", err)
		}
		if err := styleXLSXHeader(f, len(g.Headers), st); err != nil {
			return err
		}
	}
	for i, row := range g.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func styleXLSXHeader(f *excelize.File, cols int, st Style) error {
	if st.HeaderBackground == "" && st.HeaderText == "" {
		return nil
	}
	style := excelize.Style{}
	if st.HeaderBackground != "" {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{hexColor(st.HeaderBackground)},
		}
	}
	if st.HeaderText != "" {
		style.Font = &excelize.Font{Color: hexColor(st.HeaderText)}
	}
	id, err := f.NewStyle(&style)
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", last, id); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	return nil
}

// hexColor strips a leading '#' so CSS-style colors from the shared Style
// work with excelize, which wants bare hex.
func hexColor(c string) string {
	return strings.TrimPrefix(c, "#")
}
