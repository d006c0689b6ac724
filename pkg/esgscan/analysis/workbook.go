package analysis

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook collects the summary tables into one Excel workbook, a
// sheet per table, for readers who want the numbers without the CSVs.
func writeWorkbook(path string, sheets map[string][][]string, order []string) error {
	f := excelize.NewFile()
	defer f.Close()

	wrote := false
	for _, name := range order {
		rows, ok := sheets[name]
		if !ok {
			continue
		}
		wrote = true
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return err
			}
			vals := make([]interface{}, len(row))
			for j, v := range row {
				vals[j] = v
			}
			if err := f.SetSheetRow(name, cell, &vals); err != nil {
				return err
			}
		}
	}

	if wrote {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
