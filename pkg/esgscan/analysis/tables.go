package analysis

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Summary table file names, written under the tables/ subdirectory.
const (
	TargetsTableFile   = "targets_by_year_summary.csv"
	LanguageCountsFile = "commitment_language_counts.csv"
	LanguagePctFile    = "commitment_language_percentages.csv"
	ImpactTableFile    = "impact_areas_by_year.csv"
	WorkbookFile       = "analysis_tables.xlsx"
)

func writeTable(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// targetsTable renders the year-over-year target summary. The change
// columns are empty on the first year, where no previous year exists.
func targetsTable(rows []YoYRow) [][]string {
	out := [][]string{{"Year", "Target Mentions", "YoY Change", "YoY % Change"}}
	for _, r := range rows {
		change, pct := "", ""
		if r.HasChange {
			change = strconv.Itoa(r.Change)
			pct = formatPct(r.PctChange)
		}
		out = append(out, []string{
			strconv.Itoa(r.Year), strconv.Itoa(r.Count), change, pct,
		})
	}
	return out
}

// languageCountsTable renders phrase counts per year and strength.
func languageCountsTable(m StrengthMatrix) [][]string {
	header := append([]string{"Year"}, StrengthOrder...)
	out := [][]string{header}
	for _, y := range m.Years {
		row := []string{strconv.Itoa(y)}
		for _, s := range StrengthOrder {
			row = append(row, strconv.Itoa(m.Count(y, s)))
		}
		out = append(out, row)
	}
	return out
}

// languagePctTable renders each strength's share of its year's phrases.
func languagePctTable(m StrengthMatrix) [][]string {
	header := append([]string{"Year"}, StrengthOrder...)
	out := [][]string{header}
	for _, y := range m.Years {
		total := m.RowTotal(y)
		row := []string{strconv.Itoa(y)}
		for _, s := range StrengthOrder {
			pct := 0.0
			if total > 0 {
				pct = float64(m.Count(y, s)) / float64(total) * 100
			}
			row = append(row, formatPct(pct))
		}
		out = append(out, row)
	}
	return out
}

// impactTable renders the impact-area × year occurrence grid, areas as
// rows and years as columns.
func impactTable(m ImpactMatrix) [][]string {
	header := append([]string{"Impact Area"}, yearLabels(m.Years)...)
	out := [][]string{header}
	for _, area := range m.Areas {
		row := []string{area}
		for _, y := range m.Years {
			row = append(row, strconv.Itoa(m.Sum(area, y)))
		}
		out = append(out, row)
	}
	return out
}
