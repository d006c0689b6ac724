// Package dataset reads and writes the four flat CSV tables that carry
// tagged records between the tagging and analysis stages, plus the
// extraction statistics report.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disclosurelab/esgscan/pkg/esgscan/tagger"
)

// Fixed output file names; these are the wire contract with the analysis
// stage.
const (
	TargetsFile     = "extracted_targets_goals.csv"
	LanguageFile    = "extracted_language_patterns.csv"
	InitiativesFile = "extracted_initiatives.csv"
	ImpactAreasFile = "extracted_impact_areas.csv"
	StatisticsFile  = "extraction_statistics.txt"
)

// listSep joins the percentages and target_years list columns.
const listSep = ", "

// WriteAll writes the four tables into dir. Empty tables still produce a
// header-only file so downstream consumers can distinguish "ran with zero
// matches" from "never ran".
func WriteAll(dir string, res tagger.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := WriteTargets(filepath.Join(dir, TargetsFile), res.Targets); err != nil {
		return err
	}
	if err := WriteLanguage(filepath.Join(dir, LanguageFile), res.Language); err != nil {
		return err
	}
	if err := WriteInitiatives(filepath.Join(dir, InitiativesFile), res.Initiatives); err != nil {
		return err
	}
	return WriteImpactAreas(filepath.Join(dir, ImpactAreasFile), res.ImpactAreas)
}

// WriteTargets writes the targets/goals table.
func WriteTargets(path string, recs []tagger.TargetRecord) error {
	rows := make([][]string, 0, len(recs)+1)
	rows = append(rows, []string{
		"year", "document", "source_file", "page_number",
		"target_text", "percentages", "target_years", "keyword_matched",
	})
	for _, r := range recs {
		rows = append(rows, []string{
			r.Year, r.Document, r.SourceFile, strconv.Itoa(r.PageNumber),
			r.TargetText,
			strings.Join(r.Percentages, listSep),
			strings.Join(r.TargetYears, listSep),
			r.KeywordMatched,
		})
	}
	return writeCSV(path, rows)
}

// WriteLanguage writes the commitment-language table.
func WriteLanguage(path string, recs []tagger.LanguageRecord) error {
	rows := make([][]string, 0, len(recs)+1)
	rows = append(rows, []string{
		"year", "document", "page_number", "commitment_strength", "phrase", "context",
	})
	for _, r := range recs {
		rows = append(rows, []string{
			r.Year, r.Document, strconv.Itoa(r.PageNumber),
			r.CommitmentStrength, r.Phrase, r.Context,
		})
	}
	return writeCSV(path, rows)
}

// WriteInitiatives writes the initiatives table.
func WriteInitiatives(path string, recs []tagger.InitiativeRecord) error {
	rows := make([][]string, 0, len(recs)+1)
	rows = append(rows, []string{
		"year", "document", "page_number", "initiative_text", "keyword_matched", "investment_amount",
	})
	for _, r := range recs {
		rows = append(rows, []string{
			r.Year, r.Document, strconv.Itoa(r.PageNumber),
			r.InitiativeText, r.KeywordMatched, r.InvestmentAmount,
		})
	}
	return writeCSV(path, rows)
}

// WriteImpactAreas writes the impact-area mentions table.
func WriteImpactAreas(path string, recs []tagger.ImpactAreaRecord) error {
	rows := make([][]string, 0, len(recs)+1)
	rows = append(rows, []string{
		"year", "document", "page_number", "impact_area", "keyword", "occurrence_count", "example_context",
	})
	for _, r := range recs {
		rows = append(rows, []string{
			r.Year, r.Document, strconv.Itoa(r.PageNumber),
			r.ImpactArea, r.Keyword, strconv.Itoa(r.OccurrenceCount), r.ExampleContext,
		})
	}
	return writeCSV(path, rows)
}

// ReadTargets loads the targets/goals table.
func ReadTargets(path string) ([]tagger.TargetRecord, error) {
	rows, idx, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	recs := make([]tagger.TargetRecord, 0, len(rows))
	for _, row := range rows {
		page, err := atoiField(row, idx, "page_number")
		if err != nil {
			return nil, err
		}
		recs = append(recs, tagger.TargetRecord{
			Year:           field(row, idx, "year"),
			Document:       field(row, idx, "document"),
			SourceFile:     field(row, idx, "source_file"),
			PageNumber:     page,
			TargetText:     field(row, idx, "target_text"),
			Percentages:    splitList(field(row, idx, "percentages")),
			TargetYears:    splitList(field(row, idx, "target_years")),
			KeywordMatched: field(row, idx, "keyword_matched"),
		})
	}
	return recs, nil
}

// ReadLanguage loads the commitment-language table.
func ReadLanguage(path string) ([]tagger.LanguageRecord, error) {
	rows, idx, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	recs := make([]tagger.LanguageRecord, 0, len(rows))
	for _, row := range rows {
		page, err := atoiField(row, idx, "page_number")
		if err != nil {
			return nil, err
		}
		recs = append(recs, tagger.LanguageRecord{
			Year:               field(row, idx, "year"),
			Document:           field(row, idx, "document"),
			PageNumber:         page,
			CommitmentStrength: field(row, idx, "commitment_strength"),
			Phrase:             field(row, idx, "phrase"),
			Context:            field(row, idx, "context"),
		})
	}
	return recs, nil
}

// ReadInitiatives loads the initiatives table.
func ReadInitiatives(path string) ([]tagger.InitiativeRecord, error) {
	rows, idx, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	recs := make([]tagger.InitiativeRecord, 0, len(rows))
	for _, row := range rows {
		page, err := atoiField(row, idx, "page_number")
		if err != nil {
			return nil, err
		}
		recs = append(recs, tagger.InitiativeRecord{
			Year:             field(row, idx, "year"),
			Document:         field(row, idx, "document"),
			PageNumber:       page,
			InitiativeText:   field(row, idx, "initiative_text"),
			KeywordMatched:   field(row, idx, "keyword_matched"),
			InvestmentAmount: field(row, idx, "investment_amount"),
		})
	}
	return recs, nil
}

// ReadImpactAreas loads the impact-area mentions table.
func ReadImpactAreas(path string) ([]tagger.ImpactAreaRecord, error) {
	rows, idx, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	recs := make([]tagger.ImpactAreaRecord, 0, len(rows))
	for _, row := range rows {
		page, err := atoiField(row, idx, "page_number")
		if err != nil {
			return nil, err
		}
		count, err := atoiField(row, idx, "occurrence_count")
		if err != nil {
			return nil, err
		}
		recs = append(recs, tagger.ImpactAreaRecord{
			Year:            field(row, idx, "year"),
			Document:        field(row, idx, "document"),
			PageNumber:      page,
			ImpactArea:      field(row, idx, "impact_area"),
			Keyword:         field(row, idx, "keyword"),
			OccurrenceCount: count,
			ExampleContext:  field(row, idx, "example_context"),
		})
	}
	return recs, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// readCSV returns data rows and a header-name → column-index map.
func readCSV(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("read %s: missing header", path)
	}
	idx := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		idx[name] = i
	}
	return all[1:], idx, nil
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func atoiField(row []string, idx map[string]int, name string) (int, error) {
	s := field(row, idx, name)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSep)
}
