package pdftext

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/disclosurelab/esgscan/internal/console"
)

// Run-level output file names.
const (
	LogFile     = "extraction_log.json"
	SummaryFile = "extraction_summary.txt"
)

// RunLog records one extraction run: which documents were extracted and
// with what metadata. The ULID run ID ties the log to the run that
// produced it.
type RunLog struct {
	RunID               string     `json:"run_id"`
	ExtractionDate      time.Time  `json:"extraction_date"`
	TotalFilesProcessed int        `json:"total_files_processed"`
	Files               []Metadata `json:"files"`
}

func (e *Extractor) writeRunLog(log *RunLog) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(e.OutputDir, LogFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	console.Printf("Extraction log: %s", path)
	return nil
}

// writeSummary renders the human-readable run summary grouped by year.
func (e *Extractor) writeSummary(log *RunLog) error {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 40)

	fmt.Fprintf(&b, "ESG DISCLOSURE ANALYSIS - EXTRACTION SUMMARY\n%s\n\n", rule)
	fmt.Fprintf(&b, "Extraction Date: %s\n", log.ExtractionDate.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total Files Processed: %d\n", log.TotalFilesProcessed)

	byYear := make(map[string][]Metadata)
	for _, m := range log.Files {
		key := m.Year.String()
		byYear[key] = append(byYear[key], m)
	}
	years := make([]string, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Strings(years)

	for _, year := range years {
		fmt.Fprintf(&b, "\n%s:\n%s\n", year, thin)
		for _, m := range byYear[year] {
			fmt.Fprintf(&b, "  • %s\n", m.DocumentType)
			fmt.Fprintf(&b, "    File: %s\n", m.OriginalFile)
			fmt.Fprintf(&b, "    Pages: %d\n", m.TotalPages)
			fmt.Fprintf(&b, "    Output: %s\n\n", filepath.Base(m.OutputFile))
		}
	}

	return os.WriteFile(filepath.Join(e.OutputDir, SummaryFile), []byte(b.String()), 0o644)
}
