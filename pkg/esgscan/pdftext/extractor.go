// Package pdftext implements the extraction stage: it walks a directory
// tree of PDF disclosure documents and writes, for each one, a
// page-delimited plain-text file plus a JSON metadata sidecar, and for the
// whole run a JSON extraction log and a human-readable summary.
package pdftext

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/oklog/ulid/v2"

	"github.com/disclosurelab/esgscan/internal/console"
)

const extractionMethod = "ledongthuc/pdf"

// Page is one extracted PDF page. Text may be empty; pages are never
// dropped, so page numbering always matches the source document.
type Page struct {
	Number int
	Text   string
}

// Metadata describes one extracted document. It is written as the JSON
// sidecar and repeated in the run log.
type Metadata struct {
	OriginalFile     string    `json:"original_file"`
	Year             Year      `json:"year"`
	DocumentType     string    `json:"document_type"`
	TotalPages       int       `json:"total_pages"`
	ExtractionDate   time.Time `json:"extraction_date"`
	OutputFile       string    `json:"output_file"`
	ExtractionMethod string    `json:"extraction_method,omitempty"`
}

// Extractor runs the extraction stage over one input directory.
type Extractor struct {
	InputDir  string
	OutputDir string

	now func() time.Time // swappable for tests
}

// NewExtractor returns an extractor for the given directories.
func NewExtractor(inputDir, outputDir string) *Extractor {
	return &Extractor{InputDir: inputDir, OutputDir: outputDir, now: time.Now}
}

// Run processes every PDF under InputDir in sorted path order. A document
// that cannot be read is reported and skipped; the batch continues. The
// returned log covers the documents that succeeded.
func (e *Extractor) Run() (*RunLog, error) {
	if _, err := os.Stat(e.InputDir); err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return nil, err
	}

	console.Banner("ESG DISCLOSURE ANALYSIS - PDF TEXT EXTRACTION")
	console.Printf("Input Directory: %s", e.InputDir)
	console.Printf("Output Directory: %s\n", e.OutputDir)

	files, err := findPDFs(e.InputDir)
	if err != nil {
		return nil, err
	}
	console.Printf("Found %d PDF files to process\n", len(files))
	if len(files) == 0 {
		console.Printf("No PDF files found. Please check the input directory.")
		return nil, nil
	}

	log := &RunLog{
		RunID:          ulid.Make().String(),
		ExtractionDate: e.now(),
	}

	for _, path := range files {
		console.Printf("\nProcessing: %s", filepath.Base(path))

		pages, err := extractPages(path)
		if err != nil {
			console.Fail("Extraction failed for %s: %v", filepath.Base(path), err)
			continue
		}
		console.OK("Extracted %d pages using %s", len(pages), extractionMethod)

		meta, err := e.saveDocument(path, pages)
		if err != nil {
			console.Fail("Saving %s: %v", filepath.Base(path), err)
			continue
		}
		meta.ExtractionMethod = extractionMethod
		log.Files = append(log.Files, meta)
	}
	log.TotalFilesProcessed = len(log.Files)

	if err := e.writeRunLog(log); err != nil {
		return nil, err
	}
	if err := e.writeSummary(log); err != nil {
		return nil, err
	}

	console.Banner("EXTRACTION COMPLETE")
	console.Printf("Total files processed: %d", log.TotalFilesProcessed)
	console.Printf("Output directory: %s", e.OutputDir)
	return log, nil
}

// findPDFs returns every *.pdf path under root, sorted.
func findPDFs(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".pdf") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// extractPages pulls per-page plain text out of one PDF. The pdf reader
// panics on some malformed documents; the recover converts that into the
// per-file error path so the batch can continue.
func extractPages(path string) (pages []Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	total := reader.NumPage()
	pages = make([]Page, 0, total)
	for i := 1; i <= total; i++ {
		text := ""
		page := reader.Page(i)
		if !page.V.IsNull() {
			fonts := make(map[string]*pdf.Font)
			if s, perr := page.GetPlainText(fonts); perr == nil {
				text = s
			} else {
				console.Warn("page %d of %s: %v", i, filepath.Base(path), perr)
			}
		}
		pages = append(pages, Page{Number: i, Text: text})
	}
	return pages, nil
}
