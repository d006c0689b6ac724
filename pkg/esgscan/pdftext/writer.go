package pdftext

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disclosurelab/esgscan/internal/console"
)

const headerTitle = "ESG DISCLOSURE ANALYSIS - EXTRACTED TEXT"

// saveDocument writes the page-delimited text file and its JSON metadata
// sidecar for one extracted document. Content is assembled in memory
// first so a failed document never leaves a partial file behind.
func (e *Extractor) saveDocument(pdfPath string, pages []Page) (Metadata, error) {
	base := filepath.Base(pdfPath)
	stem := SafeStem(strings.TrimSuffix(base, filepath.Ext(base)))
	year := YearFromPath(pdfPath)
	docType := DocumentType(base)
	now := e.now()

	outName := fmt.Sprintf("%s_%s_extracted.txt", year, stem)
	outPath := filepath.Join(e.OutputDir, outName)

	meta := Metadata{
		OriginalFile:   base,
		Year:           year,
		DocumentType:   docType,
		TotalPages:     len(pages),
		ExtractionDate: now,
		OutputFile:     outPath,
	}

	content := renderExtractedText(meta, pages, now)
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return Metadata{}, err
	}

	metaName := fmt.Sprintf("%s_%s_metadata.json", year, stem)
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return Metadata{}, err
	}
	if err := os.WriteFile(filepath.Join(e.OutputDir, metaName), data, 0o644); err != nil {
		return Metadata{}, err
	}

	console.Printf("  → Saved to: %s", outName)
	return meta, nil
}

// renderExtractedText produces the header block followed by each page
// wrapped in its delimiter. The framing here is the parse contract of the
// pagetext package; the two must stay in sync.
func renderExtractedText(meta Metadata, pages []Page, now time.Time) string {
	var b strings.Builder
	hashRule := strings.Repeat("#", 80)
	eqRule := strings.Repeat("=", 80)

	fmt.Fprintf(&b, "%s\n%s\n%s\n", hashRule, headerTitle, hashRule)
	fmt.Fprintf(&b, "Source File: %s\n", meta.OriginalFile)
	fmt.Fprintf(&b, "Year: %s\n", meta.Year)
	fmt.Fprintf(&b, "Document Type: %s\n", meta.DocumentType)
	fmt.Fprintf(&b, "Total Pages: %d\n", meta.TotalPages)
	fmt.Fprintf(&b, "Extraction Date: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%s\n\n", hashRule)

	for _, page := range pages {
		fmt.Fprintf(&b, "\n%s\n[PAGE %d OF %d]\n%s\n", eqRule, page.Number, len(pages), eqRule)
		b.WriteString(page.Text)
		b.WriteString("\n")
	}
	return b.String()
}
