// Command run-analysis orchestrates the full pipeline: text extraction,
// data extraction, then quantitative analysis, each as its own process.
// Stage binaries are resolved next to this binary first, then on PATH.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/disclosurelab/esgscan/internal/console"
	"github.com/disclosurelab/esgscan/pkg/esgscan/pipeline"
)

func main() {
	var (
		input = flag.String("input", "extracted_reports", "Directory of PDF files to analyze")
	)
	flag.Parse()

	start := time.Now()
	console.Banner("ESG DISCLOSURE ANALYSIS")
	console.Printf("Master Analysis Pipeline")
	console.Printf("Start Time: %s\n", start.Format("2006-01-02 15:04:05"))

	if err := pipeline.CheckInput(*input); err != nil {
		console.Printf("\nAnalysis cannot proceed. Please fix the issues above.")
		os.Exit(1)
	}

	stages := []pipeline.Stage{
		{
			Description: "PDF Text Extraction",
			Command:     resolveBinary("extract-text"),
			Args:        []string{"-input", *input, "-output", "text_extraction_output"},
		},
		{
			Description: "ESG Data Extraction",
			Command:     resolveBinary("extract-data"),
			Args:        []string{"-input", "text_extraction_output", "-output", "structured_data_output"},
		},
		{
			Description: "Quantitative Analysis & Visualization",
			Command:     resolveBinary("analyze"),
			Args:        []string{"-data", "structured_data_output", "-output", "analysis_output"},
		},
	}

	runner := pipeline.NewRunner(stages)
	results := runner.RunAll(context.Background())

	if err := pipeline.WriteExecutionLog(pipeline.LogFile, time.Now(), results); err != nil {
		log.Fatalf("write execution log: %v", err)
	}
	console.OK("Analysis log saved to: %s", pipeline.LogFile)

	passed := 0
	for _, r := range results {
		if r.OK {
			passed++
		}
	}

	console.Banner("ANALYSIS PIPELINE COMPLETE")
	console.Printf("End Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	console.Printf("Successful Steps: %d/%d", passed, len(results))
	console.Printf("Failed Steps: %d/%d\n", len(results)-passed, len(results))

	if passed < len(results) {
		console.Warn("Some steps failed. Please review the output above.")
	} else {
		console.OK("All analysis steps completed successfully!")
	}

	console.Printf("\nOutput Locations:")
	console.Printf("  • Extracted Text: text_extraction_output/")
	console.Printf("  • Structured Data: structured_data_output/")
	console.Printf("  • Analysis Results: analysis_output/")
	console.Printf("    - Charts: analysis_output/charts/")
	console.Printf("    - Tables: analysis_output/tables/")
	console.Printf("    - Summary: analysis_output/analysis_summary_report.txt")

	if passed < len(results) {
		os.Exit(1)
	}
}

// resolveBinary prefers a stage binary installed next to this one so the
// pipeline works from a build directory without PATH setup.
func resolveBinary(name string) string {
	if self, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(self), name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if path, err := exec.LookPath(name); err == nil {
		return path
	}
	return name
}
