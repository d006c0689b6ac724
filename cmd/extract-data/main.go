// Command extract-data tags extracted disclosure text against the
// keyword and regex pattern sets and writes the four record tables as
// CSV, plus a statistics summary.
package main

import (
	"flag"
	"log"
	"path/filepath"
	"sort"
	"time"

	"github.com/disclosurelab/esgscan/internal/console"
	"github.com/disclosurelab/esgscan/pkg/esgscan/config"
	"github.com/disclosurelab/esgscan/pkg/esgscan/dataset"
	"github.com/disclosurelab/esgscan/pkg/esgscan/pagetext"
	"github.com/disclosurelab/esgscan/pkg/esgscan/tagger"
)

func main() {
	var (
		input    = flag.String("input", "text_extraction_output", "Directory of *_extracted.txt files")
		output   = flag.String("output", "structured_data_output", "Directory for record tables")
		patterns = flag.String("patterns", "", "Optional YAML pattern config; defaults built in")
	)
	flag.Parse()

	pats := config.Default()
	if *patterns != "" {
		loaded, err := config.Load(*patterns)
		if err != nil {
			log.Fatalf("load patterns: %v", err)
		}
		pats = loaded
	}

	tg, err := tagger.New(pats)
	if err != nil {
		log.Fatalf("compile patterns: %v", err)
	}

	console.Banner("ESG DISCLOSURE ANALYSIS - DATA EXTRACTION")

	files, err := filepath.Glob(filepath.Join(*input, "*_extracted.txt"))
	if err != nil {
		log.Fatalf("list text files: %v", err)
	}
	sort.Strings(files)
	console.Printf("Found %d text files to process\n", len(files))
	if len(files) == 0 {
		console.Printf("No extracted text files found.")
		console.Printf("Please run extract-text first.")
		return
	}

	var result tagger.Result
	for _, path := range files {
		console.Printf("Processing: %s", filepath.Base(path))

		meta, pages, err := pagetext.ParseFile(path)
		if err != nil {
			console.Fail("Error processing %s: %v", filepath.Base(path), err)
			continue
		}
		result.Append(tg.TagDocument(meta, pages))
		console.OK("Extracted data from %d pages", len(pages))
	}

	console.Banner("SAVING EXTRACTED DATA")
	if err := dataset.WriteAll(*output, result); err != nil {
		log.Fatalf("write tables: %v", err)
	}
	console.OK("Saved %d target entries to: %s", len(result.Targets), dataset.TargetsFile)
	console.OK("Saved %d language entries to: %s", len(result.Language), dataset.LanguageFile)
	console.OK("Saved %d initiative entries to: %s", len(result.Initiatives), dataset.InitiativesFile)
	console.OK("Saved %d impact area entries to: %s", len(result.ImpactAreas), dataset.ImpactAreasFile)

	statsPath := filepath.Join(*output, dataset.StatisticsFile)
	if err := dataset.WriteStatistics(statsPath, result, time.Now()); err != nil {
		log.Fatalf("write statistics: %v", err)
	}
	console.OK("Saved summary statistics to: %s", dataset.StatisticsFile)
	console.Printf("\nAll data saved to: %s", *output)
}
