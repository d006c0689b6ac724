// Command analyze aggregates the tagged record tables and writes charts,
// summary tables, a combined workbook, and a text report.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/disclosurelab/esgscan/pkg/esgscan/analysis"
)

func main() {
	var (
		data   = flag.String("data", "structured_data_output", "Directory of record table CSVs")
		output = flag.String("output", "analysis_output", "Directory for charts, tables, and the report")
	)
	flag.Parse()

	if _, err := os.Stat(*data); err != nil {
		log.Fatalf("data directory not found: %s (run extract-data first)", *data)
	}

	a := analysis.New(*data, *output)
	if err := a.Run(); err != nil {
		log.Fatalf("analyze: %v", err)
	}
}
