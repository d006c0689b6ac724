// Command extract-text walks a directory of PDF disclosure documents and
// writes page-delimited text files plus extraction metadata.
package main

import (
	"flag"
	"log"

	"github.com/disclosurelab/esgscan/pkg/esgscan/pdftext"
)

func main() {
	var (
		input  = flag.String("input", "extracted_reports", "Directory of PDF files to extract")
		output = flag.String("output", "text_extraction_output", "Directory for extracted text and metadata")
	)
	flag.Parse()

	extractor := pdftext.NewExtractor(*input, *output)
	if _, err := extractor.Run(); err != nil {
		log.Fatalf("extract: %v", err)
	}
}
