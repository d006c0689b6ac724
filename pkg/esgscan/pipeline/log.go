package pipeline

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// LogFile is the execution log written next to the output directories.
const LogFile = "analysis_execution_log.txt"

// WriteExecutionLog records which stages completed and where the outputs
// live.
func WriteExecutionLog(path string, executed time.Time, results []StageResult) error {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	fmt.Fprintf(&b, "%s\nESG DISCLOSURE ANALYSIS\nMASTER ANALYSIS EXECUTION LOG\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Execution Date: %s\n\n", executed.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "COMPLETED STEPS:\n%s\n", thin)
	for _, r := range results {
		if r.OK {
			fmt.Fprintf(&b, "  ✓ %s\n", r.Description)
		}
	}
	b.WriteString("\n")

	var failed []StageResult
	for _, r := range results {
		if !r.OK {
			failed = append(failed, r)
		}
	}
	if len(failed) > 0 {
		fmt.Fprintf(&b, "FAILED STEPS:\n%s\n", thin)
		for _, r := range failed {
			fmt.Fprintf(&b, "  ✗ %s\n", r.Description)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "OUTPUT DIRECTORIES:\n%s\n", thin)
	b.WriteString("  Text Extraction: text_extraction_output/\n")
	b.WriteString("  Structured Data: structured_data_output/\n")
	b.WriteString("  Analysis Results: analysis_output/\n")
	b.WriteString("    - Charts: analysis_output/charts/\n")
	b.WriteString("    - Tables: analysis_output/tables/\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
