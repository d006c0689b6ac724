package analysis

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ReportFile is the summary report written at the analysis output root.
const ReportFile = "analysis_summary_report.txt"

// writeReport renders the key-findings text report. Sections for tables
// that loaded empty are omitted; the key metrics block always appears.
func writeReport(path string, d *Data, now time.Time) error {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	fmt.Fprintf(&b, "%s\nESG DISCLOSURE ANALYSIS\nQUANTITATIVE ANALYSIS SUMMARY REPORT\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Report Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "KEY METRICS:\n%s\n", thin)
	fmt.Fprintf(&b, "Total Target/Goal Mentions Extracted: %d\n", len(d.Targets))
	fmt.Fprintf(&b, "Total Language Patterns Identified: %d\n", len(d.Language))
	fmt.Fprintf(&b, "Total Initiative References: %d\n", len(d.Initiatives))
	fmt.Fprintf(&b, "Total Impact Area Mentions: %d\n\n", len(d.ImpactAreas))

	if series := TargetsByYear(d.Targets); len(series) > 0 {
		fmt.Fprintf(&b, "TARGETS & GOALS - YEAR-OVER-YEAR:\n%s\n", thin)
		for _, yc := range series {
			fmt.Fprintf(&b, "  %d: %d mentions\n", yc.Year, yc.Count)
		}
		b.WriteString("\n")
	}

	if shares := StrengthShares(d.Language); len(shares) > 0 {
		fmt.Fprintf(&b, "COMMITMENT LANGUAGE STRENGTH:\n%s\n", thin)
		for _, s := range shares {
			fmt.Fprintf(&b, "  %s: %d (%.1f%%)\n", s.Strength, s.Count, s.Pct)
		}
		b.WriteString("\n")
	}

	if top := TopImpactAreas(d.ImpactAreas, 10); len(top) > 0 {
		fmt.Fprintf(&b, "TOP 10 IMPACT AREAS BY MENTION FREQUENCY:\n%s\n", thin)
		for i, at := range top {
			fmt.Fprintf(&b, "  %d. %s: %d mentions\n", i+1, at.Area, at.Total)
		}
		b.WriteString("\n")
	}

	if types := TargetsByDocumentType(d.Targets); len(types) > 0 {
		fmt.Fprintf(&b, "TARGETS BY DOCUMENT TYPE:\n%s\n", thin)
		for _, tc := range types {
			fmt.Fprintf(&b, "  %s: %d\n", tc.DocumentType, tc.Count)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\nEND OF SUMMARY REPORT\n%s\n", rule, rule)

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
