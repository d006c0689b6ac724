package dataset

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/disclosurelab/esgscan/pkg/esgscan/tagger"
)

// WriteStatistics writes the extraction_statistics.txt run report: the
// four table totals plus targets-by-year, language-by-strength, and
// top-10 impact area breakdowns. All counts may legitimately be zero.
func WriteStatistics(path string, res tagger.Result, now time.Time) error {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 40)

	fmt.Fprintf(&b, "ESG DISCLOSURE ANALYSIS - EXTRACTION STATISTICS\n%s\n\n", rule)
	fmt.Fprintf(&b, "Extraction Date: %s\n\n", now.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "Total Targets/Goals Extracted: %d\n", len(res.Targets))
	fmt.Fprintf(&b, "Total Language Patterns Identified: %d\n", len(res.Language))
	fmt.Fprintf(&b, "Total Initiatives Cataloged: %d\n", len(res.Initiatives))
	fmt.Fprintf(&b, "Total Impact Area Mentions: %d\n\n", len(res.ImpactAreas))

	if len(res.Targets) > 0 {
		fmt.Fprintf(&b, "\nTargets by Year:\n%s\n", thin)
		for _, yc := range targetsByYear(res.Targets) {
			fmt.Fprintf(&b, "  %s: %d\n", yc.key, yc.count)
		}
	}

	if len(res.Language) > 0 {
		fmt.Fprintf(&b, "\nLanguage Patterns by Strength:\n%s\n", thin)
		for _, sc := range languageByStrength(res.Language) {
			fmt.Fprintf(&b, "  %s: %d\n", sc.key, sc.count)
		}
	}

	if len(res.ImpactAreas) > 0 {
		fmt.Fprintf(&b, "\nTop Impact Areas Mentioned:\n%s\n", thin)
		for _, ac := range topImpactAreas(res.ImpactAreas, 10) {
			fmt.Fprintf(&b, "  %s: %d mentions\n", ac.key, ac.count)
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

type keyCount struct {
	key   string
	count int
}

func targetsByYear(recs []tagger.TargetRecord) []keyCount {
	counts := make(map[string]int)
	for _, r := range recs {
		counts[r.Year]++
	}
	out := mapToPairs(counts)
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

func languageByStrength(recs []tagger.LanguageRecord) []keyCount {
	counts := make(map[string]int)
	for _, r := range recs {
		counts[r.CommitmentStrength]++
	}
	return sortByCountDesc(mapToPairs(counts))
}

func topImpactAreas(recs []tagger.ImpactAreaRecord, n int) []keyCount {
	sums := make(map[string]int)
	for _, r := range recs {
		sums[r.ImpactArea] += r.OccurrenceCount
	}
	out := sortByCountDesc(mapToPairs(sums))
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func mapToPairs(m map[string]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, v := range m {
		out = append(out, keyCount{key: k, count: v})
	}
	return out
}

func sortByCountDesc(pairs []keyCount) []keyCount {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].key < pairs[j].key
	})
	return pairs
}
