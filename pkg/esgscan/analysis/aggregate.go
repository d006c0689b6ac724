package analysis

import (
	"sort"
	"strconv"

	"github.com/disclosurelab/esgscan/pkg/esgscan/tagger"
)

// StrengthOrder is the canonical column order for strength groupings.
var StrengthOrder = []string{
	tagger.StrengthStrong,
	tagger.StrengthModerate,
	tagger.StrengthWeak,
}

// YearCount is one year's record count.
type YearCount struct {
	Year  int
	Count int
}

// YoYRow extends a year count with its change from the previous year.
// HasChange is false on the first year, where the change is undefined.
type YoYRow struct {
	Year      int
	Count     int
	Change    int
	PctChange float64
	HasChange bool
}

// parseYear coerces a year column value; non-numeric values ("Unknown")
// report ok=false and are excluded from year-keyed groupings.
func parseYear(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func countByYear(years []string) []YearCount {
	counts := make(map[int]int)
	for _, s := range years {
		if y, ok := parseYear(s); ok {
			counts[y]++
		}
	}
	out := make([]YearCount, 0, len(counts))
	for y, c := range counts {
		out = append(out, YearCount{Year: y, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TargetsByYear counts target records per known year, ascending.
func TargetsByYear(recs []tagger.TargetRecord) []YearCount {
	years := make([]string, len(recs))
	for i, r := range recs {
		years[i] = r.Year
	}
	return countByYear(years)
}

// InitiativesByYear counts initiative records per known year, ascending.
func InitiativesByYear(recs []tagger.InitiativeRecord) []YearCount {
	years := make([]string, len(recs))
	for i, r := range recs {
		years[i] = r.Year
	}
	return countByYear(years)
}

// YearOverYear annotates a year series with absolute and percent change
// from the preceding year.
func YearOverYear(series []YearCount) []YoYRow {
	rows := make([]YoYRow, len(series))
	for i, yc := range series {
		rows[i] = YoYRow{Year: yc.Year, Count: yc.Count}
		if i == 0 {
			continue
		}
		prev := series[i-1].Count
		rows[i].Change = yc.Count - prev
		if prev != 0 {
			rows[i].PctChange = float64(yc.Count-prev) / float64(prev) * 100
		}
		rows[i].HasChange = true
	}
	return rows
}

// StrengthMatrix is the commitment-language grouping: counts per
// (year, strength) over known years.
type StrengthMatrix struct {
	Years  []int
	counts map[int]map[string]int
}

// Count returns the cell for one year and strength.
func (m StrengthMatrix) Count(year int, strength string) int {
	return m.counts[year][strength]
}

// RowTotal returns the total phrases recorded for one year.
func (m StrengthMatrix) RowTotal(year int) int {
	total := 0
	for _, c := range m.counts[year] {
		total += c
	}
	return total
}

// Empty reports whether the matrix has no year rows.
func (m StrengthMatrix) Empty() bool { return len(m.Years) == 0 }

// LanguageMatrix groups language records by year and strength.
func LanguageMatrix(recs []tagger.LanguageRecord) StrengthMatrix {
	m := StrengthMatrix{counts: make(map[int]map[string]int)}
	for _, r := range recs {
		y, ok := parseYear(r.Year)
		if !ok {
			continue
		}
		if m.counts[y] == nil {
			m.counts[y] = make(map[string]int)
			m.Years = append(m.Years, y)
		}
		m.counts[y][r.CommitmentStrength]++
	}
	sort.Ints(m.Years)
	return m
}

// StrengthShare is one strength's overall count and share of the total.
type StrengthShare struct {
	Strength string
	Count    int
	Pct      float64
}

// StrengthShares totals language records per strength (all years,
// including unknown) and computes each share of the total, descending.
func StrengthShares(recs []tagger.LanguageRecord) []StrengthShare {
	counts := make(map[string]int)
	for _, r := range recs {
		counts[r.CommitmentStrength]++
	}
	out := make([]StrengthShare, 0, len(counts))
	for s, c := range counts {
		out = append(out, StrengthShare{Strength: s, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Strength < out[j].Strength
	})
	if total := len(recs); total > 0 {
		for i := range out {
			out[i].Pct = float64(out[i].Count) / float64(total) * 100
		}
	}
	return out
}

// ImpactMatrix sums impact-area occurrence counts per (area, year).
type ImpactMatrix struct {
	Years []int
	Areas []string // alphabetical
	sums  map[string]map[int]int
}

// Sum returns the summed occurrences for one area and year.
func (m ImpactMatrix) Sum(area string, year int) int {
	return m.sums[area][year]
}

// Total returns the summed occurrences for one area across all known
// years.
func (m ImpactMatrix) Total(area string) int {
	total := 0
	for _, c := range m.sums[area] {
		total += c
	}
	return total
}

// Empty reports whether the matrix has no cells.
func (m ImpactMatrix) Empty() bool { return len(m.Years) == 0 || len(m.Areas) == 0 }

// BuildImpactMatrix groups impact records into an area × year grid.
func BuildImpactMatrix(recs []tagger.ImpactAreaRecord) ImpactMatrix {
	m := ImpactMatrix{sums: make(map[string]map[int]int)}
	yearSet := make(map[int]struct{})
	for _, r := range recs {
		y, ok := parseYear(r.Year)
		if !ok {
			continue
		}
		if m.sums[r.ImpactArea] == nil {
			m.sums[r.ImpactArea] = make(map[int]int)
			m.Areas = append(m.Areas, r.ImpactArea)
		}
		m.sums[r.ImpactArea][y] += r.OccurrenceCount
		yearSet[y] = struct{}{}
	}
	for y := range yearSet {
		m.Years = append(m.Years, y)
	}
	sort.Ints(m.Years)
	sort.Strings(m.Areas)
	return m
}

// AreaTotal is one impact area's summed occurrence count.
type AreaTotal struct {
	Area  string
	Total int
}

// TopImpactAreas ranks areas by total occurrences (all years, including
// unknown) and keeps the top n.
func TopImpactAreas(recs []tagger.ImpactAreaRecord, n int) []AreaTotal {
	sums := make(map[string]int)
	for _, r := range recs {
		sums[r.ImpactArea] += r.OccurrenceCount
	}
	out := make([]AreaTotal, 0, len(sums))
	for a, t := range sums {
		out = append(out, AreaTotal{Area: a, Total: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Area < out[j].Area
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TypeCount is one document type's target-record count.
type TypeCount struct {
	DocumentType string
	Count        int
}

// TargetsByDocumentType counts target records per document type,
// descending.
func TargetsByDocumentType(recs []tagger.TargetRecord) []TypeCount {
	counts := make(map[string]int)
	for _, r := range recs {
		counts[r.Document]++
	}
	out := make([]TypeCount, 0, len(counts))
	for t, c := range counts {
		out = append(out, TypeCount{DocumentType: t, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].DocumentType < out[j].DocumentType
	})
	return out
}
