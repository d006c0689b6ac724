package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disclosurelab/esgscan/pkg/esgscan/tagger"
)

func TestWriteStatisticsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), StatisticsFile)
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	if err := WriteStatistics(path, tagger.Result{}, now); err != nil {
		t.Fatalf("WriteStatistics: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		"ESG DISCLOSURE ANALYSIS - EXTRACTION STATISTICS",
		"Extraction Date: 2026-01-15 10:00:00",
		"Total Targets/Goals Extracted: 0",
		"Total Language Patterns Identified: 0",
		"Total Initiatives Cataloged: 0",
		"Total Impact Area Mentions: 0",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("statistics missing %q", want)
		}
	}
	for _, absent := range []string{"Targets by Year:", "Language Patterns by Strength:", "Top Impact Areas Mentioned:"} {
		if strings.Contains(content, absent) {
			t.Errorf("statistics contains %q for empty result", absent)
		}
	}
}

func TestWriteStatisticsBreakdowns(t *testing.T) {
	res := sampleResult()
	res.ImpactAreas = append(res.ImpactAreas, tagger.ImpactAreaRecord{
		Year: "2024", ImpactArea: "Water", Keyword: "water", OccurrenceCount: 9,
	})

	path := filepath.Join(t.TempDir(), StatisticsFile)
	if err := WriteStatistics(path, res, time.Now()); err != nil {
		t.Fatalf("WriteStatistics: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.Contains(content, "  2023: 1\n") {
		t.Error("missing targets-by-year line")
	}
	if !strings.Contains(content, "  Strong: 1\n") {
		t.Error("missing strength breakdown line")
	}
	// Water (9) outranks Climate/Carbon (3)
	water := strings.Index(content, "Water: 9 mentions")
	carbon := strings.Index(content, "Climate/Carbon: 3 mentions")
	if water == -1 || carbon == -1 || water > carbon {
		t.Errorf("impact area ranking wrong:\n%s", content)
	}
}
