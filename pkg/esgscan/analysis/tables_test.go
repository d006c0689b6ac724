package analysis

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/disclosurelab/esgscan/pkg/esgscan/tagger"
)

func TestTargetsTable(t *testing.T) {
	rows := YearOverYear([]YearCount{
		{Year: 2021, Count: 10},
		{Year: 2022, Count: 10},
		{Year: 2023, Count: 15},
	})
	got := targetsTable(rows)

	want := [][]string{
		{"Year", "Target Mentions", "YoY Change", "YoY % Change"},
		{"2021", "10", "", ""},
		{"2022", "10", "0", "0.0"},
		{"2023", "15", "5", "50.0"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("targetsTable:\n got %v\nwant %v", got, want)
	}
}

func TestLanguageTables(t *testing.T) {
	m := LanguageMatrix([]tagger.LanguageRecord{
		{Year: "2022", CommitmentStrength: tagger.StrengthStrong},
		{Year: "2022", CommitmentStrength: tagger.StrengthStrong},
		{Year: "2022", CommitmentStrength: tagger.StrengthModerate},
		{Year: "2022", CommitmentStrength: tagger.StrengthWeak},
	})

	counts := languageCountsTable(m)
	wantCounts := [][]string{
		{"Year", "Strong", "Moderate", "Weak/Hedging"},
		{"2022", "2", "1", "1"},
	}
	if !reflect.DeepEqual(counts, wantCounts) {
		t.Errorf("counts table:\n got %v\nwant %v", counts, wantCounts)
	}

	pcts := languagePctTable(m)
	wantPcts := [][]string{
		{"Year", "Strong", "Moderate", "Weak/Hedging"},
		{"2022", "50.0", "25.0", "25.0"},
	}
	if !reflect.DeepEqual(pcts, wantPcts) {
		t.Errorf("pct table:\n got %v\nwant %v", pcts, wantPcts)
	}
}

func TestImpactTable(t *testing.T) {
	m := BuildImpactMatrix([]tagger.ImpactAreaRecord{
		{Year: "2022", ImpactArea: "Water", OccurrenceCount: 4},
		{Year: "2023", ImpactArea: "Energy", OccurrenceCount: 2},
	})
	got := impactTable(m)
	want := [][]string{
		{"Impact Area", "2022", "2023"},
		{"Energy", "0", "2"},
		{"Water", "4", "0"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("impactTable:\n got %v\nwant %v", got, want)
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), WorkbookFile)
	sheets := map[string][][]string{
		"Targets by Year": {
			{"Year", "Target Mentions"},
			{"2022", "10"},
		},
	}
	if err := writeWorkbook(path, sheets, []string{"Targets by Year"}); err != nil {
		t.Fatalf("writeWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	cell, err := f.GetCellValue("Targets by Year", "B2")
	if err != nil {
		t.Fatal(err)
	}
	if cell != "10" {
		t.Errorf("B2 = %q, want 10", cell)
	}
}

func TestWriteReport(t *testing.T) {
	d := &Data{
		Targets: []tagger.TargetRecord{
			{Year: "2022", Document: "Other Report"},
			{Year: "2023", Document: "Other Report"},
		},
		Language: []tagger.LanguageRecord{
			{Year: "2022", CommitmentStrength: tagger.StrengthStrong},
		},
		ImpactAreas: []tagger.ImpactAreaRecord{
			{Year: "2022", ImpactArea: "Water", OccurrenceCount: 3},
		},
	}

	path := filepath.Join(t.TempDir(), ReportFile)
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	if err := writeReport(path, d, now); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, want := range []string{
		"QUANTITATIVE ANALYSIS SUMMARY REPORT",
		"Report Generated: 2026-01-15 10:00:00",
		"Total Target/Goal Mentions Extracted: 2",
		"  2022: 1 mentions",
		"  Strong: 1 (100.0%)",
		"  1. Water: 3 mentions",
		"  Other Report: 2",
		"END OF SUMMARY REPORT",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
