package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/disclosurelab/esgscan/pkg/esgscan/tagger"
)

func sampleResult() tagger.Result {
	return tagger.Result{
		Targets: []tagger.TargetRecord{{
			Year:           "2023",
			Document:       "Global Citizenship & Sustainability Report",
			SourceFile:     "2023_report.pdf",
			PageNumber:     4,
			TargetText:     "committed to a 50% reduction by 2030",
			Percentages:    []string{"50"},
			TargetYears:    []string{"2030"},
			KeywordMatched: "reduction",
		}},
		Language: []tagger.LanguageRecord{{
			Year:               "2023",
			Document:           "Global Citizenship & Sustainability Report",
			PageNumber:         4,
			CommitmentStrength: tagger.StrengthStrong,
			Phrase:             "committed to",
			Context:            "we are committed to a 50% reduction",
		}},
		Initiatives: []tagger.InitiativeRecord{{
			Year:             "2023",
			Document:         "Global Citizenship & Sustainability Report",
			PageNumber:       7,
			InitiativeText:   "launched a program with an investment of $2 million",
			KeywordMatched:   "program",
			InvestmentAmount: "$2 million",
		}},
		ImpactAreas: []tagger.ImpactAreaRecord{{
			Year:            "2023",
			Document:        "Global Citizenship & Sustainability Report",
			PageNumber:      4,
			ImpactArea:      "Climate/Carbon",
			Keyword:         "GHG",
			OccurrenceCount: 3,
			ExampleContext:  "our ghg inventory",
		}},
	}
}

func TestWriteAllRoundTrip(t *testing.T) {
	dir := t.TempDir()
	res := sampleResult()

	if err := WriteAll(dir, res); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	targets, err := ReadTargets(filepath.Join(dir, TargetsFile))
	if err != nil {
		t.Fatalf("ReadTargets: %v", err)
	}
	if !reflect.DeepEqual(targets, res.Targets) {
		t.Errorf("targets round trip:\n got %+v\nwant %+v", targets, res.Targets)
	}

	language, err := ReadLanguage(filepath.Join(dir, LanguageFile))
	if err != nil {
		t.Fatalf("ReadLanguage: %v", err)
	}
	if !reflect.DeepEqual(language, res.Language) {
		t.Errorf("language round trip:\n got %+v\nwant %+v", language, res.Language)
	}

	initiatives, err := ReadInitiatives(filepath.Join(dir, InitiativesFile))
	if err != nil {
		t.Fatalf("ReadInitiatives: %v", err)
	}
	if !reflect.DeepEqual(initiatives, res.Initiatives) {
		t.Errorf("initiatives round trip:\n got %+v\nwant %+v", initiatives, res.Initiatives)
	}

	impact, err := ReadImpactAreas(filepath.Join(dir, ImpactAreasFile))
	if err != nil {
		t.Fatalf("ReadImpactAreas: %v", err)
	}
	if !reflect.DeepEqual(impact, res.ImpactAreas) {
		t.Errorf("impact round trip:\n got %+v\nwant %+v", impact, res.ImpactAreas)
	}
}

func TestWriteAllEmptyWritesHeaders(t *testing.T) {
	dir := t.TempDir()
	if err := WriteAll(dir, tagger.Result{}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	for _, name := range []string{TargetsFile, LanguageFile, InitiativesFile, ImpactAreasFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		lines := bytes.Count(data, []byte("\n"))
		if lines != 1 {
			t.Errorf("%s has %d lines, want header only", name, lines)
		}
	}

	targets, err := ReadTargets(filepath.Join(dir, TargetsFile))
	if err != nil {
		t.Fatalf("ReadTargets on header-only file: %v", err)
	}
	if len(targets) != 0 {
		t.Errorf("got %d records from empty table", len(targets))
	}
}

func TestWriteAllIdempotent(t *testing.T) {
	res := sampleResult()

	first := t.TempDir()
	second := t.TempDir()
	if err := WriteAll(first, res); err != nil {
		t.Fatal(err)
	}
	if err := WriteAll(second, res); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{TargetsFile, LanguageFile, InitiativesFile, ImpactAreasFile} {
		a, err := os.ReadFile(filepath.Join(first, name))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(second, name))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between identical runs", name)
		}
	}
}
