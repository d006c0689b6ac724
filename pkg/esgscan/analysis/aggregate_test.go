package analysis

import (
	"reflect"
	"testing"

	"github.com/disclosurelab/esgscan/pkg/esgscan/tagger"
)

func targetRecs(years ...string) []tagger.TargetRecord {
	recs := make([]tagger.TargetRecord, len(years))
	for i, y := range years {
		recs[i] = tagger.TargetRecord{Year: y, Document: "Other Report"}
	}
	return recs
}

func TestTargetsByYearSkipsUnknown(t *testing.T) {
	got := TargetsByYear(targetRecs("2022", "2021", "Unknown", "2022"))
	want := []YearCount{{Year: 2021, Count: 1}, {Year: 2022, Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TargetsByYear = %v, want %v", got, want)
	}
}

func TestYearOverYear(t *testing.T) {
	rows := YearOverYear([]YearCount{
		{Year: 2021, Count: 10},
		{Year: 2022, Count: 15},
		{Year: 2023, Count: 15},
		{Year: 2024, Count: 12},
	})

	if rows[0].HasChange {
		t.Error("first year should have no change")
	}
	if rows[1].Change != 5 || rows[1].PctChange != 50 {
		t.Errorf("2022: change=%d pct=%v", rows[1].Change, rows[1].PctChange)
	}
	if rows[2].Change != 0 || rows[2].PctChange != 0 || !rows[2].HasChange {
		t.Errorf("2023: change=%d pct=%v", rows[2].Change, rows[2].PctChange)
	}
	if rows[3].Change != -3 {
		t.Errorf("2024: change=%d", rows[3].Change)
	}
}

func TestLanguageMatrix(t *testing.T) {
	m := LanguageMatrix([]tagger.LanguageRecord{
		{Year: "2022", CommitmentStrength: tagger.StrengthStrong},
		{Year: "2022", CommitmentStrength: tagger.StrengthStrong},
		{Year: "2022", CommitmentStrength: tagger.StrengthWeak},
		{Year: "2023", CommitmentStrength: tagger.StrengthModerate},
		{Year: "Unknown", CommitmentStrength: tagger.StrengthStrong},
	})

	if !reflect.DeepEqual(m.Years, []int{2022, 2023}) {
		t.Errorf("Years = %v", m.Years)
	}
	if m.Count(2022, tagger.StrengthStrong) != 2 {
		t.Errorf("2022 Strong = %d", m.Count(2022, tagger.StrengthStrong))
	}
	if m.RowTotal(2022) != 3 {
		t.Errorf("2022 total = %d", m.RowTotal(2022))
	}
	if m.Count(2023, tagger.StrengthModerate) != 1 {
		t.Errorf("2023 Moderate = %d", m.Count(2023, tagger.StrengthModerate))
	}
}

func TestStrengthShares(t *testing.T) {
	recs := []tagger.LanguageRecord{
		{CommitmentStrength: tagger.StrengthWeak},
		{CommitmentStrength: tagger.StrengthWeak},
		{CommitmentStrength: tagger.StrengthWeak},
		{CommitmentStrength: tagger.StrengthStrong},
	}
	shares := StrengthShares(recs)

	if shares[0].Strength != tagger.StrengthWeak || shares[0].Count != 3 {
		t.Errorf("top share = %+v", shares[0])
	}
	if shares[0].Pct != 75 {
		t.Errorf("top pct = %v", shares[0].Pct)
	}
}

func TestBuildImpactMatrix(t *testing.T) {
	m := BuildImpactMatrix([]tagger.ImpactAreaRecord{
		{Year: "2022", ImpactArea: "Water", OccurrenceCount: 4},
		{Year: "2022", ImpactArea: "Water", OccurrenceCount: 2},
		{Year: "2023", ImpactArea: "Energy", OccurrenceCount: 1},
		{Year: "Unknown", ImpactArea: "Water", OccurrenceCount: 100},
	})

	if !reflect.DeepEqual(m.Areas, []string{"Energy", "Water"}) {
		t.Errorf("Areas = %v, want alphabetical", m.Areas)
	}
	if !reflect.DeepEqual(m.Years, []int{2022, 2023}) {
		t.Errorf("Years = %v", m.Years)
	}
	if m.Sum("Water", 2022) != 6 {
		t.Errorf("Water 2022 = %d", m.Sum("Water", 2022))
	}
	if m.Total("Water") != 6 {
		t.Errorf("Water total = %d, unknown years must not count", m.Total("Water"))
	}
}

func TestTopImpactAreas(t *testing.T) {
	recs := []tagger.ImpactAreaRecord{
		{ImpactArea: "Water", OccurrenceCount: 5},
		{ImpactArea: "Energy", OccurrenceCount: 9},
		{ImpactArea: "Governance", OccurrenceCount: 1},
	}
	top := TopImpactAreas(recs, 2)
	if len(top) != 2 {
		t.Fatalf("got %d areas, want 2", len(top))
	}
	if top[0].Area != "Energy" || top[1].Area != "Water" {
		t.Errorf("top = %v", top)
	}
}

func TestTargetsByDocumentType(t *testing.T) {
	recs := []tagger.TargetRecord{
		{Document: "Other Report"},
		{Document: "10-K Annual Report"},
		{Document: "10-K Annual Report"},
	}
	got := TargetsByDocumentType(recs)
	want := []TypeCount{
		{DocumentType: "10-K Annual Report", Count: 2},
		{DocumentType: "Other Report", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TargetsByDocumentType = %v, want %v", got, want)
	}
}
