package pdftext

import (
	"encoding/json"
	"testing"
)

func TestYearFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"reports/2023/sustainability.pdf", "2023"},
		{"reports/cdp_2021_climate.pdf", "2021"},
		{"reports/sustainability.pdf", "Unknown"},
		{"reports/archive_1999/report.pdf", "Unknown"},
		// earliest in-range year wins when several appear
		{"2020_vs_2024_comparison.pdf", "2020"},
	}
	for _, tt := range tests {
		if got := YearFromPath(tt.path).String(); got != tt.want {
			t.Errorf("YearFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDocumentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"2023_Global_Citizenship_Sustainability.pdf", TypeSustainability},
		{"GCS_report_2022.pdf", TypeSustainability},
		{"annual_10-K_2021.pdf", TypeAnnualReport},
		{"form_10k.pdf", TypeAnnualReport},
		{"CDP_Climate_Change_2023.pdf", TypeCDPClimate},
		{"cdp_water_security.pdf", TypeCDPWater},
		{"CDP_Forest_2022.pdf", TypeCDPForest},
		{"carbon footprint verification.pdf", TypeCarbonVerification},
		{"assurance_statement.pdf", TypeCarbonVerification},
		{"random_document.pdf", TypeOther},
	}
	for _, tt := range tests {
		if got := DocumentType(tt.filename); got != tt.want {
			t.Errorf("DocumentType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestSafeStem(t *testing.T) {
	if got := SafeStem("Citizenship & Sustainability Report"); got != "Citizenship_and_Sustainability_Report" {
		t.Errorf("SafeStem = %q", got)
	}
}

func TestYearJSON(t *testing.T) {
	known, err := json.Marshal(KnownYear(2023))
	if err != nil {
		t.Fatal(err)
	}
	if string(known) != "2023" {
		t.Errorf("known year marshals to %s", known)
	}

	unknown, err := json.Marshal(UnknownYear())
	if err != nil {
		t.Fatal(err)
	}
	if string(unknown) != `"Unknown"` {
		t.Errorf("unknown year marshals to %s", unknown)
	}

	var y Year
	if err := json.Unmarshal([]byte(`"Unknown"`), &y); err != nil {
		t.Fatal(err)
	}
	if y.Known {
		t.Error("unmarshalled Unknown is marked known")
	}
	if err := json.Unmarshal([]byte("2021"), &y); err != nil {
		t.Fatal(err)
	}
	if !y.Known || y.Value != 2021 {
		t.Errorf("unmarshalled year = %+v", y)
	}
}
