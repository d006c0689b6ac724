package pdftext

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Year range scanned for in paths; reports outside it classify as Unknown.
const (
	minYear = 2020
	maxYear = 2025
)

// Year is a report year inferred from a file path. It marshals to JSON as
// a number, or as the string "Unknown" when no year could be inferred.
type Year struct {
	Value int
	Known bool
}

// KnownYear returns a resolved year.
func KnownYear(v int) Year { return Year{Value: v, Known: true} }

// UnknownYear returns the unresolved sentinel.
func UnknownYear() Year { return Year{} }

func (y Year) String() string {
	if !y.Known {
		return "Unknown"
	}
	return strconv.Itoa(y.Value)
}

// MarshalJSON emits an int for known years and "Unknown" otherwise.
func (y Year) MarshalJSON() ([]byte, error) {
	if !y.Known {
		return json.Marshal("Unknown")
	}
	return json.Marshal(y.Value)
}

// UnmarshalJSON accepts either form.
func (y *Year) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err == nil {
		*y = KnownYear(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if n, err := strconv.Atoi(s); err == nil {
		*y = KnownYear(n)
	} else {
		*y = UnknownYear()
	}
	return nil
}

// YearFromPath infers a report year from any path component, checking
// years in ascending order so the earliest candidate wins.
func YearFromPath(path string) Year {
	for v := minYear; v <= maxYear; v++ {
		if strings.Contains(path, strconv.Itoa(v)) {
			return KnownYear(v)
		}
	}
	return UnknownYear()
}

// Document type labels, a closed set inferred from filename keywords.
const (
	TypeSustainability     = "Global Citizenship & Sustainability Report"
	TypeAnnualReport       = "10-K Annual Report"
	TypeCDPClimate         = "CDP Climate Change Disclosure"
	TypeCDPWater           = "CDP Water Security Disclosure"
	TypeCDPForest          = "CDP Forest Disclosure"
	TypeCarbonVerification = "Carbon Footprint Verification/Assurance"
	TypeOther              = "Other Report"
)

// DocumentType classifies a disclosure document by filename keywords.
func DocumentType(filename string) string {
	name := strings.ToLower(filename)

	switch {
	case strings.Contains(name, "citizenship"),
		strings.Contains(name, "gcs"),
		strings.Contains(name, "sustainability"):
		return TypeSustainability
	case strings.Contains(name, "10k"), strings.Contains(name, "10-k"):
		return TypeAnnualReport
	case strings.Contains(name, "cdp") && strings.Contains(name, "climate"):
		return TypeCDPClimate
	case strings.Contains(name, "cdp") && strings.Contains(name, "water"):
		return TypeCDPWater
	case strings.Contains(name, "cdp") && strings.Contains(name, "forest"):
		return TypeCDPForest
	case strings.Contains(name, "carbon footprint"),
		strings.Contains(name, "verification"),
		strings.Contains(name, "assurance"):
		return TypeCarbonVerification
	default:
		return TypeOther
	}
}

// SafeStem converts a source filename stem into its output-file form.
func SafeStem(stem string) string {
	return strings.ReplaceAll(strings.ReplaceAll(stem, " ", "_"), "&", "and")
}
