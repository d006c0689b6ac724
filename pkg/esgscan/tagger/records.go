package tagger

// Commitment strength levels. A phrase's level is decided purely by which
// fixed list it came from.
const (
	StrengthStrong   = "Strong"
	StrengthModerate = "Moderate"
	StrengthWeak     = "Weak/Hedging"
)

// TargetRecord is one target/goal pattern match with its evidentiary
// context window and the numeric values found inside it.
type TargetRecord struct {
	Year           string
	Document       string
	SourceFile     string
	PageNumber     int
	TargetText     string   // context window, ≤300 chars
	Percentages    []string // numeric strings found in the window
	TargetYears    []string // 4-digit years found in the window
	KeywordMatched string
}

// LanguageRecord is one commitment-strength phrase occurrence.
type LanguageRecord struct {
	Year               string
	Document           string
	PageNumber         int
	CommitmentStrength string
	Phrase             string
	Context            string // ≤250 chars
}

// InitiativeRecord is one initiative/program pattern match, with any
// currency amount found in its window captured separately.
type InitiativeRecord struct {
	Year             string
	Document         string
	PageNumber       int
	InitiativeText   string // context window, ≤300 chars
	KeywordMatched   string
	InvestmentAmount string
}

// ImpactAreaRecord summarises one keyword of one impact area on one page:
// the page's occurrence count plus a single example context. There is at
// most one record per (page, impact area, keyword) triple.
type ImpactAreaRecord struct {
	Year            string
	Document        string
	PageNumber      int
	ImpactArea      string
	Keyword         string
	OccurrenceCount int
	ExampleContext  string // ≤200 chars
}

// Result collects every record emitted for one or more documents.
type Result struct {
	Targets     []TargetRecord
	Language    []LanguageRecord
	Initiatives []InitiativeRecord
	ImpactAreas []ImpactAreaRecord
}

// Append merges another result into r, preserving order.
func (r *Result) Append(other Result) {
	r.Targets = append(r.Targets, other.Targets...)
	r.Language = append(r.Language, other.Language...)
	r.Initiatives = append(r.Initiatives, other.Initiatives...)
	r.ImpactAreas = append(r.ImpactAreas, other.ImpactAreas...)
}

// Empty reports whether no records of any kind were collected.
func (r *Result) Empty() bool {
	return len(r.Targets) == 0 && len(r.Language) == 0 &&
		len(r.Initiatives) == 0 && len(r.ImpactAreas) == 0
}
