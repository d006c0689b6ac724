// Package tagger scans extracted page text against four independent
// pattern sets and emits flat, provenance-carrying records: targets and
// goals, commitment-language strength, initiatives, and impact-area
// mentions.
//
// Matching is literal/regex only. The pattern sets are evaluated
// independently, so one phrase can legitimately produce rows in several
// tables, or under several strengths, on the same page. Negation is not
// detected: "we will not reduce" tags exactly like "we will reduce". That
// is a known limitation of the methodology, preserved here rather than
// corrected.
package tagger

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/disclosurelab/esgscan/pkg/esgscan/config"
	"github.com/disclosurelab/esgscan/pkg/esgscan/pagetext"
)

// Context window sizes (radius in bytes) and record caps (runes).
const (
	targetRadius = 200
	targetCap    = 300

	languageRadius = 150
	languageCap    = 250

	initiativeRadius = 200
	initiativeCap    = 300

	impactRadius = 100
	impactCap    = 200
)

var (
	percentRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	yearRe     = regexp.MustCompile(`\b(20\d{2})\b`)
	currencyRe = regexp.MustCompile(`\$\s*[\d,]+(?:\.\d+)?\s*(?:million|billion|M|B)?`)
)

type impactKeyword struct {
	label string // as configured, reported in records
	match string // lowercase form used for matching
}

type impactArea struct {
	name     string
	keywords []impactKeyword // in configured order
}

// Tagger holds the compiled pattern sets.
type Tagger struct {
	targets     []*regexp.Regexp
	strong      []string
	moderate    []string
	weak        []string
	initiatives []*regexp.Regexp
	areas       []impactArea

	phrases map[string]*regexp.Regexp // literal phrase → case-insensitive matcher
}

// New compiles a Tagger from a pattern set. Target and initiative entries
// are regular expressions; commitment phrases are literals.
func New(p *config.Patterns) (*Tagger, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	t := &Tagger{
		strong:   p.CommitmentStrong,
		moderate: p.CommitmentModerate,
		weak:     p.CommitmentWeak,
		phrases:  make(map[string]*regexp.Regexp),
	}

	var err error
	if t.targets, err = compileAll(p.Targets); err != nil {
		return nil, fmt.Errorf("target patterns: %w", err)
	}
	if t.initiatives, err = compileAll(p.Initiatives); err != nil {
		return nil, fmt.Errorf("initiative patterns: %w", err)
	}

	for _, list := range [][]string{p.CommitmentStrong, p.CommitmentModerate, p.CommitmentWeak} {
		for _, phrase := range list {
			t.phrases[phrase] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
		}
	}

	for _, area := range p.ImpactAreas {
		keywords := make([]impactKeyword, len(area.Keywords))
		for i, kw := range area.Keywords {
			keywords[i] = impactKeyword{label: kw, match: strings.ToLower(kw)}
		}
		t.areas = append(t.areas, impactArea{name: area.Name, keywords: keywords})
	}

	return t, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, pat := range patterns {
		re, err := regexp.Compile(`(?i)` + pat)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pat, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// TagDocument runs all four extractions over every page of one document.
// Records come out in a deterministic order: page order, then pattern
// order, then match position.
func (t *Tagger) TagDocument(meta pagetext.Metadata, pages []pagetext.Page) Result {
	var res Result
	for _, page := range pages {
		t.tagTargets(&res, meta, page)
		t.tagLanguage(&res, meta, page)
		t.tagInitiatives(&res, meta, page)
		t.tagImpactAreas(&res, meta, page)
	}
	return res
}

func (t *Tagger) tagTargets(res *Result, meta pagetext.Metadata, page pagetext.Page) {
	for _, re := range t.targets {
		for _, m := range re.FindAllStringIndex(page.Text, -1) {
			ctx := window(page.Text, m[0], m[1], targetRadius)
			res.Targets = append(res.Targets, TargetRecord{
				Year:           meta.Year,
				Document:       meta.DocumentType,
				SourceFile:     meta.SourceFile,
				PageNumber:     page.Number,
				TargetText:     truncate(ctx, targetCap),
				Percentages:    captureGroups(percentRe, ctx),
				TargetYears:    captureGroups(yearRe, ctx),
				KeywordMatched: page.Text[m[0]:m[1]],
			})
		}
	}
}

func (t *Tagger) tagLanguage(res *Result, meta pagetext.Metadata, page pagetext.Page) {
	lower := strings.ToLower(page.Text)

	emit := func(phrases []string, strength string) {
		for _, phrase := range phrases {
			if !strings.Contains(lower, phrase) {
				continue
			}
			for _, m := range t.phrases[phrase].FindAllStringIndex(page.Text, -1) {
				ctx := window(page.Text, m[0], m[1], languageRadius)
				res.Language = append(res.Language, LanguageRecord{
					Year:               meta.Year,
					Document:           meta.DocumentType,
					PageNumber:         page.Number,
					CommitmentStrength: strength,
					Phrase:             page.Text[m[0]:m[1]],
					Context:            truncate(ctx, languageCap),
				})
			}
		}
	}

	emit(t.strong, StrengthStrong)
	emit(t.moderate, StrengthModerate)
	emit(t.weak, StrengthWeak)
}

func (t *Tagger) tagInitiatives(res *Result, meta pagetext.Metadata, page pagetext.Page) {
	for _, re := range t.initiatives {
		for _, m := range re.FindAllStringIndex(page.Text, -1) {
			ctx := window(page.Text, m[0], m[1], initiativeRadius)
			res.Initiatives = append(res.Initiatives, InitiativeRecord{
				Year:             meta.Year,
				Document:         meta.DocumentType,
				PageNumber:       page.Number,
				InitiativeText:   truncate(ctx, initiativeCap),
				KeywordMatched:   page.Text[m[0]:m[1]],
				InvestmentAmount: currencyRe.FindString(ctx),
			})
		}
	}
}

func (t *Tagger) tagImpactAreas(res *Result, meta pagetext.Metadata, page pagetext.Page) {
	lower := strings.ToLower(page.Text)

	for _, area := range t.areas {
		for _, kw := range area.keywords {
			count := strings.Count(lower, kw.match)
			if count == 0 {
				continue
			}
			first := strings.Index(lower, kw.match)
			ctx := window(lower, first, first+len(kw.match), impactRadius)
			res.ImpactAreas = append(res.ImpactAreas, ImpactAreaRecord{
				Year:            meta.Year,
				Document:        meta.DocumentType,
				PageNumber:      page.Number,
				ImpactArea:      area.name,
				Keyword:         kw.label,
				OccurrenceCount: count,
				ExampleContext:  truncate(ctx, impactCap),
			})
		}
	}
}

func captureGroups(re *regexp.Regexp, s string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		out = append(out, m[1])
	}
	return out
}
