// Package config defines the keyword and pattern sets the tagger runs
// with. The compiled-in defaults match the published methodology; a YAML
// file with the same shape can override them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImpactArea is one ESG topic bucket with its keyword list. Areas are an
// ordered list rather than a map so that record emission order, and with
// it the CSV output, is stable between runs.
type ImpactArea struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Patterns holds every pattern set used by the tagging stage. Target and
// initiative entries are regular expressions (matched case-insensitively);
// commitment entries are literal phrases.
type Patterns struct {
	Targets            []string     `yaml:"targets"`
	CommitmentStrong   []string     `yaml:"commitment_strong"`
	CommitmentModerate []string     `yaml:"commitment_moderate"`
	CommitmentWeak     []string     `yaml:"commitment_weak"`
	Initiatives        []string     `yaml:"initiatives"`
	ImpactAreas        []ImpactArea `yaml:"impact_areas"`
}

// Load reads a pattern set from a YAML file.
func Load(path string) (*Patterns, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Patterns
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse patterns %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("patterns %s: %w", path, err)
	}
	return &p, nil
}

// Validate checks that no pattern set is empty.
func (p *Patterns) Validate() error {
	switch {
	case len(p.Targets) == 0:
		return fmt.Errorf("no target patterns")
	case len(p.CommitmentStrong) == 0 || len(p.CommitmentModerate) == 0 || len(p.CommitmentWeak) == 0:
		return fmt.Errorf("incomplete commitment phrase lists")
	case len(p.Initiatives) == 0:
		return fmt.Errorf("no initiative patterns")
	case len(p.ImpactAreas) == 0:
		return fmt.Errorf("no impact areas")
	}
	for _, area := range p.ImpactAreas {
		if area.Name == "" || len(area.Keywords) == 0 {
			return fmt.Errorf("impact area %q has no keywords", area.Name)
		}
	}
	return nil
}

// Default returns the built-in pattern sets.
func Default() *Patterns {
	return &Patterns{
		Targets: []string{
			`target`,
			`goal`,
			`objective`,
			`aim to`,
			`reduce.*by \d+%`,
			`achieve.*by \d{4}`,
			`reach.*by \d{4}`,
			`\d+% reduction`,
			`net zero`,
			`carbon neutral`,
			`science-based target`,
		},
		CommitmentStrong: []string{
			"committed to", "will achieve", "will reduce", "will reach",
			"pledge to", "determined to", "dedicated to", "have committed",
		},
		CommitmentModerate: []string{
			"plan to", "intend to", "aim to", "working to", "seeking to",
			"strive to", "expect to", "focused on",
		},
		CommitmentWeak: []string{
			"aspire to", "hope to", "may", "could", "exploring",
			"considering", "evaluating", "subject to", "dependent on",
		},
		Initiatives: []string{
			`program`, `initiative`, `partnership`, `collaboration`,
			`launched`, `announced`, `introduced`, `implemented`,
			`invested \$[\d,]+`, `investment of`, `million`, `billion`,
		},
		ImpactAreas: []ImpactArea{
			{Name: "Climate/Carbon", Keywords: []string{
				"emission", "carbon", "greenhouse gas", "GHG", "CO2", "climate",
				"scope 1", "scope 2", "scope 3", "carbon footprint"}},
			{Name: "Water", Keywords: []string{
				"water", "H2O", "water use", "water consumption", "water stewardship",
				"water stress", "water efficiency"}},
			{Name: "Waste/Circular Economy", Keywords: []string{
				"waste", "recycl", "circular", "zero waste", "landfill",
				"reuse", "repurpose", "end-of-life"}},
			{Name: "Energy", Keywords: []string{
				"energy", "renewable energy", "solar", "wind", "renewable",
				"energy efficiency", "electricity"}},
			{Name: "Materials", Keywords: []string{
				"sustainable material", "organic cotton", "recycled polyester",
				"preferred fiber", "sustainable sourcing", "material innovation"}},
			{Name: "Supply Chain", Keywords: []string{
				"supplier", "supply chain", "factory", "manufacturing",
				"vendor", "sourcing"}},
			{Name: "Human Rights/Labor", Keywords: []string{
				"human rights", "labor", "worker", "fair wage",
				"working conditions", "child labor", "forced labor"}},
			{Name: "Diversity/Equity", Keywords: []string{
				"diversity", "equity", "inclusion", "DEI", "gender",
				"racial", "equal opportunity", "representation"}},
			{Name: "Biodiversity", Keywords: []string{
				"biodiversity", "ecosystem", "nature", "forest", "deforestation",
				"land use", "habitat"}},
			{Name: "Governance", Keywords: []string{
				"governance", "board", "oversight", "policy", "compliance",
				"ethics", "transparency", "disclosure"}},
		},
	}
}
