package analysis

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/disclosurelab/esgscan/internal/console"
	"github.com/disclosurelab/esgscan/pkg/esgscan/dataset"
	"github.com/disclosurelab/esgscan/pkg/esgscan/tagger"
)

// Data holds the four record tables loaded for analysis. A table whose
// file is missing loads as empty; the analyses that depend on it are
// skipped rather than failing the run.
type Data struct {
	Targets     []tagger.TargetRecord
	Language    []tagger.LanguageRecord
	Initiatives []tagger.InitiativeRecord
	ImpactAreas []tagger.ImpactAreaRecord
}

// Load reads the record tables from a structured-data directory.
func Load(dir string) (*Data, error) {
	d := &Data{}

	targets, err := dataset.ReadTargets(filepath.Join(dir, dataset.TargetsFile))
	if err := noteLoad(dataset.TargetsFile, len(targets), "target entries", err); err != nil {
		return nil, err
	}
	d.Targets = targets

	language, err := dataset.ReadLanguage(filepath.Join(dir, dataset.LanguageFile))
	if err := noteLoad(dataset.LanguageFile, len(language), "language pattern entries", err); err != nil {
		return nil, err
	}
	d.Language = language

	initiatives, err := dataset.ReadInitiatives(filepath.Join(dir, dataset.InitiativesFile))
	if err := noteLoad(dataset.InitiativesFile, len(initiatives), "initiative entries", err); err != nil {
		return nil, err
	}
	d.Initiatives = initiatives

	impact, err := dataset.ReadImpactAreas(filepath.Join(dir, dataset.ImpactAreasFile))
	if err := noteLoad(dataset.ImpactAreasFile, len(impact), "impact area entries", err); err != nil {
		return nil, err
	}
	d.ImpactAreas = impact

	return d, nil
}

// noteLoad reports one table load on the console. Missing files are
// reported and tolerated; any other error is returned.
func noteLoad(name string, n int, what string, err error) error {
	switch {
	case err == nil:
		console.OK("Loaded %d %s", n, what)
		return nil
	case errors.Is(err, fs.ErrNotExist):
		console.Fail("%s not found", name)
		return nil
	default:
		return err
	}
}
