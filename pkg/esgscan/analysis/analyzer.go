// Package analysis implements the reporting stage: it loads the record
// tables produced by the tagging stage, aggregates them by year, strength,
// impact area, and document type, and writes charts, summary tables, a
// combined workbook, and a text report.
package analysis

import (
	"os"
	"path/filepath"
	"time"

	"github.com/disclosurelab/esgscan/internal/console"
)

// Output subdirectory names.
const (
	ChartsDir = "charts"
	TablesDir = "tables"
)

// Analyzer runs the full analysis over one structured-data directory.
type Analyzer struct {
	DataDir   string
	OutputDir string

	now func() time.Time // swappable for tests
}

// New returns an analyzer for the given directories.
func New(dataDir, outputDir string) *Analyzer {
	return &Analyzer{DataDir: dataDir, OutputDir: outputDir, now: time.Now}
}

// Run loads the tables and produces every chart, table, and report.
// Analyses whose input table is empty are skipped with a console note;
// the summary report is always written.
func (a *Analyzer) Run() error {
	console.Banner("ESG DISCLOSURE ANALYSIS - QUANTITATIVE ANALYSIS & VISUALIZATION")

	console.Banner("LOADING EXTRACTED DATA")
	data, err := Load(a.DataDir)
	if err != nil {
		return err
	}

	chartsDir := filepath.Join(a.OutputDir, ChartsDir)
	tablesDir := filepath.Join(a.OutputDir, TablesDir)
	for _, dir := range []string{chartsDir, tablesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	sheets := make(map[string][][]string)

	if err := a.analyzeTargets(data, chartsDir, tablesDir, sheets); err != nil {
		return err
	}
	if err := a.analyzeLanguage(data, chartsDir, tablesDir, sheets); err != nil {
		return err
	}
	if err := a.analyzeInitiatives(data, chartsDir); err != nil {
		return err
	}
	if err := a.analyzeImpactAreas(data, chartsDir, tablesDir, sheets); err != nil {
		return err
	}

	if len(sheets) > 0 {
		order := []string{"Targets by Year", "Commitment Counts", "Commitment Percentages", "Impact Areas by Year"}
		if err := writeWorkbook(filepath.Join(tablesDir, WorkbookFile), sheets, order); err != nil {
			return err
		}
		console.OK("Saved workbook: %s", WorkbookFile)
	}

	console.Banner("CREATING COMPREHENSIVE DASHBOARD")
	if err := renderDashboard(filepath.Join(chartsDir, DashboardChartFile), data); err != nil {
		return err
	}
	console.OK("Saved comprehensive dashboard: %s", DashboardChartFile)

	console.Banner("CREATING SUMMARY REPORT")
	if err := writeReport(filepath.Join(a.OutputDir, ReportFile), data, a.now()); err != nil {
		return err
	}
	console.OK("Saved summary report: %s", ReportFile)

	console.Banner("ANALYSIS COMPLETE")
	console.Printf("All outputs saved to:")
	console.Printf("  Charts: %s", chartsDir)
	console.Printf("  Tables: %s", tablesDir)
	console.Printf("  Summary: %s", filepath.Join(a.OutputDir, ReportFile))
	return nil
}

func (a *Analyzer) analyzeTargets(d *Data, chartsDir, tablesDir string, sheets map[string][][]string) error {
	series := TargetsByYear(d.Targets)
	if len(series) == 0 {
		console.Printf("No targets data available")
		return nil
	}
	console.Banner("ANALYZING TARGETS OVER TIME")

	p, err := targetsPlot(series)
	if err != nil {
		return err
	}
	if err := savePlot(p, filepath.Join(chartsDir, TargetsChartFile)); err != nil {
		return err
	}
	console.OK("Saved chart: %s", TargetsChartFile)

	table := targetsTable(YearOverYear(series))
	if err := writeTable(filepath.Join(tablesDir, TargetsTableFile), table); err != nil {
		return err
	}
	console.OK("Saved table: %s", TargetsTableFile)
	sheets["Targets by Year"] = table
	return nil
}

func (a *Analyzer) analyzeLanguage(d *Data, chartsDir, tablesDir string, sheets map[string][][]string) error {
	m := LanguageMatrix(d.Language)
	if m.Empty() {
		console.Printf("No language data available")
		return nil
	}
	console.Banner("ANALYZING COMMITMENT LANGUAGE PATTERNS")

	p, err := languagePlot(m)
	if err != nil {
		return err
	}
	if err := savePlot(p, filepath.Join(chartsDir, LanguageChartFile)); err != nil {
		return err
	}
	console.OK("Saved chart: %s", LanguageChartFile)

	counts := languageCountsTable(m)
	if err := writeTable(filepath.Join(tablesDir, LanguageCountsFile), counts); err != nil {
		return err
	}
	console.OK("Saved table: %s", LanguageCountsFile)
	sheets["Commitment Counts"] = counts

	pcts := languagePctTable(m)
	if err := writeTable(filepath.Join(tablesDir, LanguagePctFile), pcts); err != nil {
		return err
	}
	console.OK("Saved table: %s", LanguagePctFile)
	sheets["Commitment Percentages"] = pcts
	return nil
}

func (a *Analyzer) analyzeInitiatives(d *Data, chartsDir string) error {
	series := InitiativesByYear(d.Initiatives)
	if len(series) == 0 {
		console.Printf("No initiatives data available")
		return nil
	}
	console.Banner("ANALYZING INITIATIVES")

	p, err := initiativesPlot(series)
	if err != nil {
		return err
	}
	if err := savePlot(p, filepath.Join(chartsDir, InitiativeChartFile)); err != nil {
		return err
	}
	console.OK("Saved chart: %s", InitiativeChartFile)
	return nil
}

func (a *Analyzer) analyzeImpactAreas(d *Data, chartsDir, tablesDir string, sheets map[string][][]string) error {
	m := BuildImpactMatrix(d.ImpactAreas)
	if m.Empty() {
		console.Printf("No impact areas data available")
		return nil
	}
	console.Banner("ANALYZING IMPACT AREAS")

	p, err := heatmapPlot(m)
	if err != nil {
		return err
	}
	if err := savePlot(p, filepath.Join(chartsDir, HeatmapChartFile)); err != nil {
		return err
	}
	console.OK("Saved chart: %s", HeatmapChartFile)

	if top := TopImpactAreas(d.ImpactAreas, 5); len(top) > 0 {
		p, err := trendsPlot(m, top)
		if err != nil {
			return err
		}
		if err := savePlot(p, filepath.Join(chartsDir, TrendsChartFile)); err != nil {
			return err
		}
		console.OK("Saved chart: %s", TrendsChartFile)
	}

	table := impactTable(m)
	if err := writeTable(filepath.Join(tablesDir, ImpactTableFile), table); err != nil {
		return err
	}
	console.OK("Saved table: %s", ImpactTableFile)
	sheets["Impact Areas by Year"] = table
	return nil
}
