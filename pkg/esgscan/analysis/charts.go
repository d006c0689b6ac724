package analysis

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Chart file names, written under the charts/ subdirectory.
const (
	TargetsChartFile    = "targets_by_year.png"
	LanguageChartFile   = "commitment_language_over_time.png"
	InitiativeChartFile = "initiatives_over_time.png"
	HeatmapChartFile    = "impact_areas_heatmap.png"
	TrendsChartFile     = "top_impact_areas_trends.png"
	DashboardChartFile  = "comprehensive_dashboard.png"
)

var (
	steelBlue      = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	navy           = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	strongGreen    = color.RGBA{R: 0x2E, G: 0x7D, B: 0x32, A: 255}
	moderateOrange = color.RGBA{R: 0xFF, G: 0xA7, B: 0x26, A: 255}
	weakRed        = color.RGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 255}
	lineBlue       = color.RGBA{R: 0x19, G: 0x76, B: 0xD2, A: 255}
	coral          = color.RGBA{R: 255, G: 127, B: 80, A: 255}
	mediumPurple   = color.RGBA{R: 147, G: 112, B: 219, A: 255}
)

func strengthColor(strength string) color.Color {
	switch strength {
	case StrengthOrder[0]:
		return strongGreen
	case StrengthOrder[1]:
		return moderateOrange
	default:
		return weakRed
	}
}

func yearLabels(years []int) []string {
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y)
	}
	return labels
}

// targetsPlot is the yearly target-mention bar chart.
func targetsPlot(series []YearCount) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "ESG Targets and Goals Mentions by Year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Target/Goal Mentions"

	vals := make(plotter.Values, len(series))
	labels := make([]string, len(series))
	for i, yc := range series {
		vals[i] = float64(yc.Count)
		labels[i] = strconv.Itoa(yc.Year)
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(30))
	if err != nil {
		return nil, err
	}
	bars.Color = steelBlue
	bars.LineStyle.Color = navy
	p.Add(bars)
	p.NominalX(labels...)
	return p, nil
}

// languagePlot is the stacked commitment-strength bar chart: one bar per
// year, segments stacked Strong, Moderate, Weak bottom to top.
func languagePlot(m StrengthMatrix) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Commitment Language Strength Over Time"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Phrases"

	var prev *plotter.BarChart
	for _, strength := range StrengthOrder {
		vals := make(plotter.Values, len(m.Years))
		for i, y := range m.Years {
			vals[i] = float64(m.Count(y, strength))
		}
		bars, err := plotter.NewBarChart(vals, vg.Points(30))
		if err != nil {
			return nil, err
		}
		bars.Color = strengthColor(strength)
		bars.LineStyle.Width = 0
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(strength, bars)
		prev = bars
	}
	p.Legend.Top = true
	p.NominalX(yearLabels(m.Years)...)
	return p, nil
}

// initiativesPlot is the yearly initiative-mention line chart.
func initiativesPlot(series []YearCount) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "ESG Initiatives Mentioned Over Time"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Initiative Mentions"

	pts := make(plotter.XYs, len(series))
	ticks := make([]plot.Tick, len(series))
	for i, yc := range series {
		pts[i] = plotter.XY{X: float64(yc.Year), Y: float64(yc.Count)}
		ticks[i] = plot.Tick{Value: float64(yc.Year), Label: strconv.Itoa(yc.Year)}
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = lineBlue
	line.Width = vg.Points(2)
	points.Shape = draw.CircleGlyph{}
	points.Color = lineBlue
	p.Add(line, points)
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	return p, nil
}

// impactGrid adapts an ImpactMatrix to the heat map's grid interface:
// columns are years, rows are areas.
type impactGrid struct{ m ImpactMatrix }

func (g impactGrid) Dims() (c, r int)   { return len(g.m.Years), len(g.m.Areas) }
func (g impactGrid) Z(c, r int) float64 { return float64(g.m.Sum(g.m.Areas[r], g.m.Years[c])) }
func (g impactGrid) X(c int) float64    { return float64(c) }
func (g impactGrid) Y(r int) float64    { return float64(r) }

// heatmapPlot is the impact-area × year occurrence heat map.
func heatmapPlot(m ImpactMatrix) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "ESG Impact Areas Heatmap (Mentions by Year)"
	p.X.Label.Text = "Year"

	hm := plotter.NewHeatMap(impactGrid{m: m}, palette.Heat(12, 1))
	p.Add(hm)

	xTicks := make([]plot.Tick, len(m.Years))
	for i, y := range m.Years {
		xTicks[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(y)}
	}
	yTicks := make([]plot.Tick, len(m.Areas))
	for i, a := range m.Areas {
		yTicks[i] = plot.Tick{Value: float64(i), Label: a}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	return p, nil
}

// trendsPlot draws one line per top impact area across the known years.
func trendsPlot(m ImpactMatrix, top []AreaTotal) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Top 5 ESG Impact Areas - Trends Over Time"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Mentions"

	ticks := make([]plot.Tick, len(m.Years))
	for i, y := range m.Years {
		ticks[i] = plot.Tick{Value: float64(y), Label: strconv.Itoa(y)}
	}

	args := make([]interface{}, 0, 2*len(top))
	for _, at := range top {
		pts := make(plotter.XYs, len(m.Years))
		for i, y := range m.Years {
			pts[i] = plotter.XY{X: float64(y), Y: float64(m.Sum(at.Area, y))}
		}
		args = append(args, at.Area, pts)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return nil, err
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Legend.Top = true
	return p, nil
}

// strengthSharePlot is the dashboard's commitment-strength distribution
// panel: each strength's share of all phrases as a percentage bar.
func strengthSharePlot(shares []StrengthShare) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Commitment Language Distribution"
	p.Y.Label.Text = "% of Phrases"

	vals := make(plotter.Values, len(shares))
	labels := make([]string, len(shares))
	for i, s := range shares {
		vals[i] = s.Pct
		labels[i] = s.Strength
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(30))
	if err != nil {
		return nil, err
	}
	bars.Color = coral
	p.Add(bars)
	p.NominalX(labels...)
	return p, nil
}

// topAreasPlot is the dashboard's top impact areas panel, drawn as a
// horizontal bar chart so the area names stay readable.
func topAreasPlot(top []AreaTotal) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Top ESG Impact Areas"
	p.X.Label.Text = "Total Mentions"

	// Reverse so the largest total ends up on top.
	vals := make(plotter.Values, len(top))
	labels := make([]string, len(top))
	for i, at := range top {
		j := len(top) - 1 - i
		vals[j] = float64(at.Total)
		labels[j] = at.Area
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = mediumPurple
	p.Add(bars)
	p.NominalY(labels...)
	return p, nil
}

// docTypesPlot is the dashboard's documents-analyzed panel.
func docTypesPlot(types []TypeCount) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Target Mentions by Document Type"
	p.X.Label.Text = "Target Mentions"

	vals := make(plotter.Values, len(types))
	labels := make([]string, len(types))
	for i, tc := range types {
		j := len(types) - 1 - i
		vals[j] = float64(tc.Count)
		labels[j] = tc.DocumentType
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = steelBlue
	p.Add(bars)
	p.NominalY(labels...)
	return p, nil
}

// savePlot renders a single chart at the standard standalone size.
func savePlot(p *plot.Plot, path string) error {
	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// renderDashboard composes the six-panel overview image. Panels whose
// data is empty are left blank rather than failing the dashboard.
func renderDashboard(path string, d *Data) error {
	plots := make([][]*plot.Plot, 3)
	for i := range plots {
		plots[i] = make([]*plot.Plot, 2)
	}

	if series := TargetsByYear(d.Targets); len(series) > 0 {
		p, err := targetsPlot(series)
		if err != nil {
			return err
		}
		plots[0][0] = p
	}
	if shares := StrengthShares(d.Language); len(shares) > 0 {
		p, err := strengthSharePlot(shares)
		if err != nil {
			return err
		}
		plots[0][1] = p
	}
	if series := InitiativesByYear(d.Initiatives); len(series) > 0 {
		p, err := initiativesPlot(series)
		if err != nil {
			return err
		}
		plots[1][0] = p
	}
	if top := TopImpactAreas(d.ImpactAreas, 8); len(top) > 0 {
		p, err := topAreasPlot(top)
		if err != nil {
			return err
		}
		plots[1][1] = p
	}
	if types := TargetsByDocumentType(d.Targets); len(types) > 0 {
		p, err := docTypesPlot(types)
		if err != nil {
			return err
		}
		plots[2][0] = p
	}

	img := vgimg.New(16*vg.Inch, 12*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 3, Cols: 2,
		PadX: vg.Points(20), PadY: vg.Points(20),
		PadTop: vg.Points(10), PadBottom: vg.Points(10),
		PadLeft: vg.Points(10), PadRight: vg.Points(10),
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing dashboard: %w", err)
	}
	return nil
}
