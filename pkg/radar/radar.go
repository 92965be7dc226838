// Package radar renders comparative radar charts of cognitive-function
// importance scores, one polygonal series per tissue class.
package radar

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Series is one closed polygon on the chart.
type Series struct {
	// Label names the series in the legend
	Label string

	// Color draws the outline and markers; the fill uses the same
	// color at low alpha
	Color color.NRGBA

	// Values maps category name to score; categories missing from the
	// map plot as 0
	Values map[string]float64
}

// Chart renders one or more series over a shared set of categories on a
// polar grid. The first category sits at the top and the rest follow
// clockwise, matching the source radar layout.
type Chart struct {
	// Title is drawn above the chart
	Title string

	// Categories is the clockwise category order
	Categories []string

	// Size is the rendered width and height; zero means 8 inches
	Size vg.Length

	// RMax is the radial axis maximum; zero means 1.0
	RMax float64
}

const (
	gridRings    = 5
	ringSegments = 64
	labelRadius  = 1.18
)

// Render draws the chart to path; the image format follows the file
// extension.
func (c *Chart) Render(path string, series ...Series) error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("radar chart has no categories")
	}

	size := c.Size
	if size == 0 {
		size = 8 * vg.Inch
	}
	rMax := c.RMax
	if rMax == 0 {
		rMax = 1.0
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.BackgroundColor = color.White
	p.HideAxes()

	// Fix the data window so the polar layout stays square and leaves
	// room for the category labels.
	margin := 1.45
	p.X.Min, p.X.Max = -margin, margin
	p.Y.Min, p.Y.Max = -margin, margin

	if err := c.addGrid(p, rMax); err != nil {
		return err
	}
	for _, s := range series {
		if err := c.addSeries(p, s, rMax); err != nil {
			return err
		}
	}
	if err := c.addLabels(p); err != nil {
		return err
	}

	if err := p.Save(size, size, path); err != nil {
		return fmt.Errorf("saving chart %s: %w", path, err)
	}
	return nil
}

// angle returns the polar angle of category i: offset pi/2 so the first
// category is at the top, advancing clockwise.
func (c *Chart) angle(i int) float64 {
	return math.Pi/2 - 2*math.Pi*float64(i)/float64(len(c.Categories))
}

// point converts a (category, radius) pair to chart coordinates, with
// radius normalized against rMax.
func (c *Chart) point(i int, r, rMax float64) plotter.XY {
	a := c.angle(i)
	r = r / rMax
	return plotter.XY{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

// addGrid draws the concentric rings and one spoke per category.
func (c *Chart) addGrid(p *plot.Plot, rMax float64) error {
	gridColor := color.NRGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}

	for ring := 1; ring <= gridRings; ring++ {
		r := float64(ring) / float64(gridRings)
		circle := make(plotter.XYs, ringSegments+1)
		for i := 0; i <= ringSegments; i++ {
			a := 2 * math.Pi * float64(i) / float64(ringSegments)
			circle[i] = plotter.XY{X: r * math.Cos(a), Y: r * math.Sin(a)}
		}
		line, err := plotter.NewLine(circle)
		if err != nil {
			return fmt.Errorf("grid ring %d: %w", ring, err)
		}
		line.LineStyle.Color = gridColor
		line.LineStyle.Width = vg.Points(0.5)
		p.Add(line)
	}

	for i := range c.Categories {
		tip := c.point(i, rMax, rMax)
		spoke := plotter.XYs{{X: 0, Y: 0}, tip}
		line, err := plotter.NewLine(spoke)
		if err != nil {
			return fmt.Errorf("grid spoke %d: %w", i, err)
		}
		line.LineStyle.Color = gridColor
		line.LineStyle.Width = vg.Points(0.5)
		p.Add(line)
	}

	return nil
}

// addSeries draws one closed, filled polygon with outline and markers,
// and registers it in the legend.
func (c *Chart) addSeries(p *plot.Plot, s Series, rMax float64) error {
	n := len(c.Categories)
	closed := make(plotter.XYs, n+1)
	open := make(plotter.XYs, n)
	for i, cat := range c.Categories {
		pt := c.point(i, s.Values[cat], rMax)
		closed[i] = pt
		open[i] = pt
	}
	closed[n] = closed[0]

	fill := s.Color
	fill.A = 0x40
	poly, err := plotter.NewPolygon(open)
	if err != nil {
		return fmt.Errorf("series %s polygon: %w", s.Label, err)
	}
	poly.Color = fill
	poly.LineStyle.Color = color.Transparent
	p.Add(poly)

	line, points, err := plotter.NewLinePoints(closed)
	if err != nil {
		return fmt.Errorf("series %s outline: %w", s.Label, err)
	}
	line.LineStyle.Color = s.Color
	line.LineStyle.Width = vg.Points(2.5)
	points.GlyphStyle.Color = s.Color
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(3)
	p.Add(line, points)
	p.Legend.Add(s.Label, line, points)
	p.Legend.Top = true

	return nil
}

// addLabels places the category names just outside the outer ring.
func (c *Chart) addLabels(p *plot.Plot) error {
	xys := make(plotter.XYs, len(c.Categories))
	for i := range c.Categories {
		a := c.angle(i)
		xys[i] = plotter.XY{X: labelRadius * math.Cos(a), Y: labelRadius * math.Sin(a)}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: c.Categories})
	if err != nil {
		return fmt.Errorf("category labels: %w", err)
	}
	p.Add(labels)
	return nil
}

// HexColor parses a "#RRGGBB" color string.
func HexColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
