// Package chart renders a vertex sequence as a scatter plot with one
// index label per point, the way the original header arrays are
// inspected: plus markers, red indices, equal aspect on both axes.
package chart

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"vplot-go/pkg/vertex"
)

// labelOffset keeps each index label off its marker: the label for a
// point at (x, y) is anchored at (x+1, y+1) in data coordinates.
const labelOffset = 1.0

var labelColor = color.RGBA{R: 255, A: 255}

// New builds the plot for seq: one plus marker per point and one red
// label per point carrying the point's zero-based index. An empty
// sequence yields an empty plot, not an error.
func New(seq vertex.Sequence, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	markers, err := plotter.NewScatter(seq)
	if err != nil {
		return nil, err
	}
	markers.GlyphStyle.Shape = draw.PlusGlyph{}
	p.Add(markers)

	labels, err := plotter.NewLabels(indexLabels(seq))
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = labelColor
	}
	p.Add(labels)

	squareRanges(p, seq)

	return p, nil
}

// Save writes the plot as a square PNG. Together with the equal axis
// spans from squareRanges this gives an equal aspect ratio.
func Save(p *plot.Plot, path string) error {
	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}

func indexLabels(seq vertex.Sequence) plotter.XYLabels {
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(seq)),
		Labels: make([]string, len(seq)),
	}
	for i, pt := range seq {
		xyl.XYs[i] = plotter.XY{X: pt.X + labelOffset, Y: pt.Y + labelOffset}
		xyl.Labels[i] = strconv.Itoa(i)
	}
	return xyl
}

// squareRanges sets the axis ranges so both spans are equal, centered
// on the data (markers plus label anchors), with a small margin so
// nothing sits on the frame.
func squareRanges(p *plot.Plot, seq vertex.Sequence) {
	if len(seq) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return
	}

	minX, maxX := seq[0].X, seq[0].X+labelOffset
	minY, maxY := seq[0].Y, seq[0].Y+labelOffset
	for _, pt := range seq[1:] {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X+labelOffset)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y+labelOffset)
	}

	// span is never zero: the label anchors extend labelOffset past the
	// markers even for a single point.
	span := math.Max(maxX-minX, maxY-minY) * 1.05

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2
}
