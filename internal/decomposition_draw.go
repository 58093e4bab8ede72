package internal

import (
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// Padding around the domain so points on the edge stay visible
const drawPadding = 20

// Render the decomposition: region fills, the chord of every cut, then the
// points. Points on a cut are drawn hollow.
func (d *Decomposition) Draw(scale float64) *gg.Context {
	bounds := d.Domain.Bounds()
	width := int(scale*bounds.Width()) + drawPadding*2
	height := int(scale*bounds.Height()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-bounds.Min.X, -bounds.Min.Y)

	for i, region := range d.Regions {
		fill := colorful.Hsv(360*float64(i)/float64(len(d.Regions)), 0.4, 0.35)
		tracePolygon(c, region.Polygon)
		c.SetRGB(fill.R, fill.G, fill.B)
		c.Fill()
	}

	// Line widths are in user space, so undo the scale
	c.SetLineWidth(2 / scale)
	tracePolygon(c, d.Domain)
	c.SetRGB(1, 1, 1)
	c.Stroke()
	for level := 0; level < len(d.Segments); level++ {
		shade := 1 - 0.6*float64(level)/float64(len(d.Segments))
		for _, chord := range d.Segments[level] {
			c.DrawLine(chord.Start.X, chord.Start.Y, chord.End.X, chord.End.Y)
			c.SetRGB(shade, shade, shade)
			c.Stroke()
		}
	}

	radius := 4 / scale
	for _, region := range d.Regions {
		for color, points := range region.Points.Colors {
			r, g, b := pointColor(color, len(region.Points.Colors))
			c.SetRGB(r, g, b)
			for _, p := range points {
				c.DrawCircle(p.X, p.Y, radius)
				c.Fill()
			}
		}
	}
	c.SetRGB(1, 1, 0)
	for _, p := range d.OnCut {
		c.DrawCircle(p.X, p.Y, radius)
		c.Stroke()
	}
	return c
}

func tracePolygon(c *gg.Context, poly Polygon) {
	if len(poly.Points) == 0 {
		return
	}
	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, p := range poly.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Colors are spread evenly around the hue wheel, starting from red
func pointColor(color, colorCount int) (r, g, b float64) {
	if colorCount < 1 {
		colorCount = 1
	}
	hue := colorful.Hsv(360*float64(color)/float64(colorCount), 0.9, 1)
	return hue.R, hue.G, hue.B
}
