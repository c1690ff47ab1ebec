package icon

import "math"

// Box is a pixel-inclusive rectangle: it covers X2-X1+1 columns and
// Y2-Y1+1 rows.
type Box struct {
	X1, Y1, X2, Y2 int
}

// Width returns the number of columns covered by b.
func (b Box) Width() int { return b.X2 - b.X1 + 1 }

// Height returns the number of rows covered by b.
func (b Box) Height() int { return b.Y2 - b.Y1 + 1 }

// Circle is a disc centered on pixel (X, Y).
type Circle struct {
	X, Y, R int
}

// Bounds returns the pixel-inclusive bounding box of c.
func (c Circle) Bounds() Box {
	return Box{X1: c.X - c.R, Y1: c.Y - c.R, X2: c.X + c.R, Y2: c.Y + c.R}
}

// Tick is a horizontal measurement mark on row Y from X1 to X2.
type Tick struct {
	X1, X2, Y int
}

// tickOffsets are the vertical tick positions relative to the center, in
// base-100 units.
var tickOffsets = [...]float64{-20, -10, 0}

// Geometry holds the integer layout of every icon feature for one size.
type Geometry struct {
	Size    int
	Scale   float64
	CenterX int
	CenterY int

	Badge       Box
	BadgeRadius int

	Body       Box
	BodyRadius int
	Bulb       Circle

	Mercury       Box
	MercuryRadius int
	MercuryBulb   Circle

	Ticks     [len(tickOffsets)]Tick
	TickWidth int
}

// Layout computes the icon geometry for a square canvas of the given size.
// Base-100 constants are multiplied by size/100 and truncated toward zero.
func Layout(size int) Geometry {
	scale := float64(size) / 100
	at := func(k float64) int { return int(k * scale) }

	g := Geometry{
		Size:        size,
		Scale:       scale,
		CenterX:     size / 2,
		CenterY:     size / 2,
		Badge:       Box{X1: 0, Y1: 0, X2: size - 1, Y2: size - 1},
		BadgeRadius: size / 5,
	}
	cx, cy := g.CenterX, g.CenterY

	bodyWidth := at(16)
	g.Body = Box{
		X1: cx - bodyWidth/2,
		Y1: cy - at(25),
		X2: cx + bodyWidth/2,
		Y2: cy + at(10),
	}
	g.BodyRadius = at(8)
	g.Bulb = Circle{X: cx, Y: cy + at(18), R: at(12)}

	mercuryWidth := at(8)
	g.Mercury = Box{
		X1: cx - mercuryWidth/2,
		Y1: cy - at(15),
		X2: cx + mercuryWidth/2,
		Y2: cy + at(10),
	}
	g.MercuryRadius = at(4)
	g.MercuryBulb = Circle{X: cx, Y: g.Bulb.Y, R: at(8)}

	tickStart := cx + bodyWidth/2
	tickEnd := tickStart + at(5)
	for i, off := range tickOffsets {
		g.Ticks[i] = Tick{X1: tickStart, X2: tickEnd, Y: cy + at(off)}
	}
	g.TickWidth = max(1, int(math.Round(1.5*scale)))

	return g
}
