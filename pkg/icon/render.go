package icon

import (
	"bytes"
	"image"
	"image/color"
	"os"

	"github.com/fogleman/gg"

	errs "github.com/matzehuels/thermoicon/pkg/errors"
)

// Option configures icon rendering.
type Option func(*renderer)

type renderer struct {
	background Background
}

// WithBackground selects the badge fill. The default is BackgroundGradient.
func WithBackground(b Background) Option {
	return func(r *renderer) { r.background = b }
}

func newRenderer(opts []Option) renderer {
	r := renderer{background: BackgroundGradient}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Draw composes the icon onto a fresh size×size canvas and returns it.
func Draw(size int, opts ...Option) (image.Image, error) {
	if err := errs.ValidateSize(size); err != nil {
		return nil, err
	}
	r := newRenderer(opts)
	dc, err := r.draw(Layout(size))
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// Encode renders the icon at the given size and returns the PNG bytes.
// Output is deterministic: equal arguments yield identical bytes.
func Encode(size int, opts ...Option) ([]byte, error) {
	if err := errs.ValidateSize(size); err != nil {
		return nil, err
	}
	r := newRenderer(opts)
	dc, err := r.draw(Layout(size))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeEncodeFailed, err, "encode %dx%d icon", size, size)
	}
	return buf.Bytes(), nil
}

// Render writes the icon at the given size to path as PNG, replacing any
// existing file. The parent directory must already exist.
func Render(size int, path string, opts ...Option) error {
	if err := errs.ValidateOutputPath(path); err != nil {
		return err
	}
	data, err := Encode(size, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}

// draw paints each layer in order; later layers cover earlier ones.
func (r renderer) draw(g Geometry) (*gg.Context, error) {
	dc := gg.NewContext(g.Size, g.Size)

	switch r.background {
	case BackgroundGradient:
		grad := gg.NewLinearGradient(0, 0, 0, float64(g.Size))
		grad.AddColorStop(0, badgeSample(0))
		grad.AddColorStop(1, badgeSample(1))
		dc.SetFillStyle(grad)
		roundedBox(dc, g.Badge, g.BadgeRadius)
		dc.Fill()
	case BackgroundFlat:
		r.paint(dc, badgeSample(0), func(dc *gg.Context) {
			roundedBox(dc, g.Badge, g.BadgeRadius)
			dc.Fill()
		})
	default:
		return nil, errs.New(errs.ErrCodeInvalidBackground, "unknown background %q", r.background)
	}

	r.paint(dc, white(glassAlpha), func(dc *gg.Context) {
		roundedBox(dc, g.Body, g.BodyRadius)
		dc.Fill()
		circle(dc, g.Bulb)
		dc.Fill()
	})

	r.paint(dc, opaque(Mercury), func(dc *gg.Context) {
		roundedBox(dc, g.Mercury, g.MercuryRadius)
		dc.Fill()
		circle(dc, g.MercuryBulb)
		dc.Fill()
	})

	r.paint(dc, white(tickAlpha), func(dc *gg.Context) {
		dc.SetLineWidth(float64(g.TickWidth))
		dc.SetLineCapButt()
		for _, t := range g.Ticks {
			// Pixel row Y spans [Y, Y+1); stroke along its middle.
			y := float64(t.Y) + 0.5
			dc.DrawLine(float64(t.X1), y, float64(t.X2+1), y)
			dc.Stroke()
		}
	})

	return dc, nil
}

// layer draws and fills or strokes one layer's shapes in the current color.
type layer func(dc *gg.Context)

// paint applies one layer in color c.
//
// Gradient icons blend anti-aliased shapes over what is already there.
// Flat icons match the earlier releases instead: the layer is rasterized
// without anti-aliasing and c, alpha included, replaces the pixels it
// covers, so translucent glass and ticks leave see-through holes.
func (r renderer) paint(dc *gg.Context, c color.NRGBA, l layer) {
	if r.background != BackgroundFlat {
		dc.SetColor(c)
		l(dc)
		return
	}

	mask := gg.NewContext(dc.Width(), dc.Height())
	mask.SetColor(color.Opaque)
	l(mask)
	replace(dc.Image().(*image.RGBA), mask.AsMask(), c)
}

// replace writes c into every pixel of dst that mask covers by at least half.
func replace(dst *image.RGBA, mask *image.Alpha, c color.NRGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				dst.Set(x, y, c)
			}
		}
	}
}

func roundedBox(dc *gg.Context, b Box, radius int) {
	dc.DrawRoundedRectangle(float64(b.X1), float64(b.Y1), float64(b.Width()), float64(b.Height()), float64(radius))
}

func circle(dc *gg.Context, c Circle) {
	// Bounds() is pixel-inclusive, so the disc spans 2R+1 pixels.
	dc.DrawCircle(float64(c.X)+0.5, float64(c.Y)+0.5, float64(c.R)+0.5)
}
