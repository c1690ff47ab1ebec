// Package icon renders the thermometer app icon as PNG.
//
// # Overview
//
// The icon is a rounded-rectangle badge with a white glass thermometer on
// top: a rounded body, a round bulb, red mercury in both, and three tick
// marks to the right of the body. Every coordinate is derived from the
// requested side length through a single scale factor (size/100), so icons
// of different sizes are self-similar up to integer rounding.
//
//	data, err := icon.Encode(192)
//	err = icon.Render(512, "public/pwa-512x512.png")
//
// # Geometry
//
// [Layout] computes the integer feature positions for a size without
// drawing anything. The renderer consumes the same [Geometry], which keeps
// the scaling behavior testable on its own.
//
// # Background
//
// The badge is filled with a vertical gradient by default and the glass is
// blended over it. [BackgroundFlat] reproduces the historical icons, which
// only ever painted the gradient's first sample across the whole badge and
// wrote each layer straight into the pixels, leaving the glass and ticks
// translucent.
//
//	data, err := icon.Encode(180, icon.WithBackground(icon.BackgroundFlat))
//
// # Backend
//
// Drawing uses github.com/fogleman/gg. [Probe] constructs a tiny canvas and
// encodes it before any real work; callers treat its UNSUPPORTED error as
// "no imaging capability" and skip rendering entirely.
package icon
