package icon

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette colors. Translucent layers are expressed as non-premultiplied
// alpha so they composite over the badge.
var (
	BadgeTop    = mustHex("#667eea")
	BadgeBottom = mustHex("#764ba2")
	Mercury     = mustHex("#ef4444")

	glassAlpha uint8 = 230
	tickAlpha  uint8 = 200
)

// Background selects how the badge is filled.
type Background string

const (
	// BackgroundGradient fills the badge with a vertical gradient from
	// BadgeTop to BadgeBottom.
	BackgroundGradient Background = "gradient"

	// BackgroundFlat reproduces the icons of earlier releases: the badge is
	// the gradient's first sample only, and every layer overwrites the
	// pixels beneath it without blending or anti-aliasing.
	BackgroundFlat Background = "flat"
)

// ParseBackground converts a flag or config value to a Background.
// The empty string selects BackgroundGradient.
func ParseBackground(s string) (Background, error) {
	switch Background(s) {
	case "", BackgroundGradient:
		return BackgroundGradient, nil
	case BackgroundFlat:
		return BackgroundFlat, nil
	default:
		return "", fmt.Errorf("invalid background: %s (must be 'gradient' or 'flat')", s)
	}
}

// badgeSample returns the badge color at fraction t from top (0) to bottom (1).
func badgeSample(t float64) color.NRGBA {
	return opaque(BadgeTop.BlendRgb(BadgeBottom, t))
}

func opaque(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func white(alpha uint8) color.NRGBA {
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: alpha}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
