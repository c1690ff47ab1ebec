package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	errs "github.com/matzehuels/thermoicon/pkg/errors"
)

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestRenderDimensions(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		size int
		name string
	}{
		{192, "pwa-192x192.png"},
		{512, "pwa-512x512.png"},
		{180, "apple-touch-icon.png"},
		{1, "tiny.png"},
		{33, "odd.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := Render(tt.size, path); err != nil {
				t.Fatalf("Render(%d) error = %v", tt.size, err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			cfg, err := png.DecodeConfig(f)
			if err != nil {
				t.Fatalf("DecodeConfig() error = %v", err)
			}
			if cfg.Width != tt.size || cfg.Height != tt.size {
				t.Errorf("dimensions = %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.size, tt.size)
			}
		})
	}
}

func TestRenderOverwritesIdentically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")

	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Render(192, path); err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := Render(192, path); err != nil {
		t.Fatalf("second Render() error = %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("rendering twice produced different bytes")
	}
	if bytes.Equal(first, []byte("stale")) {
		t.Error("existing file was not overwritten")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	for _, bg := range []Background{BackgroundGradient, BackgroundFlat} {
		a, err := Encode(180, WithBackground(bg))
		if err != nil {
			t.Fatalf("Encode(%s) error = %v", bg, err)
		}
		b, err := Encode(180, WithBackground(bg))
		if err != nil {
			t.Fatalf("Encode(%s) error = %v", bg, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("Encode(%s) is not deterministic", bg)
		}
	}
}

func TestMercuryCoversBulbCenter(t *testing.T) {
	for _, size := range []int{180, 192, 512} {
		data, err := Encode(size)
		if err != nil {
			t.Fatalf("Encode(%d) error = %v", size, err)
		}
		img := decodePNG(t, data)
		g := Layout(size)

		got := nrgbaAt(img, g.MercuryBulb.X, g.MercuryBulb.Y)
		want := opaque(Mercury)
		if got != want {
			t.Errorf("size %d: bulb center = %v, want mercury %v", size, got, want)
		}
	}
}

func TestGlassBlendsOverGradient(t *testing.T) {
	data, err := Encode(192)
	if err != nil {
		t.Fatal(err)
	}
	img := decodePNG(t, data)
	g := Layout(192)

	// Inside the body but above the mercury column.
	x, y := g.CenterX, g.Body.Y1+(g.Mercury.Y1-g.Body.Y1)/2
	got := nrgbaAt(img, x, y)
	if got.A != 0xff {
		t.Errorf("glass pixel alpha = %d, want 255", got.A)
	}
	if got.R <= badgeSample(0).R || got.G <= badgeSample(0).G {
		t.Errorf("glass pixel %v should be lighter than badge", got)
	}
}

func TestFlatWritesLayersWithoutBlending(t *testing.T) {
	const size = 192
	data, err := Encode(size, WithBackground(BackgroundFlat))
	if err != nil {
		t.Fatal(err)
	}
	img := decodePNG(t, data)
	g := Layout(size)

	tick := g.Ticks[0]
	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"body glass", g.CenterX, g.Body.Y1 + (g.Mercury.Y1-g.Body.Y1)/2, color.NRGBA{255, 255, 255, 230}},
		{"bulb glass", g.Bulb.X - g.Bulb.R + 2, g.Bulb.Y, color.NRGBA{255, 255, 255, 230}},
		{"tick", (tick.X1 + tick.X2) / 2, tick.Y, color.NRGBA{255, 255, 255, 200}},
		{"mercury", g.CenterX, g.Mercury.Y1 + 5, color.NRGBA{239, 68, 68, 255}},
		{"badge", g.CenterX, 1, color.NRGBA{102, 126, 234, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nrgbaAt(img, tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFlatEdgesAliased(t *testing.T) {
	data, err := Encode(192, WithBackground(BackgroundFlat))
	if err != nil {
		t.Fatal(err)
	}
	img := decodePNG(t, data)

	allowed := map[color.NRGBA]bool{
		{}:                   true,
		{102, 126, 234, 255}: true,
		{255, 255, 255, 230}: true,
		{239, 68, 68, 255}:   true,
		{255, 255, 255, 200}: true,
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := nrgbaAt(img, x, y)
			if c.A == 0 {
				c = color.NRGBA{}
			}
			if !allowed[c] {
				t.Fatalf("pixel (%d, %d) = %v is not a palette color", x, y, c)
			}
		}
	}
}

func TestCornersTransparent(t *testing.T) {
	data, err := Encode(192)
	if err != nil {
		t.Fatal(err)
	}
	img := decodePNG(t, data)

	for _, p := range []image.Point{{0, 0}, {191, 0}, {0, 191}, {191, 191}} {
		if a := nrgbaAt(img, p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, a)
		}
	}
}

func TestBackgroundModes(t *testing.T) {
	const size = 192
	g := Layout(size)
	top := image.Point{X: g.CenterX, Y: 1}
	bottom := image.Point{X: g.CenterX, Y: size - 2}

	t.Run("flat", func(t *testing.T) {
		data, err := Encode(size, WithBackground(BackgroundFlat))
		if err != nil {
			t.Fatal(err)
		}
		img := decodePNG(t, data)
		want := badgeSample(0)
		for _, p := range []image.Point{top, bottom} {
			got := nrgbaAt(img, p.X, p.Y)
			if !near(got.R, want.R, 1) || !near(got.G, want.G, 1) || !near(got.B, want.B, 1) || got.A != 0xff {
				t.Errorf("pixel %v = %v, want %v", p, got, want)
			}
		}
	})

	t.Run("gradient", func(t *testing.T) {
		data, err := Encode(size)
		if err != nil {
			t.Fatal(err)
		}
		img := decodePNG(t, data)
		up := nrgbaAt(img, top.X, top.Y)
		down := nrgbaAt(img, bottom.X, bottom.Y)

		if !near(up.B, 234, 3) {
			t.Errorf("top blue = %d, want ~234", up.B)
		}
		if !near(down.B, 162, 3) {
			t.Errorf("bottom blue = %d, want ~162", down.B)
		}
		if up.G <= down.G {
			t.Errorf("green should fall from top %d to bottom %d", up.G, down.G)
		}
	})
}

func TestSizesShareProportions(t *testing.T) {
	// Sample the same relative positions across sizes; the classified layer
	// must agree everywhere away from feature edges.
	type probe struct {
		name string
		fx   float64
		fy   float64
	}
	points := []probe{
		{"bulb center", 0.5, 0.68},
		{"mercury column", 0.5, 0.50},
		{"glass above mercury", 0.5, 0.30},
		{"badge left", 0.15, 0.5},
	}

	classify := func(c color.NRGBA) string {
		switch {
		case c.A == 0:
			return "transparent"
		case c.R > 200 && c.G < 100:
			return "mercury"
		case c.R > 200 && c.G > 200:
			return "glass"
		default:
			return "badge"
		}
	}

	want := map[string]string{}
	for i, size := range []int{180, 192, 512} {
		data, err := Encode(size)
		if err != nil {
			t.Fatal(err)
		}
		img := decodePNG(t, data)
		for _, p := range points {
			x, y := int(p.fx*float64(size)), int(p.fy*float64(size))
			got := classify(nrgbaAt(img, x, y))
			if i == 0 {
				want[p.name] = got
				continue
			}
			if got != want[p.name] {
				t.Errorf("size %d: %s is %s, size 180 has %s", size, p.name, got, want[p.name])
			}
		}
	}

	if want["bulb center"] != "mercury" || want["glass above mercury"] != "glass" || want["badge left"] != "badge" {
		t.Errorf("unexpected reference classification: %v", want)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		size int
		path string
		code errs.Code
	}{
		{"zero size", 0, filepath.Join(dir, "a.png"), errs.ErrCodeInvalidSize},
		{"negative size", -5, filepath.Join(dir, "b.png"), errs.ErrCodeInvalidSize},
		{"empty path", 16, "", errs.ErrCodeInvalidPath},
		{"missing directory", 16, filepath.Join(dir, "missing", "c.png"), errs.ErrCodeWriteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Render(tt.size, tt.path)
			if err == nil {
				t.Fatal("Render() error = nil, want error")
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("Render() code = %v, want %v (%v)", errs.GetCode(err), tt.code, err)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(dir, "missing")); !os.IsNotExist(err) {
		t.Error("Render() must not create parent directories")
	}
}

func TestWithBackgroundUnknown(t *testing.T) {
	_, err := Encode(16, WithBackground("plaid"))
	if !errs.Is(err, errs.ErrCodeInvalidBackground) {
		t.Errorf("Encode() error = %v, want %v", err, errs.ErrCodeInvalidBackground)
	}
}

func TestDraw(t *testing.T) {
	img, err := Draw(64)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("Draw(64) bounds = %v", b)
	}
	if _, err := Draw(0); err == nil {
		t.Error("Draw(0) error = nil, want error")
	}
}

func TestParseBackground(t *testing.T) {
	tests := []struct {
		in      string
		want    Background
		wantErr bool
	}{
		{"", BackgroundGradient, false},
		{"gradient", BackgroundGradient, false},
		{"flat", BackgroundFlat, false},
		{"radial", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBackground(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBackground(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseBackground(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPaletteValues(t *testing.T) {
	if got := badgeSample(0); got != (color.NRGBA{102, 126, 234, 255}) {
		t.Errorf("badgeSample(0) = %v", got)
	}
	if got := badgeSample(1); got != (color.NRGBA{118, 75, 162, 255}) {
		t.Errorf("badgeSample(1) = %v", got)
	}
	if got := opaque(Mercury); got != (color.NRGBA{239, 68, 68, 255}) {
		t.Errorf("Mercury = %v", got)
	}
}

func TestProbe(t *testing.T) {
	if err := Probe(); err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
}
