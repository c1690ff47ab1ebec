package icon

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	errs "github.com/matzehuels/thermoicon/pkg/errors"
)

// Probe checks that the drawing backend can build a canvas and encode it.
// Any failure, including a panic inside the backend, is reported as an
// UNSUPPORTED error.
func Probe() (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errs.Wrap(errs.ErrCodeUnsupported, fmt.Errorf("%v", p), "raster backend unavailable")
		}
	}()

	dc := gg.NewContext(1, 1)
	dc.SetColor(opaque(Mercury))
	dc.Clear()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return errs.Wrap(errs.ErrCodeUnsupported, err, "raster backend cannot encode PNG")
	}
	if buf.Len() == 0 {
		return errs.New(errs.ErrCodeUnsupported, "raster backend produced an empty PNG")
	}
	return nil
}
