// Package pkg holds the thermoicon libraries.
//
//   - [icon]: thermometer badge geometry, rendering and PNG output
//   - [errors]: coded errors and input validation shared by the CLI
//   - [buildinfo]: version information injected at build time
//
// Render the default icon set from Go code:
//
//	for _, t := range []struct {
//	    size int
//	    path string
//	}{
//	    {192, "public/pwa-192x192.png"},
//	    {512, "public/pwa-512x512.png"},
//	    {180, "public/apple-touch-icon.png"},
//	} {
//	    if err := icon.Render(t.size, t.path); err != nil {
//	        return err
//	    }
//	}
//
// [icon]: github.com/matzehuels/thermoicon/pkg/icon
// [errors]: github.com/matzehuels/thermoicon/pkg/errors
// [buildinfo]: github.com/matzehuels/thermoicon/pkg/buildinfo
package pkg
