package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/thermoicon/pkg/errors"
	"github.com/matzehuels/thermoicon/pkg/icon"
)

// Target is one icon to generate.
type Target struct {
	Size int    `toml:"size"`
	Path string `toml:"path"`
}

// Config is the optional TOML batch description.
type Config struct {
	Background string   `toml:"background"`
	Icons      []Target `toml:"icons"`
}

// maxIconSize bounds sizes accepted from flags and config files. A 4096px
// RGBA canvas is already 64 MiB.
const maxIconSize = 4096

// DefaultTargets returns the PWA and Apple touch icon set, in render order.
func DefaultTargets() []Target {
	return []Target{
		{Size: 192, Path: "public/pwa-192x192.png"},
		{Size: 512, Path: "public/pwa-512x512.png"},
		{Size: 180, Path: "public/apple-touch-icon.png"},
	}
}

// loadConfig reads path, or returns the default batch when path is empty.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s", path)
		}
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
		}
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if len(cfg.Icons) == 0 {
		cfg.Icons = DefaultTargets()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := icon.ParseBackground(c.Background); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidBackground, err, "config background")
	}
	for i, t := range c.Icons {
		if err := errs.ValidateSizeLimit(t.Size, maxIconSize); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "icons[%d]", i)
		}
		if err := errs.ValidateOutputPath(t.Path); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "icons[%d]", i)
		}
	}
	return nil
}
