// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jetsetilly/presetselector/addon"
	"github.com/jetsetilly/presetselector/curated"
	"github.com/jetsetilly/presetselector/paths"
)

//go:embed sample_config.toml
var sampleConfig string

// DefaultFile is the name of the configuration file in the resource
// directory.
const DefaultFile = "presetsel.toml"

// Host contains the configuration of the simulated host.
type Host struct {
	BasePath       string   `toml:"base_path"`
	ScreenshotPath string   `toml:"screenshot_path"`
	Presets        []string `toml:"presets"`
	FrameRate      int      `toml:"frame_rate"`
	RenderDelay    int      `toml:"render_delay"`
	Width          int      `toml:"width"`
	Height         int      `toml:"height"`
}

// Addon contains the configuration of the addon.
type Addon struct {
	BindingsFile string `toml:"bindings_file"`
	Watch        bool   `toml:"watch"`
}

// Config is the configuration for the presetsel command.
type Config struct {
	Host  Host  `toml:"host"`
	Addon Addon `toml:"addon"`
}

// Default returns a configuration with every value set to its default.
func Default() Config {
	return Config{
		Host: Host{
			BasePath:       paths.ResourcePath("host"),
			ScreenshotPath: "screenshots",
			Presets:        []string{"default.ini"},
			FrameRate:      60,
			RenderDelay:    2,
			Width:          320,
			Height:         240,
		},
		Addon: Addon{
			BindingsFile: paths.ResourcePath(addon.DefaultBindingsFile),
			Watch:        true,
		},
	}
}

// DefaultPath returns the path of the configuration file in the resource
// directory.
func DefaultPath() string {
	return paths.ResourcePath(DefaultFile)
}

// Load the configuration file. An empty path means the default path. A file
// that does not exist is not an error and results in the default
// configuration. Returns the configuration and the path that was used.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", curated.Errorf("config: %v", err)
		}
	} else {
		defer f.Close()
		if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, "", curated.Errorf("config: %v", err)
		}
	}

	cfg.normalise()

	if err := cfg.Validate(); err != nil {
		return nil, "", curated.Errorf("config: %v", err)
	}

	return &cfg, path, nil
}

// empty values in the file are replaced by the defaults
func (c *Config) normalise() {
	def := Default()

	c.Host.BasePath = strings.TrimSpace(c.Host.BasePath)
	if c.Host.BasePath == "" {
		c.Host.BasePath = def.Host.BasePath
	}

	c.Addon.BindingsFile = strings.TrimSpace(c.Addon.BindingsFile)
	if c.Addon.BindingsFile == "" {
		c.Addon.BindingsFile = def.Addon.BindingsFile
	}

	presets := c.Host.Presets[:0]
	for _, p := range c.Host.Presets {
		p = strings.TrimSpace(p)
		if p != "" {
			presets = append(presets, p)
		}
	}
	c.Host.Presets = presets
	if len(c.Host.Presets) == 0 {
		c.Host.Presets = def.Host.Presets
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Host.FrameRate < 1 || c.Host.FrameRate > 1000 {
		return curated.Errorf("host.frame_rate must be between 1 and 1000")
	}
	if c.Host.RenderDelay < 0 {
		return curated.Errorf("host.render_delay must not be negative")
	}
	if c.Host.Width < 1 || c.Host.Height < 1 {
		return curated.Errorf("host.width and host.height must be positive")
	}
	return nil
}

// Preset returns the full path of a preset. Relative preset paths are
// relative to the host's base path.
func (c *Config) Preset(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Host.BasePath, p)
}

// Sample returns an example configuration file with every value documented.
func Sample() string {
	return sampleConfig
}

// WriteSample writes the example configuration to the path. An existing file
// is not overwritten.
func WriteSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return curated.Errorf("config: %v", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return curated.Errorf("config: %v", err)
	}
	if _, err := f.WriteString(sampleConfig); err != nil {
		f.Close()
		return curated.Errorf("config: %v", err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf("config: %v", err)
	}
	return nil
}
