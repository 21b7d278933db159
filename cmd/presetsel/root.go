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

package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/jetsetilly/presetselector/addon"
	"github.com/jetsetilly/presetselector/bindstore"
	"github.com/jetsetilly/presetselector/config"
	"github.com/jetsetilly/presetselector/hostsim"
	"github.com/jetsetilly/presetselector/version"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configPath, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

func (c *commandContext) store() (*bindstore.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return bindstore.NewStore(cfg.Addon.BindingsFile)
}

// simulator is the simulated host with the addon attached
type simulator struct {
	cfg   *config.Config
	host  *hostsim.Host
	addon *addon.Addon
}

func (c *commandContext) simulator(watch bool) (*simulator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	h := hostsim.NewHost(cfg.Host.BasePath, cfg.Preset(cfg.Host.Presets[0]))
	h.SetConfigValue("SCREENSHOT", "SavePath", cfg.Host.ScreenshotPath)
	h.SetRenderDelay(cfg.Host.RenderDelay)
	h.SetScreenSize(cfg.Host.Width, cfg.Host.Height)

	a, err := addon.New(h, addon.Options{
		BindingsFile: cfg.Addon.BindingsFile,
		Watch:        watch && cfg.Addon.Watch,
	})
	if err != nil {
		return nil, err
	}
	h.SetListener(a)

	return &simulator{cfg: cfg, host: h, addon: a}, nil
}

func (s *simulator) close() error {
	return s.addon.Close()
}

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           version.ApplicationName,
		Short:         "Keyboard shortcuts for presets, with a simulated host",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newShotCommand(ctx))
	rootCmd.AddCommand(newBindingsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
