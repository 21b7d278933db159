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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jetsetilly/presetselector/curated"
)

// the default number of frames a screenshot workload may take before the
// shot command gives up
const defaultShotFrames = 600

func newShotCommand(ctx *commandContext) *cobra.Command {
	var target string
	var frames int

	cmd := &cobra.Command{
		Use:   "shot",
		Short: "Take a screenshot of a preset on the simulated host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := ctx.simulator(false)
			if err != nil {
				return err
			}
			defer sim.close()

			target = strings.TrimSpace(target)
			if target == "" {
				target = sim.cfg.Host.Presets[0]
			}
			target = sim.cfg.Preset(target)

			sim.host.SetEcho(cmd.ErrOrStderr())
			sim.addon.Screenshot(target)

			for range frames {
				sim.host.Frame()
				if !sim.addon.Busy() {
					break
				}
			}
			if sim.addon.Busy() {
				return curated.Errorf("screenshot: not finished after %d frames", frames)
			}

			last := sim.addon.LastScreenshot()
			if last == "" {
				return curated.Errorf("screenshot: no file written")
			}

			fmt.Fprintln(cmd.OutOrStdout(), last)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Preset to take a screenshot of (default first configured preset)")
	cmd.Flags().IntVar(&frames, "frames", defaultShotFrames, "Maximum number of frames to run")

	return cmd
}
