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
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jetsetilly/presetselector/curated"
	"github.com/jetsetilly/presetselector/hostsim"
	"github.com/jetsetilly/presetselector/statsview"
)

// crlfWriter is used for output while the terminal is in raw mode
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	_, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// readLines sends a key event for every line read from r. the events
// channel is closed when r is exhausted
func readLines(ctx context.Context, r io.Reader, events chan<- hostsim.KeyEvent, errOut io.Writer) {
	defer close(events)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ev, err := hostsim.ParseLine(scanner.Text())
		if err != nil {
			fmt.Fprintf(errOut, "* %v\n", err)
			continue
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
		if ev.Quit {
			return
		}
	}
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var useStatsview bool
	var memvizFile string
	var frames int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulated host with the addon attached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if useStatsview && !statsview.Available() {
				return curated.Errorf("statsview not available in this build")
			}

			sim, err := ctx.simulator(true)
			if err != nil {
				return err
			}
			defer sim.close()

			if memvizFile != "" {
				defer func() {
					f, err := os.Create(memvizFile)
					if err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "* memviz: %v\n", err)
						return
					}
					defer f.Close()
					memviz.Map(f, sim.addon)
				}()
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.ErrOrStderr()
			events := make(chan hostsim.KeyEvent, 16)

			var kb *hostsim.Keyboard
			if stdinIsTerminal() && cmd.InOrStdin() == os.Stdin {
				kb, err = hostsim.OpenKeyboard("")
				if err != nil {
					return err
				}
				defer kb.Close()
				out = crlfWriter{w: out}
			}

			sim.host.SetEcho(out)

			if useStatsview {
				defer statsview.Launch(out)()
			}

			fmt.Fprintf(out, "running %s at %d fps\n", sim.host.CurrentPreset(), sim.cfg.Host.FrameRate)

			if kb != nil {
				go func() {
					defer close(events)
					if err := kb.Run(runCtx, events); err != nil {
						fmt.Fprintf(out, "* %v\n", err)
					}
				}()
			} else {
				go readLines(runCtx, cmd.InOrStdin(), events, out)
			}

			return runFrames(runCtx, sim, events, frames)
		},
	}

	cmd.Flags().BoolVar(&useStatsview, "statsview", false, "Launch the statistics server")
	cmd.Flags().StringVar(&memvizFile, "memviz", "", "Write graphviz dump of the addon state on exit")
	cmd.Flags().IntVar(&frames, "frames", 0, "Number of frames to run (0 for unlimited)")

	return cmd
}

// runFrames runs the simulated host at the configured frame rate. one key
// event is applied per frame. the loop ends on a quit event, when the frame
// limit is reached, or when the input is exhausted and the addon is idle
func runFrames(ctx context.Context, sim *simulator, events <-chan hostsim.KeyEvent, frames int) error {
	ticker := time.NewTicker(time.Second / time.Duration(sim.cfg.Host.FrameRate))
	defer ticker.Stop()

	inputDone := false

	for n := 0; frames <= 0 || n < frames; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if !inputDone {
			select {
			case ev, ok := <-events:
				if !ok {
					inputDone = true
				} else if ev.Quit {
					return nil
				} else {
					sim.host.Apply(ev)
				}
			default:
			}
		}

		sim.host.Frame()

		if inputDone && !sim.addon.Busy() {
			return nil
		}
	}

	return nil
}
