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
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/presetselector/curated"
	"github.com/jetsetilly/presetselector/keybind"
)

func newBindingsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "Manage the bindings file",
	}

	cmd.AddCommand(newBindingsListCommand(ctx))
	cmd.AddCommand(newBindingsAddCommand(ctx))
	cmd.AddCommand(newBindingsRemoveCommand(ctx))
	cmd.AddCommand(newBindingsExportCommand(ctx))

	return cmd
}

func loadBindings(ctx *commandContext) ([]*keybind.Binding, error) {
	s, err := ctx.store()
	if err != nil {
		return nil, err
	}
	return s.Load()
}

func newBindingsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bindings, err := loadBindings(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(bindings) == 0 {
				fmt.Fprintln(out, "no bindings")
				return nil
			}

			rows := make([][]string, 0, len(bindings))
			for i, b := range bindings {
				chord := b.Chord.String()
				if chord == "" {
					chord = "unbound"
				}
				rows = append(rows, []string{
					strconv.Itoa(i),
					keybind.PresetDisplay(b.Preset, keybind.DefaultPresetDisplayLength),
					chord,
					b.Action.String(),
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"#", "Preset", "Chord", "Action"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

// parseAction accepts the stored number of an action or a name
func parseAction(s string) (keybind.Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "switch", "preset", "switch preset":
		return keybind.SwitchPreset, nil
	case "1", "screenshot", "shot", "take screenshot":
		return keybind.TakeScreenshot, nil
	}
	return keybind.SwitchPreset, curated.Errorf("unknown action: %v", s)
}

func newBindingsAddCommand(ctx *commandContext) *cobra.Command {
	var preset string
	var chord string
	var action string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a binding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			preset = strings.TrimSpace(preset)
			if preset == "" {
				return curated.Errorf("a preset is required")
			}

			b := &keybind.Binding{Preset: preset}

			if strings.TrimSpace(chord) != "" {
				c, err := keybind.ParseChordName(chord)
				if err != nil {
					return err
				}
				b.Chord = c
			}

			var err error
			b.Action, err = parseAction(action)
			if err != nil {
				return err
			}

			s, err := ctx.store()
			if err != nil {
				return err
			}
			bindings, err := s.Load()
			if err != nil {
				return err
			}
			bindings = append(bindings, b)
			if err := s.Save(bindings); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %d: %s\n", len(bindings)-1, b)
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "Path to the preset file")
	cmd.Flags().StringVar(&chord, "chord", "", "Keyboard shortcut (eg. \"Ctrl + Shift + F5\")")
	cmd.Flags().StringVar(&action, "action", "switch", "Action: switch or screenshot")

	return cmd
}

func newBindingsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <n>",
		Short: "Remove a binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return curated.Errorf("binding number: %v", err)
			}

			s, err := ctx.store()
			if err != nil {
				return err
			}
			bindings, err := s.Load()
			if err != nil {
				return err
			}

			reg := keybind.NewRegistry(bindings...)
			if !reg.MarkRemove(n) {
				return curated.Errorf("no binding %d", n)
			}
			removed := reg.Get(n)
			reg.Commit()

			if err := s.Save(reg.Bindings()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %d: %s\n", n, removed)
			return nil
		},
	}
}

type exportedBinding struct {
	Preset  string    `yaml:"preset"`
	Chord   string    `yaml:"chord,omitempty"`
	Keybind [4]uint32 `yaml:"keybind,flow"`
	Action  string    `yaml:"action"`
}

func newBindingsExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write bindings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bindings, err := loadBindings(ctx)
			if err != nil {
				return err
			}

			exp := make([]exportedBinding, 0, len(bindings))
			for _, b := range bindings {
				exp = append(exp, exportedBinding{
					Preset:  b.Preset,
					Chord:   b.Chord.String(),
					Keybind: b.Chord.Tuple(),
					Action:  b.Action.String(),
				})
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(map[string][]exportedBinding{"bindings": exp}); err != nil {
				return curated.Errorf("export: %v", err)
			}
			return enc.Close()
		},
	}
}
