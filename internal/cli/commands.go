package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"codepad/internal/examples"
	"codepad/internal/savestate"
	"codepad/internal/tui/state"
)

// run executes one session operation synchronously. An OpFailed result is
// returned as the error.
func run(cmd tea.Cmd) (tea.Msg, error) {
	msg := cmd()
	if failed, ok := msg.(savestate.OpFailed); ok {
		return nil, failed
	}
	return msg, nil
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			msg, err := run(a.sessions.ListSaves())
			if err != nil {
				return err
			}
			listed := msg.(savestate.Listed)
			out := cmd.OutOrStdout()
			if len(listed.Names) == 0 {
				fmt.Fprintln(out, "(no saves)")
				return nil
			}
			for _, n := range listed.Names {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	var format string
	c := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a saved session record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			rec, err := a.sessions.Peek(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("show %q: %w", args[0], err)
			}
			w := rec.Wire()
			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(w)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(w)
			default:
				return fmt.Errorf("unknown output format %q (json or yaml)", format)
			}
		},
	}
	c.Flags().StringVarP(&format, "output", "o", "json", "output format: json|yaml")
	return c
}

func newSaveCmd(opts *rootOptions) *cobra.Command {
	var orient string
	var zones int
	c := &cobra.Command{
		Use:   "save <name> <file>",
		Short: "Save the contents of a file as a named session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			name := args[0]
			if !savestate.IsValidName(name, a.sessions.Catalog().Names()) {
				return fmt.Errorf("%w: %q", savestate.ErrInvalidName, name)
			}
			o, ok := state.ParseOrientation(orient)
			if !ok {
				return fmt.Errorf("%w: %q", savestate.ErrMalformedOrientation, orient)
			}
			code, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}

			m := state.SetCode(state.Sample(), string(code))
			m.Orient = o
			m.ShowZones = zones
			if _, err := run(a.sessions.Save(name, false, m)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %q\n", name)
			return nil
		},
	}
	c.Flags().StringVar(&orient, "orient", state.Vertical.String(), "layout: Vertical|Horizontal")
	c.Flags().IntVar(&zones, "zones", 0, "zone display mode")
	return c
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := run(a.sessions.Delete(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", args[0])
			return nil
		},
	}
}

func newClearCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	c := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear all saves without --yes")
			}
			a, err := opts.open(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := run(a.sessions.ClearAll()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all saves cleared")
			return nil
		},
	}
	c.Flags().BoolVarP(&yes, "yes", "y", false, "confirm")
	return c
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var stdout bool
	c := &cobra.Command{
		Use:   "export <name>",
		Short: "Copy a session's code to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			code, err := sessionCode(cmd, a, args[0])
			if err != nil {
				return err
			}
			if stdout {
				_, err := fmt.Fprint(cmd.OutOrStdout(), code)
				return err
			}
			if err := clipboard.WriteAll(code); err != nil {
				return fmt.Errorf("clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "copied %q to clipboard\n", args[0])
			return nil
		},
	}
	c.Flags().BoolVar(&stdout, "stdout", false, "print instead of copying")
	return c
}

// sessionCode resolves name like a load does: examples first, then the store.
func sessionCode(cmd *cobra.Command, a *app, name string) (string, error) {
	if ex, ok := a.sessions.Catalog().Lookup(name); ok {
		return ex.Content(), nil
	}
	rec, err := a.sessions.Peek(cmd.Context(), name)
	if err != nil {
		return "", fmt.Errorf("export %q: %w", name, err)
	}
	return rec.Code, nil
}

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List built-in examples (reserved names)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, n := range examples.Default().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
