// Package cli wires the codepad commands. Every command runs the same session
// operations the editor uses and reports their single result message.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"codepad/internal/config"
	"codepad/internal/examples"
	"codepad/internal/logging"
	"codepad/internal/savestate"
	"codepad/internal/store"
	"codepad/internal/tui"
)

type rootOptions struct {
	configPath string
	memory     bool
	noColor    bool
}

// app is what a command needs once configuration has been resolved.
type app struct {
	cfg      *config.Config
	sessions *savestate.Sessions
	log      zerolog.Logger
	closers  []io.Closer
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn().Err(err).Msg("close")
		}
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:     "codepad",
		Version: version,
		Short:   "Live-coding scratchpad with named saves",
		Long: `codepad is a terminal editor for live-coding patterns.

Sessions are saved by name to a local key-value store. Built-in examples are
always available and their names are reserved.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()
			return tui.Run(tui.Options{
				Sessions: a.sessions,
				Logger:   a.log,
				NoColor:  opts.noColor || a.cfg.UI.NoColor,
			})
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to codepad.yaml")
	pf.BoolVar(&opts.memory, "memory", false, "keep saves in memory only")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colors")

	root.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newSaveCmd(opts),
		newDeleteCmd(opts),
		newClearCmd(opts),
		newExportCmd(opts),
		newExamplesCmd(),
	)
	return root
}

// Execute runs the root command under ctx and prints any error to stderr.
func Execute(ctx context.Context, version string) int {
	if err := NewRootCmd(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// open resolves config, logging and the store. The editor logs to a file
// because it owns the terminal; other commands log to stderr.
func (o *rootOptions) open(cmd *cobra.Command, toFile bool) (*app, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg}

	if toFile {
		log, closer, err := logging.NewFile(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		a.log = log
		a.closers = append(a.closers, closer)
	} else {
		log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		a.log = log
	}

	var st store.Store
	if o.memory {
		st = store.NewMem()
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
			a.Close()
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		bs, err := store.OpenBolt(cfg.Store.Path, store.BoltOptions{
			Bucket:  cfg.Store.Bucket,
			Timeout: cfg.Store.Timeout,
			Logger:  a.log,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		st = bs
		a.closers = append(a.closers, bs)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a.sessions = savestate.New(st, examples.Default(), a.log).WithContext(ctx)
	return a, nil
}
