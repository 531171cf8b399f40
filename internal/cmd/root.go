// Package cmd wires the netplan command line.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/katalvlaran/netplan/internal/config"
	"github.com/katalvlaran/netplan/mst"
	"github.com/katalvlaran/netplan/planner"
	"github.com/katalvlaran/netplan/report"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrDisconnected is returned under --strict when the result is a forest.
var ErrDisconnected = errors.New("sites do not form a single network")

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// NewRootCommand builds the netplan command. Output goes to cmd.OutOrStdout
// and links are read from the FILE argument or cmd.InOrStdin.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	input := new(Input)
	rootCmd := &cobra.Command{
		Use:           "netplan [FILE]",
		Short:         "Compute the cheapest network connecting every site in a list of candidate links.",
		Long:          "Reads lines of the form \"<siteA> <siteB> <cost>\" from FILE (or stdin) and prints the minimum spanning network and its total cost.",
		Args:          cobra.MaximumNArgs(1),
		RunE:          newRunPlan(ctx, input),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	input.addFlags(rootCmd.Flags())

	return rootCmd
}

func newRunPlan(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, input)
		if err != nil {
			return err
		}
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return errors.Wrap(err, "config: log_level")
		}
		log.SetLevel(level)
		if input.verbose {
			log.SetLevel(log.DebugLevel)
		}
		log.Debugf("Using config %+v", cfg)

		output, err := report.ParseOutput(cfg.Output)
		if err != nil {
			return err
		}

		in, closeInput, err := openInput(cmd, args)
		if err != nil {
			return err
		}
		defer closeInput()
		if err := ctx.Err(); err != nil {
			return err
		}

		log.WithField("method", cfg.Method).Debug("Computing network")
		res, err := planner.Plan(in, mst.WithMethod(cfg.Method))
		if err != nil {
			return err
		}

		if err := report.Render(cmd.OutOrStdout(), res, output); err != nil {
			return errors.Wrap(err, "writing report")
		}
		if cfg.Strict && !res.Connected() {
			return errors.Wrapf(ErrDisconnected, "%d components", res.Components)
		}

		return nil
	}
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, input *Input) (config.Config, error) {
	path, required := input.configPath, true
	if path == "" {
		path, required = config.DefaultFile, false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Method = input.method
	}
	if flags.Changed("output") {
		cfg.Output = input.output
	}
	if flags.Changed("strict") {
		cfg.Strict = input.strict
	}

	return cfg, nil
}

// openInput opens the FILE argument, or returns stdin when it is not a terminal.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 1 && args[0] != "-" {
		log.Debugf("Reading links from %s", args[0])
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening input")
		}
		return f, func() { _ = f.Close() }, nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return nil, nil, errors.New("no input: pass a FILE or pipe links on stdin")
	}
	log.Debug("Reading links from stdin")

	return in, func() {}, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
