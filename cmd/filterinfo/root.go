package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filterchain"
	"github.com/cwbudde/algo-denoise/internal/config"
)

// filterFlags are the per-stage settings shared by run and analyze.
type filterFlags struct {
	window    int
	limit     int
	threshold uint32
	binary    bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	d := core.DefaultConfig()

	cmd.Flags().IntVar(&f.window, "window", d.WindowSize, "window length for window-based filters")
	cmd.Flags().IntVar(&f.limit, "limit", int(d.Limit), "spike limit for limiter and clamped stages")
	cmd.Flags().Uint32Var(&f.threshold, "threshold", d.DitherThreshold, "repeat count for the debounce stage")
	cmd.Flags().BoolVar(&f.binary, "binary", false, "read and write raw bytes instead of decimal text")
}

// options validates the flags and turns them into filter options.
func (f *filterFlags) options() ([]core.Option, error) {
	if f.limit < 0 || f.limit > 255 {
		return nil, fmt.Errorf("limit %d not in [0, 255]", f.limit)
	}

	opts := []core.Option{
		core.WithLimit(core.Sample(f.limit)),
		core.WithWindowSize(f.window),
		core.WithDitherThreshold(f.threshold),
	}

	_, err := core.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}

	return opts, nil
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "filterinfo",
		Short: "Run and compare 8-bit noise filters",
		Long: `Run 8-bit integer noise filters over sample streams and compare
how much each one smooths the input.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}

			log.SetLevel(level)

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "log level (debug, info, warning, error)")

	cmd.AddCommand(listCmd())
	cmd.AddCommand(runCmd())
	cmd.AddCommand(analyzeCmd())

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available filter types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range filterchain.DefaultRegistry().Names() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), name)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// chainParams resolves the stage list from a config file or --stage flags.
func chainParams(configPath string, stages []string, flags *filterFlags) ([]filterchain.Params, error) {
	if configPath != "" {
		if len(stages) > 0 {
			return nil, errors.New("--config and --stage are mutually exclusive")
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}

		return cfg.Specs(), nil
	}

	if len(stages) == 0 {
		return nil, errors.New("no stages: use --stage or --config")
	}

	opts, err := flags.options()
	if err != nil {
		return nil, err
	}

	params := make([]filterchain.Params, len(stages))
	for i, s := range stages {
		params[i] = filterchain.Params{Type: s, Options: opts}
	}

	return params, nil
}
