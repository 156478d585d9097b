package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/filterchain"
	"github.com/cwbudde/algo-denoise/measure/noise"
)

func analyzeCmd() *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Compare every filter type on one input",
		Long: `Run each filter type on the same input and print a table of noise
metrics. Use --stage to restrict the comparison.
`,
		Example: "filterinfo analyze --window 16 readings.txt",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			in, err := openInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			defer in.Close()

			raw, err := newSampleReader(in, flags.binary).readAll()
			if err != nil {
				return err
			}

			if len(raw) == 0 {
				return errors.New("no samples in input")
			}

			types, err := cmd.Flags().GetStringArray("stage")
			if err != nil {
				return err
			}

			if len(types) == 0 {
				types = filterchain.DefaultRegistry().Names()
			}

			return printAnalysis(cmd.OutOrStdout(), raw, types, opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringArray("stage", nil, "filter type to compare (repeatable, default all)")

	return cmd
}

func printAnalysis(w io.Writer, raw []core.Sample, types []string, opts []core.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, err := fmt.Fprintf(tw, "Filter\tVar in\tVar out\tVar red [%%]\tRough out\tToggles\tHigh band\tCorr\tMax dev\n")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(tw, "------\t------\t-------\t-----------\t---------\t-------\t---------\t----\t-------\n")
	if err != nil {
		return err
	}

	for _, typ := range types {
		chain, err := filterchain.New(nil, []filterchain.Params{{Type: typ, Options: opts}})
		if err != nil {
			return err
		}

		filtered := make([]core.Sample, len(raw))
		chain.ProcessBlock(filtered, raw)

		res, err := noise.Compare(raw, filtered, noise.Config{})
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.1f\t%.3f\t%d -> %d\t%.3f\t%.3f\t%d\n",
			typ,
			res.InputVariance,
			res.OutputVariance,
			res.VarianceReduction*100,
			res.OutputRoughness,
			res.InputToggles,
			res.OutputToggles,
			res.OutputHighBand,
			res.Correlation,
			res.MaxDeviation,
		)
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}
