package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-denoise/dsp/filterchain"
	"github.com/cwbudde/algo-denoise/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

func runCmd() *cobra.Command {
	var (
		flags       filterFlags
		configPath  string
		stages      []string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Filter a sample stream through a chain of stages",
		Example: `filterinfo run --stage limiter --stage sliding --window 8 readings.txt
filterinfo run --config chain.yaml --binary - < raw.bin > smooth.bin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := chainParams(configPath, stages, &flags)
			if err != nil {
				return err
			}

			chainOpts := []filterchain.ChainOption{filterchain.WithLogger(log.StandardLogger())}

			if metricsAddr != "" {
				obs := metrics.New()
				chainOpts = append(chainOpts, filterchain.WithObserver(obs))

				stop, err := serveMetrics(metricsAddr, obs.Handler())
				if err != nil {
					return err
				}
				defer stop()
			}

			chain, err := filterchain.New(nil, params, chainOpts...)
			if err != nil {
				return err
			}

			in, err := openInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			defer in.Close()

			n, err := filterStream(chain, in, cmd.OutOrStdout(), flags.binary)

			log.WithFields(log.Fields{
				"samples": n,
				"stages":  chain.Stages(),
			}).Info("stream filtered")

			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&configPath, "config", "", "YAML chain description")
	cmd.Flags().StringArrayVar(&stages, "stage", nil, "filter type to append to the chain (repeatable)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")

	return cmd
}

// filterStream passes every sample from r through chain and writes the
// result to w. It returns the number of samples processed.
func filterStream(chain *filterchain.Chain, r io.Reader, w io.Writer, binary bool) (int, error) {
	src := newSampleReader(r, binary)
	dst := bufio.NewWriter(w)

	var n int

	for {
		v, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			_ = dst.Flush()
			return n, err
		}

		err = writeSample(dst, chain.Process(v), binary)
		if err != nil {
			return n, err
		}

		n++
	}

	return n, dst.Flush()
}

// serveMetrics starts an HTTP server exposing h on /metrics and returns a
// function that shuts it down.
func serveMetrics(addr string, h http.Handler) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", h)

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: shutdownTimeout}

	go func() {
		err := srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server stopped")
		}
	}()

	log.WithField("addr", ln.Addr().String()).Info("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(ctx)
	}, nil
}
