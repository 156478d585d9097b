// Command filterinfo runs and compares the 8-bit noise filters.
//
// Usage:
//
//	filterinfo list
//	filterinfo run [flags] [file]
//	filterinfo analyze [flags] [file]
//
// Samples are read as whitespace-separated decimal values in [0, 255], or
// as raw bytes with --binary. Without a file argument, or with "-",
// samples are read from stdin.
//
// Examples:
//
//	filterinfo list
//	filterinfo run --stage limiter --stage sliding --window 8 readings.txt
//	filterinfo run --config chain.yaml --metrics-addr :9100 -
//	filterinfo analyze --window 16 readings.txt
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
