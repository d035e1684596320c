// Command steinergen drives the dataset-generation pipeline end to
// end: load config.ini, run the Driver across every configured point
// count, and sink each sample to NPY files under the configured
// output directory.
//
// CLI shape (single --config flag, run() error, os.Exit only in main)
// is grounded on dshills-dungo/cmd/dungeongen/main.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/routegraph/steinergrid/config"
	"github.com/routegraph/steinergrid/driver"
	"github.com/routegraph/steinergrid/sink"
)

var configPath = flag.String("config", "./config.ini", "path to the INI configuration file")

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "steinergen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	params, err := config.Load(*configPath, log)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fileSink, err := sink.New(params.Output, params.MaxPoints)
	if err != nil {
		return fmt.Errorf("prepare output directories: %w", err)
	}

	start := time.Now()
	dp := driver.Params{
		Size:                params.Size,
		Depth:               params.Depth,
		MaxPoints:           params.MaxPoints,
		DesiredCombinations: params.DesiredCombinations,
		Sink:                fileSink,
		Log:                 log,
	}

	if err := driver.Run(dp); err != nil {
		return fmt.Errorf("run driver: %w", err)
	}

	log.Info().
		Dur("elapsed", time.Since(start)).
		Uint64("samples_per_point_count_target", params.DesiredCombinations).
		Str("output", params.Output).
		Msg("generation complete")

	return nil
}
