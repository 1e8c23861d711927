package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/binknap/pkg/engine"
	"github.com/lintang-b-s/binknap/pkg/logger"
	"github.com/lintang-b-s/binknap/pkg/util"
	"go.uber.org/zap"
)

var (
	resultFile   = flag.String("result", "", "result file (default RESULT_FILE, result.txt)")
	classifyMode = flag.String("classify", "", "weight classification: strict or literal (default CLASSIFY_MODE)")
	cutPolicy    = flag.String("cut", "", "walk pruning: strict, zone or none (default CUT_POLICY)")
	maxPoints    = flag.Int("max_points", -1, "stop after this many frontier points, 0 = unbounded (default MAX_POINTS)")
	compress     = flag.Bool("compress", false, "bzip2-compress the result file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <instance filename>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(context.Background(), flag.Args(), log); err != nil {
		if msg := diagnostic(err); msg != "" {
			fmt.Println(msg)
		}
		log.Error("mpt failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

// diagnostic is the message printed on stdout for a failed run.
func diagnostic(err error) string {
	switch {
	case errors.Is(err, util.ErrMissingArgument):
		return "No argument given.\n - You need to pass as argument a instance problem filename"
	case errors.Is(err, util.ErrFileOpen):
		return "Error openning file. Check its existance."
	case errors.Is(err, util.ErrMalformedRecord):
		return "Malformed instance file."
	}
	return ""
}

func parseArgs(args []string) (string, error) {
	if len(args) < 1 {
		return "", util.WrapErrorf(nil, util.ErrMissingArgument, "no instance file given")
	}
	return args[0], nil
}

func run(ctx context.Context, args []string, log *zap.Logger) error {
	instanceFile, err := parseArgs(args)
	if err != nil {
		return err
	}

	if err := util.ReadConfig(); err != nil {
		return err
	}
	cfg, err := solverConfig()
	if err != nil {
		return err
	}

	eng, err := engine.NewEngineFromConfig(cfg, log)
	if err != nil {
		return err
	}

	_, err = eng.SolveFile(ctx, instanceFile, cfg.ResultFile, cfg.Compress)
	return err
}

// solverConfig applies command line flags on top of the viper configuration.
func solverConfig() (util.SolverConfig, error) {
	cfg, err := util.LoadSolverConfig()
	if err != nil {
		return cfg, err
	}
	if *resultFile != "" {
		cfg.ResultFile = *resultFile
	}
	if *classifyMode != "" {
		cfg.ClassifyMode = *classifyMode
	}
	if *cutPolicy != "" {
		cfg.CutPolicy = *cutPolicy
	}
	if *maxPoints >= 0 {
		cfg.MaxPoints = *maxPoints
	}
	if *compress {
		cfg.Compress = true
	}
	return cfg, nil
}
