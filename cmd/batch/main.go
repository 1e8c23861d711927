package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"

	"github.com/lintang-b-s/binknap/pkg/engine"
	"github.com/lintang-b-s/binknap/pkg/logger"
	"github.com/lintang-b-s/binknap/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	workers  = flag.Int("workers", runtime.NumCPU(), "number of instances solved at the same time")
	outDir   = flag.String("out_dir", "", "directory for result files (default: next to each instance)")
	compress = flag.Bool("compress", false, "bzip2-compress result files")
	failFast = flag.Bool("fail_fast", false, "cancel remaining instances after the first failure")
)

// batch solves every instance given on the command line, one independent run per
// instance. Result file of foo.txt is foo.result.txt (foo.result.txt.bz2 when compressed).
func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Println("No argument given.")
		fmt.Println(" - You need to pass one or more instance filenames")
		os.Exit(1)
	}

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := util.ReadConfig(); err != nil {
		log.Fatal("reading config", zap.Error(err))
	}
	cfg, err := util.LoadSolverConfig()
	if err != nil {
		log.Fatal("loading solver config", zap.Error(err))
	}
	eng, err := engine.NewEngineFromConfig(cfg, log)
	if err != nil {
		log.Fatal("creating engine", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	targets, err := resultFiles(flag.Args(), *outDir, *compress)
	if err != nil {
		log.Fatal("planning result files", zap.Error(err))
	}

	failed := solveAll(ctx, eng, flag.Args(), targets, log)
	if failed > 0 {
		log.Error("batch finished with failures", zap.Int("failed", failed), zap.Int("total", flag.NArg()))
		os.Exit(1)
	}
	log.Info("batch finished", zap.Int("total", flag.NArg()))
}

// solveAll writes the result of instances[i] to targets[i].
func solveAll(ctx context.Context, eng *engine.Engine, instances, targets []string, log *zap.Logger) int {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)

	var (
		mu     sync.Mutex
		failed int
	)
	for i, instance := range instances {
		out := targets[i]
		g.Go(func() error {
			if util.StopConcurrentOperation(gctx) {
				return gctx.Err()
			}
			res, err := eng.SolveFile(gctx, instance, out, *compress)
			if err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
				log.Error("instance failed", zap.String("instance", instance), zap.Error(err))
				if *failFast {
					return err
				}
				return nil
			}
			log.Info("instance solved",
				zap.String("instance", instance),
				zap.Int("solutionsFound", res.Emitted),
				zap.Duration("elapsed", res.Elapsed))
			return nil
		})
	}
	_ = g.Wait()
	return failed
}

// resultFiles maps every instance to its result file. Two instances may not share a
// result file, e.g. a/inst.txt and b/inst.txt with the same out_dir.
func resultFiles(instances []string, outDir string, compress bool) ([]string, error) {
	targets := make([]string, len(instances))
	owner := make(map[string]string, len(instances))
	for i, instance := range instances {
		out := filepath.Clean(resultFileFor(instance, outDir, compress))
		if prev, ok := owner[out]; ok {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"instances %s and %s both write %s", prev, instance, out)
		}
		owner[out] = instance
		targets[i] = out
	}
	return targets, nil
}

func resultFileFor(instance, outDir string, compress bool) string {
	base := strings.TrimSuffix(filepath.Base(instance), filepath.Ext(instance)) + ".result.txt"
	if compress {
		base += ".bz2"
	}
	if outDir == "" {
		return filepath.Join(filepath.Dir(instance), base)
	}
	return filepath.Join(outDir, base)
}
