package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/lintang-b-s/binknap/pkg"
	"github.com/lintang-b-s/binknap/pkg/concurrent"
	"github.com/lintang-b-s/binknap/pkg/datastructure"
	"github.com/lintang-b-s/binknap/pkg/frontier"
	"github.com/lintang-b-s/binknap/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	numInstances = flag.Int("instances", 10000, "number of random instances")
	maxItems     = flag.Int("max_items", 12, "instances have 0..max_items items")
	maxProfit    = flag.Int("max_profit", 20, "profits are drawn from [1, max_profit]")
	seed         = flag.Uint64("seed", 1, "random seed")
	cutPolicy    = flag.String("cut", "strict", "walk pruning: strict, zone or none")
	workers      = flag.Int("workers", runtime.NumCPU(), "number of workers")
	failuresFile = flag.String("failures", "bruteforce_failures.txt", "counterexamples are written here")
)

type job struct {
	id    int
	items []datastructure.Item
}

type outcome struct {
	id     int
	items  []datastructure.Item
	report frontier.Report
	err    error
}

// bruteforce cross-checks the frontier builder against exhaustive enumeration on random instances.
func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	policy, err := frontier.ParseCutPolicy(*cutPolicy)
	if err != nil {
		log.Fatal("invalid cut policy", zap.Error(err))
	}
	requireDominanceFree := policy == frontier.CUT_STRICT

	rd := rand.New(rand.NewSource(*seed))
	jobs := make([]job, *numInstances)
	for i := range jobs {
		jobs[i] = job{id: i, items: datastructure.RandomItems(rd, rd.Intn(*maxItems+1), *maxProfit)}
	}

	var (
		lock sync.Mutex
		done int
	)
	check := func(j job) outcome {
		b, err := datastructure.NewBucketsFromItems(j.items, pkg.CLASSIFY_STRICT)
		if err != nil {
			return outcome{id: j.id, items: j.items, err: err}
		}
		b.Sort()
		rep, err := frontier.Verify(b, policy)

		lock.Lock()
		done++
		if done%1000 == 0 {
			log.Sugar().Infof("checked %v instances", done)
		}
		lock.Unlock()
		return outcome{id: j.id, items: j.items, report: rep, err: err}
	}

	results := concurrent.Process(*workers, jobs, check)

	fout, err := os.Create(*failuresFile)
	if err != nil {
		log.Fatal("creating failures file", zap.Error(err))
	}
	defer fout.Close()
	w := bufio.NewWriter(fout)
	defer w.Flush()

	failed := 0
	for _, res := range results {
		if res.err == nil && res.report.OK(requireDominanceFree) {
			continue
		}
		failed++
		fmt.Fprintf(w, "# instance %d: %v err=%v\n", res.id, res.report, res.err)
		if err := datastructure.WriteInstance(w, res.items); err != nil {
			log.Fatal("writing counterexample", zap.Error(err))
		}
	}

	log.Info("brute force check finished",
		zap.Int("instances", len(results)),
		zap.Int("failed", failed),
		zap.String("cutPolicy", policy.String()))
	if failed > 0 {
		w.Flush()
		os.Exit(1)
	}
}
