package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lintang-b-s/binknap/pkg/datastructure"
	"github.com/lintang-b-s/binknap/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	numItems  = flag.Int("n", 20, "number of items")
	maxProfit = flag.Int("max_profit", 100, "profits are drawn uniformly from [1, max_profit]")
	seed      = flag.Uint64("seed", 0, "random seed, 0 = time based")
	output    = flag.String("o", "", "output instance file (default stdout)")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if *numItems < 0 || *maxProfit < 1 {
		fmt.Println("n must be >= 0 and max_profit >= 1")
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rd := rand.New(rand.NewSource(s))

	in := datastructure.NewInstance(datastructure.RandomItems(rd, *numItems, *maxProfit))

	if *output == "" {
		err = datastructure.WriteInstance(os.Stdout, in.Items())
	} else {
		err = in.WriteToFile(*output)
	}
	if err != nil {
		log.Error("writing instance failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("instance generated", zap.Int("numItems", *numItems), zap.Uint64("seed", s), zap.String("output", *output))
}
