package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lintang-b-s/binknap/pkg/http"
	"github.com/lintang-b-s/binknap/pkg/http/usecases"
	"github.com/lintang-b-s/binknap/pkg/logger"
	"github.com/lintang-b-s/binknap/pkg/util"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", true, "enable the token bucket rate limiter")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	cfg, err := util.LoadServerConfig()
	if err != nil {
		panic(err)
	}

	frontierService, err := usecases.NewFrontierService(logger, cfg.CacheSize, cfg.MaxRequestItems, cfg.MaxResponsePoints)
	if err != nil {
		panic(err)
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger).Use(ctx, cfg, *useRateLimit, frontierService)

	signal := http.GracefulShutdown()
	logger.Info("binknap frontier server stopping", zap.String("signal", signal.String()))
	cleanup()

	if err := api.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
