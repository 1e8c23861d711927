package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/binknap/pkg/http/router"
	"github.com/lintang-b-s/binknap/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/binknap/pkg/http/server"
	"github.com/lintang-b-s/binknap/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the API in the background; it stops when ctx is canceled.
func (s *Server) Use(
	ctx context.Context,
	cfg util.ServerConfig,

	useRateLimit bool,
	frontierService controllers.FrontierService,
) *Server {
	config := http_server.Config{
		Port:    cfg.Port,
		Timeout: cfg.Timeout,
	}

	var rateLimit *http_router.RateLimit
	if useRateLimit {
		rateLimit = &http_router.RateLimit{RPS: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst}
	}

	api := http_router.NewAPI(s.Log)

	s.g.Go(func() error {
		return api.Run(ctx, config, frontierService, rateLimit)
	})

	return s
}

// Wait blocks until the API goroutine returns.
func (s *Server) Wait() error {
	return s.g.Wait()
}

// GracefulShutdown blocks until SIGINT or SIGTERM.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
