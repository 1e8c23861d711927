package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/binknap/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/binknap/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/binknap/pkg/http/server"
	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "github.com/lintang-b-s/binknap/pkg/http/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RateLimit struct {
	RPS   float64
	Burst int
}

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

//	@title			binknap API
//	@version		1.0
//	@description	Pareto frontier enumeration for binary-weight 0-1 knapsack instances.

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost:6060
// @BasePath	/api

// Handler builds the router and its middleware chain. A nil rateLimit disables limiting.
func (api *API) Handler(frontierService controllers.FrontierService, rateLimit *RateLimit) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	root := router_helper.NewRouteGroup(router, "/")
	root.GET("/doc/*any", swaggerHandler)
	controllers.New(frontierService, api.log).Routes(root.Group("api"))

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log)}
	if rateLimit != nil {
		mwChain = append(mwChain, Limit(rateLimit.RPS, rateLimit.Burst))
	}
	return alice.New(mwChain...).Then(router)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	frontierService controllers.FrontierService,
	rateLimit *RateLimit,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(frontierService, rateLimit), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		api.log.Info("HTTP server stopped", zap.Error(err))
		return err

	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		return ctx.Err()
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
