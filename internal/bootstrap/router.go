package bootstrap

import (
	"log/slog"

	httpapi "github.com/GoSim-25-26J-441/go-model-eval/internal/api/http"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/api/http/middleware"
	gchttp "github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	RateLimit   float64
	Log         *slog.Logger
	Stores      *Stores
	Runner      gchttp.Runner
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), cors.Default(), middleware.RequestID(dep.Log))

	stores := dep.Stores
	if stores == nil {
		stores = &Stores{}
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, stores.pingDB(), stores.pingRedis())
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	gchttp.New(dep.Runner).
		WithRateLimit(dep.RateLimit, int(max(dep.RateLimit, 1))).
		Register(api)

	return r
}
