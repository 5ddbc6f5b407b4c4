package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uav-simulator/internal/config"
	"uav-simulator/internal/handlers"
	"uav-simulator/internal/logger"
	"uav-simulator/internal/models"
	"uav-simulator/internal/server"
	"uav-simulator/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	listenPort      = "9090"
	shutdownTimeout = 10 * time.Second
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load baseline from environment
	baseline, err := config.Load()
	if err != nil {
		log.Fatalw("error loading configuration", "err", err)
	}

	// wire dependencies
	services := service.NewService(baseline)
	apiHandler := handlers.NewHandler(services, baseline.Identity, log)

	// Release mode keeps gin from emitting per-route and per-request output.
	gin.SetMode(gin.ReleaseMode)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, listenPort, apiHandler, log)

	logStartup(log, baseline.Identity)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
// A bind failure is fatal; the error returned on graceful shutdown is not.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// logStartup prints the bound identity, node, port and endpoint list once.
func logStartup(log *logger.Logger, id models.VehicleIdentity) {
	log.Infow("uav mock simulator started",
		"uav_id", id.UAVID,
		"node", id.NodeName,
		"port", listenPort,
		"instance", uuid.NewString(),
	)
	log.Infow("endpoints available",
		"health", "GET /health",
		"state", "GET /api/v1/state",
	)
	log.Infow("access logging: disabled")
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
