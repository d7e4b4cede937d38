package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/ui"
	"github.com/prometheus/client_golang/prometheus"
)

// CreateRestService builds the read only rest api. Request metrics are registered with registerer.
func CreateRestService(backend Backend, registerer prometheus.Registerer) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true
	echoRest.HidePort = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(middleware.Recover())
	echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "mk2fan",
		Subsystem:  "api",
		Registerer: registerer,
	}))

	echoRest.GET("/alive/", isAlive)

	registerFanEndpoints(echoRest, backend)
	registerSensorEndpoints(echoRest)
	registerBandEndpoints(echoRest, backend)
	registerControllerEndpoints(echoRest, backend)

	return echoRest
}

// Server runs the rest api on the configured address.
type Server struct {
	echo *echo.Echo
	addr string
}

func NewServer(config configuration.ApiConfig, backend Backend) *Server {
	return &Server{
		echo: CreateRestService(backend, prometheus.DefaultRegisterer),
		addr: fmt.Sprintf("%s:%d", config.Host, config.Port),
	}
}

// Run blocks until the server is shut down.
func (s *Server) Run() error {
	ui.Info("Starting REST api on %s", s.addr)
	err := s.echo.Start(s.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.echo.Shutdown(ctx)
}
