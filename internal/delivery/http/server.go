package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"collegeblog/config"
	"collegeblog/internal/delivery"
	httpmiddleware "collegeblog/internal/delivery/http/middleware"
	"collegeblog/internal/delivery/http/router"
	"collegeblog/internal/delivery/http/validator"
	"collegeblog/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
	RequestID    *httpmiddleware.RequestIDMiddleware
	ErrorHandler *httpmiddleware.ErrorMiddleware
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewEcho builds the echo instance with middleware and routes, without binding a port.
func NewEcho(params HTTPParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorHandler.HandleHTTPError

	echoServer.Use(middleware.Recover())
	echoServer.Use(params.RequestID.Process)
	if params.Config.Env.Debug {
		echoServer.Use(slogecho.New(params.Logger))
	}
	echoServer.Use(middleware.CORS())
	echoServer.Use(middleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	return echoServer
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params)

	timeouts := params.Config.HTTP.Timeouts
	echoServer.Server.ReadTimeout = timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = timeouts.IdleTimeout

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
