package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/corplink/corplink/internal/server/middleware"
	"github.com/corplink/corplink/internal/util"
	"github.com/corplink/corplink/pkg/logger"
	"github.com/corplink/corplink/pkg/store"
	"github.com/corplink/corplink/pkg/store/postgres"
	"github.com/corplink/corplink/pkg/store/sqlite"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func openStore(ctx context.Context) (store.EntityStore, error) {
	driver := util.GetEnvString("STORE_DRIVER", "sqlite")
	switch driver {
	case "postgres":
		return postgres.Open(ctx, util.GetEnv("DATABASE_URL"))
	default:
		return sqlite.Open(util.GetEnvString("DB_FILE", "graph_data.db"))
	}
}

func Init() {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx)
	if err != nil {
		logger.Fatal("Failed to open entity store", "err", err)
	}
	defer st.Close()

	e.Use(mid.AppContextMiddleware(st))
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("[Server] Request",
				"method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
