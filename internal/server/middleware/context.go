package middleware

import (
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/corplink/corplink/pkg/logger"
	"github.com/corplink/corplink/pkg/store"
)

// App holds the shared dependencies handlers reach through the request
// context.
type App struct {
	Store store.EntityStore
}

// AppContext decorates the echo context with the application dependencies
// and a per-request id.
type AppContext struct {
	echo.Context
	App       *App
	RequestID string
}

// AppContextMiddleware wraps every request in an AppContext and tags it
// with a nanoid request id, echoed back in the X-Request-Id header.
func AppContextMiddleware(st store.EntityStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := gonanoid.New()
			if err != nil {
				logger.Error("Failed to generate request id", "err", err)
			}
			c.Response().Header().Set("X-Request-Id", id)

			cc := &AppContext{c, &App{Store: st}, id}
			return next(cc)
		}
	}
}
