package routes

import (
	"net/http"

	"github.com/corplink/corplink/internal/server/middleware"
	"github.com/corplink/corplink/pkg/graph"
	"github.com/corplink/corplink/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GetGraphHandler returns the stored graph as a node/edge document.
func GetGraphHandler(c echo.Context) error {
	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	g, err := graph.FromStore(ctx, st)
	if err != nil {
		logger.Error("Failed to build graph", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, graph.Encode(g))
}
