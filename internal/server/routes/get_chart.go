package routes

import (
	"bytes"
	"net/http"

	"github.com/corplink/corplink/internal/server/middleware"
	"github.com/corplink/corplink/pkg/graph"
	"github.com/corplink/corplink/pkg/logger"
	"github.com/corplink/corplink/pkg/render"

	"github.com/labstack/echo/v4"
)

// GetChartHandler renders the graph and its common connections as a
// self-contained HTML page.
func GetChartHandler(c echo.Context) error {
	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	g, err := graph.FromStore(ctx, st)
	if err != nil {
		logger.Error("Failed to build graph", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
	}

	var buf bytes.Buffer
	if err := render.HTML(&buf, g, graph.CommonConnections(g)); err != nil {
		logger.Error("Failed to render chart", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
