package routes

import (
	"net/http"
	"sort"

	"github.com/corplink/corplink/internal/server/middleware"
	"github.com/corplink/corplink/pkg/graph"
	"github.com/corplink/corplink/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GetConnectionsHandler returns the derived common connections: every pair
// of companies sharing at least one person, with the shared people listed.
func GetConnectionsHandler(c echo.Context) error {
	type connection struct {
		Companies [2]string `json:"companies"`
		People    []string  `json:"people"`
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	g, err := graph.FromStore(ctx, st)
	if err != nil {
		logger.Error("Failed to build graph", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
	}

	conns := graph.CommonConnections(g)
	out := make([]connection, 0, len(conns))
	for pair, people := range conns {
		out = append(out, connection{
			Companies: [2]string{pair.A, pair.B},
			People:    people,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Companies[0] != out[j].Companies[0] {
			return out[i].Companies[0] < out[j].Companies[0]
		}
		return out[i].Companies[1] < out[j].Companies[1]
	})

	return c.JSON(http.StatusOK, out)
}
