package routes

import (
	"errors"
	"io"
	"net/http"

	"github.com/corplink/corplink/internal/server/middleware"
	"github.com/corplink/corplink/pkg/common"
	"github.com/corplink/corplink/pkg/graph"
	"github.com/corplink/corplink/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ImportHandler replaces the entire store contents with the posted graph
// document. The replacement is atomic: a malformed document or a failing
// write leaves the store untouched.
func ImportHandler(c echo.Context) error {
	type importResponse struct {
		Message   string `json:"message"`
		Companies int    `json:"companies,omitempty"`
		People    int    `json:"people,omitempty"`
		Relations int    `json:"relations,omitempty"`
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, importResponse{
			Message: "Invalid request body",
		})
	}

	g, err := graph.Decode(body)
	if err != nil {
		var merr *graph.MalformedDocumentError
		if errors.As(err, &merr) {
			return c.JSON(http.StatusBadRequest, importResponse{
				Message: merr.Error(),
			})
		}
		return c.JSON(http.StatusBadRequest, importResponse{
			Message: "Invalid request body",
		})
	}

	relations := make([]common.Relation, 0, g.Size())
	for _, e := range g.Edges() {
		relations = append(relations, common.Relation{
			Person: e.Person, Company: e.Company, Role: e.Role,
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store
	if err := st.ReplaceAll(ctx, g.Companies(), g.People(), relations); err != nil {
		logger.Error("Failed to import graph document", "err", err)
		return c.JSON(http.StatusInternalServerError, importResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, importResponse{
		Message:   "Data imported",
		Companies: len(g.Companies()),
		People:    len(g.People()),
		Relations: g.Size(),
	})
}
