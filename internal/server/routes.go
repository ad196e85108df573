package server

import (
	"github.com/corplink/corplink/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Graph routes
	apiRoutes.GET("/graph", routes.GetGraphHandler)
	apiRoutes.GET("/connections", routes.GetConnectionsHandler)
	apiRoutes.GET("/chart", routes.GetChartHandler)

	// Data management routes
	apiRoutes.POST("/companies", routes.AddCompanyHandler)
	apiRoutes.POST("/import", routes.ImportHandler)
}
