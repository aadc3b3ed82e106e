// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"khusela/internal/http/handlers"
	"khusela/internal/http/middleware"
	"khusela/internal/modules/alerts"
	"khusela/internal/modules/assets"
	"khusela/internal/modules/destinations"
	"khusela/internal/modules/routes"
	"khusela/internal/service"
)

func NewRouter(
	assessor *service.Assessor,
	routesService *routes.Service,
	alertsService *alerts.Service,
	destinationsService *destinations.Service,
	assetsService *assets.Service,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	routeHandler := handlers.NewRouteHandler(assessor)
	r.POST("/api/route/fetch-route", routeHandler.FetchRoute)
	r.POST("/api/route/route-with-weather", routeHandler.FetchRouteWithWeather)

	riskHandler := handlers.NewRiskHandler(assessor)
	r.POST("/api/risk/assess", riskHandler.Assess)

	authed := r.Group("/", middleware.RequireUser())

	routesHandler := handlers.NewRoutesHandler(routesService)
	authed.POST("/api/routes", routesHandler.Create)
	authed.GET("/api/routes", routesHandler.List)
	authed.GET("/api/routes/:id", routesHandler.Get)
	authed.PUT("/api/routes/:id", routesHandler.Update)
	authed.DELETE("/api/routes/:id", routesHandler.Delete)

	alertHandler := handlers.NewAlertHandler(alertsService)
	authed.POST("/api/alerts", alertHandler.Create)
	authed.GET("/api/alerts", alertHandler.List)
	authed.PATCH("/api/alerts/:id", alertHandler.UpdateStatus)
	authed.DELETE("/api/alerts/:id", alertHandler.Delete)

	destinationHandler := handlers.NewDestinationHandler(destinationsService)
	authed.POST("/api/destinations", destinationHandler.Create)
	authed.GET("/api/destinations", destinationHandler.List)
	authed.GET("/api/destinations/:id", destinationHandler.Get)
	authed.PUT("/api/destinations/:id", destinationHandler.Update)
	authed.DELETE("/api/destinations/:id", destinationHandler.Delete)

	assetHandler := handlers.NewAssetHandler(assetsService)
	authed.POST("/api/insurance", assetHandler.Create)
	authed.GET("/api/insurance", assetHandler.List)
	authed.GET("/api/insurance/summary", assetHandler.Summary)
	authed.GET("/api/insurance/policy/:policyNumber", assetHandler.GetByPolicy)
	authed.GET("/api/insurance/:id", assetHandler.Get)
	authed.PUT("/api/insurance/:id", assetHandler.Update)
	authed.DELETE("/api/insurance/:id", assetHandler.Delete)
	authed.POST("/api/insurance/:id/process", assetHandler.Process)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
