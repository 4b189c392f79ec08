package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"
	"googlemaps.github.io/maps"

	"go-firewatch/db"
	"go-firewatch/firms"
	"go-firewatch/handlers"
	"go-firewatch/verification"
	"go-firewatch/weather"
)

// SetupRouter wires every endpoint. The openai and maps clients may be nil;
// the handlers degrade gracefully without them.
func SetupRouter(
	store *db.Store,
	engine *verification.Engine,
	firmsClient *firms.Client,
	weatherClient *weather.Client,
	mapsClient *maps.Client,
	openaiClient *openai.Client,
) *gin.Engine {
	r := gin.Default()

	// Mobile clients call from arbitrary origins.
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Go Firewatch!",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/fire-reports", func(c *gin.Context) {
			handlers.CreateReport(c, store, weatherClient, mapsClient)
		})
		api.GET("/fire-reports", func(c *gin.Context) {
			handlers.ListReports(c, store)
		})
		api.GET("/fire-reports/:id", func(c *gin.Context) {
			handlers.GetReport(c, store)
		})
		api.GET("/fire-reports/:id/logs", func(c *gin.Context) {
			handlers.GetReportLogs(c, store)
		})
		api.PATCH("/fire-reports/:id/status", func(c *gin.Context) {
			handlers.UpdateReportStatus(c, engine)
		})
		api.DELETE("/fire-reports/:id", func(c *gin.Context) {
			handlers.DeleteReport(c, engine)
		})

		rangers := api.Group("/rangers")
		{
			rangers.GET("/reports/:id/context", func(c *gin.Context) {
				handlers.GetReportContext(c, engine, openaiClient)
			})
			rangers.GET("/risk-map", func(c *gin.Context) {
				handlers.GetRiskMap(c, engine)
			})
		}

		api.GET("/firms", func(c *gin.Context) {
			handlers.GetFIRMS(c, firmsClient)
		})
		api.GET("/weather", func(c *gin.Context) {
			handlers.GetWeather(c, weatherClient)
		})
	}

	return r
}
