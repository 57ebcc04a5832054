package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"biorxiv-calendar/biorxiv"
	"biorxiv-calendar/cmd/api/handlers"
	"biorxiv-calendar/cmd/api/middleware"
	"biorxiv-calendar/cmd/api/services"
	"biorxiv-calendar/summaries"
)

func New() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		calendarSvc := services.NewCalendarService(biorxiv.New())
		api.GET("/calendar", handlers.GetCalendarHandler(calendarSvc))
		api.GET("/papers", handlers.ListDayPapersHandler(calendarSvc))

		summarySvc := services.NewSummaryService(summaries.NewStore())
		api.POST("/papers/summary", handlers.SummarizePaperHandler(summarySvc))
		api.GET("/papers/summary", handlers.GetSummaryHandler(summarySvc))
		api.DELETE("/papers/summary", handlers.ClearSummaryHandler(summarySvc))
		api.POST("/papers/jargon", handlers.ExplainJargonHandler(summarySvc))
	}

	return r
}
