package routes

import (
	"github.com/HAExplorer/HAExplorer-Backend/src/controllers"
	"github.com/HAExplorer/HAExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupQueryRoutes(router *gin.Engine, service *services.QueryService) {
	queryController := controllers.NewQueryController(service)

	queries := router.Group("/queries")
	{
		queries.GET("/", queryController.ListQueries)
		queries.POST("/run", queryController.RunQuery)
		queries.POST("/export", queryController.ExportQuery)
	}
}
