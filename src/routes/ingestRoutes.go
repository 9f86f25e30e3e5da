package routes

import (
	"github.com/HAExplorer/HAExplorer-Backend/src/controllers"
	"github.com/HAExplorer/HAExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupIngestRoutes(router *gin.Engine, service *services.IngestService) {
	ingestController := controllers.NewIngestController(service)

	router.GET("/classifications", ingestController.GetClassifications)
	router.POST("/ingest", ingestController.Ingest)
}
