package controllers

import (
	"net/http"

	"github.com/HAExplorer/HAExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type IngestController struct {
	service *services.IngestService
}

func NewIngestController(service *services.IngestService) *IngestController {
	return &IngestController{service: service}
}

type ingestRequest struct {
	Classification string `json:"classification"`
	PageSize       int    `json:"pageSize"`
	MaxRecords     *int   `json:"maxRecords"`
}

// GetClassifications handles GET requests for the fixed classification menu
func (c *IngestController) GetClassifications(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, services.Classifications)
}

// Ingest handles POST requests to run one fetch → transform → load pass
// for a chosen classification
func (c *IngestController) Ingest(ctx *gin.Context) {
	var req ingestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !services.IsKnownClassification(req.Classification) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid classification"})
		return
	}

	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = services.DefaultPageSize
	}
	maxRecords := services.DefaultMaxRecords
	if req.MaxRecords != nil {
		maxRecords = *req.MaxRecords
	}

	result, err := c.service.Ingest(req.Classification, pageSize, maxRecords)
	if err != nil && result == nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		// Pagination aborted early; whatever was fetched is already loaded.
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "result": result})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
