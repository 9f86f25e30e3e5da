package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/HAExplorer/HAExplorer-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type QueryController struct {
	service *services.QueryService
}

func NewQueryController(service *services.QueryService) *QueryController {
	return &QueryController{service: service}
}

type runQueryRequest struct {
	Name string `json:"name"`
}

type catalogEntry struct {
	Name     string `json:"name"`
	Group    string `json:"group"`
	HasChart bool   `json:"hasChart"`
}

// ListQueries handles GET requests for the query catalog
func (c *QueryController) ListQueries(ctx *gin.Context) {
	catalog := c.service.Catalog()
	entries := make([]catalogEntry, 0, len(catalog))
	for _, def := range catalog {
		entries = append(entries, catalogEntry{
			Name:     def.Name,
			Group:    def.Group,
			HasChart: def.Chart != nil,
		})
	}
	ctx.JSON(http.StatusOK, entries)
}

// RunQuery handles POST requests to execute one catalog query. An empty
// result is reported as empty, never as an error
func (c *QueryController) RunQuery(ctx *gin.Context) {
	var req runQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	def, result, err := c.service.Run(req.Name)
	if err != nil {
		if def == nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{
		"name":    def.Name,
		"columns": result.Columns,
		"rows":    result.Rows,
		"empty":   len(result.Rows) == 0,
	}
	if chart := services.BuildChart(def, result); chart != nil {
		response["chart"] = chart
	}
	ctx.JSON(http.StatusOK, response)
}

// ExportQuery handles POST requests to download one catalog query result
// as a spreadsheet
func (c *QueryController) ExportQuery(ctx *gin.Context) {
	var req runQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	def, result, err := c.service.Run(req.Name)
	if err != nil {
		if def == nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	f, err := services.ExportXLSX(def, result)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := strings.ReplaceAll(strings.ToLower(def.Name), " ", "_") + ".xlsx"
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
