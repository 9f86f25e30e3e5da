package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HAExplorer/HAExplorer-Backend/src/models"
)

func TestCatalogIntegrity(t *testing.T) {
	assert.Len(t, Catalog, 25)

	groups := map[string]bool{"metadata": true, "media": true, "colors": true, "joins": true}
	seen := map[string]bool{}
	for _, def := range Catalog {
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.SQL)
		assert.True(t, groups[def.Group], "unexpected group %q on %q", def.Group, def.Name)
		assert.False(t, seen[def.Name], "duplicate query name %q", def.Name)
		seen[def.Name] = true

		if def.Chart != nil {
			assert.NotEmpty(t, def.Chart.LabelColumn, "chart on %q needs a label column", def.Name)
			assert.NotEmpty(t, def.Chart.ValueColumn, "chart on %q needs a value column", def.Name)
		}
	}
}

func TestCatalogQueriesRunAgainstSchema(t *testing.T) {
	db := openTestDB(t)
	service := NewQueryService(db)

	// Every catalog entry must at least execute against the migrated
	// schema; an empty store means empty results, never SQL errors.
	for _, def := range Catalog {
		_, result, err := service.Run(def.Name)
		require.NoError(t, err, "query %q failed", def.Name)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.Columns, "query %q returned no columns", def.Name)
	}
}

func TestRun_UnknownQuery(t *testing.T) {
	db := openTestDB(t)
	service := NewQueryService(db)

	_, _, err := service.Run("Queries that do not exist")
	assert.Error(t, err)
}

func TestRun_DepartmentCountOrdering(t *testing.T) {
	db := openTestDB(t)
	ingest := NewIngestService(db, nil)
	service := NewQueryService(db)

	rows := []models.ArtifactMetadata{
		{ID: intPtr(1), Department: strPtr("A")},
		{ID: intPtr(2), Department: strPtr("A")},
		{ID: intPtr(3), Department: strPtr("A")},
		{ID: intPtr(4), Department: strPtr("B")},
	}
	require.NoError(t, ingest.LoadMetadata(rows))

	def, result, err := service.Run("Artifact count per department")
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	// descending count: A before B
	assert.Equal(t, "A", result.Rows[0][0])
	assert.EqualValues(t, 3, result.Rows[0][1])
	assert.Equal(t, "B", result.Rows[1][0])
	assert.EqualValues(t, 1, result.Rows[1][1])

	chart := BuildChart(def, result)
	require.NotNil(t, chart)
	assert.Equal(t, "bar", chart.ChartType)
	assert.Equal(t, "department", chart.XAxis)
	require.Len(t, chart.Points, 2)
	assert.Equal(t, "A", chart.Points[0].Label)
	assert.Equal(t, float64(3), chart.Points[0].Value)
}

func TestRun_EmptyResultIsNotAnError(t *testing.T) {
	db := openTestDB(t)
	service := NewQueryService(db)

	def, result, err := service.Run("Artifact count per department")
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Nil(t, BuildChart(def, result))
}

func TestBuildChart_NoBinding(t *testing.T) {
	def := &QueryDef{Name: "plain"}
	result := &QueryResult{Columns: []string{"a"}, Rows: [][]interface{}{{int64(1)}}}
	assert.Nil(t, BuildChart(def, result))
}

func TestBuildChart_SkipsNonNumericValues(t *testing.T) {
	def := &QueryDef{
		Name:  "mixed",
		Chart: &ChartBinding{LabelColumn: "label", ValueColumn: "value"},
	}
	result := &QueryResult{
		Columns: []string{"label", "value"},
		Rows: [][]interface{}{
			{"ok", int64(4)},
			{"skipped", "not a number"},
			{"float", 2.5},
		},
	}

	chart := BuildChart(def, result)
	require.NotNil(t, chart)
	require.Len(t, chart.Points, 2)
	assert.Equal(t, "ok", chart.Points[0].Label)
	assert.Equal(t, 4.0, chart.Points[0].Value)
	assert.Equal(t, 2.5, chart.Points[1].Value)
}

func TestExportXLSX(t *testing.T) {
	def := &QueryDef{Name: "export"}
	result := &QueryResult{
		Columns: []string{"department", "artifact_count"},
		Rows: [][]interface{}{
			{"A", int64(3)},
			{"B", int64(1)},
		},
	}

	f, err := ExportXLSX(def, result)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "department", header)

	first, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "A", first)

	count, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", count)
}
