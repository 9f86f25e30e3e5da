package services

import (
	"fmt"

	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ChartBinding maps two result columns onto a bar chart: one label axis,
// one numeric value axis.
type ChartBinding struct {
	LabelColumn string `json:"labelColumn"`
	ValueColumn string `json:"valueColumn"`
}

// QueryDef is one entry of the fixed query catalog. The catalog is data:
// adding a query means adding an entry here, never touching the runner.
type QueryDef struct {
	Name  string        `json:"name"`
	Group string        `json:"group"`
	SQL   string        `json:"-"`
	Chart *ChartBinding `json:"chart,omitempty"`
}

// QueryResult is a tabular result: ordered columns, ordered rows.
type QueryResult struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartConfig is the render contract the frontend's bar-chart widget
// consumes.
type ChartConfig struct {
	ChartType string       `json:"chartType"`
	Title     string       `json:"title"`
	XAxis     string       `json:"xAxis"`
	YAxis     string       `json:"yAxis"`
	Points    []ChartPoint `json:"points"`
}

// Catalog is the fixed menu of read-only queries, grouped by topic.
var Catalog = []QueryDef{
	// ---- Metadata exploration ----
	{
		Name:  "Artifacts from 11th century (Byzantine)",
		Group: "metadata",
		SQL: `SELECT * FROM artifact_metadata
			WHERE century LIKE '%11th%' AND culture LIKE '%Byzantine%'
			LIMIT 100`,
	},
	{
		Name:  "Unique cultures represented",
		Group: "metadata",
		SQL: `SELECT DISTINCT culture FROM artifact_metadata
			ORDER BY culture`,
	},
	{
		Name:  "Artifacts from Archaic Period",
		Group: "metadata",
		SQL: `SELECT * FROM artifact_metadata
			WHERE period LIKE '%Archaic%'
			LIMIT 100`,
	},
	{
		Name:  "Artifact titles by accession year (desc)",
		Group: "metadata",
		SQL: `SELECT title, accessionyear FROM artifact_metadata
			ORDER BY accessionyear DESC
			LIMIT 100`,
	},
	{
		Name:  "Artifact count per department",
		Group: "metadata",
		SQL: `SELECT department, COUNT(*) AS artifact_count
			FROM artifact_metadata
			GROUP BY department
			ORDER BY artifact_count DESC`,
		Chart: &ChartBinding{LabelColumn: "department", ValueColumn: "artifact_count"},
	},

	// ---- Media stats ----
	{
		Name:  "Artifacts with more than 3 images",
		Group: "media",
		SQL: `SELECT am.objectid, am.imagecount, a.title
			FROM artifact_media am
			JOIN artifact_metadata a ON am.objectid = a.id
			WHERE imagecount > 3
			LIMIT 100`,
	},
	{
		Name:  "Average rank of all artifacts",
		Group: "media",
		SQL:   `SELECT ROUND(AVG(rank), 2) AS avg_rank FROM artifact_media`,
	},
	{
		Name:  "Media count > Color count",
		Group: "media",
		SQL: `SELECT am.objectid, am.mediacount, am.colorcount, a.title
			FROM artifact_media am
			JOIN artifact_metadata a ON am.objectid = a.id
			WHERE mediacount > colorcount
			LIMIT 100`,
	},
	{
		Name:  "Artifacts created between 1500 and 1600",
		Group: "media",
		SQL: `SELECT am.objectid, am.datebegin, am.dateend, a.title
			FROM artifact_media am
			JOIN artifact_metadata a ON am.objectid = a.id
			WHERE datebegin >= 1500 AND dateend <= 1600
			LIMIT 100`,
	},
	{
		Name:  "Artifacts with no media files",
		Group: "media",
		SQL: `SELECT am.objectid, a.title
			FROM artifact_media am
			JOIN artifact_metadata a ON am.objectid = a.id
			WHERE mediacount = 0 OR mediacount IS NULL`,
	},

	// ---- Color stats ----
	{
		Name:  "Distinct hues used",
		Group: "colors",
		SQL: `SELECT DISTINCT hue FROM artifact_colors
			ORDER BY hue`,
	},
	{
		Name:  "Top 5 most used colors by frequency",
		Group: "colors",
		SQL: `SELECT color, COUNT(*) AS usage_count
			FROM artifact_colors
			GROUP BY color
			ORDER BY usage_count DESC
			LIMIT 5`,
		Chart: &ChartBinding{LabelColumn: "color", ValueColumn: "usage_count"},
	},
	{
		Name:  "Average coverage percentage per hue",
		Group: "colors",
		SQL: `SELECT hue, ROUND(AVG(percent), 2) AS avg_coverage
			FROM artifact_colors
			GROUP BY hue
			ORDER BY avg_coverage DESC`,
		Chart: &ChartBinding{LabelColumn: "hue", ValueColumn: "avg_coverage"},
	},
	{
		Name:  "Colors used for artifact 201391",
		Group: "colors",
		SQL: `SELECT objectid, color, hue, percent
			FROM artifact_colors
			WHERE objectid = 201391
			LIMIT 50`,
	},
	{
		Name:  "Total number of color entries",
		Group: "colors",
		SQL:   `SELECT COUNT(*) AS total_colors FROM artifact_colors`,
	},

	// ---- Cross-table joins ----
	{
		Name:  "Titles and hues for Byzantine culture",
		Group: "joins",
		SQL: `SELECT m.title, c.hue
			FROM artifact_metadata m
			JOIN artifact_colors c ON m.id = c.objectid
			WHERE m.culture LIKE '%Byzantine%'
			LIMIT 100`,
	},
	{
		Name:  "Each artifact title with associated hues",
		Group: "joins",
		SQL: `SELECT m.title, c.hue
			FROM artifact_metadata m
			JOIN artifact_colors c ON m.id = c.objectid
			LIMIT 100`,
	},
	{
		Name:  "Titles, cultures, media ranks (period not null)",
		Group: "joins",
		SQL: `SELECT m.title, m.culture, am.rank
			FROM artifact_metadata m
			JOIN artifact_media am ON m.id = am.objectid
			WHERE m.period IS NOT NULL
			LIMIT 100`,
	},
	{
		Name:  "Top 10 ranked artifacts with hue 'Grey'",
		Group: "joins",
		SQL: `SELECT DISTINCT m.title, am.rank
			FROM artifact_metadata m
			JOIN artifact_media am ON m.id = am.objectid
			JOIN artifact_colors c ON m.id = c.objectid
			WHERE c.hue = 'Grey'
			ORDER BY am.rank DESC
			LIMIT 10`,
	},
	{
		Name:  "Artifact count & avg media count per classification",
		Group: "joins",
		SQL: `SELECT m.classification, COUNT(*) AS artifact_count, ROUND(AVG(am.mediacount), 2) AS avg_media
			FROM artifact_metadata m
			JOIN artifact_media am ON m.id = am.objectid
			GROUP BY m.classification
			ORDER BY artifact_count DESC`,
	},
	{
		Name:  "Most common mediums used across all artifacts",
		Group: "metadata",
		SQL: `SELECT medium, COUNT(*) AS count
			FROM artifact_metadata
			GROUP BY medium
			ORDER BY count DESC
			LIMIT 10`,
	},
	{
		Name:  "Departments with most Byzantine artifacts",
		Group: "metadata",
		SQL: `SELECT department, COUNT(*) AS count
			FROM artifact_metadata
			WHERE culture LIKE '%Byzantine%'
			GROUP BY department
			ORDER BY count DESC`,
	},
	{
		Name:  "Artifacts acquired as gifts",
		Group: "metadata",
		SQL: `SELECT COUNT(*) AS gift_artifact_count
			FROM artifact_metadata
			WHERE accessionmethod LIKE '%Gift%'`,
	},
	{
		Name:  "Hue distribution for 'Sculpture' classification",
		Group: "joins",
		SQL: `SELECT c.hue, COUNT(*) AS count
			FROM artifact_metadata m
			JOIN artifact_colors c ON m.id = c.objectid
			WHERE m.classification LIKE '%Sculpture%'
			GROUP BY c.hue`,
	},
	{
		Name:  "Sample media rows",
		Group: "media",
		SQL: `SELECT * FROM artifact_media
			LIMIT 10`,
	},
}

type QueryService struct {
	db *gorm.DB
}

func NewQueryService(db *gorm.DB) *QueryService {
	return &QueryService{db: db}
}

// Catalog returns the full query menu.
func (s *QueryService) Catalog() []QueryDef {
	return Catalog
}

// Find looks a query up by its display name.
func (s *QueryService) Find(name string) (*QueryDef, error) {
	for i := range Catalog {
		if Catalog[i].Name == name {
			return &Catalog[i], nil
		}
	}
	return nil, fmt.Errorf("unknown query: %q", name)
}

// Run executes the named catalog query read-only and returns its tabular
// result. Zero rows is a valid result, not an error.
func (s *QueryService) Run(name string) (*QueryDef, *QueryResult, error) {
	def, err := s.Find(name)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.db.Raw(def.SQL).Rows()
	if err != nil {
		return def, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return def, nil, err
	}

	result := &QueryResult{
		Columns: columns,
		Rows:    [][]interface{}{},
	}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return def, nil, err
		}
		// The sqlite driver hands text columns back as []byte.
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return def, nil, err
	}

	return def, result, nil
}

// BuildChart turns a result into a bar-chart config when the query carries
// a chart binding. Returns nil for unbound queries, empty results, or a
// binding whose columns are not in the result.
func BuildChart(def *QueryDef, result *QueryResult) *ChartConfig {
	if def.Chart == nil || result == nil || len(result.Rows) == 0 {
		return nil
	}

	labelIdx, valueIdx := -1, -1
	for i, col := range result.Columns {
		switch col {
		case def.Chart.LabelColumn:
			labelIdx = i
		case def.Chart.ValueColumn:
			valueIdx = i
		}
	}
	if labelIdx < 0 || valueIdx < 0 {
		return nil
	}

	config := &ChartConfig{
		ChartType: "bar",
		Title:     def.Name,
		XAxis:     def.Chart.LabelColumn,
		YAxis:     def.Chart.ValueColumn,
	}

	for _, row := range result.Rows {
		label := ""
		if row[labelIdx] != nil {
			label = fmt.Sprintf("%v", row[labelIdx])
		}
		value, ok := toFloat(row[valueIdx])
		if !ok {
			continue
		}
		config.Points = append(config.Points, ChartPoint{Label: label, Value: value})
	}

	if len(config.Points) == 0 {
		return nil
	}
	return config
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// ExportXLSX writes a query result into a single-sheet spreadsheet:
// header row first, then the data rows in result order.
func ExportXLSX(def *QueryDef, result *QueryResult) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, col := range result.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	for r, row := range result.Rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
