package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/HAExplorer/HAExplorer-Backend/src/models"
)

// DefaultPageSize and DefaultMaxRecords match the explorer's stock
// ingestion run: up to 25 pages of 100 records.
const (
	DefaultPageSize   = 100
	DefaultMaxRecords = 2500
)

type IngestService struct {
	db      *gorm.DB
	harvard *HarvardService
}

func NewIngestService(db *gorm.DB, harvard *HarvardService) *IngestService {
	return &IngestService{db: db, harvard: harvard}
}

type IngestResult struct {
	Classification string `json:"classification"`
	Fetched        int    `json:"fetched"`
	Metadata       int    `json:"metadata"`
	Media          int    `json:"media"`
	Colors         int    `json:"colors"`
}

// TransformRecords reshapes raw API records into the three row slices.
// Pure: one metadata and one media row per record, one color row per entry
// of the record's color sub-list, all in input order. Missing source
// fields stay nil; a record without an id still yields its rows.
func TransformRecords(records []models.RawRecord) ([]models.ArtifactMetadata, []models.ArtifactMedia, []models.ArtifactColor) {
	metadata := make([]models.ArtifactMetadata, 0, len(records))
	media := make([]models.ArtifactMedia, 0, len(records))
	colors := []models.ArtifactColor{}

	for _, rec := range records {
		metadata = append(metadata, models.ArtifactMetadata{
			ID:              rec.ID,
			Title:           rec.Title,
			Culture:         rec.Culture,
			Period:          rec.Period,
			Century:         rec.Century,
			Medium:          rec.Medium,
			Dimensions:      rec.Dimensions,
			Description:     rec.Description,
			Department:      rec.Department,
			Classification:  rec.Classification,
			AccessionYear:   rec.AccessionYear,
			AccessionMethod: rec.AccessionMethod,
		})

		media = append(media, models.ArtifactMedia{
			ObjectID:   rec.ID,
			ImageCount: rec.ImageCount,
			MediaCount: rec.MediaCount,
			ColorCount: rec.ColorCount,
			Rank:       rec.Rank,
			DateBegin:  rec.DateBegin,
			DateEnd:    rec.DateEnd,
		})

		for _, c := range rec.Colors {
			colors = append(colors, models.ArtifactColor{
				ObjectID: rec.ID,
				Color:    c.Color,
				Spectrum: c.Spectrum,
				Hue:      c.Hue,
				Percent:  c.Percent,
				CSS3:     c.CSS3,
			})
		}
	}

	return metadata, media, colors
}

// LoadMetadata inserts metadata rows as one transaction, skipping rows
// whose id already exists (insert-or-ignore, first write wins).
func (s *IngestService) LoadMetadata(rows []models.ArtifactMetadata) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	})
}

// LoadMedia inserts media rows as one transaction. There is no uniqueness
// key on artifact_media, so every row is inserted unconditionally.
func (s *IngestService) LoadMedia(rows []models.ArtifactMedia) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// LoadColors inserts color rows as one transaction, unconditionally, same
// as LoadMedia.
func (s *IngestService) LoadColors(rows []models.ArtifactColor) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// Ingest runs the full fetch → transform → load sequence for one
// classification. A transport failure mid-pagination does not discard the
// pages already fetched: those records are still transformed and loaded,
// and the fetch error is returned alongside the partial counts so the
// caller can report both.
func (s *IngestService) Ingest(classification string, pageSize, maxRecords int) (*IngestResult, error) {
	raw, fetchErr := s.harvard.FetchByClassification(classification, pageSize, maxRecords)
	if fetchErr != nil && len(raw) == 0 {
		return nil, fetchErr
	}

	metadata, media, colors := TransformRecords(raw)

	if err := s.LoadMetadata(metadata); err != nil {
		return nil, err
	}
	if err := s.LoadMedia(media); err != nil {
		return nil, err
	}
	if err := s.LoadColors(colors); err != nil {
		return nil, err
	}

	result := &IngestResult{
		Classification: classification,
		Fetched:        len(raw),
		Metadata:       len(metadata),
		Media:          len(media),
		Colors:         len(colors),
	}
	return result, fetchErr
}
