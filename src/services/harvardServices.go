package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/HAExplorer/HAExplorer-Backend/src/models"
)

// DefaultBaseURL is the Harvard Art Museums object collection endpoint.
const DefaultBaseURL = "https://api.harvardartmuseums.org/object"

// Classifications is the fixed menu of categories the explorer can ingest.
var Classifications = []string{"Vessels", "Prints", "Coins", "Paintings", "Drawings"}

type HarvardService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHarvardService creates a fetcher configured from the environment.
// The API key must come from HARVARD_API_KEY; there is no embedded default.
func NewHarvardService() (*HarvardService, error) {
	apiKey := os.Getenv("HARVARD_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("HARVARD_API_KEY must be set")
	}
	baseURL := os.Getenv("HARVARD_API_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return NewHarvardServiceWith(baseURL, apiKey, http.DefaultClient), nil
}

// NewHarvardServiceWith creates a fetcher against an explicit endpoint.
func NewHarvardServiceWith(baseURL, apiKey string, client *http.Client) *HarvardService {
	if client == nil {
		client = http.DefaultClient
	}
	return &HarvardService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

// objectsPage is the envelope the object endpoint wraps each page in.
// info.next is a URL when more pages exist and absent on the last one.
type objectsPage struct {
	Info struct {
		Next string `json:"next"`
	} `json:"info"`
	Records []models.RawRecord `json:"records"`
}

// IsKnownClassification reports whether the classification is on the menu.
func IsKnownClassification(classification string) bool {
	for _, c := range Classifications {
		if c == classification {
			return true
		}
	}
	return false
}

// FetchByClassification pages through the object endpoint for one
// classification, accumulating records until maxRecords is reached or the
// endpoint reports no further page. A non-success status ends pagination
// early: the records gathered so far are still returned, together with the
// diagnostic error. No retry is attempted. maxRecords == 0 issues no
// request at all.
func (s *HarvardService) FetchByClassification(classification string, pageSize, maxRecords int) ([]models.RawRecord, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", pageSize)
	}
	if maxRecords < 0 {
		return nil, fmt.Errorf("max records must not be negative, got %d", maxRecords)
	}

	records := []models.RawRecord{}
	page := 1
	for len(records) < maxRecords {
		params := url.Values{}
		params.Set("apikey", s.apiKey)
		params.Set("classification", classification)
		params.Set("size", strconv.Itoa(pageSize))
		params.Set("page", strconv.Itoa(page))
		params.Set("hasimage", "1")

		resp, err := s.client.Get(s.baseURL + "?" + params.Encode())
		if err != nil {
			return capRecords(records, maxRecords), fmt.Errorf("requesting page %d: %w", page, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return capRecords(records, maxRecords), fmt.Errorf("API error: status %d on page %d", resp.StatusCode, page)
		}

		var data objectsPage
		err = json.NewDecoder(resp.Body).Decode(&data)
		resp.Body.Close()
		if err != nil {
			return capRecords(records, maxRecords), fmt.Errorf("decoding page %d: %w", page, err)
		}

		records = append(records, data.Records...)
		if data.Info.Next == "" {
			break
		}
		page++
	}

	return capRecords(records, maxRecords), nil
}

// capRecords truncates to max; it never pads.
func capRecords(records []models.RawRecord, max int) []models.RawRecord {
	if len(records) > max {
		return records[:max]
	}
	return records
}
