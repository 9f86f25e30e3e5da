package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HAExplorer/HAExplorer-Backend/src/models"
)

// makeRecords builds n sequential raw records starting at the given id.
func makeRecords(start, n int) []models.RawRecord {
	records := make([]models.RawRecord, 0, n)
	for i := 0; i < n; i++ {
		id := start + i
		title := fmt.Sprintf("Artifact %d", id)
		records = append(records, models.RawRecord{ID: &id, Title: &title})
	}
	return records
}

// newPagedServer serves the given pages in order. A page beyond the slice
// answers 404. failFrom (1-based, 0 = never) makes that page and later
// ones answer 500. The request counter is incremented on every hit.
func newPagedServer(t *testing.T, pages [][]models.RawRecord, failFrom int, requests *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++

		q := r.URL.Query()
		assert.NotEmpty(t, q.Get("apikey"))
		assert.NotEmpty(t, q.Get("classification"))
		assert.Equal(t, "1", q.Get("hasimage"))

		page, err := strconv.Atoi(q.Get("page"))
		require.NoError(t, err)

		if failFrom > 0 && page >= failFrom {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if page < 1 || page > len(pages) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var body struct {
			Info struct {
				Next string `json:"next,omitempty"`
			} `json:"info"`
			Records []models.RawRecord `json:"records"`
		}
		body.Records = pages[page-1]
		if page < len(pages) {
			body.Info.Next = fmt.Sprintf("%s?page=%d", r.URL.Path, page+1)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
}

func TestFetchByClassification_ThreePagesCappedAtMax(t *testing.T) {
	requests := 0
	server := newPagedServer(t, [][]models.RawRecord{
		makeRecords(1, 100),
		makeRecords(101, 100),
		makeRecords(201, 50),
	}, 0, &requests)
	defer server.Close()

	service := NewHarvardServiceWith(server.URL, "test-key", server.Client())
	records, err := service.FetchByClassification("Coins", 100, 250)

	require.NoError(t, err)
	assert.Len(t, records, 250)
	assert.Equal(t, 3, requests)
	assert.Equal(t, 1, *records[0].ID)
	assert.Equal(t, 250, *records[249].ID)
}

func TestFetchByClassification_StopsWhenNoNextPage(t *testing.T) {
	requests := 0
	server := newPagedServer(t, [][]models.RawRecord{
		makeRecords(1, 3),
		makeRecords(4, 3),
	}, 0, &requests)
	defer server.Close()

	service := NewHarvardServiceWith(server.URL, "test-key", server.Client())
	records, err := service.FetchByClassification("Vessels", 3, 100)

	require.NoError(t, err)
	assert.Len(t, records, 6)
	assert.Equal(t, 2, requests)
}

func TestFetchByClassification_ZeroMaxIssuesNoRequest(t *testing.T) {
	requests := 0
	server := newPagedServer(t, [][]models.RawRecord{makeRecords(1, 10)}, 0, &requests)
	defer server.Close()

	service := NewHarvardServiceWith(server.URL, "test-key", server.Client())
	records, err := service.FetchByClassification("Prints", 100, 0)

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, requests)
}

func TestFetchByClassification_TransportErrorReturnsPartial(t *testing.T) {
	requests := 0
	server := newPagedServer(t, [][]models.RawRecord{
		makeRecords(1, 5),
		makeRecords(6, 5),
	}, 2, &requests)
	defer server.Close()

	service := NewHarvardServiceWith(server.URL, "test-key", server.Client())
	records, err := service.FetchByClassification("Coins", 5, 100)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Len(t, records, 5)
	assert.Equal(t, 2, requests)
}

func TestFetchByClassification_TruncatesOverfetchedPage(t *testing.T) {
	requests := 0
	server := newPagedServer(t, [][]models.RawRecord{
		makeRecords(1, 4),
		makeRecords(5, 4),
	}, 0, &requests)
	defer server.Close()

	service := NewHarvardServiceWith(server.URL, "test-key", server.Client())
	records, err := service.FetchByClassification("Drawings", 4, 3)

	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 1, requests)
}

func TestFetchByClassification_RejectsBadArguments(t *testing.T) {
	service := NewHarvardServiceWith("http://unused.invalid", "test-key", nil)

	_, err := service.FetchByClassification("Coins", 0, 100)
	assert.Error(t, err)

	_, err = service.FetchByClassification("Coins", 100, -1)
	assert.Error(t, err)
}

func TestIsKnownClassification(t *testing.T) {
	assert.True(t, IsKnownClassification("Coins"))
	assert.False(t, IsKnownClassification("Tapestries"))
}
