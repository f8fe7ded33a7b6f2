package vendorapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://api.example-data.com", "test-token")
	assert.Equal(t, "https://api.example-data.com", client.baseURL)
	assert.Equal(t, "test-token", client.token)
	assert.NotNil(t, client.httpClient)
}

func TestGetHistory_Success(t *testing.T) {
	mockResponse := historyResponse{
		Symbol:   "MSFT",
		Interval: "1d",
		Bars: []apiBar{
			{
				Time: "2024-01-02T00:00:00Z",
				Open: 370.1, High: 375.9, Low: 369.2, Close: 374.5, Volume: 1000,
			},
			{
				Time: "2024-01-03T00:00:00Z",
				Open: 374.5, High: 378.0, Low: 372.8, Close: 376.0, Volume: 1500,
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/v1/history/MSFT", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "2024-01-01T00:00:00Z", r.URL.Query().Get("start"))
		assert.Equal(t, "2024-01-31T00:00:00Z", r.URL.Query().Get("end"))

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")

	bars, err := client.GetHistory(context.Background(), HistoryRequest{
		Symbol:   "MSFT",
		Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Interval: I1d,
	})

	require.NoError(t, err)
	require.Len(t, bars, 2)

	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), bars[0].Time)
	assert.Equal(t, 370.1, bars[0].Open)
	assert.Equal(t, 374.5, bars[0].Close)
	assert.Equal(t, 1000.0, bars[0].Volume)

	assert.Equal(t, 376.0, bars[1].Close)
}

func TestGetHistory_DefaultInterval(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		json.NewEncoder(w).Encode(historyResponse{Symbol: "MSFT"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	bars, err := client.GetHistory(context.Background(), HistoryRequest{Symbol: "MSFT"})
	require.NoError(t, err)
	assert.Empty(t, bars)
}

func TestGetHistory_MissingSymbol(t *testing.T) {
	client := NewClient("http://localhost:0", "")
	_, err := client.GetHistory(context.Background(), HistoryRequest{})
	assert.Error(t, err)
}

func TestGetHistory_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad token"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad")
	_, err := client.GetHistory(context.Background(), HistoryRequest{Symbol: "MSFT"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestGetHistory_BadTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(historyResponse{
			Bars: []apiBar{{Time: "not-a-time", Close: 1}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.GetHistory(context.Background(), HistoryRequest{Symbol: "MSFT"})
	assert.Error(t, err)
}
