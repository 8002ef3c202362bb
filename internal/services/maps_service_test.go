package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/models/maps_models"
	"tripforge/pkg/config"
	"tripforge/pkg/utils"
)

func centerTokyo() maps_models.LatLng {
	return maps_models.LatLng{Lat: 35.6762, Lng: 139.6503}
}

func newTestMapsClient(serverURL string) *GoogleMapsClient {
	return &GoogleMapsClient{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		APIKey:  "test-key",
		BaseURL: serverURL,
	}
}

func TestGeocodeSuccess(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		gotQuery = map[string]string{
			"address": r.URL.Query().Get("address"),
			"key":     r.URL.Query().Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [{"formatted_address": "Japan", "geometry": {"location": {"lat": 36.2, "lng": 138.25}}}]
		}`))
	}))
	defer server.Close()

	client := newTestMapsClient(server.URL)
	loc, err := client.Geocode(context.Background(), "Japan")

	require.NoError(t, err)
	assert.Equal(t, 36.2, loc.Lat)
	assert.Equal(t, 138.25, loc.Lng)
	assert.Equal(t, "Japan", gotQuery["address"])
	assert.Equal(t, "test-key", gotQuery["key"])
}

func TestGeocodeZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	client := newTestMapsClient(server.URL)
	_, err := client.Geocode(context.Background(), "Nowhereville")

	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestGeocodeEmptyAddress(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := newTestMapsClient(server.URL)
	_, err := client.Geocode(context.Background(), "")

	assert.ErrorIs(t, err, utils.ErrDestinationRequired)
	assert.False(t, called, "empty input must not hit the network")
}

func TestGeocodeMissingKey(t *testing.T) {
	client := newTestMapsClient("http://unused")
	client.APIKey = ""

	_, err := client.Geocode(context.Background(), "Japan")

	assert.ErrorIs(t, err, utils.ErrMissingAPIKey)
}

func TestGeocodeUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": [{"geometry": {"location": {"lat": 1, "lng": 1}}}], "error_message": "key expired"}`))
	}))
	defer server.Close()

	client := newTestMapsClient(server.URL)
	_, err := client.Geocode(context.Background(), "Japan")

	require.ErrorIs(t, err, utils.ErrUpstream)
	assert.Contains(t, err.Error(), "key expired")
}

func TestGeocodeBadHTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestMapsClient(server.URL)
	_, err := client.Geocode(context.Background(), "Japan")

	assert.ErrorIs(t, err, utils.ErrUpstream)
}

func TestNearbySearchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		assert.Equal(t, "5000", r.URL.Query().Get("radius"))
		assert.Equal(t, "restaurant", r.URL.Query().Get("type"))
		assert.NotEmpty(t, r.URL.Query().Get("location"))
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"name": "First Place", "vicinity": "Main St", "price_level": 3},
				{"name": "Second Place", "vicinity": "Side St"}
			]
		}`))
	}))
	defer server.Close()

	client := newTestMapsClient(server.URL)
	results, err := client.NearbySearch(context.Background(), centerTokyo(), PlaceTypeRestaurant, 5000)

	require.NoError(t, err)
	require.Len(t, results, 2)
	// Upstream ordering is preserved untouched.
	assert.Equal(t, "First Place", results[0].Name)
	require.NotNil(t, results[0].PriceLevel)
	assert.Equal(t, 3, *results[0].PriceLevel)
	assert.Nil(t, results[1].PriceLevel)
}

func TestNearbySearchZeroResultsIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	client := newTestMapsClient(server.URL)
	results, err := client.NearbySearch(context.Background(), centerTokyo(), PlaceTypeLodging, 5000)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNearbySearchUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "results": []}`))
	}))
	defer server.Close()

	client := newTestMapsClient(server.URL)
	_, err := client.NearbySearch(context.Background(), centerTokyo(), PlaceTypeAttraction, 5000)

	require.ErrorIs(t, err, utils.ErrUpstream)
	assert.Contains(t, err.Error(), "OVER_QUERY_LIMIT")
}

func TestNewGoogleMapsClientDefaults(t *testing.T) {
	cfg := &config.Config{GoogleMapsAPIKey: "k", HTTPTimeoutSeconds: 7}
	client := NewGoogleMapsClient(cfg).(*GoogleMapsClient)

	assert.Equal(t, "https://maps.googleapis.com/maps/api", client.BaseURL)
	assert.Equal(t, 7*time.Second, client.HTTP.Timeout)
}
