package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripforge/internal/models/maps_models"
	"tripforge/pkg/config"
	"tripforge/pkg/utils"
)

// Google place types issued by the nearby searches.
const (
	PlaceTypeAttraction = "tourist_attraction"
	PlaceTypeRestaurant = "restaurant"
	PlaceTypeLodging    = "lodging"
)

const googleStatusOK = "OK"
const googleStatusZeroResults = "ZERO_RESULTS"

type MapsServiceInterface interface {
	// Geocode resolves a free-text place name to coordinates.
	Geocode(ctx context.Context, address string) (maps_models.LatLng, error)

	// NearbySearch returns places of the given type around center, in
	// whatever order the upstream service ranked them.
	NearbySearch(ctx context.Context, center maps_models.LatLng, placeType string, radiusMeters int) ([]maps_models.PlaceResult, error)
}

type GoogleMapsClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGoogleMapsClient(cfg *config.Config) MapsServiceInterface {
	return &GoogleMapsClient{
		HTTP:    &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second},
		APIKey:  cfg.GoogleMapsAPIKey,
		BaseURL: "https://maps.googleapis.com/maps/api",
	}
}

func (c *GoogleMapsClient) Geocode(ctx context.Context, address string) (maps_models.LatLng, error) {
	if address == "" {
		return maps_models.LatLng{}, utils.ErrDestinationRequired
	}
	if c.APIKey == "" {
		return maps_models.LatLng{}, utils.ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.APIKey)

	var payload maps_models.GeocodeResponse
	if err := c.getJSON(ctx, "/geocode/json", q, &payload); err != nil {
		return maps_models.LatLng{}, err
	}

	if payload.Status == googleStatusZeroResults || len(payload.Results) == 0 {
		return maps_models.LatLng{}, utils.ErrDestinationNotFound
	}
	if payload.Status != googleStatusOK {
		return maps_models.LatLng{}, fmt.Errorf("%w: geocode status %s: %s",
			utils.ErrUpstream, payload.Status, payload.ErrorMessage)
	}

	return payload.Results[0].Geometry.Location, nil
}

func (c *GoogleMapsClient) NearbySearch(ctx context.Context, center maps_models.LatLng, placeType string, radiusMeters int) ([]maps_models.PlaceResult, error) {
	if c.APIKey == "" {
		return nil, utils.ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
	q.Set("radius", strconv.Itoa(radiusMeters))
	q.Set("type", placeType)
	q.Set("key", c.APIKey)

	var payload maps_models.PlacesNearbyResponse
	if err := c.getJSON(ctx, "/place/nearbysearch/json", q, &payload); err != nil {
		return nil, err
	}

	// ZERO_RESULTS is an empty list, not an error; the assembler just
	// skips the category.
	if payload.Status != googleStatusOK && payload.Status != googleStatusZeroResults {
		return nil, fmt.Errorf("%w: nearby search status %s: %s",
			utils.ErrUpstream, payload.Status, payload.ErrorMessage)
	}

	return payload.Results, nil
}

func (c *GoogleMapsClient) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	endpoint := c.BaseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", utils.ErrUpstream, err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: bad status %s", utils.ErrUpstream, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", utils.ErrUpstream, err)
	}

	return nil
}
