package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"rentride/config"
	"rentride/models"
)

// DeliveryEstimator quotes the distance-dependent part of a home delivery.
type DeliveryEstimator interface {
	EstimateDeliveryFee(ctx context.Context, from, to models.GeoPoint) (*DeliveryEstimate, error)
}

// DeliveryEstimate is the routing collaborator's answer: driving distance
// plus the fee derived from it. The pricing engine treats this figure as
// authoritative for home delivery.
type DeliveryEstimate struct {
	DistanceKm  float64 `json:"distanceKm"`
	DurationMin float64 `json:"durationMin"`
	Fee         float64 `json:"fee"`
}

// MapboxClient calls the Mapbox Directions API.
type MapboxClient struct {
	HTTP    *http.Client
	BaseFee float64
	PerKm   float64
}

// NewMapboxClient builds a client with the rate card the garages use:
// a flat base charge plus a per-kilometer rate.
func NewMapboxClient(baseFee, perKm float64) *MapboxClient {
	return &MapboxClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseFee: baseFee,
		PerKm:   perKm,
	}
}

// directionsResponse is the slice of the Mapbox payload we read.
type directionsResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
	Code string `json:"code"`
}

// EstimateDeliveryFee fetches the driving route between the garage and the
// drop-off point and prices it.
func (c *MapboxClient) EstimateDeliveryFee(ctx context.Context, from, to models.GeoPoint) (*DeliveryEstimate, error) {
	token := config.AppConfig.MapboxToken
	if token == "" {
		return nil, fmt.Errorf("mapbox token is not configured")
	}

	url := fmt.Sprintf(
		"https://api.mapbox.com/directions/v5/mapbox/driving/%f,%f;%f,%f?access_token=%s",
		from.Longitude, from.Latitude, to.Longitude, to.Latitude, token,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directions request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var directions directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}
	if directions.Code != "Ok" || len(directions.Routes) == 0 {
		return nil, fmt.Errorf("no route found between garage and drop-off")
	}

	route := directions.Routes[0]
	distanceKm := route.Distance / 1000
	return &DeliveryEstimate{
		DistanceKm:  distanceKm,
		DurationMin: route.Duration / 60,
		Fee:         c.BaseFee + distanceKm*c.PerKm,
	}, nil
}
