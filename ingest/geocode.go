package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	errors "gopkg.in/src-d/go-errors.v1"
)

// DefaultGeocoderRetries is the default number of retries of a geocoding
// request.
const DefaultGeocoderRetries = 3

// ErrGeolocation is returned when an address cannot be located.
var ErrGeolocation = errors.NewKind("unable to locate %q: %s")

// Geocoder gives the coordinates of an address.
type Geocoder interface {
	Locate(ctx context.Context, address string) (lat, lon float64, err error)
}

// HTTPGeocoder locates addresses with a web service answering
// GET <base>/<escaped address> with {"lat": .., "lon": .., "error": ..}.
type HTTPGeocoder struct {
	base   string
	client *retryablehttp.Client
}

// NewHTTPGeocoder creates a geocoder for the service at base.
func NewHTTPGeocoder(base string, retries int, logger *logrus.Entry) *HTTPGeocoder {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.Logger = nil
	if logger != nil {
		client.Logger = logger
	}

	return &HTTPGeocoder{
		base:   strings.TrimSuffix(base, "/"),
		client: client,
	}
}

type geoResponse struct {
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
	Error string   `json:"error"`
}

// Locate implements the Geocoder interface.
func (g *HTTPGeocoder) Locate(ctx context.Context, address string) (float64, float64, error) {
	u := g.base + "/" + url.PathEscape(address)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, ErrGeolocation.Wrap(err, address, err.Error())
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, 0, ErrGeolocation.Wrap(err, address, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, ErrGeolocation.New(address, fmt.Sprintf("status code %d", resp.StatusCode))
	}

	var r geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return 0, 0, ErrGeolocation.Wrap(err, address, err.Error())
	}

	if r.Error != "" {
		return 0, 0, ErrGeolocation.New(address, r.Error)
	}

	if r.Lat == nil || r.Lon == nil {
		return 0, 0, ErrGeolocation.New(address, "missing coordinates")
	}

	return *r.Lat, *r.Lon, nil
}
