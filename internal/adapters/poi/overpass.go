// Package poi finds real-world fuel stations near sampled route points
// using the Overpass OpenStreetMap query API.
package poi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/httpx"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const DefaultOverpassBaseURL = "https://overpass-api.de"

// Search radius in meters around each sampled point.
const searchRadiusM = 3000

// Ask for a handful of elements so the nearest can be chosen explicitly
// instead of trusting provider ordering.
const maxElements = 5

// POI data moves slowly; cache lightly to be polite to the public API.
const poiTTL = 10 * time.Minute

type overpassElement struct {
	Type   string  `json:"type"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// OverpassPOIProvider issues bounded-radius amenity=fuel queries against
// an Overpass endpoint. Point features use their own location; area
// features use the centroid Overpass computes ("center").
type OverpassPOIProvider struct {
	session *http.Client
	baseURL string
	cache   ports.ResponseCache
}

func NewOverpassPOIProvider(baseURL string, respCache ports.ResponseCache) *OverpassPOIProvider {
	if baseURL == "" {
		baseURL = DefaultOverpassBaseURL
	}
	return &OverpassPOIProvider{
		// Overpass is the slowest provider in the chain.
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		cache:   respCache,
	}
}

func fuelQuery(p domain.Coordinate) string {
	return fmt.Sprintf(`[out:json][timeout:15];
(
  node["amenity"="fuel"](around:%d,%f,%f);
  way["amenity"="fuel"](around:%d,%f,%f);
);
out tags center %d;`,
		searchRadiusM, p.Lat, p.Lon,
		searchRadiusM, p.Lat, p.Lon,
		maxElements)
}

func (o *OverpassPOIProvider) NearestFuelPOI(ctx context.Context, p domain.Coordinate) (_ *domain.FuelPOI, err error) {
	defer obs.Time(ctx, "overpass.NearestFuelPOI")(&err)

	key := fmt.Sprintf("poi:fuel:%.4f,%.4f", p.Lat, p.Lon)
	if poi, ok := cache.Lookup[domain.FuelPOI](ctx, o.cache, key); ok {
		return &poi, nil
	}

	form := url.Values{"data": {fuelQuery(p)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/api/interpreter", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("overpass fuel poi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := httpx.Do(o.session, req)
	if err != nil {
		return nil, fmt.Errorf("overpass fuel poi: %w: %v", ports.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("overpass fuel poi: decode: %w: %v", ports.ErrProviderUnavailable, err)
	}

	poi := nearestOf(p, decoded.Elements)
	if poi == nil {
		// No station within the radius. Not an error: the caller
		// substitutes the sampled point itself.
		return nil, nil
	}

	cache.Store(ctx, o.cache, key, *poi, poiTTL)
	return poi, nil
}

// nearestOf picks the element closest to p by haversine distance.
// Overpass tends to return near-to-far already, but that ordering is not
// guaranteed, so the selection is explicit for determinism.
func nearestOf(p domain.Coordinate, elements []overpassElement) *domain.FuelPOI {
	from := orb.Point{p.Lon, p.Lat}

	var best *domain.FuelPOI
	bestDist := 0.0

	for _, el := range elements {
		loc, ok := elementLocation(el)
		if !ok {
			continue
		}

		dist := geo.DistanceHaversine(from, orb.Point{loc.Lon, loc.Lat})
		if best == nil || dist < bestDist {
			best = &domain.FuelPOI{Name: elementName(el), Location: loc}
			bestDist = dist
		}
	}

	return best
}

func elementLocation(el overpassElement) (domain.Coordinate, bool) {
	if el.Type == "node" {
		return domain.Coordinate{Lat: el.Lat, Lon: el.Lon}, true
	}
	if el.Center != nil {
		return domain.Coordinate{Lat: el.Center.Lat, Lon: el.Center.Lon}, true
	}
	return domain.Coordinate{}, false
}

// Name precedence: explicit name tag, then brand, then a literal fallback.
func elementName(el overpassElement) string {
	if name := el.Tags["name"]; name != "" {
		return name
	}
	if brand := el.Tags["brand"]; brand != "" {
		return brand
	}
	return "Fuel Station"
}
