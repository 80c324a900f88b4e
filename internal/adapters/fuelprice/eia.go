// Package fuelprice obtains the reference diesel price from the EIA v2
// open-data API (weekly U.S. No 2 Diesel Retail Prices, USD/gal).
package fuelprice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/httpx"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

const DefaultEIABaseURL = "https://api.eia.gov"

// The series is weekly; an hour of caching is more than fresh enough.
const priceTTL = time.Hour

type eiaResponse struct {
	Response struct {
		Data []struct {
			Value *float64 `json:"value"`
		} `json:"data"`
	} `json:"response"`
}

// EIAPriceProvider queries the weekly diesel retail price series
// (product EPD2D, national average). Requires an API key.
type EIAPriceProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   ports.ResponseCache
}

func NewEIAPriceProvider(apiKey, baseURL string, respCache ports.ResponseCache) (*EIAPriceProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("EIA api key is empty")
	}
	if baseURL == "" {
		baseURL = DefaultEIABaseURL
	}

	return &EIAPriceProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
		cache:   respCache,
	}, nil
}

func (p *EIAPriceProvider) CurrentDieselPrice(ctx context.Context) (_ float64, err error) {
	defer obs.Time(ctx, "eia.CurrentDieselPrice")(&err)

	const key = "fuelprice:eia:diesel"
	if price, ok := cache.Lookup[float64](ctx, p.cache, key); ok {
		return price, nil
	}

	endpoint := p.baseURL + "/v2/petroleum/pri/gnd/data/"

	resp, err := httpx.DoWithRetry(ctx, p.session, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		// Most recent weekly observation first.
		q := req.URL.Query()
		q.Set("api_key", p.apiKey)
		q.Set("frequency", "weekly")
		q.Set("data[0]", "value")
		q.Set("facets[product]", "EPD2D")
		q.Set("facets[process]", "RFG,CONV")
		q.Set("facets[area]", "NUS")
		q.Set("sort[0][column]", "period")
		q.Set("sort[0][direction]", "desc")
		q.Set("offset", "0")
		q.Set("length", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return 0, fmt.Errorf("eia diesel price: %w: %v", ports.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded eiaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("eia diesel price: decode: %w: %v", ports.ErrProviderUnavailable, err)
	}

	if len(decoded.Response.Data) == 0 || decoded.Response.Data[0].Value == nil {
		return 0, fmt.Errorf("eia diesel price: missing value: %w", ports.ErrProviderUnavailable)
	}

	price := *decoded.Response.Data[0].Value
	cache.Store(ctx, p.cache, key, price, priceTTL)

	return price, nil
}
