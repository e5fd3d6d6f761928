// Package geo proxies the Naver Maps geocoding API so the browser
// never sees the upstream credentials.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrNotConfigured = errors.New("map credentials not configured")
	ErrBadRequest    = errors.New("upstream rejected request")
	ErrUpstream      = errors.New("upstream failure")
	ErrTimeout       = errors.New("upstream timeout")
)

const defaultBaseURL = "https://naveropenapi.apigw.ntruss.com"

type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	http         *http.Client
}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      defaultBaseURL,
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// Geocode resolves an address query to coordinates. The upstream JSON
// is passed through untouched.
func (c *Client) Geocode(ctx context.Context, query string) (json.RawMessage, error) {
	return c.get(ctx, "/map-geocode/v2/geocode?query="+url.QueryEscape(query))
}

// ReverseGeocode resolves "lng,lat" coordinates to an address.
func (c *Client) ReverseGeocode(ctx context.Context, coords string) (json.RawMessage, error) {
	return c.get(ctx, "/map-reversegeocode/v2/gc?coords="+url.QueryEscape(coords)+
		"&sourcecrs=epsg:4326&orders=roadaddr,addr,admcode,legalcode&output=json")
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-NCP-APIGW-API-KEY-ID", c.clientID)
	req.Header.Set("X-NCP-APIGW-API-KEY", c.clientSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) && ue.Timeout() {
			return nil, ErrTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: status %d", ErrBadRequest, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
}
