package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(upstream *httptest.Server) *Client {
	c := NewClient("id", "secret")
	c.baseURL = upstream.URL
	return c
}

func TestGeocode(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-NCP-APIGW-API-KEY-ID") != "id" {
			t.Error("missing credential header")
		}
		if got := r.URL.Query().Get("query"); got != "서울 강남구" {
			t.Errorf("query = %q", got)
		}
		w.Write([]byte(`{"status":"OK","addresses":[]}`))
	}))
	defer upstream.Close()

	body, err := testClient(upstream).Geocode(context.Background(), "서울 강남구")
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if string(body) != `{"status":"OK","addresses":[]}` {
		t.Errorf("body not passed through: %s", body)
	}
}

func TestReverseGeocodeParams(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("coords") != "127.02,37.49" {
			t.Errorf("coords = %q", q.Get("coords"))
		}
		if q.Get("output") != "json" {
			t.Errorf("output = %q", q.Get("output"))
		}
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	if _, err := testClient(upstream).ReverseGeocode(context.Background(), "127.02,37.49"); err != nil {
		t.Fatalf("reverse geocode: %v", err)
	}
}

func TestUpstreamStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"client error", http.StatusBadRequest, ErrBadRequest},
		{"auth error", http.StatusUnauthorized, ErrBadRequest},
		{"server error", http.StatusInternalServerError, ErrUpstream},
		{"bad gateway", http.StatusBadGateway, ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer upstream.Close()

			_, err := testClient(upstream).Geocode(context.Background(), "x")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTimeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer upstream.Close()

	c := testClient(upstream)
	c.http.Timeout = 20 * time.Millisecond

	if _, err := c.Geocode(context.Background(), "x"); !errors.Is(err, ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}

func TestNotConfigured(t *testing.T) {
	c := NewClient("", "")
	if c.Configured() {
		t.Fatal("client without credentials reports configured")
	}
	if _, err := c.Geocode(context.Background(), "x"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}
