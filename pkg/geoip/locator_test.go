package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/203.0.113.7/json/", r.URL.Path)
		w.Write([]byte(`{"ip":"203.0.113.7","country_code":"CA","country_name":"Canada"}`))
	}))
	defer srv.Close()

	code, err := NewClient(srv.URL).CountryCode(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, "CA", code)
}

func TestCountryCodeMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ip":"127.0.0.1"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CountryCode(context.Background(), "127.0.0.1")
	assert.Error(t, err)
}

func TestCountryCodeRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CountryCode(context.Background(), "203.0.113.7")
	assert.Error(t, err)
}
