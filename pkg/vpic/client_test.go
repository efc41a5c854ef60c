package vpic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vehicles/DecodeVinValuesExtended/SALCR2RX0JH123456", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Write([]byte(`{"Results":[{"ModelYear":"2018","Make":"LAND ROVER"}]}`))
	}))
	defer srv.Close()

	rec, err := NewClient(srv.URL).Decode(context.Background(), "SALCR2RX0JH123456")
	require.NoError(t, err)
	assert.Equal(t, "2018", rec.ModelYear)
	assert.Equal(t, "LAND ROVER", rec.Make)
}

func TestDecodeEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Results":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Decode(context.Background(), "ZZZZZ")
	assert.Error(t, err)
}

func TestDecodeBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Decode(context.Background(), "ABC12")
	assert.Error(t, err)
}

func TestDecodeMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<!DOCTYPE html><html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Decode(context.Background(), "ABC12")
	assert.Error(t, err)
}
