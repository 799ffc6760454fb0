package streetsapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "success": true,
  "result": {
    "records": [
      {"_id": 11, "region_code": 3, "region_name": " חיפה ", "city_code": 4000, "city_name": "חיפה ",
       "street_code": 100, "street_name": "Ha-Carmel", "street_name_status": "official", "official_code": 555}
    ]
  }
}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{URL: srv.URL, ResourceID: "res-1", Timeout: 5 * time.Second})
	require.NoError(t, err)
	c.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return c
}

func TestNewClient_RequiresURLAndResource(t *testing.T) {
	_, err := NewClient(Config{ResourceID: "x"})
	require.Error(t, err)

	_, err = NewClient(Config{URL: "http://localhost"})
	require.Error(t, err)

	c, err := NewClient(Config{URL: "http://localhost", ResourceID: "x"})
	require.NoError(t, err)
	assert.Equal(t, defaultLimit, c.cfg.Limit)
	assert.Equal(t, defaultTimeout, c.cfg.Timeout)
}

func TestStreetsInCity_RequestAndConversion(t *testing.T) {
	var got searchRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(sampleResponse))
	})

	streets, err := c.StreetsInCity(context.Background(), "חיפה")
	require.NoError(t, err)

	assert.Equal(t, "res-1", got.ResourceID)
	assert.Equal(t, defaultLimit, got.Limit)
	assert.Equal(t, "חיפה", got.Filters["city_name"])

	require.Len(t, streets, 1)
	s := streets[0]
	assert.Equal(t, int64(4000), s.CityCode)
	assert.Equal(t, "חיפה", s.CityName)
	assert.Equal(t, int64(100), s.StreetCode)
	assert.Equal(t, "Ha-Carmel", s.StreetName)
	assert.Equal(t, "חיפה", s.Region)
	assert.Equal(t, int64(555), s.AdditionalMeta["officialCode"])
	assert.Equal(t, "official", s.AdditionalMeta["streetNameStatus"])
	assert.Equal(t, int64(3), s.AdditionalMeta["regionCode"])
	assert.Equal(t, int64(11), s.AdditionalMeta["apiId"])
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)
}

func TestStreetsInCity_Empty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"result":{"records":[]}}`))
	})

	_, err := c.StreetsInCity(context.Background(), "nowhere")
	require.ErrorIs(t, err, ErrNoStreets)
}

func TestStreetsInCity_APIErrors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		})
		_, err := c.StreetsInCity(context.Background(), "x")
		require.ErrorIs(t, err, ErrAPI)
	})

	t.Run("success=false", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"error":{"message":"bad resource"}}`))
		})
		_, err := c.StreetsInCity(context.Background(), "x")
		require.ErrorIs(t, err, ErrAPI)
	})

	t.Run("bad json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{`))
		})
		_, err := c.StreetsInCity(context.Background(), "x")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrNoStreets))
	})
}

func TestStreetByID(t *testing.T) {
	var got searchRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(sampleResponse))
	})

	s, err := c.StreetByID(context.Background(), 11)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 1, got.Limit)
	assert.EqualValues(t, 11, got.Filters["_id"])
	assert.Equal(t, int64(100), s.StreetCode)
}

func TestStreetsInCity_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleResponse))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.StreetsInCity(ctx, "x")
	require.ErrorIs(t, err, context.Canceled)
}
