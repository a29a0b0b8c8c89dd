package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadDecodesSnapshot(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/wrapped", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"wrapped_year": 2025,
			"steps_total": 600000,
			"steps_monthly": {"3": 500, "12": 42},
			"fastest_pace_min_per_km": null,
			"workouts_monthly": {},
			"unknown_field": true
		}`))
	}))
	defer srv.Close()

	data, err := New(srv.URL+"/wrapped", srv.Client()).Download(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, 2025, data.WrappedYear)
	assert.Equal(t, 600000, data.StepsTotal)
	assert.Equal(t, 500.0, data.StepsMonthly[3])
	assert.Equal(t, 42.0, data.StepsMonthly[12])
	assert.Nil(t, data.FastestPaceMinPerKm)
	assert.Nil(t, data.ShortestSleepNight)
	assert.Empty(t, data.WorkoutsMonthly)
}

func TestDownloadFailuresCollapseToErrFetch(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"steps_total": `))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			data, err := New(srv.URL, srv.Client()).Download(context.Background())
			assert.Nil(t, data)
			assert.ErrorIs(t, err, ErrFetch)
		})
	}
}

func TestDownloadNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	data, err := New(url, nil).Download(context.Background())
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestNewDefaults(t *testing.T) {
	wd := New("", nil)
	assert.Equal(t, DefaultURL, wd.URL)
	assert.Equal(t, http.DefaultClient, wd.client)
}
