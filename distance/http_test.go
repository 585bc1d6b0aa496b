package distance_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/distance"
	"github.com/katalvlaran/geotour/geo"
)

// haversineServer answers like the remote distance service.
func haversineServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var v [4]float64
		for i, k := range []string{"lat_1", "lon_1", "lat_2", "lon_2"} {
			f, err := strconv.ParseFloat(q.Get(k), 64)
			if err != nil {
				http.Error(w, "bad "+k, http.StatusBadRequest)
				return
			}
			v[i] = f
		}
		d := distance.HaversineKm(
			geo.Location{Latitude: v[0], Longitude: v[1]},
			geo.Location{Latitude: v[2], Longitude: v[3]},
		)
		fmt.Fprintf(w, `{"distance": %s}`, strconv.FormatFloat(d, 'g', -1, 64))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestHTTP_Distance(t *testing.T) {
	srv := haversineServer(t)
	h := distance.NewHTTP(srv.URL, time.Second)

	got, err := h.Distance(context.Background(), lax, pC)
	require.NoError(t, err)
	assert.Equal(t, distance.HaversineKm(lax, pC), got)
}

func TestHTTP_Failures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		},
		"body": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		},
		"missing field": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"dist": 1}`))
		},
		"negative": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"distance": -12.5}`))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			_, err := distance.NewHTTP(srv.URL, time.Second).Distance(context.Background(), lax, pA)
			require.ErrorIs(t, err, distance.ErrUnavailable)
			require.ErrorIs(t, err, distance.ErrBadResponse)
		})
	}
}

func TestHTTP_TransportError(t *testing.T) {
	srv := haversineServer(t)
	url := srv.URL
	srv.Close()

	_, err := distance.NewHTTP(url, time.Second).Distance(context.Background(), lax, pA)
	require.ErrorIs(t, err, distance.ErrUnavailable)
}

func TestHTTP_Cancelled(t *testing.T) {
	srv := haversineServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := distance.NewHTTP(srv.URL, 0).Distance(ctx, lax, pA)
	require.ErrorIs(t, err, distance.ErrUnavailable)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHTTP_NilClient(t *testing.T) {
	srv := haversineServer(t)
	h := &distance.HTTP{URL: srv.URL}

	_, err := h.Distance(context.Background(), lax, pB)
	require.NoError(t, err)
}
