package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/geotour/geo"
)

// maxResponseBytes bounds how much of a response body is decoded.
const maxResponseBytes = 64 << 10

// HTTP queries a remote distance service:
//
//	GET <URL>?lat_1=..&lon_1=..&lat_2=..&lon_2=..  →  {"distance": 123.4}
//
// Coordinates are sent in degrees exactly as loaded.
type HTTP struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

// NewHTTP returns an HTTP backend whose client carries an OpenTelemetry
// transport and the given per-request timeout (0 means none).
func NewHTTP(endpoint string, timeout time.Duration) *HTTP {
	return &HTTP{
		URL: endpoint,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Logger: zap.NewNop(),
	}
}

type httpReply struct {
	Distance *float64 `json:"distance"`
}

// Distance performs one blocking request. Transport errors, non-2xx statuses
// and undecodable bodies are all returned as *UnavailableError.
func (h *HTTP) Distance(ctx context.Context, a, b geo.Location) (float64, error) {
	u, err := url.Parse(h.URL)
	if err != nil {
		return 0, Wrap(a, b, err)
	}
	q := u.Query()
	q.Set("lat_1", formatCoord(a.Latitude))
	q.Set("lon_1", formatCoord(a.Longitude))
	q.Set("lat_2", formatCoord(b.Latitude))
	q.Set("lon_2", formatCoord(b.Longitude))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, Wrap(a, b, err)
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		h.logger().Warn("distance request failed",
			zap.String("from", a.Name), zap.String("to", b.Name), zap.Error(err))
		return 0, Wrap(a, b, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return 0, Wrap(a, b, fmt.Errorf("%w: status %s", ErrBadResponse, resp.Status))
	}

	var reply httpReply
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&reply); err != nil {
		return 0, Wrap(a, b, fmt.Errorf("%w: %v", ErrBadResponse, err))
	}
	if reply.Distance == nil {
		return 0, Wrap(a, b, fmt.Errorf("%w: missing distance field", ErrBadResponse))
	}
	if err = checkLeg(*reply.Distance); err != nil {
		return 0, Wrap(a, b, err)
	}

	return *reply.Distance, nil
}

func (h *HTTP) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}

	return h.Logger
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
