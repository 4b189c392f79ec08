// Package firms fetches NASA FIRMS active-fire hotspot exports and normalizes
// the two sensor families (VIIRS numeric confidence, MODIS categorical
// confidence) into a uniform point representation.
package firms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/apex/log"

	"go-firewatch/geo"
	"go-firewatch/types"
)

// ErrFeedUnavailable is returned when every upstream attempt failed. Callers
// can distinguish "no fires" (empty success) from "feed down".
var ErrFeedUnavailable = errors.New("FIRMS feed unavailable")

// Window selects how far back the export reaches.
type Window string

const (
	Window24h Window = "24h"
	Window48h Window = "48h"
	Window7d  Window = "7d"
)

const defaultBaseURL = "https://firms.modaps.eosdis.nasa.gov"

var viirsPaths = map[Window]string{
	Window24h: "/data/active_fire/viirs/csv/VNP14IMGTDL_NRT_Global_24h.csv",
	Window48h: "/data/active_fire/viirs/csv/VNP14IMGTDL_NRT_Global_48h.csv",
	Window7d:  "/data/active_fire/viirs/csv/VNP14IMGTDL_NRT_Global_7d.csv",
}

var modisPaths = map[Window]string{
	Window24h: "/data/active_fire/c6/csv/MODIS_C6_1_Global_24h.csv",
	Window48h: "/data/active_fire/c6/csv/MODIS_C6_1_Global_48h.csv",
	Window7d:  "/data/active_fire/c6/csv/MODIS_C6_1_Global_7d.csv",
}

// Result is one normalized feed response. Source is the sensor family that
// actually answered; Substituted is set when a VIIRS failure fell back to
// MODIS so callers know a substitution occurred.
type Result struct {
	Points      []types.FIRMSPoint `json:"points"`
	Source      types.FIRMSSource  `json:"source"`
	Window      Window             `json:"window"`
	Substituted bool               `json:"substituted"`
}

// Client talks to the public FIRMS CSV endpoints. It keeps no cache: every
// call re-fetches.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a FIRMS client. apiKey may be empty; when set it is passed
// as the api_key query parameter with a plain public retry on failure.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// Fetch retrieves and normalizes hotspots for one sensor family and time
// window, optionally filtered to a bounding box (inclusive on all edges).
// A VIIRS upstream failure falls back to MODIS; if everything fails the error
// wraps ErrFeedUnavailable.
func (c *Client) Fetch(ctx context.Context, source types.FIRMSSource, window Window, bbox *geo.Box) (*Result, error) {
	if source == "" {
		source = types.SourceVIIRS
	}
	if window == "" {
		window = Window24h
	}

	csv, err := c.fetchCSV(ctx, source, window)
	substituted := false
	if err != nil && source == types.SourceVIIRS {
		log.Warnf("FIRMS: VIIRS fetch failed (%v), falling back to MODIS", err)
		source = types.SourceMODIS
		substituted = true
		csv, err = c.fetchCSV(ctx, source, window)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	points := parseCSV(csv, source)
	if bbox != nil {
		filtered := points[:0]
		for _, p := range points {
			if bbox.Contains(p.Lat, p.Long) {
				filtered = append(filtered, p)
			}
		}
		points = filtered
	}

	return &Result{Points: points, Source: source, Window: window, Substituted: substituted}, nil
}

func (c *Client) fetchCSV(ctx context.Context, source types.FIRMSSource, window Window) (string, error) {
	paths := viirsPaths
	if source == types.SourceMODIS {
		paths = modisPaths
	}
	path, ok := paths[window]
	if !ok {
		return "", fmt.Errorf("unknown time window %q", window)
	}

	// Try the keyed URL first when a key is configured, then the plain
	// public one. The public exports work without credentials.
	if c.apiKey != "" {
		csv, err := c.get(ctx, c.baseURL+path+"?api_key="+url.QueryEscape(c.apiKey))
		if err == nil {
			return csv, nil
		}
		log.Warnf("FIRMS: keyed request for %s/%s failed: %v", source, window, err)
	}
	return c.get(ctx, c.baseURL+path)
}

func (c *Client) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("FIRMS returned status: " + resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
