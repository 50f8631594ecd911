package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastuplan/vastuplan/pkg/pipeline"
	"github.com/vastuplan/vastuplan/pkg/planstore"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := &Server{
		Runner:    pipeline.NewRunner(nil, logger),
		Store:     planstore.NewMemoryStore(),
		Logger:    logger,
		OutputDir: t.TempDir(),
		Retention: 24 * time.Hour,
		ListLimit: 50,
	}
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func TestGenerateFloorPlan(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/floor-plans", map[string]any{
		"plot_direction": "north",
		"plot_width":     12,
		"plot_length":    15,
		"plot_shape":     "rectangular",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Status      string `json:"status"`
		PlanID      string `json:"plan_id"`
		PlanDetails struct {
			RoomPlacements []json.RawMessage   `json:"room_placements"`
			Remedies       map[string][]string `json:"remedies"`
			PlanImageURL   string              `json:"plan_image_url"`
		} `json:"plan_details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "success", got.Status)
	assert.NotEmpty(t, got.PlanID)
	assert.Len(t, got.PlanDetails.RoomPlacements, 4)
	assert.NotEmpty(t, got.PlanDetails.Remedies["energy_balance"])
	require.NotEmpty(t, got.PlanDetails.PlanImageURL)

	// The artifact must be immediately servable.
	img, err := http.Get(ts.URL + got.PlanDetails.PlanImageURL)
	require.NoError(t, err)
	defer img.Body.Close()
	assert.Equal(t, http.StatusOK, img.StatusCode)
	data, err := io.ReadAll(img.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing direction", map[string]any{"plot_width": 12, "plot_length": 15}},
		{"zero width", map[string]any{"plot_direction": "north", "plot_length": 15}},
		{"unknown direction", map[string]any{"plot_direction": "up", "plot_width": 12, "plot_length": 15}},
		{"unknown format", map[string]any{"plot_direction": "north", "plot_width": 12, "plot_length": 15, "format": "bmp"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/api/floor-plans", tt.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var got struct {
				Status string `json:"status"`
				Detail string `json:"detail"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, "error", got.Status)
			assert.NotEmpty(t, got.Detail)
		})
	}
}

func TestListPlans(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/floor-plans")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Status string            `json:"status"`
		Plans  []json.RawMessage `json:"plans"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "success", got.Status)
	assert.Empty(t, got.Plans)

	gen := postJSON(t, ts.URL+"/api/floor-plans", map[string]any{
		"plot_direction": "east",
		"plot_width":     10,
		"plot_length":    12,
	})
	gen.Body.Close()
	require.Equal(t, http.StatusOK, gen.StatusCode)

	resp2, err := http.Get(ts.URL + "/api/floor-plans")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&got))
	assert.Len(t, got.Plans, 1)
}

func TestArtifactFilenameValidation(t *testing.T) {
	_, ts := newTestServer(t)

	for _, name := range []string{"..%2f..%2fetc%2fpasswd", ".hidden.png"} {
		resp, err := http.Get(ts.URL + "/plans/" + name)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "filename %q", name)
	}
}

func TestArtifactMissingFile(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/plans/00000000-0000-0000-0000-000000000000.png")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "healthy", got["status"])
}

func TestCleanup(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.Retention = 0 // everything is immediately stale

	gen := postJSON(t, ts.URL+"/api/floor-plans", map[string]any{
		"plot_direction": "west",
		"plot_width":     10,
		"plot_length":    10,
	})
	gen.Body.Close()
	require.Equal(t, http.StatusOK, gen.StatusCode)

	resp := postJSON(t, ts.URL+"/api/cleanup", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got cleanupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "success", got.Status)
	assert.Equal(t, 1, got.ArtifactsRemoved)
	assert.Equal(t, 1, got.RecordsRemoved)
}

func TestRequestIDEchoed(t *testing.T) {
	_, ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "test-id-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "test-id-123", resp.Header.Get("X-Request-ID"))
}
