package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opkit/fileops/internal/config"
	"github.com/opkit/fileops/internal/logging"
	"github.com/opkit/fileops/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(config.Default(), logging.NewDefault())
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(13), body["operations"])
}

func TestListOperations(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/operations", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count      int `json:"count"`
		Operations []struct {
			Name       string            `json:"name"`
			Parameters []types.Parameter `json:"parameters"`
		} `json:"operations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 13, body.Count)

	names := make([]string, 0, len(body.Operations))
	for _, op := range body.Operations {
		names = append(names, op.Name)
		assert.NotEmpty(t, op.Parameters, op.Name)
	}
	assert.Contains(t, names, "list_directory")
	assert.Contains(t, names, "get_directory_size")
}

func TestInvokeCreateDirectory(t *testing.T) {
	srv := newTestServer(t)
	target := filepath.Join(t.TempDir(), "made")

	w := doJSON(t, srv, http.MethodPost, "/invoke", map[string]interface{}{
		"operation": "create_directory",
		"path":      target,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result types.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "Directory created: "+target, result.Output)
	assert.DirExists(t, target)
}

func TestInvokeUnknownOperationIsResultNotHTTPError(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/invoke", map[string]interface{}{
		"operation": "bogus",
		"path":      "/tmp",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result types.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, "Unknown operation: bogus", *result.Error)
}

func TestInvokeMissingOperationField(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/invoke", map[string]interface{}{"path": "/tmp"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvokeMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Drive one invocation so the counters have something to report.
	doJSON(t, srv, http.MethodPost, "/invoke", map[string]interface{}{
		"operation": "bogus",
		"path":      "/tmp",
	})

	w := doJSON(t, srv, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fileops_invocations_total")
}
