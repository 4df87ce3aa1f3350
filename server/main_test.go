//go:build !js

package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/simukka/starship-sorades-3d/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "starship-sorades-3d.js"), []byte("// bundle"), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(newMux(dir, config.Default(), logger))
	t.Cleanup(srv.Close)
	return srv, dir
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIndex(t *testing.T) {
	srv, _ := testServer(t)

	for _, path := range []string{"/", "/index.html"} {
		resp, body := get(t, srv.URL+path)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		assert.Contains(t, body, `<canvas id="c">`)
	}
}

func TestStaticFiles(t *testing.T) {
	srv, _ := testServer(t)

	resp, body := get(t, srv.URL+"/starship-sorades-3d.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "// bundle", body)

	resp, _ = get(t, srv.URL+"/missing.glb")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestConfigEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	resp, body := get(t, srv.URL+"/api/config")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cfg, err := config.Parse([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	var raw struct {
		MaxFrameDelta string `json:"maxFrameDelta"`
		Enemy         struct {
			ShootPeriod string `json:"shootPeriod"`
		} `json:"enemy"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	assert.Equal(t, "250ms", raw.MaxFrameDelta)
	assert.Equal(t, "1s", raw.Enemy.ShootPeriod)
}

func TestConfigEndpoint_RejectsPost(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Post(srv.URL+"/api/config", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t)

	resp, body := get(t, srv.URL+"/api/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, body)
}
