package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-dashboard/api"
	"marketing-dashboard/config"
	"marketing-dashboard/util"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Env:             "test",
		HTTPAddress:     ":0",
		ShutdownTimeout: time.Second,
		DataDir:         dir,
		MaxConcurrency:  2,
	}
}

func TestNewContainer_FileSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.GA_UTMS),
		[]byte("Date,Session campaign,Sessions\n2024-01-01,spring,4\n"), 0o644))

	c, err := NewContainer(testConfig(dir))
	require.NoError(t, err)

	assert.IsType(t, &api.FileCSVSource{}, c.CSVSource)
	assert.Nil(t, c.RedisClient)

	result, err := c.DashboardService.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, c.DatasetStore.Dataset(config.GA_UTMS).Len())
	assert.NotContains(t, result.Errors, config.GA_UTMS)

	c.Router.RegisterRoutes()
	rr := httptest.NewRecorder()
	c.MuxRouter.ServeHTTP(rr, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewContainer_SourcesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_date_order: day_first\n"), 0o644))

	cfg := testConfig(dir)
	cfg.SourcesFile = path
	cfg.SourceBaseURL = "http://exports.local"

	c, err := NewContainer(cfg)
	require.NoError(t, err)

	assert.Equal(t, string(util.DayFirst), c.Sources.DefaultDateOrder)
	assert.IsType(t, &api.HTTPCSVSource{}, c.CSVSource)
}

func TestNewContainer_BadSourcesFile(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.SourcesFile = filepath.Join(cfg.DataDir, "missing.yaml")

	_, err := NewContainer(cfg)

	assert.Error(t, err)
}
