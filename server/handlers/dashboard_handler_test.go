package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-dashboard/analyzer"
	"marketing-dashboard/api"
	"marketing-dashboard/config"
	"marketing-dashboard/dao/dataset"
	"marketing-dashboard/models"
	services "marketing-dashboard/service"
)

const emailCSV = "Campaign,Emails sent,Email opened (MPP excluded),Email clicked\n" +
	"A,1000,400,100\n" +
	"B,500,300,150\n"

func newTestRouter(t *testing.T, files map[string]string) (*mux.Router, *services.DashboardService) {
	t.Helper()
	src := api.NewMockCSVSource(files)
	svc := services.NewDashboardService(
		services.NewCSVLoaderService(src, 2, 0),
		dataset.NewStore(),
		analyzer.DefaultParserSet(),
		nil,
	)
	_, err := svc.LoadAll(context.Background())
	require.NoError(t, err)

	h := NewDashboardHandler(svc)
	r := mux.NewRouter()
	r.HandleFunc("/ping", h.Ping).Methods("GET")
	r.HandleFunc("/v1/bounds", h.GetBounds).Methods("GET")
	r.HandleFunc("/v1/errors", h.GetErrors).Methods("GET")
	r.HandleFunc("/v1/reload", h.Reload).Methods("POST")
	r.HandleFunc("/v1/files/{name}", h.PutFile).Methods("PUT")
	r.HandleFunc("/v1/snapshots", h.GetSnapshots).Methods("GET")
	r.HandleFunc("/v1/charts", h.GetCharts).Methods("GET")
	return r, svc
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestDashboardHandler_Ping(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	rr := serve(r, "GET", "/ping", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"pong"}`, rr.Body.String())
}

func TestDashboardHandler_GetSnapshots(t *testing.T) {
	r, _ := newTestRouter(t, map[string]string{config.EMAIL_CAMPAIGN_PERFORMANCE: emailCSV})

	rr := serve(r, "GET", "/v1/snapshots?start=2024-01-01&end=2024-01-31", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body struct {
		Email struct {
			Totals struct {
				Sent int `json:"sent"`
			} `json:"totals"`
			Comparison *json.RawMessage `json:"comparison"`
		} `json:"email"`
		Facebook struct {
			TopVideos []json.RawMessage `json:"topVideos"`
		} `json:"facebook"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 1500, body.Email.Totals.Sent)
	assert.Nil(t, body.Email.Comparison)
	assert.NotNil(t, body.Facebook.TopVideos)
	assert.Contains(t, rr.Body.String(), `"topVideos":[]`)
}

func TestDashboardHandler_GetSnapshots_Comparison(t *testing.T) {
	r, _ := newTestRouter(t, map[string]string{config.EMAIL_CAMPAIGN_PERFORMANCE: emailCSV})

	rr := serve(r, "GET", "/v1/snapshots?start=2024-02-01&end=2024-02-29&compare_start=2024-01-01&compare_end=2024-01-31", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"comparisonEnabled":true`)
}

func TestDashboardHandler_GetSnapshots_BadRequests(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	tests := []struct {
		name  string
		query string
	}{
		{name: "start after end", query: "start=2024-02-01&end=2024-01-01"},
		{name: "missing end", query: "start=2024-01-01"},
		{name: "malformed date", query: "start=01/02/2024&end=2024-01-31"},
		{name: "half comparison", query: "start=2024-01-01&end=2024-01-31&compare_start=2023-12-01"},
		{name: "inverted comparison", query: "start=2024-01-01&end=2024-01-31&compare_start=2023-12-31&compare_end=2023-12-01"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := serve(r, "GET", "/v1/snapshots?"+test.query, "")
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestDashboardHandler_GetSnapshots_DefaultsToBounds(t *testing.T) {
	r, svc := newTestRouter(t, map[string]string{
		config.GA_TRAFFIC_ACQUISITION: "Date,Session primary channel group,Sessions\n2024-01-05,Direct,10\n2024-03-20,Direct,4\n",
	})

	rr := serve(r, "GET", "/v1/snapshots", "")

	require.Equal(t, http.StatusOK, rr.Code)
	b := svc.Bounds()
	assert.Contains(t, rr.Body.String(), b.Earliest.Format(models.DAY_LAYOUT))
	assert.Contains(t, rr.Body.String(), `"sessions":14`)
}

func TestDashboardHandler_BoundsAndErrors(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	rr := serve(r, "GET", "/v1/bounds", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var bounds models.AvailableDateBounds
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bounds))
	assert.True(t, bounds.Fallback)
	assert.WithinDuration(t, time.Now(), bounds.Latest, time.Minute)

	rr = serve(r, "GET", "/v1/errors", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var errs map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errs))
	assert.Len(t, errs, len(config.ManifestFiles()))
}

func TestDashboardHandler_PutFile(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	rr := serve(r, "PUT", "/v1/files/"+config.EMAIL_CAMPAIGN_PERFORMANCE, emailCSV)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"rows":2`)

	rr = serve(r, "GET", "/v1/snapshots?start=2024-01-01&end=2024-01-31", "")
	assert.Contains(t, rr.Body.String(), `"sent":1500`)

	rr = serve(r, "PUT", "/v1/files/unknown.csv", emailCSV)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(r, "PUT", "/v1/files/"+config.FB_POSTS, "single\n")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestDashboardHandler_PutFile_ReadErrors(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	target := "/v1/files/" + config.EMAIL_CAMPAIGN_PERFORMANCE

	rr := serve(r, "PUT", target, strings.Repeat("a", MAX_UPLOAD_BYTES+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)

	req := httptest.NewRequest("PUT", target, iotest.ErrReader(errors.New("connection reset")))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDashboardHandler_Reload(t *testing.T) {
	r, _ := newTestRouter(t, map[string]string{config.EMAIL_CAMPAIGN_PERFORMANCE: emailCSV})

	rr := serve(r, "POST", "/v1/reload", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var result models.LoadResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.NotEmpty(t, result.CycleID)
	assert.Equal(t, uint64(2), result.Generation)
	assert.Len(t, result.Files, len(config.ManifestFiles()))
}

func TestDashboardHandler_GetCharts(t *testing.T) {
	r, _ := newTestRouter(t, map[string]string{config.EMAIL_CAMPAIGN_PERFORMANCE: emailCSV})

	rr := serve(r, "GET", "/v1/charts?start=2024-01-01&end=2024-01-31", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Email engagement")
}
