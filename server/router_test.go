package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockHandler answers every route with its own name.
type MockHandler struct{}

func reply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

func (h *MockHandler) Ping(w http.ResponseWriter, r *http.Request)      { reply("ping")(w, r) }
func (h *MockHandler) GetBounds(w http.ResponseWriter, r *http.Request) { reply("bounds")(w, r) }
func (h *MockHandler) GetErrors(w http.ResponseWriter, r *http.Request) { reply("errors")(w, r) }
func (h *MockHandler) Reload(w http.ResponseWriter, r *http.Request)    { reply("reload")(w, r) }
func (h *MockHandler) PutFile(w http.ResponseWriter, r *http.Request) {
	reply("file " + mux.Vars(r)["name"])(w, r)
}
func (h *MockHandler) GetSnapshots(w http.ResponseWriter, r *http.Request) { reply("snapshots")(w, r) }
func (h *MockHandler) GetCharts(w http.ResponseWriter, r *http.Request)    { reply("charts")(w, r) }

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockHandler{}, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{name: "Ping Route", method: "GET", path: "/ping", statusCode: http.StatusOK, response: "ping"},
		{name: "Bounds", method: "GET", path: "/v1/bounds", statusCode: http.StatusOK, response: "bounds"},
		{name: "Errors", method: "GET", path: "/v1/errors", statusCode: http.StatusOK, response: "errors"},
		{name: "Reload", method: "POST", path: "/v1/reload", statusCode: http.StatusOK, response: "reload"},
		{name: "Reload Wrong Method", method: "GET", path: "/v1/reload", statusCode: http.StatusMethodNotAllowed},
		{name: "Put File", method: "PUT", path: "/v1/files/GA_UTMs.csv", statusCode: http.StatusOK, response: "file GA_UTMs.csv"},
		{name: "Snapshots", method: "GET", path: "/v1/snapshots?start=2024-01-01&end=2024-01-31", statusCode: http.StatusOK, response: "snapshots"},
		{name: "Charts", method: "GET", path: "/v1/charts", statusCode: http.StatusOK, response: "charts"},
		{name: "Invalid Route", method: "GET", path: "/invalid", statusCode: http.StatusNotFound},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
