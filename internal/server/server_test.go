package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/config"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/storage"
)

func newTestServer(t *testing.T) (*Server, storage.StorageClient) {
	t.Helper()
	store, err := storage.NewLocalStorageClient(t.TempDir())
	if err != nil {
		t.Fatalf("storage client: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{Port: "8981", Environment: "local"}
	return New(cfg, store), store
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("health returned %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("health is not JSON: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
}

func TestRootServesStoredReport(t *testing.T) {
	srv, store := newTestServer(t)

	ts := time.Date(2026, 8, 27, 8, 0, 0, 0, time.UTC)
	content := []byte("<html>stored dashboard</html>")
	if err := store.StoreFile(context.Background(), content, storage.DashboardFilename, ts); err != nil {
		t.Fatalf("StoreFile failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("root returned %d", rec.Code)
	}
	if rec.Body.String() != string(content) {
		t.Errorf("root did not serve the stored report")
	}
}

func TestRootGeneratesOnDemand(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("root returned %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Error("on-demand response is not the dashboard")
	}
}

func TestGenerateEndpoint(t *testing.T) {
	srv, store := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("generate returned %d: %s", rec.Code, rec.Body.String())
	}

	latest, err := store.GetLatestReport()
	if err != nil {
		t.Fatalf("no report published: %v", err)
	}
	if !strings.HasSuffix(latest, storage.DashboardFilename) {
		t.Errorf("latest report = %q", latest)
	}

	// GET on the generate route is rejected.
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generate", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /generate returned %d, want 405", rec.Code)
	}
}

func TestListReportsEndpoint(t *testing.T) {
	srv, store := newTestServer(t)

	for day := 25; day <= 27; day++ {
		ts := time.Date(2026, 8, day, 8, 0, 0, 0, time.UTC)
		if err := store.StoreFile(context.Background(), []byte("x"), storage.DashboardFilename, ts); err != nil {
			t.Fatalf("StoreFile failed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/reports?limit=2", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("reports returned %d", rec.Code)
	}
	var body struct {
		Reports []string `json:"reports"`
		Count   int      `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("reports is not JSON: %v", err)
	}
	if body.Count != 2 {
		t.Errorf("count = %d, want 2", body.Count)
	}
	if len(body.Reports) != 2 || !strings.Contains(body.Reports[0], "2026-08-27") {
		t.Errorf("newest report should come first: %v", body.Reports)
	}
}

func TestFileProxy(t *testing.T) {
	srv, store := newTestServer(t)

	ts := time.Date(2026, 8, 27, 8, 0, 0, 0, time.UTC)
	if err := store.StoreFile(context.Background(), []byte("fake png"), "phase_split.png", ts); err != nil {
		t.Fatalf("StoreFile failed: %v", err)
	}

	path := "/files/" + storage.GenerateReportFolderPath(ts) + "/phase_split.png"
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("file proxy returned %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/missing.html", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing file returned %d, want 404", rec.Code)
	}

	// ServeMux redirects non-canonical paths before the handler runs;
	// either way a traversal attempt must not be served.
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/../escape.html", nil))
	if rec.Code == http.StatusOK {
		t.Errorf("traversal attempt was served (status %d)", rec.Code)
	}
}
