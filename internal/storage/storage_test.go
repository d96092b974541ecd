package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/config"
)

func TestGenerateReportFolderPath(t *testing.T) {
	ts := time.Date(2026, 8, 27, 14, 30, 5, 0, time.UTC)
	got := GenerateReportFolderPath(ts)
	want := "2026/08/27/IntegrationReport-2026-08-27-14-30-05"
	if got != want {
		t.Errorf("GenerateReportFolderPath() = %q, want %q", got, want)
	}
}

func TestGetContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"integration_dashboard_v2.html", "text/html"},
		{"deck.pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
		{"knowledge_base.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"chart.png", "image/png"},
		{"metrics.json", "application/json"},
		{"unknown.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := GetContentType(tt.filename); got != tt.want {
			t.Errorf("GetContentType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestLocalStorageStoreAndGet(t *testing.T) {
	baseDir := t.TempDir()
	client, err := NewLocalStorageClient(baseDir)
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	ts := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	content := []byte("<html>dashboard</html>")

	if err := client.StoreFile(ctx, content, DashboardFilename, ts); err != nil {
		t.Fatalf("StoreFile failed: %v", err)
	}

	relPath := filepath.Join(GenerateReportFolderPath(ts), DashboardFilename)
	if _, err := os.Stat(filepath.Join(baseDir, relPath)); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	got, err := client.GetFile(ctx, relPath)
	if err != nil {
		t.Fatalf("GetFile failed: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("GetFile returned %q, want %q", got, content)
	}
}

func TestLocalStorageListReportsNewestFirst(t *testing.T) {
	baseDir := t.TempDir()
	client, err := NewLocalStorageClient(baseDir)
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	older := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)

	for _, ts := range []time.Time{older, newer} {
		if err := client.StoreFile(ctx, []byte("x"), DashboardFilename, ts); err != nil {
			t.Fatalf("StoreFile failed: %v", err)
		}
		// A sibling artifact must not show up in the listing.
		if err := client.StoreFile(ctx, []byte("y"), "knowledge_base.xlsx", ts); err != nil {
			t.Fatalf("StoreFile failed: %v", err)
		}
	}

	reports, err := client.ListReports(ctx, 0)
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d: %v", len(reports), reports)
	}
	if filepath.ToSlash(reports[0]) != GenerateReportFolderPath(newer)+"/"+DashboardFilename {
		t.Errorf("newest report should come first, got %v", reports)
	}

	latest, err := client.GetLatestReport()
	if err != nil {
		t.Fatalf("GetLatestReport failed: %v", err)
	}
	if latest != reports[0] {
		t.Errorf("GetLatestReport = %q, want %q", latest, reports[0])
	}

	limited, err := client.ListReports(ctx, 1)
	if err != nil {
		t.Fatalf("ListReports with limit failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit 1 should return 1 report, got %d", len(limited))
	}
}

func TestNewStorageClientFactory(t *testing.T) {
	cfg := &config.Config{OutputDir: t.TempDir()}

	client, err := NewStorageClient(context.Background(), DeploymentLocal, cfg)
	if err != nil {
		t.Fatalf("local factory failed: %v", err)
	}
	defer client.Close()
	if _, ok := client.(*LocalStorageClient); !ok {
		t.Errorf("expected *LocalStorageClient, got %T", client)
	}

	if _, err := NewStorageClient(context.Background(), DeploymentGCS, &config.Config{}); err == nil {
		t.Error("GCS mode without bucket should fail")
	}

	if _, err := NewStorageClient(context.Background(), "ftp", cfg); err == nil {
		t.Error("unknown deployment mode should fail")
	}
}
