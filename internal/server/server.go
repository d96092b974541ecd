package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/config"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/reports"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/schema"
	"github.com/Amsamms/midor-ethydco-dashboard/internal/storage"
)

// Server previews generated reports over HTTP. It serves the latest
// published dashboard, regenerates on demand, and proxies the stored
// artifact files.
type Server struct {
	config    *config.Config
	store     storage.StorageClient
	generator *reports.FileGenerator
	log       *logger.Logger
}

// New creates a preview server on top of the given storage client.
func New(cfg *config.Config, store storage.StorageClient) *Server {
	return &Server{
		config:    cfg,
		store:     store,
		generator: reports.NewFileGenerator(),
		log:       logger.NewDefault().WithComponent("server"),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.HandleFunc("/reports", s.handleListReports)
	mux.HandleFunc("/files/", s.handleFileProxy)
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server listening", map[string]interface{}{"port": s.config.Port})
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// handleRoot serves the most recent dashboard, generating one on the
// fly when storage is still empty.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()

	paths, err := s.store.ListReports(ctx, 1)
	if err == nil && len(paths) > 0 {
		content, err := s.store.GetFile(ctx, paths[0])
		if err == nil {
			w.Header().Set("Content-Type", "text/html")
			w.Write(content)
			return
		}
		s.log.Error("Failed to read latest report", err, map[string]interface{}{"path": paths[0]})
	}

	s.log.Info("No stored report, generating on demand")
	files, err := s.generate()
	if err != nil {
		s.log.Error("On-demand generation failed", err)
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.Write(files.Dashboard)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"version":   config.GetVersion(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"storage": "ok",
			"config":  "ok",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// handleGenerate rebuilds the full artifact set and publishes it.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	timestamp := time.Now().UTC()
	files, err := s.generate()
	if err != nil {
		s.log.Error("Generation failed", err)
		http.Error(w, fmt.Sprintf("Generation failed: %v", err), http.StatusInternalServerError)
		return
	}
	if err := s.generator.Publish(r.Context(), s.store, files, timestamp); err != nil {
		s.log.Error("Publish failed", err)
		http.Error(w, fmt.Sprintf("Storage failed: %v", err), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"status":    "generated",
		"folder":    storage.GenerateReportFolderPath(timestamp),
		"timestamp": timestamp.Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
		if limit > 100 {
			limit = 100
		}
	}

	paths, err := s.store.ListReports(r.Context(), limit)
	if err != nil {
		s.log.Error("Failed to list reports", err)
		http.Error(w, fmt.Sprintf("Failed to list reports: %v", err), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"reports":   paths,
		"count":     len(paths),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleFileProxy serves any artifact from a report folder:
// /files/{folder}/{filename}
func (s *Server) handleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/files/")
	if path == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}
	// The storage clients resolve paths relative to their root; reject
	// anything trying to climb out of it.
	if strings.Contains(path, "..") || filepath.IsAbs(path) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	fileData, err := s.store.GetFile(r.Context(), path)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(path))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(fileData)
}

func (s *Server) generate() (*reports.GeneratedFiles, error) {
	return s.generator.GenerateAll(schema.LoadMetrics(), schema.LoadKnowledgeBase(), schema.LoadDefinitions())
}
