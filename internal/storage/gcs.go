package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/Amsamms/midor-ethydco-dashboard/internal/logger"
)

// GCSClient handles Google Cloud Storage operations
type GCSClient struct {
	client *storage.Client
	bucket string
	log    *logger.Logger
}

// NewGCSClient creates a new GCS client
func NewGCSClient(ctx context.Context, bucketName string) (*GCSClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSClient{
		client: client,
		bucket: bucketName,
		log:    logger.NewDefault().WithComponent("gcs"),
	}, nil
}

// Close closes the GCS client
func (g *GCSClient) Close() error {
	return g.client.Close()
}

// StoreFile stores an artifact in GCS in the report folder for timestamp
func (g *GCSClient) StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error {
	objectPath := GenerateReportFolderPath(timestamp) + "/" + filename

	g.log.Debug("Storing file to GCS", map[string]interface{}{
		"bucket": g.bucket,
		"object": objectPath,
	})

	obj := g.client.Bucket(g.bucket).Object(objectPath)

	writer := obj.NewWriter(ctx)
	writer.ContentType = GetContentType(filename)
	writer.CacheControl = "public, max-age=3600"
	writer.Metadata = map[string]string{
		"generated-at": timestamp.Format(time.RFC3339),
		"filename":     filename,
	}

	if _, err := writer.Write(fileData); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write file to GCS: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize GCS file upload: %w", err)
	}

	g.log.Debug("File stored", map[string]interface{}{"filename": filename})
	return nil
}

// GetFile retrieves any file from GCS
func (g *GCSClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	obj := g.client.Bucket(g.bucket).Object(filePath)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for file %s: %w", filePath, err)
	}
	defer reader.Close()

	fileData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return fileData, nil
}

// GetLatestReport gets the most recent dashboard from GCS
func (g *GCSClient) GetLatestReport() (string, error) {
	reports, err := g.ListReports(context.Background(), 1)
	if err != nil {
		return "", err
	}

	if len(reports) == 0 {
		return "", fmt.Errorf("no reports found")
	}

	return reports[0], nil
}

// ListReports lists recent dashboards from GCS, newest first
func (g *GCSClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{})

	var reportPaths []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		if strings.HasSuffix(attrs.Name, "/"+DashboardFilename) {
			reportPaths = append(reportPaths, attrs.Name)
		}
	}

	sort.Strings(reportPaths)
	for i, j := 0, len(reportPaths)-1; i < j; i, j = i+1, j-1 {
		reportPaths[i], reportPaths[j] = reportPaths[j], reportPaths[i]
	}

	if limit > 0 && limit < len(reportPaths) {
		reportPaths = reportPaths[:limit]
	}

	return reportPaths, nil
}
