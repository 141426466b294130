// Package storage archives exported minutes documents to S3-compatible
// object storage. Archiving is optional and failures never fail a job.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/config"
)

// MinIOArchive uploads finished export files to a MinIO bucket.
type MinIOArchive struct {
	client *minio.Client
	bucket string
}

// NewMinIOArchive creates an archive client and ensures the bucket exists.
func NewMinIOArchive(cfg *config.StorageConfig) (*MinIOArchive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	a := &MinIOArchive{client: client, bucket: cfg.BucketName}
	if err := a.ensureBucket(context.Background()); err != nil {
		return nil, fmt.Errorf("initialize bucket: %w", err)
	}
	return a, nil
}

func (a *MinIOArchive) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

// ArchiveFile uploads a local export file under the job's prefix and returns
// the object name.
func (a *MinIOArchive) ArchiveFile(ctx context.Context, jobID, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat export file: %w", err)
	}

	objectName := jobID + "/" + filepath.Base(localPath)
	_, err = a.client.PutObject(ctx, a.bucket, objectName, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentTypeFor(localPath),
	})
	if err != nil {
		return "", fmt.Errorf("upload export file: %w", err)
	}
	return objectName, nil
}

// PresignedURL returns a time-limited download URL for an archived object.
func (a *MinIOArchive) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := a.client.PresignedGetObject(ctx, a.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("generate presigned URL: %w", err)
	}
	return u.String(), nil
}

// ListArchived lists archived object names under a job prefix.
func (a *MinIOArchive) ListArchived(ctx context.Context, jobID string) ([]string, error) {
	var objects []string
	for object := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    jobID + "/",
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("list archived objects: %w", object.Err)
		}
		objects = append(objects, object.Key)
	}
	return objects, nil
}

func contentTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
