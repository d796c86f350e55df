package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/artem13815/jobseeker/pkg/config"
	"github.com/artem13815/jobseeker/pkg/resume"
)

const octetStream = "application/octet-stream"

const keyPrefix = "resumes"

// objectClient is the part of *minio.Client the archive needs.
type objectClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Archive хранит исходные файлы резюме в MinIO.
type Archive struct {
	client objectClient
	bucket string
	newID  func() uuid.UUID
}

// New connects to MinIO and makes sure the bucket exists.
func New(ctx context.Context, cfg config.MinIOConfig) (*Archive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	a := newArchive(client, cfg.Bucket)
	if err := a.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func newArchive(client objectClient, bucket string) *Archive {
	return &Archive{client: client, bucket: bucket, newID: uuid.New}
}

func (a *Archive) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// ObjectKey builds resumes/<userId>/<id><ext>.
func ObjectKey(userID, id uuid.UUID, ext string) string {
	return path.Join(keyPrefix, userID.String(), id.String()+ext)
}

// Archive uploads data and returns its object key. A missing extension or
// content type is taken from the detected resume format.
func (a *Archive) Archive(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || contentType == "" {
		ext, contentType = fillHints(filename, ext, contentType, data)
	}
	key := ObjectKey(userID, a.newID(), ext)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"user-id": userID.String(), "filename": filepath.Base(filename)},
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return key, nil
}

func fillHints(filename, ext, contentType string, data []byte) (string, string) {
	kind, err := resume.DetectKind(filename, contentType, data)
	if err != nil {
		if contentType == "" {
			contentType = octetStream
		}
		return ext, contentType
	}
	if ext == "" {
		ext = kind.Ext()
	}
	if contentType == "" {
		contentType = kind.ContentType()
	}
	return ext, contentType
}

// Check reports whether the bucket is reachable.
func (a *Archive) Check(ctx context.Context) error {
	ok, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %s is missing", a.bucket)
	}
	return nil
}
