package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"campusguard/internal/shared/config"
	"campusguard/internal/shared/errors"
)

// S3BlobStore uploads evidence files to an S3-compatible bucket.
type S3BlobStore struct {
	client    *s3.S3
	bucket    string
	publicURL string
}

func NewS3BlobStore(cfg *config.StorageConfig) (*S3BlobStore, error) {
	awsConfig := &aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 session: %w", err)
	}

	return &S3BlobStore{
		client:    s3.New(sess),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// Put uploads the blob under the given name and returns its public URL.
func (s *S3BlobStore) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.NewDependencyError("failed to upload evidence file")
	}

	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, name), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, name), nil
}
