// Package upload pushes finished renders to S3-compatible object storage.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Config holds object-storage settings, usually read from the environment
// (optionally populated from a .env file by the caller)
type Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // Optional; set for non-AWS S3-compatible stores
	Region    string
	Bucket    string
}

// ConfigFromEnv reads the S3_* environment variables
func ConfigFromEnv() Config {
	return Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
}

// Validate reports whether the configuration is complete enough to upload
func (c Config) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("upload: S3_BUCKET is not set")
	}
	if c.Region == "" {
		return fmt.Errorf("upload: S3_REGION is not set")
	}
	return nil
}

// Uploader wraps an S3 client bound to one bucket
type Uploader struct {
	client *s3.S3
	bucket string
}

// NewUploader creates an uploader from the given configuration
func NewUploader(cfg Config) (*Uploader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("upload: creating session: %w", err)
	}

	return &Uploader{client: s3.New(sess), bucket: cfg.Bucket}, nil
}

// Upload stores data under key in the configured bucket
func (u *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload: putting %q: %w", key, err)
	}
	return nil
}

// ContentTypeFor maps a render output filename to its MIME type
func ContentTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".png":
		return "image/png"
	case ".ppm":
		return "image/x-portable-pixmap"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
