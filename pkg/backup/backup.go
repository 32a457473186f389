// Package backup uploads database backups to an S3-compatible bucket.
package backup

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/guildbot/pkg/config"
)

// Uploader puts backup files into a bucket
type Uploader struct {
	client     *s3.Client
	bucket     string
	prefix     string
	retries    int
	retryDelay time.Duration
}

// NewUploader creates an uploader. A custom endpoint switches to path-style addressing (minio and similar),
// static keys are used when set, otherwise the default AWS credential chain.
func NewUploader(ctx context.Context, cfg config.BackupConfig) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("backup bucket is not set")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.RetryMaxAttempts = 1 // retried by Upload
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &Uploader{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix, retries: 3, retryDelay: time.Second}, nil
}

// Upload stores the file under prefix + base name and returns the object key
func (u *Uploader) Upload(ctx context.Context, file string) (string, error) {
	key := path.Join(u.prefix, filepath.Base(file))
	err := repeater.NewBackoff(u.retries, u.retryDelay).Do(ctx, func() error {
		fh, err := os.Open(file) //nolint:gosec // backup path is produced by the repository
		if err != nil {
			return err
		}
		defer fh.Close()
		_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(key),
			Body:        fh,
			ContentType: aws.String("application/vnd.sqlite3"),
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to s3://%s/%s: %w", file, u.bucket, key, err)
	}
	lgr.Printf("[INFO] backup uploaded to s3://%s/%s", u.bucket, key)
	return key, nil
}
