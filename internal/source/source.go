// Package source opens master and template workbooks from a local path,
// an http(s) URL or an s3://bucket/key location.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"motor-datasheet/internal/config"
	"motor-datasheet/internal/logger"
)

// ObjectGetter is the part of the S3 client used by Fetcher
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Fetcher opens locations
type Fetcher struct {
	http  *http.Client
	s3cfg config.S3Config

	s3Once sync.Once
	s3     ObjectGetter
	s3Err  error
}

// Option customizes a Fetcher
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.http = c }
}

// WithObjectGetter replaces the S3 client
func WithObjectGetter(g ObjectGetter) Option {
	return func(f *Fetcher) {
		f.s3Once.Do(func() {})
		f.s3 = g
	}
}

// NewFetcher creates a Fetcher. The S3 client is created on first use.
func NewFetcher(cfg config.S3Config, opts ...Option) *Fetcher {
	f := &Fetcher{
		http:  &http.Client{Timeout: 60 * time.Second},
		s3cfg: cfg,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Open returns a reader for location. The caller closes it.
func (f *Fetcher) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil || len(u.Scheme) < 2 {
		// Plain path (a Windows drive letter parses as a one-letter scheme)
		return f.openFile(location)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return f.openHTTP(ctx, location)
	case "s3":
		return f.openS3(ctx, u.Host, strings.TrimPrefix(u.Path, "/"))
	case "file":
		return f.openFile(u.Path)
	default:
		return nil, fmt.Errorf("unsupported location scheme %q", u.Scheme)
	}
}

func (f *Fetcher) openFile(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return file, nil
}

func (f *Fetcher) openHTTP(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", location, err)
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: %s", location, resp.Status)
	}
	logger.Debug("Fetched %s (%d bytes)", location, resp.ContentLength)
	return resp.Body, nil
}

func (f *Fetcher) openS3(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid s3 location s3://%s/%s", bucket, key)
	}
	client, err := f.s3Client(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	logger.Debug("Fetched s3://%s/%s", bucket, key)
	return out.Body, nil
}

func (f *Fetcher) s3Client(ctx context.Context) (ObjectGetter, error) {
	f.s3Once.Do(func() {
		opts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(f.s3cfg.Region),
		}
		if f.s3cfg.AccessKeyID != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				f.s3cfg.AccessKeyID,
				f.s3cfg.SecretAccessKey,
				"",
			)))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			f.s3Err = fmt.Errorf("failed to load AWS config: %w", err)
			return
		}
		f.s3 = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if f.s3cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(f.s3cfg.Endpoint)
			}
			o.UsePathStyle = f.s3cfg.UsePathStyle
		})
	})
	return f.s3, f.s3Err
}
