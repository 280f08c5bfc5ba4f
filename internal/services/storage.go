package services

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"alfredoptarigan/resume-analyzer/internal/models"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
	".md":   true,
}

// ValidateExtension rejects resume files the extractor cannot read.
func ValidateExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w: invalid file extension: %q", ErrInvalidInput, ext)
	}
	return nil
}

type ObjectStore interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

type S3Options struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	// MaxBytes caps a single download. Zero means no cap.
	MaxBytes int64
}

type objectStore struct {
	client   *s3.Client
	maxBytes int64
}

// NewObjectStore builds an S3 client. A custom endpoint (R2, MinIO) switches
// to path-style addressing; static keys are used when both are set and the
// default credential chain otherwise.
func NewObjectStore(ctx context.Context, opts S3Options) (ObjectStore, error) {
	region := opts.Region
	if region == "" {
		region = "auto"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &objectStore{client: client, maxBytes: opts.MaxBytes}, nil
}

// Fetch implements ObjectStore.
func (s *objectStore) Fetch(ctx context.Context, uri string) ([]byte, error) {
	bucket, key, err := ParseObjectURI(uri)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	if s.maxBytes > 0 && out.ContentLength != nil && *out.ContentLength > s.maxBytes {
		return nil, fmt.Errorf("%w: object is %d bytes, max size: %d bytes", ErrInvalidInput, *out.ContentLength, s.maxBytes)
	}

	data, err := readLimited(out.Body, s.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return data, nil
}

// ParseObjectURI splits s3://bucket/key.
func ParseObjectURI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid object URI: %v", ErrInvalidInput, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("%w: object URI must use the s3 scheme: %q", ErrInvalidInput, uri)
	}

	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: object URI needs a bucket and a key: %q", ErrInvalidInput, uri)
	}
	return bucket, key, nil
}

func IsObjectURI(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

// DocumentLoader reads a resume from a local path or, when a store is
// configured, from an s3:// URI.
type DocumentLoader interface {
	Load(ctx context.Context, location string) (models.RawDocument, error)
}

type documentLoader struct {
	store       ObjectStore
	maxFileSize int64
}

func NewDocumentLoader(store ObjectStore, maxFileSize int64) DocumentLoader {
	return &documentLoader{store: store, maxFileSize: maxFileSize}
}

// Load implements DocumentLoader.
func (l *documentLoader) Load(ctx context.Context, location string) (models.RawDocument, error) {
	if err := ValidateExtension(location); err != nil {
		return models.RawDocument{}, err
	}

	var data []byte
	if IsObjectURI(location) {
		if l.store == nil {
			return models.RawDocument{}, fmt.Errorf("%w: object storage is not configured", ErrInvalidInput)
		}
		b, err := l.store.Fetch(ctx, location)
		if err != nil {
			return models.RawDocument{}, fmt.Errorf("failed to download resume: %w", err)
		}
		data = b
	} else {
		b, err := os.ReadFile(location)
		if err != nil {
			return models.RawDocument{}, fmt.Errorf("failed to read resume file: %w", err)
		}
		data = b
	}

	if l.maxFileSize > 0 && int64(len(data)) > l.maxFileSize {
		return models.RawDocument{}, fmt.Errorf("%w: resume file too large. Max size: %d bytes", ErrInvalidInput, l.maxFileSize)
	}

	return models.DetectDocument(filepath.Base(location), data), nil
}
