package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/go-resty/resty/v2"
)

type JobDescriptionFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

type jobDescriptionFetcher struct {
	client   *resty.Client
	maxBytes int64
}

func NewJobDescriptionFetcher(timeout time.Duration, maxBytes int64) JobDescriptionFetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "resume-analyzer/1.0").
		SetHeader("Accept", "text/html,text/plain;q=0.9,*/*;q=0.5")

	return &jobDescriptionFetcher{client: client, maxBytes: maxBytes}
}

// Fetch downloads a job posting. HTML pages are converted to markdown text,
// anything else is returned as is.
func (f *jobDescriptionFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: job description URL must be http(s): %q", ErrInvalidInput, rawURL)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	raw := resp.RawBody()
	defer raw.Close()

	if resp.IsError() {
		return "", fmt.Errorf("failed to fetch job description: unexpected status %d", resp.StatusCode())
	}

	body, err := readLimited(raw, f.maxBytes)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}

	if strings.Contains(strings.ToLower(resp.Header().Get("Content-Type")), "html") {
		md, err := htmltomarkdown.ConvertString(string(body))
		if err != nil {
			return "", fmt.Errorf("failed to convert job description HTML: %w", err)
		}
		return strings.TrimSpace(md), nil
	}

	return strings.TrimSpace(string(body)), nil
}

// readLimited reads at most maxBytes from r and fails instead of truncating.
// A non-positive maxBytes reads everything.
func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}

	body, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("body exceeds %d bytes", maxBytes)
	}
	return body, nil
}
