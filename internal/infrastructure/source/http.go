package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/dataset"
)

// maxBodyBytes bounds the dataset payload; the full festival programme is a
// few hundred kilobytes at most.
const maxBodyBytes = 10 << 20

// HTTPSource fetches the dataset from the upstream endpoint with conditional
// request support. A bounded client timeout keeps a hung connection from
// delaying fallback indefinitely.
type HTTPSource struct {
	client *http.Client
	url    string
}

func NewHTTP(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

func (s *HTTPSource) Fetch(ctx context.Context, etag string) (*dataset.RemoteResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotModified:
		return &dataset.RemoteResponse{NotModified: true}, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, err
		}
		return &dataset.RemoteResponse{Body: body, ETag: resp.Header.Get("ETag")}, nil
	default:
		return nil, fmt.Errorf("fetch falló (%d)", resp.StatusCode)
	}
}
