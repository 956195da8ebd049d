package dataset

import (
	"context"
	"time"
)

// CacheStore persists the single dataset cache entry. Read returns
// (nil, nil) when no usable entry exists; implementations treat a corrupted
// entry as absent, never as fatal.
type CacheStore interface {
	Read(ctx context.Context) (*CacheEntry, error)
	Write(ctx context.Context, entry *CacheEntry) error
}

// RemoteResponse is the outcome of a conditional fetch that reached the
// remote endpoint. NotModified means 304: Body and ETag are empty and the
// caller reuses its cached copy.
type RemoteResponse struct {
	NotModified bool
	Body        []byte
	ETag        string
}

// RemoteSource fetches the upstream dataset. etag, when non-empty, is sent
// as If-None-Match. Transport failures and non-2xx/304 statuses surface as
// errors; the loader turns every one of them into a fallback.
type RemoteSource interface {
	Fetch(ctx context.Context, etag string) (*RemoteResponse, error)
}

// SnapshotSource yields the bundled last-resort dataset.
type SnapshotSource interface {
	Local() (*Dataset, error)
}

type Clock interface{ Now() time.Time }
