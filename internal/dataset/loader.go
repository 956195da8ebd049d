package dataset

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/metrics"
)

// Loader resolves the event dataset on every load cycle: serve the cache
// while it is fresh, otherwise do a conditional fetch against the remote
// endpoint, and on any failure fall back to the cache or the bundled
// snapshot. Load never returns an error; every internal failure is absorbed
// into the result's Status and Message.
type Loader struct {
	cache    CacheStore
	remote   RemoteSource // nil means offline mode
	snapshot SnapshotSource
	mapper   *Mapper
	ttl      time.Duration
	clock    Clock
}

func NewLoader(cache CacheStore, remote RemoteSource, snapshot SnapshotSource, mapper *Mapper, ttl time.Duration, clock Clock) *Loader {
	return &Loader{
		cache:    cache,
		remote:   remote,
		snapshot: snapshot,
		mapper:   mapper,
		ttl:      ttl,
		clock:    clock,
	}
}

func (l *Loader) Load(ctx context.Context, forceRefresh bool) LoadResult {
	started := l.clock.Now()
	res := l.load(ctx, forceRefresh)
	metrics.RecordLoad(string(res.Status), l.clock.Now().Sub(started))
	return res
}

func (l *Loader) load(ctx context.Context, forceRefresh bool) LoadResult {
	now := l.clock.Now()
	nowMillis := now.UnixMilli()
	cached := l.readCache(ctx)

	if !forceRefresh && cached != nil && now.Sub(time.UnixMilli(cached.UpdatedAt)) < l.ttl {
		return l.fromEntry(cached, StatusCache, "TTL válido, usando cache")
	}

	if l.remote == nil {
		return l.fallback(ctx, cached, nowMillis, "fuente remota no configurada")
	}

	etag := ""
	if cached != nil {
		etag = cached.ETag
	}

	resp, err := l.remote.Fetch(ctx, etag)
	if err != nil {
		return l.fallback(ctx, cached, nowMillis, err.Error())
	}

	if resp.NotModified {
		if cached != nil {
			// payload confirmed unchanged; skip re-validation
			return l.fromEntry(cached, StatusCache, "Etag sin cambios")
		}
		return l.fallback(ctx, cached, nowMillis, "304 sin cache previa")
	}

	ds, err := Validate(resp.Body)
	if err != nil {
		return l.fallback(ctx, cached, nowMillis, "Dataset remoto inválido")
	}

	etag = resp.ETag
	if etag == "" {
		etag = ContentETag(ds)
	}

	entry := &CacheEntry{Dataset: *ds, ETag: etag, UpdatedAt: nowMillis, Source: SourceRemote}
	l.writeCache(ctx, entry)

	return LoadResult{
		Dataset:   ds,
		Events:    l.mapper.MapDataset(ds),
		ETag:      etag,
		UpdatedAt: nowMillis,
		Status:    StatusFresh,
		Message:   "Dataset remoto actualizado",
	}
}

// fallback prefers stale cached data over no data; when no cache exists it
// promotes the bundled snapshot and persists it for the next cycle.
func (l *Loader) fallback(ctx context.Context, cached *CacheEntry, nowMillis int64, reason string) LoadResult {
	if cached != nil {
		return l.fromEntry(cached, StatusFallback, reason)
	}

	local, err := l.snapshot.Local()
	if err != nil {
		zlog.Error().Err(err).Msg("dataset: bundled snapshot failed validation")
		return LoadResult{
			Dataset:   &Dataset{Events: []RawRecord{}},
			Events:    nil,
			UpdatedAt: nowMillis,
			Status:    StatusRejected,
			Message:   err.Error(),
		}
	}

	l.writeCache(ctx, &CacheEntry{Dataset: *local, UpdatedAt: nowMillis, Source: SourceLocal})

	return LoadResult{
		Dataset:   local,
		Events:    l.mapper.MapDataset(local),
		UpdatedAt: nowMillis,
		Status:    StatusFallback,
		Message:   reason,
	}
}

func (l *Loader) fromEntry(entry *CacheEntry, status Status, message string) LoadResult {
	return LoadResult{
		Dataset:   &entry.Dataset,
		Events:    l.mapper.MapDataset(&entry.Dataset),
		ETag:      entry.ETag,
		UpdatedAt: entry.UpdatedAt,
		Status:    status,
		Message:   message,
	}
}

func (l *Loader) readCache(ctx context.Context) *CacheEntry {
	entry, err := l.cache.Read(ctx)
	if err != nil {
		zlog.Warn().Err(err).Msg("dataset: cache read failed, treating as absent")
		return nil
	}
	return entry
}

func (l *Loader) writeCache(ctx context.Context, entry *CacheEntry) {
	if err := l.cache.Write(ctx, entry); err != nil {
		// cache failures are non-fatal
		zlog.Warn().Err(err).Msg("dataset: cache write failed")
		metrics.RecordCacheWriteFailure()
	}
}
