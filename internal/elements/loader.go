package elements

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

// Cache is the persistence hook used by the Loader. *Store satisfies it;
// a nil Cache disables persistence.
type Cache interface {
	Save(ctx context.Context, payload []byte, sourceURL string, fetchedAt time.Time) error
	Load(ctx context.Context) ([]byte, time.Time, error)
}

// Loader fetches, normalizes, and caches the element dataset. Load never
// fails: any data-source error is logged as a warning and resolved by
// substituting the most recent cached payload or the built-in fallback.
type Loader struct {
	url     string
	client  *http.Client
	cache   Cache
	ttl     time.Duration
	timeout time.Duration

	mu       sync.Mutex
	cached   *Dataset
	loadedAt time.Time
}

// NewLoader creates a dataset loader for the given upstream URL.
func NewLoader(url string, timeout, ttl time.Duration, cache Cache) *Loader {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Loader{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		cache:   cache,
		ttl:     ttl,
		timeout: timeout,
	}
}

// Load returns the current dataset. Within the cache window the same
// dataset is returned without touching the network, including when that
// dataset is a stale or fallback substitute: a dead upstream is retried
// once per window, not once per render.
func (l *Loader) Load(ctx context.Context) *Dataset {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	if l.cached != nil && now.Sub(l.loadedAt) < l.ttl {
		return l.cached
	}

	// A fresh persisted payload avoids the network entirely.
	if ds := l.fromCache(ctx, now, false); ds != nil {
		l.keep(ds, now)
		return ds
	}

	ds, err := l.fetch(ctx)
	if err != nil {
		log.Printf("elements: warning: %v", err)
		// Prefer a stale persisted payload over the built-in fallback.
		if stale := l.fromCache(ctx, now, true); stale != nil {
			stale.Stale = true
			l.keep(stale, now)
			return stale
		}
		fb := FallbackDataset()
		fb.FetchedAt = now
		log.Printf("elements: using built-in fallback dataset (%d elements)", fb.Len())
		l.keep(fb, now)
		return fb
	}

	l.keep(ds, now)
	return ds
}

// keep holds a load result for the cache window. loadedAt is tracked
// separately from the dataset's FetchedAt: a stale substitute carries its
// payload's original fetch time but still occupies a full window.
func (l *Loader) keep(ds *Dataset, now time.Time) {
	l.cached = ds
	l.loadedAt = now
}

// Refresh drops the in-memory dataset so the next Load refetches.
func (l *Loader) Refresh() {
	l.mu.Lock()
	l.cached = nil
	l.loadedAt = time.Time{}
	l.mu.Unlock()
}

func (l *Loader) fetch(ctx context.Context) (*Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building dataset request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching element dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("element dataset upstream returned status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading element dataset: %w", err)
	}

	list, err := parseDocument(payload)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if l.cache != nil {
		if err := l.cache.Save(ctx, payload, l.url, now); err != nil {
			log.Printf("elements: warning: %v", err)
		}
	}

	ds := NewDataset(list)
	ds.FetchedAt = now
	return ds, nil
}

// fromCache parses the persisted payload. With allowStale=false only a
// payload younger than the TTL is accepted.
func (l *Loader) fromCache(ctx context.Context, now time.Time, allowStale bool) *Dataset {
	if l.cache == nil {
		return nil
	}
	payload, fetchedAt, err := l.cache.Load(ctx)
	if err != nil {
		return nil
	}
	if !allowStale && now.Sub(fetchedAt) >= l.ttl {
		return nil
	}
	list, err := parseDocument(payload)
	if err != nil {
		log.Printf("elements: warning: cached payload unusable: %v", err)
		return nil
	}
	ds := NewDataset(list)
	ds.FetchedAt = fetchedAt
	return ds
}
