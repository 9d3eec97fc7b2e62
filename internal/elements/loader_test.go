package elements

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

const minimalPayload = `{"elements": [
	{"number": 1, "symbol": "H", "name": "Hydrogen", "period": 1, "group": 1,
	 "category": "diatomic nonmetal", "phase": "gas", "atomic_mass": 1.008,
	 "electron_configuration": "1s1"},
	{"number": 2, "symbol": "He", "name": "Helium", "period": 1, "group": 18,
	 "category": "noble gas", "phase": "gas", "atomic_mass": 4.0026,
	 "electron_configuration": "1s2"}
]}`

// memCache is an in-memory Cache for loader tests.
type memCache struct {
	mu        sync.Mutex
	payload   []byte
	fetchedAt time.Time
	saves     int
}

func (c *memCache) Save(ctx context.Context, payload []byte, sourceURL string, fetchedAt time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = payload
	c.fetchedAt = fetchedAt
	c.saves++
	return nil
}

func (c *memCache) Load(ctx context.Context) ([]byte, time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.payload == nil {
		return nil, time.Time{}, context.Canceled
	}
	return c.payload, c.fetchedAt, nil
}

func TestLoaderFetchesAndNormalizes(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(minimalPayload))
	}))
	defer srv.Close()

	l := NewLoader(srv.URL, 0, 0, nil)
	ds := l.Load(context.Background())

	if ds.Fallback {
		t.Fatalf("successful fetch flagged as fallback")
	}
	if ds.Len() != 2 || !ds.Contains(1) || !ds.Contains(2) {
		t.Errorf("dataset = %d elements", ds.Len())
	}
	if requests != 1 {
		t.Errorf("%d upstream requests, want 1", requests)
	}
}

func TestLoaderCacheWindow(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(minimalPayload))
	}))
	defer srv.Close()

	l := NewLoader(srv.URL, 0, time.Hour, nil)
	first := l.Load(context.Background())
	second := l.Load(context.Background())

	if requests != 1 {
		t.Errorf("%d upstream requests within the cache window, want 1", requests)
	}
	if first != second {
		t.Errorf("cached load returned a different dataset")
	}

	l.Refresh()
	l.Load(context.Background())
	if requests != 2 {
		t.Errorf("%d upstream requests after refresh, want 2", requests)
	}
}

func TestLoaderFallbackOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ds := NewLoader(srv.URL, 0, 0, nil).Load(context.Background())
	if !ds.Fallback {
		t.Fatalf("upstream failure did not fall back")
	}
	if !ds.Contains(1) || !ds.Contains(2) {
		t.Errorf("fallback missing hydrogen or helium")
	}
}

func TestLoaderFallbackOnMalformedPayload(t *testing.T) {
	for _, payload := range []string{`{"elements": [`, `{"data": []}`, `not json`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))
		ds := NewLoader(srv.URL, 0, 0, nil).Load(context.Background())
		srv.Close()
		if !ds.Fallback {
			t.Errorf("payload %q did not fall back", payload)
		}
	}
}

func TestLoaderFallbackOnUnreachableHost(t *testing.T) {
	ds := NewLoader("http://127.0.0.1:1/elements.json", time.Second, 0, nil).Load(context.Background())
	if !ds.Fallback {
		t.Fatalf("unreachable upstream did not fall back")
	}
}

func TestLoaderPersistsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(minimalPayload))
	}))
	defer srv.Close()

	cache := &memCache{}
	NewLoader(srv.URL, 0, 0, cache).Load(context.Background())
	if cache.saves != 1 {
		t.Errorf("payload saved %d times, want 1", cache.saves)
	}
}

func TestLoaderPrefersFreshCacheOverNetwork(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(minimalPayload))
	}))
	defer srv.Close()

	cache := &memCache{payload: []byte(minimalPayload), fetchedAt: time.Now().UTC()}
	ds := NewLoader(srv.URL, 0, time.Hour, cache).Load(context.Background())

	if requests != 0 {
		t.Errorf("fresh persisted payload still hit the network")
	}
	if ds.Stale || ds.Fallback {
		t.Errorf("fresh persisted payload flagged stale=%v fallback=%v", ds.Stale, ds.Fallback)
	}
}

func TestLoaderPrefersStaleCacheOverFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	stale := time.Now().UTC().Add(-48 * time.Hour)
	cache := &memCache{payload: []byte(minimalPayload), fetchedAt: stale}
	ds := NewLoader(srv.URL, 0, time.Hour, cache).Load(context.Background())

	if ds.Fallback {
		t.Fatalf("stale cache skipped in favor of the built-in fallback")
	}
	if !ds.Stale {
		t.Errorf("stale dataset not flagged")
	}
	if ds.Len() != 2 {
		t.Errorf("stale dataset has %d elements", ds.Len())
	}
}

func TestLoaderHoldsStaleDatasetForCacheWindow(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	stale := time.Now().UTC().Add(-48 * time.Hour)
	cache := &memCache{payload: []byte(minimalPayload), fetchedAt: stale}
	l := NewLoader(srv.URL, 0, time.Hour, cache)

	// A stale substitute occupies the full cache window even though its
	// FetchedAt predates the TTL; the dead upstream is retried once per
	// window, not once per Load.
	first := l.Load(context.Background())
	second := l.Load(context.Background())
	third := l.Load(context.Background())

	if requests != 1 {
		t.Errorf("%d upstream requests across 3 loads within one cache window, want 1", requests)
	}
	if first != second || second != third {
		t.Errorf("repeated loads returned different datasets")
	}
}

func TestLoaderHoldsFallbackForCacheWindow(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	l := NewLoader(srv.URL, 0, time.Hour, nil)
	l.Load(context.Background())
	l.Load(context.Background())

	if requests != 1 {
		t.Errorf("%d upstream requests across 2 loads within one cache window, want 1", requests)
	}
}
