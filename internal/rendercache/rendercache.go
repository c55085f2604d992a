// Package rendercache is a two-tier cache for rendered output keyed by a
// fingerprint of the source text and the highlight set that produced it: a
// hot in-process LRU tier backed by a durable SQLite tier across CLI
// invocations (SPEC_FULL.md §3.7).
package rendercache

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/xonecas/snippetfmt/internal/highlight"
)

const schema = `
CREATE TABLE IF NOT EXISTS render_cache (
	fingerprint TEXT PRIMARY KEY,
	output      TEXT NOT NULL,
	created     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_render_created ON render_cache(created);
`

// Cache is a hashicorp/golang-lru hot tier over a modernc.org/sqlite
// durable tier, grounded on internal/store.Cache's "SQLite-backed cache
// with a TTL" shape.
type Cache struct {
	mu  sync.Mutex
	hot *lru.Cache[string, string]
	db  *sql.DB
	ttl time.Duration
}

// Open creates or opens the durable cache at dbPath with memEntries worth
// of in-process hot-tier capacity and the given TTL. A dbPath of "" keeps
// the durable tier in-memory only (":memory:"), useful for tests and for
// callers that only want the LRU tier.
func Open(dbPath string, memEntries int, ttl time.Duration) (*Cache, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("rendercache: open db: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("rendercache: pragma %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("rendercache: create schema: %w", err)
	}

	hot, err := lru.New[string, string](memEntries)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("rendercache: new lru: %w", err)
	}

	c := &Cache{hot: hot, db: db, ttl: ttl}
	c.purgeStale()
	return c, nil
}

// Close closes the durable tier. Safe on a nil receiver.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// Fingerprint hashes the source text and the rendered-relevant fields of
// each highlight with xxhash, the same hash internal/store.Cache's key
// derivation uses for speed at the cache-hot-path.
func Fingerprint(text string, highlights []highlight.Highlight) string {
	d := xxhash.New()
	d.WriteString(text)
	for _, h := range highlights {
		fmt.Fprintf(d, "|%d:%d-%d:%d|%s|%d",
			h.Span.Start.Line, h.Span.Start.Column,
			h.Span.Last.Line, h.Span.Last.Column,
			h.Label, h.Style.Kind())
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// Get returns a cached render for fingerprint, checking the hot tier
// first and falling back to the durable tier (populating the hot tier on
// a durable hit). Safe to call on a nil receiver (always a miss).
func (c *Cache) Get(fingerprint string) (string, bool) {
	if c == nil {
		return "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.hot.Get(fingerprint); ok {
		return v, true
	}

	cutoff := time.Now().Add(-c.ttl).Unix()
	var output string
	err := c.db.QueryRow(
		"SELECT output FROM render_cache WHERE fingerprint = ? AND created > ?",
		fingerprint, cutoff,
	).Scan(&output)
	if err != nil {
		return "", false
	}
	c.hot.Add(fingerprint, output)
	return output, true
}

// Set stores output under fingerprint in both tiers. No-op on nil
// receiver.
func (c *Cache) Set(fingerprint, output string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hot.Add(fingerprint, output)
	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO render_cache (fingerprint, output, created) VALUES (?, ?, ?)",
		fingerprint, output, time.Now().Unix(),
	)
	if err != nil {
		log.Warn().Err(err).Str("fingerprint", fingerprint).Msg("rendercache: failed to persist render")
	}
}

func (c *Cache) purgeStale() {
	cutoff := time.Now().Add(-c.ttl).Unix()
	if _, err := c.db.Exec("DELETE FROM render_cache WHERE created <= ?", cutoff); err != nil {
		log.Warn().Err(err).Msg("rendercache: failed to purge stale entries")
	}
}
