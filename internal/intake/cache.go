package intake

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/thirawat/librarium/pkg/namekey"
)

// Reference is the engine's read-mostly copy of a catalog lookup row
// (author, publisher, language, file type).
type Reference struct {
	ID   int
	Name string
}

// Cache is a per-session snapshot of one reference collection, indexed by
// normalized name for case-insensitive matching.
//
// # Concurrency
//
// A Cache belongs to exactly one submission session and is never shared,
// so it carries no locking. Concurrent field resolutions are safe because
// each field owns its own Cache.
type Cache struct {
	entries []Reference
	byKey   map[string]int
}

// NewCache indexes a reference snapshot.
//
// When two entries normalize to the same key, the first one in iteration
// order wins; later duplicates are unreachable by name but still resolvable
// by id.
func NewCache(entries []Reference) *Cache {
	cache := &Cache{
		entries: make([]Reference, 0, len(entries)),
		byKey:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		cache.add(entry)
	}
	return cache
}

// Find returns the id of the entry whose name matches case-insensitively,
// ignoring surrounding whitespace and diacritics.
func (cache *Cache) Find(name string) (int, bool) {
	id, ok := cache.byKey[namekey.From(name)]
	return id, ok
}

// Add records a freshly created entity so that a second occurrence of the
// same new name within one submission resolves instead of creating again.
func (cache *Cache) Add(entry Reference) {
	cache.add(entry)
}

// Len reports the number of cached entries.
func (cache *Cache) Len() int {
	return len(cache.entries)
}

func (cache *Cache) add(entry Reference) {
	cache.entries = append(cache.entries, entry)
	key := namekey.From(entry.Name)
	if _, exists := cache.byKey[key]; !exists {
		cache.byKey[key] = entry.ID
	}
}

// Session holds the reference snapshots for one form session, fetched once
// and reused across submission attempts. A retry after a failed attempt
// sees entities created during the earlier attempt and does not recreate
// them.
type Session struct {
	Authors    *Cache
	Publishers *Cache
	Languages  *Cache
	FileTypes  *Cache

	// detections memoizes file classification per file name so a
	// resubmission never reclassifies the same upload.
	detections map[string]string
}

// NewSession bulk-fetches all four reference collections concurrently.
func NewSession(ctx context.Context, catalog Catalog) (*Session, error) {
	session := &Session{detections: make(map[string]string)}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		entries, err := catalog.ListAuthors(groupCtx)
		if err != nil {
			return err
		}
		session.Authors = NewCache(entries)
		return nil
	})
	group.Go(func() error {
		entries, err := catalog.ListPublishers(groupCtx)
		if err != nil {
			return err
		}
		session.Publishers = NewCache(entries)
		return nil
	})
	group.Go(func() error {
		entries, err := catalog.ListLanguages(groupCtx)
		if err != nil {
			return err
		}
		session.Languages = NewCache(entries)
		return nil
	})
	group.Go(func() error {
		entries, err := catalog.ListFileTypes(groupCtx)
		if err != nil {
			return err
		}
		session.FileTypes = NewCache(entries)
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return session, nil
}
