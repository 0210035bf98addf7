package intake

import (
	"context"

	"github.com/thirawat/librarium/pkg/slice"
)

// CreateFunc registers a new reference entity with the catalog and returns
// the stored row.
type CreateFunc func(ctx context.Context, name string) (Reference, error)

// ResolveOne turns a single token into a reference id.
//
// Id tokens pass through unchecked. Name tokens are matched against the
// cache case-insensitively; on a miss the entity is created and appended to
// the cache so later occurrences of the same name reuse the new id.
func ResolveOne(ctx context.Context, token Token, cache *Cache, create CreateFunc) (int, error) {
	if token.Kind == TokenID {
		return token.ID, nil
	}

	if id, ok := cache.Find(token.Name); ok {
		return id, nil
	}

	created, err := create(ctx, token.Name)
	if err != nil {
		return 0, err
	}
	cache.Add(created)

	return created.ID, nil
}

// ResolveMany resolves an ordered token list and returns the de-duplicated
// ids preserving first-occurrence order.
//
// Tokens are resolved sequentially against the shared cache, so a repeated
// new name within one call creates exactly one entity.
func ResolveMany(ctx context.Context, tokens []Token, cache *Cache, create CreateFunc) ([]int, error) {
	ids := make([]int, 0, len(tokens))
	for _, token := range tokens {
		id, err := ResolveOne(ctx, token, cache, create)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return slice.Unique(ids), nil
}
