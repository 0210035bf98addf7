package intake_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirawat/librarium/internal/intake"
)

// countingCreate records create calls and hands out sequential ids.
type countingCreate struct {
	calls  []string
	nextID int
	fail   bool
}

func (c *countingCreate) create(_ context.Context, name string) (intake.Reference, error) {
	c.calls = append(c.calls, name)
	if c.fail {
		return intake.Reference{}, errors.New("store rejected name")
	}
	c.nextID++
	return intake.Reference{ID: c.nextID + 1000, Name: name}, nil
}

func mustToken(t *testing.T, raw string) intake.Token {
	t.Helper()
	token, ok := intake.ParseToken(raw)
	require.True(t, ok)
	return token
}

/*
TestResolveOne_NumericToken checks that id tokens pass through without any
cache lookup or create call.
*/
func TestResolveOne_NumericToken(t *testing.T) {
	cache := intake.NewCache([]intake.Reference{{ID: 1, Name: "Jane Doe"}})
	creator := &countingCreate{}

	id, err := intake.ResolveOne(context.Background(), mustToken(t, "999"), cache, creator.create)
	require.NoError(t, err)
	assert.Equal(t, 999, id)
	assert.Empty(t, creator.calls)
}

/*
TestResolveOne_ExistingName checks case-insensitive, whitespace-tolerant
matching against the cache.
*/
func TestResolveOne_ExistingName(t *testing.T) {
	cache := intake.NewCache([]intake.Reference{
		{ID: 7, Name: "Haruki Murakami"},
		{ID: 8, Name: "Banana Yoshimoto"},
	})
	creator := &countingCreate{}

	for _, raw := range []string{"Haruki Murakami", "haruki murakami", "  HARUKI MURAKAMI  "} {
		id, err := intake.ResolveOne(context.Background(), mustToken(t, raw), cache, creator.create)
		require.NoError(t, err)
		assert.Equal(t, 7, id, "raw value %q", raw)
	}
	assert.Empty(t, creator.calls)
}

/*
TestResolveOne_NewName checks that an unknown name is created exactly once
and that the cache gains the new entity.
*/
func TestResolveOne_NewName(t *testing.T) {
	cache := intake.NewCache(nil)
	creator := &countingCreate{}

	id, err := intake.ResolveOne(context.Background(), mustToken(t, "Jane Doe"), cache, creator.create)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe"}, creator.calls)
	assert.Equal(t, 1, cache.Len())

	// The second occurrence resolves from the cache, no second create.
	again, err := intake.ResolveOne(context.Background(), mustToken(t, "jane doe"), cache, creator.create)
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Len(t, creator.calls, 1)
}

/*
TestResolveOne_CreateFailure checks that a failed create propagates and
leaves the cache untouched.
*/
func TestResolveOne_CreateFailure(t *testing.T) {
	cache := intake.NewCache(nil)
	creator := &countingCreate{fail: true}

	_, err := intake.ResolveOne(context.Background(), mustToken(t, "Jane Doe"), cache, creator.create)
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

/*
TestResolveMany_Dedup resolves a list with a repeated new name and an id,
expecting exactly two ids and one create call.
*/
func TestResolveMany_Dedup(t *testing.T) {
	cache := intake.NewCache(nil)
	creator := &countingCreate{}
	tokens := intake.ParseTokens([]string{"Jane Doe", "Jane Doe", "1"})

	ids, err := intake.ResolveMany(context.Background(), tokens, cache, creator.create)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Equal(t, []string{"Jane Doe"}, creator.calls)
	assert.Equal(t, 1, ids[1], "id token keeps its position after the first occurrence of the name")
}

/*
TestResolveMany_PreservesFirstOccurrenceOrder checks ordering across mixed
id and name tokens.
*/
func TestResolveMany_PreservesFirstOccurrenceOrder(t *testing.T) {
	cache := intake.NewCache([]intake.Reference{{ID: 3, Name: "Existing Author"}})
	creator := &countingCreate{}
	tokens := intake.ParseTokens([]string{"9", "Existing Author", "Brand New", "9"})

	ids, err := intake.ResolveMany(context.Background(), tokens, cache, creator.create)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Equal(t, 9, ids[0])
	assert.Equal(t, 3, ids[1])
	assert.Equal(t, 1001, ids[2])
}
