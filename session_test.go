package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"visitordash/dataset"
)

func countingLoader(calls *int, fail bool) func() (*dataset.Dataset, error) {
	return func() (*dataset.Dataset, error) {
		*calls++
		if fail {
			return nil, errors.New("boom")
		}
		return &dataset.Dataset{
			Summary:     dataset.NewTable("Category", "Item", "all_Share", "uk_Share"),
			Expenditure: dataset.NewTable("Item", "all_Rate", "uk_Rate"),
		}, nil
	}
}

func TestSessionStoreMemoizes(t *testing.T) {
	calls := 0
	store := NewSessionStore(time.Hour, countingLoader(&calls, false))

	sess, id, err := store.Get("")
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NotNil(t, sess.Data)
	assert.Equal(t, 1, calls)

	// Same session ID does not reload the sources.
	again, sameID, err := store.Get(id)
	assert.NoError(t, err)
	assert.Equal(t, id, sameID)
	assert.Same(t, sess, again)
	assert.Equal(t, 1, calls)

	// An unknown ID means a fresh session with its own copy.
	other, otherID, err := store.Get("unknown")
	assert.NoError(t, err)
	assert.NotEqual(t, id, otherID)
	assert.NotSame(t, sess, other)
	assert.Equal(t, 2, calls)
}

func TestSessionStoreLoadFailure(t *testing.T) {
	calls := 0
	store := NewSessionStore(time.Hour, countingLoader(&calls, true))

	_, _, err := store.Get("")
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStoreSweep(t *testing.T) {
	calls := 0
	store := NewSessionStore(time.Minute, countingLoader(&calls, false))

	_, id, err := store.Get("")
	assert.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	// Not expired yet.
	assert.Equal(t, 0, store.Sweep(time.Now()))

	// Expired an hour later.
	assert.Equal(t, 1, store.Sweep(time.Now().Add(time.Hour)))
	assert.Equal(t, 0, store.Len())

	_, newID, err := store.Get(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, newID)
	assert.Equal(t, 2, calls)
}

func TestSessionStoreInvalidate(t *testing.T) {
	calls := 0
	store := NewSessionStore(time.Hour, countingLoader(&calls, false))

	_, id, _ := store.Get("")
	store.Invalidate(id)
	assert.Equal(t, 0, store.Len())
}
