package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForChange(t *testing.T, ch <-chan State) State {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for state change")
		return State{}
	}
}

func TestHookIsLoadingUntilFirstResult(t *testing.T) {
	store := NewStore()
	release := make(chan struct{})
	changes := make(chan State, 1)

	hook := store.Subscribe(context.Background(), ResourceStudents, func(ctx context.Context) (interface{}, error) {
		<-release
		return []string{"a"}, nil
	}, func(s State) { changes <- s })

	assert.True(t, hook.State().IsLoading)

	close(release)
	state := waitForChange(t, changes)
	assert.False(t, state.IsLoading)
	assert.Equal(t, []string{"a"}, state.Data)
	require.NoError(t, state.Err)
}

func TestHookErrorClearsData(t *testing.T) {
	store := NewStore()
	changes := make(chan State, 2)
	fetchErr := errors.New("fetch failed")
	var failing atomic.Bool

	hook := store.Subscribe(context.Background(), ResourceNotices, func(ctx context.Context) (interface{}, error) {
		if failing.Load() {
			return nil, fetchErr
		}
		return []string{"notice"}, nil
	}, func(s State) { changes <- s })

	state := waitForChange(t, changes)
	require.NoError(t, state.Err)
	assert.Equal(t, []string{"notice"}, state.Data)

	failing.Store(true)
	hook.Revalidate(context.Background())

	state = waitForChange(t, changes)
	assert.Equal(t, fetchErr, state.Err)
	assert.Nil(t, state.Data)
	assert.False(t, state.IsLoading)
}

func TestHookSharedKeyNotifiesAllSubscribers(t *testing.T) {
	store := NewStore()
	first := make(chan State, 2)
	second := make(chan State, 2)

	fetch := func(ctx context.Context) (interface{}, error) {
		return "shared", nil
	}

	hookA := store.Subscribe(context.Background(), ResourceTeachers, fetch, func(s State) { first <- s })
	waitForChange(t, first)

	store.Subscribe(context.Background(), ResourceTeachers, fetch, func(s State) { second <- s })

	hookA.Revalidate(context.Background())
	stateA := waitForChange(t, first)
	stateB := waitForChange(t, second)
	assert.Equal(t, "shared", stateA.Data)
	assert.Equal(t, "shared", stateB.Data)
}

func TestHookDeduplicatesInflightFetches(t *testing.T) {
	store := NewStore()
	release := make(chan struct{})
	changes := make(chan State, 4)
	var calls atomic.Int32

	hook := store.Subscribe(context.Background(), ResourceStudents, func(ctx context.Context) (interface{}, error) {
		calls.Add(1)
		<-release
		return "data", nil
	}, func(s State) { changes <- s })

	hook.Revalidate(context.Background())
	hook.Revalidate(context.Background())
	hook.Revalidate(context.Background())

	close(release)
	waitForChange(t, changes)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHookUnsubscribeStopsNotifications(t *testing.T) {
	store := NewStore()
	changes := make(chan State, 4)

	hook := store.Subscribe(context.Background(), ResourceStudents, func(ctx context.Context) (interface{}, error) {
		return "data", nil
	}, func(s State) { changes <- s })

	waitForChange(t, changes)
	hook.Unsubscribe()

	store.Revalidate(context.Background(), ResourceStudents)

	select {
	case <-changes:
		t.Fatal("unsubscribed hook still notified")
	case <-time.After(200 * time.Millisecond):
	}

	// entry stays warm after unsubscribe
	assert.False(t, hook.State().IsLoading)
}
