package client

import (
	"context"
	"sync"
)

// Resource keys shared between hooks and form sessions.
const (
	ResourceStudents = "students"
	ResourceTeachers = "teachers"
	ResourceNotices  = "notices"
)

// FetchFunc loads the current collection for a resource.
type FetchFunc func(ctx context.Context) (interface{}, error)

// State is the observable snapshot of one cached resource. IsLoading is
// true exactly when neither data nor error has been populated yet.
type State struct {
	Data      interface{}
	Err       error
	IsLoading bool
}

type entry struct {
	fetch    FetchFunc
	data     interface{}
	err      error
	hasData  bool
	hasErr   bool
	inflight bool
	seq      uint64
	applied  uint64
	subs     map[int]func(State)
	nextSub  int
}

func (e *entry) snapshot() State {
	return State{
		Data:      e.data,
		Err:       e.err,
		IsLoading: !e.hasData && !e.hasErr,
	}
}

// Store is a keyed cache of resource collections. Components observing the
// same key share one entry: any subscriber's revalidate refreshes the entry
// and notifies every subscriber mounted against that key.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewStore constructs an empty hook store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// Hook is one subscription to a cached resource.
type Hook struct {
	store *Store
	key   string
	id    int
}

// Subscribe registers a consumer for the resource key, fetching the
// collection if the shared entry is cold. onChange may be nil; when set it
// is invoked with a snapshot after every completed fetch.
func (s *Store) Subscribe(ctx context.Context, key string, fetch FetchFunc, onChange func(State)) *Hook {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &entry{fetch: fetch, subs: make(map[int]func(State))}
		s.entries[key] = e
	}
	id := e.nextSub
	e.nextSub++
	if onChange != nil {
		e.subs[id] = onChange
	}
	cold := !e.hasData && !e.hasErr
	s.mu.Unlock()

	if cold {
		s.startFetch(ctx, key)
	}
	return &Hook{store: s, key: key, id: id}
}

// State returns the current snapshot for the hook's resource.
func (h *Hook) State() State {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	e, ok := h.store.entries[h.key]
	if !ok {
		return State{IsLoading: true}
	}
	return e.snapshot()
}

// Revalidate re-issues the fetch and replaces the shared entry on
// completion. A fetch already in flight is reused instead of duplicated.
func (h *Hook) Revalidate(ctx context.Context) {
	h.store.startFetch(ctx, h.key)
}

// Unsubscribe detaches the hook's change callback. The cached entry stays
// warm for other consumers.
func (h *Hook) Unsubscribe() {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	if e, ok := h.store.entries[h.key]; ok {
		delete(e.subs, h.id)
	}
}

// Revalidate refreshes a key directly, for callers holding no hook (form
// sessions after a successful submit).
func (s *Store) Revalidate(ctx context.Context, key string) {
	s.startFetch(ctx, key)
}

func (s *Store) startFetch(ctx context.Context, key string) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok || e.inflight {
		s.mu.Unlock()
		return
	}
	e.inflight = true
	e.seq++
	seq := e.seq
	fetch := e.fetch
	s.mu.Unlock()

	go func() {
		data, err := fetch(ctx)

		s.mu.Lock()
		e.inflight = false
		if seq < e.applied {
			// a later fetch already landed; most recently completed wins
			s.mu.Unlock()
			return
		}
		e.applied = seq
		if err != nil {
			e.data, e.hasData = nil, false
			e.err, e.hasErr = err, true
		} else {
			e.data, e.hasData = data, true
			e.err, e.hasErr = nil, false
		}
		snap := e.snapshot()
		subs := make([]func(State), 0, len(e.subs))
		for _, fn := range e.subs {
			subs = append(subs, fn)
		}
		s.mu.Unlock()

		for _, fn := range subs {
			fn(snap)
		}
	}()
}
