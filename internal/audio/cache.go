// Package audio manages synthesized speech resources for practice sessions.
package audio

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State describes an audio resource's lifecycle within the cache.
type State int

const (
	StateAbsent State = iota
	StateLoading
	StateReady
	StateFailed
)

const defaultFetchTimeout = 15 * time.Second

// ErrReleased is returned when a handle is used after its cache released it.
var ErrReleased = errors.New("audio handle released")

// Synthesizer is the external speech-synthesis collaborator. It must return
// a distinguishable error on failure and never hang past its context.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Handle is a playable audio resource owned by the cache entry that
// created it. Once released its data is gone and Bytes fails.
type Handle struct {
	key      string
	data     []byte
	released bool
}

// Key returns the text the audio was synthesized from.
func (h *Handle) Key() string {
	return h.key
}

// Bytes returns the encoded audio, or ErrReleased after release.
func (h *Handle) Bytes() ([]byte, error) {
	if h.released {
		return nil, ErrReleased
	}
	return h.data, nil
}

func (h *Handle) release() {
	h.released = true
	h.data = nil
}

type entry struct {
	state  State
	handle *Handle
	err    error
	done   chan struct{}
}

// Option configures a Cache.
type Option func(*Cache)

// WithTimeout bounds each synthesis fetch.
func WithTimeout(d time.Duration) Option {
	return func(c *Cache) {
		c.timeout = d
	}
}

// Cache is a fetch-once, play-many audio resource cache keyed by text.
// It is owned by exactly one practice session; a new session gets a new
// cache. All methods are safe for concurrent use.
type Cache struct {
	synth   Synthesizer
	timeout time.Duration

	mu      sync.Mutex
	entries map[string]*entry
	closed  bool
}

// NewCache constructs an empty cache backed by the given synthesizer.
func NewCache(synth Synthesizer, opts ...Option) *Cache {
	c := &Cache{
		synth:   synth,
		timeout: defaultFetchTimeout,
		entries: map[string]*entry{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Ensure starts a fetch for key unless one already happened or is in
// flight; duplicate calls coalesce onto the single fetch. It returns the
// entry's state as of the call.
func (c *Cache) Ensure(key string) State {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return StateAbsent
	}
	if e, ok := c.entries[key]; ok {
		state := e.state
		c.mu.Unlock()
		return state
	}
	e := &entry{state: StateLoading, done: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	go c.fetch(key, e)
	return StateLoading
}

func (c *Cache) fetch(key string, e *entry) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	data, err := c.synth.Synthesize(ctx, key)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		// The owning session is gone; drop the late result.
		e.state = StateFailed
		e.err = ErrReleased
		close(e.done)
		return
	}
	if err != nil {
		e.state = StateFailed
		e.err = err
	} else {
		e.state = StateReady
		e.handle = &Handle{key: key, data: data}
	}
	close(e.done)
}

// Wait blocks until the key's fetch settles (Ready or Failed) or the context
// expires. It triggers the fetch if nobody has yet.
func (c *Cache) Wait(ctx context.Context, key string) (*Handle, error) {
	c.Ensure(key)
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return nil, ErrReleased
	}
	select {
	case <-e.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e.err != nil {
		return nil, e.err
	}
	return e.handle, nil
}

// Get returns the handle for key only when it is Ready.
func (c *Cache) Get(key string) (*Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || e.state != StateReady {
		return nil, false
	}
	return e.handle, true
}

// State returns the key's current state.
func (c *Cache) State(key string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return StateAbsent
	}
	return e.state
}

// Err returns the failure for key, if its fetch failed.
func (c *Cache) Err(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || e.state != StateFailed {
		return nil
	}
	return e.err
}

// Retry forgets a Failed entry so the next Ensure fetches again. The cache
// never retries on its own; this is for explicit user action.
func (c *Cache) Retry(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if ok && e.state == StateFailed {
		delete(c.entries, key)
	}
}

// ReleaseAll revokes every held handle and clears the cache. In-flight
// fetch results arriving afterwards are dropped, never stored. Calling it
// twice is safe.
func (c *Cache) ReleaseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for _, e := range c.entries {
		if e.handle != nil {
			e.handle.release()
		}
	}
	c.entries = map[string]*entry{}
}
