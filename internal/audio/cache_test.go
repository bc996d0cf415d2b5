package audio

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeSynth counts calls and can be made to fail or block.
type fakeSynth struct {
	calls   atomic.Int64
	failErr error
	block   chan struct{}
}

func (f *fakeSynth) Synthesize(ctx context.Context, text string) ([]byte, error) {
	f.calls.Add(1)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.failErr != nil {
		return nil, f.failErr
	}
	return []byte("mp3:" + text), nil
}

func TestCacheEnsureAndWait(t *testing.T) {
	synth := &fakeSynth{}
	c := NewCache(synth)

	if state := c.Ensure("你"); state != StateLoading {
		t.Fatalf("Ensure = %v, want Loading", state)
	}
	h, err := c.Wait(context.Background(), "你")
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	data, err := h.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(data) != "mp3:你" {
		t.Errorf("data = %q", data)
	}
	if c.State("你") != StateReady {
		t.Errorf("state = %v, want Ready", c.State("你"))
	}
}

func TestCacheCoalescesConcurrentEnsures(t *testing.T) {
	synth := &fakeSynth{block: make(chan struct{})}
	c := NewCache(synth)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Ensure("好")
		}()
	}
	wg.Wait()
	close(synth.block)

	if _, err := c.Wait(context.Background(), "好"); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if calls := synth.calls.Load(); calls != 1 {
		t.Errorf("synthesizer called %d times, want 1", calls)
	}
}

func TestCacheGetOnlyWhenReady(t *testing.T) {
	synth := &fakeSynth{block: make(chan struct{})}
	c := NewCache(synth)

	if _, ok := c.Get("水"); ok {
		t.Fatal("Get returned a handle for an absent key")
	}
	c.Ensure("水")
	if _, ok := c.Get("水"); ok {
		t.Fatal("Get returned a handle while loading")
	}
	close(synth.block)
	if _, err := c.Wait(context.Background(), "水"); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if _, ok := c.Get("水"); !ok {
		t.Fatal("Get missed a ready handle")
	}
}

func TestCacheFailureAndRetry(t *testing.T) {
	boom := errors.New("boom")
	synth := &fakeSynth{failErr: boom}
	c := NewCache(synth)

	c.Ensure("茶")
	if _, err := c.Wait(context.Background(), "茶"); !errors.Is(err, boom) {
		t.Fatalf("Wait err = %v, want boom", err)
	}
	if c.State("茶") != StateFailed {
		t.Fatalf("state = %v, want Failed", c.State("茶"))
	}
	if err := c.Err("茶"); !errors.Is(err, boom) {
		t.Fatalf("Err = %v, want boom", err)
	}

	// The cache never retries on its own.
	c.Ensure("茶")
	if calls := synth.calls.Load(); calls != 1 {
		t.Fatalf("synthesizer called %d times after failed Ensure, want 1", calls)
	}

	synth.failErr = nil
	c.Retry("茶")
	c.Ensure("茶")
	if h, err := c.Wait(context.Background(), "茶"); err != nil || h == nil {
		t.Fatalf("Wait after Retry: %v", err)
	}
	if calls := synth.calls.Load(); calls != 2 {
		t.Errorf("synthesizer called %d times after Retry, want 2", calls)
	}
}

func TestCacheReleaseAll(t *testing.T) {
	synth := &fakeSynth{}
	c := NewCache(synth)

	c.Ensure("你")
	h, err := c.Wait(context.Background(), "你")
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}

	c.ReleaseAll()
	c.ReleaseAll() // idempotent

	if _, ok := c.Get("你"); ok {
		t.Fatal("Get hit after ReleaseAll")
	}
	if _, err := h.Bytes(); !errors.Is(err, ErrReleased) {
		t.Fatalf("Bytes after release = %v, want ErrReleased", err)
	}
	if state := c.Ensure("好"); state != StateAbsent {
		t.Errorf("Ensure on closed cache = %v, want Absent", state)
	}
	if calls := synth.calls.Load(); calls != 1 {
		t.Errorf("synthesizer called %d times, want 1", calls)
	}
}

func TestCacheDropsLateResultAfterRelease(t *testing.T) {
	synth := &fakeSynth{block: make(chan struct{})}
	c := NewCache(synth)

	c.Ensure("你")
	c.ReleaseAll()
	close(synth.block)

	if _, err := c.Wait(context.Background(), "你"); !errors.Is(err, ErrReleased) {
		t.Fatalf("Wait = %v, want ErrReleased", err)
	}
}

func TestCacheWaitHonorsContext(t *testing.T) {
	synth := &fakeSynth{block: make(chan struct{})}
	defer close(synth.block)
	c := NewCache(synth, WithTimeout(time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := c.Wait(ctx, "你"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait = %v, want context deadline", err)
	}
}

func TestCacheFetchTimeout(t *testing.T) {
	synth := &fakeSynth{block: make(chan struct{})}
	defer close(synth.block)
	c := NewCache(synth, WithTimeout(20*time.Millisecond))

	c.Ensure("你")
	if _, err := c.Wait(context.Background(), "你"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait = %v, want deadline from fetch timeout", err)
	}
	if c.State("你") != StateFailed {
		t.Errorf("state = %v, want Failed", c.State("你"))
	}
}
