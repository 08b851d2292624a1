// Package stream bridges the remote store's push-based change feeds into
// cancellable pull subscriptions. Slow consumers always observe the most
// recent snapshot: intermediate states are conflated away.
package stream

import (
	"sync"

	"github.com/floodwatch/floodwatch-sync-api/models"
)

// Feed is the push-side registration handle. Close must stop callbacks
// synchronously; the remote package's ChangeFeed satisfies this.
type Feed interface {
	Close()
}

// RegisterFunc registers the push callbacks with the remote store and returns
// the feed handle. Callbacks may fire before RegisterFunc returns.
type RegisterFunc[T any] func(onSnapshot func([]T), onErr func(error)) (Feed, error)

// Subscription is a pull stream over a single feed registration. Each
// subscriber owns its own registration; equivalent queries are not
// deduplicated.
//
// Consumers read Snapshots until it is closed, then check Err. Close must be
// called when done (defer is fine); it is idempotent and tears down the
// remote registration before returning.
type Subscription[T any] struct {
	mu     sync.Mutex
	feed   Feed
	ch     chan []T
	err    error
	closed bool

	closeOnce sync.Once
}

// Subscribe opens the feed and returns the pull side. On registration failure
// nothing is retained and the error is returned as-is.
func Subscribe[T any](register RegisterFunc[T]) (*Subscription[T], error) {
	s := &Subscription[T]{ch: make(chan []T, 1)}

	feed, err := register(s.forward, s.fail)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.feed = feed
	terminated := s.closed
	s.mu.Unlock()

	// The feed may have errored before registration returned; release it
	// here because the teardown path ran without a handle to close.
	if terminated {
		feed.Close()
	}
	return s, nil
}

// Snapshots returns the stream of collection snapshots. The channel closes on
// terminal error or Close; after it closes, Err reports why.
func (s *Subscription[T]) Snapshots() <-chan []T {
	return s.ch
}

// Err returns the terminal error, or nil if the stream ended by Close.
func (s *Subscription[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close cancels the subscription. The underlying feed is closed exactly once,
// synchronously: when Close returns, no further snapshots are delivered and
// no remote registration remains.
func (s *Subscription[T]) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		wasClosed := s.closed
		s.closed = true
		feed := s.feed
		s.mu.Unlock()

		if feed != nil {
			feed.Close()
		}
		if !wasClosed {
			close(s.ch)
		}
	})
}

// forward conflates into the 1-slot buffer: if the consumer has not taken the
// previous snapshot yet, it is replaced by the new one.
func (s *Subscription[T]) forward(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- items:
	default:
		select {
		case <-s.ch:
		default:
		}
		s.ch <- items
	}
}

// fail terminates the stream with err. The pump goroutine stops after calling
// this, so the feed handle is released asynchronously to avoid waiting on
// ourselves.
func (s *Subscription[T]) fail(err error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.err = &models.SubscriptionError{Err: err}
	s.closed = true
	close(s.ch)
	s.mu.Unlock()

	go s.release()
}

func (s *Subscription[T]) release() {
	s.mu.Lock()
	feed := s.feed
	s.mu.Unlock()
	if feed != nil {
		feed.Close()
	}
}
