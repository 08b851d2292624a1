package remote

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// ChangeFeed is a live registration against the remote store. It pushes
// collection snapshots to its handlers until closed. Close is idempotent and
// no handler runs after it returns.
type ChangeFeed interface {
	Close()
}

// snapshotPump drives a change stream: it pushes one snapshot immediately on
// registration, then re-runs the query and pushes again every time the
// underlying stream reports a change. The remote store has no server-side
// query diffing, so each push is a full re-read of the filtered range.
type snapshotPump[T any] struct {
	stream     StreamHelper
	query      func(ctx context.Context) ([]T, error)
	onSnapshot func([]T)
	onErr      func(error)

	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

func newSnapshotPump[T any](
	parent context.Context,
	stream StreamHelper,
	query func(ctx context.Context) ([]T, error),
	onSnapshot func([]T),
	onErr func(error),
) *snapshotPump[T] {
	ctx, cancel := context.WithCancel(parent)
	p := &snapshotPump[T]{
		stream:     stream,
		query:      query,
		onSnapshot: onSnapshot,
		onErr:      onErr,
		cancel:     cancel,
	}

	p.wg.Add(1)
	go p.run(ctx)
	return p
}

func (p *snapshotPump[T]) run(ctx context.Context) {
	defer p.wg.Done()

	if !p.push(ctx) {
		return
	}

	for p.stream.Next(ctx) {
		if !p.push(ctx) {
			return
		}
	}

	if err := p.stream.Err(); err != nil && ctx.Err() == nil {
		p.onErr(err)
	}
}

// push re-reads the range and forwards it. Returns false when the feed should
// stop, either because the registration was closed or the query failed
// terminally.
func (p *snapshotPump[T]) push(ctx context.Context) bool {
	items, err := p.query(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.onErr(err)
		return false
	}
	if ctx.Err() != nil {
		return false
	}
	p.onSnapshot(items)
	return true
}

// Close cancels the registration and waits for the pump goroutine so that no
// handler is invoked after it returns.
func (p *snapshotPump[T]) Close() {
	p.once.Do(func() {
		p.cancel()
		if err := p.stream.Close(context.Background()); err != nil {
			zap.S().Debugw("change stream close", "error", err)
		}
		p.wg.Wait()
	})
}
