package stream_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/floodwatch/floodwatch-sync-api/models"
	"github.com/floodwatch/floodwatch-sync-api/stream"
)

// fakeHub stands in for the remote store's subscription registry so the tests
// can count active listeners and push snapshots by hand.
type fakeHub struct {
	mu         sync.Mutex
	active     int
	registered int

	onSnapshot func([]models.Report)
	onErr      func(error)
}

type fakeFeed struct {
	hub  *fakeHub
	once sync.Once
}

func (f *fakeFeed) Close() {
	f.once.Do(func() {
		f.hub.mu.Lock()
		f.hub.active--
		f.hub.mu.Unlock()
	})
}

func (h *fakeHub) register(onSnapshot func([]models.Report), onErr func(error)) (stream.Feed, error) {
	h.mu.Lock()
	h.active++
	h.registered++
	h.onSnapshot = onSnapshot
	h.onErr = onErr
	h.mu.Unlock()
	return &fakeFeed{hub: h}, nil
}

func (h *fakeHub) activeCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

func report(id string) models.Report { return models.Report{ID: id} }

func TestSubscribe_ForwardsSnapshots(t *testing.T) {
	hub := &fakeHub{}
	sub, err := stream.Subscribe(hub.register)
	assert.NoError(t, err)
	defer sub.Close()

	hub.onSnapshot([]models.Report{report("a")})

	got := <-sub.Snapshots()
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestSubscribe_LatestValueWins(t *testing.T) {
	hub := &fakeHub{}
	sub, err := stream.Subscribe(hub.register)
	assert.NoError(t, err)
	defer sub.Close()

	// The consumer is slow: three pushes land before the first receive.
	hub.onSnapshot([]models.Report{report("v1")})
	hub.onSnapshot([]models.Report{report("v2")})
	hub.onSnapshot([]models.Report{report("v3")})

	got := <-sub.Snapshots()
	assert.Equal(t, "v3", got[0].ID)

	select {
	case extra, ok := <-sub.Snapshots():
		if ok {
			t.Fatalf("expected no buffered intermediate snapshot, got %v", extra)
		}
	default:
	}
}

func TestSubscribe_ErrorTerminatesStream(t *testing.T) {
	hub := &fakeHub{}
	sub, err := stream.Subscribe(hub.register)
	assert.NoError(t, err)
	defer sub.Close()

	hub.onErr(errors.New("connection reset"))

	// A push after the terminal error must never reach the consumer.
	hub.onSnapshot([]models.Report{report("late")})

	for range sub.Snapshots() {
		t.Fatal("received snapshot after terminal error")
	}

	var subErr *models.SubscriptionError
	assert.ErrorAs(t, sub.Err(), &subErr)

	assert.Eventually(t, func() bool { return hub.activeCount() == 0 },
		time.Second, 5*time.Millisecond, "errored feed should be released")
}

func TestSubscribe_CloseStopsDelivery(t *testing.T) {
	hub := &fakeHub{}
	sub, err := stream.Subscribe(hub.register)
	assert.NoError(t, err)

	hub.onSnapshot([]models.Report{report("before")})
	sub.Close()
	hub.onSnapshot([]models.Report{report("after")})

	// The channel may hold the pre-close snapshot, but it must be closed and
	// must not deliver anything pushed after Close.
	for got := range sub.Snapshots() {
		assert.Equal(t, "before", got[0].ID)
	}
	assert.NoError(t, sub.Err())
	assert.Equal(t, 0, hub.activeCount())
}

func TestSubscribe_CloseIsIdempotent(t *testing.T) {
	hub := &fakeHub{}
	sub, err := stream.Subscribe(hub.register)
	assert.NoError(t, err)

	sub.Close()
	sub.Close()
	sub.Close()

	assert.Equal(t, 0, hub.activeCount())
}

func TestSubscribe_RepeatedCyclesLeaveNoListeners(t *testing.T) {
	hub := &fakeHub{}

	for i := 0; i < 50; i++ {
		sub, err := stream.Subscribe(hub.register)
		assert.NoError(t, err)
		hub.onSnapshot([]models.Report{report("x")})
		sub.Close()
	}

	assert.Equal(t, 50, hub.registered)
	assert.Equal(t, 0, hub.activeCount())
}

func TestSubscribe_IndependentSubscribers(t *testing.T) {
	hubA := &fakeHub{}
	hubB := &fakeHub{}

	subA, err := stream.Subscribe(hubA.register)
	assert.NoError(t, err)
	subB, err := stream.Subscribe(hubB.register)
	assert.NoError(t, err)

	subA.Close()

	// Closing one subscriber must not disturb the other's registration.
	assert.Equal(t, 0, hubA.activeCount())
	assert.Equal(t, 1, hubB.activeCount())

	hubB.onSnapshot([]models.Report{report("b")})
	got := <-subB.Snapshots()
	assert.Equal(t, "b", got[0].ID)

	subB.Close()
	assert.Equal(t, 0, hubB.activeCount())
}

func TestSubscribe_RegistrationFailure(t *testing.T) {
	register := func(func([]models.Report), func(error)) (stream.Feed, error) {
		return nil, errors.New("watch unsupported")
	}

	sub, err := stream.Subscribe(register)
	assert.Error(t, err)
	assert.Nil(t, sub)
}
