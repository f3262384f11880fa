package game

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"quickdraw-service/domain"
)

// Sink is the per-room broadcast capability lent by the hosting transport.
type Sink interface {
	Broadcast(event string, payload any) error
	SendTo(playerID, event string, payload any) error
	// Release closes the player's connections once they have left their seat.
	Release(playerID string) error
}

type sinkLookup interface {
	Sink(roomID string) (Sink, bool)
}

// Recorder receives lifecycle events off the room lock, in commit order.
type Recorder interface {
	Record(ctx context.Context, event domain.LifecycleEvent)
}

// Recorders fans one event out to several recorders in order.
type Recorders []Recorder

func (rs Recorders) Record(ctx context.Context, event domain.LifecycleEvent) {
	for _, r := range rs {
		r.Record(ctx, event)
	}
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, domain.LifecycleEvent) {}

// recordQueue hands events to a Recorder on one goroutine in enqueue order.
// Record never blocks, so rooms can enqueue under their lock.
type recordQueue struct {
	recorder Recorder

	mu      sync.Mutex
	pending []domain.LifecycleEvent
	closed  bool

	wake chan struct{}
	done chan struct{}
}

func newRecordQueue(recorder Recorder) *recordQueue {
	q := &recordQueue{
		recorder: recorder,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *recordQueue) Record(_ context.Context, event domain.LifecycleEvent) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending, event)
	q.mu.Unlock()
	q.signal()
}

func (q *recordQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *recordQueue) run() {
	defer close(q.done)
	for {
		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		closed := q.closed
		q.mu.Unlock()

		for _, event := range batch {
			q.recorder.Record(context.Background(), event)
		}
		if len(batch) > 0 {
			continue
		}
		if closed {
			return
		}
		<-q.wake
	}
}

// Close drains what is queued, then stops. Later events are dropped.
func (q *recordQueue) Close() {
	q.mu.Lock()
	wasClosed := q.closed
	q.closed = true
	q.mu.Unlock()
	if !wasClosed {
		q.signal()
	}
	<-q.done
}

// notifier delivers room events best-effort: a missing sink or a failed send is logged, never returned.
type notifier struct {
	roomID string
	sinks  sinkLookup
	logger *zap.Logger
}

func (n *notifier) broadcast(event string, payload any) {
	n.deliver(event, "", func(s Sink) error { return s.Broadcast(event, payload) })
}

func (n *notifier) sendTo(playerID, event string, payload any) {
	n.deliver(event, playerID, func(s Sink) error { return s.SendTo(playerID, event, payload) })
}

func (n *notifier) release(playerID string) {
	n.deliver("release", playerID, func(s Sink) error { return s.Release(playerID) })
}

func (n *notifier) deliver(event, playerID string, send func(Sink) error) {
	sink, ok := n.sinks.Sink(n.roomID)
	if !ok {
		n.logger.Warn("no broadcast sink for room",
			zap.String("room_id", n.roomID),
			zap.String("event", event))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("broadcast sink panicked",
				zap.String("room_id", n.roomID),
				zap.String("event", event),
				zap.Any("panic", r))
		}
	}()

	if err := send(sink); err != nil {
		n.logger.Warn("broadcast failed",
			zap.String("room_id", n.roomID),
			zap.String("event", event),
			zap.String("player_id", playerID),
			zap.Error(err))
	}
}
