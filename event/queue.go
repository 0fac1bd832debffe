package event

import (
	"sync/atomic"

	"github.com/lixenwraith/geometry-fighter/parameter"
)

type slot struct {
	ev    GameEvent
	ready atomic.Bool // Set after ev is written, cleared by the consumer
}

// EventQueue is a lock-free MPSC ring of input events
// Producers are the input pollers, the single consumer is the game tick
//
// When the ring is full a touch is dropped, it would only aim at a stale frame
// Control events (pause, restart, quit, mute) are never refused and evict the oldest pending event
type EventQueue struct {
	slots   [parameter.EventQueueSize]slot
	head    atomic.Uint64 // Next slot to consume
	tail    atomic.Uint64 // Next slot to claim
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push enqueues ev, returns false if it was dropped
func (q *EventQueue) Push(ev GameEvent) bool {
	for {
		tail := q.tail.Load()
		if ev.Type == EventTouch && tail-q.head.Load() >= parameter.EventQueueSize {
			q.dropped.Add(1)
			return false
		}
		if !q.tail.CompareAndSwap(tail, tail+1) {
			continue
		}

		s := &q.slots[tail&parameter.EventBufferMask]
		s.ev = ev
		s.ready.Store(true)

		if head := q.head.Load(); tail+1-head > parameter.EventQueueSize {
			if q.head.CompareAndSwap(head, tail+1-parameter.EventQueueSize) {
				q.dropped.Add(1)
			}
		}
		return true
	}
}

// Consume returns the pending events in FIFO order
// Stops early at a slot whose producer has not finished writing, the rest is left for the next tick
func (q *EventQueue) Consume() []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		n := tail - head
		if n > parameter.EventQueueSize {
			n = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, n)
		for i := uint64(0); i < n; i++ {
			s := &q.slots[(head+i)&parameter.EventBufferMask]
			if !s.ready.Load() {
				break
			}
			out = append(out, s.ev)
			s.ready.Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns the approximate pending count
func (q *EventQueue) Len() int {
	head, tail := q.head.Load(), q.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, parameter.EventQueueSize))
}

// TakeDropped returns the number of events lost since the last call and resets it
func (q *EventQueue) TakeDropped() uint64 {
	return q.dropped.Swap(0)
}
