package event

import (
	"context"
	"fmt"
	"sync"
)

// DefaultCapacity is the ring size used when NewBus is given a
// non-positive capacity.
const DefaultCapacity = 100

// Lagged is the receive result for a subscriber that fell more than
// the ring capacity behind the head. Missed reports how many events
// were skipped; the receiver's cursor has been advanced past them and
// the next receive resumes with the oldest retained event.
type Lagged struct {
	Missed uint64
}

func (l Lagged) Error() string {
	return fmt.Sprintf("receiver lagged, %d events skipped", l.Missed)
}

// Bus is a bounded multi-producer, multi-consumer broadcast channel.
// Every subscriber observes emissions in the same total order. Sending
// never blocks and never fails: a subscriber that does not drain within
// the ring capacity loses its oldest pending events and observes a
// Lagged result on its next receive. Subscribing after an emission does
// not backfill past events.
type Bus struct {
	mu     sync.Mutex
	buf    []Event
	cap    uint64
	head   uint64 // sequence number of the next emission
	notify chan struct{}
}

// NewBus creates a bus with the given ring capacity. Non-positive
// capacities fall back to DefaultCapacity.
func NewBus(capacity int) *Bus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bus{
		buf:    make([]Event, capacity),
		cap:    uint64(capacity),
		notify: make(chan struct{}),
	}
}

// Sender returns a sending handle. Handles may be cloned and used from
// any goroutine; all of them write into the same ring.
func (b *Bus) Sender() Sender {
	return Sender{bus: b}
}

// Subscribe registers a new receiver positioned at the current head.
func (b *Bus) Subscribe() *Receiver {
	b.mu.Lock()
	defer b.mu.Unlock()
	return &Receiver{bus: b, next: b.head}
}

func (b *Bus) send(ev Event) {
	b.mu.Lock()
	b.buf[b.head%b.cap] = ev
	b.head++
	// Wake all waiting receivers, then arm a fresh gate.
	close(b.notify)
	b.notify = make(chan struct{})
	b.mu.Unlock()
}

// Sender emits events into a bus. The zero value is invalid; obtain
// one from Bus.Sender.
type Sender struct {
	bus *Bus
}

// Send emits ev. It never blocks and never observes subscriber lag.
func (s Sender) Send(ev Event) {
	s.bus.send(ev)
}

// Clone returns another handle writing into the same ring.
func (s Sender) Clone() Sender {
	return Sender{bus: s.bus}
}

// Receiver is a subscriber cursor into the bus ring. Not safe for
// concurrent use by multiple goroutines; subscribe once per consumer.
type Receiver struct {
	bus  *Bus
	next uint64
}

// Recv returns the next event in emission order. It suspends until an
// event is available or ctx is done; cancellation returns ctx.Err()
// without consuming a slot. If the receiver fell behind by more than
// the ring capacity it returns a Lagged error reporting the number of
// skipped events and repositions at the oldest retained event.
func (r *Receiver) Recv(ctx context.Context) (Event, error) {
	for {
		r.bus.mu.Lock()
		if ev, err, ok := r.takeLocked(); ok {
			r.bus.mu.Unlock()
			return ev, err
		}
		gate := r.bus.notify
		r.bus.mu.Unlock()

		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-gate:
		}
	}
}

// TryRecv returns the next event without suspending. ok is false when
// the receiver is up to date.
func (r *Receiver) TryRecv() (Event, error, bool) {
	r.bus.mu.Lock()
	defer r.bus.mu.Unlock()
	ev, err, ok := r.takeLocked()
	return ev, err, ok
}

// Pending reports how many events are buffered for this receiver,
// capped at the ring capacity.
func (r *Receiver) Pending() int {
	r.bus.mu.Lock()
	defer r.bus.mu.Unlock()
	n := r.bus.head - r.next
	if n > r.bus.cap {
		n = r.bus.cap
	}
	return int(n)
}

func (r *Receiver) takeLocked() (Event, error, bool) {
	b := r.bus
	if b.head > b.cap && r.next < b.head-b.cap {
		missed := (b.head - b.cap) - r.next
		r.next = b.head - b.cap
		return Event{}, Lagged{Missed: missed}, true
	}
	if r.next < b.head {
		ev := b.buf[r.next%b.cap]
		r.next++
		return ev, nil, true
	}
	return Event{}, nil, false
}
