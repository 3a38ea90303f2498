package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oakui/oak/component"
)

func custom(n int) Event {
	return New(component.ID(1), Custom{Name: "n", Data: n})
}

func customData(ev Event) int {
	return ev.Type.(Custom).Data.(int)
}

func TestSingleSubscriberReceivesInOrder(t *testing.T) {
	bus := NewBus(10)
	sender := bus.Sender()
	recv := bus.Subscribe()

	for i := 0; i < 5; i++ {
		sender.Send(custom(i))
	}

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		ev, err := recv.Recv(ctx)
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
		if got := customData(ev); got != i {
			t.Fatalf("expected event %d, got %d", i, got)
		}
	}

	if _, _, ok := recv.TryRecv(); ok {
		t.Fatalf("expected receiver to be drained")
	}
}

func TestAllSubscribersSeeSameTotalOrder(t *testing.T) {
	bus := NewBus(16)
	sender := bus.Sender()
	a := bus.Subscribe()
	b := bus.Subscribe()

	for i := 0; i < 8; i++ {
		sender.Send(custom(i))
	}

	ctx := context.Background()
	for i := 0; i < 8; i++ {
		evA, err := a.Recv(ctx)
		if err != nil {
			t.Fatalf("subscriber a error: %v", err)
		}
		evB, err := b.Recv(ctx)
		if err != nil {
			t.Fatalf("subscriber b error: %v", err)
		}
		if customData(evA) != i || customData(evB) != i {
			t.Fatalf("order diverged at %d: a=%d b=%d", i, customData(evA), customData(evB))
		}
	}
}

func TestSlowSubscriberLags(t *testing.T) {
	bus := NewBus(4)
	sender := bus.Sender()
	recv := bus.Subscribe()

	// Emit 7 events into a ring of 4: the oldest 3 are dropped.
	for i := 0; i < 7; i++ {
		sender.Send(custom(i))
	}

	_, err := recv.Recv(context.Background())
	var lag Lagged
	if !errors.As(err, &lag) {
		t.Fatalf("expected Lagged, got %v", err)
	}
	if lag.Missed != 3 {
		t.Fatalf("expected 3 missed events, got %d", lag.Missed)
	}

	// The receive after the lag signal resumes with the oldest retained.
	ev, err := recv.Recv(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := customData(ev); got != 3 {
		t.Fatalf("expected event 3 after lag, got %d", got)
	}
}

func TestLateSubscriberGetsNoBackfill(t *testing.T) {
	bus := NewBus(8)
	sender := bus.Sender()

	sender.Send(custom(0))
	sender.Send(custom(1))

	recv := bus.Subscribe()
	if _, _, ok := recv.TryRecv(); ok {
		t.Fatalf("late subscriber must not see past events")
	}

	sender.Send(custom(2))
	ev, err := recv.Recv(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := customData(ev); got != 2 {
		t.Fatalf("expected only the post-subscription event, got %d", got)
	}
}

func TestRecvCancellation(t *testing.T) {
	bus := NewBus(4)
	recv := bus.Subscribe()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := recv.Recv(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	// Cancellation does not consume: the next emission is delivered.
	bus.Sender().Send(custom(9))
	ev, err := recv.Recv(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := customData(ev); got != 9 {
		t.Fatalf("expected event 9, got %d", got)
	}
}

func TestClonedSendersShareRing(t *testing.T) {
	bus := NewBus(8)
	s1 := bus.Sender()
	s2 := s1.Clone()
	recv := bus.Subscribe()

	s1.Send(custom(1))
	s2.Send(custom(2))

	ctx := context.Background()
	ev1, err := recv.Recv(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ev2, err := recv.Recv(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customData(ev1) != 1 || customData(ev2) != 2 {
		t.Fatalf("cloned senders must interleave into one ring, got %d then %d",
			customData(ev1), customData(ev2))
	}
}

func TestRecvWakesOnSend(t *testing.T) {
	bus := NewBus(4)
	recv := bus.Subscribe()

	done := make(chan Event, 1)
	go func() {
		ev, err := recv.Recv(context.Background())
		if err == nil {
			done <- ev
		}
	}()

	time.Sleep(10 * time.Millisecond)
	bus.Sender().Send(custom(7))

	select {
	case ev := <-done:
		if got := customData(ev); got != 7 {
			t.Fatalf("expected event 7, got %d", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("receiver did not wake after send")
	}
}

func TestPendingAndDefaultCapacity(t *testing.T) {
	bus := NewBus(0)
	sender := bus.Sender()
	recv := bus.Subscribe()

	for i := 0; i < DefaultCapacity+10; i++ {
		sender.Send(custom(i))
	}
	if got := recv.Pending(); got != DefaultCapacity {
		t.Fatalf("pending is capped at capacity, got %d", got)
	}
}

func TestTimestampIsSet(t *testing.T) {
	ev := New(3, Click{})
	if ev.Timestamp == 0 {
		t.Fatalf("expected a timestamp to be captured at construction")
	}
	if ev.Target != 3 {
		t.Fatalf("expected target 3, got %d", ev.Target)
	}
}
