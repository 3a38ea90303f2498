package a11y

import "sync"

// SpeechQueue orders announcements by the priority policy:
// Low appends and never interrupts; Medium appends and interrupts a
// Low announcement currently being spoken; High flushes the queue and
// speaks immediately. Stop flushes everything.
//
// The queue models the utterance being spoken as "current"; Advance
// moves to the next pending announcement when the host reports the
// current one finished.
type SpeechQueue struct {
	mu      sync.Mutex
	current *Announcement
	pending []Announcement
}

// NewSpeechQueue returns an idle queue.
func NewSpeechQueue() *SpeechQueue {
	return &SpeechQueue{}
}

// Enqueue adds a according to its priority policy.
func (q *SpeechQueue) Enqueue(a Announcement) {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch a.Priority {
	case PriorityHigh:
		q.pending = q.pending[:0]
		q.current = &a
	case PriorityMedium:
		if q.current != nil && q.current.Priority == PriorityLow {
			q.current = &a
			return
		}
		q.enqueueLocked(a)
	default:
		q.enqueueLocked(a)
	}
}

func (q *SpeechQueue) enqueueLocked(a Announcement) {
	if q.current == nil {
		q.current = &a
		return
	}
	q.pending = append(q.pending, a)
}

// Current returns the announcement being spoken, if any.
func (q *SpeechQueue) Current() (Announcement, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.current == nil {
		return Announcement{}, false
	}
	return *q.current, true
}

// Pending returns how many announcements wait behind the current one.
func (q *SpeechQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Advance marks the current announcement finished and promotes the
// next pending one. It reports whether anything is now being spoken.
func (q *SpeechQueue) Advance() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		q.current = nil
		return false
	}
	next := q.pending[0]
	q.pending = q.pending[1:]
	q.current = &next
	return true
}

// Stop flushes the current announcement and everything pending.
func (q *SpeechQueue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.current = nil
	q.pending = nil
}
