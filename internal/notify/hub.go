// Package notify fans new pending attempts out to the teachers watching them.
package notify

import "sync"

// Event announces an attempt waiting for its task author's grade.
type Event struct {
	AttemptID   int64  `json:"attempt_id"`
	TaskID      int64  `json:"task_id"`
	StudentID   int64  `json:"student_id"`
	Answer      string `json:"answer"`
	SystemGrade *int   `json:"system_grade"`
	AuthorID    int64  `json:"-"`
}

// Hub routes events to the subscriptions of the event's author.
// Publish never blocks: when a subscriber's buffer is full the event is
// dropped and the subscriber picks it up on its next resync.
type Hub struct {
	mu     sync.Mutex
	subs   map[int64]map[*Subscription]struct{}
	buffer int
	closed bool
}

func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:   make(map[int64]map[*Subscription]struct{}),
		buffer: buffer,
	}
}

type Subscription struct {
	hub       *Hub
	teacherID int64
	events    chan Event
	once      sync.Once
}

// Subscribe registers interest in the events of one teacher. The returned
// subscription must be closed. Subscribing to a closed hub yields an already
// closed subscription.
func (h *Hub) Subscribe(teacherID int64) *Subscription {
	s := &Subscription{hub: h, teacherID: teacherID, events: make(chan Event, h.buffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		s.once.Do(func() { close(s.events) })
		return s
	}
	if h.subs[teacherID] == nil {
		h.subs[teacherID] = make(map[*Subscription]struct{})
	}
	h.subs[teacherID][s] = struct{}{}
	return s
}

// Publish reports how many subscribers received the event.
func (h *Hub) Publish(e Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for s := range h.subs[e.AuthorID] {
		select {
		case s.events <- e:
			delivered++
		default:
		}
	}
	return delivered
}

// Close ends every subscription. Later publishes are no-ops.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for teacherID, subs := range h.subs {
		for s := range subs {
			s.once.Do(func() { close(s.events) })
		}
		delete(h.subs, teacherID)
	}
}

// Events is closed when the subscription or the hub closes.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

func (s *Subscription) Close() {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs := h.subs[s.teacherID]; subs != nil {
		delete(subs, s)
		if len(subs) == 0 {
			delete(h.subs, s.teacherID)
		}
	}
	s.once.Do(func() { close(s.events) })
}
