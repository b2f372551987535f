package rowfile

import "sync"

// Subscriber is a registry of callbacks of type T.
//
// Snapshot copies the callbacks under the lock and returns them, so callers
// invoke callbacks without holding it. A callback may therefore subscribe or
// unsubscribe while it runs; the change applies from the next snapshot.
type Subscriber[T any] struct {
	mu        sync.Mutex
	callbacks map[int64]T
	order     []int64
	nextID    int64
}

// NewSubscriber creates an empty Subscriber.
func NewSubscriber[T any]() *Subscriber[T] {
	return &Subscriber[T]{
		callbacks: make(map[int64]T),
		nextID:    1,
	}
}

// Subscribe adds callback and returns an idempotent unsubscribe function.
func (s *Subscriber[T]) Subscribe(callback T) func() error {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.callbacks[id] = callback
	s.order = append(s.order, id)
	s.mu.Unlock()

	return func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.callbacks[id]; !ok {
			return nil
		}
		delete(s.callbacks, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return nil
	}
}

// Snapshot returns the current callbacks in subscription order.
func (s *Subscriber[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]T, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.callbacks[id])
	}
	return result
}

// Len returns the number of active subscriptions.
func (s *Subscriber[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
