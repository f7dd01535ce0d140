// Package event provides a minimal typed subscription mechanism.
//
// Rendering adapters emit events (a header was activated, a cell was
// double-clicked, an input lost focus) and the widget subscribes its
// controllers to them. Nothing here knows about HTML or terminals.
//
// Sources are not safe for concurrent use. Handlers run synchronously in
// subscription order and each Emit completes before the next one starts.
package event

// Handler receives one event value.
type Handler[T any] func(T)

// Source is a stream of events of type T.
type Source[T any] struct {
	handlers []Handler[T]
}

// Subscribe registers h to receive every subsequent event.
func (s *Source[T]) Subscribe(h Handler[T]) {
	if h == nil {
		return
	}
	s.handlers = append(s.handlers, h)
}

// Emit delivers v to every handler.
func (s *Source[T]) Emit(v T) {
	for _, h := range s.handlers {
		h(v)
	}
}

// Subscribers returns the number of registered handlers.
func (s *Source[T]) Subscribers() int {
	return len(s.handlers)
}
