package broker

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// tracker numbers subscriptions for the whole process, so ids never repeat
// across dispatchers.
var tracker atomic.Uint64

func nextID() string {
	return strconv.FormatUint(tracker.Add(1)-1, 10)
}

// Handler receives a dispatched message. Every invocation gets its own copy.
type Handler[T any] func(msg T)

// Extractor computes the topic a message is delivered to.
type Extractor[T any] func(msg T) string

type unsubscriber[T any] interface {
	Unsubscribe(*Subscription[T])
}

// Subscription is the handle for one handler registered with a dispatcher.
//
// Once unsubscribed, ID and Topic return "" and Unsubscribe does nothing.
type Subscription[T any] struct {
	handler Handler[T]

	mu    sync.RWMutex
	id    string
	topic string
	owner unsubscriber[T]
}

func newSubscription[T any](id, topic string, handler Handler[T], owner unsubscriber[T]) *Subscription[T] {
	return &Subscription[T]{
		id:      id,
		topic:   topic,
		handler: handler,
		owner:   owner,
	}
}

// ID returns the process-unique subscription id, or "" once unsubscribed.
func (s *Subscription[T]) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Topic returns the topic the subscription was registered under. It is ""
// for relay subscriptions and once unsubscribed.
func (s *Subscription[T]) Topic() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.topic
}

// Handler returns the handler that was subscribed.
func (s *Subscription[T]) Handler() Handler[T] {
	return s.handler
}

// Active reports whether the subscription still receives messages.
func (s *Subscription[T]) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owner != nil
}

// Unsubscribe removes the subscription from its dispatcher. Calling it again
// is a no-op.
func (s *Subscription[T]) Unsubscribe() {
	s.mu.RLock()
	owner := s.owner
	s.mu.RUnlock()

	if owner != nil {
		owner.Unsubscribe(s)
	}
}

// claim returns the id and topic when the subscription is active and belongs to owner.
func (s *Subscription[T]) claim(owner unsubscriber[T]) (id, topic string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.owner == nil || s.owner != owner || s.id == "" {
		return "", "", false
	}
	return s.id, s.topic, true
}

func (s *Subscription[T]) invalidate() {
	s.mu.Lock()
	s.id = ""
	s.topic = ""
	s.owner = nil
	s.mu.Unlock()
}
