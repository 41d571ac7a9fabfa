package broker

import (
	"log/slog"
	"sync"

	"github.com/casualjim/broker/pkg/copyx"
	"github.com/casualjim/broker/pkg/reflectx"
	"github.com/casualjim/broker/pkg/slogx"
	"github.com/casualjim/broker/pkg/uuidx"
)

// Relay delivers every message to every subscriber, in registration order.
type Relay[T any] struct {
	id      string
	channel string
	log     *slog.Logger
	copier  copyx.Func

	mu            sync.RWMutex
	subscriptions *roster[T]
}

// NewRelay creates an empty relay dispatcher.
func NewRelay[T any](options ...Option) *Relay[T] {
	s := newSettings(options)
	r := &Relay[T]{
		id:            uuidx.Prefixed("relay"),
		channel:       s.channel,
		copier:        s.copier,
		subscriptions: newRoster[T](),
	}
	r.log = s.logger.With(slogx.LoggerName("broker.relay"), slogx.Dispatcher(r.id))
	if r.channel != "" {
		r.log = r.log.With(slogx.Channel(r.channel))
	}
	r.log.Debug("dispatcher created")
	return r
}

// ID returns the instance id assigned to this relay.
func (r *Relay[T]) ID() string {
	return r.id
}

// Channel returns the channel name the relay was created for, or "".
func (r *Relay[T]) Channel() string {
	return r.channel
}

// Len returns the number of active subscriptions.
func (r *Relay[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.subscriptions.len()
}

// Subscribe registers handler and returns its subscription.
func (r *Relay[T]) Subscribe(handler Handler[T]) (*Subscription[T], error) {
	if handler == nil {
		return nil, ErrInvalidHandler
	}

	sub := newSubscription[T]("sub-"+nextID(), "", handler, r)
	r.mu.Lock()
	r.subscriptions.add(sub)
	r.mu.Unlock()

	r.log.Debug("subscribed", slogx.Subscription(sub.id))
	return sub, nil
}

// Unsubscribe removes sub and invalidates it. Nil, already invalidated and
// foreign subscriptions are ignored.
func (r *Relay[T]) Unsubscribe(sub *Subscription[T]) {
	if sub == nil {
		return
	}
	id, _, ok := sub.claim(r)
	if !ok {
		return
	}

	r.mu.Lock()
	r.subscriptions.remove(id)
	r.mu.Unlock()

	sub.invalidate()
	r.log.Debug("unsubscribed", slogx.Subscription(id))
}

// Dispatch hands a copy of msg to each subscriber registered when the call
// started. Absent messages are dropped.
func (r *Relay[T]) Dispatch(msg T) error {
	if reflectx.IsAbsent(msg) {
		return nil
	}

	r.mu.RLock()
	subs := r.subscriptions.snapshot()
	r.mu.RUnlock()

	return deliver(subs, msg, r.copier)
}
