package broker

import (
	"fmt"

	"github.com/casualjim/broker/pkg/copyx"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dispatcher is the surface shared by relay and topic dispatchers.
// Subscribing differs per kind and is not part of it.
type Dispatcher[T any] interface {
	// ID returns the dispatcher instance id used in log records.
	ID() string
	// Channel returns the channel name the dispatcher was created for, or "".
	Channel() string
	// Unsubscribe removes sub. Nil, inactive and foreign subscriptions are ignored.
	Unsubscribe(sub *Subscription[T])
	// Dispatch delivers msg synchronously to the matching subscribers.
	Dispatch(msg T) error
}

var (
	_ Dispatcher[any] = (*Relay[any])(nil)
	_ Dispatcher[any] = (*Topic[any])(nil)
)

// roster keeps subscriptions in registration order. A nil roster is empty.
type roster[T any] struct {
	entries *orderedmap.OrderedMap[string, *Subscription[T]]
}

func newRoster[T any]() *roster[T] {
	return &roster[T]{entries: orderedmap.New[string, *Subscription[T]]()}
}

func (r *roster[T]) add(sub *Subscription[T]) {
	r.entries.Set(sub.id, sub)
}

func (r *roster[T]) remove(id string) {
	r.entries.Delete(id)
}

func (r *roster[T]) len() int {
	if r == nil {
		return 0
	}
	return r.entries.Len()
}

// snapshot copies the subscriptions in registration order. Callers hold the read lock.
func (r *roster[T]) snapshot() []*Subscription[T] {
	if r == nil {
		return nil
	}
	out := make([]*Subscription[T], 0, r.entries.Len())
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// deliver invokes every handler in subs with its own copy of msg.
func deliver[T any](subs []*Subscription[T], msg T, copier copyx.Func) error {
	for _, sub := range subs {
		m, err := copyx.Of(msg, copier)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUncopyable, err)
		}
		sub.handler(m)
	}
	return nil
}
