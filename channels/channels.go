// Package channels memoizes dispatchers by channel name.
//
// A channel is created on first request and lives for the rest of the process;
// every later request for the same name returns the same dispatcher. Registries
// are plain values so that tests can build their own, Relay and Topic use
// process-wide registries for untyped messages.
package channels

import (
	"slices"

	"github.com/casualjim/broker"
	"github.com/casualjim/broker/internal/registry"
	"github.com/casualjim/broker/pkg/stdx"
)

// Relays is a registry of relay dispatchers.
type Relays[T any] struct {
	channels registry.Registry[*broker.Relay[T]]
	options  []broker.Option
}

// NewRelays creates an empty registry. The options are applied to every
// dispatcher it creates.
func NewRelays[T any](options ...broker.Option) *Relays[T] {
	return &Relays[T]{
		channels: registry.New[*broker.Relay[T]](),
		options:  options,
	}
}

// Get returns the relay dispatcher for name, creating it on first use.
func (m *Relays[T]) Get(name string) (*broker.Relay[T], error) {
	if name == "" {
		return nil, broker.ErrInvalidChannelName
	}

	ch, _ := m.channels.GetOrAdd(name, func() *broker.Relay[T] {
		return broker.NewRelay[T](tagged(m.options, name)...)
	})
	return ch, nil
}

// Names returns the names of the channels created so far, sorted.
func (m *Relays[T]) Names() []string {
	return m.channels.Names()
}

// Topics is a registry of topic dispatchers.
type Topics[T any] struct {
	channels registry.Registry[*broker.Topic[T]]
	options  []broker.Option
}

// NewTopics creates an empty registry. The options are applied to every
// dispatcher it creates.
func NewTopics[T any](options ...broker.Option) *Topics[T] {
	return &Topics[T]{
		channels: registry.New[*broker.Topic[T]](),
		options:  options,
	}
}

// Get returns the topic dispatcher for name, creating it with extract on
// first use. An existing channel keeps the extractor it was created with and
// extract is ignored; it may then be nil.
func (m *Topics[T]) Get(name string, extract broker.Extractor[T]) (*broker.Topic[T], error) {
	if name == "" {
		return nil, broker.ErrInvalidChannelName
	}
	if ch, ok := m.channels.Get(name); ok {
		return ch, nil
	}
	if extract == nil {
		return nil, broker.ErrMissingExtractor
	}

	ch, _ := m.channels.GetOrAdd(name, func() *broker.Topic[T] {
		return stdx.Must1(broker.NewTopic(extract, tagged(m.options, name)...))
	})
	return ch, nil
}

// Names returns the names of the channels created so far, sorted.
func (m *Topics[T]) Names() []string {
	return m.channels.Names()
}

func tagged(options []broker.Option, name string) []broker.Option {
	return append(slices.Clip(options), broker.WithChannel(name))
}

var (
	relays = NewRelays[any]()
	topics = NewTopics[any]()
)

// Relay returns the process-wide relay channel called name.
func Relay(name string) (*broker.Relay[any], error) {
	return relays.Get(name)
}

// Topic returns the process-wide topic channel called name. The extractor is
// required the first time a name is requested and ignored afterwards.
func Topic(name string, extract broker.Extractor[any]) (*broker.Topic[any], error) {
	return topics.Get(name, extract)
}
