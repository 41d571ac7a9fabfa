package broker

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/casualjim/broker/pkg/copyx"
	"github.com/casualjim/broker/pkg/reflectx"
	"github.com/casualjim/broker/pkg/slogx"
	"github.com/casualjim/broker/pkg/uuidx"
)

// Topic delivers a message only to the subscribers of the topic its
// extractor computes for that message.
type Topic[T any] struct {
	id      string
	channel string
	log     *slog.Logger
	copier  copyx.Func
	extract Extractor[T]

	mu     sync.RWMutex
	topics map[string]*roster[T]
}

// NewTopic creates a topic dispatcher routing with extract.
func NewTopic[T any](extract Extractor[T], options ...Option) (*Topic[T], error) {
	if extract == nil {
		return nil, ErrMissingExtractor
	}

	s := newSettings(options)
	t := &Topic[T]{
		id:      uuidx.Prefixed("topic"),
		channel: s.channel,
		copier:  s.copier,
		extract: extract,
		topics:  make(map[string]*roster[T]),
	}
	t.log = s.logger.With(slogx.LoggerName("broker.topic"), slogx.Dispatcher(t.id))
	if t.channel != "" {
		t.log = t.log.With(slogx.Channel(t.channel))
	}
	t.log.Debug("dispatcher created")
	return t, nil
}

// ID returns the instance id assigned to this topic.
func (t *Topic[T]) ID() string {
	return t.id
}

// Channel returns the channel name the topic was created for, or "".
func (t *Topic[T]) Channel() string {
	return t.channel
}

// Len returns the number of active subscriptions for topic.
func (t *Topic[T]) Len(topic string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.topics[topic].len()
}

// Topics returns the topics that currently have subscribers, sorted.
func (t *Topic[T]) Topics() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.topics))
}

// Subscribe registers handler for messages whose extracted topic equals topic.
func (t *Topic[T]) Subscribe(topic string, handler Handler[T]) (*Subscription[T], error) {
	if topic == "" {
		return nil, ErrInvalidTopic
	}
	if handler == nil {
		return nil, ErrInvalidHandler
	}

	sub := newSubscription[T](topic+"-"+nextID(), topic, handler, t)
	t.mu.Lock()
	subs, ok := t.topics[topic]
	if !ok {
		subs = newRoster[T]()
		t.topics[topic] = subs
	}
	subs.add(sub)
	t.mu.Unlock()

	t.log.Debug("subscribed", slogx.Subscription(sub.id), slogx.Topic(topic))
	return sub, nil
}

// Unsubscribe removes sub and invalidates it. Nil, already invalidated and
// foreign subscriptions are ignored.
func (t *Topic[T]) Unsubscribe(sub *Subscription[T]) {
	if sub == nil {
		return
	}
	id, topic, ok := sub.claim(t)
	if !ok {
		return
	}

	t.mu.Lock()
	if subs, found := t.topics[topic]; found {
		subs.remove(id)
		if subs.len() == 0 {
			delete(t.topics, topic)
		}
	}
	t.mu.Unlock()

	sub.invalidate()
	t.log.Debug("unsubscribed", slogx.Subscription(id), slogx.Topic(topic))
}

// Dispatch hands a copy of msg to each subscriber of the message's topic
// registered when the call started. Absent messages and topics without
// subscribers are dropped.
func (t *Topic[T]) Dispatch(msg T) error {
	if reflectx.IsAbsent(msg) {
		return nil
	}

	probe, err := copyx.Of(msg, t.copier)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUncopyable, err)
	}
	topic := t.extract(probe)

	t.mu.RLock()
	subs := t.topics[topic].snapshot()
	t.mu.RUnlock()

	return deliver(subs, msg, t.copier)
}
