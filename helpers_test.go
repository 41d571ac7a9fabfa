package broker

import (
	"net/netip"
	"sync"
)

type message struct {
	Type  string
	Count int
	Tags  []string
	Attrs map[string]any
}

// envelope carries state a shallow or exported-only copy would lose: arrays
// of references, a value type with unexported fields and a private ring of
// hops that points back at itself.
type envelope struct {
	Kind    string
	Buckets [2][]string
	Origin  netip.Addr
	route   *hop
}

type hop struct {
	Name string
	Next *hop
}

func newEnvelope(kind string) envelope {
	first := &hop{Name: "edge"}
	first.Next = &hop{Name: "core", Next: first}
	return envelope{
		Kind:    kind,
		Buckets: [2][]string{{"orig"}, {"spare"}},
		Origin:  netip.MustParseAddr("10.0.0.1"),
		route:   first,
	}
}

// recorder collects the messages handed to the handlers it creates, tagged
// with the handler name, in call order.
type recorder struct {
	mu    sync.Mutex
	calls []call
}

type call struct {
	name string
	msg  message
}

func (r *recorder) handler(name string) Handler[message] {
	return func(msg message) {
		r.mu.Lock()
		r.calls = append(r.calls, call{name: name, msg: msg})
		r.mu.Unlock()
	}
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		names = append(names, c.name)
	}
	return names
}

func (r *recorder) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

func (r *recorder) messages(name string) []message {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []message
	for _, c := range r.calls {
		if c.name == name {
			out = append(out, c.msg)
		}
	}
	return out
}

func byType(m message) string {
	return m.Type
}
