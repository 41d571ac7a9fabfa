// Package copyx produces independent copies of message values so that the
// receivers of one message never share mutable state.
package copyx

import (
	"fmt"
	"net/netip"
	"reflect"

	"github.com/casualjim/broker/pkg/jsonx"
	"github.com/casualjim/broker/pkg/stdx"
	clone "github.com/huandu/go-clone"
)

// netip values are immutable and compare by the identity of an interned
// handle, so they are copied as plain values.
func init() {
	clone.MarkAsScalar(reflect.TypeOf(netip.Addr{}))
	clone.MarkAsScalar(reflect.TypeOf(netip.AddrPort{}))
	clone.MarkAsScalar(reflect.TypeOf(netip.Prefix{}))
}

// Func returns a copy of v that shares no mutable sub-structure with it.
// The result must have the same dynamic type as v.
type Func func(v any) (any, error)

// Cloner is implemented by values that copy themselves. Of prefers it over
// any Func.
type Cloner[T any] interface {
	Clone() T
}

// Deep copies v by walking it with reflection. Arrays, maps, slices, pointers
// and interfaces are followed, unexported struct fields are copied too, and
// pointer cycles are reproduced in the copy.
func Deep(v any) (any, error) {
	return clone.Slowly(v), nil
}

// JSON copies v by encoding and decoding it. It suits messages that are
// JSON-shaped anyway and fails for values that cannot be encoded.
func JSON(v any) (any, error) {
	return jsonx.Clone(v)
}

// Of returns an independent copy of v. A Cloner implementation wins, otherwise
// fn is used, falling back to Deep when fn is nil.
func Of[T any](v T, fn Func) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone(), nil
	}
	if fn == nil {
		fn = Deep
	}

	out, err := fn(v)
	if err != nil {
		return stdx.Zero[T](), err
	}
	if out == nil {
		return stdx.Zero[T](), nil
	}

	res, ok := out.(T)
	if !ok {
		return stdx.Zero[T](), fmt.Errorf("copyx: copy of %T produced %T", v, out)
	}
	return res, nil
}
