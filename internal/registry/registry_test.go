package registry

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type channel struct {
	name string
}

func TestRegistry(t *testing.T) {
	t.Run("get missing", func(t *testing.T) {
		reg := New[*channel]()
		v, ok := reg.Get("nope")
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("get or add memoizes", func(t *testing.T) {
		reg := New[*channel]()
		calls := 0
		create := func() *channel {
			calls++
			return &channel{name: "orders"}
		}

		first, loaded := reg.GetOrAdd("orders", create)
		require.False(t, loaded)
		second, loaded := reg.GetOrAdd("orders", create)
		require.True(t, loaded)

		assert.Same(t, first, second)
		assert.Equal(t, 1, calls)

		got, ok := reg.Get("orders")
		require.True(t, ok)
		assert.Same(t, first, got)
	})

	t.Run("names are sorted", func(t *testing.T) {
		reg := New[*channel]()
		for _, name := range []string{"c", "a", "b"} {
			reg.GetOrAdd(name, func() *channel { return &channel{name: name} })
		}
		assert.Equal(t, []string{"a", "b", "c"}, reg.Names())
		assert.Equal(t, 3, reg.Len())
	})

	t.Run("concurrent get or add yields one visible value", func(t *testing.T) {
		reg := New[*channel]()
		var created atomic.Int32
		results := make([]*channel, 32)

		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = reg.GetOrAdd("shared", func() *channel {
					created.Add(1)
					return &channel{name: fmt.Sprintf("shared-%d", i)}
				})
			}(i)
		}
		wg.Wait()

		stored, ok := reg.Get("shared")
		require.True(t, ok)
		for _, r := range results {
			assert.Same(t, stored, r)
		}
		assert.GreaterOrEqual(t, created.Load(), int32(1))
		assert.Equal(t, 1, reg.Len())
	})
}
