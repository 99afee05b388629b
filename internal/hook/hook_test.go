package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	t.Run("nil handler rejected", func(t *testing.T) {
		r := NewRegistry[int64]()
		err := r.Register("page_owner", "system", 100, nil)
		require.Error(t, err)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		r := NewRegistry[int64]()
		err := r.Register("", "system", 100, func(prev int64, _ map[string]any) int64 { return prev })
		require.Error(t, err)
	})

	t.Run("count tracks registrations per hook", func(t *testing.T) {
		r := NewRegistry[int64]()
		noop := func(prev int64, _ map[string]any) int64 { return 0 }
		require.NoError(t, r.Register("page_owner", "system", 100, noop))
		require.NoError(t, r.Register("page_owner", "system", 50, noop))
		require.NoError(t, r.Register("other", "system", 1, noop))

		assert.Equal(t, 2, r.Count("page_owner", "system"))
		assert.Equal(t, 1, r.Count("other", "system"))
		assert.Equal(t, 0, r.Count("page_owner", "request"))
	})
}

func TestRegistry_Trigger(t *testing.T) {
	t.Run("no handlers returns initial value", func(t *testing.T) {
		r := NewRegistry[int64]()
		assert.Equal(t, int64(7), r.Trigger("page_owner", "system", 7, nil))
	})

	t.Run("first non-zero result short-circuits", func(t *testing.T) {
		r := NewRegistry[int64]()
		var calls []string
		r.MustRegister("h", "t", 10, func(prev int64, _ map[string]any) int64 {
			calls = append(calls, "first")
			return 42
		})
		r.MustRegister("h", "t", 20, func(prev int64, _ map[string]any) int64 {
			calls = append(calls, "second")
			return 99
		})

		assert.Equal(t, int64(42), r.Trigger("h", "t", 0, nil))
		assert.Equal(t, []string{"first"}, calls)
	})

	t.Run("zero results fall through the chain", func(t *testing.T) {
		r := NewRegistry[int64]()
		r.MustRegister("h", "t", 10, func(prev int64, _ map[string]any) int64 { return 0 })
		r.MustRegister("h", "t", 20, func(prev int64, _ map[string]any) int64 { return 5 })

		assert.Equal(t, int64(5), r.Trigger("h", "t", 0, nil))
	})

	t.Run("priority order beats registration order", func(t *testing.T) {
		r := NewRegistry[int64]()
		r.MustRegister("h", "t", 200, func(prev int64, _ map[string]any) int64 { return 1 })
		r.MustRegister("h", "t", 100, func(prev int64, _ map[string]any) int64 { return 2 })

		assert.Equal(t, int64(2), r.Trigger("h", "t", 0, nil))
	})

	t.Run("equal priority runs in registration order", func(t *testing.T) {
		r := NewRegistry[int64]()
		r.MustRegister("h", "t", 100, func(prev int64, _ map[string]any) int64 { return 1 })
		r.MustRegister("h", "t", 100, func(prev int64, _ map[string]any) int64 { return 2 })

		assert.Equal(t, int64(1), r.Trigger("h", "t", 0, nil))
	})

	t.Run("previous value threads through handlers", func(t *testing.T) {
		r := NewRegistry[string]()
		var seen string
		r.MustRegister("h", "t", 10, func(prev string, _ map[string]any) string { return "" })
		r.MustRegister("h", "t", 20, func(prev string, _ map[string]any) string {
			seen = prev
			return "done"
		})

		assert.Equal(t, "done", r.Trigger("h", "t", "start", nil))
		assert.Equal(t, "start", seen)
	})

	t.Run("params reach the handler", func(t *testing.T) {
		r := NewRegistry[int64]()
		r.MustRegister("h", "t", 10, func(prev int64, params map[string]any) int64 {
			if params["boost"] == true {
				return 10
			}
			return 0
		})

		assert.Equal(t, int64(10), r.Trigger("h", "t", 0, map[string]any{"boost": true}))
		assert.Equal(t, int64(0), r.Trigger("h", "t", 0, nil))
	})
}
