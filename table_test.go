package systab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func addWords(a uint64, b uint64) uint64 {
	return a + b
}

func alwaysFails() (struct{}, error) {
	return struct{}{}, ENOENT
}

func TestCallByNum(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Register(3, "add", addWords))
	require.NoError(t, tab.Register(7, "fail", alwaysFails))

	require.Equal(t, int64(6), tab.Call(3, 2, 4))
	require.Equal(t, int64(-2), tab.Call(7))
	require.Equal(t, ENOSYS.Canon(), tab.Call(99))
}

func TestCallMatchesDirectCall(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Register(3, "add", addWords))
	require.Equal(t, int64(addWords(2, 4)), tab.Call(3, 2, 4))
}

func TestMissingNumHasNoSideEffect(t *testing.T) {
	tab := New()
	calls := 0
	require.NoError(t, tab.Register(1, "probe", func() uint64 {
		calls++
		return 0
	}))
	require.Equal(t, ENOSYS.Canon(), tab.Call(42))
	require.Equal(t, 0, calls)
	require.Equal(t, 1, tab.Len())
}

func TestDuplicateName(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Register(1, "add", addWords))
	err := tab.Register(2, "add", addWords)
	require.ErrorIs(t, err, DupName)
}

func TestDuplicateNumFirstMatchWins(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Register(5, "first", func() uint64 { return 1 }))
	require.NoError(t, tab.Register(5, "second", func() uint64 { return 2 }))
	require.Equal(t, int64(1), tab.Call(5))
}

func TestRegisterRejects(t *testing.T) {
	tab := New()
	require.Error(t, tab.Register(1, "notafunc", 42))
	require.Error(t, tab.Register(2, "variadic", func(args ...uint64) uint64 { return 0 }))
	require.Error(t, tab.Register(3, "toomany", func(a, b, c, d, e, f, g uint64) uint64 { return 0 }))
	require.Error(t, tab.Register(4, "badparam", func(f float64) uint64 { return 0 }))
	require.Error(t, tab.Register(5, "badret", func() float64 { return 0 }))
	require.Error(t, tab.Register(6, "tworets", func() (uint64, uint64) { return 0, 0 }))
	require.Equal(t, 0, tab.Len())
}

func TestDirectCallBypassesTable(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Register(3, "add", addWords))

	require.Equal(t, uint64(6), addWords(2, 4))
	require.Equal(t, uint64(0), tab.Scans(), "direct call must not scan the table")

	tab.Call(3, 2, 4)
	require.Equal(t, uint64(1), tab.Scans())

	_, ok := tab.LookupName("add")
	require.True(t, ok)
	require.Equal(t, uint64(1), tab.Scans(), "name lookup must not scan the table")
}

func TestArity(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Register(3, "add", addWords))
	sys, ok := tab.LookupName("add")
	require.True(t, ok)
	require.Equal(t, 2, sys.Arity())
}

// The queue is package state, so its semantics are checked in one sitting:
// contribution order, exactly-once per walk, error propagation, and the
// documented double-registration hazard of a second walk.
func TestRunConstructors(t *testing.T) {
	tab := New()
	var order []string
	AddCtor(func() error {
		order = append(order, "a")
		return tab.Register(1, "a", func() uint64 { return 1 })
	})
	Batch(
		func() error {
			order = append(order, "b")
			return tab.Register(2, "b", func() uint64 { return 2 })
		},
		func() error {
			order = append(order, "c")
			return tab.Register(3, "c", func() uint64 { return 3 })
		},
	)

	require.NoError(t, RunConstructors())
	require.Equal(t, []string{"a", "b", "c"}, order)
	require.Equal(t, 3, tab.Len())
	require.Equal(t, int64(1), tab.Call(1))
	require.Equal(t, int64(2), tab.Call(2))
	require.Equal(t, int64(3), tab.Call(3))

	// second walk re-runs every constructor: the names collide and the
	// walk stops at the first error
	err := RunConstructors()
	require.ErrorIs(t, err, DupName)
	require.Equal(t, []string{"a", "b", "c", "a"}, order)

	// a queued registration error surfaces only at walk time
	ExportTo(tab, 4, "broken", "not a function")
	require.Len(t, order, 4)
}
