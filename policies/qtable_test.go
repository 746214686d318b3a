package policies

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQTable(t *testing.T) {
	q := NewQTable()

	require.False(t, q.HasState("s"))
	require.Equal(t, 2.0, q.Get("s", "a", 2))
	// the read materialized the default
	require.True(t, q.HasState("s"))
	require.Equal(t, 2.0, q.Get("s", "a", 0))

	q.Set("s", "b", 5)
	row, ok := q.GetAll("s")
	require.True(t, ok)
	require.Equal(t, map[string]float64{"a": 2, "b": 5}, row)

	_, ok = q.GetAll("missing")
	require.False(t, ok)
}

func TestQTableMax(t *testing.T) {
	q := NewQTable()

	action, val := q.Max("s", -1)
	require.Equal(t, "", action)
	require.Equal(t, -1.0, val)

	q.Set("s", "a", 1)
	q.Set("s", "b", 3)
	q.Set("s", "c", -7)
	action, val = q.Max("s", 0)
	require.Equal(t, "b", action)
	require.Equal(t, 3.0, val)
}

func TestQTableMaxAmong(t *testing.T) {
	q := NewQTable()
	q.Set("s", "a", 1)
	q.Set("s", "b", 3)

	// b is not offered, missing c materializes at the default
	action, val := q.MaxAmong("s", []string{"a", "c"}, 0)
	require.Equal(t, "a", action)
	require.Equal(t, 1.0, val)
	require.Equal(t, 0.0, q.Get("s", "c", 0))
}
