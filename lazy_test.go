package foldcore

import (
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapped_IsLazy(t *testing.T) {
	calls := 0
	seq := Mapped(slices.Values([]int{1, 2, 3}), func(x int) int {
		calls++
		return x * 10
	})
	require.Zero(t, calls, "nothing runs before the sequence is consumed")

	require.Equal(t, []int{10, 20, 30}, slices.Collect(seq))
	require.Equal(t, 3, calls)
}

func TestFiltered(t *testing.T) {
	got := slices.Collect(Filtered(slices.Values([]int{1, 2, 3, 4}), func(x int) bool { return x%2 == 0 }))
	require.Equal(t, []int{2, 4}, got)
}

func TestFlatMapped(t *testing.T) {
	got := slices.Collect(FlatMapped(slices.Values([]string{"a b", "c"}), func(s string) iter.Seq[string] {
		return slices.Values(strings.Fields(s))
	}))
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestLimit(t *testing.T) {
	pulled := 0
	evaluated := Mapped(slices.Values([]int{1, 2, 3, 4, 5}), func(x int) int {
		pulled++
		return x
	})

	require.Equal(t, []int{1, 2}, slices.Collect(Limit(evaluated, 2)))
	require.Equal(t, 2, pulled, "limit stops pulling after n elements")

	require.Empty(t, slices.Collect(Limit(evaluated, 0)))
	require.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(Limit(slices.Values([]int{1, 2, 3, 4, 5}), 10)))
}

func TestLazyFeedsEagerFold(t *testing.T) {
	words := []string{"apple", "kiwi", "banana", "fig", "cherry"}
	long := Filtered(slices.Values(words), func(s string) bool { return len(s) > 3 })
	upper := Mapped(Limit(long, 2), strings.ToUpper)

	got, err := Map(upper, Identity[string]())
	require.NoError(t, err)
	require.Equal(t, []string{"APPLE", "KIWI"}, got)
}
