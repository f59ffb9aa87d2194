package foldcore

import (
	"cmp"
	"errors"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	require.Equal(t, 6, Sum(slices.Values([]int{1, 2, 3})))
	require.Equal(t, 0, Sum(slices.Values([]int{})))
	require.InDelta(t, 3.75, Sum(slices.Values([]float64{1.5, 2.25})), 1e-9)
}

func TestCount(t *testing.T) {
	require.Equal(t, 3, Count(slices.Values([]string{"a", "b", "c"})))
	require.Zero(t, Count(slices.Values([]string(nil))))
}

func TestFlatMap(t *testing.T) {
	nested := [][]int{{1, 2}, {}, {3, 4}}
	got, err := FlatMap(slices.Values(nested), Lift(func(xs []int) iter.Seq[int] {
		return slices.Values(xs)
	}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestFlatMap_NilInnerIsEmpty(t *testing.T) {
	got, err := FlatMap(slices.Values([]int{1, 2}), Lift(func(x int) iter.Seq[int] {
		if x == 1 {
			return nil
		}
		return slices.Values([]int{x, x})
	}))
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, got)
}

func TestFlatMap_Parallel(t *testing.T) {
	words := strings.Fields("the quick brown fox jumps over the lazy dog")
	explode := Lift(func(s string) iter.Seq[rune] {
		return func(yield func(rune) bool) {
			for _, r := range s {
				if !yield(r) {
					return
				}
			}
		}
	})

	want, err := FlatMap(slices.Values(words), explode)
	require.NoError(t, err)
	got, err := FlatMap(slices.Values(words), explode, WithParallelism(3), WithChunkSize(2))
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, []rune(strings.Join(words, "")), got)
}

func TestFlatMap_Error(t *testing.T) {
	bad := errors.New("bad")
	_, err := FlatMap(slices.Values([]int{1}), MapperFunc[int, iter.Seq[int]](func(int) (iter.Seq[int], error) {
		return nil, bad
	}))
	require.ErrorIs(t, err, bad)
}

type scored struct {
	name  string
	score int
}

func byScore(a, b scored) int { return cmp.Compare(a.score, b.score) }

func TestMaxByMinBy(t *testing.T) {
	items := []scored{{"a", 3}, {"b", 9}, {"c", 1}, {"d", 9}, {"e", 1}}

	hi, ok := MaxBy(slices.Values(items), byScore)
	require.True(t, ok)
	require.Equal(t, "b", hi.name, "first of equal maxima wins")

	lo, ok := MinBy(slices.Values(items), byScore)
	require.True(t, ok)
	require.Equal(t, "c", lo.name, "first of equal minima wins")
}

func TestMaxBy_Empty(t *testing.T) {
	_, ok := MaxBy(slices.Values([]scored{}), byScore)
	require.False(t, ok)
	_, ok = MinBy(slices.Values([]scored{}), byScore)
	require.False(t, ok)
}

func TestAnyMatch_StopsEarly(t *testing.T) {
	pulled := 0
	var seq iter.Seq[int] = func(yield func(int) bool) {
		for i := 0; i < 100; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	ok, err := AnyMatch(seq, Pred(func(x int) bool { return x == 4 }))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, pulled)

	ok, err = AnyMatch(slices.Values([]int{1, 3}), isEven)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAnyMatch_Error(t *testing.T) {
	bad := errors.New("bad")
	_, err := AnyMatch(slices.Values([]int{1}), PredicateFunc[int](func(int) (bool, error) {
		return false, bad
	}))
	require.ErrorIs(t, err, bad)
}

func TestAllMatch(t *testing.T) {
	ok, err := AllMatch(slices.Values([]int{2, 4}), isEven)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = AllMatch(slices.Values([]int{2, 3}), isEven)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = AllMatch(slices.Values([]int{}), isEven)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAggregates_NilFuncs(t *testing.T) {
	_, err := FlatMap[int, int](slices.Values([]int{1}), nil)
	require.ErrorIs(t, err, ErrNilFunc)
	_, err = AnyMatch[int](slices.Values([]int{1}), nil)
	require.ErrorIs(t, err, ErrNilFunc)
	_, err = AllMatch[int](slices.Values([]int{1}), nil)
	require.ErrorIs(t, err, ErrNilFunc)
}
