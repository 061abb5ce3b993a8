package bst

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func sampleKeys() []int {
	return []int{15, 10, 20, 8, 12, 17, 25, 6, 11, 13, 22, 27}
}

func TestInsertSample(t *testing.T) {
	tr := NewFromKeys(sampleKeys()...)

	require.Equal(t, []int{6, 8, 10, 11, 12, 13, 15, 17, 20, 22, 25, 27}, tr.InOrder())
	require.Equal(t, tr.InOrder(), tr.InOrderRecursive())
	require.Equal(t, 12, tr.Count())
	require.Equal(t, 200, tr.Sum())
	require.InDelta(t, 16.6666666, tr.Average(), 1e-6)
	require.Equal(t, 15, tr.Root.Key)
	require.Equal(t, 4, tr.Height())

	max, ok := tr.Max()
	require.True(t, ok)
	require.Equal(t, 27, max)
	min, ok := tr.Min()
	require.True(t, ok)
	require.Equal(t, 6, min)
}

func TestInsertDuplicate(t *testing.T) {
	tr := New[int]()
	require.True(t, tr.Insert(5))
	require.True(t, tr.Insert(3))
	require.False(t, tr.Insert(5))
	require.False(t, tr.Insert(3))
	require.Equal(t, []int{3, 5}, tr.InOrder())

	n := tr.InsertAll(3, 4, 4, 9)
	require.Equal(t, 2, n)
	require.Equal(t, []int{3, 4, 5, 9}, tr.InOrder())
}

func TestEmptyTree(t *testing.T) {
	tr := New[float64]()

	_, ok := tr.Max()
	require.False(t, ok)
	_, ok = tr.Min()
	require.False(t, ok)
	_, ok = tr.MaxRecursive()
	require.False(t, ok)
	_, ok = tr.MinRecursive()
	require.False(t, ok)
	_, _, ok = tr.MinMax()
	require.False(t, ok)

	require.Equal(t, 0.0, tr.Sum())
	require.Equal(t, 0.0, tr.SumIterative())
	require.Equal(t, 0.0, tr.SumPostOrder())
	require.Equal(t, 0.0, tr.SumLevelOrder())
	require.Equal(t, 0, tr.Count())
	require.Equal(t, 0.0, tr.Average())
	require.Empty(t, tr.InOrder())
	require.Equal(t, 0, tr.Height())
	require.Nil(t, tr.Search(1))
	require.Nil(t, tr.SearchRange(0, 10))

	st := tr.Statistics()
	require.Equal(t, Statistics[float64]{}, st)
	require.Nil(t, st.Min)
	require.Nil(t, st.Max)
}

func TestSingleNode(t *testing.T) {
	tr := NewFromKeys(42)
	min, max, ok := tr.MinMax()
	require.True(t, ok)
	require.Equal(t, 42, min)
	require.Equal(t, 42, max)
	require.Equal(t, 42.0, tr.Average())
}

func TestMinMaxVariantsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		tr := New[int]()
		n := r.Intn(40)
		for j := 0; j < n; j++ {
			tr.Insert(r.Intn(1000) - 500)
		}
		min, okMin := tr.Min()
		minR, okMinR := tr.MinRecursive()
		require.Equal(t, okMin, okMinR)
		require.Equal(t, min, minR)

		max, okMax := tr.Max()
		maxR, okMaxR := tr.MaxRecursive()
		require.Equal(t, okMax, okMaxR)
		require.Equal(t, max, maxR)

		keys := tr.InOrder()
		if len(keys) > 0 {
			require.Equal(t, keys[0], min)
			require.Equal(t, keys[len(keys)-1], max)
		}
	}
}

func TestInOrderIsSortedAndDistinct(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		seen := map[int]bool{}
		tr := New[int]()
		for j := 0; j < 100; j++ {
			k := r.Intn(60)
			seen[k] = true
			tr.Insert(k)
		}
		var want []int
		for k := range seen {
			want = append(want, k)
		}
		sort.Ints(want)
		require.Equal(t, want, tr.InOrder(), spew.Sdump(tr.Root))
		require.Equal(t, len(want), tr.Count())
	}
}

func TestSumStrategiesAgree(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		tr := New[int64]()
		n := r.Intn(200)
		for j := 0; j < n; j++ {
			tr.Insert(r.Int63n(10000))
		}
		s := tr.Sum()
		require.Equal(t, s, tr.SumIterative())
		require.Equal(t, s, tr.SumPostOrder())
		require.Equal(t, s, tr.SumLevelOrder())

		st := tr.Statistics()
		require.Equal(t, s, st.Sum)
		require.Equal(t, tr.Count(), st.Count)
		require.Equal(t, tr.Average(), st.Average)
	}
}

func TestStatisticsSample(t *testing.T) {
	st := NewFromKeys(sampleKeys()...).Statistics()
	require.Equal(t, 200, st.Sum)
	require.Equal(t, 12, st.Count)
	require.InDelta(t, 200.0/12.0, st.Average, 1e-9)
	require.NotNil(t, st.Min)
	require.NotNil(t, st.Max)
	require.Equal(t, 6, *st.Min)
	require.Equal(t, 27, *st.Max)
}

func TestFloatKeys(t *testing.T) {
	tr := NewFromKeys(2.5, 1.25, 3.75)
	require.Equal(t, []float64{1.25, 2.5, 3.75}, tr.InOrder())
	require.Equal(t, 7.5, tr.Sum())
	require.Equal(t, 2.5, tr.Average())
}

func TestWalkOrders(t *testing.T) {
	tr := NewFromKeys(4, 2, 6, 1, 3, 5, 7)
	collect := func(walk func(func(*Node[int]))) []int {
		var ret []int
		walk(func(nd *Node[int]) { ret = append(ret, nd.Key) })
		return ret
	}
	require.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, collect(tr.WalkPreOrder))
	require.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, collect(tr.WalkPostOrder))
	require.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, collect(tr.WalkLevelOrder))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(tr.WalkInOrder))
}

func TestSortedInsertDegenerates(t *testing.T) {
	tr := New[int]()
	n := 10000
	for i := 0; i < n; i++ {
		tr.Insert(i)
	}
	require.Equal(t, n, tr.Height())
	require.Equal(t, n, tr.Count())
	require.Equal(t, n*(n-1)/2, tr.SumIterative())
	require.Equal(t, n*(n-1)/2, tr.SumLevelOrder())
	require.Equal(t, n*(n-1)/2, tr.SumPostOrder())

	keys := tr.InOrder()
	require.Len(t, keys, n)
	require.Equal(t, n-1, keys[n-1])

	max, ok := tr.Max()
	require.True(t, ok)
	require.Equal(t, n-1, max)
}
