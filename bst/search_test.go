package bst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	tr := NewFromKeys(sampleKeys()...)

	nd := tr.Search(12)
	require.NotNil(t, nd)
	require.Equal(t, 12, nd.Key)
	require.Equal(t, 11, nd.Left.Key)
	require.Equal(t, 13, nd.Right.Key)

	require.Nil(t, tr.Search(14))
	require.Nil(t, tr.Search(100))
}

func TestSearchParent(t *testing.T) {
	tr := NewFromKeys(sampleKeys()...)

	require.Nil(t, tr.SearchParent(15))
	require.Equal(t, 15, tr.SearchParent(10).Key)
	require.Equal(t, 12, tr.SearchParent(13).Key)
	require.Equal(t, 25, tr.SearchParent(22).Key)
	require.Nil(t, tr.SearchParent(99))
}

func TestSearchRange(t *testing.T) {
	tr := NewFromKeys(sampleKeys()...)

	keys := func(nds []*Node[int]) []int {
		var ret []int
		for _, nd := range nds {
			ret = append(ret, nd.Key)
		}
		return ret
	}

	require.Equal(t, []int{11, 12, 13, 15, 17}, keys(tr.SearchRange(10, 20)))
	require.Equal(t, []int{6, 8}, keys(tr.SearchRange(0, 10)))
	require.Equal(t, tr.InOrder(), keys(tr.SearchRange(-1, 100)))
	require.Empty(t, tr.SearchRange(27, 100))
	require.Empty(t, tr.SearchRange(12, 13))
}
