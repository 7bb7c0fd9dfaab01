package txcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasDuplicates(t *testing.T) {
	require.False(t, hasDuplicates([]int{1, 2}))
	require.True(t, hasDuplicates([]int{1, 2, 1}))
	require.False(t, hasDuplicates([]int{}))
	require.False(t, hasDuplicates([]int{1}))
}

func TestSubsetUncheckedMut(t *testing.T) {
	seven := &Account{Balance: 7}
	eight := &Account{Balance: 8}
	xs := []*Account{seven, eight}

	got, err := subsetUncheckedMut(xs, []int{0})
	require.Nil(t, err)
	require.Equal(t, []*Account{seven}, got)

	got, err = subsetUncheckedMut(xs, []int{0, 1})
	require.Nil(t, err)
	require.Equal(t, []*Account{seven, eight}, got)
}

func TestSubsetUncheckedMutDuplicateIndex(t *testing.T) {
	xs := []*Account{{Balance: 7}, {Balance: 8}}
	_, err := subsetUncheckedMut(xs, []int{0, 0})
	require.NotNil(t, err)
	require.Equal(t, DuplicateAccountIndex, err.Kind)
}

func TestSubsetUncheckedMutOutOfBoundsPanics(t *testing.T) {
	xs := []*Account{{Balance: 7}, {Balance: 8}}
	require.Panics(t, func() {
		_, _ = subsetUncheckedMut(xs, []int{2})
	})
}
