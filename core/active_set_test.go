package core_test

import (
	"testing"

	"github.com/arborwright/njtree/core"
	"github.com/stretchr/testify/require"
)

func TestNewActiveSet_Identity(t *testing.T) {
	a := core.NewActiveSet(4)
	require.Equal(t, 4, a.Len())
	require.Equal(t, []int{0, 1, 2, 3}, a.Positions())
}

func TestActiveSet_ReplaceAndRemove(t *testing.T) {
	// A = [0,1,2,3]; join f=1,g=3 into u=4.
	// Step 1: replace 1 with 4 in place  -> [0,4,2,3]
	// Step 2: swap-remove 3 (last elem)  -> [0,4,2]
	a := core.NewActiveSet(4)
	a.ReplaceAndRemove(1, 3, 4)

	require.Equal(t, 3, a.Len())
	require.Equal(t, []int{0, 4, 2}, a.Positions())
}

func TestActiveSet_ReplaceAndRemove_SwapsMiddle(t *testing.T) {
	// A = [0,1,2,3,4]; join f=0,g=2 into u=5.
	// Step 1: replace 0 with 5           -> [5,1,2,3,4]
	// Step 2: swap-remove 2 (not last)   -> last elem (4) moves into 2's slot.
	a := core.NewActiveSet(5)
	a.ReplaceAndRemove(0, 2, 5)

	require.Equal(t, 4, a.Len())
	require.Equal(t, []int{5, 1, 4, 3}, a.Positions())
}
