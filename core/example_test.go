package core_test

import (
	"fmt"

	"github.com/arborwright/njtree/core"
)

// ExampleTree_threeTaxonStar builds the node table for a symmetric
// three-taxon star by hand (the shape njoin.Build produces for equidistant
// taxa) and prints its Stats().
func ExampleTree_threeTaxonStar() {
	tr, err := core.NewTree([]string{"X", "Y", "Z"}, [][]float64{
		{0, 6, 6},
		{6, 0, 6},
		{6, 6, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	u, _ := tr.AddInternal()
	_ = tr.SetChildren(u, 0, 1)
	_ = tr.LinkMutual(2, u)

	st := tr.Stats()
	fmt.Printf("leaves=%d internals=%d edges=%d\n", st.LeafCount, st.InternalCount, st.EdgeCount)
	// Output: leaves=3 internals=1 edges=3
}
