package newick_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/arborwright/njtree/distmatrix"
	"github.com/arborwright/njtree/njoin"
	"github.com/arborwright/njtree/render/newick"
)

// ExampleRender serializes the symmetric three-taxon star, explicitly
// designating X as the outlier so the remaining two leaves print as the
// root's children.
func ExampleRender() {
	dm, err := distmatrix.Parse(strings.NewReader(",X,Y,Z\n" +
		"X,0,6,6\n" +
		"Y,6,0,6\n" +
		"Z,6,6,0\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tree, err := njoin.Build(dm, njoin.Config{Mode: njoin.Newick})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := newick.Render(os.Stdout, tree, "X"); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println()
	// Output: (Y:3.00,Z:3.00);
}
