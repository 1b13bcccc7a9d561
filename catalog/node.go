package catalog

// Node is a catalog tree node: either a Leaf holding a color string or a
// Branch mapping keys to child nodes.
type Node interface {
	node()
}

// Leaf is a color string such as "#dc143c", "rgb(0, 0, 128)" or "navy".
type Leaf string

// Branch is an ordered mapping. Field order is the document order.
type Branch []Field

// Field is a single key of a Branch.
type Field struct {
	Key  string
	Node Node
}

func (Leaf) node()   {}
func (Branch) node() {}

// Leaves counts the leaf nodes reachable from n.
func Leaves(n Node) int {
	switch n := n.(type) {
	case Leaf:
		return 1
	case Branch:
		var count int
		for _, f := range n {
			count += Leaves(f.Node)
		}
		return count
	default:
		return 0
	}
}
