package segment

import "github.com/panelizer/panelizer/model"

// Axis identifies the orientation of the gutter band a region was split at.
type Axis int

const (
	// Horizontal means the gutter band runs horizontally: the children are
	// stacked top and bottom.
	Horizontal Axis = iota
	// Vertical means the gutter band runs vertically: the children sit
	// side by side.
	Vertical
)

// String returns a string representation of the axis.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Node is one node of the panel tree. An internal node records the region it
// was split from, the split axis and the split coordinate (the gutter band
// midpoint); its children cover the content on either side of the band. A
// leaf holds a final panel region.
type Node struct {
	// Region covered by this node, trimmed of blank margins.
	Region model.Region

	// Axis and SplitAt describe the split of an internal node. SplitAt is
	// the gutter band midpoint in page coordinates along the axis normal.
	Axis    Axis
	SplitAt int

	// First is the top (Horizontal) or left (Vertical) child; Second the
	// bottom or right child. Both nil for a leaf.
	First, Second *Node
}

// IsLeaf reports whether the node is a final panel.
func (n *Node) IsLeaf() bool {
	return n.First == nil && n.Second == nil
}

// Tree is the recursive partition of a page into panels. It is built once
// per page by [Split] and discarded after its leaves are flattened.
type Tree struct {
	Root *Node
}

// Leaves returns the final panel regions in in-order traversal: the first
// child of each split before the second. Because first means top or left,
// traversal order already approximates spatial order before reading-order
// resolution refines it.
func (t *Tree) Leaves() []model.Region {
	if t == nil || t.Root == nil {
		return nil
	}
	var out []model.Region
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			out = append(out, n.Region)
			return
		}
		walk(n.First)
		walk(n.Second)
	}
	walk(t.Root)
	return out
}

// LeafCount returns the number of panels in the tree.
func (t *Tree) LeafCount() int {
	return len(t.Leaves())
}

// Depth returns the height of the tree; 1 for a single leaf.
func (t *Tree) Depth() int {
	var depth func(n *Node) int
	depth = func(n *Node) int {
		if n == nil {
			return 0
		}
		if n.IsLeaf() {
			return 1
		}
		return 1 + max(depth(n.First), depth(n.Second))
	}
	if t == nil {
		return 0
	}
	return depth(t.Root)
}
