package internals

import "sort"

// NodeCargo is the fixed per-node payload attached to a folder-tree node.
// spec.md §9 re-architects the original's dynamic attribute bag into a
// fixed struct: extending the statistics this tool tracks means extending
// this struct, not attaching arbitrary fields at runtime.
type NodeCargo struct {
	// HashSizes maps hash -> size for files directly in this folder.
	HashSizes map[string]uint64
	// DupCandidateCounts maps a candidate folder's path key to the number
	// of distinct files in this folder that have at least one duplicate
	// in that candidate folder. Its key set is the "dup_candidates" set
	// of spec.md §4.10 (folders that might duplicate this subtree); its
	// counts additionally support the supplemented weak-candidate pruning
	// pass from fsf_objects.py's FolderRefs.folder_with_dup_files Counter
	// (see SPEC_FULL.md §4's PruneWeakCandidates).
	DupCandidateCounts map[string]int

	NumSubfolders     uint64
	NumFilesInSubtree uint64
	BytesInSubtree    uint64
}

func newCargo() NodeCargo {
	return NodeCargo{
		HashSizes:          make(map[string]uint64),
		DupCandidateCounts: make(map[string]int),
	}
}

// TreeNode is a mutable folder-tree node (C8). Children are unique by name;
// Parent is a non-owning back-reference (nullable for the root), following
// spec.md §9's suggestion that the tree own children exclusively while
// parent pointers merely observe, avoiding an ownership cycle.
type TreeNode struct {
	Name     string
	Parent   *TreeNode
	Cargo    NodeCargo
	children map[string]*TreeNode
}

// NewTreeNode creates a detached node with the given name.
func NewTreeNode(name string) *TreeNode {
	return &TreeNode{
		Name:     name,
		Cargo:    newCargo(),
		children: make(map[string]*TreeNode),
	}
}

// CreateOrGetChild returns the existing child named `name`, or creates one.
// A created child's Parent back-reference is set to this node.
func (n *TreeNode) CreateOrGetChild(name string) *TreeNode {
	if child, ok := n.children[name]; ok {
		return child
	}
	child := NewTreeNode(name)
	child.Parent = n
	n.children[name] = child
	return child
}

// InsertAtPath walks (creating as needed) the chain of components starting
// at this node and returns the leaf. Idempotent: inserting the same path
// twice returns the same node.
func (n *TreeNode) InsertAtPath(components []string) *TreeNode {
	node := n
	for _, c := range components {
		node = node.CreateOrGetChild(c)
	}
	return node
}

// GetByPath returns the node reached by following components from this
// node, or (nil, false) if any component along the way is absent. Never
// creates nodes.
func (n *TreeNode) GetByPath(components []string) (*TreeNode, bool) {
	node := n
	for _, c := range components {
		child, ok := node.children[c]
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// RemoveChild detaches and returns the child named `name`, if present.
// Resolves the spec.md §7 DuplicateFolderInsert case implicitly: attaching
// a new child under a name that already exists (via CreateOrGetChild)
// simply returns the existing one rather than replacing it, so the only
// way to replace a child is to RemoveChild it first.
func (n *TreeNode) RemoveChild(name string) (*TreeNode, bool) {
	child, ok := n.children[name]
	if !ok {
		return nil, false
	}
	delete(n.children, name)
	child.Parent = nil
	return child, true
}

// IterChildren returns this node's children ordered by name. The ordering
// is a convenience for deterministic iteration/output; it must not be
// relied upon for Equal, which treats children as an unordered multiset.
func (n *TreeNode) IterChildren() []*TreeNode {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*TreeNode, len(names))
	for i, name := range names {
		out[i] = n.children[name]
	}
	return out
}

// NumChildren returns the number of direct children.
func (n *TreeNode) NumChildren() int {
	return len(n.children)
}

// IsLeaf reports whether this node has no children.
func (n *TreeNode) IsLeaf() bool {
	return len(n.children) == 0
}

// TraverseTopDown applies fn to this node, then recursively to each child,
// using an explicit stack rather than recursive descent (spec.md §9: deep
// trees risk stack overflow under true recursion).
func (n *TreeNode) TraverseTopDown(fn func(*TreeNode)) {
	stack := []*TreeNode{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(node)
		children := node.IterChildren()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// TraverseBottomUp applies fn to every node post-order (children before
// parent), tolerating fn removing the node from its parent: the traversal
// order is snapshotted before any fn call runs, so later calls are
// unaffected by earlier mutations (spec.md §4.9).
func (n *TreeNode) TraverseBottomUp(fn func(*TreeNode)) {
	order := make([]*TreeNode, 0)
	type frame struct {
		node    *TreeNode
		visited bool
	}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.visited {
			order = append(order, top.node)
			stack = stack[:len(stack)-1]
			continue
		}
		top.visited = true
		children := top.node.IterChildren()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: children[i]})
		}
	}
	for _, node := range order {
		fn(node)
	}
}

// Equal reports structural equality on (name, cargo, multiset of children),
// without mutating either tree (spec.md §9 re-architects the original's
// sort-as-a-side-effect-of-equality into a canonicalize-on-the-fly compare).
func (n *TreeNode) Equal(other *TreeNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Name != other.Name {
		return false
	}
	if !cargoEqual(n.Cargo, other.Cargo) {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}

	selfChildren := n.IterChildren()
	otherByName := make(map[string]*TreeNode, len(other.children))
	for name, child := range other.children {
		otherByName[name] = child
	}
	for _, child := range selfChildren {
		counterpart, ok := otherByName[child.Name]
		if !ok || !child.Equal(counterpart) {
			return false
		}
	}
	return true
}

func cargoEqual(a, b NodeCargo) bool {
	if a.NumSubfolders != b.NumSubfolders || a.NumFilesInSubtree != b.NumFilesInSubtree || a.BytesInSubtree != b.BytesInSubtree {
		return false
	}
	if len(a.HashSizes) != len(b.HashSizes) {
		return false
	}
	for h, size := range a.HashSizes {
		if b.HashSizes[h] != size {
			return false
		}
	}
	if len(a.DupCandidateCounts) != len(b.DupCandidateCounts) {
		return false
	}
	for p, count := range a.DupCandidateCounts {
		if b.DupCandidateCounts[p] != count {
			return false
		}
	}
	return true
}
