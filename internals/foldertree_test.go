package internals

import "testing"

func TestTreeNodeInsertAndGetByPath(t *testing.T) {
	root := NewTreeNode("")
	leaf := root.InsertAtPath([]string{"a", "b"})
	if leaf.Name != "b" {
		t.Fatalf("expected leaf named b, got %q", leaf.Name)
	}
	if leaf.Parent == nil || leaf.Parent.Name != "a" {
		t.Fatalf("expected parent named a")
	}

	got, ok := root.GetByPath([]string{"a", "b"})
	if !ok || got != leaf {
		t.Fatalf("GetByPath did not return the inserted node")
	}

	if _, ok := root.GetByPath([]string{"a", "nonexistent"}); ok {
		t.Fatalf("expected GetByPath to fail for a missing path")
	}
}

func TestTreeNodeInsertAtPathIdempotent(t *testing.T) {
	root := NewTreeNode("")
	first := root.InsertAtPath([]string{"a"})
	second := root.InsertAtPath([]string{"a"})
	if first != second {
		t.Error("expected InsertAtPath to return the same node for the same path")
	}
}

func TestTreeNodeRemoveChild(t *testing.T) {
	root := NewTreeNode("")
	child := root.CreateOrGetChild("a")
	removed, ok := root.RemoveChild("a")
	if !ok || removed != child {
		t.Fatal("expected RemoveChild to return the removed node")
	}
	if removed.Parent != nil {
		t.Error("expected removed node's Parent to be cleared")
	}
	if root.NumChildren() != 0 {
		t.Error("expected root to have no children after removal")
	}
}

func TestTreeNodeTraverseTopDownOrder(t *testing.T) {
	root := NewTreeNode("")
	root.InsertAtPath([]string{"a"})
	root.InsertAtPath([]string{"b"})

	var visited []string
	root.TraverseTopDown(func(n *TreeNode) {
		visited = append(visited, n.Name)
	})
	if len(visited) != 3 || visited[0] != "" || visited[1] != "a" || visited[2] != "b" {
		t.Errorf("unexpected traversal order: %v", visited)
	}
}

func TestTreeNodeTraverseBottomUpChildrenBeforeParent(t *testing.T) {
	root := NewTreeNode("")
	root.InsertAtPath([]string{"a", "b"})

	var visited []string
	root.TraverseBottomUp(func(n *TreeNode) {
		visited = append(visited, n.Name)
	})
	if len(visited) != 3 || visited[0] != "b" || visited[1] != "a" || visited[2] != "" {
		t.Errorf("expected post-order b, a, \"\"; got %v", visited)
	}
}

func TestTreeNodeTraverseBottomUpToleratesRemoval(t *testing.T) {
	root := NewTreeNode("")
	root.InsertAtPath([]string{"a"})
	root.InsertAtPath([]string{"b"})

	root.TraverseBottomUp(func(n *TreeNode) {
		if n.Parent != nil {
			n.Parent.RemoveChild(n.Name)
		}
	})
	if root.NumChildren() != 0 {
		t.Errorf("expected all children removed, got %d remaining", root.NumChildren())
	}
}

func TestTreeNodeEqual(t *testing.T) {
	a := NewTreeNode("")
	a.InsertAtPath([]string{"x"})
	b := NewTreeNode("")
	b.InsertAtPath([]string{"x"})
	if !a.Equal(b) {
		t.Error("expected structurally identical trees to be Equal")
	}

	c := NewTreeNode("")
	c.InsertAtPath([]string{"y"})
	if a.Equal(c) {
		t.Error("expected trees with different children to not be Equal")
	}
}

func TestTreeNodeEqualDoesNotMutate(t *testing.T) {
	a := NewTreeNode("")
	a.InsertAtPath([]string{"b"})
	a.InsertAtPath([]string{"a"})
	before := a.IterChildren()

	other := NewTreeNode("")
	other.InsertAtPath([]string{"a"})
	other.InsertAtPath([]string{"b"})
	a.Equal(other)

	after := a.IterChildren()
	if len(before) != len(after) {
		t.Fatal("Equal must not mutate child count")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Error("Equal must not reorder children")
		}
	}
}
