package tools

// TreeNode is a simple n-ary tree node.
type TreeNode[T any] struct {
	Value    T
	Parent   *TreeNode[T]
	Children []*TreeNode[T]
}

// NewTreeNode returns a root node holding value.
func NewTreeNode[T any](value T) *TreeNode[T] {
	return &TreeNode[T]{Value: value}
}

// AddChild appends a new child holding value and returns it.
func (n *TreeNode[T]) AddChild(value T) *TreeNode[T] {
	child := &TreeNode[T]{Value: value, Parent: n}
	n.Children = append(n.Children, child)
	return child
}

// PreOrder returns the nodes of the tree rooted at n, parent before
// children.
func PreOrder[T any](n *TreeNode[T]) []*TreeNode[T] {
	out := []*TreeNode[T]{n}
	for _, child := range n.Children {
		out = append(out, PreOrder(child)...)
	}
	return out
}

// PostOrder returns the nodes of the tree rooted at n, children before
// parent.
func PostOrder[T any](n *TreeNode[T]) []*TreeNode[T] {
	var out []*TreeNode[T]
	for _, child := range n.Children {
		out = append(out, PostOrder(child)...)
	}
	return append(out, n)
}

// InOrder returns the nodes of the tree rooted at n: first child's subtree,
// then the node, then the remaining subtrees. Primarily meaningful for
// binary trees but generalized to n-ary ones.
func InOrder[T any](n *TreeNode[T]) []*TreeNode[T] {
	if len(n.Children) == 0 {
		return []*TreeNode[T]{n}
	}
	out := InOrder(n.Children[0])
	out = append(out, n)
	for _, child := range n.Children[1:] {
		out = append(out, InOrder(child)...)
	}
	return out
}
