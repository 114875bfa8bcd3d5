package workload

import "github.com/pavanmanishd/typedarena"

// Node is a singly linked list node whose successor lives in the same arena.
type Node struct {
	Value int
	Next  *Node
}

// PushFront allocates a node holding v in front of head and returns it.
func PushFront(a *typedarena.Arena[Node], head *Node, v int) *Node {
	return a.Alloc(Node{Value: v, Next: head})
}

// BuildList pushes vs in order onto an empty list and returns the head,
// so traversal yields vs reversed.
func BuildList(a *typedarena.Arena[Node], vs ...int) *Node {
	var head *Node
	for _, v := range vs {
		head = PushFront(a, head, v)
	}
	return head
}

// Values walks the list from head.
func Values(head *Node) []int {
	var out []int
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Value)
	}
	return out
}

// Vertex is a graph vertex whose edges point at other vertices in the same
// arena. Edges is filled in after allocation, which is how cycles are formed.
type Vertex struct {
	ID    int
	Edges []*Vertex
}

// Ring allocates n vertices linked into a directed cycle
// 0 -> 1 -> ... -> n-1 -> 0 and returns vertex 0.
func Ring(a *typedarena.Arena[Vertex], n int) *Vertex {
	if n <= 0 {
		return nil
	}
	first := a.Alloc(Vertex{ID: 0})
	prev := first
	for i := 1; i < n; i++ {
		v := a.Alloc(Vertex{ID: i})
		prev.Edges = append(prev.Edges, v)
		prev = v
	}
	prev.Edges = append(prev.Edges, first)
	return first
}
