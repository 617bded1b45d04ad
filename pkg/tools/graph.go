package tools

import "container/heap"

// BFS walks graph breadth-first from start, returning nodes in visit order.
// Nodes unreachable from start are not visited.
func BFS[N comparable](graph map[N][]N, start N) []N {
	visited := map[N]bool{start: true}
	queue := []N{start}
	var order []N
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)
		for _, next := range graph[node] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return order
}

// DFS walks graph depth-first from start, returning nodes in visit order.
// Neighbors are explored in the order they appear in the adjacency list.
func DFS[N comparable](graph map[N][]N, start N) []N {
	visited := map[N]bool{}
	stack := []N{start}
	var order []N
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node] {
			continue
		}
		visited[node] = true
		order = append(order, node)
		next := graph[node]
		for i := len(next) - 1; i >= 0; i-- {
			if !visited[next[i]] {
				stack = append(stack, next[i])
			}
		}
	}
	return order
}

// Edge is a weighted adjacency entry.
type Edge[N comparable] struct {
	To     N
	Weight int
}

type pqItem[N comparable] struct {
	dist int
	node N
	path []N
}

type pq[N comparable] []pqItem[N]

func (q pq[N]) Len() int            { return len(q) }
func (q pq[N]) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pq[N]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pq[N]) Push(x any)         { *q = append(*q, x.(pqItem[N])) }
func (q *pq[N]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Dijkstra finds the cheapest path from start to end in a weighted graph
// given as an adjacency map. It returns the total distance, the node path
// including both endpoints, and whether a path exists.
func Dijkstra[N comparable](graph map[N][]Edge[N], start, end N) (int, []N, bool) {
	visited := map[N]bool{}
	q := &pq[N]{{dist: 0, node: start}}
	heap.Init(q)

	for q.Len() > 0 {
		item := heap.Pop(q).(pqItem[N])
		if visited[item.node] {
			continue
		}
		visited[item.node] = true

		path := append(append([]N{}, item.path...), item.node)
		if item.node == end {
			return item.dist, path, true
		}
		for _, e := range graph[item.node] {
			if !visited[e.To] {
				heap.Push(q, pqItem[N]{dist: item.dist + e.Weight, node: e.To, path: path})
			}
		}
	}
	return 0, nil, false
}
