package graph

// Visitor receives one traversal step: a vertex value and its resolved
// outgoing neighbors in stored order. It is invoked when the vertex is
// dequeued, after its unvisited neighbors have already been scheduled.
type Visitor[V, E comparable] func(v V, neighbors []Neighbor[V, E])

// frontier abstracts the queue discipline that distinguishes BFS from DFS.
// Both disciplines share one backing slice; only the removal end differs.
type frontier interface {
	push(id VertexID)
	pop() (VertexID, bool)
}

// fifo removes from the head: breadth-first order.
type fifo struct{ items []VertexID }

func (q *fifo) push(id VertexID) { q.items = append(q.items, id) }

func (q *fifo) pop() (VertexID, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	id := q.items[0]
	q.items = q.items[1:]
	return id, true
}

// lifo pushes and removes from the tail: depth-first order.
type lifo struct{ items []VertexID }

func (s *lifo) push(id VertexID) { s.items = append(s.items, id) }

func (s *lifo) pop() (VertexID, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	id := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return id, true
}

// traverse is the single search loop shared by BFS and DFS. A vertex is
// marked visited when it enters the frontier, not when it is dequeued, so
// a vertex reachable through multiple edges is scheduled exactly once.
func (g *Graph[V, E]) traverse(q frontier, source VertexID, visit Visitor[V, E]) error {
	if !g.HasVertex(source) {
		return ErrVertexNotFound
	}

	visited := map[VertexID]bool{source: true}
	q.push(source)

	for {
		id, ok := q.pop()
		if !ok {
			return nil
		}
		info, err := g.Info(id)
		if err != nil {
			return err
		}
		for _, e := range g.out[id] {
			if !visited[e.To] {
				visited[e.To] = true
				q.push(e.To)
			}
		}
		visit(info.Value, info.Neighbors)
	}
}

// BFS visits every vertex reachable from source in breadth-first order:
// non-decreasing distance from the source, ties broken by discovery order.
// Returns ErrVertexNotFound if source is absent.
func (g *Graph[V, E]) BFS(source VertexID, visit Visitor[V, E]) error {
	return g.traverse(&fifo{}, source, visit)
}

// DFS visits every vertex reachable from source in depth-first order.
// Neighbors are pushed onto the stack in their stored order and popped from
// the same end, so the subtree of the last-listed neighbor is explored
// first. Returns ErrVertexNotFound if source is absent.
func (g *Graph[V, E]) DFS(source VertexID, visit Visitor[V, E]) error {
	return g.traverse(&lifo{}, source, visit)
}
