package routing

import (
	"github.com/lintang-b-s/campnav/pkg"
	da "github.com/lintang-b-s/campnav/pkg/datastructure"
)

type vertexEdgePair struct {
	vertex da.Index
	edge   *da.OutEdge
}

func (ve vertexEdgePair) getEdge() *da.OutEdge {
	return ve.edge
}

func (ve vertexEdgePair) getVertex() da.Index {
	return ve.vertex
}

func newVertexEdgePair(vertex da.Index, edge *da.OutEdge) vertexEdgePair {
	return vertexEdgePair{
		vertex: vertex,
		edge:   edge,
	}
}

type VertexInfo[T comparable] struct {
	dist     float64
	parent   vertexEdgePair
	scanned  bool // dist is the shortest path cost from the source, v is in the shortest path tree
	heapNode *da.PriorityQueueNode[T]
}

func NewVertexInfo[T comparable](dist float64, parent vertexEdgePair, hnode *da.PriorityQueueNode[T]) *VertexInfo[T] {
	return &VertexInfo[T]{
		dist:     dist,
		parent:   parent,
		heapNode: hnode,
	}
}

func (vi *VertexInfo[T]) GetDist() float64 {
	return vi.dist
}

func (vi *VertexInfo[T]) UpdateDist(dist float64) {
	vi.dist = dist
}

func (vi *VertexInfo[T]) UpdateParent(par vertexEdgePair) {
	vi.parent = par
}

func (vi *VertexInfo[T]) Scan() {
	vi.scanned = true
}

func (vi *VertexInfo[T]) IsScanned() bool {
	return vi.scanned
}

func (vi *VertexInfo[T]) GetParent() vertexEdgePair {
	return vi.parent
}

func (vi *VertexInfo[T]) GetHeapNode() *da.PriorityQueueNode[T] {
	return vi.heapNode
}

func initInfWeightVertexInfo[T comparable](infos []*VertexInfo[T]) {
	for i := range infos {
		infos[i] = NewVertexInfo[T](pkg.INF_WEIGHT, newVertexEdgePair(da.INVALID_VERTEX_ID, nil), nil)
	}
}
