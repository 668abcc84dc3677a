package routing

import (
	"github.com/lintang-b-s/campnav/pkg"
	da "github.com/lintang-b-s/campnav/pkg/datastructure"
	"github.com/lintang-b-s/campnav/pkg/geo"
	"github.com/lintang-b-s/campnav/pkg/util"
)

// Path. vertices from origin to destination in travel order, edges[i] connects vertices[i] and vertices[i+1].
type Path struct {
	Vertices    []da.Index
	Coordinates []geo.Coordinate
	Edges       []da.OutEdge
	Distance    float64 // meter
}

type Dijkstra struct {
	q *QueryGraph

	info []*VertexInfo[da.Index]
	pq   *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra() *Dijkstra {
	return &Dijkstra{
		info: make([]*VertexInfo[da.Index], 0),
		pq:   da.NewFourAryHeap[da.Index](),
	}
}

// ShortestPath. one-to-one dijkstra on the query graph. labels are only improved on a strictly shorter
// distance and equal keys leave the heap in insertion order, so the same query always returns the same path.
func (us *Dijkstra) ShortestPath(q *QueryGraph, origin, destination da.Index) (*Path, error) {
	if !q.HasVertex(origin) {
		return nil, util.WrapErrorf(pkg.ErrUnknownNode, util.ErrNotFound, "origin vertex %d", origin)
	}
	if !q.HasVertex(destination) {
		return nil, util.WrapErrorf(pkg.ErrUnknownNode, util.ErrNotFound, "destination vertex %d", destination)
	}

	us.q = q
	us.Preallocate()

	shNode := da.NewPriorityQueueNode(0, origin)
	us.pq.Insert(shNode)
	us.info[origin] = NewVertexInfo(0, newVertexEdgePair(da.INVALID_VERTEX_ID, nil), shNode)

	for !us.pq.IsEmpty() {
		if us.graphSearchUni(destination) {
			break
		}
		us.numSettledNodes++
	}

	if !us.info[destination].IsScanned() {
		return nil, util.WrapErrorf(pkg.ErrNoPathFound, util.ErrNotFound, "from vertex %d to vertex %d",
			origin, destination)
	}

	return us.retrievePath(origin, destination), nil
}

// graphSearchUni. settle the closest vertex, returns true once the destination is settled
func (us *Dijkstra) graphSearchUni(destination da.Index) bool {
	queryKey, _ := us.pq.ExtractMin()
	uId := queryKey.GetItem()
	uInfo := us.info[uId]
	uInfo.Scan()

	if uId == destination {
		return true
	}

	us.q.ForOutEdgesOf(uId, func(outArc *da.OutEdge) {
		vId := outArc.GetHead()
		vInfo := us.info[vId]
		if vInfo.IsScanned() {
			return
		}

		newDist := uInfo.GetDist() + outArc.GetWeight()
		if da.Ge(newDist, pkg.INF_WEIGHT) {
			return
		}

		vAlreadyLabelled := da.Lt(vInfo.GetDist(), pkg.INF_WEIGHT)
		if vAlreadyLabelled && da.Ge(newDist, vInfo.GetDist()) {
			// newDist is not better, do nothing
			return
		}

		if vAlreadyLabelled {
			vInfo.UpdateDist(newDist)
			vInfo.UpdateParent(newVertexEdgePair(uId, outArc))
			// key already in the priority queue, decrease its key
			us.pq.DecreaseKey(vInfo.GetHeapNode(), newDist)
		} else {
			vhNode := da.NewPriorityQueueNode(newDist, vId)
			us.info[vId] = NewVertexInfo(newDist, newVertexEdgePair(uId, outArc), vhNode)
			us.pq.Insert(vhNode)
		}
	})

	return false
}

func (us *Dijkstra) retrievePath(origin, destination da.Index) *Path {
	vertices := make([]da.Index, 0, 16)
	edges := make([]da.OutEdge, 0, 16)

	cur := destination
	for cur != origin {
		parent := us.info[cur].GetParent()
		vertices = append(vertices, cur)
		edges = append(edges, *parent.getEdge())
		cur = parent.getVertex()
	}
	vertices = append(vertices, origin)

	vertices = util.ReverseG(vertices)
	edges = util.ReverseG(edges)

	coords := make([]geo.Coordinate, len(vertices))
	for i, v := range vertices {
		coords[i] = us.q.GetVertexCoordinate(v)
	}

	return &Path{
		Vertices:    vertices,
		Coordinates: coords,
		Edges:       edges,
		Distance:    us.info[destination].GetDist(),
	}
}

func (us *Dijkstra) GetNumSettledNodes() int {
	return us.numSettledNodes
}

func (us *Dijkstra) Preallocate() {
	n := us.q.NumberOfVertices()
	us.info = make([]*VertexInfo[da.Index], n)
	initInfWeightVertexInfo(us.info)
	us.pq.Clear()
	us.pq.Preallocate(n)
	us.numSettledNodes = 0
}
