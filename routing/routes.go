package routing

import (
	"errors"
	"fmt"

	"github.com/ttpr0/campus-routing/graph"
	. "github.com/ttpr0/campus-routing/util"
)

// ErrUnknownNode is returned when a query references a node id that is
// not part of the graph.
var ErrUnknownNode = errors.New("unknown node")

// ErrNoPath is returned when source and target are in different
// connected components. This is an expected outcome, not a crash.
var ErrNoPath = errors.New("no path between source and target")

//*******************************************
// route engine
//*******************************************

// RouteSet is the result of one path query under one weighting:
// the optimal path plus up to k-1 ranked loopless alternates.
type RouteSet struct {
	Primary    Path
	Alternates List[Path]
}

// FindRoutes computes the best path from source to target under the
// given weighting plus up to k-1 alternates. The engine is stateless,
// every call is an independent computation over the immutable graph.
func FindRoutes(g *graph.GraphStore, w IWeighting, source, target string, k int) (RouteSet, error) {
	if k < 1 {
		return RouteSet{}, fmt.Errorf("k must be >= 1, got %v", k)
	}
	src := g.GetNodeIndex(source)
	if !src.HasValue() {
		return RouteSet{}, fmt.Errorf("%w: %v", ErrUnknownNode, source)
	}
	dst := g.GetNodeIndex(target)
	if !dst.HasValue() {
		return RouteSet{}, fmt.Errorf("%w: %v", ErrUnknownNode, target)
	}

	paths := CalcKShortestPaths(g, w, src.Value, dst.Value, k)
	if paths.Length() == 0 {
		return RouteSet{}, fmt.Errorf("%w: %v -> %v", ErrNoPath, source, target)
	}
	return RouteSet{
		Primary:    paths.Get(0),
		Alternates: paths[1:],
	}, nil
}
