package routing

import (
	"github.com/ttpr0/campus-routing/flow"
	"github.com/ttpr0/campus-routing/graph"
	. "github.com/ttpr0/campus-routing/util"
)

//*******************************************
// weighting interface
//*******************************************

type IWeighting interface {
	GetEdgeWeight(edge int32) float64
}

//*******************************************
// edge weighting
//*******************************************

// EdgeWeighting holds one precomputed cost per edge. Weightings are
// built per query and never mutated afterwards.
type EdgeWeighting struct {
	edge_weights Array[float64]
}

func (self *EdgeWeighting) GetEdgeWeight(edge int32) float64 {
	return self.edge_weights[edge]
}

// BuildDistanceWeighting costs every edge at its physical length.
func BuildDistanceWeighting(g *graph.GraphStore) *EdgeWeighting {
	weights := NewArray[float64](g.EdgeCount())
	for i := 0; i < g.EdgeCount(); i++ {
		weights[i] = g.GetEdge(int32(i)).Length
	}
	return &EdgeWeighting{
		edge_weights: weights,
	}
}

// BuildCongestionWeighting inflates each edge length by the forecast
// congestion ratio: cost = length_m * (1 + alpha * ratio). Edges
// absent from the forecast are treated as uncongested.
func BuildCongestionWeighting(g *graph.GraphStore, forecast *flow.ForecastEntry, alpha float64) *EdgeWeighting {
	weights := NewArray[float64](g.EdgeCount())
	for i := 0; i < g.EdgeCount(); i++ {
		edge := g.GetEdge(int32(i))
		ratio := forecast.GetRatio(edge.ID)
		weights[i] = edge.Length * (1 + alpha*ratio)
	}
	return &EdgeWeighting{
		edge_weights: weights,
	}
}
