package main

import (
	"github.com/ttpr0/campus-routing/graph"
	"github.com/ttpr0/campus-routing/routing"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

//**********************************************************
// routing responses
//**********************************************************

type NodeCoord struct {
	ID    string  `json:"id"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
}

type RouteOption struct {
	Path   []string    `json:"path"`
	LenM   float64     `json:"len_m"`
	Coords []NodeCoord `json:"coords"`
}

// NewRouteOption resolves a computed path into the response shape.
// len_m is always the physical length, independent of the weighting
// the path was ranked under.
func NewRouteOption(g *graph.GraphStore, path routing.Path) RouteOption {
	coords := make([]NodeCoord, 0, path.NodeCount())
	for _, index := range path.Nodes() {
		node := g.GetNode(index)
		coords = append(coords, NodeCoord{
			ID:    node.ID,
			Lat:   float64(node.Loc.Lat()),
			Lon:   float64(node.Loc.Lon()),
			Label: node.Label,
		})
	}
	return RouteOption{
		Path:   path.NodeIDs(g),
		LenM:   path.Length(g),
		Coords: coords,
	}
}

type RoutingResponse struct {
	Best         *RouteOption  `json:"best,omitempty"`
	BestAlts     []RouteOption `json:"best_alts,omitempty"`
	Shortest     *RouteOption  `json:"shortest,omitempty"`
	ShortestAlts []RouteOption `json:"shortest_alts,omitempty"`
}

//**********************************************************
// graph responses
//**********************************************************

type GraphResponse struct {
	Nodes []graph.NodeRow `json:"nodes"`
	Edges []graph.EdgeRow `json:"edges"`
}
