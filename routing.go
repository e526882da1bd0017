package main

import (
	"errors"

	"github.com/ttpr0/campus-routing/flow"
	"github.com/ttpr0/campus-routing/graph"
	"github.com/ttpr0/campus-routing/routing"
)

//**********************************************************
// routing handler
//**********************************************************

func HandleRoutingRequest(req RoutingRequest) Result {
	mode, err := RoutingModeFromString(req.Mode)
	if err != nil {
		return BadRequest("unknown mode: " + req.Mode)
	}
	k := req.K
	if k == 0 {
		k = MANAGER.DefaultK()
	}
	if k < 1 {
		return BadRequest("k must be >= 1")
	}
	g := MANAGER.GetGraph()

	resp := RoutingResponse{}
	if mode == DISTANCE || mode == BOTH {
		routes, err := routing.FindRoutes(g, MANAGER.GetDistanceWeighting(), req.Source, req.Target, k)
		if err != nil {
			return _RoutingErrorResult(err)
		}
		shortest := NewRouteOption(g, routes.Primary)
		resp.Shortest = &shortest
		resp.ShortestAlts = _RouteOptions(g, routes.Alternates)
	}
	if mode == PENALIZED || mode == BOTH {
		weighting, err := MANAGER.GetCongestionWeighting()
		if err != nil {
			return _RoutingErrorResult(err)
		}
		routes, err := routing.FindRoutes(g, weighting, req.Source, req.Target, k)
		if err != nil {
			return _RoutingErrorResult(err)
		}
		best := NewRouteOption(g, routes.Primary)
		resp.Best = &best
		resp.BestAlts = _RouteOptions(g, routes.Alternates)
	}
	return OK(resp)
}

func _RouteOptions(g *graph.GraphStore, paths []routing.Path) []RouteOption {
	options := make([]RouteOption, 0, len(paths))
	for _, path := range paths {
		options = append(options, NewRouteOption(g, path))
	}
	return options
}

func _RoutingErrorResult(err error) Result {
	switch {
	case errors.Is(err, routing.ErrUnknownNode):
		return BadRequest(err.Error())
	case errors.Is(err, flow.ErrForecastNotReady):
		return BadRequest(err.Error())
	case errors.Is(err, routing.ErrNoPath):
		return NotFound(err.Error())
	default:
		return ServerError(err.Error())
	}
}
