package main

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/ttpr0/campus-routing/flow"
	"github.com/ttpr0/campus-routing/graph"
	"github.com/ttpr0/campus-routing/parser"
	"github.com/ttpr0/campus-routing/routing"
	. "github.com/ttpr0/campus-routing/util"
	"golang.org/x/exp/slog"
)

func NewRoutingManager(config Config) *RoutingManager {
	build := config.Graph.Build
	if _, err := os.Stat(config.Graph.Nodes); errors.Is(err, os.ErrNotExist) {
		build = true
	}
	if build {
		_BuildGraphFiles(config)
	}

	g, err := graph.LoadGraphCSV(config.Graph.Nodes, config.Graph.Edges)
	if err != nil {
		slog.Error("failed to load graph: " + err.Error())
		panic(err)
	}
	slog.Info(fmt.Sprintf("loaded graph: %v nodes, %v edges", g.NodeCount(), g.EdgeCount()))

	var predictor flow.IFlowPredictor
	switch config.Predictor.Type {
	case LINEAR:
		predictor, err = flow.NewLinearPredictor(config.Predictor.Model)
		if err != nil {
			slog.Error("failed to load linear model: " + err.Error())
			panic(err)
		}
		slog.Info("using linear predictor: " + config.Predictor.Model)
	default:
		predictor = flow.NewBaselinePredictor()
		slog.Info("using baseline predictor")
	}

	return &RoutingManager{
		config:   config,
		g:        g,
		cache:    flow.NewForecastCache(g, predictor),
		distance: routing.BuildDistanceWeighting(g),
	}
}

// _BuildGraphFiles parses the configured source into the CSV tables
// the loader reads at startup.
func _BuildGraphFiles(config Config) {
	var node_rows List[graph.NodeRow]
	var edge_rows List[graph.EdgeRow]
	var err error
	switch config.Graph.Source.Type {
	case OSM:
		slog.Info("building graph from osm extract: " + config.Graph.Source.OSM)
		node_rows, edge_rows, err = parser.ParseOSMGraph(config.Graph.Source.OSM)
	default:
		slog.Info("building graph from geojson: " + config.Graph.Source.Paths)
		node_rows, edge_rows, err = parser.ParseGeoJSONGraph(config.Graph.Source.Paths, config.Graph.Source.POIs)
	}
	if err != nil {
		slog.Error("failed to build graph: " + err.Error())
		panic(err)
	}
	if err := parser.StoreGraphCSV(node_rows, edge_rows, config.Graph.Nodes, config.Graph.Edges); err != nil {
		slog.Error("failed to store graph: " + err.Error())
		panic(err)
	}
}

// RoutingManager wires the immutable graph, the forecast cache and the
// weightings together. The active forecast is the one loaded by the
// most recent forecast request; penalized routing runs against it.
type RoutingManager struct {
	config   Config
	g        *graph.GraphStore
	cache    *flow.ForecastCache
	distance routing.IWeighting

	mu     sync.RWMutex
	active *flow.ForecastEntry
}

func (self *RoutingManager) GetGraph() *graph.GraphStore {
	return self.g
}

func (self *RoutingManager) DefaultK() int {
	return self.config.Routing.DefaultK
}

// ComputeForecast resolves the forecast for ctx through the cache and
// publishes it as the active forecast.
func (self *RoutingManager) ComputeForecast(ctx flow.TimeContext) (*flow.ForecastEntry, error) {
	entry, err := self.cache.GetOrCompute(ctx)
	if err != nil {
		return nil, err
	}
	self.mu.Lock()
	self.active = entry
	self.mu.Unlock()
	return entry, nil
}

func (self *RoutingManager) GetDistanceWeighting() routing.IWeighting {
	return self.distance
}

// GetCongestionWeighting builds the penalized weighting from the active
// forecast. Fails until a forecast has been loaded.
func (self *RoutingManager) GetCongestionWeighting() (routing.IWeighting, error) {
	self.mu.RLock()
	active := self.active
	self.mu.RUnlock()
	if active == nil {
		return nil, fmt.Errorf("%w: call /v1/forecast first", flow.ErrForecastNotReady)
	}
	return routing.BuildCongestionWeighting(self.g, active, self.config.Routing.Alpha), nil
}
