package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func _TestManager(t *testing.T) *RoutingManager {
	config := Config{}
	config.Graph.Nodes = "./testdata/nodes.csv"
	config.Graph.Edges = "./testdata/edges.csv"
	config._SetDefaults()
	return NewRoutingManager(config)
}

func TestForecastHandler(t *testing.T) {
	MANAGER = _TestManager(t)

	res := HandleForecastRequest(ForecastRequest{Hour: 9, DayOfWeek: 1})
	require.Equal(t, http.StatusOK, res.status)

	// hour 9 is a peak hour, the peak flag falls back to the table
	// when the param is absent
	res = HandleForecastRequest(ForecastRequest{Hour: 9, DayOfWeek: 1, IsPeak: "true"})
	require.Equal(t, http.StatusOK, res.status)

	res = HandleForecastRequest(ForecastRequest{Hour: 25, DayOfWeek: 1})
	assert.Equal(t, http.StatusBadRequest, res.status)

	res = HandleForecastRequest(ForecastRequest{Hour: 9, DayOfWeek: 1, IsPeak: "maybe"})
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestRoutingHandler(t *testing.T) {
	MANAGER = _TestManager(t)

	// penalized routing before any forecast fails
	res := HandleRoutingRequest(RoutingRequest{Source: "A", Target: "D", Mode: "penalized"})
	assert.Equal(t, http.StatusBadRequest, res.status)

	// distance routing works without a forecast
	res = HandleRoutingRequest(RoutingRequest{Source: "A", Target: "D", Mode: "distance"})
	require.Equal(t, http.StatusOK, res.status)
	resp := res.result.(RoutingResponse)
	require.NotNil(t, resp.Shortest)
	assert.Equal(t, []string{"A", "B", "D"}, resp.Shortest.Path)
	assert.Equal(t, 20.0, resp.Shortest.LenM)
	require.Len(t, resp.ShortestAlts, 1)
	assert.Equal(t, []string{"A", "C", "D"}, resp.ShortestAlts[0].Path)
	assert.Nil(t, resp.Best)

	// after a forecast both weightings are available
	fres := HandleForecastRequest(ForecastRequest{Hour: 9, DayOfWeek: 1})
	require.Equal(t, http.StatusOK, fres.status)
	res = HandleRoutingRequest(RoutingRequest{Source: "A", Target: "D", Mode: "both"})
	require.Equal(t, http.StatusOK, res.status)
	resp = res.result.(RoutingResponse)
	require.NotNil(t, resp.Best)
	require.NotNil(t, resp.Shortest)
	assert.Equal(t, resp.Shortest.LenM, resp.Best.LenM)

	res = HandleRoutingRequest(RoutingRequest{Source: "A", Target: "X"})
	assert.Equal(t, http.StatusBadRequest, res.status)

	res = HandleRoutingRequest(RoutingRequest{Source: "A", Target: "D", K: -1})
	assert.Equal(t, http.StatusBadRequest, res.status)

	res = HandleRoutingRequest(RoutingRequest{Source: "A", Target: "D", Mode: "teleport"})
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestGraphHandlers(t *testing.T) {
	MANAGER = _TestManager(t)

	res := HandleGraphRequest(none{})
	require.Equal(t, http.StatusOK, res.status)
	resp := res.result.(GraphResponse)
	assert.Len(t, resp.Nodes, 4)
	assert.Len(t, resp.Edges, 4)

	res = HandleGraphGeoJSONRequest(none{})
	require.Equal(t, http.StatusOK, res.status)
}
