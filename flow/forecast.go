package flow

import (
	"fmt"
	"sync"

	"github.com/ttpr0/campus-routing/graph"
	. "github.com/ttpr0/campus-routing/util"
)

//*******************************************
// forecast entry
//*******************************************

type EdgeForecast struct {
	EdgeID   string  `json:"edge_id"`
	PredFlow float64 `json:"pred_flow"`
	Capacity float64 `json:"capacity"`
	Ratio    float64 `json:"-"`
}

// ForecastEntry is a point-in-time flow snapshot for every edge.
// Entries are immutable once published and safe to read without
// synchronization.
type ForecastEntry struct {
	Context TimeContext
	rows    Array[EdgeForecast]
	mapping Dict[string, int32]
}

// NewForecastEntry builds an immutable snapshot from predicted flows.
// The congestion ratio is derived here exactly once, with the capacity
// floored at 1 to avoid division blow-up for degenerate capacities.
func NewForecastEntry(ctx TimeContext, rows []EdgeForecast) *ForecastEntry {
	entry_rows := NewArray[EdgeForecast](len(rows))
	mapping := NewDict[string, int32](len(rows))
	for i, row := range rows {
		cap := row.Capacity
		if cap < 1 {
			cap = 1
		}
		pred := row.PredFlow
		if pred < 0 {
			pred = 0
		}
		row.PredFlow = pred
		row.Ratio = pred / cap
		entry_rows[i] = row
		mapping[row.EdgeID] = int32(i)
	}
	return &ForecastEntry{
		Context: ctx,
		rows:    entry_rows,
		mapping: mapping,
	}
}

// Rows returns the per-edge forecasts in graph edge order.
func (self *ForecastEntry) Rows() []EdgeForecast {
	return self.rows
}

// GetRatio returns the congestion ratio for an edge, 0 if the edge is
// absent from the snapshot (treated as uncongested).
func (self *ForecastEntry) GetRatio(edge_id string) float64 {
	if !self.mapping.ContainsKey(edge_id) {
		return 0
	}
	return self.rows[self.mapping[edge_id]].Ratio
}

//*******************************************
// forecast cache
//*******************************************

// ForecastCache maps time contexts to computed forecast entries.
// Entries are computed at most once per key (first caller computes,
// concurrent callers wait) and are never evicted: the key space is
// bounded at 336 combinations, so the cache cannot grow past that.
type ForecastCache struct {
	g         *graph.GraphStore
	predictor IFlowPredictor
	mu        sync.Mutex
	entries   Dict[TimeContext, *_CacheSlot]
}

type _CacheSlot struct {
	ready chan struct{}
	entry *ForecastEntry
	err   error
}

func NewForecastCache(g *graph.GraphStore, predictor IFlowPredictor) *ForecastCache {
	return &ForecastCache{
		g:         g,
		predictor: predictor,
		entries:   NewDict[TimeContext, *_CacheSlot](336),
	}
}

// GetOrCompute returns the cached entry for ctx or computes and stores
// it. Population is all-or-nothing: a predictor failure leaves no
// entry behind and a later call retries.
func (self *ForecastCache) GetOrCompute(ctx TimeContext) (*ForecastEntry, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	self.mu.Lock()
	if self.entries.ContainsKey(ctx) {
		slot := self.entries.Get(ctx)
		self.mu.Unlock()
		<-slot.ready
		return slot.entry, slot.err
	}
	slot := &_CacheSlot{ready: make(chan struct{})}
	self.entries.Set(ctx, slot)
	self.mu.Unlock()

	entry, err := self._Compute(ctx)
	if err != nil {
		self.mu.Lock()
		self.entries.Delete(ctx)
		self.mu.Unlock()
		slot.err = err
		close(slot.ready)
		return nil, err
	}
	slot.entry = entry
	close(slot.ready)
	return entry, nil
}

// Size returns the number of populated or in-flight entries.
func (self *ForecastCache) Size() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.entries.Length()
}

func (self *ForecastCache) _Compute(ctx TimeContext) (*ForecastEntry, error) {
	rows := NewArray[EdgeForecast](self.g.EdgeCount())
	for i := 0; i < self.g.EdgeCount(); i++ {
		edge := self.g.GetEdge(int32(i))
		features := MakeEdgeFeatures(edge.Length, edge.Capacity)
		pred, err := self.predictor.Predict(ctx, features)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %v: %v", ErrPrediction, edge.ID, err)
		}
		rows[i] = EdgeForecast{
			EdgeID:   edge.ID,
			PredFlow: pred,
			Capacity: edge.Capacity,
		}
	}
	return NewForecastEntry(ctx, rows), nil
}
