package flow

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/campus-routing/graph"
	. "github.com/ttpr0/campus-routing/util"
)

func _TestGraph(t *testing.T) *graph.GraphStore {
	nodes := List[graph.NodeRow]{
		{ID: "A", Lat: 33.64, Lon: 72.99},
		{ID: "B", Lat: 33.65, Lon: 72.99},
		{ID: "C", Lat: 33.64, Lon: 73.00},
	}
	edges := List[graph.EdgeRow]{
		{ID: "e1", Source: "A", Target: "B", Length: 100, Capacity: 400},
		{ID: "e2", Source: "B", Target: "C", Length: 50, Capacity: 0.5},
	}
	g, err := graph.BuildGraphStore(nodes, edges)
	require.NoError(t, err)
	return g
}

//*******************************************
// predictors
//*******************************************

func TestBaselinePredictor(t *testing.T) {
	p := NewBaselinePredictor()

	flow, err := p.Predict(TimeContext{Hour: 9, DayOfWeek: 1, IsPeak: true}, MakeEdgeFeatures(100, 400))
	require.NoError(t, err)
	assert.InDelta(t, 267.5, flow, 1e-9)

	flow, err = p.Predict(TimeContext{Hour: 0, DayOfWeek: 6, IsPeak: false}, MakeEdgeFeatures(100, 400))
	require.NoError(t, err)
	assert.InDelta(t, 140.0, flow, 1e-9)
}

func TestIsPeakHour(t *testing.T) {
	assert.True(t, IsPeakHour(9))
	assert.True(t, IsPeakHour(15))
	assert.False(t, IsPeakHour(11))
	assert.False(t, IsPeakHour(22))
}

func TestLinearPredictor(t *testing.T) {
	p, err := NewLinearPredictor("./testdata/linear_flow.json")
	require.NoError(t, err)

	features := MakeEdgeFeatures(100, 400)
	flow, err := p.Predict(TimeContext{Hour: 10, DayOfWeek: 2, IsPeak: true}, features)
	require.NoError(t, err)
	// 5 + 0.5*10 + 1*2 + 20 + 0.2*400 + 0.01*100 + 0.3*40 + 0.1*40
	assert.InDelta(t, 129.0, flow, 1e-9)
}

func TestLinearPredictorMissingModel(t *testing.T) {
	_, err := NewLinearPredictor("./testdata/does_not_exist.json")
	assert.ErrorIs(t, err, ErrPrediction)
}

func TestTimeContextValidate(t *testing.T) {
	assert.NoError(t, TimeContext{Hour: 0, DayOfWeek: 0}.Validate())
	assert.NoError(t, TimeContext{Hour: 23, DayOfWeek: 6, IsPeak: true}.Validate())
	assert.Error(t, TimeContext{Hour: 24, DayOfWeek: 0}.Validate())
	assert.Error(t, TimeContext{Hour: -1, DayOfWeek: 0}.Validate())
	assert.Error(t, TimeContext{Hour: 12, DayOfWeek: 7}.Validate())
}

//*******************************************
// forecast cache
//*******************************************

type _CountingPredictor struct {
	calls int64
	delay time.Duration
	fail  int64
}

func (self *_CountingPredictor) Predict(ctx TimeContext, features EdgeFeatures) (float64, error) {
	n := atomic.AddInt64(&self.calls, 1)
	if self.delay > 0 {
		time.Sleep(self.delay)
	}
	if self.fail > 0 && n <= self.fail {
		return 0, errors.New("model unavailable")
	}
	return 0.5 * features.Capacity, nil
}

func TestForecastCacheIdempotent(t *testing.T) {
	g := _TestGraph(t)
	p := &_CountingPredictor{}
	cache := NewForecastCache(g, p)

	ctx := TimeContext{Hour: 9, DayOfWeek: 1, IsPeak: true}
	first, err := cache.GetOrCompute(ctx)
	require.NoError(t, err)
	second, err := cache.GetOrCompute(ctx)
	require.NoError(t, err)

	// same entry, exactly one computation
	assert.Same(t, first, second)
	assert.Equal(t, int64(g.EdgeCount()), atomic.LoadInt64(&p.calls))
	assert.Equal(t, 1, cache.Size())

	// a different context is a different entry
	other, err := cache.GetOrCompute(TimeContext{Hour: 9, DayOfWeek: 1, IsPeak: false})
	require.NoError(t, err)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, cache.Size())
}

func TestForecastCacheRatio(t *testing.T) {
	g := _TestGraph(t)
	cache := NewForecastCache(g, &_CountingPredictor{})

	entry, err := cache.GetOrCompute(TimeContext{Hour: 12, DayOfWeek: 3})
	require.NoError(t, err)

	rows := entry.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "e1", rows[0].EdgeID)
	assert.InDelta(t, 200.0, rows[0].PredFlow, 1e-9)
	assert.InDelta(t, 0.5, entry.GetRatio("e1"), 1e-9)
	// degenerate capacity is floored at 1 for the ratio
	assert.InDelta(t, 0.25, entry.GetRatio("e2"), 1e-9)
	// edges absent from the snapshot are uncongested
	assert.Equal(t, 0.0, entry.GetRatio("e99"))
}

func TestForecastCacheInvalidContext(t *testing.T) {
	g := _TestGraph(t)
	cache := NewForecastCache(g, &_CountingPredictor{})

	_, err := cache.GetOrCompute(TimeContext{Hour: 99, DayOfWeek: 1})
	assert.Error(t, err)
	assert.Equal(t, 0, cache.Size())
}

func TestForecastCacheConcurrent(t *testing.T) {
	g := _TestGraph(t)
	p := &_CountingPredictor{delay: 5 * time.Millisecond}
	cache := NewForecastCache(g, p)

	ctx := TimeContext{Hour: 8, DayOfWeek: 2, IsPeak: true}
	var wg sync.WaitGroup
	entries := make([]*ForecastEntry, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry, err := cache.GetOrCompute(ctx)
			assert.NoError(t, err)
			entries[i] = entry
		}(i)
	}
	wg.Wait()

	// first caller computes, everyone else waits for the same entry
	assert.Equal(t, int64(g.EdgeCount()), atomic.LoadInt64(&p.calls))
	for i := 1; i < 8; i++ {
		assert.Same(t, entries[0], entries[i])
	}
}

func TestForecastCacheFailure(t *testing.T) {
	g := _TestGraph(t)
	p := &_CountingPredictor{fail: 1}
	cache := NewForecastCache(g, p)

	ctx := TimeContext{Hour: 9, DayOfWeek: 1}
	_, err := cache.GetOrCompute(ctx)
	assert.ErrorIs(t, err, ErrPrediction)
	// no partial entry is left behind
	assert.Equal(t, 0, cache.Size())

	// the next call retries and succeeds
	entry, err := cache.GetOrCompute(ctx)
	require.NoError(t, err)
	assert.NotNil(t, entry)
	assert.Equal(t, 1, cache.Size())
}
