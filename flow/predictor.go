package flow

import (
	"errors"
	"fmt"

	. "github.com/ttpr0/campus-routing/util"
)

// ErrPrediction is returned when the underlying model fails to produce
// a flow value. No forecast entry is stored in that case.
var ErrPrediction = errors.New("flow prediction failed")

// ErrForecastNotReady is returned when congestion-aware routing is
// requested before any forecast has been loaded.
var ErrForecastNotReady = errors.New("forecast not loaded")

//*******************************************
// time context
//*******************************************

// TimeContext is the discretized key identifying a forecast snapshot.
// The key space is bounded: 24 hours x 7 days x 2 = 336 combinations.
type TimeContext struct {
	Hour      int32
	DayOfWeek int32
	IsPeak    bool
}

func (self TimeContext) Validate() error {
	if self.Hour < 0 || self.Hour > 23 {
		return fmt.Errorf("invalid hour %v", self.Hour)
	}
	if self.DayOfWeek < 0 || self.DayOfWeek > 6 {
		return fmt.Errorf("invalid day_of_week %v", self.DayOfWeek)
	}
	return nil
}

// approximate class-change windows on campus
var peak_hours = Dict[int32, bool]{8: true, 9: true, 10: true, 13: true, 14: true, 15: true, 16: true}

func IsPeakHour(hour int32) bool {
	return peak_hours.ContainsKey(hour)
}

//*******************************************
// predictor interface
//*******************************************

// EdgeFeatures is the per-edge part of the model feature vector.
// Flow lags are placeholders derived from capacity, real lags would
// come from a time-series store.
type EdgeFeatures struct {
	Capacity float64
	Length   float64
	FlowLag1 float64
	FlowLag2 float64
}

func MakeEdgeFeatures(length, capacity float64) EdgeFeatures {
	return EdgeFeatures{
		Capacity: capacity,
		Length:   length,
		FlowLag1: 0.1 * capacity,
		FlowLag2: 0.1 * capacity,
	}
}

// IFlowPredictor predicts pedestrian flow on an edge for a given time
// context. Implementations must be safe for concurrent use; the
// routing engine is agnostic to which implementation is behind it.
type IFlowPredictor interface {
	Predict(ctx TimeContext, features EdgeFeatures) (float64, error)
}
