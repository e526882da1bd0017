package flow

//*******************************************
// rule-based baseline
//*******************************************

// BaselinePredictor mirrors the demand model used to synthesize the
// training flows: a capacity share plus a peak surcharge and a mild
// hour-of-day trend.
type BaselinePredictor struct{}

func NewBaselinePredictor() *BaselinePredictor {
	return &BaselinePredictor{}
}

func (self *BaselinePredictor) Predict(ctx TimeContext, features EdgeFeatures) (float64, error) {
	cap := features.Capacity
	flow := 0.25 * cap
	if ctx.IsPeak {
		flow += 0.4 * cap
	} else {
		flow += 0.1 * cap
	}
	flow += 0.05 * cap * float64(ctx.Hour) / 24
	if flow < 0 {
		flow = 0
	}
	return flow, nil
}
