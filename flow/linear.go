package flow

import (
	"fmt"

	. "github.com/ttpr0/campus-routing/util"
)

//*******************************************
// linear model
//*******************************************

// LinearModel holds the coefficients of the trained linear baseline.
// The artifact is produced by the offline training pipeline, feature
// names match the training feature vector.
type LinearModel struct {
	Intercept    float64 `json:"intercept"`
	Coefficients struct {
		Hour      float64 `json:"hour"`
		DayOfWeek float64 `json:"day_of_week"`
		IsPeak    float64 `json:"is_peak"`
		Capacity  float64 `json:"capacity"`
		LengthM   float64 `json:"length_m"`
		FlowLag1  float64 `json:"flow_lag1"`
		FlowLag2  float64 `json:"flow_lag2"`
	} `json:"coefficients"`
}

type LinearPredictor struct {
	model LinearModel
}

func NewLinearPredictor(file string) (predictor *LinearPredictor, err error) {
	defer func() {
		if r := recover(); r != nil {
			predictor = nil
			err = fmt.Errorf("%w: %v", ErrPrediction, r)
		}
	}()
	model := ReadJSONFromFile[LinearModel](file)
	return &LinearPredictor{model: model}, nil
}

func (self *LinearPredictor) Predict(ctx TimeContext, features EdgeFeatures) (float64, error) {
	c := self.model.Coefficients
	peak := 0.0
	if ctx.IsPeak {
		peak = 1.0
	}
	flow := self.model.Intercept +
		c.Hour*float64(ctx.Hour) +
		c.DayOfWeek*float64(ctx.DayOfWeek) +
		c.IsPeak*peak +
		c.Capacity*features.Capacity +
		c.LengthM*features.Length +
		c.FlowLag1*features.FlowLag1 +
		c.FlowLag2*features.FlowLag2
	if flow < 0 {
		flow = 0
	}
	return flow, nil
}
