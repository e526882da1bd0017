package main

import (
	"errors"
	"strconv"

	"github.com/ttpr0/campus-routing/flow"
)

//**********************************************************
// forecast handler
//**********************************************************

func HandleForecastRequest(req ForecastRequest) Result {
	is_peak := flow.IsPeakHour(req.Hour)
	if req.IsPeak != "" {
		val, err := strconv.ParseBool(req.IsPeak)
		if err != nil {
			return BadRequest("invalid is_peak: " + req.IsPeak)
		}
		is_peak = val
	}
	ctx := flow.TimeContext{
		Hour:      req.Hour,
		DayOfWeek: req.DayOfWeek,
		IsPeak:    is_peak,
	}
	entry, err := MANAGER.ComputeForecast(ctx)
	if err != nil {
		if errors.Is(err, flow.ErrPrediction) {
			return ServerError(err.Error())
		}
		return BadRequest(err.Error())
	}
	return OK(entry.Rows())
}
