package main

//**********************************************************
// request params
//**********************************************************

type RoutingRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Mode   string `json:"mode"`
	K      int    `json:"k"`
}

// IsPeak is kept as a raw string so an absent param can fall back to
// the peak-hour table instead of defaulting to false.
type ForecastRequest struct {
	Hour      int32  `json:"hour"`
	DayOfWeek int32  `json:"day_of_week"`
	IsPeak    string `json:"is_peak"`
}
