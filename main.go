package main

import (
	"net/http"

	"golang.org/x/exp/slog"
)

var MANAGER *RoutingManager

func main() {
	InitLogging()

	config := ReadConfig("./config.yaml")
	ALLOWED_ORIGIN = config.Server.AllowedOrigin
	MANAGER = NewRoutingManager(config)

	app := http.DefaultServeMux
	MapGet(app, "/v1/graph", HandleGraphRequest)
	MapGet(app, "/v1/graph/geojson", HandleGraphGeoJSONRequest)
	MapGet(app, "/v1/forecast", HandleForecastRequest)
	MapGet(app, "/v1/routing", HandleRoutingRequest)

	slog.Info("listening on " + config.Server.Addr)
	if err := http.ListenAndServe(config.Server.Addr, nil); err != nil {
		slog.Error(err.Error())
	}
}
