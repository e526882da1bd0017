package main

import (
	"encoding/json"
	"errors"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	config._SetDefaults()
	return config
}

type Config struct {
	Graph struct {
		Nodes  string        `yaml:"nodes"`
		Edges  string        `yaml:"edges"`
		Build  bool          `yaml:"build"`
		Source SourceOptions `yaml:"source"`
	} `yaml:"graph"`
	Predictor struct {
		Type  PredictorType `yaml:"type"`
		Model string        `yaml:"model"`
	} `yaml:"predictor"`
	Routing struct {
		Alpha    float64 `yaml:"alpha"`
		DefaultK int     `yaml:"default-k"`
	} `yaml:"routing"`
	Server struct {
		Addr          string `yaml:"addr"`
		AllowedOrigin string `yaml:"allowed-origin"`
	} `yaml:"server"`
}

func (self *Config) _SetDefaults() {
	if self.Graph.Nodes == "" {
		self.Graph.Nodes = "./data/nodes.csv"
	}
	if self.Graph.Edges == "" {
		self.Graph.Edges = "./data/edges.csv"
	}
	if self.Routing.Alpha == 0 {
		self.Routing.Alpha = 0.7
	}
	if self.Routing.DefaultK == 0 {
		self.Routing.DefaultK = 3
	}
	if self.Server.Addr == "" {
		self.Server.Addr = ":5002"
	}
	if self.Server.AllowedOrigin == "" {
		self.Server.AllowedOrigin = "*"
	}
}

type SourceOptions struct {
	Type  SourceType `yaml:"type"`
	Paths string     `yaml:"paths"`
	POIs  string     `yaml:"pois"`
	OSM   string     `yaml:"osm"`
}

//**********************************************************
// enums
//**********************************************************

type PredictorType byte

const (
	BASELINE PredictorType = 0
	LINEAR   PredictorType = 1
)

func (self PredictorType) String() string {
	switch self {
	case BASELINE:
		return "baseline"
	case LINEAR:
		return "linear"
	default:
		panic("unknown predictor type")
	}
}
func (self PredictorType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *PredictorType) UnmarshalJSON(data []byte) error {
	var typ string
	err := json.Unmarshal(data, &typ)
	if err != nil {
		return err
	}
	*self, err = PredictorTypeFromString(typ)
	return err
}
func (self PredictorType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *PredictorType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := PredictorTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func PredictorTypeFromString(s string) (PredictorType, error) {
	switch s {
	case "baseline", "":
		return BASELINE, nil
	case "linear":
		return LINEAR, nil
	default:
		return BASELINE, errors.New("unknown predictor type")
	}
}

type SourceType byte

const (
	GEOJSON SourceType = 0
	OSM     SourceType = 1
)

func (self SourceType) String() string {
	switch self {
	case GEOJSON:
		return "geojson"
	case OSM:
		return "osm"
	default:
		panic("unknown source type")
	}
}
func (self SourceType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *SourceType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := SourceTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func SourceTypeFromString(s string) (SourceType, error) {
	switch s {
	case "geojson", "":
		return GEOJSON, nil
	case "osm":
		return OSM, nil
	default:
		return GEOJSON, errors.New("unknown source type")
	}
}

type RoutingMode byte

const (
	DISTANCE  RoutingMode = 0
	PENALIZED RoutingMode = 1
	BOTH      RoutingMode = 2
)

func (self RoutingMode) String() string {
	switch self {
	case DISTANCE:
		return "distance"
	case PENALIZED:
		return "penalized"
	case BOTH:
		return "both"
	default:
		panic("unknown routing mode")
	}
}
func (self RoutingMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *RoutingMode) UnmarshalJSON(data []byte) error {
	var typ string
	err := json.Unmarshal(data, &typ)
	if err != nil {
		return err
	}
	*self, err = RoutingModeFromString(typ)
	return err
}

func RoutingModeFromString(s string) (RoutingMode, error) {
	switch s {
	case "distance":
		return DISTANCE, nil
	case "penalized":
		return PENALIZED, nil
	case "both", "":
		return BOTH, nil
	default:
		return BOTH, errors.New("unknown routing mode")
	}
}
