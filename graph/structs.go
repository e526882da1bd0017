package graph

import (
	"encoding/json"
	"errors"

	"github.com/ttpr0/campus-routing/geo"
)

//*******************************************
// graph structs
//*******************************************

type Node struct {
	ID    string
	Loc   geo.Coord
	Label string
	Kind  NodeKind
}

// Edge is stored with a canonical direction (NodeA -> NodeB) but
// traversable both ways.
type Edge struct {
	ID       string
	NodeA    int32
	NodeB    int32
	Length   float64
	Capacity float64
	Kind     EdgeKind
}

// EdgeRef is the view of an edge from one of its endpoints.
type EdgeRef struct {
	EdgeID  int32
	OtherID int32
}

//*******************************************
// enums
//*******************************************

type NodeKind byte

const (
	JUNCTION NodeKind = 0
	POI      NodeKind = 1
)

func (self NodeKind) String() string {
	switch self {
	case JUNCTION:
		return "junction"
	case POI:
		return "poi"
	default:
		panic("unknown node kind")
	}
}
func (self NodeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *NodeKind) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	kind, err := NodeKindFromString(typ)
	*self = kind
	return err
}

func NodeKindFromString(s string) (NodeKind, error) {
	switch s {
	case "junction", "":
		return JUNCTION, nil
	case "poi":
		return POI, nil
	default:
		return JUNCTION, errors.New("unknown node kind")
	}
}

type EdgeKind byte

const (
	PATH      EdgeKind = 0
	ROAD      EdgeKind = 1
	CONNECTOR EdgeKind = 2
)

func (self EdgeKind) String() string {
	switch self {
	case PATH:
		return "path"
	case ROAD:
		return "road"
	case CONNECTOR:
		return "connector"
	default:
		panic("unknown edge kind")
	}
}
func (self EdgeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *EdgeKind) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	kind, err := EdgeKindFromString(typ)
	*self = kind
	return err
}

func EdgeKindFromString(s string) (EdgeKind, error) {
	switch s {
	case "path", "":
		return PATH, nil
	case "road":
		return ROAD, nil
	case "connector":
		return CONNECTOR, nil
	default:
		return PATH, errors.New("unknown edge kind")
	}
}
