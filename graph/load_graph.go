package graph

import (
	"fmt"

	. "github.com/ttpr0/campus-routing/util"
)

//*******************************************
// csv loading
//*******************************************

// LoadGraphCSV reads the nodes and edges tables and builds the store.
// Any malformed row fails the whole load.
func LoadGraphCSV(nodes_file, edges_file string) (store *GraphStore, err error) {
	defer func() {
		if r := recover(); r != nil {
			store = nil
			err = fmt.Errorf("%w: %v", ErrMalformedGraph, r)
		}
	}()

	node_rows := NewList[NodeRow](100)
	for row := range ReadCSVFromFile[NodeRow](nodes_file, ',') {
		node_rows.Add(row)
	}
	edge_rows := NewList[EdgeRow](100)
	for row := range ReadCSVFromFile[EdgeRow](edges_file, ',') {
		edge_rows.Add(row)
	}

	return BuildGraphStore(node_rows, edge_rows)
}
