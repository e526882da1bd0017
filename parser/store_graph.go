package parser

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ttpr0/campus-routing/graph"
	. "github.com/ttpr0/campus-routing/util"
)

//*******************************************
// csv output
//*******************************************

// StoreGraphCSV writes the parsed tables in the layout the graph
// loader expects.
func StoreGraphCSV(node_rows List[graph.NodeRow], edge_rows List[graph.EdgeRow], nodes_file, edges_file string) error {
	nf, err := os.Create(nodes_file)
	if err != nil {
		return err
	}
	defer nf.Close()
	node_writer := csv.NewWriter(nf)
	node_writer.Write([]string{"id", "lat", "lon", "label", "kind"})
	for _, row := range node_rows {
		node_writer.Write([]string{
			row.ID,
			fmt.Sprintf("%v", row.Lat),
			fmt.Sprintf("%v", row.Lon),
			row.Label,
			row.Kind,
		})
	}
	node_writer.Flush()
	if err := node_writer.Error(); err != nil {
		return err
	}

	ef, err := os.Create(edges_file)
	if err != nil {
		return err
	}
	defer ef.Close()
	edge_writer := csv.NewWriter(ef)
	edge_writer.Write([]string{"id", "source", "target", "length_m", "capacity", "kind"})
	for _, row := range edge_rows {
		edge_writer.Write([]string{
			row.ID,
			row.Source,
			row.Target,
			fmt.Sprintf("%v", row.Length),
			fmt.Sprintf("%v", row.Capacity),
			row.Kind,
		})
	}
	edge_writer.Flush()
	return edge_writer.Error()
}
