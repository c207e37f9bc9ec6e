package parser

import (
	"github.com/ttpr0/go-mapmatch/geo"
	"github.com/ttpr0/go-mapmatch/graph"
	. "github.com/ttpr0/go-mapmatch/util"
)

//*******************************************
// csv parser
//*******************************************

type CSVNode struct {
	Label string  `csv:"label"`
	Lat   float64 `csv:"lat"`
	Lon   float64 `csv:"lon"`
}

type CSVEdge struct {
	NodeA string `csv:"from"`
	NodeB string `csv:"to"`
}

// Builds a map from a node table (label;lat;lon) and an edge table
// (from;to).
// Edge endpoints missing from the node table become position-less
// stubs, removed by a later Purge.
func ParseMapFromCSV(node_file, edge_file string, nmap *graph.Map) {
	for node := range ReadCSVFromFile[CSVNode](node_file, ';') {
		nmap.AddNode(node.Label, geo.Coord{node.Lat, node.Lon})
	}
	for edge := range ReadCSVFromFile[CSVEdge](edge_file, ';') {
		nmap.AddStub(edge.NodeA)
		nmap.AddStub(edge.NodeB)
		nmap.AddEdge(edge.NodeA, edge.NodeB)
	}
}
