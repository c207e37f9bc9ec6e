package graph

import (
	"github.com/ttpr0/go-mapmatch/geo"
	. "github.com/ttpr0/go-mapmatch/util"
)

//*******************************************
// graph structs
//*******************************************

// Node record of the graph store.
// Loc is nil while the position is still unknown (e.g. a node referenced
// by an edge before its coordinate was read).
type Node struct {
	Loc *geo.Coord   `json:"loc"`
	Fwd List[string] `json:"out"`
	Bwd List[string] `json:"in"`
}

// Edge as yielded by AllEdges, both endpoints resolved.
type Edge struct {
	LabelA string
	LocA   geo.Coord
	LabelB string
	LocB   geo.Coord
}

// Neighbor as returned by NeighborsOf.
type Neighbor struct {
	Label string
	Loc   geo.Coord
}

// NodeMatch is a query result of the node index.
type NodeMatch struct {
	Label string
	Loc   geo.Coord
	Dist  float64
}
