package parser

import (
	"testing"

	"github.com/ttpr0/go-mapmatch/geo"
	"github.com/ttpr0/go-mapmatch/graph"
)

func _NewTestMap(t *testing.T) *graph.Map {
	nmap, err := graph.NewMap(graph.GEOGRAPHIC, "", "")
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	return nmap
}

func TestParseMapFromOSM(t *testing.T) {
	nmap := _NewTestMap(t)
	if err := ParseMapFromOSM("./testdata/map.osm", nmap); err != nil {
		t.Fatalf("ParseMapFromOSM failed: %v", err)
	}

	// nodes 1-4 from road ways, 99 as a stub; 5 only belongs to a
	// footway and is ignored
	if nmap.NodeCount() != 5 {
		t.Errorf("NodeCount = %v; want 5", nmap.NodeCount())
	}
	loc, ok := nmap.NodeLoc("1")
	if !ok || loc != (geo.Coord{50.85, 4.35}) {
		t.Errorf("NodeLoc(1) = %v, %v; want (50.85, 4.35)", loc, ok)
	}
	if _, ok := nmap.NodeLoc("99"); ok {
		t.Errorf("node 99 outside the extract has a position")
	}
	if _, ok := nmap.NodeLoc("5"); ok {
		t.Errorf("footway node 5 was added")
	}

	edges := 0
	for range nmap.AllEdges() {
		edges += 1
	}
	// way 10 in both directions (4), way 11 oneway (1); the edges to
	// the stub 99 have no resolvable endpoint
	if edges != 5 {
		t.Errorf("AllEdges = %v edges; want 5", edges)
	}

	// oneway: 3 -> 4 but not 4 -> 3
	nbrs := nmap.NeighborsOf("3")
	seen := map[string]bool{}
	for _, nbr := range nbrs {
		seen[nbr.Label] = true
	}
	if !seen["2"] || !seen["4"] || !seen["3"] {
		t.Errorf("NeighborsOf(3) = %v; want 2, 4 and itself", nbrs)
	}
	for _, nbr := range nmap.NeighborsOf("4") {
		if nbr.Label == "3" {
			t.Errorf("oneway way produced a reverse edge 4 -> 3")
		}
	}

	cnt_noloc, _ := nmap.Purge()
	if cnt_noloc != 1 {
		t.Errorf("Purge removed %v stubs; want 1", cnt_noloc)
	}
}

func TestParseMapFromCSV(t *testing.T) {
	nmap := _NewTestMap(t)
	ParseMapFromCSV("./testdata/nodes.csv", "./testdata/edges.csv", nmap)

	// A-D from the node table plus the stub X from the edge table
	if nmap.NodeCount() != 5 {
		t.Errorf("NodeCount = %v; want 5", nmap.NodeCount())
	}
	loc, ok := nmap.NodeLoc("B")
	if !ok || loc != (geo.Coord{50.86, 4.36}) {
		t.Errorf("NodeLoc(B) = %v, %v; want (50.86, 4.36)", loc, ok)
	}

	edges := 0
	for range nmap.AllEdges() {
		edges += 1
	}
	if edges != 2 {
		t.Errorf("AllEdges = %v edges; want 2", edges)
	}

	cnt_noloc, cnt_noedges := nmap.Purge()
	if cnt_noloc != 1 || cnt_noedges != 1 {
		t.Errorf("Purge = (%v, %v); want (1, 1)", cnt_noloc, cnt_noedges)
	}
}
