package graph

import (
	"errors"
	"testing"

	"github.com/ttpr0/go-mapmatch/geo"
)

func TestAddNodeFirstWriteWins(t *testing.T) {
	store := NewDictMap()

	store.AddNode("A", geo.Coord{1, 2})
	store.AddNode("A", geo.Coord{3, 4})
	loc, ok := store.NodeLoc("A")
	if !ok || loc != (geo.Coord{1, 2}) {
		t.Errorf("NodeLoc(A) = %v, %v; want (1, 2), true", loc, ok)
	}

	store.AddStub("B")
	if _, ok := store.NodeLoc("B"); ok {
		t.Errorf("NodeLoc(B) = ok; want unknown position")
	}
	store.AddNode("B", geo.Coord{5, 6})
	loc, ok = store.NodeLoc("B")
	if !ok || loc != (geo.Coord{5, 6}) {
		t.Errorf("NodeLoc(B) = %v, %v; want (5, 6), true", loc, ok)
	}

	if store.NodeCount() != 2 {
		t.Errorf("NodeCount = %v; want 2", store.NodeCount())
	}
}

func TestAddEdge(t *testing.T) {
	store := NewDictMap()
	store.AddNode("A", geo.Coord{0, 0})
	store.AddNode("B", geo.Coord{0, 1})

	for i := 0; i < 3; i++ {
		if err := store.AddEdge("A", "B"); err != nil {
			t.Fatalf("AddEdge failed: %v", err)
		}
	}
	na := store.nodes["A"]
	nb := store.nodes["B"]
	if na.Fwd.Length() != 1 || na.Fwd[0] != "B" {
		t.Errorf("A.Fwd = %v; want [B]", na.Fwd)
	}
	if nb.Bwd.Length() != 1 || nb.Bwd[0] != "A" {
		t.Errorf("B.Bwd = %v; want [A]", nb.Bwd)
	}
	if na.Bwd.Length() != 0 || nb.Fwd.Length() != 0 {
		t.Errorf("unexpected reverse adjacency: A.Bwd = %v, B.Fwd = %v", na.Bwd, nb.Fwd)
	}
}

func TestAddEdgeNodeNotFound(t *testing.T) {
	store := NewDictMap()
	store.AddNode("A", geo.Coord{0, 0})

	if err := store.AddEdge("A", "X"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("AddEdge(A, X) = %v; want ErrNodeNotFound", err)
	}
	if err := store.AddEdge("X", "A"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("AddEdge(X, A) = %v; want ErrNodeNotFound", err)
	}
	na := store.nodes["A"]
	if na.Fwd.Length() != 0 || na.Bwd.Length() != 0 {
		t.Errorf("failed AddEdge left adjacency entries: %v, %v", na.Fwd, na.Bwd)
	}
}

func TestSelfLoop(t *testing.T) {
	store := NewDictMap()
	store.AddNode("A", geo.Coord{0, 0})

	if err := store.AddEdge("A", "A"); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	na := store.nodes["A"]
	if na.Fwd.Length() != 1 || na.Bwd.Length() != 1 {
		t.Errorf("A adjacency = %v, %v; want [A], [A]", na.Fwd, na.Bwd)
	}
}

func TestPurge(t *testing.T) {
	store := NewDictMap()
	store.AddNode("A", geo.Coord{0, 0})
	store.AddNode("B", geo.Coord{0, 1})
	store.AddNode("C", geo.Coord{1, 1})
	store.AddStub("X")
	store.AddStub("Y")
	store.AddEdge("A", "B")

	cnt_noloc, cnt_noedges := store.Purge()
	if cnt_noloc != 2 {
		t.Errorf("purged %v nodes without location; want 2", cnt_noloc)
	}
	if cnt_noedges != 1 {
		t.Errorf("purged %v nodes without edges; want 1", cnt_noedges)
	}
	if store.NodeCount() != 2 {
		t.Errorf("NodeCount = %v; want 2", store.NodeCount())
	}
	if store.IsNode("C") || store.IsNode("X") || store.IsNode("Y") {
		t.Errorf("purge left unexpected nodes: %v", store.Labels())
	}

	cnt_noloc, cnt_noedges = store.Purge()
	if cnt_noloc != 0 || cnt_noedges != 0 {
		t.Errorf("second purge removed (%v, %v) nodes; want (0, 0)", cnt_noloc, cnt_noedges)
	}
}

func TestPurgeKeepsStubWithEdges(t *testing.T) {
	store := NewDictMap()
	store.AddNode("A", geo.Coord{0, 0})
	store.AddStub("X")
	store.AddEdge("A", "X")

	cnt_noloc, _ := store.Purge()
	if cnt_noloc != 1 {
		t.Errorf("purged %v nodes without location; want 1", cnt_noloc)
	}
	if store.IsNode("X") {
		t.Errorf("stub with edges survived by position rule; want removed")
	}
	// A now has a dangling outgoing reference to X, tolerated silently
	if !store.IsNode("A") {
		t.Errorf("A was removed; want kept")
	}
	for edge := range store.AllEdges() {
		t.Errorf("AllEdges yielded dangling edge %v", edge)
	}
}

func TestAllNodes(t *testing.T) {
	store := NewDictMap()
	store.AddNode("A", geo.Coord{0, 0})
	store.AddNode("B", geo.Coord{0, 1})
	store.AddStub("X")

	seen := map[string]geo.Coord{}
	for label, loc := range store.AllNodes() {
		seen[label] = loc
	}
	if len(seen) != 2 {
		t.Errorf("AllNodes yielded %v nodes; want 2", len(seen))
	}
	if _, ok := seen["X"]; ok {
		t.Errorf("AllNodes yielded stub X")
	}
	if seen["B"] != (geo.Coord{0, 1}) {
		t.Errorf("AllNodes B = %v; want (0, 1)", seen["B"])
	}
}

func TestAllEdges(t *testing.T) {
	store := NewDictMap()
	store.AddNode("A", geo.Coord{0, 0})
	store.AddNode("B", geo.Coord{0, 1})
	store.AddStub("X")
	store.AddEdge("A", "B")
	store.AddEdge("B", "X")

	edges := []Edge{}
	for edge := range store.AllEdges() {
		edges = append(edges, edge)
	}
	if len(edges) != 1 {
		t.Fatalf("AllEdges yielded %v edges; want 1", len(edges))
	}
	edge := edges[0]
	if edge.LabelA != "A" || edge.LabelB != "B" {
		t.Errorf("edge = %v -> %v; want A -> B", edge.LabelA, edge.LabelB)
	}
	if edge.LocA != (geo.Coord{0, 0}) || edge.LocB != (geo.Coord{0, 1}) {
		t.Errorf("edge locations = %v, %v; want (0, 0), (0, 1)", edge.LocA, edge.LocB)
	}
}

func TestNeighborsOf(t *testing.T) {
	store := NewDictMap()
	store.AddNode("A", geo.Coord{0, 0})
	store.AddNode("B", geo.Coord{0, 1})
	store.AddNode("C", geo.Coord{1, 1})
	store.AddStub("X")
	store.AddEdge("A", "B")
	store.AddEdge("A", "C")
	store.AddEdge("A", "X")
	store.AddEdge("B", "A")

	nbrs := store.NeighborsOf("A")
	if nbrs.Length() != 3 {
		t.Fatalf("NeighborsOf(A) = %v entries; want 3", nbrs.Length())
	}
	seen := map[string]bool{}
	for _, nbr := range nbrs {
		seen[nbr.Label] = true
	}
	// outgoing neighbors plus A itself, stub X omitted
	if !seen["A"] || !seen["B"] || !seen["C"] || seen["X"] {
		t.Errorf("NeighborsOf(A) = %v; want A, B, C", nbrs)
	}

	if store.NeighborsOf("unknown").Length() != 0 {
		t.Errorf("NeighborsOf(unknown) is not empty")
	}
}
