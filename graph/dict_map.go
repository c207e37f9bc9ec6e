package graph

import (
	"errors"
	"fmt"

	"github.com/ttpr0/go-mapmatch/geo"
	. "github.com/ttpr0/go-mapmatch/util"
)

var ErrNodeNotFound = errors.New("node not found")

//*******************************************
// dictionary graph store
//*******************************************

// Graph store using a label-keyed dictionary.
// Owns all node records; nothing outside this type mutates them.
type DictMap struct {
	nodes Dict[string, Node]
}

func NewDictMap() *DictMap {
	return &DictMap{
		nodes: NewDict[string, Node](10),
	}
}

func (self *DictMap) NodeCount() int {
	return self.nodes.Length()
}
func (self *DictMap) IsNode(label string) bool {
	return self.nodes.ContainsKey(label)
}
func (self *DictMap) NodeLoc(label string) (geo.Coord, bool) {
	node, ok := self.nodes[label]
	if !ok || node.Loc == nil {
		return geo.Coord{}, false
	}
	return *node.Loc, true
}

// Returns all labels, including those without a known position.
func (self *DictMap) Labels() List[string] {
	return self.nodes.Keys()
}

// Adds a node with the given position.
// If the label exists without a position the position is attached; an
// already known position is kept (first write wins).
func (self *DictMap) AddNode(label string, loc geo.Coord) {
	if node, ok := self.nodes[label]; ok {
		if node.Loc == nil {
			node.Loc = &loc
			self.nodes[label] = node
		}
		return
	}
	self.nodes[label] = Node{
		Loc: &loc,
		Fwd: NewList[string](2),
		Bwd: NewList[string](2),
	}
}

// Registers a label without a position.
// A later AddNode for the same label fills the position in.
func (self *DictMap) AddStub(label string) {
	if self.nodes.ContainsKey(label) {
		return
	}
	self.nodes[label] = Node{
		Loc: nil,
		Fwd: NewList[string](2),
		Bwd: NewList[string](2),
	}
}

// Adds a directed edge between two existing labels.
// Repeated calls leave a single adjacency entry on either side.
func (self *DictMap) AddEdge(node_a, node_b string) error {
	if !self.nodes.ContainsKey(node_a) {
		return fmt.Errorf("add %v first as node: %w", node_a, ErrNodeNotFound)
	}
	if !self.nodes.ContainsKey(node_b) {
		return fmt.Errorf("add %v first as node: %w", node_b, ErrNodeNotFound)
	}
	na := self.nodes[node_a]
	if !_ContainsLabel(na.Fwd, node_b) {
		na.Fwd.Add(node_b)
		self.nodes[node_a] = na
	}
	nb := self.nodes[node_b]
	if !_ContainsLabel(nb.Bwd, node_a) {
		nb.Bwd.Add(node_a)
		self.nodes[node_b] = nb
	}
	return nil
}

// Removes nodes without a position and nodes without any edge.
// Returns the count removed in either category.
func (self *DictMap) Purge() (int, int) {
	cnt_noloc := 0
	cnt_noedges := 0
	remove := NewList[string](10)
	for label, node := range self.nodes {
		if node.Loc == nil {
			cnt_noloc += 1
			remove.Add(label)
		} else if node.Fwd.Length() == 0 && node.Bwd.Length() == 0 {
			cnt_noedges += 1
			remove.Add(label)
		}
	}
	for _, label := range remove {
		self.nodes.Delete(label)
	}
	return cnt_noloc, cnt_noedges
}

// Yields (label, position) for every node with a known position.
func (self *DictMap) AllNodes() func(yield func(string, geo.Coord) bool) {
	return func(yield func(string, geo.Coord) bool) {
		for label, node := range self.nodes {
			if node.Loc == nil {
				continue
			}
			if !yield(label, *node.Loc) {
				return
			}
		}
	}
}

// Yields every outgoing edge whose endpoints both exist and have known
// positions; dangling neighbor labels are skipped.
func (self *DictMap) AllEdges() func(yield func(Edge) bool) {
	return func(yield func(Edge) bool) {
		for label_a, node_a := range self.nodes {
			if node_a.Loc == nil {
				continue
			}
			for _, label_b := range node_a.Fwd {
				node_b, ok := self.nodes[label_b]
				if !ok || node_b.Loc == nil {
					continue
				}
				edge := Edge{
					LabelA: label_a,
					LocA:   *node_a.Loc,
					LabelB: label_b,
					LocB:   *node_b.Loc,
				}
				if !yield(edge) {
					return
				}
			}
		}
	}
}

// Returns the outgoing neighbors of a node plus the node itself,
// omitting entries without a known position.
// Unknown labels yield an empty list.
func (self *DictMap) NeighborsOf(label string) List[Neighbor] {
	results := NewList[Neighbor](4)
	node, ok := self.nodes[label]
	if !ok {
		return results
	}
	for _, nbr_label := range node.Fwd {
		nbr, ok := self.nodes[nbr_label]
		if !ok || nbr.Loc == nil {
			continue
		}
		results.Add(Neighbor{Label: nbr_label, Loc: *nbr.Loc})
	}
	// a node is always a neighbor of itself
	if node.Loc != nil {
		results.Add(Neighbor{Label: label, Loc: *node.Loc})
	}
	return results
}

func _ContainsLabel(list List[string], label string) bool {
	for _, item := range list {
		if item == label {
			return true
		}
	}
	return false
}
