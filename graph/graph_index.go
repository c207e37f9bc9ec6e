package graph

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
	"github.com/ttpr0/go-mapmatch/geo"
	. "github.com/ttpr0/go-mapmatch/util"
)

//*******************************************
// node index
//*******************************************

type _IndexItem struct {
	label string
	point orb.Point
}

func (self _IndexItem) Point() orb.Point {
	return self.point
}

// Spatial index over the node positions of a graph store.
// The index is a snapshot: it is not kept in sync with the store after
// being built.
type NodeIndex struct {
	items List[_IndexItem]
	tree  *quadtree.Quadtree
}

// Builds an index from every node with a known position.
func BuildNodeIndex(store *DictMap) *NodeIndex {
	items := NewList[_IndexItem](store.NodeCount())
	for label, loc := range store.AllNodes() {
		items.Add(_IndexItem{label: label, point: loc.Point()})
	}
	return _NewNodeIndex(items)
}

// Rebuilds an index from a stored snapshot without touching the store.
func NodeIndexFromSnapshot(snapshot List[Neighbor]) *NodeIndex {
	items := NewList[_IndexItem](snapshot.Length())
	for _, item := range snapshot {
		items.Add(_IndexItem{label: item.Label, point: item.Loc.Point()})
	}
	return _NewNodeIndex(items)
}

func _NewNodeIndex(items List[_IndexItem]) *NodeIndex {
	if items.Length() == 0 {
		return &NodeIndex{items: items}
	}
	bound := orb.Bound{Min: items[0].point, Max: items[0].point}
	for _, item := range items {
		bound = bound.Extend(item.point)
	}
	tree := quadtree.New(bound)
	for _, item := range items {
		// the bound spans every item, Add cannot reject
		_ = tree.Add(item)
	}
	return &NodeIndex{
		items: items,
		tree:  tree,
	}
}

func (self *NodeIndex) Size() int {
	return self.items.Length()
}

// Returns the indexed (label, position) pairs, e.g. for storing the
// index next to the graph artifact.
func (self *NodeIndex) Snapshot() List[Neighbor] {
	snapshot := NewList[Neighbor](self.items.Length())
	for _, item := range self.items {
		snapshot.Add(Neighbor{Label: item.label, Loc: geo.CoordFromPoint(item.point)})
	}
	return snapshot
}

// Envelope over all indexed positions, component order matching the
// position order of the map.
// ok is false for an empty index.
func (self *NodeIndex) BoundingBox() (geo.Coord, geo.Coord, bool) {
	if self.items.Length() == 0 {
		return geo.Coord{}, geo.Coord{}, false
	}
	bound := orb.Bound{Min: self.items[0].point, Max: self.items[0].point}
	for _, item := range self.items {
		bound = bound.Extend(item.point)
	}
	return geo.CoordFromPoint(bound.Min), geo.CoordFromPoint(bound.Max), true
}

// Returns nodes within max_dist of loc (inclusive) sorted by
// non-decreasing distance, at most max_count entries.
// max_dist < 0 disables the distance filter, max_count <= 0 the count
// truncation. Distances are planar in the units of the indexed
// positions.
func (self *NodeIndex) Nearest(loc geo.Coord, max_dist float64, max_count int) List[NodeMatch] {
	results := NewList[NodeMatch](8)
	if self.tree == nil {
		return results
	}
	k := max_count
	if k <= 0 || k > self.items.Length() {
		k = self.items.Length()
	}
	// the tree's own radius filter is exclusive, so the distance cut
	// is applied here instead
	found := self.tree.KNearest(nil, loc.Point(), k)
	for _, p := range found {
		item := p.(_IndexItem)
		dist := geo.Distance(loc, geo.CoordFromPoint(item.point))
		if max_dist >= 0 && dist > max_dist {
			continue
		}
		results.Add(NodeMatch{
			Label: item.label,
			Loc:   geo.CoordFromPoint(item.point),
			Dist:  dist,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Dist < results[j].Dist
	})
	return results
}
