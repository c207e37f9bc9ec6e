package graph

import (
	"fmt"

	"github.com/ttpr0/go-mapmatch/geo"
	. "github.com/ttpr0/go-mapmatch/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// map
//*******************************************

type CoordinateMode string

const (
	GEOGRAPHIC CoordinateMode = "geographic"
	PROJECTED  CoordinateMode = "projected"
)

// In-memory map of a spatial network, the backend queried by a
// trajectory-alignment consumer.
// A map lives in a single coordinate mode fixed at construction;
// Reproject derives an independent map in the other mode.
type Map struct {
	store       *DictMap
	index       *NodeIndex
	mode        CoordinateMode
	transformer geo.Transformer
	logger      *slog.Logger
}

// Creates an empty map.
// Empty crs names select the defaults (EPSG:4326 / EPSG:3857).
func NewMap(mode CoordinateMode, crs_geographic, crs_projected string) (*Map, error) {
	if mode != GEOGRAPHIC && mode != PROJECTED {
		return nil, fmt.Errorf("invalid coordinate mode: %v", mode)
	}
	if crs_geographic == "" {
		crs_geographic = geo.CRS_WGS84
	}
	if crs_projected == "" {
		crs_projected = geo.CRS_MERCATOR
	}
	transformer, err := geo.NewTransformer(crs_geographic, crs_projected)
	if err != nil {
		return nil, err
	}
	return &Map{
		store:       NewDictMap(),
		index:       nil,
		mode:        mode,
		transformer: transformer,
		logger:      slog.Default(),
	}, nil
}

// Replaces the logger (slog.Default() until set).
func (self *Map) SetLogger(logger *slog.Logger) {
	if logger != nil {
		self.logger = logger
	}
}

func (self *Map) Mode() CoordinateMode {
	return self.mode
}
func (self *Map) GeographicCRS() string {
	return self.transformer.GeographicCRS()
}
func (self *Map) ProjectedCRS() string {
	return self.transformer.ProjectedCRS()
}

//*******************************************
// graph store delegation
//*******************************************

func (self *Map) AddNode(label string, loc geo.Coord) {
	self.store.AddNode(label, loc)
}
func (self *Map) AddStub(label string) {
	self.store.AddStub(label)
}
func (self *Map) AddEdge(node_a, node_b string) error {
	return self.store.AddEdge(node_a, node_b)
}
func (self *Map) NodeCount() int {
	return self.store.NodeCount()
}
func (self *Map) Labels() List[string] {
	return self.store.Labels()
}
func (self *Map) NodeLoc(label string) (geo.Coord, bool) {
	return self.store.NodeLoc(label)
}
func (self *Map) AllNodes() func(yield func(string, geo.Coord) bool) {
	return self.store.AllNodes()
}
func (self *Map) AllEdges() func(yield func(Edge) bool) {
	return self.store.AllEdges()
}
func (self *Map) NeighborsOf(label string) List[Neighbor] {
	return self.store.NeighborsOf(label)
}

func (self *Map) Purge() (int, int) {
	cnt_noloc, cnt_noedges := self.store.Purge()
	self.logger.Info(fmt.Sprintf("removed %v nodes without location", cnt_noloc))
	self.logger.Info(fmt.Sprintf("removed %v nodes without edges", cnt_noedges))
	return cnt_noloc, cnt_noedges
}

//*******************************************
// spatial queries
//*******************************************

// Builds the node index if it has not been built yet.
// The index is never invalidated by mutations; callers batching
// add_node/add_edge/purge have to force a rebuild once before querying
// again.
func (self *Map) PrepareIndex(force bool) {
	if self.index != nil && !force {
		return
	}
	self.index = BuildNodeIndex(self.store)
	self.logger.Debug(fmt.Sprintf("built node index with %v entries", self.index.Size()))
}

func (self *Map) HasIndex() bool {
	return self.index != nil
}

// Envelope over all indexed node positions as (min, max) coords.
// ok is false for a map without positioned nodes.
func (self *Map) BoundingBox() (geo.Coord, geo.Coord, bool) {
	self.PrepareIndex(false)
	return self.index.BoundingBox()
}

// Returns the indexed nodes within max_dist of loc, closest first,
// truncated to max_count.
// Distances are native to the coordinate mode: angular degrees on a
// geographic map, linear units on a projected one. Reproject first for
// true euclidean distances.
func (self *Map) NearestNodes(loc geo.Coord, max_dist float64, max_count int) List[NodeMatch] {
	self.PrepareIndex(false)
	return self.index.Nearest(loc, max_dist, max_count)
}

//*******************************************
// reprojection
//*******************************************

// Derives a map in projected coordinates on which euclidean distances
// can be used.
// Labels and adjacency are copied, positions run through the
// transformer and the index is built fresh; the source map is left
// untouched. A projected map returns itself.
func (self *Map) Reproject() *Map {
	if self.mode == PROJECTED {
		return self
	}
	nmap := &Map{
		store:       NewDictMap(),
		index:       nil,
		mode:        PROJECTED,
		transformer: self.transformer,
		logger:      self.logger,
	}
	for label, node := range self.store.nodes {
		nnode := Node{
			Loc: nil,
			Fwd: append(NewList[string](node.Fwd.Length()), node.Fwd...),
			Bwd: append(NewList[string](node.Bwd.Length()), node.Bwd...),
		}
		if node.Loc != nil {
			loc := self.transformer.CoordToProjected(*node.Loc)
			nnode.Loc = &loc
		}
		nmap.store.nodes[label] = nnode
	}
	self.logger.Debug("projected all coordinates")
	nmap.PrepareIndex(true)
	return nmap
}

//*******************************************
// coordinate transforms
//*******************************************

func (self *Map) GeographicToProjected(lat, lon float64) (float64, float64) {
	return self.transformer.GeographicToProjected(lat, lon)
}
func (self *Map) ProjectedToGeographic(x, y float64) (float64, float64) {
	return self.transformer.ProjectedToGeographic(x, y)
}

//*******************************************
// stats
//*******************************************

func (self *Map) PrintStats() {
	self.logger.Info(fmt.Sprintf("nodes: %v", self.store.NodeCount()))
	edge_count := 0
	for range self.store.AllEdges() {
		edge_count += 1
	}
	self.logger.Info(fmt.Sprintf("edges: %v", edge_count))
}

func (self *Map) String() string {
	return fmt.Sprintf("Map(mode=%v, size=%v)", self.mode, self.store.NodeCount())
}
