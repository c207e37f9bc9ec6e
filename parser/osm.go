package parser

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/ttpr0/go-mapmatch/geo"
	"github.com/ttpr0/go-mapmatch/graph"
	. "github.com/ttpr0/go-mapmatch/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm parser
//*******************************************

var road_types = Dict[string, bool]{"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true, "tertiary": true, "tertiary_link": true,
	"residential": true, "living_street": true, "service": true, "track": true, "unclassified": true, "road": true}

type _OSMWay struct {
	Nodes  List[int64]
	Oneway bool
}

// Builds the road network of an osm extract (.pbf or .osm) into nmap.
// Way nodes become graph nodes labeled by their osm id, consecutive
// way nodes become edges (both directions unless the way is oneway).
func ParseMapFromOSM(filename string, nmap *graph.Map) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	ways := NewList[_OSMWay](1000)
	used := NewDict[int64, bool](10000)
	scanner := _NewScanner(file, filename)
	_WayHandler(scanner, &ways, &used)
	if err := scanner.Err(); err != nil {
		return err
	}
	scanner.Close()

	file.Seek(0, 0)
	scanner = _NewScanner(file, filename)
	_NodeHandler(scanner, nmap, &used)
	if err := scanner.Err(); err != nil {
		return err
	}
	scanner.Close()

	for _, way := range ways {
		for i := 0; i < way.Nodes.Length()-1; i++ {
			node_a := strconv.FormatInt(way.Nodes[i], 10)
			node_b := strconv.FormatInt(way.Nodes[i+1], 10)
			if !_AddEdge(nmap, node_a, node_b) {
				continue
			}
			if !way.Oneway {
				_AddEdge(nmap, node_b, node_a)
			}
		}
	}
	slog.Info("parsed osm extract", "nodes", nmap.NodeCount(), "ways", ways.Length())
	return nil
}

func _NewScanner(file *os.File, filename string) osm.Scanner {
	if strings.HasSuffix(filename, ".pbf") {
		return osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	}
	return osmxml.New(context.Background(), file)
}

func _WayHandler(scanner osm.Scanner, ways *List[_OSMWay], used *Dict[int64, bool]) {
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if !road_types.ContainsKey(way.Tags.Find("highway")) {
			continue
		}
		nodes := NewList[int64](len(way.Nodes))
		for _, wn := range way.Nodes {
			nodes.Add(int64(wn.ID))
			used.Set(int64(wn.ID), true)
		}
		ways.Add(_OSMWay{
			Nodes:  nodes,
			Oneway: _IsOneway(way.Tags),
		})
	}
}

func _NodeHandler(scanner osm.Scanner, nmap *graph.Map, used *Dict[int64, bool]) {
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if !used.ContainsKey(int64(node.ID)) {
			continue
		}
		nmap.AddNode(strconv.FormatInt(int64(node.ID), 10), geo.Coord{node.Lat, node.Lon})
	}
}

// Edges may reference nodes outside the extract; those get a
// position-less stub that Purge removes later.
func _AddEdge(nmap *graph.Map, node_a, node_b string) bool {
	nmap.AddStub(node_a)
	nmap.AddStub(node_b)
	return nmap.AddEdge(node_a, node_b) == nil
}

func _IsOneway(tags osm.Tags) bool {
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		return true
	case "no", "false", "0":
		return false
	}
	highway := tags.Find("highway")
	return highway == "motorway" || highway == "motorway_link"
}
