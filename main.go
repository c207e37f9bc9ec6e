package main

import (
	"net/http"
	"os"

	"github.com/ttpr0/go-mapmatch/geo"
	"github.com/ttpr0/go-mapmatch/graph"
	"github.com/ttpr0/go-mapmatch/parser"
	"golang.org/x/exp/slog"
)

var MAP *graph.Map

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, nil)))

	config := ReadConfig("./config.yaml")
	MAP = BuildMap(config)

	if config.Services.Address == "" {
		return
	}

	app := http.DefaultServeMux
	MapPost(app, "/v0/nearest", HandleNearestRequest)
	MapGet(app, "/v0/bounds", HandleBoundsRequest)
	MapGet(app, "/v0/neighbors", HandleNeighborsRequest)

	slog.Info("serving map queries on " + config.Services.Address)
	http.ListenAndServe(config.Services.Address, nil)
}

// Builds the map from the configured source, removes unusable nodes
// and stores graph and index artifacts.
func BuildMap(config Config) *graph.Map {
	source := config.Build.Source
	if source.Map != "" {
		nmap, err := graph.Load(source.Map)
		if err != nil {
			slog.Error("failed to load map: " + err.Error())
			panic(err)
		}
		nmap.PrepareIndex(false)
		return nmap
	}

	mode := graph.CoordinateMode(config.Map.Mode)
	if config.Map.Mode == "" {
		mode = graph.GEOGRAPHIC
	}
	nmap, err := graph.NewMap(mode, config.Map.CRSGeographic, config.Map.CRSProjected)
	if err != nil {
		slog.Error("invalid map options: " + err.Error())
		panic(err)
	}

	switch {
	case source.OSM != "":
		if err := parser.ParseMapFromOSM(source.OSM, nmap); err != nil {
			slog.Error("failed to parse osm extract: " + err.Error())
			panic(err)
		}
	case source.NodesCSV != "" && source.EdgesCSV != "":
		parser.ParseMapFromCSV(source.NodesCSV, source.EdgesCSV, nmap)
	default:
		slog.Error("no map source configured")
		panic("no map source configured")
	}

	if config.Build.Purge {
		nmap.Purge()
	}
	if config.Build.Project {
		nmap = nmap.Reproject()
	}
	nmap.PrepareIndex(true)
	nmap.PrintStats()

	if config.Build.Output != "" {
		if err := graph.Store(nmap, config.Build.Output); err != nil {
			slog.Error("failed to store map: " + err.Error())
			panic(err)
		}
	}
	return nmap
}

func HandleNearestRequest(params NearestRequestParams) Result {
	max_dist := params.MaxDist
	if max_dist == 0 {
		max_dist = -1
	}
	matches := MAP.NearestNodes(geo.Coord(params.Loc), max_dist, params.MaxCount)
	resp := NearestResponse{Nodes: make([]NearestNode, 0, matches.Length())}
	for _, match := range matches {
		resp.Nodes = append(resp.Nodes, NearestNode{
			Label: match.Label,
			Loc:   match.Loc,
			Dist:  match.Dist,
		})
	}
	return OK(resp)
}

func HandleBoundsRequest(params none) Result {
	min, max, ok := MAP.BoundingBox()
	if !ok {
		return BadRequest("map has no located nodes")
	}
	return OK(BoundsResponse{Min: min, Max: max})
}

func HandleNeighborsRequest(params NeighborsRequestParams) Result {
	if params.Label == "" {
		return BadRequest("missing label")
	}
	nbrs := MAP.NeighborsOf(params.Label)
	resp := NeighborsResponse{Nodes: make([]NearestNode, 0, nbrs.Length())}
	for _, nbr := range nbrs {
		resp.Nodes = append(resp.Nodes, NearestNode{
			Label: nbr.Label,
			Loc:   nbr.Loc,
		})
	}
	return OK(resp)
}
