package graph

import (
	"fmt"

	"github.com/ttpr0/go-mapmatch/geo"
	. "github.com/ttpr0/go-mapmatch/util"
)

//*******************************************
// map io
//*******************************************

// Authoritative artifact of a map: graph contents, coordinate mode and
// the crs pair. The node index is derived state and stored separately.
type MapArtifact struct {
	Graph         map[string]Node `json:"graph"`
	Mode          CoordinateMode  `json:"coordinate_mode"`
	CRSGeographic string          `json:"crs_geographic"`
	CRSProjected  string          `json:"crs_projected"`
}

type _IndexArtifact struct {
	Nodes []_IndexRecord `json:"nodes"`
}

type _IndexRecord struct {
	Label string    `json:"label"`
	Loc   geo.Coord `json:"loc"`
}

// Export produces the serializable authoritative state of the map.
func (self *Map) Export() MapArtifact {
	records := make(map[string]Node, self.store.NodeCount())
	for label, node := range self.store.nodes {
		record := Node{
			Loc: nil,
			Fwd: append(NewList[string](node.Fwd.Length()), node.Fwd...),
			Bwd: append(NewList[string](node.Bwd.Length()), node.Bwd...),
		}
		if node.Loc != nil {
			loc := *node.Loc
			record.Loc = &loc
		}
		records[label] = record
	}
	return MapArtifact{
		Graph:         records,
		Mode:          self.mode,
		CRSGeographic: self.transformer.GeographicCRS(),
		CRSProjected:  self.transformer.ProjectedCRS(),
	}
}

// Store writes the map to path and, if the node index has been built,
// its snapshot to path+"-index" so the rebuild can be skipped on load.
func Store(m *Map, path string) error {
	if err := WriteJSONToFile(m.Export(), path); err != nil {
		return fmt.Errorf("failed to store map: %w", err)
	}
	if m.index == nil {
		return nil
	}
	artifact := _IndexArtifact{Nodes: make([]_IndexRecord, 0, m.index.Size())}
	for _, item := range m.index.Snapshot() {
		artifact.Nodes = append(artifact.Nodes, _IndexRecord{Label: item.Label, Loc: item.Loc})
	}
	if err := WriteJSONToFile(artifact, path+"-index"); err != nil {
		return fmt.Errorf("failed to store node index: %w", err)
	}
	return nil
}

// Load reads a map stored with Store.
// A missing or unreadable primary artifact is an error; a missing
// index artifact only means the index is rebuilt on first use.
func Load(path string) (*Map, error) {
	artifact, err := ReadJSONFromFile[MapArtifact](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load map: %w", err)
	}
	nmap, err := NewMap(artifact.Mode, artifact.CRSGeographic, artifact.CRSProjected)
	if err != nil {
		return nil, fmt.Errorf("failed to load map: %w", err)
	}
	for label, record := range artifact.Graph {
		node := Node{
			Loc: record.Loc,
			Fwd: record.Fwd,
			Bwd: record.Bwd,
		}
		if node.Fwd == nil {
			node.Fwd = NewList[string](2)
		}
		if node.Bwd == nil {
			node.Bwd = NewList[string](2)
		}
		nmap.store.nodes[label] = node
	}
	if !FileExists(path + "-index") {
		return nmap, nil
	}
	index, err := ReadJSONFromFile[_IndexArtifact](path + "-index")
	if err != nil {
		nmap.logger.Warn(fmt.Sprintf("ignoring unreadable node index %v-index: %v", path, err))
		return nmap, nil
	}
	snapshot := NewList[Neighbor](len(index.Nodes))
	for _, record := range index.Nodes {
		snapshot.Add(Neighbor{Label: record.Label, Loc: record.Loc})
	}
	nmap.index = NodeIndexFromSnapshot(snapshot)
	return nmap, nil
}
