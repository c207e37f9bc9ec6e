package main

//**********************************************************
// request params
//**********************************************************

type NearestRequestParams struct {
	// query position in the active coordinate order
	// ((lat, lon) for geographic maps, (y, x) for projected ones)
	Loc [2]float64 `json:"loc"`

	// maximum distance in the native metric of the map,
	// omitted or <= 0 disables the filter
	MaxDist float64 `json:"max_dist"`

	// maximum number of results, <= 0 returns all within max_dist
	MaxCount int `json:"max_count"`
}

type NeighborsRequestParams struct {
	Label string `json:"label"`
}
