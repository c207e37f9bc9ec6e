package main

//**********************************************************
// responses
//**********************************************************

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type NearestResponse struct {
	Nodes []NearestNode `json:"nodes"`
}

type NearestNode struct {
	Label string     `json:"label"`
	Loc   [2]float64 `json:"loc"`
	Dist  float64    `json:"dist"`
}

type BoundsResponse struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
}

type NeighborsResponse struct {
	Nodes []NearestNode `json:"nodes"`
}
