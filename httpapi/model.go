package httpapi

import (
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/mapfile"
)

// RouteRequest is the body of POST /routes.
type RouteRequest struct {
	Rows      [][]mapfile.Cell `json:"rows"`
	Start     *mapfile.Point   `json:"start"`
	Goal      *mapfile.Point   `json:"goal"`
	Heuristic string           `json:"heuristic,omitempty"`
}

// AssertRouteRequestRequired checks that the required fields are present.
func AssertRouteRequestRequired(obj RouteRequest) error {
	switch {
	case len(obj.Rows) == 0:
		return &RequiredError{Field: "rows"}
	case obj.Start == nil:
		return &RequiredError{Field: "start"}
	case obj.Goal == nil:
		return &RequiredError{Field: "goal"}
	}

	return nil
}

// RouteResult is the body answered by POST /routes.
type RouteResult struct {
	Reachable  bool         `json:"reachable"`
	Path       []astar.Step `json:"path,omitempty"`
	Cost       float64      `json:"cost"`
	Iterations int          `json:"iterations"`
	Expanded   int          `json:"expanded"`
	Discovered int          `json:"discovered"`
}

// ErrorBody is the JSON shape of every error answer.
type ErrorBody struct {
	Error string `json:"error"`
}

// ImplResponse is a status code plus a body to encode as JSON.
type ImplResponse struct {
	Code int
	Body interface{}
}

// Response builds an ImplResponse.
func Response(code int, body interface{}) ImplResponse {
	return ImplResponse{Code: code, Body: body}
}
