package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/mapfile"
)

// ErrCostOverflow indicates a path whose cost does not fit in a float64.
var ErrCostOverflow = errors.New("httpapi: path cost overflows float64")

// ParsingError wraps a request body that could not be decoded.
type ParsingError struct {
	Err error
}

func (e *ParsingError) Error() string { return "parsing request body: " + e.Err.Error() }

func (e *ParsingError) Unwrap() error { return e.Err }

// RequiredError reports a missing required field.
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string { return fmt.Sprintf("required field '%s' is missing", e.Field) }

// ErrorHandler writes err to w. result, when non-nil, carries the status
// code and body the service chose for the failure.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error, result *ImplResponse)

// DefaultErrorHandler maps errors to status codes and answers ErrorBody,
// or result.Body when the service supplied one.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error, result *ImplResponse) {
	code := StatusFor(err)
	var body interface{} = ErrorBody{Error: err.Error()}
	if result != nil && result.Code != 0 {
		code = result.Code
		if result.Body != nil {
			body = result.Body
		}
	}
	_ = EncodeJSONResponse(body, &code, w)
}

// StatusFor picks the HTTP status for a search or decoding error.
func StatusFor(err error) int {
	var tooLarge *http.MaxBytesError
	var parsing *ParsingError
	var required *RequiredError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &parsing), errors.As(err, &required):
		return http.StatusBadRequest
	case errors.Is(err, grid.ErrEmptyGrid), errors.Is(err, grid.ErrNonRectangular),
		errors.Is(err, grid.ErrInvalidCost), errors.Is(err, mapfile.ErrUnknownCell),
		errors.Is(err, astar.ErrOptionViolation):
		return http.StatusBadRequest
	case errors.Is(err, astar.ErrNoPath):
		return http.StatusNotFound
	case errors.Is(err, grid.ErrOutOfBounds), errors.Is(err, astar.ErrInvalidEndpoint),
		errors.Is(err, astar.ErrIterationLimit), errors.Is(err, ErrCostOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// EncodeJSONResponse writes i as JSON with the given status (200 when nil).
// The body is marshalled before the header is sent; if that fails the
// answer is a 500 ErrorBody and the marshalling error is returned.
func EncodeJSONResponse(i interface{}, status *int, w http.ResponseWriter) error {
	code := http.StatusOK
	if status != nil {
		code = *status
	}
	body, err := json.Marshal(i)
	if err != nil {
		code = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorBody{Error: "encoding response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	if _, werr := w.Write(append(body, '\n')); werr != nil && err == nil {
		err = werr
	}

	return err
}
