package httpapi

import (
	"encoding/json"
	"net/http"
)

// Route binds a method and path to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Routes is a list of Route.
type Routes []Route

// DefaultMaxBodyBytes caps a POST /routes body. One MiB holds a grid of
// roughly 250 000 single-digit cells.
const DefaultMaxBodyBytes int64 = 1 << 20

// Controller binds HTTP requests to a Service and writes its results.
type Controller struct {
	service      *Service
	errorHandler ErrorHandler
	maxBodyBytes int64
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithErrorHandler replaces DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) ControllerOption {
	return func(c *Controller) {
		c.errorHandler = h
	}
}

// WithMaxBodyBytes replaces DefaultMaxBodyBytes. Larger bodies answer 413.
func WithMaxBodyBytes(n int64) ControllerOption {
	return func(c *Controller) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// NewController creates a Controller for s.
func NewController(s *Service, opts ...ControllerOption) *Controller {
	c := &Controller{
		service:      s,
		errorHandler: DefaultErrorHandler,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Routes returns the routes served by the controller.
func (c *Controller) Routes() Routes {
	return Routes{
		{"ComputeRoute", http.MethodPost, "/routes", c.ComputeRoute},
		{"Health", http.MethodGet, "/healthz", c.Health},
	}
}

// ComputeRoute handles POST /routes.
func (c *Controller) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	d := json.NewDecoder(http.MaxBytesReader(w, r.Body, c.maxBodyBytes))
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		c.errorHandler(w, r, &ParsingError{Err: err}, nil)
		return
	}
	if err := AssertRouteRequestRequired(req); err != nil {
		c.errorHandler(w, r, err, nil)
		return
	}
	result, err := c.service.ComputeRoute(r.Context(), req)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = EncodeJSONResponse(result.Body, &result.Code, w)
}

// Health handles GET /healthz.
func (c *Controller) Health(w http.ResponseWriter, _ *http.Request) {
	_ = EncodeJSONResponse(map[string]string{"status": "ok"}, nil, w)
}
