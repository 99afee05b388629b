package page

// Request exposes the request signals owner resolution reads. The HTTP layer
// adapts the framework request to this interface.
type Request interface {
	// Param returns the named request parameter, or "" when absent.
	Param(name string) string
	// URI returns the raw request URI, including the query string.
	URI() string
}

// ValuesRequest is a Request backed by a plain map, for callers outside the
// HTTP layer.
type ValuesRequest struct {
	Values map[string]string
	Path   string
}

func (r ValuesRequest) Param(name string) string {
	return r.Values[name]
}

func (r ValuesRequest) URI() string {
	return r.Path
}
