package models

// StationRef is a caller-supplied reference to a station: either an id,
// or a name with an optional line to disambiguate it.
type StationRef struct {
	ID   *StationID `json:"id,omitempty"`
	Name string     `json:"name,omitempty"`
	Line *int       `json:"line,omitempty"`
}

// RouteRequest is a route query. Missing or empty endpoints are
// rejected when the references are resolved.
type RouteRequest struct {
	From StationRef   `json:"from"`
	To   StationRef   `json:"to"`
	Via  []StationRef `json:"via,omitempty"`
}
