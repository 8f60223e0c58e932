package models

type ApiResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ApiError   `json:"error,omitempty"`
	Meta      *MetaData   `json:"meta,omitempty"`
	RequestID string      `json:"request_id"`
}

type ApiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type MetaData struct {
	ProcessTime string   `json:"process_time_ms"`
	ApiVersion  string   `json:"api_version"`
	ResultCount *int     `json:"result_count,omitempty"`
	TotalTime   *float64 `json:"total_time_s,omitempty"`
}

type StationView struct {
	ID        StationID `json:"id"`
	Name      string    `json:"name"`
	Line      int       `json:"line"`
	LineName  string    `json:"line_name,omitempty"`
	LineColor string    `json:"line_color,omitempty"`
}

type SegmentView struct {
	From StationView `json:"from"`
	To   StationView `json:"to"`
	Time float64     `json:"time_s"`
}

type RouteResponse struct {
	From      StationView   `json:"from"`
	To        StationView   `json:"to"`
	Via       []StationView `json:"via,omitempty"`
	Stations  []StationView `json:"stations"`
	Segments  []SegmentView `json:"segments"`
	TotalTime float64       `json:"total_time_s"`
}

type NetworkResponse struct {
	Name     string        `json:"name"`
	Lines    []Line        `json:"lines"`
	Stations []StationView `json:"stations"`
	Links    []Link        `json:"links"`
}
