package models

// StationID identifies a station in the metro network.
type StationID int64

type StationRecord struct {
	ID   StationID `json:"id"`
	Name string    `json:"name"`
	Line int       `json:"line"`
}

// Link is an undirected connection between two stations.
// Time is the travel time in seconds.
type Link struct {
	From StationID `json:"from"`
	To   StationID `json:"to"`
	Time float64   `json:"time"`
}

type Line struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
}
