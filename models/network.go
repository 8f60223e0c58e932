package models

// Network is the static description of a metro: stations, the links
// between them and per-line metadata. It is loaded once at startup.
type Network struct {
	Name     string          `json:"name"`
	Lines    []Line          `json:"lines"`
	Stations []StationRecord `json:"stations"`
	Links    []Link          `json:"links"`
}
