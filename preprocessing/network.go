// Package preprocessing loads metro network descriptions. Networks can
// come from the embedded reference network, a JSON file, a gob snapshot
// produced by cmd/netgen, or a directory of CSV tables.
package preprocessing

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/codepictor/metro/models"
)

//go:embed data/moscow_metro.json
var moscowMetro []byte

// DefaultNetwork returns a fresh copy of the embedded Moscow metro
// network.
func DefaultNetwork() (*models.Network, error) {
	return LoadNetworkFromJSON(moscowMetro)
}

func LoadNetworkFromJSON(data []byte) (*models.Network, error) {
	var net models.Network
	if err := json.Unmarshal(data, &net); err != nil {
		return nil, fmt.Errorf("failed to parse network JSON: %w", err)
	}
	if len(net.Stations) == 0 {
		return nil, fmt.Errorf("%w: network has no stations", models.ErrInvalidNetwork)
	}
	return &net, nil
}

// LoadNetworkFromFile picks a loader from the path: directories are
// read as CSV tables, .gob files as snapshots and anything else as JSON.
// An empty path selects the embedded network.
func LoadNetworkFromFile(path string) (*models.Network, error) {
	if path == "" {
		return DefaultNetwork()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not open network %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadNetworkFromCSV(path)
	}
	if strings.EqualFold(filepath.Ext(path), ".gob") {
		return LoadNetworkGob(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read network file: %w", err)
	}
	return LoadNetworkFromJSON(data)
}
