package preprocessing

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/codepictor/metro/models"
)

// SaveNetworkGob writes a binary snapshot of net to path.
func SaveNetworkGob(net *models.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(net); err != nil {
		return fmt.Errorf("could not encode network: %w", err)
	}
	return f.Close()
}

func LoadNetworkGob(path string) (*models.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	var net models.Network
	if err := gob.NewDecoder(f).Decode(&net); err != nil {
		return nil, fmt.Errorf("could not decode network snapshot: %w", err)
	}
	if len(net.Stations) == 0 {
		return nil, fmt.Errorf("%w: network has no stations", models.ErrInvalidNetwork)
	}
	return &net, nil
}
