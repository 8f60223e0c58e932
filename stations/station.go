package stations

import (
	"fmt"

	"github.com/codepictor/metro/models"
)

// Station is a validated reference to exactly one station record.
// Values are only produced by a Resolver; the zero value refers to no
// station.
type Station struct {
	rec   models.StationRecord
	valid bool
}

func (s Station) ID() models.StationID { return s.rec.ID }

func (s Station) Name() string { return s.rec.Name }

func (s Station) Line() int { return s.rec.Line }

func (s Station) Record() models.StationRecord { return s.rec }

func (s Station) IsZero() bool { return !s.valid }

func (s Station) String() string {
	return fmt.Sprintf("Station: '%s' (line: %d)", s.rec.Name, s.rec.Line)
}
