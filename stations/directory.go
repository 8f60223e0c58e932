// Package stations holds the static station reference data of a metro
// network and resolves caller input into validated station handles.
//
// A Directory is built once from network data and is read-only
// afterwards, so it can be shared between goroutines without locking.
package stations

import (
	"fmt"
	"sort"
	"strings"

	"github.com/codepictor/metro/models"
)

type Directory struct {
	byID   map[models.StationID]models.StationRecord
	byName map[string][]models.StationRecord
	lines  map[int]models.Line
	sorted []models.StationRecord
}

type nameLine struct {
	name string
	line int
}

// NewDirectory indexes records and lines. It rejects empty names,
// duplicate ids and duplicate (name, line) pairs.
func NewDirectory(records []models.StationRecord, lines []models.Line) (*Directory, error) {
	d := &Directory{
		byID:   make(map[models.StationID]models.StationRecord, len(records)),
		byName: make(map[string][]models.StationRecord),
		lines:  make(map[int]models.Line, len(lines)),
	}

	seen := make(map[nameLine]models.StationID, len(records))
	for _, r := range records {
		r.Name = normalizeName(r.Name)
		if r.Name == "" {
			return nil, fmt.Errorf("%w: station %d has no name", models.ErrInvalidNetwork, r.ID)
		}
		if _, ok := d.byID[r.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate station id %d", models.ErrInvalidNetwork, r.ID)
		}
		key := nameLine{name: r.Name, line: r.Line}
		if other, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: stations %d and %d are both %q on line %d",
				models.ErrInvalidNetwork, other, r.ID, r.Name, r.Line)
		}
		seen[key] = r.ID
		d.byID[r.ID] = r
		d.byName[r.Name] = append(d.byName[r.Name], r)
		d.sorted = append(d.sorted, r)
	}

	for _, same := range d.byName {
		sort.Slice(same, func(i, j int) bool {
			if same[i].Line != same[j].Line {
				return same[i].Line < same[j].Line
			}
			return same[i].ID < same[j].ID
		})
	}
	sort.Slice(d.sorted, func(i, j int) bool { return d.sorted[i].ID < d.sorted[j].ID })

	for _, l := range lines {
		if _, ok := d.lines[l.Number]; ok {
			return nil, fmt.Errorf("%w: duplicate line %d", models.ErrInvalidNetwork, l.Number)
		}
		d.lines[l.Number] = l
	}
	return d, nil
}

// RecordsByName returns every station called name, ordered by line.
// The returned slice belongs to the caller.
func (d *Directory) RecordsByName(name string) []models.StationRecord {
	same := d.byName[normalizeName(name)]
	out := make([]models.StationRecord, len(same))
	copy(out, same)
	return out
}

func (d *Directory) RecordByID(id models.StationID) (models.StationRecord, bool) {
	r, ok := d.byID[id]
	return r, ok
}

// Records returns all stations ordered by id.
func (d *Directory) Records() []models.StationRecord {
	out := make([]models.StationRecord, len(d.sorted))
	copy(out, d.sorted)
	return out
}

func (d *Directory) Len() int { return len(d.sorted) }

// Line returns the metadata of a line. Lines without metadata still
// exist as long as a station references them.
func (d *Directory) Line(number int) (models.Line, bool) {
	l, ok := d.lines[number]
	return l, ok
}

// Lines returns line metadata ordered by line number.
func (d *Directory) Lines() []models.Line {
	out := make([]models.Line, 0, len(d.lines))
	for _, l := range d.lines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}
