package stations

import (
	"github.com/codepictor/metro/models"
)

// Query is a caller-supplied station reference. It is one of ByID,
// ByName or ByNameOnLine.
type Query interface {
	isQuery()
}

// ByID looks a station up by its id.
type ByID models.StationID

// ByName looks a station up by name. It fails when the name is used on
// more than one line.
type ByName string

// ByNameOnLine looks a station up by name on a given line.
type ByNameOnLine struct {
	Name string
	Line int
}

func (ByID) isQuery()         {}
func (ByName) isQuery()       {}
func (ByNameOnLine) isQuery() {}

// Resolver turns queries into Station handles. It is the only way to
// obtain a valid Station.
type Resolver struct {
	dir *Directory
}

func NewResolver(dir *Directory) *Resolver {
	return &Resolver{dir: dir}
}

func (r *Resolver) Directory() *Directory { return r.dir }

func (r *Resolver) Resolve(q Query) (Station, error) {
	switch q := q.(type) {
	case ByID:
		return r.resolveID(models.StationID(q))
	case ByName:
		return r.resolveName(string(q))
	case ByNameOnLine:
		return r.resolveNameOnLine(q.Name, q.Line)
	default:
		return Station{}, models.ErrInvalidQuery
	}
}

func (r *Resolver) resolveID(id models.StationID) (Station, error) {
	rec, ok := r.dir.RecordByID(id)
	if !ok {
		return Station{}, &models.StationError{Kind: models.ErrNotFound, ID: &id}
	}
	return Station{rec: rec, valid: true}, nil
}

func (r *Resolver) resolveName(name string) (Station, error) {
	matches := r.dir.byName[normalizeName(name)]
	switch len(matches) {
	case 0:
		return Station{}, &models.StationError{Kind: models.ErrNotFound, Name: name}
	case 1:
		return Station{rec: matches[0], valid: true}, nil
	default:
		lines := make([]int, len(matches))
		for i, m := range matches {
			lines[i] = m.Line
		}
		return Station{}, &models.StationError{Kind: models.ErrAmbiguousName, Name: name, Lines: lines}
	}
}

func (r *Resolver) resolveNameOnLine(name string, line int) (Station, error) {
	for _, m := range r.dir.byName[normalizeName(name)] {
		if m.Line == line {
			return Station{rec: m, valid: true}, nil
		}
	}
	return Station{}, &models.StationError{Kind: models.ErrNotFound, Name: name, Line: &line}
}
