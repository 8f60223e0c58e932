package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/codepictor/metro/models"
)

// literalPrefix marks the rest of a reference as a plain station name,
// for names that would otherwise read as an id or as name@line.
const literalPrefix = "="

// ParseStationRef parses the text form of a station reference:
// "1003" is an id, "Окружная@10" is a name on line 10, "=1905" is the
// name "1905" and anything else is a bare name. A name on a line is
// always written name@line, even when the name is numeric or holds an
// "@". Names starting with "=" cannot carry a line.
func ParseStationRef(input string) (models.StationRef, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return models.StationRef{}, fmt.Errorf("%w: empty station reference", models.ErrInvalidQuery)
	}

	if strings.HasPrefix(s, literalPrefix) {
		name := strings.TrimSpace(strings.TrimPrefix(s, literalPrefix))
		if name == "" {
			return models.StationRef{}, fmt.Errorf("%w: %q has no name after %s", models.ErrInvalidQuery, input, literalPrefix)
		}
		return models.StationRef{Name: name}, nil
	}

	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		sid := models.StationID(id)
		return models.StationRef{ID: &sid}, nil
	}

	if i := strings.LastIndex(s, "@"); i >= 0 {
		name := strings.TrimSpace(s[:i])
		line, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
		if err != nil || name == "" {
			return models.StationRef{}, fmt.Errorf("%w: %q, expected name@line or =name", models.ErrInvalidQuery, input)
		}
		return models.StationRef{Name: name, Line: &line}, nil
	}

	return models.StationRef{Name: s}, nil
}

// FormatStationRef is the inverse of ParseStationRef. Bare names that
// would parse as an id or as name@line get the literal prefix.
func FormatStationRef(ref models.StationRef) string {
	switch {
	case ref.ID != nil:
		return strconv.FormatInt(int64(*ref.ID), 10)
	case ref.Line != nil:
		return fmt.Sprintf("%s@%d", ref.Name, *ref.Line)
	case needsLiteral(ref.Name):
		return literalPrefix + ref.Name
	default:
		return ref.Name
	}
}

func needsLiteral(name string) bool {
	if strings.HasPrefix(name, literalPrefix) || strings.Contains(name, "@") {
		return true
	}
	_, err := strconv.ParseInt(strings.TrimSpace(name), 10, 64)
	return err == nil
}

// ParseRouteRequest builds a route request from the text forms of its
// endpoints and waypoints. Errors name the offending field.
func ParseRouteRequest(from, to string, via []string) (models.RouteRequest, error) {
	var req models.RouteRequest
	var err error
	if req.From, err = ParseStationRef(from); err != nil {
		return req, fmt.Errorf("from: %w", err)
	}
	if req.To, err = ParseStationRef(to); err != nil {
		return req, fmt.Errorf("to: %w", err)
	}
	for i, v := range via {
		ref, err := ParseStationRef(v)
		if err != nil {
			return req, fmt.Errorf("via[%d]: %w", i, err)
		}
		req.Via = append(req.Via, ref)
	}
	return req, nil
}
