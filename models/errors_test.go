package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestStationErrorMessages(t *testing.T) {
	id := StationID(42)
	line := 10
	tests := []struct {
		err  *StationError
		want string
	}{
		{&StationError{Kind: ErrNotFound, ID: &id}, "station not found: id = 42"},
		{&StationError{Kind: ErrNotFound, Name: "Окружная", Line: &line}, `station not found: "Окружная" on line 10`},
		{&StationError{Kind: ErrAmbiguousName, Name: "Окружная", Lines: []int{10, 14}}, `ambiguous station name: "Окружная" exists on lines 10, 14, specify a line`},
		{&StationError{Kind: ErrNotFound, Name: "Нигде"}, `station not found: "Нигде"`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
		if !errors.Is(tt.err, tt.err.Kind) {
			t.Errorf("%v does not unwrap to its kind", tt.err)
		}
	}
}

func TestRouteErrorUnwraps(t *testing.T) {
	err := fmt.Errorf("leg 2: %w", &RouteError{Kind: ErrNoRoute, From: 1, To: 9})
	if !errors.Is(err, ErrNoRoute) {
		t.Errorf("%v does not unwrap to %v", err, ErrNoRoute)
	}
	var re *RouteError
	if !errors.As(err, &re) || re.From != 1 || re.To != 9 {
		t.Errorf("errors.As failed for %v", err)
	}
	if want := "leg 2: no route between stations: 1 -> 9"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
